package reconcile

import (
	"context"
	"fmt"
	"time"

	"survey-manager/core/batch"
	"survey-manager/core/sheet"
	"survey-manager/feature/enumcat"
	"survey-manager/feature/survey/models"
	"survey-manager/feature/survey/normalize"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Engine reconciles the workbook snapshot against the two persisted tables.
// One engine instance is safe for sequential reuse; a run holds no state
// outside its stack.
type Engine struct {
	db     *gorm.DB
	enums  *enumcat.Resolver
	logger *zap.Logger
}

// NewEngine creates a reconciliation engine over the given handles.
func NewEngine(db *gorm.DB, enums *enumcat.Resolver, logger *zap.Logger) *Engine {
	return &Engine{db: db, enums: enums, logger: logger}
}

// Run executes one reconciliation pass over the raw row sets.
//
// Hard failures (snapshot reads, enum catalog unavailable) abort the run,
// are recorded in the sync log with status FAILED and returned as an error.
// Row-level and chunk-level problems are absorbed into the result counts.
func (e *Engine) Run(ctx context.Context, caseRaw, summaryRaw []sheet.RawRow, opts Options) (*Result, error) {
	started := time.Now()
	result := &Result{
		State:        StateStarted,
		TotalRecords: len(caseRaw) + len(summaryRaw),
	}

	cases, skippedCases := normalize.CaseRows(caseRaw)
	summaries, skippedSummaries := normalize.SummaryRows(summaryRaw)
	result.Skipped += skippedCases + skippedSummaries
	result.ProcessedRecords += skippedCases + skippedSummaries

	allCases := cases
	windowDone := true
	if opts.Mode == ModeBatched {
		cases, summaries, windowDone = applyWindow(cases, summaries, opts)
		// This invocation only answers for its window.
		result.TotalRecords = result.ProcessedRecords + len(cases) + len(summaries)
		result.MoreWindows = !windowDone
	}

	// Phase: resolve every distinct enum pair before any transaction opens.
	result.State = StateResolvingEnums
	enumIDs, err := e.enums.ResolveAll(ctx, collectEnumPairs(cases, summaries))
	if err != nil {
		return result, e.fail(ctx, result, opts, fmt.Errorf("enum resolution failed: %w", err))
	}

	identity, err := NewIdentity(ctx, e.db, opts.NameMatch)
	if err != nil {
		return result, e.fail(ctx, result, opts, err)
	}

	// The snapshot's own detail rows are part of this run's identity space:
	// a summary row may reference a case the same snapshot introduces or
	// re-codes. Their ids and service codes register before the dry pass so
	// resolution never trails the prefetched state.
	for _, c := range allCases {
		identity.Observe(c.CaseID, c.ServiceCode)
	}

	existingCases, existingSummaries, bySequence, err := e.loadSnapshots(ctx)
	if err != nil {
		return result, e.fail(ctx, result, opts, err)
	}

	// Dry identity pass: resolves every summary row up front so the orphan set
	// is known before any upsert runs.
	resolutions := make([]Resolution, len(summaries))
	for i, s := range summaries {
		resolutions[i] = identity.Resolve(s)
	}

	// Pre-delete phase: orphaned summaries go first so their sequence numbers
	// are free for reuse by the incoming rows. Skipped in batched mode, where
	// the resolved set covers only a window of the snapshot.
	if opts.Mode != ModeBatched {
		deleted, err := e.deleteOrphanSummaries(ctx, identity.ResolvedSet(), existingSummaries, bySequence)
		if err != nil {
			return result, e.fail(ctx, result, opts, err)
		}
		result.Deleted += deleted
	}

	deadline := time.Time{}
	if opts.Deadline > 0 {
		deadline = started.Add(opts.Deadline)
	}
	exec := batch.Executor{BatchSize: opts.BatchSize, Deadline: deadline}

	// Phase: master/detail upserts. Cases go before summaries so every
	// summary written later references an existing case.
	result.State = StateProcessingDetail
	detailOut := exec.Run(ctx, e.db, len(cases), func(tx *gorm.DB, start, end int) (batch.Counts, error) {
		var c batch.Counts
		for i := start; i < end; i++ {
			action, err := e.upsertCase(tx, cases[i], enumIDs, existingCases, identity)
			if err != nil {
				e.logger.Warn("case upsert failed",
					zap.String("case_id", cases[i].CaseID), zap.Error(err))
				c.Errors++
				continue
			}
			c.Bump(action)
		}
		return c, nil
	})
	e.merge(result, detailOut)

	if detailOut.Truncated {
		result.TotalRecords = result.ProcessedRecords + detailOut.Remaining + len(summaries)
		return e.finish(ctx, result, opts, false)
	}

	// Phase: summary upserts, creating the backing case in the same
	// transaction when identity resolution signaled a create.
	result.State = StateProcessingSummary
	summaryOut := exec.Run(ctx, e.db, len(summaries), func(tx *gorm.DB, start, end int) (batch.Counts, error) {
		var c batch.Counts
		for i := start; i < end; i++ {
			actions, err := e.upsertSummary(tx, summaries[i], resolutions[i], enumIDs,
				existingCases, existingSummaries, bySequence, identity)
			if err != nil {
				e.logger.Warn("summary upsert failed",
					zap.String("identity", summaries[i].RawIdentity), zap.Error(err))
				c.Errors++
				continue
			}
			for _, a := range actions {
				c.Bump(a)
			}
		}
		return c, nil
	})
	e.merge(result, summaryOut)

	if summaryOut.Truncated {
		result.TotalRecords = result.ProcessedRecords + summaryOut.Remaining
		return e.finish(ctx, result, opts, false)
	}

	// Post-delete phase: full mode also drops cases absent from the snapshot.
	if opts.Mode == ModeFull {
		result.State = StateDeleting
		deleted, err := e.deleteAbsentCases(ctx, cases, identity.ResolvedSet(), existingCases)
		if err != nil {
			return result, e.fail(ctx, result, opts, err)
		}
		result.Deleted += deleted
	}

	return e.finish(ctx, result, opts, windowDone)
}

// applyWindow slices both normalized row sets down to the batch-number window.
// The boolean reports whether this window reaches the end of both sets.
func applyWindow(cases []normalize.CaseRow, summaries []normalize.SummaryRow, opts Options) ([]normalize.CaseRow, []normalize.SummaryRow, bool) {
	size := opts.BatchSize
	if size <= 0 {
		size = batch.DefaultSize
	}
	start := opts.BatchNumber * size
	end := start + size

	done := end >= len(cases) && end >= len(summaries)
	return sliceWindow(cases, start, end), sliceWindow(summaries, start, end), done
}

func sliceWindow[T any](rows []T, start, end int) []T {
	if start >= len(rows) {
		return nil
	}
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// collectEnumPairs gathers every distinct (category, token) pair across both
// row sets for up-front resolution.
func collectEnumPairs(cases []normalize.CaseRow, summaries []normalize.SummaryRow) []enumcat.Pair {
	seen := make(map[enumcat.Pair]struct{})
	add := func(category, value string) {
		if value == "" {
			return
		}
		seen[enumcat.Pair{Category: category, Value: value}] = struct{}{}
	}

	for _, c := range cases {
		add(enumcat.CategoryOrderType, c.OrderType)
		add(enumcat.CategoryConstraint, c.Constraint)
		add(enumcat.CategoryThematicPlan, c.ThematicPlan)
		add(enumcat.CategoryInstallStatus, c.InstallStatus)
		add(enumcat.CategoryProposalStatus, c.ProposalStatus)
		add(enumcat.CategoryRemark, c.Remark)
	}
	for _, s := range summaries {
		add(enumcat.CategoryServiceType, s.ServiceType)
		add(enumcat.CategoryJobStatus, s.JobStatus)
	}

	pairs := make([]enumcat.Pair, 0, len(seen))
	for p := range seen {
		pairs = append(pairs, p)
	}
	return pairs
}

// loadSnapshots fetches the current persisted state once, before batching
// starts. Membership in these maps decides created-vs-updated without
// re-querying per row.
func (e *Engine) loadSnapshots(ctx context.Context) (map[string]*models.SurveyCase, map[string]*models.ContractSummary, map[string]string, error) {
	var caseRows []models.SurveyCase
	if err := e.db.WithContext(ctx).Find(&caseRows).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load case snapshot: %w", err)
	}

	var summaryRows []models.ContractSummary
	if err := e.db.WithContext(ctx).Find(&summaryRows).Error; err != nil {
		return nil, nil, nil, fmt.Errorf("failed to load summary snapshot: %w", err)
	}

	cases := make(map[string]*models.SurveyCase, len(caseRows))
	for i := range caseRows {
		cases[caseRows[i].CaseID] = &caseRows[i]
	}

	summaries := make(map[string]*models.ContractSummary, len(summaryRows))
	bySequence := make(map[string]string, len(summaryRows))
	for i := range summaryRows {
		summaries[summaryRows[i].CaseID] = &summaryRows[i]
		bySequence[summaryRows[i].SequenceNo] = summaryRows[i].CaseID
	}

	return cases, summaries, bySequence, nil
}

// deleteOrphanSummaries removes summaries whose case id was not resolved by
// the current summary rows. Runs before upserts so reused sequence numbers do
// not collide with the unique index.
func (e *Engine) deleteOrphanSummaries(ctx context.Context, resolved map[string]struct{}, existingSummaries map[string]*models.ContractSummary, bySequence map[string]string) (int, error) {
	var orphans []string
	for caseID := range existingSummaries {
		if _, ok := resolved[caseID]; !ok {
			orphans = append(orphans, caseID)
		}
	}
	if len(orphans) == 0 {
		return 0, nil
	}

	err := e.db.WithContext(ctx).
		Where("case_id IN ?", orphans).
		Delete(&models.ContractSummary{}).Error
	if err != nil {
		return 0, fmt.Errorf("failed to delete orphaned summaries: %w", err)
	}

	for _, caseID := range orphans {
		if s := existingSummaries[caseID]; s != nil {
			delete(bySequence, s.SequenceNo)
		}
		delete(existingSummaries, caseID)
	}

	return len(orphans), nil
}

// deleteAbsentCases removes cases absent from the full snapshot: neither
// present as a detail row nor resolved from any summary row. Full mode only.
func (e *Engine) deleteAbsentCases(ctx context.Context, cases []normalize.CaseRow, resolved map[string]struct{}, existingCases map[string]*models.SurveyCase) (int, error) {
	present := make(map[string]struct{}, len(cases)+len(resolved))
	for _, c := range cases {
		present[c.CaseID] = struct{}{}
	}
	for caseID := range resolved {
		present[caseID] = struct{}{}
	}

	var absent []string
	for caseID := range existingCases {
		if _, ok := present[caseID]; !ok {
			absent = append(absent, caseID)
		}
	}
	if len(absent) == 0 {
		return 0, nil
	}

	err := e.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Dependent summaries first; orphan pre-delete normally got them
		// already, this covers cases whose summaries were untouched.
		if err := tx.Where("case_id IN ?", absent).Delete(&models.ContractSummary{}).Error; err != nil {
			return err
		}
		return tx.Where("case_id IN ?", absent).Delete(&models.SurveyCase{}).Error
	})
	if err != nil {
		return 0, fmt.Errorf("failed to delete absent cases: %w", err)
	}

	for _, caseID := range absent {
		delete(existingCases, caseID)
	}
	return len(absent), nil
}

// upsertCase creates or updates one master record inside the chunk
// transaction. Returns the action taken: created, updated or skipped.
func (e *Engine) upsertCase(tx *gorm.DB, row normalize.CaseRow, enumIDs map[enumcat.Pair]*uint, existingCases map[string]*models.SurveyCase, identity *Identity) (string, error) {
	now := time.Now()
	lookup := func(category, value string) *uint {
		return enumIDs[enumcat.Pair{Category: category, Value: value}]
	}

	existing, ok := existingCases[row.CaseID]
	if !ok {
		record := models.SurveyCase{
			CaseID:           row.CaseID,
			ServiceCode:      row.ServiceCode,
			CustomerName:     row.CustomerName,
			Latitude:         row.Latitude,
			Longitude:        row.Longitude,
			AreaCode:         row.AreaCode,
			SubAreaCode:      row.SubAreaCode,
			OrderTypeID:      lookup(enumcat.CategoryOrderType, row.OrderType),
			ConstraintID:     lookup(enumcat.CategoryConstraint, row.Constraint),
			ThematicPlanID:   lookup(enumcat.CategoryThematicPlan, row.ThematicPlan),
			InstallStatusID:  lookup(enumcat.CategoryInstallStatus, row.InstallStatus),
			ProposalStatusID: lookup(enumcat.CategoryProposalStatus, row.ProposalStatus),
			RemarkID:         lookup(enumcat.CategoryRemark, row.Remark),
			Budget:           decValue(row.Budget),
			GoLiveDate:       row.GoLiveDate,
			AgeDays:          row.AgeDays,
			PortsAvailable:   row.PortsAvailable,
			PortsUsed:        row.PortsUsed,
			PortsTotal:       row.PortsTotal,
			SyncStatus:       models.SyncStatusSynced,
			LastSyncAt:       &now,
		}
		if err := tx.Create(&record).Error; err != nil {
			return "", err
		}
		existingCases[row.CaseID] = &record
		identity.Observe(row.CaseID, row.ServiceCode)
		return actionCreated, nil
	}

	updates := map[string]any{}
	setStr := func(column, current, incoming string) {
		if incoming != "" && incoming != current {
			updates[column] = incoming
		}
	}
	setEnum := func(column string, current *uint, incoming *uint) {
		if incoming != nil && !uintPtrEqual(current, incoming) {
			updates[column] = *incoming
		}
	}
	setInt := func(column string, current, incoming int) {
		if incoming != current {
			updates[column] = incoming
		}
	}

	setStr("service_code", existing.ServiceCode, row.ServiceCode)
	setStr("customer_name", existing.CustomerName, row.CustomerName)
	setStr("latitude", existing.Latitude, row.Latitude)
	setStr("longitude", existing.Longitude, row.Longitude)
	setStr("area_code", existing.AreaCode, row.AreaCode)
	setStr("sub_area_code", existing.SubAreaCode, row.SubAreaCode)

	setEnum("order_type_id", existing.OrderTypeID, lookup(enumcat.CategoryOrderType, row.OrderType))
	setEnum("constraint_id", existing.ConstraintID, lookup(enumcat.CategoryConstraint, row.Constraint))
	setEnum("thematic_plan_id", existing.ThematicPlanID, lookup(enumcat.CategoryThematicPlan, row.ThematicPlan))
	setEnum("install_status_id", existing.InstallStatusID, lookup(enumcat.CategoryInstallStatus, row.InstallStatus))
	setEnum("proposal_status_id", existing.ProposalStatusID, lookup(enumcat.CategoryProposalStatus, row.ProposalStatus))
	setEnum("remark_id", existing.RemarkID, lookup(enumcat.CategoryRemark, row.Remark))

	// Numerically-equal decimals in different representations are not a change.
	if row.Budget.Valid && !existing.Budget.Equal(row.Budget.Decimal) {
		updates["budget"] = row.Budget.Decimal
	}
	if row.GoLiveDate != nil && !timePtrEqual(existing.GoLiveDate, row.GoLiveDate) {
		updates["go_live_date"] = *row.GoLiveDate
	}
	setInt("age_days", existing.AgeDays, row.AgeDays)
	setInt("ports_available", existing.PortsAvailable, row.PortsAvailable)
	setInt("ports_used", existing.PortsUsed, row.PortsUsed)
	setInt("ports_total", existing.PortsTotal, row.PortsTotal)

	if len(updates) == 0 {
		return actionSkipped, nil
	}

	updates["sync_status"] = models.SyncStatusSynced
	updates["last_sync_at"] = now
	err := tx.Model(&models.SurveyCase{}).
		Where("case_id = ?", row.CaseID).
		Updates(updates).Error
	if err != nil {
		return "", err
	}

	applyCaseUpdates(existing, updates, now)
	return actionUpdated, nil
}

// upsertSummary writes one summary record, creating the backing case first
// when identity resolution signaled a create. Both writes share the chunk
// transaction, so a summary can never commit without its case.
func (e *Engine) upsertSummary(tx *gorm.DB, row normalize.SummaryRow, res Resolution, enumIDs map[enumcat.Pair]*uint, existingCases map[string]*models.SurveyCase, existingSummaries map[string]*models.ContractSummary, bySequence map[string]string, identity *Identity) ([]string, error) {
	if row.SequenceNo == "" {
		return []string{actionSkipped}, nil
	}

	now := time.Now()
	lookup := func(category, value string) *uint {
		return enumIDs[enumcat.Pair{Category: category, Value: value}]
	}

	var actions []string

	existing, ok := existingSummaries[res.CaseID]
	if !ok {
		// A sequence number still held by a different case is a genuine
		// conflict and fails this row only. Checked before any write so an
		// errored row leaves nothing behind in the chunk transaction.
		if holder, taken := bySequence[row.SequenceNo]; taken && holder != res.CaseID {
			return nil, fmt.Errorf("sequence_no %s already assigned to case %s", row.SequenceNo, holder)
		}

		// The detail row for this case may not exist yet; create the case
		// with whatever the summary row carries. An existing summary implies
		// an existing case, so only the create path needs this.
		if _, ok := existingCases[res.CaseID]; !ok {
			record := models.SurveyCase{
				CaseID:       res.CaseID,
				CustomerName: row.CustomerName,
				SyncStatus:   models.SyncStatusSynced,
				LastSyncAt:   &now,
			}
			if err := tx.Create(&record).Error; err != nil {
				return nil, err
			}
			existingCases[res.CaseID] = &record
			identity.Observe(res.CaseID, "")
			actions = append(actions, actionCreated)
		}

		record := models.ContractSummary{
			SequenceNo:     row.SequenceNo,
			CaseID:         res.CaseID,
			ContractValue:  decValue(row.ContractValue),
			SurveyBudget:   decValue(row.SurveyBudget),
			CostRatio:      decValue(row.CostRatio),
			Address:        row.Address,
			ServiceTypeID:  lookup(enumcat.CategoryServiceType, row.ServiceType),
			JobStatusID:    lookup(enumcat.CategoryJobStatus, row.JobStatus),
			DistanceMeters: floatValue(row.DistanceMeters),
			Progress:       row.Progress,
			SyncStatus:     models.SyncStatusSynced,
			LastSyncAt:     &now,
		}
		if err := tx.Create(&record).Error; err != nil {
			return nil, err
		}
		existingSummaries[res.CaseID] = &record
		bySequence[row.SequenceNo] = res.CaseID
		return append(actions, actionCreated), nil
	}

	updates := map[string]any{}
	// sequence_no is assigned on create and never overwritten.
	if row.ContractValue.Valid && !existing.ContractValue.Equal(row.ContractValue.Decimal) {
		updates["contract_value"] = row.ContractValue.Decimal
	}
	if row.SurveyBudget.Valid && !existing.SurveyBudget.Equal(row.SurveyBudget.Decimal) {
		updates["survey_budget"] = row.SurveyBudget.Decimal
	}
	if row.CostRatio.Valid && !existing.CostRatio.Equal(row.CostRatio.Decimal) {
		updates["cost_ratio"] = row.CostRatio.Decimal
	}
	if row.Address != "" && row.Address != existing.Address {
		updates["address"] = row.Address
	}
	if id := lookup(enumcat.CategoryServiceType, row.ServiceType); id != nil && !uintPtrEqual(existing.ServiceTypeID, id) {
		updates["service_type_id"] = *id
	}
	if id := lookup(enumcat.CategoryJobStatus, row.JobStatus); id != nil && !uintPtrEqual(existing.JobStatusID, id) {
		updates["job_status_id"] = *id
	}
	if row.DistanceMeters != nil && *row.DistanceMeters != existing.DistanceMeters {
		updates["distance_meters"] = *row.DistanceMeters
	}
	if row.Progress != "" && row.Progress != existing.Progress {
		updates["progress"] = row.Progress
	}

	if len(updates) == 0 {
		return append(actions, actionSkipped), nil
	}

	updates["sync_status"] = models.SyncStatusSynced
	updates["last_sync_at"] = now
	err := tx.Model(&models.ContractSummary{}).
		Where("case_id = ?", res.CaseID).
		Updates(updates).Error
	if err != nil {
		return nil, err
	}

	applySummaryUpdates(existing, updates, now)
	return append(actions, actionUpdated), nil
}

func (e *Engine) merge(result *Result, out batch.Outcome) {
	result.Created += out.Counts.Created
	result.Updated += out.Counts.Updated
	result.Deleted += out.Counts.Deleted
	result.Skipped += out.Counts.Skipped
	result.Errors += out.Counts.Errors
	result.BatchesProcessed += out.Batches
	result.ProcessedRecords += out.Processed
}

// finish closes out a run that did not hard-fail and appends the sync log.
func (e *Engine) finish(ctx context.Context, result *Result, opts Options, windowDone bool) (*Result, error) {
	if result.State == StateTruncated || result.ProcessedRecords < result.TotalRecords {
		result.State = StateTruncated
		result.Completed = false
	} else {
		result.State = StateCompleted
		result.Completed = windowDone
	}

	status := models.SyncRunSuccess
	if !result.Completed {
		status = models.SyncRunPartial
	}
	message := fmt.Sprintf("mode=%s created=%d updated=%d deleted=%d skipped=%d errors=%d processed=%d/%d",
		opts.Mode, result.Created, result.Updated, result.Deleted,
		result.Skipped, result.Errors, result.ProcessedRecords, result.TotalRecords)
	e.writeLog(ctx, status, message, opts.Source)

	e.logger.Info("reconciliation run finished",
		zap.String("mode", string(opts.Mode)),
		zap.String("state", string(result.State)),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("deleted", result.Deleted),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", result.Errors),
		zap.Int("remaining", result.Remaining()))

	return result, nil
}

// fail records a hard failure and passes the error through to the caller.
func (e *Engine) fail(ctx context.Context, result *Result, opts Options, err error) error {
	e.writeLog(ctx, models.SyncRunFailed, err.Error(), opts.Source)
	e.logger.Error("reconciliation run failed",
		zap.String("mode", string(opts.Mode)), zap.Error(err))
	return err
}

func (e *Engine) writeLog(ctx context.Context, status, message, source string) {
	entry := models.SyncLog{Status: status, Message: message, Source: source}
	if err := e.db.WithContext(ctx).Create(&entry).Error; err != nil {
		e.logger.Warn("failed to append sync log", zap.Error(err))
	}
}

const (
	actionCreated = "created"
	actionUpdated = "updated"
	actionSkipped = "skipped"
)

func decValue(d decimal.NullDecimal) decimal.Decimal {
	if d.Valid {
		return d.Decimal
	}
	return decimal.Zero
}

func floatValue(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func uintPtrEqual(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func timePtrEqual(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// applyCaseUpdates mirrors committed column updates back onto the snapshot
// copy so later rows in the run see current state.
func applyCaseUpdates(c *models.SurveyCase, updates map[string]any, now time.Time) {
	for column, value := range updates {
		switch column {
		case "service_code":
			c.ServiceCode = value.(string)
		case "customer_name":
			c.CustomerName = value.(string)
		case "latitude":
			c.Latitude = value.(string)
		case "longitude":
			c.Longitude = value.(string)
		case "area_code":
			c.AreaCode = value.(string)
		case "sub_area_code":
			c.SubAreaCode = value.(string)
		case "order_type_id":
			id := value.(uint)
			c.OrderTypeID = &id
		case "constraint_id":
			id := value.(uint)
			c.ConstraintID = &id
		case "thematic_plan_id":
			id := value.(uint)
			c.ThematicPlanID = &id
		case "install_status_id":
			id := value.(uint)
			c.InstallStatusID = &id
		case "proposal_status_id":
			id := value.(uint)
			c.ProposalStatusID = &id
		case "remark_id":
			id := value.(uint)
			c.RemarkID = &id
		case "budget":
			c.Budget = value.(decimal.Decimal)
		case "go_live_date":
			t := value.(time.Time)
			c.GoLiveDate = &t
		case "age_days":
			c.AgeDays = value.(int)
		case "ports_available":
			c.PortsAvailable = value.(int)
		case "ports_used":
			c.PortsUsed = value.(int)
		case "ports_total":
			c.PortsTotal = value.(int)
		}
	}
	c.SyncStatus = models.SyncStatusSynced
	c.LastSyncAt = &now
}

func applySummaryUpdates(s *models.ContractSummary, updates map[string]any, now time.Time) {
	for column, value := range updates {
		switch column {
		case "contract_value":
			s.ContractValue = value.(decimal.Decimal)
		case "survey_budget":
			s.SurveyBudget = value.(decimal.Decimal)
		case "cost_ratio":
			s.CostRatio = value.(decimal.Decimal)
		case "address":
			s.Address = value.(string)
		case "service_type_id":
			id := value.(uint)
			s.ServiceTypeID = &id
		case "job_status_id":
			id := value.(uint)
			s.JobStatusID = &id
		case "distance_meters":
			s.DistanceMeters = value.(float64)
		case "progress":
			s.Progress = value.(string)
		}
	}
	s.SyncStatus = models.SyncStatusSynced
	s.LastSyncAt = &now
}
