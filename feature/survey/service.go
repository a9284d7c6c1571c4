package survey

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"survey-manager/core/server"
	"survey-manager/core/sheet"
	"survey-manager/core/utils"
	"survey-manager/feature/enumcat"
	"survey-manager/feature/survey/models"
	"survey-manager/feature/survey/normalize"
	"survey-manager/feature/survey/reconcile"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// RowStore is the workbook surface the service needs: bulk reads for
// reconciliation, single-cell writes for the edit write-through.
type RowStore interface {
	ReadCaseRows(ctx context.Context) ([]sheet.RawRow, error)
	ReadSummaryRows(ctx context.Context) ([]sheet.RawRow, error)
	UpdateCell(ctx context.Context, sheetName, matchKey string, col int, value string) error
}

// ErrCaseNotFound is returned when a case id matches nothing.
var ErrCaseNotFound = errors.New("case not found")

// ErrInvalidStatus is returned when a status edit carries no usable value.
var ErrInvalidStatus = errors.New("invalid status value")

// ErrSyncInProgress is returned when a reconciliation run is requested while
// another is still running. Overlapping runs would interleave writes on the
// same case ids, so they are rejected rather than queued.
var ErrSyncInProgress = errors.New("a sync run is already in progress")

// CaseDetail is one case with its contract summary, when one exists.
type CaseDetail struct {
	Case    models.SurveyCase       `json:"case"`
	Summary *models.ContractSummary `json:"summary,omitempty"`
}

// CaseFilter narrows the dashboard listing.
type CaseFilter struct {
	// Status filters by installation status label or token.
	Status string
	// Customer filters by customer-name substring.
	Customer string
}

// Service handles survey operations.
type Service struct {
	db       *gorm.DB
	workbook RowStore
	enums    *enumcat.Resolver
	engine   *reconcile.Engine
	logger   *zap.Logger
	cfg      server.Config
	sheetCfg sheet.Config

	syncing atomic.Bool
}

// NewService creates a new survey service.
func NewService(db *gorm.DB, workbook RowStore, enums *enumcat.Resolver, logger *zap.Logger, cfg server.Config, sheetCfg sheet.Config) *Service {
	return &Service{
		db:       db,
		workbook: workbook,
		enums:    enums,
		engine:   reconcile.NewEngine(db, enums, logger),
		logger:   logger,
		cfg:      cfg,
		sheetCfg: sheetCfg,
	}
}

// Sync reads both sheets from the workbook snapshot and runs one
// reconciliation pass. Only one run is admitted at a time.
func (s *Service) Sync(ctx context.Context, opts reconcile.Options) (*reconcile.Result, error) {
	if s.workbook == nil {
		return nil, errors.New("workbook storage is not configured")
	}

	if !s.syncing.CompareAndSwap(false, true) {
		return nil, ErrSyncInProgress
	}
	defer s.syncing.Store(false)

	caseRows, err := s.workbook.ReadCaseRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read case sheet: %w", err)
	}
	summaryRows, err := s.workbook.ReadSummaryRows(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read summary sheet: %w", err)
	}

	return s.engine.Run(ctx, caseRows, summaryRows, opts)
}

// ListCases returns cases for the dashboard, optionally filtered.
func (s *Service) ListCases(ctx context.Context, filter CaseFilter) ([]models.SurveyCase, error) {
	q := s.db.WithContext(ctx).Model(&models.SurveyCase{})

	if filter.Status != "" {
		token := normalize.InstallStatusToken(filter.Status)
		var entry enumcat.Entry
		err := s.db.WithContext(ctx).
			Where("category = ? AND value = ?", enumcat.CategoryInstallStatus, token).
			First(&entry).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// Unknown status matches nothing rather than erroring.
			return []models.SurveyCase{}, nil
		}
		if err != nil {
			return nil, fmt.Errorf("failed to resolve status filter: %w", err)
		}
		q = q.Where("install_status_id = ?", entry.ID)
	}
	if filter.Customer != "" {
		q = q.Where("customer_name LIKE ?", "%"+filter.Customer+"%")
	}

	var cases []models.SurveyCase
	if err := q.Order("case_id").Find(&cases).Error; err != nil {
		return nil, fmt.Errorf("failed to list cases: %w", err)
	}
	return cases, nil
}

// GetCase returns one case with its summary.
func (s *Service) GetCase(ctx context.Context, caseID string) (*CaseDetail, error) {
	var c models.SurveyCase
	err := s.db.WithContext(ctx).Where("case_id = ?", caseID).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrCaseNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load case: %w", err)
	}

	detail := &CaseDetail{Case: c}

	var summary models.ContractSummary
	err = s.db.WithContext(ctx).Where("case_id = ?", caseID).First(&summary).Error
	if err == nil {
		detail.Summary = &summary
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to load summary: %w", err)
	}

	return detail, nil
}

// UpdateStatus applies a direct status edit to a case. The shared status is
// mirrored onto the linked summary in the same transaction so the two never
// diverge, both records are marked EDITED, and the change is written through
// to the workbook best-effort.
func (s *Service) UpdateStatus(ctx context.Context, caseID, status string) (*CaseDetail, error) {
	token := normalize.InstallStatusToken(status)
	if token == "" {
		return nil, ErrInvalidStatus
	}

	// Enum resolution stays outside the transaction.
	installID, err := s.enums.Resolve(ctx, enumcat.CategoryInstallStatus, token)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve status: %w", err)
	}
	jobID, err := s.enums.Resolve(ctx, enumcat.CategoryJobStatus, token)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve status: %w", err)
	}

	var summary *models.ContractSummary
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var c models.SurveyCase
		if err := tx.Where("case_id = ?", caseID).First(&c).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrCaseNotFound
			}
			return err
		}

		err := tx.Model(&models.SurveyCase{}).
			Where("case_id = ?", caseID).
			Updates(map[string]any{
				"install_status_id": installID,
				"sync_status":       models.SyncStatusEdited,
			}).Error
		if err != nil {
			return err
		}

		var sum models.ContractSummary
		err = tx.Where("case_id = ?", caseID).First(&sum).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		if err != nil {
			return err
		}

		err = tx.Model(&models.ContractSummary{}).
			Where("case_id = ?", caseID).
			Updates(map[string]any{
				"job_status_id": jobID,
				"sync_status":   models.SyncStatusEdited,
			}).Error
		if err != nil {
			return err
		}
		summary = &sum
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.writeThroughStatus(ctx, caseID, summary, token)

	return s.GetCase(ctx, caseID)
}

// writeThroughStatus pushes an edited status back to the workbook. The
// database is the system of record; a sink failure is logged, not surfaced.
func (s *Service) writeThroughStatus(ctx context.Context, caseID string, summary *models.ContractSummary, token string) {
	if s.workbook == nil {
		return
	}

	label := utils.TitleLabel(token)
	err := s.workbook.UpdateCell(ctx, s.sheetCfg.CaseSheet, caseID, normalize.CaseColInstallStatus, label)
	if err != nil {
		s.logger.Warn("status write-through to case sheet failed",
			zap.String("case_id", caseID), zap.Error(err))
	}

	if summary == nil {
		return
	}
	err = s.workbook.UpdateCell(ctx, s.sheetCfg.SummarySheet, summary.SequenceNo, normalize.SumColJobStatus, label)
	if err != nil {
		s.logger.Warn("status write-through to summary sheet failed",
			zap.String("sequence_no", summary.SequenceNo), zap.Error(err))
	}
}

// RecentSyncLogs returns the latest reconciliation run records, newest first.
func (s *Service) RecentSyncLogs(ctx context.Context, limit int) ([]models.SyncLog, error) {
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	var logs []models.SyncLog
	err := s.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&logs).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load sync logs: %w", err)
	}
	return logs, nil
}
