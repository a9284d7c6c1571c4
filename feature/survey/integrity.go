package survey

import (
	"context"
	"fmt"
	"time"

	"survey-manager/core/database"
	"survey-manager/feature/survey/models"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// IntegrityReport is the outcome of one integrity sweep over the survey schema.
type IntegrityReport struct {
	OrphanSummaries    []string            `json:"orphan_summaries"`
	DuplicateSequences []string            `json:"duplicate_sequences"`
	DanglingEnumRefs   map[string]int64    `json:"dangling_enum_refs"`
	MissingColumns     map[string][]string `json:"missing_columns"`
	Healthy            bool                `json:"healthy"`
	GeneratedAt        string              `json:"generated_at"`
	ExecutionTime      string              `json:"execution_time"`
}

// enumRefColumns lists every enum foreign-key column to scan for references
// that no longer resolve to a catalog entry.
var enumRefColumns = map[string][]string{
	"survey_cases":       {"order_type_id", "constraint_id", "thematic_plan_id", "install_status_id", "proposal_status_id", "remark_id"},
	"contract_summaries": {"service_type_id", "job_status_id"},
}

// requiredColumns is the minimum schema each table must carry.
var requiredColumns = map[string][]string{
	"survey_cases":       {"case_id", "service_code", "customer_name", "install_status_id", "budget", "sync_status"},
	"contract_summaries": {"sequence_no", "case_id", "contract_value", "sync_status"},
}

// CheckIntegrity sweeps the survey schema: orphaned summaries, duplicate
// sequence numbers, dangling enum references and missing columns.
// The checks run concurrently; each reads its own slice of the schema.
func CheckIntegrity(ctx context.Context, db *gorm.DB, logger *zap.Logger) (*IntegrityReport, error) {
	startTime := time.Now()
	report := &IntegrityReport{
		DanglingEnumRefs: make(map[string]int64),
		MissingColumns:   make(map[string][]string),
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		orphans, err := findOrphanSummaries(gctx, db)
		if err != nil {
			return err
		}
		report.OrphanSummaries = orphans
		return nil
	})

	g.Go(func() error {
		dupes, err := findDuplicateSequences(gctx, db)
		if err != nil {
			return err
		}
		report.DuplicateSequences = dupes
		return nil
	})

	g.Go(func() error {
		for table, columns := range enumRefColumns {
			for _, column := range columns {
				count, err := countDanglingEnumRefs(gctx, db, table, column)
				if err != nil {
					return err
				}
				if count > 0 {
					report.DanglingEnumRefs[table+"."+column] = count
				}
			}
		}
		return nil
	})

	g.Go(func() error {
		for table, required := range requiredColumns {
			missing, err := database.VerifyColumns(db, table, required)
			if err != nil {
				return err
			}
			if len(missing) > 0 {
				report.MissingColumns[table] = missing
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, seq := range report.OrphanSummaries {
		logger.Warn("data integrity: summary without backing case",
			zap.String("sequence_no", seq))
	}

	report.Healthy = len(report.OrphanSummaries) == 0 &&
		len(report.DuplicateSequences) == 0 &&
		len(report.DanglingEnumRefs) == 0 &&
		len(report.MissingColumns) == 0
	report.GeneratedAt = time.Now().Format(time.RFC3339)
	report.ExecutionTime = time.Since(startTime).String()

	return report, nil
}

func findOrphanSummaries(ctx context.Context, db *gorm.DB) ([]string, error) {
	var orphans []string
	err := db.WithContext(ctx).
		Model(&models.ContractSummary{}).
		Where("case_id NOT IN (?)", db.Model(&models.SurveyCase{}).Select("case_id")).
		Order("sequence_no").
		Pluck("sequence_no", &orphans).Error
	if err != nil {
		return nil, fmt.Errorf("orphan summary scan failed: %w", err)
	}
	return orphans, nil
}

func findDuplicateSequences(ctx context.Context, db *gorm.DB) ([]string, error) {
	var dupes []string
	err := db.WithContext(ctx).
		Model(&models.ContractSummary{}).
		Select("sequence_no").
		Group("sequence_no").
		Having("COUNT(*) > 1").
		Pluck("sequence_no", &dupes).Error
	if err != nil {
		return nil, fmt.Errorf("duplicate sequence scan failed: %w", err)
	}
	return dupes, nil
}

func countDanglingEnumRefs(ctx context.Context, db *gorm.DB, table, column string) (int64, error) {
	var count int64
	query := fmt.Sprintf(
		"SELECT COUNT(*) FROM %s WHERE %s IS NOT NULL AND %s NOT IN (SELECT id FROM enum_entries)",
		table, column, column,
	)
	if err := db.WithContext(ctx).Raw(query).Scan(&count).Error; err != nil {
		return 0, fmt.Errorf("dangling enum scan failed for %s.%s: %w", table, column, err)
	}
	return count, nil
}
