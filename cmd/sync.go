package cmd

import (
	"context"
	"time"

	"survey-manager/core/config"
	"survey-manager/core/database"
	"survey-manager/core/logger"
	"survey-manager/core/sheet"
	"survey-manager/feature/enumcat"
	"survey-manager/feature/survey"
	"survey-manager/feature/survey/models"
	"survey-manager/feature/survey/reconcile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the sync command
	syncModeFlag      string
	syncBatchFlag     int
	syncBatchSizeFlag int
	syncDeadlineFlag  int
	syncNameMatchFlag bool
)

// syncCmd runs one reconciliation pass from the command line.
var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Reconcile the workbook snapshot into the database",
	Long: `Runs one reconciliation pass without starting the HTTP server.

Examples:
  # Incremental pass with the configured defaults
  survey-manager sync

  # Full pass, deleting records absent from the workbook
  survey-manager sync --mode full

  # One window of a batched pass
  survey-manager sync --mode batched --batch 2 --batch-size 100`,
	RunE: runSync,
}

func init() {
	syncCmd.Flags().StringVar(&syncModeFlag, "mode", "", "Sync mode: full, incremental or batched (default from config)")
	syncCmd.Flags().IntVar(&syncBatchFlag, "batch", 0, "Batch number for batched mode (zero-based)")
	syncCmd.Flags().IntVar(&syncBatchSizeFlag, "batch-size", 0, "Rows per transaction chunk (default from engine)")
	syncCmd.Flags().IntVar(&syncDeadlineFlag, "deadline", 0, "Wall-clock budget in seconds (default from config)")
	syncCmd.Flags().BoolVar(&syncNameMatchFlag, "name-match", true, "Enable customer-name fallback during identity resolution")

	RootCmd.AddCommand(syncCmd)
}

func runSync(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return err
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return err
	}
	defer logg.Sync()

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return err
	}
	if err := db.AutoMigrate(
		&enumcat.Entry{},
		&models.SurveyCase{},
		&models.ContractSummary{},
		&models.SyncLog{},
	); err != nil {
		return err
	}

	client, err := sheet.NewClient(cfg.Sheet)
	if err != nil {
		return err
	}
	workbook := sheet.NewWorkbook(client, cfg.Sheet)

	modeStr := syncModeFlag
	if modeStr == "" {
		modeStr = cfg.Server.SyncMode
	}
	mode, err := reconcile.ParseMode(modeStr)
	if err != nil {
		return err
	}

	deadline := syncDeadlineFlag
	if deadline <= 0 {
		deadline = cfg.Server.SyncDeadlineSeconds
	}

	enums := enumcat.NewResolver(db)
	svc := survey.NewService(db, workbook, enums, logg, cfg.Server, cfg.Sheet)

	result, err := svc.Sync(ctx, reconcile.Options{
		Mode:        mode,
		BatchSize:   syncBatchSizeFlag,
		BatchNumber: syncBatchFlag,
		Deadline:    time.Duration(deadline) * time.Second,
		NameMatch:   syncNameMatchFlag,
		Source:      "cli",
	})
	if err != nil {
		return err
	}

	logg.Info("Sync finished",
		zap.String("mode", string(mode)),
		zap.String("state", string(result.State)),
		zap.Int("created", result.Created),
		zap.Int("updated", result.Updated),
		zap.Int("deleted", result.Deleted),
		zap.Int("skipped", result.Skipped),
		zap.Int("errors", result.Errors),
		zap.Int("batches", result.BatchesProcessed),
		zap.Int("remaining", result.Remaining()),
		zap.Bool("completed", result.Completed))

	return nil
}
