package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"survey-manager/core/config"
	"survey-manager/core/database"
	"survey-manager/core/loader"
	"survey-manager/core/logger"
	"survey-manager/core/middleware/auth"
	"survey-manager/core/middleware/rayid"
	"survey-manager/core/sheet"

	"survey-manager/feature/enumcat"
	"survey-manager/feature/survey"
	"survey-manager/feature/survey/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "survey-manager/docs/swagger"
)

// @title Survey Manager API
// @version 1.0
// @description API for survey-case reconciliation and the case dashboard.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the survey manager server",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".")
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
		if !cfg.Server.IsValidSyncMode() {
			log.Fatalf("Invalid default sync mode: %s", cfg.Server.SyncMode)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Connect to Database (Optional: the API degrades to disabled
		// features when it is unreachable)
		var db *gorm.DB
		if conn, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Optional database connection failed", zap.Error(err))
		} else {
			db = conn
			if err := db.AutoMigrate(
				&enumcat.Entry{},
				&models.SurveyCase{},
				&models.ContractSummary{},
				&models.SyncLog{},
			); err != nil {
				logg.Fatal("Failed to migrate schema", zap.Error(err))
			}
			logg.Info("Connected to survey database")
		}

		// 4. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		// 5. Initialize Workbook Storage (Optional as well: sync endpoints
		// fail cleanly without it, the dashboard keeps working)
		var workbook survey.RowStore
		if client, err := sheet.NewClient(cfg.Sheet); err != nil {
			logg.Warn("Workbook storage unavailable", zap.Error(err))
		} else {
			workbook = sheet.NewWorkbook(client, cfg.Sheet)
		}

		// 6. Initialize Feature Loader
		mgr := loader.NewManager()

		enums := enumcat.NewResolver(db)
		mgr.Register(enumcat.NewFeature(db, logg))
		mgr.Register(survey.NewFeature(db, workbook, enums, logg, cfg.Server, cfg.Sheet))

		// Middleware Registration
		// RayID first so every request is traceable.
		app.Use(rayid.New())

		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		// Swagger Documentation (Public)
		app.Get("/swagger/*", swagger.HandlerDefault)

		// Auth (Protect API)
		app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

		// 7. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 8. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			if err := app.Listen(":" + cfg.Server.Port); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 9. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
