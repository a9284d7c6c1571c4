package survey

import (
	"survey-manager/core/server"
	"survey-manager/core/sheet"
	"survey-manager/feature/enumcat"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Survey feature.
func NewFeature(db *gorm.DB, workbook RowStore, enums *enumcat.Resolver, logger *zap.Logger, cfg server.Config, sheetCfg sheet.Config) *Feature {
	svc := NewService(db, workbook, enums, logger, cfg, sheetCfg)
	h := NewHandler(svc)
	return &Feature{service: svc, handler: h}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "survey"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.service.db != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
