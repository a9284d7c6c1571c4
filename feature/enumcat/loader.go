package enumcat

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
	db      *gorm.DB
}

// NewFeature creates the enum catalog feature.
func NewFeature(db *gorm.DB, l *zap.Logger) *Feature {
	return &Feature{handler: NewHandler(db, l), db: db}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "enumcat"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.db != nil
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
