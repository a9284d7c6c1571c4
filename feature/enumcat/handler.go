package enumcat

import (
	"survey-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for the enum catalog.
type Handler struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(db *gorm.DB, l *zap.Logger) *Handler {
	return &Handler{db: db, logger: l}
}

// RegisterRoutes registers the enum catalog routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/enums")
	group.Get("/:category", h.HandleListCategory)
}

// HandleListCategory returns the active entries of one enum category.
// @Summary List Enum Entries
// @Description Returns the active canonical values of a dynamic enum category.
// @Tags enums
// @Accept json
// @Produce json
// @Param category path string true "Enum Category (e.g. 'install_status')"
// @Success 200 {array} enumcat.Entry "Entries"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /enums/{category} [get]
func (h *Handler) HandleListCategory(c *fiber.Ctx) error {
	category := c.Params("category")
	l := logger.WithRayID(h.logger, c)

	var entries []Entry
	err := h.db.WithContext(c.Context()).
		Where("category = ? AND active = ?", category, true).
		Order("value").
		Find(&entries).Error
	if err != nil {
		l.Error("Enum category listing failed", zap.String("category", category), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to list enum entries",
		})
	}

	return c.JSON(entries)
}
