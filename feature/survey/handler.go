package survey

import (
	"context"
	"errors"
	"strings"
	"time"

	"survey-manager/core/batch"
	"survey-manager/core/logger"
	"survey-manager/feature/survey/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for survey cases and reconciliation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the survey routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/survey")
	group.Post("/sync", h.HandleSync)
	group.Get("/cases", h.HandleListCases)
	group.Get("/cases/:caseId", h.HandleGetCase)
	group.Patch("/cases/:caseId/status", h.HandleUpdateStatus)
	group.Get("/synclog", h.HandleSyncLog)
	group.Get("/integrity", h.HandleIntegrity)
}

// HandleSync triggers a reconciliation run against the workbook snapshot.
// @Summary Run Sync
// @Description Reconcile the workbook snapshot into the survey tables.
// @Tags survey
// @Accept json
// @Produce json
// @Param mode query string false "Sync mode: full, incremental or batched"
// @Param batch query int false "Batch number (batched mode, zero-based)"
// @Param batchSize query int false "Rows per transaction chunk"
// @Param async query bool false "Detach the run and return immediately"
// @Success 200 {object} reconcile.Result "Sync Result"
// @Success 202 {object} map[string]string "Accepted (async)"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /survey/sync [post]
func (h *Handler) HandleSync(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	opts, err := h.syncOptions(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if c.QueryBool("async") {
		// Detached run: the HTTP deadline no longer applies, the outcome
		// lands in the sync log only.
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Minute)
			defer cancel()
			if _, err := h.service.Sync(ctx, opts); err != nil {
				l.Error("async sync failed", zap.Error(err))
			}
		}()
		return c.Status(fiber.StatusAccepted).JSON(fiber.Map{
			"status": "accepted",
			"mode":   string(opts.Mode),
		})
	}

	result, err := h.service.Sync(c.Context(), opts)
	if err != nil {
		l.Error("sync failed", zap.Error(err))
		return h.fail(c, err)
	}
	return c.JSON(result)
}

func (h *Handler) syncOptions(c *fiber.Ctx) (reconcile.Options, error) {
	modeStr := c.Query("mode", h.service.cfg.SyncMode)
	mode, err := reconcile.ParseMode(modeStr)
	if err != nil {
		return reconcile.Options{}, err
	}

	return reconcile.Options{
		Mode:        mode,
		BatchSize:   c.QueryInt("batchSize", batch.DefaultSize),
		BatchNumber: c.QueryInt("batch", 0),
		Deadline:    time.Duration(h.service.cfg.SyncDeadlineSeconds) * time.Second,
		NameMatch:   true,
		Source:      "http",
	}, nil
}

// HandleListCases returns cases for the dashboard.
// @Summary List Cases
// @Description List survey cases, optionally filtered by status or customer.
// @Tags survey
// @Accept json
// @Produce json
// @Param status query string false "Installation status filter"
// @Param customer query string false "Customer name substring filter"
// @Success 200 {array} models.SurveyCase "Cases"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /survey/cases [get]
func (h *Handler) HandleListCases(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	cases, err := h.service.ListCases(c.Context(), CaseFilter{
		Status:   c.Query("status"),
		Customer: c.Query("customer"),
	})
	if err != nil {
		l.Error("case listing failed", zap.Error(err))
		return h.fail(c, err)
	}
	return c.JSON(cases)
}

// HandleGetCase returns one case with its contract summary.
// @Summary Get Case
// @Description Get a single survey case and its contract summary.
// @Tags survey
// @Accept json
// @Produce json
// @Param caseId path string true "Case ID (e.g. '1002237835')"
// @Success 200 {object} CaseDetail "Case Detail"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /survey/cases/{caseId} [get]
func (h *Handler) HandleGetCase(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	detail, err := h.service.GetCase(c.Context(), c.Params("caseId"))
	if err != nil {
		l.Error("case lookup failed", zap.String("case_id", c.Params("caseId")), zap.Error(err))
		return h.fail(c, err)
	}
	return c.JSON(detail)
}

type statusUpdateRequest struct {
	Status string `json:"status"`
}

// HandleUpdateStatus applies a direct status edit to a case.
// @Summary Update Case Status
// @Description Update the installation status of a case. The status is mirrored onto the linked contract summary and written through to the workbook.
// @Tags survey
// @Accept json
// @Produce json
// @Param caseId path string true "Case ID"
// @Param body body statusUpdateRequest true "New status"
// @Success 200 {object} CaseDetail "Updated Case"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /survey/cases/{caseId}/status [patch]
func (h *Handler) HandleUpdateStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req statusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "invalid request body",
		})
	}

	detail, err := h.service.UpdateStatus(c.Context(), c.Params("caseId"), req.Status)
	if err != nil {
		l.Error("status update failed", zap.String("case_id", c.Params("caseId")), zap.Error(err))
		return h.fail(c, err)
	}
	return c.JSON(detail)
}

// HandleSyncLog returns recent reconciliation runs.
// @Summary Get Sync Log
// @Description List recent reconciliation runs, newest first.
// @Tags survey
// @Accept json
// @Produce json
// @Param limit query int false "Maximum entries (default 50)"
// @Success 200 {array} models.SyncLog "Sync Runs"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /survey/synclog [get]
func (h *Handler) HandleSyncLog(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	logs, err := h.service.RecentSyncLogs(c.Context(), c.QueryInt("limit", 50))
	if err != nil {
		l.Error("sync log listing failed", zap.Error(err))
		return h.fail(c, err)
	}
	return c.JSON(logs)
}

// HandleIntegrity runs the schema integrity sweep.
// @Summary Check Integrity
// @Description Scan for orphaned summaries, duplicate sequence numbers, dangling enum references and missing columns.
// @Tags survey
// @Accept json
// @Produce json
// @Success 200 {object} IntegrityReport "Integrity Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /survey/integrity [get]
func (h *Handler) HandleIntegrity(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := CheckIntegrity(c.Context(), h.service.db, h.service.logger)
	if err != nil {
		l.Error("integrity check failed", zap.Error(err))
		return h.fail(c, err)
	}
	return c.JSON(report)
}

// fail maps a service error onto a response. Hard failures are sanitized so
// schema and connection details never leak; safe, recognizable messages pass
// through verbatim.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status, message := classifyError(err)
	return c.Status(status).JSON(fiber.Map{"error": message})
}

func classifyError(err error) (int, string) {
	msg := err.Error()
	lower := strings.ToLower(msg)

	switch {
	case errors.Is(err, ErrSyncInProgress):
		return fiber.StatusConflict, msg
	case errors.Is(err, ErrCaseNotFound) || strings.Contains(lower, "not found"):
		return fiber.StatusNotFound, msg
	case errors.Is(err, ErrInvalidStatus) || strings.Contains(lower, "invalid"):
		return fiber.StatusBadRequest, msg
	case strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline"):
		return fiber.StatusGatewayTimeout, msg
	default:
		return fiber.StatusInternalServerError, "internal processing error"
	}
}
