package status

import (
	"errors"

	"github.com/bme-wacoisd/google-classroom/core/logger"
	"github.com/bme-wacoisd/google-classroom/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

var storageNotConfigured = errors.New("object storage is not configured")

// Handler handles HTTP requests for environment checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the status routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/status")
	group.Get("/", h.HandleStatus)
	group.Get("/database", h.HandleDatabaseCheck)
	group.Get("/storage", h.HandleStorageCheck)
	group.Get("/classroom", h.HandleClassroomCheck)
}

// HandleStatus triggers all environment checks.
// @Summary Run All Status Checks
// @Description Checks the database schema, the archive bucket, and platform reachability in one call.
// @Tags status
// @Produce json
// @Success 200 {object} map[string]interface{} "Combined Report"
// @Router /status [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Triggering all status checks")

	ctx := c.Context()
	report := make(map[string]interface{})

	if dbReport, err := h.service.CheckDatabase(ctx); err != nil {
		report["database"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["database"] = dbReport
	}

	if stReport, err := h.service.CheckStorage(ctx); err != nil {
		report["storage"] = map[string]interface{}{"status": "error", "error": err.Error()}
	} else {
		report["storage"] = stReport
	}

	report["classroom"] = h.service.CheckClassroom(ctx)

	return c.JSON(report)
}

// HandleDatabaseCheck verifies the run-history schema.
// @Summary Check Database
// @Description Verifies the database connection and the audit_runs schema against the run model.
// @Tags status
// @Produce json
// @Success 200 {object} checks.DatabaseReport "Database Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /status/database [get]
func (h *Handler) HandleDatabaseCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckDatabase(c.Context())
	if err != nil {
		l.Error("Database check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(report)
}

// HandleStorageCheck checks and optionally fixes the archive bucket.
// @Summary Check Storage
// @Description Checks the archive bucket and the exports/ prefix. Optionally creates the missing pieces.
// @Tags status
// @Produce json
// @Param fix query boolean false "Create missing bucket and prefixes"
// @Success 200 {object} map[string]interface{} "Storage Report"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /status/storage [get]
func (h *Handler) HandleStorageCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	fix := utils.ToBool(c.Query("fix"))

	report, err := h.service.CheckStorage(c.Context())
	if err != nil {
		l.Error("Storage check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if report.Status != "ok" {
		l.Warn("Storage layout incomplete",
			zap.Bool("bucket_exists", report.BucketExists),
			zap.Strings("missing_prefixes", report.MissingPrefixes))

		if fix {
			l.Info("Attempting to fix storage layout")
			if err := h.service.FixStorage(c.Context(), report); err != nil {
				return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"error":   "Failed to fix storage layout",
					"details": err.Error(),
					"report":  report,
				})
			}
			return c.JSON(fiber.Map{
				"status": "fixed",
				"fixed":  report.MissingPrefixes,
			})
		}
	}

	return c.JSON(report)
}

// HandleClassroomCheck probes platform reachability.
// @Summary Check Classroom API
// @Description Probes the Google Classroom API with a single-page course request.
// @Tags status
// @Produce json
// @Success 200 {object} checks.ClassroomReport "Classroom Report"
// @Router /status/classroom [get]
func (h *Handler) HandleClassroomCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report := h.service.CheckClassroom(c.Context())
	if report.Status != "ok" {
		l.Warn("Platform unreachable", zap.String("error", report.Error))
	}

	return c.JSON(report)
}
