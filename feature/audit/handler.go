package audit

import (
	"bytes"
	"errors"
	"io"

	"github.com/bme-wacoisd/google-classroom/core/export"
	"github.com/bme-wacoisd/google-classroom/core/logger"
	"github.com/bme-wacoisd/google-classroom/core/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler handles HTTP requests for audit runs.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the audit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/audit")
	group.Post("/run", h.HandleRun)
	group.Get("/latest", h.HandleLatest)
	group.Get("/runs", h.HandleListRuns)
	group.Get("/runs/:id", h.HandleGetRun)
	group.Get("/runs/:id/export", h.HandleExportRun)
	group.Get("/archives", h.HandleListArchives)
	group.Get("/archives/:id/:file", h.HandleDownloadArchive)
	group.Delete("/archives/:id", h.HandleRemoveArchive)
}

// HandleRun executes one audit over an uploaded SIS export.
// @Summary Run Roster Audit
// @Description Parses the uploaded SIS export (CSV or extractor JSON), fetches the Google Classroom snapshot, and reconciles the two. The export goes in a multipart "file" field or the raw request body.
// @Tags audit
// @Accept mpfd
// @Produce json
// @Param file formData file false "SIS export (CSV or JSON)"
// @Param swapped query boolean false "Also accept swapped first/last names"
// @Param archive query boolean false "Upload diff and missing CSV to object storage"
// @Success 200 {object} audit.RunResult "Audit Result"
// @Failure 400 {object} map[string]string "Bad Request"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	opts := RunOptions{
		AcceptSwapped: utils.ToBool(c.Query("swapped")),
		Archive:       utils.ToBool(c.Query("archive")),
	}

	var source io.Reader = bytes.NewReader(c.Body())
	contentType := c.Get(fiber.HeaderContentType)
	if file, err := c.FormFile("file"); err == nil && file != nil {
		f, err := file.Open()
		if err != nil {
			l.Error("Failed to open uploaded file", zap.Error(err))
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "could not open uploaded file"})
		}
		defer f.Close()
		source = f
		contentType = file.Header.Get(fiber.HeaderContentType)
		if contentType == "" {
			contentType = "text/csv"
		}
	} else if len(c.Body()) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "no roster data in request"})
	}

	l.Info("Starting audit run",
		zap.Bool("accept_swapped", opts.AcceptSwapped),
		zap.Bool("archive", opts.Archive))

	result, err := h.service.Run(c.Context(), source, contentType, opts)
	if err != nil {
		l.Error("Audit run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(result)
}

// HandleLatest returns the most recent audit run with its diff.
// @Summary Latest Audit Run
// @Description Returns the most recent persisted run and its full diff.
// @Tags audit
// @Produce json
// @Success 200 {object} map[string]interface{} "Run and Diff"
// @Failure 404 {object} map[string]string "No Runs Recorded"
// @Failure 503 {object} map[string]string "No Database"
// @Router /audit/latest [get]
func (h *Handler) HandleLatest(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	run, diff, err := h.service.Latest()
	if err != nil {
		return h.runLookupError(c, l, err)
	}

	return c.JSON(fiber.Map{"run": run, "diff": diff})
}

// HandleListRuns returns recent audit runs without their diffs.
// @Summary List Audit Runs
// @Description Lists persisted runs, newest first.
// @Tags audit
// @Produce json
// @Param limit query int false "Maximum runs to return (default 20)"
// @Success 200 {object} map[string]interface{} "Run List"
// @Failure 503 {object} map[string]string "No Database"
// @Router /audit/runs [get]
func (h *Handler) HandleListRuns(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	limit := utils.ToInt(c.Query("limit"))
	if limit <= 0 {
		limit = 20
	}

	runs, err := h.service.List(limit)
	if err != nil {
		return h.runLookupError(c, l, err)
	}

	return c.JSON(fiber.Map{"runs": runs, "count": len(runs)})
}

// HandleGetRun returns one audit run with its diff.
// @Summary Get Audit Run
// @Description Returns a persisted run and its full diff by run ID.
// @Tags audit
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Run and Diff"
// @Failure 404 {object} map[string]string "Run Not Found"
// @Failure 503 {object} map[string]string "No Database"
// @Router /audit/runs/{id} [get]
func (h *Handler) HandleGetRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	run, diff, err := h.service.Get(c.Params("id"))
	if err != nil {
		return h.runLookupError(c, l, err)
	}

	return c.JSON(fiber.Map{"run": run, "diff": diff})
}

// HandleExportRun downloads the missing-students CSV for one run.
// @Summary Export Missing Students CSV
// @Description Renders the run's missing-from-platform students as a CSV download.
// @Tags audit
// @Produce plain
// @Param id path string true "Run ID"
// @Success 200 {string} string "CSV Content"
// @Failure 404 {object} map[string]string "Run Not Found"
// @Failure 503 {object} map[string]string "No Database"
// @Router /audit/runs/{id}/export [get]
func (h *Handler) HandleExportRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	run, diff, err := h.service.Get(c.Params("id"))
	if err != nil {
		return h.runLookupError(c, l, err)
	}

	var buf bytes.Buffer
	if err := export.WriteMissingCSV(&buf, diff); err != nil {
		l.Error("Failed to render missing CSV", zap.String("run_id", run.ID), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="missing_`+run.ID+`.csv"`)
	return c.Send(buf.Bytes())
}

// HandleListArchives lists archived runs in object storage.
// @Summary List Archived Runs
// @Description Lists the runs uploaded to the archive bucket, newest first.
// @Tags audit
// @Produce json
// @Success 200 {object} map[string]interface{} "Archive List"
// @Failure 503 {object} map[string]string "No Object Storage"
// @Router /audit/archives [get]
func (h *Handler) HandleListArchives(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	archiver := h.service.Archiver()
	if archiver == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "archiving requires object storage"})
	}

	entries, err := archiver.List(c.Context())
	if err != nil {
		l.Error("Failed to list archives", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"archives": entries, "count": len(entries)})
}

// HandleDownloadArchive streams one archived file back.
// @Summary Download Archived File
// @Description Streams diff.json or missing.csv for an archived run.
// @Tags audit
// @Produce plain
// @Param id path string true "Run ID"
// @Param file path string true "File name (diff.json or missing.csv)"
// @Success 200 {string} string "File Content"
// @Failure 404 {object} map[string]string "Archive Not Found"
// @Failure 503 {object} map[string]string "No Object Storage"
// @Router /audit/archives/{id}/{file} [get]
func (h *Handler) HandleDownloadArchive(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	archiver := h.service.Archiver()
	if archiver == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "archiving requires object storage"})
	}

	runID := c.Params("id")
	name := c.Params("file")
	obj, err := archiver.Open(c.Context(), runID, name)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	defer obj.Close()

	// The minio client defers existence errors until the first read.
	data, err := io.ReadAll(obj)
	if err != nil {
		if minio.ToErrorResponse(err).StatusCode == fiber.StatusNotFound {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "archived file not found"})
		}
		l.Error("Failed to read archived file",
			zap.String("run_id", runID),
			zap.String("file", name),
			zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	contentType := "application/json"
	if name == "missing.csv" {
		contentType = "text/csv; charset=utf-8"
	}
	c.Set(fiber.HeaderContentType, contentType)
	return c.Send(data)
}

// HandleRemoveArchive deletes every archived object for one run.
// @Summary Remove Archived Run
// @Description Deletes the archived diff and CSV for a run from object storage.
// @Tags audit
// @Produce json
// @Param id path string true "Run ID"
// @Success 200 {object} map[string]interface{} "Removal Result"
// @Failure 503 {object} map[string]string "No Object Storage"
// @Router /audit/archives/{id} [delete]
func (h *Handler) HandleRemoveArchive(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	archiver := h.service.Archiver()
	if archiver == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": "archiving requires object storage"})
	}

	removed, err := archiver.Remove(c.Context(), c.Params("id"))
	if err != nil {
		l.Error("Failed to remove archive", zap.String("run_id", c.Params("id")), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"status": "removed", "objects": removed})
}

// runLookupError maps store errors onto HTTP statuses shared by the run
// lookup endpoints.
func (h *Handler) runLookupError(c *fiber.Ctx, l *zap.Logger, err error) error {
	switch {
	case errors.Is(err, ErrNoDatabase):
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "run not found"})
	default:
		l.Error("Run lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
}
