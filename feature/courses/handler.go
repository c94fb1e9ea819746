package courses

import (
	"errors"

	"github.com/bme-wacoisd/google-classroom/core/logger"
	"github.com/bme-wacoisd/google-classroom/core/utils"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for course browsing.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the courses routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/courses")
	group.Get("/", h.HandleListCourses)
	group.Get("/periods", h.HandlePeriods)
	group.Get("/:id/students", h.HandleStudents)
}

// HandleListCourses lists the active platform courses.
// @Summary List Courses
// @Description Lists active Google Classroom courses with their extracted periods and roster sizes.
// @Tags courses
// @Produce json
// @Param refresh query boolean false "Drop the snapshot cache first"
// @Success 200 {object} map[string]interface{} "Course List"
// @Failure 502 {object} map[string]string "Platform Unreachable"
// @Router /courses [get]
func (h *Handler) HandleListCourses(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	refresh := utils.ToBool(c.Query("refresh"))
	views, fetchedAt, err := h.service.Courses(c.Context(), refresh)
	if err != nil {
		l.Error("Failed to list courses", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"courses":    views,
		"count":      len(views),
		"fetched_at": fetchedAt,
	})
}

// HandlePeriods resolves periods to the courses claiming them.
// @Summary Resolve Periods
// @Description Maps each period claimed by a course name to its claimants, flagging ambiguous periods.
// @Tags courses
// @Produce json
// @Success 200 {object} map[string]interface{} "Period Claims"
// @Failure 502 {object} map[string]string "Platform Unreachable"
// @Router /courses/periods [get]
func (h *Handler) HandlePeriods(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	claims, err := h.service.Periods(c.Context())
	if err != nil {
		l.Error("Failed to resolve periods", zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	ambiguous := 0
	for _, claim := range claims {
		if claim.Ambiguous {
			ambiguous++
		}
	}

	return c.JSON(fiber.Map{
		"periods":   claims,
		"count":     len(claims),
		"ambiguous": ambiguous,
	})
}

// HandleStudents returns the roster of one course.
// @Summary List Course Students
// @Description Returns the student roster of one platform course.
// @Tags courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} map[string]interface{} "Student List"
// @Failure 404 {object} map[string]string "Course Not Found"
// @Failure 502 {object} map[string]string "Platform Unreachable"
// @Router /courses/{id}/students [get]
func (h *Handler) HandleStudents(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	students, err := h.service.Students(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ErrCourseNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Failed to list students", zap.String("course_id", c.Params("id")), zap.Error(err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}
