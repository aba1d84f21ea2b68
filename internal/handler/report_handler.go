package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/internal/utils"
)

// ReportHandler serves per-student and per-teacher term reports.
type ReportHandler struct {
	service service.ReportService
	logger  zerolog.Logger
}

// NewReportHandler constructs the handler.
func NewReportHandler(service service.ReportService, logger zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		service: service,
		logger:  logger.With().Str("component", "report_handler").Logger(),
	}
}

// Register attaches report routes to the router group.
func (h *ReportHandler) Register(router fiber.Router) {
	router.Get("/leaderboard", h.leaderboard)
	router.Get("/students/:id", h.student)
	router.Get("/teachers/:id", h.teacher)
}

func (h *ReportHandler) student(c *fiber.Ctx) error {
	report, err := h.service.Student(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "build student report")
	}
	return utils.SendSuccess(c, "student report generated", report)
}

func (h *ReportHandler) teacher(c *fiber.Ctx) error {
	report, err := h.service.Teacher(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "build teacher report")
	}
	return utils.SendSuccess(c, "teacher report generated", report)
}

func (h *ReportHandler) leaderboard(c *fiber.Ctx) error {
	limit, err := parseQueryInt(c, "limit")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "limit must be a number")
	}

	entries, err := h.service.Leaderboard(c.UserContext(), strings.TrimSpace(c.Query("class_id")), limit)
	if err != nil {
		return respondError(c, h.logger, err, "build leaderboard")
	}
	return utils.SendSuccess(c, "leaderboard generated", entries)
}
