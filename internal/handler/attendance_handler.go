package handler

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/middleware"
	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/internal/utils"
	"github.com/noah-isme/school-admin-api/pkg/spreadsheet"
)

// AttendanceHandler serves the attendance register.
type AttendanceHandler struct {
	service service.AttendanceService
	paging  Paging
	logger  zerolog.Logger
}

// NewAttendanceHandler constructs the handler.
func NewAttendanceHandler(service service.AttendanceService, paging Paging, logger zerolog.Logger) *AttendanceHandler {
	return &AttendanceHandler{
		service: service,
		paging:  paging,
		logger:  logger.With().Str("component", "attendance_handler").Logger(),
	}
}

// Register attaches attendance routes. Marking is staff only.
func (h *AttendanceHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/summary", h.summary)
	router.Get("/export", h.export)
	router.Post("", middleware.WithAuth(h.mark, middleware.AuthOptions{Role: middleware.AuthRoleStaff}))
}

var attendanceFilters = []string{"class_id", "student_id", "date", "status"}

func (h *AttendanceHandler) list(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c, h.paging, attendanceFilters...)
	if err != nil {
		return respondError(c, h.logger, err, "list attendance")
	}

	records, err := h.service.List(c.UserContext(), criteria)
	if err != nil {
		return respondError(c, h.logger, err, "list attendance")
	}
	return sendList(c, "attendance retrieved", records)
}

func (h *AttendanceHandler) summary(c *fiber.Ctx) error {
	classID := strings.TrimSpace(c.Query("class_id"))
	date := strings.TrimSpace(c.Query("date"))

	summary, err := h.service.Summary(c.UserContext(), classID, date)
	if err != nil {
		return respondError(c, h.logger, err, "summarise attendance")
	}
	return utils.SendSuccess(c, "attendance summary retrieved", summary)
}

func (h *AttendanceHandler) mark(c *fiber.Ctx) error {
	var payload dto.MarkAttendanceRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	result, err := h.service.Mark(c.UserContext(), payload)
	if err != nil {
		return respondError(c, h.logger, err, "mark attendance")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "attendance recorded", result)
}

func (h *AttendanceHandler) export(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c, h.paging, attendanceFilters...)
	if err != nil {
		return respondError(c, h.logger, err, "export attendance")
	}

	var buf bytes.Buffer
	if err := h.service.Export(c.UserContext(), criteria, &buf); err != nil {
		return respondError(c, h.logger, err, "export attendance")
	}

	filename := "attendance.xlsx"
	if classID := criteria.Filters["class_id"]; classID != "" {
		filename = fmt.Sprintf("attendance-%s.xlsx", classID)
	}
	c.Set(fiber.HeaderContentType, spreadsheet.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", filename))
	return c.Send(buf.Bytes())
}
