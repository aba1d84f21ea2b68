package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/service"
)

// AssignmentHandler lists assignments across classes.
type AssignmentHandler struct {
	service service.AssignmentService
	paging  Paging
	logger  zerolog.Logger
}

// NewAssignmentHandler constructs the handler.
func NewAssignmentHandler(service service.AssignmentService, paging Paging, logger zerolog.Logger) *AssignmentHandler {
	return &AssignmentHandler{
		service: service,
		paging:  paging,
		logger:  logger.With().Str("component", "assignment_handler").Logger(),
	}
}

// Register attaches assignment routes to the router group.
func (h *AssignmentHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

func (h *AssignmentHandler) list(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c, h.paging, "class_id", "subject_id", "teacher_id", "status")
	if err != nil {
		return respondError(c, h.logger, err, "list assignments")
	}

	assignments, err := h.service.List(c.UserContext(), criteria)
	if err != nil {
		return respondError(c, h.logger, err, "list assignments")
	}
	return sendList(c, "assignments retrieved", assignments)
}
