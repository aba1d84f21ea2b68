package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/internal/utils"
)

// TeacherHandler serves the teacher directory.
type TeacherHandler struct {
	service service.TeacherService
	paging  Paging
	logger  zerolog.Logger
}

// NewTeacherHandler constructs the handler.
func NewTeacherHandler(service service.TeacherService, paging Paging, logger zerolog.Logger) *TeacherHandler {
	return &TeacherHandler{
		service: service,
		paging:  paging,
		logger:  logger.With().Str("component", "teacher_handler").Logger(),
	}
}

// Register attaches teacher routes to the router group.
func (h *TeacherHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
}

func (h *TeacherHandler) list(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c, h.paging, "status")
	if err != nil {
		return respondError(c, h.logger, err, "list teachers")
	}

	teachers, err := h.service.List(c.UserContext(), criteria, strings.TrimSpace(c.Query("subject_id")))
	if err != nil {
		return respondError(c, h.logger, err, "list teachers")
	}
	return sendList(c, "teachers retrieved", teachers)
}

func (h *TeacherHandler) get(c *fiber.Ctx) error {
	teacher, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "fetch teacher")
	}
	return utils.SendSuccess(c, "teacher retrieved", teacher)
}
