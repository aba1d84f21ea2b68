package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/internal/utils"
)

// StudentHandler serves the student directory.
type StudentHandler struct {
	service service.StudentService
	paging  Paging
	logger  zerolog.Logger
}

// NewStudentHandler constructs the handler.
func NewStudentHandler(service service.StudentService, paging Paging, logger zerolog.Logger) *StudentHandler {
	return &StudentHandler{
		service: service,
		paging:  paging,
		logger:  logger.With().Str("component", "student_handler").Logger(),
	}
}

// Register attaches student routes to the router group.
func (h *StudentHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
}

func (h *StudentHandler) list(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c, h.paging, "class_id", "status", "gender")
	if err != nil {
		return respondError(c, h.logger, err, "list students")
	}

	students, err := h.service.List(c.UserContext(), criteria)
	if err != nil {
		return respondError(c, h.logger, err, "list students")
	}
	return sendList(c, "students retrieved", students)
}

func (h *StudentHandler) get(c *fiber.Ctx) error {
	student, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "fetch student")
	}
	return utils.SendSuccess(c, "student retrieved", student)
}
