package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/internal/utils"
)

// ClassHandler serves classes, their notes and the subject catalogue.
type ClassHandler struct {
	service service.ClassService
	paging  Paging
	logger  zerolog.Logger
}

// NewClassHandler constructs the handler.
func NewClassHandler(service service.ClassService, paging Paging, logger zerolog.Logger) *ClassHandler {
	return &ClassHandler{
		service: service,
		paging:  paging,
		logger:  logger.With().Str("component", "class_handler").Logger(),
	}
}

// Register attaches class routes to the router group.
func (h *ClassHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Get("/:id/notes", h.notes)
}

// RegisterSubjects attaches the subject catalogue.
func (h *ClassHandler) RegisterSubjects(router fiber.Router) {
	router.Get("", h.subjects)
}

func (h *ClassHandler) list(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c, h.paging, "teacher_id", "section", "grade")
	if err != nil {
		return respondError(c, h.logger, err, "list classes")
	}

	classes, err := h.service.List(c.UserContext(), criteria)
	if err != nil {
		return respondError(c, h.logger, err, "list classes")
	}
	return sendList(c, "classes retrieved", classes)
}

func (h *ClassHandler) get(c *fiber.Ctx) error {
	class, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "fetch class")
	}
	return utils.SendSuccess(c, "class retrieved", class)
}

func (h *ClassHandler) notes(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c, h.paging, "subject_id", "teacher_id")
	if err != nil {
		return respondError(c, h.logger, err, "list class notes")
	}

	notes, err := h.service.Notes(c.UserContext(), c.Params("id"), criteria)
	if err != nil {
		return respondError(c, h.logger, err, "list class notes")
	}
	return sendList(c, "class notes retrieved", notes)
}

func (h *ClassHandler) subjects(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c, h.paging, "class_id", "teacher_id")
	if err != nil {
		return respondError(c, h.logger, err, "list subjects")
	}

	subjects, err := h.service.Subjects(c.UserContext(), criteria)
	if err != nil {
		return respondError(c, h.logger, err, "list subjects")
	}
	return sendList(c, "subjects retrieved", subjects)
}
