package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/middleware"
	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/internal/utils"
)

// LibraryHandler serves the book catalogue and loans.
type LibraryHandler struct {
	service service.LibraryService
	paging  Paging
	logger  zerolog.Logger
}

// NewLibraryHandler constructs the handler.
func NewLibraryHandler(service service.LibraryService, paging Paging, logger zerolog.Logger) *LibraryHandler {
	return &LibraryHandler{
		service: service,
		paging:  paging,
		logger:  logger.With().Str("component", "library_handler").Logger(),
	}
}

// Register attaches library routes. Issuing and returning are staff only.
func (h *LibraryHandler) Register(router fiber.Router) {
	staff := middleware.AuthOptions{Role: middleware.AuthRoleStaff}
	router.Get("/books", h.listBooks)
	router.Get("/issuances", h.listIssuances)
	router.Post("/issuances", middleware.WithAuth(h.issue, staff))
	router.Post("/issuances/:id/return", middleware.WithAuth(h.giveBack, staff))
}

func (h *LibraryHandler) listBooks(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c, h.paging, "category", "availability")
	if err != nil {
		return respondError(c, h.logger, err, "list books")
	}

	books, err := h.service.ListBooks(c.UserContext(), criteria)
	if err != nil {
		return respondError(c, h.logger, err, "list books")
	}
	return sendList(c, "books retrieved", books)
}

func (h *LibraryHandler) listIssuances(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c, h.paging, "status", "student_id", "book_id")
	if err != nil {
		return respondError(c, h.logger, err, "list issuances")
	}

	issuances, err := h.service.ListIssuances(c.UserContext(), criteria)
	if err != nil {
		return respondError(c, h.logger, err, "list issuances")
	}
	return sendList(c, "issuances retrieved", issuances)
}

func (h *LibraryHandler) issue(c *fiber.Ctx) error {
	var payload dto.IssueBookRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	receipt, err := h.service.Issue(c.UserContext(), payload)
	if err != nil {
		return respondError(c, h.logger, err, "issue book")
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "book issued", receipt)
}

func (h *LibraryHandler) giveBack(c *fiber.Ctx) error {
	receipt, err := h.service.Return(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "return book")
	}
	return utils.SendSuccess(c, "book returned", receipt)
}
