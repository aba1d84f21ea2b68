package handler

import (
	"bytes"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/internal/utils"
)

// IDCardHandler serves identity cards and their printable forms.
type IDCardHandler struct {
	service service.IDCardService
	paging  Paging
	logger  zerolog.Logger
}

// NewIDCardHandler constructs the handler.
func NewIDCardHandler(service service.IDCardService, paging Paging, logger zerolog.Logger) *IDCardHandler {
	return &IDCardHandler{
		service: service,
		paging:  paging,
		logger:  logger.With().Str("component", "idcard_handler").Logger(),
	}
}

// Register attaches id card routes to the router group.
func (h *IDCardHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Get("/:id", h.get)
	router.Get("/:id/qr", h.qr)
	router.Get("/:id/pdf", h.pdf)
}

func (h *IDCardHandler) list(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c, h.paging, "holder_type", "status")
	if err != nil {
		return respondError(c, h.logger, err, "list id cards")
	}

	cards, err := h.service.List(c.UserContext(), criteria)
	if err != nil {
		return respondError(c, h.logger, err, "list id cards")
	}
	return sendList(c, "id cards retrieved", cards)
}

func (h *IDCardHandler) get(c *fiber.Ctx) error {
	card, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "fetch id card")
	}
	return utils.SendSuccess(c, "id card retrieved", card)
}

func (h *IDCardHandler) qr(c *fiber.Ctx) error {
	png, err := h.service.QR(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "render id card qr code")
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

func (h *IDCardHandler) pdf(c *fiber.Ctx) error {
	id := c.Params("id")

	var buf bytes.Buffer
	if err := h.service.PDF(c.UserContext(), id, &buf); err != nil {
		return respondError(c, h.logger, err, "render id card")
	}

	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("inline; filename=%q", "id-card-"+id+".pdf"))
	return c.Send(buf.Bytes())
}
