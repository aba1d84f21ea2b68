package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/middleware"
	"github.com/noah-isme/school-admin-api/internal/models"
	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/internal/utils"
)

// NoticeHandler serves the notice board.
type NoticeHandler struct {
	service service.NoticeService
	paging  Paging
	logger  zerolog.Logger
}

// NewNoticeHandler constructs the handler.
func NewNoticeHandler(service service.NoticeService, paging Paging, logger zerolog.Logger) *NoticeHandler {
	return &NoticeHandler{
		service: service,
		paging:  paging,
		logger:  logger.With().Str("component", "notice_handler").Logger(),
	}
}

// Register attaches notice routes. Posting and dismissing are staff only.
func (h *NoticeHandler) Register(router fiber.Router) {
	staff := middleware.AuthOptions{Role: middleware.AuthRoleStaff}
	router.Get("", h.list)
	router.Post("", middleware.WithAuth(h.post, staff))
	router.Delete("/:id", middleware.WithAuth(h.dismiss, staff))
}

func (h *NoticeHandler) list(c *fiber.Ctx) error {
	criteria, err := parseCriteria(c, h.paging, "pinned")
	if err != nil {
		return respondError(c, h.logger, err, "list notices")
	}

	notices, err := h.service.List(c.UserContext(), criteria, noticeAudience(c))
	if err != nil {
		return respondError(c, h.logger, err, "list notices")
	}
	return sendList(c, "notices retrieved", notices)
}

// noticeAudience pins teacher and student sessions to their own audience.
// Other callers may pick one with the audience query parameter.
func noticeAudience(c *fiber.Ctx) string {
	role, _ := c.Locals("user_role").(string)
	switch strings.ToLower(strings.TrimSpace(role)) {
	case models.RoleTeacher:
		return models.NoticeAudienceTeachers
	case models.RoleStudent:
		return models.NoticeAudienceStudents
	default:
		return c.Query("audience")
	}
}

func (h *NoticeHandler) post(c *fiber.Ctx) error {
	var payload dto.NoticeRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	notice, err := h.service.Post(c.UserContext(), payload)
	if err != nil {
		return respondError(c, h.logger, err, "post notice")
	}

	requestLogger(h.logger, c).Info().Str("notice_id", notice.ID).Msg("notice posted")
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "notice posted", notice)
}

func (h *NoticeHandler) dismiss(c *fiber.Ctx) error {
	notice, err := h.service.Dismiss(c.UserContext(), c.Params("id"))
	if err != nil {
		return respondError(c, h.logger, err, "dismiss notice")
	}

	requestLogger(h.logger, c).Info().Str("notice_id", notice.ID).Msg("notice dismissed")
	return utils.SendSuccess(c, "notice dismissed", notice)
}
