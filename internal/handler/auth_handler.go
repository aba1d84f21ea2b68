package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/school-admin-api/internal/dto"
	"github.com/noah-isme/school-admin-api/internal/service"
	"github.com/noah-isme/school-admin-api/internal/utils"
)

// AuthHandler issues demo sessions.
type AuthHandler struct {
	service service.AuthService
	logger  zerolog.Logger
}

// NewAuthHandler constructs an auth handler.
func NewAuthHandler(service service.AuthService, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger.With().Str("component", "auth_handler").Logger(),
	}
}

// Register wires the auth routes. loginGuard throttles sign-in attempts and
// sessionGuard authenticates /me.
func (h *AuthHandler) Register(router fiber.Router, loginGuard, sessionGuard fiber.Handler) {
	router.Post("/login", loginGuard, h.login)
	router.Get("/me", sessionGuard, h.me)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var payload dto.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid payload")
	}

	session, err := h.service.Login(c.UserContext(), payload)
	if err != nil {
		if isValidationError(err) {
			return utils.Fail(c, fiber.StatusBadRequest, "validation failed", validationDetails(err))
		}
		requestLogger(h.logger, c).Error().Err(err).Msg("failed to sign in")
		return utils.SendError(c, fiber.StatusInternalServerError, "failed to sign in")
	}

	requestLogger(h.logger, c).Info().
		Str("user_id", session.User.ID).
		Str("role", session.User.Role).
		Msg("session issued")
	return utils.SendSuccess(c, "login successful", session)
}

func (h *AuthHandler) me(c *fiber.Ctx) error {
	id, _ := c.Locals("user_id").(string)
	if id == "" {
		return utils.SendError(c, fiber.StatusUnauthorized, "authentication required")
	}
	role, _ := c.Locals("user_role").(string)
	email, _ := c.Locals("user_email").(string)

	return utils.SendSuccess(c, "session retrieved", dto.SessionUser{ID: id, Email: email, Role: role})
}
