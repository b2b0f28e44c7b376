package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// AuthHandler exposes signup, login and logout for the three identity pools.
type AuthHandler struct {
	service      *service.AuthService
	secureCookie bool
}

// NewAuthHandler constructs handler. secureCookie controls the cookie Secure
// attribute and follows the environment mode flag.
func NewAuthHandler(authService *service.AuthService, secureCookie bool) *AuthHandler {
	return &AuthHandler{service: authService, secureCookie: secureCookie}
}

// SignupAdmin POST /signup.
func (h *AuthHandler) SignupAdmin(c *fiber.Ctx) error {
	var req dto.SignupAdminRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.service.SignupAdmin(c.Context(), req.Name, req.Email, req.Password, req.Role); err != nil {
		return err
	}
	return c.SendStatus(http.StatusOK)
}

// SignupMember POST /signup-member.
func (h *AuthHandler) SignupMember(c *fiber.Ctx) error {
	var req dto.SignupMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.service.SignupMember(c.Context(), req.Name, req.Email, req.Password, req.Role, domain.Availability(req.Availability)); err != nil {
		return err
	}
	return c.SendStatus(http.StatusOK)
}

// SignupUser POST /signup-user.
func (h *AuthHandler) SignupUser(c *fiber.Ctx) error {
	var req dto.SignupUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := h.service.SignupUser(c.Context(), req.Name, req.Email, req.Company, req.Password); err != nil {
		return err
	}
	return c.SendStatus(http.StatusOK)
}

// LoginAdmin POST /admin-login.
func (h *AuthHandler) LoginAdmin(c *fiber.Ctx) error {
	return h.login(c, domain.PoolAdmin, h.service.LoginAdmin)
}

// LoginMember POST /member-login.
func (h *AuthHandler) LoginMember(c *fiber.Ctx) error {
	return h.login(c, domain.PoolMember, h.service.LoginMember)
}

// LoginUser POST /user-login.
func (h *AuthHandler) LoginUser(c *fiber.Ctx) error {
	return h.login(c, domain.PoolUser, h.service.LoginUser)
}

// LogoutAdmin GET /admin-logout.
func (h *AuthHandler) LogoutAdmin(c *fiber.Ctx) error {
	auth.ClearSessionCookie(c, domain.PoolAdmin)
	return c.SendStatus(http.StatusOK)
}

// LogoutMember GET /member-logout.
func (h *AuthHandler) LogoutMember(c *fiber.Ctx) error {
	auth.ClearSessionCookie(c, domain.PoolMember)
	return c.SendStatus(http.StatusOK)
}

// LogoutUser GET /user-logout.
func (h *AuthHandler) LogoutUser(c *fiber.Ctx) error {
	auth.ClearSessionCookie(c, domain.PoolUser)
	return c.SendStatus(http.StatusOK)
}

func (h *AuthHandler) login(c *fiber.Ctx, pool domain.Pool, loginFn service.LoginFunc) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if req.Email == "" || req.Password == "" {
		return apperrors.NewValidationError("email and password required", nil)
	}

	token, exp, err := loginFn(c.Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	auth.SetSessionCookie(c, pool, token, exp, h.secureCookie)
	return c.SendStatus(http.StatusOK)
}
