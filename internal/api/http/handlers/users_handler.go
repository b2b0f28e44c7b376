package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/service"
)

// UsersHandler exposes end-user directory reads and the company type-ahead.
type UsersHandler struct {
	service *service.UserService
}

// NewUsersHandler constructs handler.
func NewUsersHandler(userService *service.UserService) *UsersHandler {
	return &UsersHandler{service: userService}
}

// List GET /get-all-users.
func (h *UsersHandler) List(c *fiber.Ctx) error {
	users, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"users": users})
}

// GetByEmail GET /get-a-single-user/:email.
func (h *UsersHandler) GetByEmail(c *fiber.Ctx) error {
	user, err := h.service.GetByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"user": user})
}

// CompanySuggestions GET /company-suggestions/:key.
func (h *UsersHandler) CompanySuggestions(c *fiber.Ctx) error {
	companies, err := h.service.CompanySuggestions(c.Context(), c.Params("key"))
	if err != nil {
		return err
	}
	return c.JSON(companies)
}
