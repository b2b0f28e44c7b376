package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// MessagesHandler exposes department-tagged notes.
type MessagesHandler struct {
	service *service.MessageService
}

// NewMessagesHandler constructs handler.
func NewMessagesHandler(messageService *service.MessageService) *MessagesHandler {
	return &MessagesHandler{service: messageService}
}

// Create POST /create-message.
func (h *MessagesHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	message, err := h.service.Create(c.Context(), req.Message, req.MessageDepartment)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": message})
}

// ListByDepartment GET /view-selected-messages/:department.
func (h *MessagesHandler) ListByDepartment(c *fiber.Ctx) error {
	messages, err := h.service.ListByDepartment(c.Context(), c.Params("department"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"messages": messages})
}
