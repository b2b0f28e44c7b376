package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/service"
)

// MembersHandler exposes member availability and directory endpoints.
type MembersHandler struct {
	service *service.MemberService
}

// NewMembersHandler constructs handler.
func NewMembersHandler(memberService *service.MemberService) *MembersHandler {
	return &MembersHandler{service: memberService}
}

// SetUnavailableByID PUT /change-member-to-unavailable/:id.
func (h *MembersHandler) SetUnavailableByID(c *fiber.Ctx) error {
	return h.setAvailabilityByID(c, domain.AvailabilityUnavailable)
}

// SetAvailableByID PUT /change-member-to-available/:id.
func (h *MembersHandler) SetAvailableByID(c *fiber.Ctx) error {
	return h.setAvailabilityByID(c, domain.AvailabilityAvailable)
}

// SetUnavailableByEmail PUT /member-changes-to-unavailable/:email.
func (h *MembersHandler) SetUnavailableByEmail(c *fiber.Ctx) error {
	return h.setAvailabilityByEmail(c, domain.AvailabilityUnavailable)
}

// SetAvailableByEmail PUT /member-changes-to-available/:email.
func (h *MembersHandler) SetAvailableByEmail(c *fiber.Ctx) error {
	return h.setAvailabilityByEmail(c, domain.AvailabilityAvailable)
}

// List GET /get-all-members.
func (h *MembersHandler) List(c *fiber.Ctx) error {
	members, err := h.service.List(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"members": members})
}

// ViewAvailability GET /view-member-availability/:email.
func (h *MembersHandler) ViewAvailability(c *fiber.Ctx) error {
	member, err := h.service.GetByEmail(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"member": member})
}

// Delete DELETE /delete-member/:id.
func (h *MembersHandler) Delete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"success": "Member Deleted"})
}

func (h *MembersHandler) setAvailabilityByID(c *fiber.Ctx, availability domain.Availability) error {
	member, err := h.service.SetAvailabilityByID(c.Context(), c.Params("id"), availability)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"member": member})
}

func (h *MembersHandler) setAvailabilityByEmail(c *fiber.Ctx, availability domain.Availability) error {
	member, err := h.service.SetAvailabilityByEmail(c.Context(), c.Params("email"), availability)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"member": member})
}
