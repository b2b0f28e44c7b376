package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/helpdesk-service/internal/api/dto"
	"github.com/spec-kit/helpdesk-service/internal/service"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// TicketsHandler exposes the ticket lifecycle and query endpoints.
type TicketsHandler struct {
	service *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(ticketService *service.TicketService) *TicketsHandler {
	return &TicketsHandler{service: ticketService}
}

// Create POST /create-ticket.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.Create(c.Context(), service.TicketCreateInput{
		UserName:       req.UserName,
		UserEmail:      req.UserEmail,
		CreatorEmail:   req.CreatorEmail,
		UserCompany:    req.UserCompany,
		UserDepartment: req.UserDepartment,
		UserMessage:    req.UserMessage,
	})
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ticket": ticket})
}

// ListAll GET /get-all-tickets.
func (h *TicketsHandler) ListAll(c *fiber.Ctx) error {
	tickets, err := h.service.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tickets": tickets})
}

// ListAllSorted GET /get-all-tickets-sorted.
func (h *TicketsHandler) ListAllSorted(c *fiber.Ctx) error {
	tickets, err := h.service.ListAllSorted(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tickets": tickets})
}

// ListToday GET /get-todays-tickets.
func (h *TicketsHandler) ListToday(c *fiber.Ctx) error {
	tickets, err := h.service.ListToday(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tickets": tickets})
}

// ListByCreator GET /get-all-tickets/:email.
func (h *TicketsHandler) ListByCreator(c *fiber.Ctx) error {
	tickets, err := h.service.ListByCreator(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tickets": tickets})
}

// ListAssignedPending GET /get-member-assigned-tickets/:email.
func (h *TicketsHandler) ListAssignedPending(c *fiber.Ctx) error {
	tickets, err := h.service.ListAssignedPending(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tickets": tickets})
}

// ListAccepted GET /get-member-accepted-tickets/:email.
func (h *TicketsHandler) ListAccepted(c *fiber.Ctx) error {
	tickets, err := h.service.ListAccepted(c.Context(), c.Params("email"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tickets": tickets})
}

// ListClosed GET /get-closed-tickets.
func (h *TicketsHandler) ListClosed(c *fiber.Ctx) error {
	tickets, err := h.service.ListClosed(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tickets": tickets})
}

// ListUnresolved GET /get-unresolved-tickets.
func (h *TicketsHandler) ListUnresolved(c *fiber.Ctx) error {
	tickets, err := h.service.ListUnresolved(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tickets": tickets})
}

// Accept PUT /member-accept-ticket/:id.
func (h *TicketsHandler) Accept(c *fiber.Ctx) error {
	ticket, err := h.service.Accept(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ticket": ticket})
}

// Close PUT /close-ticket/:id.
func (h *TicketsHandler) Close(c *fiber.Ctx) error {
	ticket, err := h.service.Close(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ticket": ticket})
}

// CannotResolve PUT /member-cannot-resolve-ticket/:id.
func (h *TicketsHandler) CannotResolve(c *fiber.Ctx) error {
	var req dto.CannotResolveRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.CannotResolve(c.Context(), c.Params("id"), req.MemberMessageToAdmin)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ticket": ticket})
}

// Edit PUT /user-edit-ticket/:id.
func (h *TicketsHandler) Edit(c *fiber.Ctx) error {
	var req dto.EditTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.EditSubmission(c.Context(), c.Params("id"), req.UserDepartment, req.UserMessage)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ticket": ticket})
}

// SoftDelete PUT /delete-ticket/:id.
func (h *TicketsHandler) SoftDelete(c *fiber.Ctx) error {
	var req dto.DeleteTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.SoftDelete(c.Context(), c.Params("id"), req.ReasonForDeleting)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ticket": ticket})
}

// AssignMember PUT /update-assign-member/:id.
func (h *TicketsHandler) AssignMember(c *fiber.Ctx) error {
	var req dto.AssignMemberRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	ticket, err := h.service.AssignMember(c.Context(), c.Params("id"), req.AssignedMember)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"ticket": ticket})
}

// SearchByName GET /search-by-name/:key.
func (h *TicketsHandler) SearchByName(c *fiber.Ctx) error {
	tickets, err := h.service.SearchByName(c.Context(), c.Params("key"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tickets": tickets})
}

// SearchByCompany GET /search-by-company/:key.
func (h *TicketsHandler) SearchByCompany(c *fiber.Ctx) error {
	tickets, err := h.service.SearchByCompany(c.Context(), c.Params("key"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tickets": tickets})
}

// SearchByDepartment GET /search-by-department/:key.
func (h *TicketsHandler) SearchByDepartment(c *fiber.Ctx) error {
	tickets, err := h.service.SearchByDepartment(c.Context(), c.Params("key"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tickets": tickets})
}

// SearchByMember GET /search-by-member/:key.
func (h *TicketsHandler) SearchByMember(c *fiber.Ctx) error {
	tickets, err := h.service.SearchByMember(c.Context(), c.Params("key"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tickets": tickets})
}

// SearchByDay GET /search-by-time/:key.
func (h *TicketsHandler) SearchByDay(c *fiber.Ctx) error {
	day, err := parseDay(c.Params("key"))
	if err != nil {
		return apperrors.NewValidationError("invalid date, expected YYYY-MM-DD", nil)
	}

	tickets, err := h.service.ListByDay(c.Context(), day)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tickets": tickets})
}

// Search GET /search-tickets?name&company&department&member&date.
func (h *TicketsHandler) Search(c *fiber.Ctx) error {
	input := service.TicketSearchInput{}
	if v := c.Query("name"); v != "" {
		input.Name = &v
	}
	if v := c.Query("company"); v != "" {
		input.Company = &v
	}
	if v := c.Query("department"); v != "" {
		input.Department = &v
	}
	if v := c.Query("member"); v != "" {
		input.Member = &v
	}
	if v := c.Query("date"); v != "" {
		day, err := parseDay(v)
		if err != nil {
			return apperrors.NewValidationError("invalid date, expected YYYY-MM-DD", nil)
		}
		input.CreatedOn = &day
	}

	tickets, err := h.service.Search(c.Context(), input)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"tickets": tickets})
}

func parseDay(value string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", value, time.UTC)
}
