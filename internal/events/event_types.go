package events

import (
	"time"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated       EventType = "ticket_created"
	EventTicketAssigned      EventType = "ticket_assigned"
	EventTicketStatusChanged EventType = "ticket_status_changed"
	EventTicketDeleted       EventType = "ticket_deleted"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	TicketID  string      `json:"ticket_id"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// TicketCreatedPayload payload.
type TicketCreatedPayload struct {
	CreatorEmail   string `json:"creator_email"`
	UserDepartment string `json:"user_department"`
	AssignedMember string `json:"assigned_member"`
}

// TicketAssignedPayload payload.
type TicketAssignedPayload struct {
	AssignedMember string `json:"assigned_member"`
}

// TicketStatusChangedPayload payload.
type TicketStatusChangedPayload struct {
	NewStatus      domain.TicketStatus   `json:"new_status"`
	ResolvedStatus domain.ResolvedStatus `json:"resolved_status,omitempty"`
}

// TicketDeletedPayload payload.
type TicketDeletedPayload struct {
	Reason string `json:"reason"`
}
