package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/events"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// TicketService coordinates the ticket lifecycle: submission with best-effort
// member assignment, member accept/reject, closure, soft deletion, and the
// read-only query surface.
type TicketService struct {
	tickets    repository.TicketRepository
	members    repository.MemberRepository
	dispatcher events.Dispatcher
}

// TicketDependencies bundles repositories for the ticket service.
type TicketDependencies struct {
	TicketRepo repository.TicketRepository
	MemberRepo repository.MemberRepository
	Dispatcher events.Dispatcher
}

// TicketCreateInput describes the submission payload. All fields are
// required.
type TicketCreateInput struct {
	UserName       string
	UserEmail      string
	CreatorEmail   string
	UserCompany    string
	UserDepartment string
	UserMessage    string
}

// TicketSearchInput is the composite search: absent fields are not
// constrained, supplied fields are ANDed together.
type TicketSearchInput struct {
	Name       *string
	Company    *string
	Department *string
	Member     *string
	CreatedOn  *time.Time
}

// NewTicketService constructs the service.
func NewTicketService(deps TicketDependencies) *TicketService {
	return &TicketService{
		tickets:    deps.TicketRepo,
		members:    deps.MemberRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Create validates the submission, picks one available member best-effort and
// persists the ticket with every lifecycle field at its default.
//
// The member lookup and the insert are two separate store operations; two
// concurrent submissions can both observe the same member as available and
// both assign it. The store's per-document atomicity is the only guarantee.
func (s *TicketService) Create(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	if details := missingSubmissionFields(input); len(details) > 0 {
		return nil, apperrors.NewValidationError("missing required submission fields", details)
	}

	assignedMember := domain.NoAvailableMember
	member, err := s.members.FindAvailable(ctx)
	if err == nil {
		assignedMember = member.Email
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, apperrors.MapError(err)
	}

	now := time.Now().UTC()
	ticket := &domain.Ticket{
		UserName:       strings.TrimSpace(input.UserName),
		UserEmail:      strings.TrimSpace(input.UserEmail),
		CreatorEmail:   strings.TrimSpace(input.CreatorEmail),
		UserCompany:    strings.TrimSpace(input.UserCompany),
		UserDepartment: strings.TrimSpace(input.UserDepartment),
		UserMessage:    input.UserMessage,

		Status:               domain.TicketStatusPending,
		AssignedMember:       assignedMember,
		MemberAcceptedStatus: domain.AcceptedStatusNotAccepted,
		MemberAcceptedDate:   domain.UnsetField,
		MemberAcceptedTime:   domain.UnsetField,
		MemberStatus:         domain.DefaultMemberStatus,
		MemberTimeRequired:   domain.UnsetField,
		MemberMessageToAdmin: "",
		MemberMessageToUser:  domain.UnsetField,
		ResolvedStatus:       domain.ResolvedStatusUnset,
		DeletedStatus:        domain.DeletedStatusNotDeleted,
		ReasonForDeleting:    domain.UnsetField,

		Date: now.Format("2006-01-02"),
		Time: now.Format("15:04"),
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.MapError(err)
	}

	s.publish(ctx, events.EventTicketCreated, ticket.ID.Hex(), events.TicketCreatedPayload{
		CreatorEmail:   ticket.CreatorEmail,
		UserDepartment: ticket.UserDepartment,
		AssignedMember: ticket.AssignedMember,
	})
	return ticket, nil
}

// Accept marks the ticket accepted by its assigned member and stamps the
// local-timezone accept date and time. Re-accepting an already accepted
// ticket simply re-stamps.
func (s *TicketService) Accept(ctx context.Context, id string) (*domain.Ticket, error) {
	now := time.Now()
	accepted := domain.AcceptedStatusAccepted
	date := now.Format("1/2/2006")
	clock := now.Format("3:04:05 PM")

	return s.update(ctx, id, repository.TicketUpdate{
		MemberAcceptedStatus: &accepted,
		MemberAcceptedDate:   &date,
		MemberAcceptedTime:   &clock,
	})
}

// Close sets the ticket status to Closed and resets the member's message to
// the user.
func (s *TicketService) Close(ctx context.Context, id string) (*domain.Ticket, error) {
	closed := domain.TicketStatusClosed
	reset := domain.UnsetField

	ticket, err := s.update(ctx, id, repository.TicketUpdate{
		Status:              &closed,
		MemberMessageToUser: &reset,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventTicketStatusChanged, ticket.ID.Hex(), events.TicketStatusChangedPayload{
		NewStatus: ticket.Status,
	})
	return ticket, nil
}

// CannotResolve records that the assigned member cannot resolve the ticket:
// the ticket stays Pending, is flagged Unresolved, the reason goes to the
// admin and the user gets a fixed templated notice.
func (s *TicketService) CannotResolve(ctx context.Context, id, reason string) (*domain.Ticket, error) {
	pending := domain.TicketStatusPending
	unresolved := domain.ResolvedStatusUnresolved
	notice := domain.UnresolvedUserNotice

	ticket, err := s.update(ctx, id, repository.TicketUpdate{
		Status:               &pending,
		ResolvedStatus:       &unresolved,
		MemberMessageToAdmin: &reason,
		MemberMessageToUser:  &notice,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventTicketStatusChanged, ticket.ID.Hex(), events.TicketStatusChangedPayload{
		NewStatus:      ticket.Status,
		ResolvedStatus: ticket.ResolvedStatus,
	})
	return ticket, nil
}

// EditSubmission lets the requester overwrite department and message at any
// point, including after closure. No audit trail is kept.
func (s *TicketService) EditSubmission(ctx context.Context, id, department, message string) (*domain.Ticket, error) {
	return s.update(ctx, id, repository.TicketUpdate{
		UserDepartment: &department,
		UserMessage:    &message,
	})
}

// SoftDelete flags the ticket Deleted with the requester-supplied reason.
// The record remains in every listing query.
func (s *TicketService) SoftDelete(ctx context.Context, id, reason string) (*domain.Ticket, error) {
	deleted := domain.DeletedStatusDeleted

	ticket, err := s.update(ctx, id, repository.TicketUpdate{
		DeletedStatus:     &deleted,
		ReasonForDeleting: &reason,
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventTicketDeleted, ticket.ID.Hex(), events.TicketDeletedPayload{Reason: reason})
	return ticket, nil
}

// AssignMember overwrites the assigned member email on a ticket.
func (s *TicketService) AssignMember(ctx context.Context, id, memberEmail string) (*domain.Ticket, error) {
	ticket, err := s.update(ctx, id, repository.TicketUpdate{AssignedMember: &memberEmail})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, events.EventTicketAssigned, ticket.ID.Hex(), events.TicketAssignedPayload{
		AssignedMember: ticket.AssignedMember,
	})
	return ticket, nil
}

// ListAll returns every ticket, soft-deleted ones included.
func (s *TicketService) ListAll(ctx context.Context) ([]domain.Ticket, error) {
	return s.list(ctx, repository.TicketFilter{})
}

// ListAllSorted returns every ticket, most recent first.
func (s *TicketService) ListAllSorted(ctx context.Context) ([]domain.Ticket, error) {
	return s.list(ctx, repository.TicketFilter{SortByNewest: true})
}

// ListToday returns tickets whose creation-day string matches today in UTC.
func (s *TicketService) ListToday(ctx context.Context) ([]domain.Ticket, error) {
	today := time.Now().UTC().Format("2006-01-02")
	return s.list(ctx, repository.TicketFilter{Date: &today})
}

// ListByCreator returns tickets created by the given email.
func (s *TicketService) ListByCreator(ctx context.Context, email string) ([]domain.Ticket, error) {
	return s.list(ctx, repository.TicketFilter{CreatorEmail: &email})
}

// ListAssignedPending returns tickets assigned to the member and not yet
// accepted.
func (s *TicketService) ListAssignedPending(ctx context.Context, memberEmail string) ([]domain.Ticket, error) {
	notAccepted := domain.AcceptedStatusNotAccepted
	return s.list(ctx, repository.TicketFilter{
		AssignedMember: &memberEmail,
		AcceptedStatus: &notAccepted,
	})
}

// ListAccepted returns tickets assigned to the member and accepted.
func (s *TicketService) ListAccepted(ctx context.Context, memberEmail string) ([]domain.Ticket, error) {
	accepted := domain.AcceptedStatusAccepted
	return s.list(ctx, repository.TicketFilter{
		AssignedMember: &memberEmail,
		AcceptedStatus: &accepted,
	})
}

// ListClosed returns tickets with status Closed.
func (s *TicketService) ListClosed(ctx context.Context) ([]domain.Ticket, error) {
	closed := domain.TicketStatusClosed
	return s.list(ctx, repository.TicketFilter{Status: &closed})
}

// ListUnresolved returns tickets flagged Unresolved.
func (s *TicketService) ListUnresolved(ctx context.Context) ([]domain.Ticket, error) {
	unresolved := domain.ResolvedStatusUnresolved
	return s.list(ctx, repository.TicketFilter{ResolvedStatus: &unresolved})
}

// ListByDay returns tickets created within the given UTC calendar day,
// bucketed on the creation timestamp rather than the stored date string.
func (s *TicketService) ListByDay(ctx context.Context, day time.Time) ([]domain.Ticket, error) {
	return s.list(ctx, repository.TicketFilter{CreatedOn: &day})
}

// SearchByName matches the requester name case-insensitively by substring.
func (s *TicketService) SearchByName(ctx context.Context, key string) ([]domain.Ticket, error) {
	return s.list(ctx, repository.TicketFilter{NameContains: &key})
}

// SearchByCompany matches the requester company case-insensitively by
// substring.
func (s *TicketService) SearchByCompany(ctx context.Context, key string) ([]domain.Ticket, error) {
	return s.list(ctx, repository.TicketFilter{CompanyContains: &key})
}

// SearchByDepartment matches the requester department case-insensitively by
// substring.
func (s *TicketService) SearchByDepartment(ctx context.Context, key string) ([]domain.Ticket, error) {
	return s.list(ctx, repository.TicketFilter{DepartmentContains: &key})
}

// SearchByMember matches the assigned member case-insensitively by substring.
func (s *TicketService) SearchByMember(ctx context.Context, key string) ([]domain.Ticket, error) {
	return s.list(ctx, repository.TicketFilter{MemberContains: &key})
}

// Search ANDs together whichever filters are supplied.
func (s *TicketService) Search(ctx context.Context, input TicketSearchInput) ([]domain.Ticket, error) {
	return s.list(ctx, repository.TicketFilter{
		NameContains:       input.Name,
		CompanyContains:    input.Company,
		DepartmentContains: input.Department,
		MemberContains:     input.Member,
		CreatedOn:          input.CreatedOn,
	})
}

func (s *TicketService) update(ctx context.Context, id string, update repository.TicketUpdate) (*domain.Ticket, error) {
	ticket, err := s.tickets.UpdateByID(ctx, id, update)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"ticket_id": id})
		}
		return nil, apperrors.MapError(err)
	}
	return ticket, nil
}

func (s *TicketService) list(ctx context.Context, filter repository.TicketFilter) ([]domain.Ticket, error) {
	tickets, err := s.tickets.ListWithFilter(ctx, filter)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if tickets == nil {
		tickets = []domain.Ticket{}
	}
	return tickets, nil
}

func (s *TicketService) publish(ctx context.Context, eventType events.EventType, ticketID string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		TicketID:  ticketID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}

func missingSubmissionFields(input TicketCreateInput) map[string]any {
	details := map[string]any{}
	for field, value := range map[string]string{
		"userName":       input.UserName,
		"userEmail":      input.UserEmail,
		"creatorEmail":   input.CreatorEmail,
		"userCompany":    input.UserCompany,
		"userDepartment": input.UserDepartment,
		"userMessage":    input.UserMessage,
	} {
		if strings.TrimSpace(value) == "" {
			details[field] = "required"
		}
	}
	if len(details) == 0 {
		return nil
	}
	return details
}
