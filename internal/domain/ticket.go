package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TicketStatus enumerates lifecycle states for tickets.
type TicketStatus string

const (
	TicketStatusPending TicketStatus = "Pending"
	TicketStatusClosed  TicketStatus = "Closed"
)

// AcceptedStatus tracks whether the assigned member has taken the ticket.
type AcceptedStatus string

const (
	AcceptedStatusNotAccepted AcceptedStatus = "Not Accepted"
	AcceptedStatusAccepted    AcceptedStatus = "Accepted"
)

// ResolvedStatus is either unset or flagged unresolved by the member.
type ResolvedStatus string

const (
	ResolvedStatusUnset      ResolvedStatus = "-"
	ResolvedStatusUnresolved ResolvedStatus = "Unresolved"
)

// DeletedStatus marks soft deletion. Deleted tickets stay in every listing.
type DeletedStatus string

const (
	DeletedStatusNotDeleted DeletedStatus = "Not Deleted"
	DeletedStatusDeleted    DeletedStatus = "Deleted"
)

// Placeholder values written when no real value has been assigned yet.
const (
	NoAvailableMember    = "No Available Member"
	UnsetField           = "-"
	DefaultMemberStatus  = "In Progress"
	UnresolvedUserNotice = "Issue is raised & will require more 24 hr to get resolved"
)

// Ticket is the central support-request record. Submission fields are set by
// the requester at creation and never change; lifecycle fields are mutated by
// members and admins over time. There are no state-machine guards: any
// operation may set its fields regardless of current values.
type Ticket struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`

	UserName       string `bson:"userName" json:"userName"`
	UserEmail      string `bson:"userEmail" json:"userEmail"`
	CreatorEmail   string `bson:"creatorEmail" json:"creatorEmail"`
	UserCompany    string `bson:"userCompany" json:"userCompany"`
	UserDepartment string `bson:"userDepartment" json:"userDepartment"`
	UserMessage    string `bson:"userMessage" json:"userMessage"`

	Status               TicketStatus   `bson:"status" json:"status"`
	AssignedMember       string         `bson:"assignedMember" json:"assignedMember"`
	MemberAcceptedStatus AcceptedStatus `bson:"memberAcceptedStatus" json:"memberAcceptedStatus"`
	MemberAcceptedDate   string         `bson:"memberAcceptedDate" json:"memberAcceptedDate"`
	MemberAcceptedTime   string         `bson:"memberAcceptedTime" json:"memberAcceptedTime"`
	MemberStatus         string         `bson:"memberStatus" json:"memberStatus"`
	MemberTimeRequired   string         `bson:"memberTimeRequired" json:"memberTimeRequired"`
	MemberMessageToAdmin string         `bson:"memberMessageToAdmin" json:"memberMessageToAdmin"`
	MemberMessageToUser  string         `bson:"memberMessageToUser" json:"memberMessageToUser"`
	ResolvedStatus       ResolvedStatus `bson:"resolvedStatus" json:"resolvedStatus"`
	DeletedStatus        DeletedStatus  `bson:"deletedStatus" json:"deletedStatus"`
	ReasonForDeleting    string         `bson:"reasonForDeleting" json:"reasonForDeleting"`

	// Calendar-day and wall-clock strings captured at creation, kept
	// separate from createdAt for the day-bucket listing queries.
	Date string `bson:"date" json:"date"`
	Time string `bson:"time" json:"time"`
}

// ValidStatus reports whether s is one of the allowed ticket statuses.
func ValidStatus(s TicketStatus) bool {
	return s == TicketStatusPending || s == TicketStatusClosed
}

// ValidAcceptedStatus reports whether s is an allowed acceptance state.
func ValidAcceptedStatus(s AcceptedStatus) bool {
	return s == AcceptedStatusNotAccepted || s == AcceptedStatusAccepted
}

// ValidResolvedStatus reports whether s is an allowed resolution state.
func ValidResolvedStatus(s ResolvedStatus) bool {
	return s == ResolvedStatusUnset || s == ResolvedStatusUnresolved
}

// ValidDeletedStatus reports whether s is an allowed deletion state.
func ValidDeletedStatus(s DeletedStatus) bool {
	return s == DeletedStatusNotDeleted || s == DeletedStatusDeleted
}
