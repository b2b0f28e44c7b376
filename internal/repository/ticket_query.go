package repository

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

func parseObjectID(id string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(id)
}

// TicketFilter captures the read-only query surface over tickets. Absent
// fields are not constrained; supplied fields are ANDed together. No field
// here excludes soft-deleted tickets.
type TicketFilter struct {
	CreatorEmail       *string
	AssignedMember     *string
	AcceptedStatus     *domain.AcceptedStatus
	Status             *domain.TicketStatus
	ResolvedStatus     *domain.ResolvedStatus
	Date               *string
	CreatedOn          *time.Time
	NameContains       *string
	CompanyContains    *string
	DepartmentContains *string
	MemberContains     *string
	SortByNewest       bool
}

// TicketUpdate is a partial update; nil fields are left untouched.
type TicketUpdate struct {
	Status               *domain.TicketStatus
	AssignedMember       *string
	MemberAcceptedStatus *domain.AcceptedStatus
	MemberAcceptedDate   *string
	MemberAcceptedTime   *string
	MemberMessageToAdmin *string
	MemberMessageToUser  *string
	ResolvedStatus       *domain.ResolvedStatus
	UserDepartment       *string
	UserMessage          *string
	DeletedStatus        *domain.DeletedStatus
	ReasonForDeleting    *string
}

func buildTicketQuery(filter TicketFilter) bson.M {
	query := bson.M{}

	if filter.CreatorEmail != nil {
		query["creatorEmail"] = *filter.CreatorEmail
	}
	if filter.AssignedMember != nil {
		query["assignedMember"] = *filter.AssignedMember
	}
	if filter.AcceptedStatus != nil {
		query["memberAcceptedStatus"] = *filter.AcceptedStatus
	}
	if filter.Status != nil {
		query["status"] = *filter.Status
	}
	if filter.ResolvedStatus != nil {
		query["resolvedStatus"] = *filter.ResolvedStatus
	}
	if filter.Date != nil {
		query["date"] = *filter.Date
	}
	if filter.CreatedOn != nil {
		start := filter.CreatedOn.UTC().Truncate(24 * time.Hour)
		query["createdAt"] = bson.M{
			"$gte": start,
			"$lt":  start.Add(24 * time.Hour),
		}
	}
	if filter.NameContains != nil {
		query["userName"] = substringRegex(*filter.NameContains)
	}
	if filter.CompanyContains != nil {
		query["userCompany"] = substringRegex(*filter.CompanyContains)
	}
	if filter.DepartmentContains != nil {
		query["userDepartment"] = substringRegex(*filter.DepartmentContains)
	}
	if filter.MemberContains != nil {
		query["assignedMember"] = substringRegex(*filter.MemberContains)
	}

	return query
}

func buildTicketUpdate(update TicketUpdate, now time.Time) bson.M {
	set := bson.M{"updatedAt": now}

	if update.Status != nil {
		set["status"] = *update.Status
	}
	if update.AssignedMember != nil {
		set["assignedMember"] = *update.AssignedMember
	}
	if update.MemberAcceptedStatus != nil {
		set["memberAcceptedStatus"] = *update.MemberAcceptedStatus
	}
	if update.MemberAcceptedDate != nil {
		set["memberAcceptedDate"] = *update.MemberAcceptedDate
	}
	if update.MemberAcceptedTime != nil {
		set["memberAcceptedTime"] = *update.MemberAcceptedTime
	}
	if update.MemberMessageToAdmin != nil {
		set["memberMessageToAdmin"] = *update.MemberMessageToAdmin
	}
	if update.MemberMessageToUser != nil {
		set["memberMessageToUser"] = *update.MemberMessageToUser
	}
	if update.ResolvedStatus != nil {
		set["resolvedStatus"] = *update.ResolvedStatus
	}
	if update.UserDepartment != nil {
		set["userDepartment"] = *update.UserDepartment
	}
	if update.UserMessage != nil {
		set["userMessage"] = *update.UserMessage
	}
	if update.DeletedStatus != nil {
		set["deletedStatus"] = *update.DeletedStatus
	}
	if update.ReasonForDeleting != nil {
		set["reasonForDeleting"] = *update.ReasonForDeleting
	}

	return bson.M{"$set": set}
}

// substringRegex builds a case-insensitive substring matcher. User input is
// quoted so regex metacharacters match literally.
func substringRegex(term string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"}
}

// prefixRegex anchors the match at the start of the value, for type-ahead
// lookups.
func prefixRegex(term string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(term), Options: "i"}
}
