package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Availability is the binary flag that makes a member eligible for
// ticket assignment.
type Availability string

const (
	AvailabilityAvailable   Availability = "Available"
	AvailabilityUnavailable Availability = "Unavailable"
)

// DefaultMemberRole is assigned when signup omits a role.
const DefaultMemberRole = "Member"

// Member is a support-staff identity. Tickets reference members only by a
// denormalized email copy, never by id.
type Member struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	Role         string             `bson:"role" json:"role"`
	Availability Availability       `bson:"availability" json:"availability"`
}

// ValidAvailability reports whether a is an allowed availability value.
func ValidAvailability(a Availability) bool {
	return a == AvailabilityAvailable || a == AvailabilityUnavailable
}
