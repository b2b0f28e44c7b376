package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Admin is an administrator identity. It carries no behavior beyond
// credential lookup.
type Admin struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password" json:"-"`
	Role         string             `bson:"role" json:"role"`
}
