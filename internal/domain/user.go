package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// User is an end-user identity who submits tickets.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	Company      string             `bson:"company" json:"company"`
	PasswordHash string             `bson:"password" json:"-"`
}
