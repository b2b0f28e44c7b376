package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// Message is a free-text note tagged with a department, read back by
// department filter only.
type Message struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Message    string             `bson:"message" json:"message"`
	Department string             `bson:"messageDepartment" json:"messageDepartment"`
}
