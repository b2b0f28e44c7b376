package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// MessageRepository is pure append plus filter-by-department read.
type MessageRepository interface {
	Create(ctx context.Context, message *domain.Message) error
	ListByDepartment(ctx context.Context, department string) ([]domain.Message, error)
}

type messageRepository struct {
	coll *mongo.Collection
}

// NewMessageRepository returns a Mongo-backed implementation.
func NewMessageRepository(coll *mongo.Collection) MessageRepository {
	return &messageRepository{coll: coll}
}

func (r *messageRepository) Create(ctx context.Context, message *domain.Message) error {
	res, err := r.coll.InsertOne(ctx, message)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		message.ID = oid
	}
	return nil
}

func (r *messageRepository) ListByDepartment(ctx context.Context, department string) ([]domain.Message, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"messageDepartment": department})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []domain.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
