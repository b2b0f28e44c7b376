package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// TicketRepository encapsulates ticket persistence. Records are never
// physically removed; deletion is a status flag like any other field.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) error
	GetByID(ctx context.Context, id string) (*domain.Ticket, error)
	UpdateByID(ctx context.Context, id string, update TicketUpdate) (*domain.Ticket, error)
	ListWithFilter(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error)
}

type ticketRepository struct {
	coll *mongo.Collection
}

// NewTicketRepository returns a Mongo-backed implementation.
func NewTicketRepository(coll *mongo.Collection) TicketRepository {
	return &ticketRepository{coll: coll}
}

func (r *ticketRepository) Create(ctx context.Context, ticket *domain.Ticket) error {
	now := time.Now().UTC()
	ticket.CreatedAt = now
	ticket.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, ticket)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		ticket.ID = oid
	}
	return nil
}

func (r *ticketRepository) GetByID(ctx context.Context, id string) (*domain.Ticket, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	var ticket domain.Ticket
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

// UpdateByID applies a partial update and returns the post-update record in
// one atomic store operation.
func (r *ticketRepository) UpdateByID(ctx context.Context, id string, update TicketUpdate) (*domain.Ticket, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var ticket domain.Ticket
	if err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, buildTicketUpdate(update, time.Now().UTC()), opts).Decode(&ticket); err != nil {
		return nil, err
	}
	return &ticket, nil
}

func (r *ticketRepository) ListWithFilter(ctx context.Context, filter TicketFilter) ([]domain.Ticket, error) {
	findOpts := options.Find()
	if filter.SortByNewest {
		findOpts.SetSort(bson.D{{Key: "createdAt", Value: -1}})
	}

	cursor, err := r.coll.Find(ctx, buildTicketQuery(filter), findOpts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var tickets []domain.Ticket
	if err := cursor.All(ctx, &tickets); err != nil {
		return nil, err
	}
	return tickets, nil
}
