package repository

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// MemberRepository defines persistence access for support members.
type MemberRepository interface {
	Create(ctx context.Context, member *domain.Member) error
	GetByID(ctx context.Context, id string) (*domain.Member, error)
	GetByEmail(ctx context.Context, email string) (*domain.Member, error)
	// FindAvailable returns one member flagged Available in natural storage
	// order, or mongo.ErrNoDocuments when none exists.
	FindAvailable(ctx context.Context) (*domain.Member, error)
	SetAvailabilityByID(ctx context.Context, id string, availability domain.Availability) (*domain.Member, error)
	SetAvailabilityByEmail(ctx context.Context, email string, availability domain.Availability) (*domain.Member, error)
	List(ctx context.Context) ([]domain.Member, error)
	DeleteByID(ctx context.Context, id string) error
}

type memberRepository struct {
	coll *mongo.Collection
}

// NewMemberRepository returns a Mongo-backed implementation.
func NewMemberRepository(coll *mongo.Collection) MemberRepository {
	return &memberRepository{coll: coll}
}

func (r *memberRepository) Create(ctx context.Context, member *domain.Member) error {
	member.Email = strings.ToLower(member.Email)
	res, err := r.coll.InsertOne(ctx, member)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		member.ID = oid
	}
	return nil
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	var member domain.Member
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	var member domain.Member
	if err := r.coll.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) FindAvailable(ctx context.Context) (*domain.Member, error) {
	var member domain.Member
	if err := r.coll.FindOne(ctx, bson.M{"availability": domain.AvailabilityAvailable}).Decode(&member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) SetAvailabilityByID(ctx context.Context, id string, availability domain.Availability) (*domain.Member, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, mongo.ErrNoDocuments
	}
	return r.setAvailability(ctx, bson.M{"_id": oid}, availability)
}

func (r *memberRepository) SetAvailabilityByEmail(ctx context.Context, email string, availability domain.Availability) (*domain.Member, error) {
	return r.setAvailability(ctx, bson.M{"email": strings.ToLower(email)}, availability)
}

func (r *memberRepository) setAvailability(ctx context.Context, query bson.M, availability domain.Availability) (*domain.Member, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	update := bson.M{"$set": bson.M{"availability": availability}}

	var member domain.Member
	if err := r.coll.FindOneAndUpdate(ctx, query, update, opts).Decode(&member); err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *memberRepository) List(ctx context.Context) ([]domain.Member, error) {
	cursor, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var members []domain.Member
	if err := cursor.All(ctx, &members); err != nil {
		return nil, err
	}
	return members, nil
}

func (r *memberRepository) DeleteByID(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return mongo.ErrNoDocuments
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
