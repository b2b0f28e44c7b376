package repository

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/helpdesk-service/internal/domain"
)

// AdminRepository defines persistence access for administrators.
type AdminRepository interface {
	Create(ctx context.Context, admin *domain.Admin) error
	GetByEmail(ctx context.Context, email string) (*domain.Admin, error)
}

type adminRepository struct {
	coll *mongo.Collection
}

// NewAdminRepository returns a Mongo-backed implementation.
func NewAdminRepository(coll *mongo.Collection) AdminRepository {
	return &adminRepository{coll: coll}
}

func (r *adminRepository) Create(ctx context.Context, admin *domain.Admin) error {
	admin.Email = strings.ToLower(admin.Email)
	res, err := r.coll.InsertOne(ctx, admin)
	if err != nil {
		return err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		admin.ID = oid
	}
	return nil
}

func (r *adminRepository) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var admin domain.Admin
	if err := r.coll.FindOne(ctx, bson.M{"email": strings.ToLower(email)}).Decode(&admin); err != nil {
		return nil, err
	}
	return &admin, nil
}
