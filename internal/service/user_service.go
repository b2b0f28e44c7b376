package service

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// UserService serves the end-user directory reads and the company type-ahead
// lookup.
type UserService struct {
	users repository.UserRepository
}

// NewUserService constructs the service.
func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// List returns every registered user.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

// GetByEmail returns a single user record.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFound("user", map[string]any{"email": email})
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// CompanySuggestions returns distinct company names matching the prefix,
// for type-ahead use. Prefix-anchored, not substring.
func (s *UserService) CompanySuggestions(ctx context.Context, key string) ([]string, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return []string{}, nil
	}
	companies, err := s.users.DistinctCompanies(ctx, key)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if companies == nil {
		companies = []string{}
	}
	return companies, nil
}
