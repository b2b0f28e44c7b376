package service

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// LoginFunc is the shape shared by the three pool login operations.
type LoginFunc func(ctx context.Context, email, password string) (string, time.Time, error)

// AuthService handles signup and login for the three independent identity
// pools. Secrets are stored only as salted hashes; a successful login yields
// a signed, time-boxed token for that pool alone.
type AuthService struct {
	admins     repository.AdminRepository
	members    repository.MemberRepository
	users      repository.UserRepository
	tokenMgr   *auth.TokenManager
	bcryptCost int
}

// AuthDependencies bundles repo requirements for the auth service.
type AuthDependencies struct {
	AdminRepo  repository.AdminRepository
	MemberRepo repository.MemberRepository
	UserRepo   repository.UserRepository
}

// NewAuthService builds the service.
func NewAuthService(cfg config.Config, deps AuthDependencies) *AuthService {
	return &AuthService{
		admins:     deps.AdminRepo,
		members:    deps.MemberRepo,
		users:      deps.UserRepo,
		tokenMgr:   auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTLDays),
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// SignupAdmin creates a new administrator account.
func (s *AuthService) SignupAdmin(ctx context.Context, name, email, password, role string) error {
	if email == "" || password == "" || role == "" {
		return apperrors.NewValidationError("email, password, role required", nil)
	}
	if _, err := s.admins.GetByEmail(ctx, email); err == nil {
		return apperrors.NewValidationError("email already registered", nil)
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return apperrors.MapError(err)
	}

	admin := &domain.Admin{Name: name, Email: email, PasswordHash: hash, Role: role}
	if err := s.admins.Create(ctx, admin); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// SignupMember creates a new member account. Role defaults to Member and
// availability to Available when omitted.
func (s *AuthService) SignupMember(ctx context.Context, name, email, password, role string, availability domain.Availability) error {
	if name == "" || email == "" || password == "" {
		return apperrors.NewValidationError("name, email, password required", nil)
	}
	if role == "" {
		role = domain.DefaultMemberRole
	}
	if availability == "" {
		availability = domain.AvailabilityAvailable
	}
	if !domain.ValidAvailability(availability) {
		return apperrors.NewValidationError("invalid availability", map[string]any{"availability": availability})
	}
	if _, err := s.members.GetByEmail(ctx, email); err == nil {
		return apperrors.NewValidationError("email already registered", nil)
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return apperrors.MapError(err)
	}

	member := &domain.Member{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Availability: availability,
	}
	if err := s.members.Create(ctx, member); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// SignupUser creates a new end-user account.
func (s *AuthService) SignupUser(ctx context.Context, name, email, company, password string) error {
	if name == "" || email == "" || company == "" || password == "" {
		return apperrors.NewValidationError("name, email, company, password required", nil)
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return apperrors.NewValidationError("email already registered", nil)
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return apperrors.MapError(err)
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return apperrors.MapError(err)
	}

	user := &domain.User{Name: name, Email: email, Company: company, PasswordHash: hash}
	if err := s.users.Create(ctx, user); err != nil {
		return apperrors.MapError(err)
	}
	return nil
}

// LoginAdmin authenticates against the admin pool.
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) (string, time.Time, error) {
	admin, err := s.admins.GetByEmail(ctx, email)
	if err != nil {
		return "", time.Time{}, loginFailure(err)
	}
	return s.issueToken(admin.ID.Hex(), admin.PasswordHash, password, domain.PoolAdmin)
}

// LoginMember authenticates against the member pool.
func (s *AuthService) LoginMember(ctx context.Context, email, password string) (string, time.Time, error) {
	member, err := s.members.GetByEmail(ctx, email)
	if err != nil {
		return "", time.Time{}, loginFailure(err)
	}
	return s.issueToken(member.ID.Hex(), member.PasswordHash, password, domain.PoolMember)
}

// LoginUser authenticates against the user pool.
func (s *AuthService) LoginUser(ctx context.Context, email, password string) (string, time.Time, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return "", time.Time{}, loginFailure(err)
	}
	return s.issueToken(user.ID.Hex(), user.PasswordHash, password, domain.PoolUser)
}

func (s *AuthService) issueToken(subjectID, hash, password string, pool domain.Pool) (string, time.Time, error) {
	if err := auth.ComparePassword(hash, password); err != nil {
		return "", time.Time{}, apperrors.NewUnauthorized("invalid credentials")
	}
	token, exp, err := s.tokenMgr.GenerateToken(subjectID, pool)
	if err != nil {
		return "", time.Time{}, apperrors.MapError(err)
	}
	return token, exp, nil
}

// loginFailure maps both "no such account" and store errors to the same
// unauthorized signal so responses never reveal account existence.
func loginFailure(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperrors.NewUnauthorized("invalid credentials")
	}
	return apperrors.MapError(err)
}
