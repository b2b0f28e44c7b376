package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/spec-kit/helpdesk-service/internal/auth"
	"github.com/spec-kit/helpdesk-service/internal/config"
	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

type fakeAdminRepo struct {
	byEmail map[string]*domain.Admin
}

func (f *fakeAdminRepo) Create(ctx context.Context, admin *domain.Admin) error {
	if admin.ID.IsZero() {
		admin.ID = primitive.NewObjectID()
	}
	f.byEmail[admin.Email] = admin
	return nil
}

func (f *fakeAdminRepo) GetByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	admin, ok := f.byEmail[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return admin, nil
}

type fakeUserRepo struct {
	byEmail   map[string]*domain.User
	companies []string
}

func (f *fakeUserRepo) Create(ctx context.Context, user *domain.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, ok := f.byEmail[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return user, nil
}

func (f *fakeUserRepo) List(ctx context.Context) ([]domain.User, error) {
	var out []domain.User
	for _, user := range f.byEmail {
		out = append(out, *user)
	}
	return out, nil
}

func (f *fakeUserRepo) DistinctCompanies(ctx context.Context, prefix string) ([]string, error) {
	return f.companies, nil
}

func newAuthFixture() (*AuthService, *fakeAdminRepo, *fakeMemberRepo, *fakeUserRepo) {
	admins := &fakeAdminRepo{byEmail: map[string]*domain.Admin{}}
	members := newFakeMemberRepo()
	users := &fakeUserRepo{byEmail: map[string]*domain.User{}}

	cfg := config.Config{Auth: config.AuthConfig{
		JWTSecret:    "test-secret",
		TokenTTLDays: 1,
		BcryptCost:   bcrypt.MinCost,
	}}
	svc := NewAuthService(cfg, AuthDependencies{
		AdminRepo:  admins,
		MemberRepo: members,
		UserRepo:   users,
	})
	return svc, admins, members, users
}

func TestSignupAdminThenLogin(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	ctx := context.Background()

	if err := svc.SignupAdmin(ctx, "Root", "root@x.com", "hunter2", "Admin"); err != nil {
		t.Fatalf("SignupAdmin: %v", err)
	}

	token, expiresAt, err := svc.LoginAdmin(ctx, "root@x.com", "hunter2")
	if err != nil {
		t.Fatalf("LoginAdmin: %v", err)
	}
	if token == "" {
		t.Fatal("expected a signed token")
	}
	if !expiresAt.After(time.Now()) {
		t.Fatalf("expiry in the past: %v", expiresAt)
	}

	claims, err := auth.NewTokenManager("test-secret", 1).ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Pool != domain.PoolAdmin {
		t.Fatalf("pool claim = %q, want ADMIN", claims.Pool)
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	ctx := context.Background()

	if err := svc.SignupUser(ctx, "Jane", "jane@acme.com", "Acme Corp", "pw"); err != nil {
		t.Fatalf("first SignupUser: %v", err)
	}

	err := svc.SignupUser(ctx, "Jane Again", "jane@acme.com", "Acme Corp", "pw2")
	if err == nil {
		t.Fatal("expected duplicate email rejection")
	}
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.HTTPStatus != 400 {
		t.Fatalf("expected 400 DomainError, got %v", err)
	}
}

func TestSignupMemberAppliesDefaults(t *testing.T) {
	svc, _, members, _ := newAuthFixture()
	ctx := context.Background()

	if err := svc.SignupMember(ctx, "Max", "max@x.com", "pw", "", ""); err != nil {
		t.Fatalf("SignupMember: %v", err)
	}

	member, err := members.GetByEmail(ctx, "max@x.com")
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if member.Role != domain.DefaultMemberRole {
		t.Fatalf("role = %q, want Member", member.Role)
	}
	if member.Availability != domain.AvailabilityAvailable {
		t.Fatalf("availability = %q, want Available", member.Availability)
	}
	if member.PasswordHash == "pw" {
		t.Fatal("password must be stored hashed")
	}
}

func TestSignupMemberRejectsBadAvailability(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	err := svc.SignupMember(context.Background(), "Max", "max@x.com", "pw", "", "Sometimes")
	if err == nil {
		t.Fatal("expected validation error")
	}
}

// A login failure must look the same whether the email is unknown or the
// password is wrong, so responses never reveal whether an account exists.
func TestLoginFailureDoesNotRevealAccountExistence(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	ctx := context.Background()

	if err := svc.SignupUser(ctx, "Jane", "jane@acme.com", "Acme Corp", "right-password"); err != nil {
		t.Fatalf("SignupUser: %v", err)
	}

	_, _, unknownErr := svc.LoginUser(ctx, "nobody@acme.com", "whatever")
	_, _, wrongPwErr := svc.LoginUser(ctx, "jane@acme.com", "wrong-password")

	if unknownErr == nil || wrongPwErr == nil {
		t.Fatal("both logins must fail")
	}

	var unknownDomain, wrongDomain *apperrors.DomainError
	if !errors.As(unknownErr, &unknownDomain) || !errors.As(wrongPwErr, &wrongDomain) {
		t.Fatalf("expected DomainErrors, got %T and %T", unknownErr, wrongPwErr)
	}
	if unknownDomain.HTTPStatus != 401 || wrongDomain.HTTPStatus != 401 {
		t.Fatalf("statuses = %d and %d, want 401 for both", unknownDomain.HTTPStatus, wrongDomain.HTTPStatus)
	}
	if unknownDomain.Code != wrongDomain.Code || unknownDomain.Message != wrongDomain.Message {
		t.Fatalf("failure shapes differ: %v vs %v", unknownDomain, wrongDomain)
	}
}

func TestLoginPoolsAreIndependent(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	ctx := context.Background()

	if err := svc.SignupMember(ctx, "Max", "max@x.com", "pw", "", ""); err != nil {
		t.Fatalf("SignupMember: %v", err)
	}

	// same email is not registered in the user pool
	if _, _, err := svc.LoginUser(ctx, "max@x.com", "pw"); err == nil {
		t.Fatal("member credentials must not log in through the user pool")
	}

	token, _, err := svc.LoginMember(ctx, "max@x.com", "pw")
	if err != nil {
		t.Fatalf("LoginMember: %v", err)
	}
	claims, err := auth.NewTokenManager("test-secret", 1).ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.Pool != domain.PoolMember {
		t.Fatalf("pool claim = %q, want MEMBER", claims.Pool)
	}
}
