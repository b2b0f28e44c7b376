package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

func seedMember(t *testing.T, repo *fakeMemberRepo, email string, availability domain.Availability) *domain.Member {
	t.Helper()
	member := &domain.Member{
		ID:           primitive.NewObjectID(),
		Name:         "Max",
		Email:        email,
		Availability: availability,
	}
	if err := repo.Create(context.Background(), member); err != nil {
		t.Fatalf("seed member: %v", err)
	}
	return member
}

func TestAvailabilityToggleIsIdempotent(t *testing.T) {
	repo := newFakeMemberRepo()
	svc := NewMemberService(repo)
	seeded := seedMember(t, repo, "max@x.com", domain.AvailabilityAvailable)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		member, err := svc.SetAvailabilityByID(ctx, seeded.ID.Hex(), domain.AvailabilityUnavailable)
		if err != nil {
			t.Fatalf("toggle %d: %v", i, err)
		}
		if member.Availability != domain.AvailabilityUnavailable {
			t.Fatalf("toggle %d: availability = %q", i, member.Availability)
		}
	}

	member, err := svc.SetAvailabilityByEmail(ctx, "max@x.com", domain.AvailabilityAvailable)
	if err != nil {
		t.Fatalf("SetAvailabilityByEmail: %v", err)
	}
	if member.Availability != domain.AvailabilityAvailable {
		t.Fatalf("availability = %q, want Available", member.Availability)
	}
}

func TestSetAvailabilityUnknownMember(t *testing.T) {
	svc := NewMemberService(newFakeMemberRepo())

	_, err := svc.SetAvailabilityByEmail(context.Background(), "ghost@x.com", domain.AvailabilityAvailable)
	if err == nil {
		t.Fatal("expected not found")
	}
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.HTTPStatus != 404 {
		t.Fatalf("expected 404 DomainError, got %v", err)
	}
}

func TestDeleteMember(t *testing.T) {
	repo := newFakeMemberRepo()
	svc := NewMemberService(repo)
	seeded := seedMember(t, repo, "max@x.com", domain.AvailabilityAvailable)
	ctx := context.Background()

	if err := svc.Delete(ctx, seeded.ID.Hex()); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := svc.Delete(ctx, seeded.ID.Hex()); err == nil {
		t.Fatal("deleting twice must report not found")
	}
}

func TestListMembersEmpty(t *testing.T) {
	svc := NewMemberService(newFakeMemberRepo())

	members, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if members == nil {
		t.Fatal("expected empty slice, got nil")
	}
}
