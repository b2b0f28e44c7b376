package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// MemberService manages member availability and the member directory.
// Availability toggles are idempotent and never touch tickets already
// pointing at the member's email.
type MemberService struct {
	members repository.MemberRepository
}

// NewMemberService constructs the service.
func NewMemberService(members repository.MemberRepository) *MemberService {
	return &MemberService{members: members}
}

// SetAvailabilityByID flips a member's availability flag by record id.
func (s *MemberService) SetAvailabilityByID(ctx context.Context, id string, availability domain.Availability) (*domain.Member, error) {
	member, err := s.members.SetAvailabilityByID(ctx, id, availability)
	if err != nil {
		return nil, mapMemberError(err, id)
	}
	return member, nil
}

// SetAvailabilityByEmail flips a member's availability flag by email.
func (s *MemberService) SetAvailabilityByEmail(ctx context.Context, email string, availability domain.Availability) (*domain.Member, error) {
	member, err := s.members.SetAvailabilityByEmail(ctx, email, availability)
	if err != nil {
		return nil, mapMemberError(err, email)
	}
	return member, nil
}

// GetByEmail returns a member record for the availability view.
func (s *MemberService) GetByEmail(ctx context.Context, email string) (*domain.Member, error) {
	member, err := s.members.GetByEmail(ctx, email)
	if err != nil {
		return nil, mapMemberError(err, email)
	}
	return member, nil
}

// List returns every member.
func (s *MemberService) List(ctx context.Context) ([]domain.Member, error) {
	members, err := s.members.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if members == nil {
		members = []domain.Member{}
	}
	return members, nil
}

// Delete removes a member record. Members are not soft-deleted; tickets
// keep their denormalized email copy regardless.
func (s *MemberService) Delete(ctx context.Context, id string) error {
	if err := s.members.DeleteByID(ctx, id); err != nil {
		return mapMemberError(err, id)
	}
	return nil
}

func mapMemberError(err error, key string) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return apperrors.NewNotFound("member", map[string]any{"member": key})
	}
	return apperrors.MapError(err)
}
