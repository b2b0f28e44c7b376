package service

import (
	"context"
	"errors"
	"testing"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

func TestCompanySuggestionsEmptyKey(t *testing.T) {
	users := &fakeUserRepo{byEmail: map[string]*domain.User{}, companies: []string{"Acme Corp"}}
	svc := NewUserService(users)

	suggestions, err := svc.CompanySuggestions(context.Background(), "   ")
	if err != nil {
		t.Fatalf("CompanySuggestions: %v", err)
	}
	if len(suggestions) != 0 {
		t.Fatalf("blank key must suggest nothing, got %v", suggestions)
	}
}

func TestCompanySuggestions(t *testing.T) {
	users := &fakeUserRepo{byEmail: map[string]*domain.User{}, companies: []string{"Acme Corp", "Acme Labs"}}
	svc := NewUserService(users)

	suggestions, err := svc.CompanySuggestions(context.Background(), "Acm")
	if err != nil {
		t.Fatalf("CompanySuggestions: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("got %v", suggestions)
	}
}

func TestGetUserByEmailNotFound(t *testing.T) {
	svc := NewUserService(&fakeUserRepo{byEmail: map[string]*domain.User{}})

	_, err := svc.GetByEmail(context.Background(), "ghost@acme.com")
	if err == nil {
		t.Fatal("expected not found")
	}
	var domainErr *apperrors.DomainError
	if !errors.As(err, &domainErr) || domainErr.HTTPStatus != 404 {
		t.Fatalf("expected 404 DomainError, got %v", err)
	}
}
