package util

import (
	"errors"
	"net/http"
	"testing"

	"go.mongodb.org/mongo-driver/mongo"
)

func TestToDomainErrorPassthrough(t *testing.T) {
	original := NewNotFound("ticket", map[string]any{"ticket_id": "abc"})

	converted := ToDomainError(original)
	if converted.Code != "NOT_FOUND" || converted.HTTPStatus != http.StatusNotFound {
		t.Fatalf("got %v", converted)
	}
	if converted.Details["ticket_id"] != "abc" {
		t.Fatalf("details lost: %v", converted.Details)
	}
}

func TestToDomainErrorMapsStoreMiss(t *testing.T) {
	converted := ToDomainError(mongo.ErrNoDocuments)
	if converted.Code != "NOT_FOUND" {
		t.Fatalf("code = %q, want NOT_FOUND", converted.Code)
	}
	if converted.HTTPStatus != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", converted.HTTPStatus)
	}
}

func TestToDomainErrorHidesUnknownErrors(t *testing.T) {
	converted := ToDomainError(errors.New("write concern timeout on shard 3"))
	if converted.Code != "INTERNAL_ERROR" || converted.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("got %v", converted)
	}
	if converted.Message != "internal server error" {
		t.Fatalf("driver detail leaked: %q", converted.Message)
	}
}

func TestToDomainErrorNil(t *testing.T) {
	if converted := ToDomainError(nil); converted != nil {
		t.Fatalf("expected nil, got %v", converted)
	}
}

func TestDomainErrorUnwrap(t *testing.T) {
	cause := errors.New("connection reset")
	wrapped := NewInternalError(cause)

	if !errors.Is(wrapped, cause) {
		t.Fatal("wrapped cause must survive errors.Is")
	}
}

func TestValidationErrorShape(t *testing.T) {
	err := NewValidationError("missing required submission fields", map[string]any{"userName": "required"})

	var domainErr *DomainError
	if !errors.As(err, &domainErr) {
		t.Fatalf("expected DomainError, got %T", err)
	}
	if domainErr.Code != "VALIDATION_FAILED" || domainErr.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("got %v", domainErr)
	}
}
