package service

import (
	"context"
	"strings"

	"github.com/spec-kit/helpdesk-service/internal/domain"
	"github.com/spec-kit/helpdesk-service/internal/repository"
	apperrors "github.com/spec-kit/helpdesk-service/pkg/util"
)

// MessageService appends department-tagged notes and reads them back by
// department.
type MessageService struct {
	messages repository.MessageRepository
}

// NewMessageService constructs the service.
func NewMessageService(messages repository.MessageRepository) *MessageService {
	return &MessageService{messages: messages}
}

// Create appends a new message.
func (s *MessageService) Create(ctx context.Context, text, department string) (*domain.Message, error) {
	if strings.TrimSpace(text) == "" {
		return nil, apperrors.NewValidationError("message required", nil)
	}

	message := &domain.Message{Message: text, Department: department}
	if err := s.messages.Create(ctx, message); err != nil {
		return nil, apperrors.MapError(err)
	}
	return message, nil
}

// ListByDepartment returns all messages tagged with the department.
func (s *MessageService) ListByDepartment(ctx context.Context, department string) ([]domain.Message, error) {
	messages, err := s.messages.ListByDepartment(ctx, department)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	if messages == nil {
		messages = []domain.Message{}
	}
	return messages, nil
}
