package contact

import (
	"context"
	"errors"
	"strings"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
)

var ErrValidation = errors.New("validation error")

type Service struct {
	contacts ContactRepository
}

func NewService(contacts ContactRepository) *Service {
	return &Service{contacts: contacts}
}

func (s *Service) Submit(ctx context.Context, req SubmitRequest) (*domain.Contact, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.Subject) == "" || strings.TrimSpace(req.Message) == "" {
		return nil, ErrValidation
	}

	contact := &domain.Contact{
		Name:    req.Name,
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Subject: req.Subject,
		Message: req.Message,
	}
	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, err
	}
	return contact, nil
}

func (s *Service) ListMessages(ctx context.Context) ([]domain.Contact, error) {
	return s.contacts.ListAll(ctx)
}
