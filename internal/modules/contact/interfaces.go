package contact

import (
	"context"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *domain.Contact) error
	ListAll(ctx context.Context) ([]domain.Contact, error)
}
