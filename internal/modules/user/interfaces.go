package user

import (
	"context"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type ServiceRepository interface {
	ListByProvider(ctx context.Context, providerID int64) ([]domain.Service, error)
}
