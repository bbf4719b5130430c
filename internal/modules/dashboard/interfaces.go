package dashboard

import (
	"context"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
	"github.com/KhaanFaizan/Safai-PAK/internal/repository"
)

type BookingRepository interface {
	CountByStatusForProvider(ctx context.Context, providerID int64) ([]repository.StatusCount, error)
	ListCompletedEarnings(ctx context.Context, providerID int64) ([]repository.CompletedEarning, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}
