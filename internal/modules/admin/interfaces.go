package admin

import (
	"context"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id int64) error
	ListAll(ctx context.Context) ([]domain.User, error)
	ListUnverifiedProviders(ctx context.Context) ([]domain.User, error)
}

type NotificationSender interface {
	NotifyProviderVerified(ctx context.Context, providerID int64)
	NotifyProviderUnverified(ctx context.Context, providerID int64)
	NotifySuspensionChanged(ctx context.Context, userID int64, suspended bool)
}
