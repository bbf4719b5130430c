package auth

import (
	"context"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
)

// UserRepository — only the methods the auth service uses.
type UserRepository interface {
	Create(ctx context.Context, u *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

type NotificationSender interface {
	NotifyRegistration(ctx context.Context, user *domain.User)
}
