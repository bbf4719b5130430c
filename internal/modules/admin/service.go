package admin

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
)

type Service struct {
	users  UserRepository
	notifs NotificationSender
}

func NewService(users UserRepository, notifs NotificationSender) *Service {
	return &Service{users: users, notifs: notifs}
}

func (s *Service) ListUnverifiedProviders(ctx context.Context) ([]domain.User, error) {
	return s.users.ListUnverifiedProviders(ctx)
}

func (s *Service) VerifyProvider(ctx context.Context, providerID int64) (*domain.User, error) {
	provider, err := s.getProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	provider.IsVerified = true
	if err := s.users.Update(ctx, provider); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyProviderVerified(ctx, provider.ID)
	}
	return provider, nil
}

// RejectProvider removes an unverified provider account entirely.
func (s *Service) RejectProvider(ctx context.Context, providerID int64) error {
	provider, err := s.getProvider(ctx, providerID)
	if err != nil {
		return err
	}
	return s.users.Delete(ctx, provider.ID)
}

func (s *Service) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.users.ListAll(ctx)
}

// SetVerified toggles a provider's verified flag to an explicit value, so
// an admin can revoke verification as well as grant it.
func (s *Service) SetVerified(ctx context.Context, userID int64, verified bool) (*domain.User, error) {
	provider, err := s.getProvider(ctx, userID)
	if err != nil {
		return nil, err
	}

	provider.IsVerified = verified
	if err := s.users.Update(ctx, provider); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		if verified {
			s.notifs.NotifyProviderVerified(ctx, provider.ID)
		} else {
			s.notifs.NotifyProviderUnverified(ctx, provider.ID)
		}
	}
	return provider, nil
}

// ToggleSuspension flips the suspended flag and returns the updated user.
func (s *Service) ToggleSuspension(ctx context.Context, userID int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	user.IsSuspended = !user.IsSuspended
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifySuspensionChanged(ctx, user.ID, user.IsSuspended)
	}
	return user, nil
}

func (s *Service) getProvider(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	if user.Role != domain.RoleProvider {
		return nil, ErrNotProvider
	}
	return user, nil
}
