package user

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
)

var ErrProviderNotFound = errors.New("provider not found")

type Service struct {
	users    UserRepository
	services ServiceRepository
}

func NewService(users UserRepository, services ServiceRepository) *Service {
	return &Service{users: users, services: services}
}

func (s *Service) GetProviderProfile(ctx context.Context, providerID int64) (*ProviderProfile, error) {
	u, err := s.users.GetByID(ctx, providerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProviderNotFound
		}
		return nil, err
	}
	if u.Role != domain.RoleProvider {
		return nil, ErrProviderNotFound
	}

	services, err := s.services.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	return &ProviderProfile{
		ID:         u.ID,
		Name:       u.Name,
		City:       u.City,
		IsVerified: u.IsVerified,
		Rating:     u.Rating,
		NumReviews: u.NumReviews,
		Services:   services,
	}, nil
}
