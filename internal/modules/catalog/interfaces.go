package catalog

import (
	"context"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
	"github.com/KhaanFaizan/Safai-PAK/internal/repository"
)

type ServiceRepository interface {
	Create(ctx context.Context, service *domain.Service) error
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	Update(ctx context.Context, service *domain.Service) error
	Delete(ctx context.Context, id int64) error
	ListByProvider(ctx context.Context, providerID int64) ([]domain.Service, error)
	Search(ctx context.Context, filter repository.ServiceFilter) ([]domain.Service, int64, error)
}

type UserRepository interface {
	ListByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
	FilterProviderIDs(ctx context.Context, city string, minRating float64) ([]int64, error)
}
