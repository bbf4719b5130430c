package catalog

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
	"github.com/KhaanFaizan/Safai-PAK/internal/repository"
)

const pageSize = 10

type Service struct {
	services ServiceRepository
	users    UserRepository
}

func NewService(services ServiceRepository, users UserRepository) *Service {
	return &Service{services: services, users: users}
}

func (s *Service) CreateService(ctx context.Context, providerID int64, req CreateServiceRequest) (*domain.Service, error) {
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Description) == "" ||
		req.Price <= 0 || strings.TrimSpace(req.Duration) == "" || strings.TrimSpace(req.Category) == "" {
		return nil, ErrValidation
	}
	if !domain.IsValidCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	svc := &domain.Service{
		ProviderID:  providerID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Category:    req.Category,
	}
	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) GetService(ctx context.Context, id int64) (*ServiceView, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	view := ServiceView{Service: *svc}
	providers, err := s.users.ListByIDs(ctx, []int64{svc.ProviderID})
	if err == nil && len(providers) == 1 {
		p := providers[0]
		view.Provider = &ProviderInfo{ID: p.ID, Name: p.Name, City: p.City, Rating: p.Rating}
	}
	return &view, nil
}

func (s *Service) UpdateService(ctx context.Context, providerID, id int64, req UpdateServiceRequest) (*domain.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}
	if svc.ProviderID != providerID {
		return nil, ErrNotOwner
	}

	if req.Name != "" {
		svc.Name = req.Name
	}
	if req.Description != "" {
		svc.Description = req.Description
	}
	if req.Price > 0 {
		svc.Price = req.Price
	}
	if req.Duration != "" {
		svc.Duration = req.Duration
	}
	if req.Category != "" {
		if !domain.IsValidCategory(req.Category) {
			return nil, ErrInvalidCategory
		}
		svc.Category = req.Category
	}

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *Service) DeleteService(ctx context.Context, providerID, id int64) error {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrServiceNotFound
		}
		return err
	}
	if svc.ProviderID != providerID {
		return ErrNotOwner
	}
	return s.services.Delete(ctx, id)
}

func (s *Service) ListProviderServices(ctx context.Context, providerID int64) ([]domain.Service, error) {
	return s.services.ListByProvider(ctx, providerID)
}

// Search resolves provider-level filters (city, rating) to an ID set first,
// then pages the service query. An empty ID set short-circuits to an empty
// page without hitting the services table.
func (s *Service) Search(ctx context.Context, q SearchQuery) (*SearchResult, error) {
	if q.Page < 1 {
		q.Page = 1
	}

	filter := repository.ServiceFilter{
		Keyword:  q.Keyword,
		Category: q.Category,
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
		Limit:    pageSize,
		Offset:   (q.Page - 1) * pageSize,
	}

	if q.City != "" || q.MinRating > 0 {
		ids, err := s.users.FilterProviderIDs(ctx, q.City, q.MinRating)
		if err != nil {
			return nil, err
		}
		if len(ids) == 0 {
			return &SearchResult{Services: []ServiceView{}, Page: q.Page, Pages: 0, Total: 0}, nil
		}
		filter.ProviderIDs = ids
	}

	services, total, err := s.services.Search(ctx, filter)
	if err != nil {
		return nil, err
	}

	providerIDs := make([]int64, 0, len(services))
	for _, svc := range services {
		providerIDs = append(providerIDs, svc.ProviderID)
	}
	providerInfo := make(map[int64]ProviderInfo, len(providerIDs))
	if len(providerIDs) > 0 {
		providers, err := s.users.ListByIDs(ctx, providerIDs)
		if err != nil {
			return nil, err
		}
		for _, p := range providers {
			providerInfo[p.ID] = ProviderInfo{ID: p.ID, Name: p.Name, City: p.City, Rating: p.Rating}
		}
	}

	views := make([]ServiceView, 0, len(services))
	for _, svc := range services {
		view := ServiceView{Service: svc}
		if info, ok := providerInfo[svc.ProviderID]; ok {
			p := info
			view.Provider = &p
		}
		views = append(views, view)
	}

	pages := int((total + pageSize - 1) / pageSize)
	return &SearchResult{Services: views, Page: q.Page, Pages: pages, Total: total}, nil
}

func (s *Service) Categories() []string {
	return domain.ServiceCategories
}
