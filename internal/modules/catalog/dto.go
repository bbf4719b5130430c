package catalog

import "github.com/KhaanFaizan/Safai-PAK/internal/domain"

type CreateServiceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description" binding:"required"`
	Price       float64 `json:"price" binding:"required,gt=0"`
	Duration    string  `json:"duration" binding:"required"`
	Category    string  `json:"category" binding:"required"`
}

type UpdateServiceRequest struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    string  `json:"duration"`
	Category    string  `json:"category"`
}

// SearchQuery carries the public catalog filters. City and MinRating apply
// to the owning provider, the rest to the service row itself.
type SearchQuery struct {
	Keyword   string
	Category  string
	MinPrice  float64
	MaxPrice  float64
	City      string
	MinRating float64
	Page      int
}

type ProviderInfo struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	City   string  `json:"city"`
	Rating float64 `json:"rating"`
}

type ServiceView struct {
	domain.Service
	Provider *ProviderInfo `json:"provider,omitempty"`
}

type SearchResult struct {
	Services []ServiceView `json:"services"`
	Page     int           `json:"page"`
	Pages    int           `json:"pages"`
	Total    int64         `json:"total"`
}
