package user

import "github.com/KhaanFaizan/Safai-PAK/internal/domain"

// ProviderProfile is the public view of a provider: contact fields stripped
// down to what the marketplace listing shows.
type ProviderProfile struct {
	ID         int64            `json:"id"`
	Name       string           `json:"name"`
	City       string           `json:"city"`
	IsVerified bool             `json:"is_verified"`
	Rating     float64          `json:"rating"`
	NumReviews int              `json:"num_reviews"`
	Services   []domain.Service `json:"services"`
}
