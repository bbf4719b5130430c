package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

// RatingSummary is the full recompute over a provider's reviews.
type RatingSummary struct {
	AverageRating float64 `gorm:"column:average_rating"`
	NumReviews    int64   `gorm:"column:num_reviews"`
}

func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *ReviewRepository) ExistsForBooking(ctx context.Context, bookingID int64) (bool, error) {
	var review domain.Review
	err := r.db.WithContext(ctx).Where("booking_id = ?", bookingID).First(&review).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *ReviewRepository) ListByProvider(ctx context.Context, providerID int64) ([]domain.Review, error) {
	var reviews []domain.Review
	tx := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&reviews)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return reviews, nil
}

// AggregateByProvider recomputes the mean rating and count from scratch so
// that concurrent review writes converge instead of drifting.
func (r *ReviewRepository) AggregateByProvider(ctx context.Context, providerID int64) (*RatingSummary, error) {
	var summary RatingSummary
	tx := r.db.WithContext(ctx).Model(&domain.Review{}).
		Select("COALESCE(AVG(rating), 0) AS average_rating, COUNT(*) AS num_reviews").
		Where("provider_id = ?", providerID).
		Scan(&summary)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return &summary, nil
}
