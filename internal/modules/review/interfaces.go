package review

import (
	"context"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
	"github.com/KhaanFaizan/Safai-PAK/internal/repository"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	ExistsForBooking(ctx context.Context, bookingID int64) (bool, error)
	ListByProvider(ctx context.Context, providerID int64) ([]domain.Review, error)
	AggregateByProvider(ctx context.Context, providerID int64) (*repository.RatingSummary, error)
}

type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
}

type UserRepository interface {
	ListByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
	UpdateRatingSummary(ctx context.Context, providerID int64, rating float64, numReviews int) error
}

type ServiceRepository interface {
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Service, error)
}

type NotificationSender interface {
	NotifyNewReview(ctx context.Context, providerID, reviewID int64, rating int)
}
