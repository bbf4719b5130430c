package booking

import (
	"context"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error)
	ListByProvider(ctx context.Context, providerID int64) ([]domain.Booking, error)
	ListAll(ctx context.Context) ([]domain.Booking, error)
}

type ServiceRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Service, error)
	ListByIDs(ctx context.Context, ids []int64) ([]domain.Service, error)
}

type UserRepository interface {
	ListByIDs(ctx context.Context, ids []int64) ([]domain.User, error)
}

// NotificationSender is fire-and-forget: implementations swallow their own
// errors so a failed advisory write never rolls back a booking mutation.
type NotificationSender interface {
	NotifyBookingCreated(ctx context.Context, providerID int64, b *domain.Booking)
	NotifyBookingAccepted(ctx context.Context, b *domain.Booking)
	NotifyBookingCompleted(ctx context.Context, b *domain.Booking)
	NotifyBookingCancelledByProvider(ctx context.Context, b *domain.Booking)
	NotifyBookingCancelledByCustomer(ctx context.Context, b *domain.Booking)
}
