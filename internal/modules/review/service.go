package review

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
)

type Service struct {
	reviews  ReviewRepository
	bookings BookingRepository
	users    UserRepository
	services ServiceRepository
	notifs   NotificationSender
}

func NewService(
	reviews ReviewRepository,
	bookings BookingRepository,
	users UserRepository,
	services ServiceRepository,
	notifs NotificationSender,
) *Service {
	return &Service{
		reviews:  reviews,
		bookings: bookings,
		users:    users,
		services: services,
		notifs:   notifs,
	}
}

func (s *Service) CreateReview(ctx context.Context, customerID int64, req CreateReviewRequest) (*domain.Review, error) {
	if req.BookingID == 0 || req.Rating < 1 || req.Rating > 5 || strings.TrimSpace(req.Comment) == "" {
		return nil, ErrValidation
	}

	booking, err := s.bookings.GetByID(ctx, req.BookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	if booking.CustomerID != customerID {
		return nil, ErrNotBookingOwner
	}

	if booking.Status != domain.BookingCompleted {
		return nil, ErrBookingNotDone
	}

	exists, err := s.reviews.ExistsForBooking(ctx, req.BookingID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrDuplicateReview
	}

	review := &domain.Review{
		BookingID:  booking.ID,
		CustomerID: customerID,
		ProviderID: booking.ProviderID,
		ServiceID:  booking.ServiceID,
		Rating:     req.Rating,
		Comment:    req.Comment,
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		// the unique index on booking_id backstops the pre-check under
		// concurrent submissions
		if isDuplicateKey(err) {
			return nil, ErrDuplicateReview
		}
		return nil, err
	}

	s.recomputeProviderRating(ctx, booking.ProviderID)

	if s.notifs != nil {
		s.notifs.NotifyNewReview(ctx, booking.ProviderID, review.ID, review.Rating)
	}

	return review, nil
}

// recomputeProviderRating overwrites the provider's summary with a full
// AVG/COUNT over their reviews. Re-deriving instead of incrementing keeps
// concurrent submissions convergent.
func (s *Service) recomputeProviderRating(ctx context.Context, providerID int64) {
	summary, err := s.reviews.AggregateByProvider(ctx, providerID)
	if err != nil {
		log.Printf("rating aggregation failed: provider=%d err=%v", providerID, err)
		return
	}
	if summary.NumReviews == 0 {
		return
	}
	if err := s.users.UpdateRatingSummary(ctx, providerID, summary.AverageRating, int(summary.NumReviews)); err != nil {
		log.Printf("rating update failed: provider=%d err=%v", providerID, err)
	}
}

func (s *Service) GetProviderReviews(ctx context.Context, providerID int64) ([]ReviewView, error) {
	reviews, err := s.reviews.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	customerIDs := make([]int64, 0, len(reviews))
	serviceIDs := make([]int64, 0, len(reviews))
	for _, r := range reviews {
		customerIDs = append(customerIDs, r.CustomerID)
		serviceIDs = append(serviceIDs, r.ServiceID)
	}

	customers, err := s.users.ListByIDs(ctx, customerIDs)
	if err != nil {
		return nil, err
	}
	services, err := s.services.ListByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, err
	}

	customerNames := make(map[int64]string, len(customers))
	for _, u := range customers {
		customerNames[u.ID] = u.Name
	}
	serviceNames := make(map[int64]string, len(services))
	for _, svc := range services {
		serviceNames[svc.ID] = svc.Name
	}

	out := make([]ReviewView, 0, len(reviews))
	for _, r := range reviews {
		out = append(out, toView(r, customerNames[r.CustomerID], serviceNames[r.ServiceID]))
	}
	return out, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
