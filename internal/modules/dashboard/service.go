package dashboard

import (
	"context"
	"sort"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
)

type Service struct {
	bookings BookingRepository
	users    UserRepository
}

func NewService(bookings BookingRepository, users UserRepository) *Service {
	return &Service{bookings: bookings, users: users}
}

// GetProviderStats assembles the provider dashboard. Every status key is
// present in the map even when its count is zero, so clients can render
// fixed tiles without guarding.
func (s *Service) GetProviderStats(ctx context.Context, providerID int64) (*Stats, error) {
	counts, err := s.bookings.CountByStatusForProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	statusMap := map[string]int64{
		string(domain.BookingPending):   0,
		string(domain.BookingAccepted):  0,
		string(domain.BookingCompleted): 0,
		string(domain.BookingCancelled): 0,
	}
	var total int64
	for _, sc := range counts {
		statusMap[string(sc.Status)] = sc.Count
		total += sc.Count
	}

	earnings, err := s.bookings.ListCompletedEarnings(ctx, providerID)
	if err != nil {
		return nil, err
	}

	// Bucketing by month in Go keeps the query identical across postgres
	// and sqlite.
	type monthKey struct {
		year  int
		month int
	}
	buckets := make(map[monthKey]float64)
	var totalEarnings float64
	for _, e := range earnings {
		totalEarnings += e.Price
		k := monthKey{year: e.ScheduledDate.Year(), month: int(e.ScheduledDate.Month())}
		buckets[k] += e.Price
	}

	monthly := make([]MonthlyEarning, 0, len(buckets))
	for k, amount := range buckets {
		monthly = append(monthly, MonthlyEarning{Month: k.month, Year: k.year, Amount: amount})
	}
	sort.Slice(monthly, func(i, j int) bool {
		if monthly[i].Year != monthly[j].Year {
			return monthly[i].Year < monthly[j].Year
		}
		return monthly[i].Month < monthly[j].Month
	})

	stats := &Stats{
		Bookings:        statusMap,
		TotalBookings:   total,
		TotalEarnings:   totalEarnings,
		MonthlyEarnings: monthly,
	}

	provider, err := s.users.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}
	stats.Rating = provider.Rating
	stats.NumReviews = provider.NumReviews

	return stats, nil
}
