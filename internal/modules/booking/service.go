package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
)

// providerTargets is the provider transition table: any of these targets is
// allowed regardless of the booking's current status. The missing
// current-state guard (a completed booking can be moved back to accepted) is
// intentional operational latitude for providers, not a bug; see
// TestService_UpdateStatus_ProviderReopensCompletedBooking.
var providerTargets = map[domain.BookingStatus]bool{
	domain.BookingAccepted:  true,
	domain.BookingCompleted: true,
	domain.BookingCancelled: true,
}

// customerTransitionAllowed is the customer transition table: the single
// permitted edge is pending -> cancelled.
func customerTransitionAllowed(current, target domain.BookingStatus) bool {
	return current == domain.BookingPending && target == domain.BookingCancelled
}

type Service struct {
	bookings BookingRepository
	services ServiceRepository
	users    UserRepository
	notifs   NotificationSender
}

func NewService(
	bookings BookingRepository,
	services ServiceRepository,
	users UserRepository,
	notifs NotificationSender,
) *Service {
	return &Service{
		bookings: bookings,
		services: services,
		users:    users,
		notifs:   notifs,
	}
}

func (s *Service) CreateBooking(ctx context.Context, customerID int64, role domain.UserRole, req CreateBookingRequest) (*domain.Booking, error) {
	if role != domain.RoleCustomer {
		return nil, ErrForbidden
	}
	if req.ServiceID == 0 || strings.TrimSpace(req.Address) == "" || req.ScheduledDate.IsZero() {
		return nil, ErrValidation
	}
	if req.ScheduledDate.Before(time.Now().Add(-time.Minute)) {
		return nil, ErrValidation
	}

	svc, err := s.services.GetByID(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrServiceNotFound
		}
		return nil, err
	}

	b := &domain.Booking{
		CustomerID:    customerID,
		ProviderID:    svc.ProviderID,
		ServiceID:     svc.ID,
		ScheduledDate: req.ScheduledDate,
		Address:       req.Address,
		Status:        domain.BookingPending,
	}

	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, err
	}

	if s.notifs != nil {
		s.notifs.NotifyBookingCreated(ctx, svc.ProviderID, b)
	}

	return b, nil
}

// ListBookings is role-scoped: customers and providers see their own side
// with contact details of the counterpart; any other role is an
// administrative read of everything with name-only projections.
func (s *Service) ListBookings(ctx context.Context, callerID int64, role domain.UserRole) ([]BookingView, error) {
	var (
		bookings []domain.Booking
		err      error
	)

	switch role {
	case domain.RoleCustomer:
		bookings, err = s.bookings.ListByCustomer(ctx, callerID)
	case domain.RoleProvider:
		bookings, err = s.bookings.ListByProvider(ctx, callerID)
	default:
		bookings, err = s.bookings.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	services, users, err := s.loadReferences(ctx, bookings)
	if err != nil {
		return nil, err
	}

	out := make([]BookingView, 0, len(bookings))
	for _, b := range bookings {
		view := BookingView{
			ID:            b.ID,
			Status:        b.Status,
			ScheduledDate: b.ScheduledDate,
			Address:       b.Address,
			CreatedAt:     b.CreatedAt,
		}

		if svc, ok := services[b.ServiceID]; ok {
			info := &ServiceInfo{ID: svc.ID, Name: svc.Name, Price: svc.Price}
			if role == domain.RoleCustomer || role == domain.RoleProvider {
				info.Category = svc.Category
			}
			view.Service = info
		}

		switch role {
		case domain.RoleCustomer:
			view.Provider = partyProjection(users, b.ProviderID, true)
		case domain.RoleProvider:
			view.Customer = partyProjection(users, b.CustomerID, true)
		default:
			view.Customer = partyProjection(users, b.CustomerID, false)
			view.Provider = partyProjection(users, b.ProviderID, false)
		}

		out = append(out, view)
	}
	return out, nil
}

func (s *Service) UpdateStatus(ctx context.Context, bookingID, callerID int64, role domain.UserRole, target domain.BookingStatus) (*domain.Booking, error) {
	b, err := s.bookings.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, err
	}

	switch role {
	case domain.RoleProvider:
		if b.ProviderID != callerID {
			return nil, ErrNotCounterpart
		}
		if !providerTargets[target] {
			return nil, ErrInvalidTarget
		}

	case domain.RoleCustomer:
		if b.CustomerID != callerID {
			return nil, ErrNotCounterpart
		}
		if !customerTransitionAllowed(b.Status, target) {
			return nil, ErrCustomerNotPending
		}

	default:
		return nil, ErrForbidden
	}

	if err := s.bookings.UpdateStatus(ctx, bookingID, target); err != nil {
		return nil, err
	}
	b.Status = target

	if s.notifs != nil {
		switch target {
		case domain.BookingAccepted:
			s.notifs.NotifyBookingAccepted(ctx, b)
		case domain.BookingCompleted:
			s.notifs.NotifyBookingCompleted(ctx, b)
		case domain.BookingCancelled:
			if role == domain.RoleProvider {
				s.notifs.NotifyBookingCancelledByProvider(ctx, b)
			} else {
				s.notifs.NotifyBookingCancelledByCustomer(ctx, b)
			}
		}
	}

	return b, nil
}

func (s *Service) loadReferences(ctx context.Context, bookings []domain.Booking) (map[int64]domain.Service, map[int64]domain.User, error) {
	serviceIDs := make([]int64, 0, len(bookings))
	userIDs := make([]int64, 0, 2*len(bookings))
	seenSvc := make(map[int64]bool)
	seenUser := make(map[int64]bool)

	for _, b := range bookings {
		if !seenSvc[b.ServiceID] {
			seenSvc[b.ServiceID] = true
			serviceIDs = append(serviceIDs, b.ServiceID)
		}
		for _, id := range []int64{b.CustomerID, b.ProviderID} {
			if !seenUser[id] {
				seenUser[id] = true
				userIDs = append(userIDs, id)
			}
		}
	}

	serviceList, err := s.services.ListByIDs(ctx, serviceIDs)
	if err != nil {
		return nil, nil, err
	}
	userList, err := s.users.ListByIDs(ctx, userIDs)
	if err != nil {
		return nil, nil, err
	}

	services := make(map[int64]domain.Service, len(serviceList))
	for _, svc := range serviceList {
		services[svc.ID] = svc
	}
	users := make(map[int64]domain.User, len(userList))
	for _, u := range userList {
		users[u.ID] = u
	}
	return services, users, nil
}

func partyProjection(users map[int64]domain.User, id int64, withContact bool) *PartyInfo {
	u, ok := users[id]
	if !ok {
		return &PartyInfo{ID: id}
	}
	p := &PartyInfo{ID: u.ID, Name: u.Name}
	if withContact {
		p.Email = u.Email
		p.Phone = u.Phone
	}
	return p
}
