package booking

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
)

// Mock repositories

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	if b != nil {
		b.ID = 999 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	args := m.Called(ctx, bookingID, status)
	return args.Error(0)
}

func (m *MockBookingRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, customerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListByProvider(ctx context.Context, providerID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Booking), args.Error(1)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) GetByID(ctx context.Context, id int64) (*domain.Service, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Service), args.Error(1)
}

func (m *MockServiceRepository) ListByIDs(ctx context.Context, ids []int64) ([]domain.Service, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) ListByIDs(ctx context.Context, ids []int64) ([]domain.User, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyBookingCreated(ctx context.Context, providerID int64, b *domain.Booking) {
	m.Called(ctx, providerID, b)
}

func (m *MockNotificationSender) NotifyBookingAccepted(ctx context.Context, b *domain.Booking) {
	m.Called(ctx, b)
}

func (m *MockNotificationSender) NotifyBookingCompleted(ctx context.Context, b *domain.Booking) {
	m.Called(ctx, b)
}

func (m *MockNotificationSender) NotifyBookingCancelledByProvider(ctx context.Context, b *domain.Booking) {
	m.Called(ctx, b)
}

func (m *MockNotificationSender) NotifyBookingCancelledByCustomer(ctx context.Context, b *domain.Booking) {
	m.Called(ctx, b)
}

func newTestService() (*Service, *MockBookingRepository, *MockServiceRepository, *MockUserRepository, *MockNotificationSender) {
	mockBookings := new(MockBookingRepository)
	mockServices := new(MockServiceRepository)
	mockUsers := new(MockUserRepository)
	mockNotifs := new(MockNotificationSender)
	return NewService(mockBookings, mockServices, mockUsers, mockNotifs), mockBookings, mockServices, mockUsers, mockNotifs
}

func TestService_CreateBooking_Success(t *testing.T) {
	service, mockBookings, mockServices, _, mockNotifs := newTestService()

	mockServices.On("GetByID", mock.Anything, int64(10)).Return(&domain.Service{
		ID:         10,
		ProviderID: 7,
		Name:       "Full House Deep Clean",
		Price:      5000,
	}, nil)
	mockBookings.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockNotifs.On("NotifyBookingCreated", mock.Anything, int64(7), mock.Anything).Return()

	req := CreateBookingRequest{
		ServiceID:     10,
		ScheduledDate: time.Now().Add(48 * time.Hour),
		Address:       "House 12, Street 4, Lahore",
	}

	b, err := service.CreateBooking(context.Background(), 3, domain.RoleCustomer, req)

	assert.NoError(t, err)
	assert.NotNil(t, b)
	assert.Equal(t, domain.BookingPending, b.Status)
	assert.Equal(t, int64(7), b.ProviderID)
	assert.Equal(t, int64(3), b.CustomerID)
	mockNotifs.AssertCalled(t, "NotifyBookingCreated", mock.Anything, int64(7), mock.Anything)
}

func TestService_CreateBooking_ProviderForbidden(t *testing.T) {
	service, _, _, _, _ := newTestService()

	req := CreateBookingRequest{
		ServiceID:     10,
		ScheduledDate: time.Now().Add(48 * time.Hour),
		Address:       "somewhere",
	}

	_, err := service.CreateBooking(context.Background(), 7, domain.RoleProvider, req)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_CreateBooking_PastDate(t *testing.T) {
	service, _, _, _, _ := newTestService()

	req := CreateBookingRequest{
		ServiceID:     10,
		ScheduledDate: time.Now().Add(-48 * time.Hour),
		Address:       "somewhere",
	}

	_, err := service.CreateBooking(context.Background(), 3, domain.RoleCustomer, req)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateBooking_ServiceNotFound(t *testing.T) {
	service, _, mockServices, _, _ := newTestService()

	mockServices.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	req := CreateBookingRequest{
		ServiceID:     404,
		ScheduledDate: time.Now().Add(48 * time.Hour),
		Address:       "somewhere",
	}

	_, err := service.CreateBooking(context.Background(), 3, domain.RoleCustomer, req)
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestService_UpdateStatus_ProviderAccepts(t *testing.T) {
	service, mockBookings, _, _, mockNotifs := newTestService()

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 3,
		ProviderID: 7,
		Status:     domain.BookingPending,
	}, nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(1), domain.BookingAccepted).Return(nil)
	mockNotifs.On("NotifyBookingAccepted", mock.Anything, mock.Anything).Return()

	b, err := service.UpdateStatus(context.Background(), 1, 7, domain.RoleProvider, domain.BookingAccepted)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingAccepted, b.Status)
	mockNotifs.AssertCalled(t, "NotifyBookingAccepted", mock.Anything, mock.Anything)
}

// Providers are not constrained by the booking's current status: a completed
// booking can be moved back to accepted. This pins the transition table.
func TestService_UpdateStatus_ProviderReopensCompletedBooking(t *testing.T) {
	service, mockBookings, _, _, mockNotifs := newTestService()

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 3,
		ProviderID: 7,
		Status:     domain.BookingCompleted,
	}, nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(1), domain.BookingAccepted).Return(nil)
	mockNotifs.On("NotifyBookingAccepted", mock.Anything, mock.Anything).Return()

	b, err := service.UpdateStatus(context.Background(), 1, 7, domain.RoleProvider, domain.BookingAccepted)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingAccepted, b.Status)
}

func TestService_UpdateStatus_ProviderInvalidTarget(t *testing.T) {
	service, mockBookings, _, _, _ := newTestService()

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 3,
		ProviderID: 7,
		Status:     domain.BookingAccepted,
	}, nil)

	_, err := service.UpdateStatus(context.Background(), 1, 7, domain.RoleProvider, domain.BookingPending)
	assert.ErrorIs(t, err, ErrInvalidTarget)
}

func TestService_UpdateStatus_ProviderNotCounterpart(t *testing.T) {
	service, mockBookings, _, _, _ := newTestService()

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 3,
		ProviderID: 7,
		Status:     domain.BookingPending,
	}, nil)

	_, err := service.UpdateStatus(context.Background(), 1, 8, domain.RoleProvider, domain.BookingAccepted)
	assert.ErrorIs(t, err, ErrNotCounterpart)
}

func TestService_UpdateStatus_CustomerCancelsPending(t *testing.T) {
	service, mockBookings, _, _, mockNotifs := newTestService()

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 3,
		ProviderID: 7,
		Status:     domain.BookingPending,
	}, nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(1), domain.BookingCancelled).Return(nil)
	mockNotifs.On("NotifyBookingCancelledByCustomer", mock.Anything, mock.Anything).Return()

	b, err := service.UpdateStatus(context.Background(), 1, 3, domain.RoleCustomer, domain.BookingCancelled)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCancelled, b.Status)
	mockNotifs.AssertCalled(t, "NotifyBookingCancelledByCustomer", mock.Anything, mock.Anything)
}

func TestService_UpdateStatus_CustomerCannotCancelAccepted(t *testing.T) {
	service, mockBookings, _, _, _ := newTestService()

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 3,
		ProviderID: 7,
		Status:     domain.BookingAccepted,
	}, nil)

	_, err := service.UpdateStatus(context.Background(), 1, 3, domain.RoleCustomer, domain.BookingCancelled)
	assert.ErrorIs(t, err, ErrCustomerNotPending)
}

func TestService_UpdateStatus_CustomerCannotAccept(t *testing.T) {
	service, mockBookings, _, _, _ := newTestService()

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 3,
		ProviderID: 7,
		Status:     domain.BookingPending,
	}, nil)

	_, err := service.UpdateStatus(context.Background(), 1, 3, domain.RoleCustomer, domain.BookingAccepted)
	assert.ErrorIs(t, err, ErrCustomerNotPending)
}

func TestService_UpdateStatus_CrossCustomerCancel(t *testing.T) {
	service, mockBookings, _, _, _ := newTestService()

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 3,
		ProviderID: 7,
		Status:     domain.BookingPending,
	}, nil)

	_, err := service.UpdateStatus(context.Background(), 1, 4, domain.RoleCustomer, domain.BookingCancelled)
	assert.ErrorIs(t, err, ErrNotCounterpart)
}

func TestService_UpdateStatus_NotFound(t *testing.T) {
	service, mockBookings, _, _, _ := newTestService()

	mockBookings.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.UpdateStatus(context.Background(), 404, 7, domain.RoleProvider, domain.BookingAccepted)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_UpdateStatus_CompletedNotifiesAdmins(t *testing.T) {
	service, mockBookings, _, _, mockNotifs := newTestService()

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(&domain.Booking{
		ID:         1,
		CustomerID: 3,
		ProviderID: 7,
		Status:     domain.BookingAccepted,
	}, nil)
	mockBookings.On("UpdateStatus", mock.Anything, int64(1), domain.BookingCompleted).Return(nil)
	mockNotifs.On("NotifyBookingCompleted", mock.Anything, mock.Anything).Return()

	b, err := service.UpdateStatus(context.Background(), 1, 7, domain.RoleProvider, domain.BookingCompleted)

	assert.NoError(t, err)
	assert.Equal(t, domain.BookingCompleted, b.Status)
	mockNotifs.AssertCalled(t, "NotifyBookingCompleted", mock.Anything, mock.Anything)
}

func TestService_ListBookings_CustomerSeesProviderContact(t *testing.T) {
	service, mockBookings, mockServices, mockUsers, _ := newTestService()

	mockBookings.On("ListByCustomer", mock.Anything, int64(3)).Return([]domain.Booking{
		{ID: 1, CustomerID: 3, ProviderID: 7, ServiceID: 10, Status: domain.BookingPending},
	}, nil)
	mockServices.On("ListByIDs", mock.Anything, mock.Anything).Return([]domain.Service{
		{ID: 10, Name: "Termite Treatment", Price: 8000, Category: "Pest Control"},
	}, nil)
	mockUsers.On("ListByIDs", mock.Anything, mock.Anything).Return([]domain.User{
		{ID: 3, Name: "Fatima", Email: "fatima@example.com", Phone: "123"},
		{ID: 7, Name: "Ahmed", Email: "ahmed@safaipak.com", Phone: "456"},
	}, nil)

	views, err := service.ListBookings(context.Background(), 3, domain.RoleCustomer)

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Nil(t, views[0].Customer)
	assert.NotNil(t, views[0].Provider)
	assert.Equal(t, "ahmed@safaipak.com", views[0].Provider.Email)
	assert.Equal(t, "Pest Control", views[0].Service.Category)
}

func TestService_ListBookings_AdminSeesBothPartiesNameOnly(t *testing.T) {
	service, mockBookings, mockServices, mockUsers, _ := newTestService()

	mockBookings.On("ListAll", mock.Anything).Return([]domain.Booking{
		{ID: 1, CustomerID: 3, ProviderID: 7, ServiceID: 10, Status: domain.BookingPending},
	}, nil)
	mockServices.On("ListByIDs", mock.Anything, mock.Anything).Return([]domain.Service{
		{ID: 10, Name: "Termite Treatment", Price: 8000, Category: "Pest Control"},
	}, nil)
	mockUsers.On("ListByIDs", mock.Anything, mock.Anything).Return([]domain.User{
		{ID: 3, Name: "Fatima", Email: "fatima@example.com"},
		{ID: 7, Name: "Ahmed", Email: "ahmed@safaipak.com"},
	}, nil)

	views, err := service.ListBookings(context.Background(), 1, domain.RoleAdmin)

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.NotNil(t, views[0].Customer)
	assert.NotNil(t, views[0].Provider)
	assert.Empty(t, views[0].Customer.Email)
	assert.Empty(t, views[0].Provider.Email)
	assert.Empty(t, views[0].Service.Category)
}
