package review

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
	"github.com/KhaanFaizan/Safai-PAK/internal/repository"
)

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *domain.Review) error {
	args := m.Called(ctx, review)
	if review != nil {
		review.ID = 555 // simulate DB insert
	}
	return args.Error(0)
}

func (m *MockReviewRepository) ExistsForBooking(ctx context.Context, bookingID int64) (bool, error) {
	args := m.Called(ctx, bookingID)
	return args.Bool(0), args.Error(1)
}

func (m *MockReviewRepository) ListByProvider(ctx context.Context, providerID int64) ([]domain.Review, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Review), args.Error(1)
}

func (m *MockReviewRepository) AggregateByProvider(ctx context.Context, providerID int64) (*repository.RatingSummary, error) {
	args := m.Called(ctx, providerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.RatingSummary), args.Error(1)
}

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
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

func (m *MockUserRepository) UpdateRatingSummary(ctx context.Context, providerID int64, rating float64, numReviews int) error {
	args := m.Called(ctx, providerID, rating, numReviews)
	return args.Error(0)
}

type MockServiceRepository struct {
	mock.Mock
}

func (m *MockServiceRepository) ListByIDs(ctx context.Context, ids []int64) ([]domain.Service, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Service), args.Error(1)
}

type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) NotifyNewReview(ctx context.Context, providerID, reviewID int64, rating int) {
	m.Called(ctx, providerID, reviewID, rating)
}

func newTestService() (*Service, *MockReviewRepository, *MockBookingRepository, *MockUserRepository, *MockNotificationSender) {
	mockReviews := new(MockReviewRepository)
	mockBookings := new(MockBookingRepository)
	mockUsers := new(MockUserRepository)
	mockServices := new(MockServiceRepository)
	mockNotifs := new(MockNotificationSender)
	return NewService(mockReviews, mockBookings, mockUsers, mockServices, mockNotifs),
		mockReviews, mockBookings, mockUsers, mockNotifs
}

func completedBooking() *domain.Booking {
	return &domain.Booking{
		ID:         1,
		CustomerID: 3,
		ProviderID: 7,
		ServiceID:  10,
		Status:     domain.BookingCompleted,
	}
}

func TestService_CreateReview_Success(t *testing.T) {
	service, mockReviews, mockBookings, mockUsers, mockNotifs := newTestService()

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(completedBooking(), nil)
	mockReviews.On("ExistsForBooking", mock.Anything, int64(1)).Return(false, nil)
	mockReviews.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockReviews.On("AggregateByProvider", mock.Anything, int64(7)).Return(&repository.RatingSummary{
		AverageRating: 4.5,
		NumReviews:    2,
	}, nil)
	mockUsers.On("UpdateRatingSummary", mock.Anything, int64(7), 4.5, 2).Return(nil)
	mockNotifs.On("NotifyNewReview", mock.Anything, int64(7), int64(555), 5).Return()

	review, err := service.CreateReview(context.Background(), 3, CreateReviewRequest{
		BookingID: 1,
		Rating:    5,
		Comment:   "Excellent work",
	})

	assert.NoError(t, err)
	assert.NotNil(t, review)
	assert.Equal(t, int64(7), review.ProviderID)
	assert.Equal(t, int64(10), review.ServiceID)
	mockUsers.AssertCalled(t, "UpdateRatingSummary", mock.Anything, int64(7), 4.5, 2)
	mockNotifs.AssertCalled(t, "NotifyNewReview", mock.Anything, int64(7), int64(555), 5)
}

func TestService_CreateReview_RatingOutOfRange(t *testing.T) {
	service, _, _, _, _ := newTestService()

	_, err := service.CreateReview(context.Background(), 3, CreateReviewRequest{
		BookingID: 1,
		Rating:    6,
		Comment:   "too good",
	})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = service.CreateReview(context.Background(), 3, CreateReviewRequest{
		BookingID: 1,
		Rating:    0,
		Comment:   "missing rating",
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestService_CreateReview_BookingNotFound(t *testing.T) {
	service, _, mockBookings, _, _ := newTestService()

	mockBookings.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := service.CreateReview(context.Background(), 3, CreateReviewRequest{
		BookingID: 404,
		Rating:    4,
		Comment:   "fine",
	})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestService_CreateReview_NotBookingOwner(t *testing.T) {
	service, _, mockBookings, _, _ := newTestService()

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(completedBooking(), nil)

	_, err := service.CreateReview(context.Background(), 4, CreateReviewRequest{
		BookingID: 1,
		Rating:    4,
		Comment:   "fine",
	})
	assert.ErrorIs(t, err, ErrNotBookingOwner)
}

func TestService_CreateReview_BookingNotCompleted(t *testing.T) {
	service, _, mockBookings, _, _ := newTestService()

	b := completedBooking()
	b.Status = domain.BookingAccepted
	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(b, nil)

	_, err := service.CreateReview(context.Background(), 3, CreateReviewRequest{
		BookingID: 1,
		Rating:    4,
		Comment:   "fine",
	})
	assert.ErrorIs(t, err, ErrBookingNotDone)
}

func TestService_CreateReview_Duplicate(t *testing.T) {
	service, mockReviews, mockBookings, _, _ := newTestService()

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(completedBooking(), nil)
	mockReviews.On("ExistsForBooking", mock.Anything, int64(1)).Return(true, nil)

	_, err := service.CreateReview(context.Background(), 3, CreateReviewRequest{
		BookingID: 1,
		Rating:    4,
		Comment:   "again",
	})
	assert.ErrorIs(t, err, ErrDuplicateReview)
}

// The unique index can still fire when two requests pass the pre-check at
// the same time; the driver error must map to the same duplicate error.
func TestService_CreateReview_DuplicateKeyBackstop(t *testing.T) {
	service, mockReviews, mockBookings, _, _ := newTestService()

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(completedBooking(), nil)
	mockReviews.On("ExistsForBooking", mock.Anything, int64(1)).Return(false, nil)
	mockReviews.On("Create", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

	_, err := service.CreateReview(context.Background(), 3, CreateReviewRequest{
		BookingID: 1,
		Rating:    4,
		Comment:   "race",
	})
	assert.ErrorIs(t, err, ErrDuplicateReview)
}

// A failed aggregation must not fail the review itself.
func TestService_CreateReview_AggregationFailureSwallowed(t *testing.T) {
	service, mockReviews, mockBookings, _, mockNotifs := newTestService()

	mockBookings.On("GetByID", mock.Anything, int64(1)).Return(completedBooking(), nil)
	mockReviews.On("ExistsForBooking", mock.Anything, int64(1)).Return(false, nil)
	mockReviews.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockReviews.On("AggregateByProvider", mock.Anything, int64(7)).Return(nil, assert.AnError)
	mockNotifs.On("NotifyNewReview", mock.Anything, int64(7), int64(555), 3).Return()

	review, err := service.CreateReview(context.Background(), 3, CreateReviewRequest{
		BookingID: 1,
		Rating:    3,
		Comment:   "ok",
	})

	assert.NoError(t, err)
	assert.NotNil(t, review)
}

func TestService_GetProviderReviews_Projection(t *testing.T) {
	service, mockReviews, _, mockUsers, _ := newTestService()
	mockServices := service.services.(*MockServiceRepository)

	mockReviews.On("ListByProvider", mock.Anything, int64(7)).Return([]domain.Review{
		{ID: 1, CustomerID: 3, ProviderID: 7, ServiceID: 10, Rating: 5, Comment: "great"},
	}, nil)
	mockUsers.On("ListByIDs", mock.Anything, []int64{3}).Return([]domain.User{
		{ID: 3, Name: "Fatima", Email: "hidden@example.com"},
	}, nil)
	mockServices.On("ListByIDs", mock.Anything, []int64{10}).Return([]domain.Service{
		{ID: 10, Name: "Termite Treatment"},
	}, nil)

	views, err := service.GetProviderReviews(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, views, 1)
	assert.Equal(t, "Fatima", views[0].CustomerName)
	assert.Equal(t, "Termite Treatment", views[0].ServiceName)
}
