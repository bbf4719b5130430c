package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
)

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// StatusCount is one row of the per-status aggregation.
type StatusCount struct {
	Status domain.BookingStatus `gorm:"column:status"`
	Count  int64                `gorm:"column:count"`
}

// CompletedEarning is a completed booking joined with its service price,
// bucketed into months by the dashboard service.
type CompletedEarning struct {
	ScheduledDate time.Time `gorm:"column:scheduled_date"`
	Price         float64   `gorm:"column:price"`
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var b domain.Booking
	if err := r.db.WithContext(ctx).First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, bookingID int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Booking{}).
		Where("id = ?", bookingID).
		Update("status", status).Error
}

func (r *BookingRepository) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	tx := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&bookings)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return bookings, nil
}

func (r *BookingRepository) ListByProvider(ctx context.Context, providerID int64) ([]domain.Booking, error) {
	var bookings []domain.Booking
	tx := r.db.WithContext(ctx).
		Where("provider_id = ?", providerID).
		Order("created_at DESC").
		Find(&bookings)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return bookings, nil
}

func (r *BookingRepository) ListAll(ctx context.Context) ([]domain.Booking, error) {
	var bookings []domain.Booking
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

func (r *BookingRepository) CountByStatusForProvider(ctx context.Context, providerID int64) ([]StatusCount, error) {
	var rows []StatusCount
	tx := r.db.WithContext(ctx).Model(&domain.Booking{}).
		Select("status, COUNT(*) AS count").
		Where("provider_id = ?", providerID).
		Group("status").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}

// ListCompletedEarnings joins completed bookings with their service price.
// The join is on a plain id column; a booking whose service was deleted
// simply drops out, matching the lookup-style aggregation of the dashboard.
func (r *BookingRepository) ListCompletedEarnings(ctx context.Context, providerID int64) ([]CompletedEarning, error) {
	var rows []CompletedEarning
	tx := r.db.WithContext(ctx).Table("bookings").
		Select("bookings.scheduled_date, services.price").
		Joins("JOIN services ON services.id = bookings.service_id").
		Where("bookings.provider_id = ? AND bookings.status = ?", providerID, domain.BookingCompleted).
		Order("bookings.scheduled_date ASC").
		Scan(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return rows, nil
}
