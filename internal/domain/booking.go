package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingAccepted  BookingStatus = "accepted"
	BookingCompleted BookingStatus = "completed"
	BookingCancelled BookingStatus = "cancelled"
)

// Booking references customer, provider and service by id only; integrity is
// checked in the services, not by the storage engine.
type Booking struct {
	ID            int64         `json:"id" gorm:"column:id;primaryKey"`
	CustomerID    int64         `json:"customer_id" gorm:"column:customer_id;index"`
	ProviderID    int64         `json:"provider_id" gorm:"column:provider_id;index"`
	ServiceID     int64         `json:"service_id" gorm:"column:service_id;index"`
	ScheduledDate time.Time     `json:"scheduledDate" gorm:"column:scheduled_date"`
	Address       string        `json:"address" gorm:"column:address"`
	Status        BookingStatus `json:"status" gorm:"column:status"`
	CreatedAt     time.Time     `json:"created_at"`
	UpdatedAt     time.Time     `json:"updated_at"`
}

func (Booking) TableName() string { return "bookings" }
