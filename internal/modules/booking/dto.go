package booking

import (
	"time"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
)

type CreateBookingRequest struct {
	ServiceID     int64     `json:"serviceId" binding:"required"`
	ScheduledDate time.Time `json:"scheduledDate" binding:"required"`
	Address       string    `json:"address" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ServiceInfo is the limited catalog projection attached to list results.
type ServiceInfo struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Category string  `json:"category,omitempty"`
}

// PartyInfo is the counterpart identity projection. Contact fields are only
// filled for the booking's own counterpart, never for third parties.
type PartyInfo struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

type BookingView struct {
	ID            int64                `json:"id"`
	Status        domain.BookingStatus `json:"status"`
	ScheduledDate time.Time            `json:"scheduledDate"`
	Address       string               `json:"address"`
	CreatedAt     time.Time            `json:"created_at"`
	Service       *ServiceInfo         `json:"service,omitempty"`
	Customer      *PartyInfo           `json:"customer,omitempty"`
	Provider      *PartyInfo           `json:"provider,omitempty"`
}
