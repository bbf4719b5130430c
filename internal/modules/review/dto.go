package review

import (
	"time"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
)

type CreateReviewRequest struct {
	BookingID int64  `json:"bookingId" binding:"required"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment" binding:"required"`
}

// ReviewView is the public projection: reviewer and service by name only.
type ReviewView struct {
	ID           int64     `json:"id"`
	Rating       int       `json:"rating"`
	Comment      string    `json:"comment"`
	CustomerName string    `json:"customer_name"`
	ServiceName  string    `json:"service_name"`
	CreatedAt    time.Time `json:"created_at"`
}

func toView(r domain.Review, customerName, serviceName string) ReviewView {
	return ReviewView{
		ID:           r.ID,
		Rating:       r.Rating,
		Comment:      r.Comment,
		CustomerName: customerName,
		ServiceName:  serviceName,
		CreatedAt:    r.CreatedAt,
	}
}
