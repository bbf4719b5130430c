package domain

import "time"

type Review struct {
	ID         int64     `json:"id" gorm:"column:id;primaryKey"`
	BookingID  int64     `json:"booking_id" gorm:"column:booking_id;uniqueIndex:idx_reviews_booking"`
	CustomerID int64     `json:"customer_id" gorm:"column:customer_id;index"`
	ProviderID int64     `json:"provider_id" gorm:"column:provider_id;index"`
	ServiceID  int64     `json:"service_id" gorm:"column:service_id"`
	Rating     int       `json:"rating" gorm:"column:rating"`
	Comment    string    `json:"comment" gorm:"column:comment;type:text"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func (Review) TableName() string { return "reviews" }
