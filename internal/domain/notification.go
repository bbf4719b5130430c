package domain

import "time"

type NotificationType string

const (
	NotifSystem           NotificationType = "system"
	NotifVerification     NotificationType = "verification"
	NotifBookingCreate    NotificationType = "booking_create"
	NotifBookingAccepted  NotificationType = "booking_accepted"
	NotifBookingCompleted NotificationType = "booking_completed"
	NotifBookingCancelled NotificationType = "booking_cancelled"
	// NotifBookingCancel is the provider-facing tag used when a customer
	// cancels, kept distinct from the customer-facing cancelled tag.
	NotifBookingCancel NotificationType = "booking_cancel"
)

type Notification struct {
	ID          int64            `json:"id" gorm:"column:id;primaryKey"`
	RecipientID int64            `json:"recipient_id" gorm:"column:recipient_id;index:idx_notifications_recipient"`
	SenderID    *int64           `json:"sender_id,omitempty" gorm:"column:sender_id"`
	Type        NotificationType `json:"type" gorm:"column:type"`
	Title       string           `json:"title" gorm:"column:title"`
	Message     string           `json:"message" gorm:"column:message;type:text"`
	RelatedID   *int64           `json:"related_id,omitempty" gorm:"column:related_id"`
	IsRead      bool             `json:"isRead" gorm:"column:is_read;index:idx_notifications_recipient"`
	CreatedAt   time.Time        `json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }
