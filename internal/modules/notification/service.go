package notification

import (
	"context"
	"fmt"
	"log"

	"github.com/KhaanFaizan/Safai-PAK/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, n *domain.Notification) error
	ListByRecipient(ctx context.Context, recipientID int64, limit int) ([]domain.Notification, error)
	CountUnread(ctx context.Context, recipientID int64) (int64, error)
	MarkAsRead(ctx context.Context, notificationID, recipientID int64) error
	MarkAllAsRead(ctx context.Context, recipientID int64) error
}

type AdminLister interface {
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}

type Service struct {
	repo  NotificationRepository
	users AdminLister
	hub   *Hub
}

func NewService(repo NotificationRepository, users AdminLister, hub *Hub) *Service {
	return &Service{repo: repo, users: users, hub: hub}
}

// Notify writes a notification record for a single recipient. It never
// returns an error: a failed advisory write must not abort the primary
// operation, so persistence errors are logged and discarded.
func (s *Service) Notify(ctx context.Context, recipientID int64, t domain.NotificationType, title, message string, relatedID, senderID *int64) {
	n := &domain.Notification{
		RecipientID: recipientID,
		SenderID:    senderID,
		Type:        t,
		Title:       title,
		Message:     message,
		RelatedID:   relatedID,
	}
	if err := s.repo.Create(ctx, n); err != nil {
		log.Printf("notification error: recipient=%d type=%s err=%v", recipientID, t, err)
		return
	}

	if s.hub != nil {
		_ = s.hub.SendToUser(recipientID, n)
	}
}

// NotifyAdmins fans a single event out to every admin account with one
// role query.
func (s *Service) NotifyAdmins(ctx context.Context, t domain.NotificationType, title, message string, relatedID *int64) {
	admins, err := s.users.ListByRole(ctx, domain.RoleAdmin)
	if err != nil {
		log.Printf("notification error: admin fan-out failed: %v", err)
		return
	}
	for _, admin := range admins {
		s.Notify(ctx, admin.ID, t, title, message, relatedID, nil)
	}
}

func (s *Service) NotifyRegistration(ctx context.Context, user *domain.User) {
	title := "New Customer Registration"
	message := fmt.Sprintf("New customer %s has joined the platform.", user.Name)
	if user.Role == domain.RoleProvider {
		title = "New Provider Registration"
		message = fmt.Sprintf("New provider %s has registered and is pending verification.", user.Name)
	}
	s.NotifyAdmins(ctx, domain.NotifSystem, title, message, &user.ID)
}

func (s *Service) NotifyBookingCreated(ctx context.Context, providerID int64, b *domain.Booking) {
	s.Notify(ctx, providerID, domain.NotifBookingCreate,
		"New Booking Request",
		fmt.Sprintf("You have a new booking request scheduled for %s.", b.ScheduledDate.Format("02 Jan 2006 15:04")),
		&b.ID, &b.CustomerID)
}

func (s *Service) NotifyBookingAccepted(ctx context.Context, b *domain.Booking) {
	s.Notify(ctx, b.CustomerID, domain.NotifBookingAccepted,
		"Booking Accepted",
		"Your booking has been accepted by the provider.",
		&b.ID, &b.ProviderID)
}

func (s *Service) NotifyBookingCompleted(ctx context.Context, b *domain.Booking) {
	s.Notify(ctx, b.CustomerID, domain.NotifBookingCompleted,
		"Booking Completed",
		"Your booking has been marked as completed. You can now leave a review.",
		&b.ID, &b.ProviderID)
	s.NotifyAdmins(ctx, domain.NotifSystem,
		"Booking Completed",
		fmt.Sprintf("Booking #%d has been completed.", b.ID),
		&b.ID)
}

func (s *Service) NotifyBookingCancelledByProvider(ctx context.Context, b *domain.Booking) {
	s.Notify(ctx, b.CustomerID, domain.NotifBookingCancelled,
		"Booking Cancelled",
		"Your booking has been cancelled by the provider.",
		&b.ID, &b.ProviderID)
}

func (s *Service) NotifyBookingCancelledByCustomer(ctx context.Context, b *domain.Booking) {
	s.Notify(ctx, b.ProviderID, domain.NotifBookingCancel,
		"Booking Cancelled",
		"A booking request has been cancelled by the customer.",
		&b.ID, &b.CustomerID)
}

func (s *Service) NotifyProviderVerified(ctx context.Context, providerID int64) {
	s.Notify(ctx, providerID, domain.NotifVerification,
		"Account Verified",
		"Congratulations! Your provider account has been verified. You can now list services.",
		nil, nil)
}

func (s *Service) NotifyProviderUnverified(ctx context.Context, providerID int64) {
	s.Notify(ctx, providerID, domain.NotifSystem,
		"Verification Revoked",
		"Your provider verification has been revoked by an administrator.",
		nil, nil)
}

func (s *Service) NotifySuspensionChanged(ctx context.Context, userID int64, suspended bool) {
	if suspended {
		s.Notify(ctx, userID, domain.NotifSystem,
			"Account Suspended",
			"Your account has been suspended. Contact support for details.",
			nil, nil)
		return
	}
	s.Notify(ctx, userID, domain.NotifSystem,
		"Account Reactivated",
		"Your account has been reactivated.",
		nil, nil)
}

func (s *Service) NotifyNewReview(ctx context.Context, providerID, reviewID int64, rating int) {
	s.Notify(ctx, providerID, domain.NotifSystem,
		"New Review",
		fmt.Sprintf("You received a new review with a rating of %d.", rating),
		&reviewID, nil)
}

func (s *Service) GetUserNotifications(ctx context.Context, userID int64, limit int) ([]domain.Notification, int64, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	list, err := s.repo.ListByRecipient(ctx, userID, limit)
	if err != nil {
		return nil, 0, err
	}

	unread, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		unread = 0
	}

	return list, unread, nil
}

func (s *Service) MarkAsRead(ctx context.Context, notificationID, userID int64) error {
	return s.repo.MarkAsRead(ctx, notificationID, userID)
}

func (s *Service) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.repo.MarkAllAsRead(ctx, userID)
}
