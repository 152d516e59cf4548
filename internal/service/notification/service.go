package notification

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/repository"
	"zentproje-backend/internal/service/email"
)

// watermarkWindow is how far back the first poll of a fresh admin session
// looks for "new" notifications.
const watermarkWindow = 30 * time.Second

type Service interface {
	Feed(ctx context.Context, adminKey string, params domain.PaginationParams) (*domain.NotificationFeed, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context) error
	UnreadCount(ctx context.Context) (int64, error)

	NotifyNewOrder(ctx context.Context, order *domain.OrderWithDetails) error
	NotifyNewContact(ctx context.Context, contact *domain.Contact) error
	NotifyNewUser(ctx context.Context, user *domain.User) error
}

type service struct {
	notifRepo repository.NotificationRepository
	redis     *redis.Client
	emailSvc  email.Service
}

func NewService(notifRepo repository.NotificationRepository, redis *redis.Client, emailSvc email.Service) Service {
	return &service{
		notifRepo: notifRepo,
		redis:     redis,
		emailSvc:  emailSvc,
	}
}

// Feed returns one poll response. The per-admin watermark lives in Redis so
// it survives restarts and is shared across instances; the original kept it
// in a process-local map.
func (s *service) Feed(ctx context.Context, adminKey string, params domain.PaginationParams) (*domain.NotificationFeed, error) {
	now := time.Now()
	since := now.Add(-watermarkWindow)

	watermarkKey := "notif:lastcheck:" + adminKey
	if s.redis != nil {
		if raw, err := s.redis.Get(ctx, watermarkKey).Result(); err == nil {
			if parsed, perr := time.Parse(time.RFC3339Nano, raw); perr == nil {
				since = parsed
			}
		}
	}

	notifications, total, err := s.notifRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	fresh, err := s.notifRepo.ListUnreadSince(ctx, since)
	if err != nil {
		return nil, err
	}

	unread, err := s.notifRepo.CountUnread(ctx)
	if err != nil {
		return nil, err
	}

	if s.redis != nil {
		_ = s.redis.Set(ctx, watermarkKey, now.Format(time.RFC3339Nano), 0).Err()
	}

	return &domain.NotificationFeed{
		Notifications:    domain.NewPaginatedResponse(notifications, params.Page, params.PageSize, total),
		NewNotifications: fresh,
		UnreadCount:      unread,
	}, nil
}

func (s *service) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	return s.notifRepo.MarkAsRead(ctx, id)
}

func (s *service) MarkAllAsRead(ctx context.Context) error {
	return s.notifRepo.MarkAllAsRead(ctx)
}

func (s *service) UnreadCount(ctx context.Context) (int64, error) {
	return s.notifRepo.CountUnread(ctx)
}

func (s *service) NotifyNewOrder(ctx context.Context, order *domain.OrderWithDetails) error {
	relatedID := order.Order.ID
	notif := &domain.AdminNotification{
		ID:        uuid.New(),
		Type:      domain.NotifOrder,
		Title:     "Yeni Sipariş",
		Message:   fmt.Sprintf("%s tarafından yeni sipariş: %s (%s)", order.UserName, order.PackageName, order.OrderNumber),
		RelatedID: &relatedID,
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return err
	}

	if s.emailSvc != nil {
		go func(customerName, packageName, orderNumber string, total int64, currency string) {
			ctx := context.Background()
			if err := s.emailSvc.SendOrderAlert(ctx, customerName, packageName, orderNumber, total, currency); err != nil {
				log.Printf("Failed to send order alert email: %v", err)
			}
		}(order.UserName, order.PackageName, order.OrderNumber, order.TotalAmount, order.Currency)
	}

	return nil
}

func (s *service) NotifyNewContact(ctx context.Context, contact *domain.Contact) error {
	relatedID := contact.ID
	notif := &domain.AdminNotification{
		ID:        uuid.New(),
		Type:      domain.NotifContact,
		Title:     "Yeni İletişim Mesajı",
		Message:   fmt.Sprintf("%s (%s) yeni bir mesaj gönderdi", contact.Name, contact.Email),
		RelatedID: &relatedID,
	}

	if err := s.notifRepo.Create(ctx, notif); err != nil {
		return err
	}

	if s.emailSvc != nil {
		go func(name, fromEmail, message string) {
			ctx := context.Background()
			if err := s.emailSvc.SendContactAlert(ctx, name, fromEmail, message); err != nil {
				log.Printf("Failed to send contact alert email: %v", err)
			}
		}(contact.Name, contact.Email, contact.Message)
	}

	return nil
}

func (s *service) NotifyNewUser(ctx context.Context, user *domain.User) error {
	relatedID := user.ID
	notif := &domain.AdminNotification{
		ID:        uuid.New(),
		Type:      domain.NotifUser,
		Title:     "Yeni Kullanıcı",
		Message:   fmt.Sprintf("%s (%s) kayıt oldu", user.Name, user.Email),
		RelatedID: &relatedID,
	}

	return s.notifRepo.Create(ctx, notif)
}
