package domain

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotifOrder   NotificationType = "order"
	NotifContact NotificationType = "contact"
	NotifUser    NotificationType = "user"
)

// AdminNotification is an internal alert surfaced to admins about a system
// event. Created best-effort as a side effect of the event it describes;
// a creation failure never fails the originating operation.
type AdminNotification struct {
	ID        uuid.UUID        `json:"id" db:"notification_id"`
	Type      NotificationType `json:"type" db:"type"`
	Title     string           `json:"title" db:"title"`
	Message   string           `json:"message" db:"message"`
	RelatedID *uuid.UUID       `json:"related_id,omitempty" db:"related_id"`
	IsRead    bool             `json:"is_read" db:"is_read"`
	ReadAt    *time.Time       `json:"read_at,omitempty" db:"read_at"`
	CreatedAt time.Time        `json:"created_at" db:"created_at"`
}

// NotificationFeed is one poll response: the paginated feed, the rows that
// are new since the caller's watermark, and the unread total.
type NotificationFeed struct {
	Notifications    PaginatedResponse[AdminNotification] `json:"notifications"`
	NewNotifications []AdminNotification                  `json:"new_notifications"`
	UnreadCount      int64                                `json:"unread_count"`
}
