package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"zentproje-backend/internal/domain"
)

type NotificationRepository interface {
	Create(ctx context.Context, notif *domain.AdminNotification) error
	List(ctx context.Context, params domain.PaginationParams) ([]domain.AdminNotification, int64, error)
	ListUnreadSince(ctx context.Context, since time.Time) ([]domain.AdminNotification, error)
	MarkAsRead(ctx context.Context, id uuid.UUID) error
	MarkAllAsRead(ctx context.Context) error
	CountUnread(ctx context.Context) (int64, error)
}

type notificationRepository struct {
	db *sqlx.DB
}

func NewNotificationRepository(db *sqlx.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) Create(ctx context.Context, notif *domain.AdminNotification) error {
	query := `
		INSERT INTO admin_notifications (notification_id, type, title, message, related_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at`

	return r.db.QueryRowxContext(ctx, query,
		notif.ID, notif.Type, notif.Title, notif.Message, notif.RelatedID,
	).Scan(&notif.CreatedAt)
}

func (r *notificationRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.AdminNotification, int64, error) {
	params.Validate()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM admin_notifications`); err != nil {
		return nil, 0, err
	}

	var notifications []domain.AdminNotification
	query := `
		SELECT * FROM admin_notifications
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2`

	err := r.db.SelectContext(ctx, &notifications, query, params.PageSize, params.Offset())
	return notifications, total, err
}

func (r *notificationRepository) ListUnreadSince(ctx context.Context, since time.Time) ([]domain.AdminNotification, error) {
	var notifications []domain.AdminNotification
	query := `
		SELECT * FROM admin_notifications
		WHERE is_read = false AND created_at > $1
		ORDER BY created_at DESC`

	err := r.db.SelectContext(ctx, &notifications, query, since)
	return notifications, err
}

func (r *notificationRepository) MarkAsRead(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE admin_notifications SET is_read = true, read_at = NOW() WHERE notification_id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE admin_notifications SET is_read = true, read_at = NOW() WHERE is_read = false`)
	return err
}

func (r *notificationRepository) CountUnread(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM admin_notifications WHERE is_read = false`)
	return count, err
}
