package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"zentproje-backend/internal/domain"
)

type SubscriptionRepository interface {
	Create(ctx context.Context, sub *domain.Subscription) error
	List(ctx context.Context, params domain.PaginationParams) ([]domain.Subscription, int64, error)
	DeleteByEmail(ctx context.Context, email string) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type subscriptionRepository struct {
	db *sqlx.DB
}

func NewSubscriptionRepository(db *sqlx.DB) SubscriptionRepository {
	return &subscriptionRepository{db: db}
}

func (r *subscriptionRepository) Create(ctx context.Context, sub *domain.Subscription) error {
	query := `
		INSERT INTO subscriptions (subscription_id, email, active)
		VALUES ($1, $2, $3)
		RETURNING created_at`

	err := r.db.QueryRowxContext(ctx, query, sub.ID, sub.Email, sub.Active).Scan(&sub.CreatedAt)
	if isUniqueViolation(err, "") {
		return domain.ErrAlreadySubscribed
	}
	return err
}

func (r *subscriptionRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.Subscription, int64, error) {
	params.Validate()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM subscriptions`); err != nil {
		return nil, 0, err
	}

	var subs []domain.Subscription
	query := `SELECT * FROM subscriptions ORDER BY created_at DESC LIMIT $1 OFFSET $2`
	err := r.db.SelectContext(ctx, &subs, query, params.PageSize, params.Offset())
	return subs, total, err
}

func (r *subscriptionRepository) DeleteByEmail(ctx context.Context, email string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subscriptions WHERE email = $1`, email)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrSubscriptionNotFound
	}
	return nil
}

func (r *subscriptionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM subscriptions WHERE subscription_id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrSubscriptionNotFound
	}
	return nil
}
