package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"zentproje-backend/internal/domain"
)

// ErrOrderNumberTaken signals a collision on the UNIQUE order_number column
// so the caller can regenerate and retry.
var ErrOrderNumberTaken = errors.New("order number already taken")

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.OrderWithDetails, error)
	List(ctx context.Context, params domain.PaginationParams) ([]domain.OrderWithDetails, int64, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.OrderWithDetails, error)
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type orderRepository struct {
	db *sqlx.DB
}

func NewOrderRepository(db *sqlx.DB) OrderRepository {
	return &orderRepository{db: db}
}

const orderDetailsColumns = `
	o.*,
	u.name AS user_name, u.email AS user_email,
	p.name AS package_name, p.price AS package_price`

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	query := `
		INSERT INTO orders (
			order_id, order_number, user_id, package_id, site_name, domain,
			description, theme_color, extra_features, ssl_certificate,
			analytics, fast_loading, mobile_responsive, social_media,
			guest_purchase, design_template, total_amount, currency,
			status, payment_status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20)
		RETURNING created_at, updated_at`

	err := r.db.QueryRowxContext(ctx, query,
		order.ID, order.OrderNumber, order.UserID, order.PackageID,
		order.SiteName, order.Domain, order.Description, order.ThemeColor,
		order.ExtraFeatures, order.SSLCertificate, order.Analytics,
		order.FastLoading, order.MobileResponsive, order.SocialMedia,
		order.GuestPurchase, order.DesignTemplate, order.TotalAmount,
		order.Currency, order.Status, order.PaymentStatus,
	).Scan(&order.CreatedAt, &order.UpdatedAt)
	if isUniqueViolation(err, "orders_order_number_key") {
		return ErrOrderNumberTaken
	}
	return err
}

func (r *orderRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.OrderWithDetails, error) {
	var order domain.OrderWithDetails
	query := `
		SELECT ` + orderDetailsColumns + `
		FROM orders o
		JOIN users u ON u.user_id = o.user_id
		JOIN service_packages p ON p.package_id = o.package_id
		WHERE o.order_id = $1`

	err := r.db.GetContext(ctx, &order, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, params domain.PaginationParams) ([]domain.OrderWithDetails, int64, error) {
	params.Validate()

	var total int64
	if err := r.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM orders`); err != nil {
		return nil, 0, err
	}

	var orders []domain.OrderWithDetails
	query := `
		SELECT ` + orderDetailsColumns + `
		FROM orders o
		JOIN users u ON u.user_id = o.user_id
		JOIN service_packages p ON p.package_id = o.package_id
		ORDER BY o.created_at DESC
		LIMIT $1 OFFSET $2`

	err := r.db.SelectContext(ctx, &orders, query, params.PageSize, params.Offset())
	return orders, total, err
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.OrderWithDetails, error) {
	var orders []domain.OrderWithDetails
	query := `
		SELECT ` + orderDetailsColumns + `
		FROM orders o
		JOIN users u ON u.user_id = o.user_id
		JOIN service_packages p ON p.package_id = o.package_id
		WHERE o.user_id = $1
		ORDER BY o.created_at DESC`

	err := r.db.SelectContext(ctx, &orders, query, userID)
	return orders, err
}

func (r *orderRepository) Update(ctx context.Context, order *domain.Order) error {
	query := `
		UPDATE orders
		SET status = $2, payment_status = $3, updated_at = NOW()
		WHERE order_id = $1
		RETURNING updated_at`

	err := r.db.QueryRowxContext(ctx, query, order.ID, order.Status, order.PaymentStatus).Scan(&order.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrOrderNotFound
	}
	return err
}

func (r *orderRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM orders WHERE order_id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrOrderNotFound
	}
	return nil
}
