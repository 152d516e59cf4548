package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"zentproje-backend/internal/domain"
)

type PackageRepository interface {
	Create(ctx context.Context, pkg *domain.ServicePackage) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ServicePackage, error)
	List(ctx context.Context, activeOnly bool) ([]domain.ServicePackage, error)
	Update(ctx context.Context, pkg *domain.ServicePackage) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type packageRepository struct {
	db *sqlx.DB
}

func NewPackageRepository(db *sqlx.DB) PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Create(ctx context.Context, pkg *domain.ServicePackage) error {
	query := `
		INSERT INTO service_packages (
			package_id, name, description, short_description, price, currency,
			category, features, included_extra_features, duration,
			delivery_time, max_revisions, popular, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING created_at, updated_at`

	return r.db.QueryRowxContext(ctx, query,
		pkg.ID, pkg.Name, pkg.Description, pkg.ShortDescription, pkg.Price,
		pkg.Currency, pkg.Category, pkg.Features, pkg.IncludedExtraFeatures,
		pkg.Duration, pkg.DeliveryTime, pkg.MaxRevisions, pkg.Popular, pkg.Active,
	).Scan(&pkg.CreatedAt, &pkg.UpdatedAt)
}

func (r *packageRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServicePackage, error) {
	var pkg domain.ServicePackage
	query := `SELECT * FROM service_packages WHERE package_id = $1`

	err := r.db.GetContext(ctx, &pkg, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &pkg, nil
}

func (r *packageRepository) List(ctx context.Context, activeOnly bool) ([]domain.ServicePackage, error) {
	var packages []domain.ServicePackage

	query := `SELECT * FROM service_packages ORDER BY price ASC`
	if activeOnly {
		query = `SELECT * FROM service_packages WHERE active = true ORDER BY price ASC`
	}

	err := r.db.SelectContext(ctx, &packages, query)
	return packages, err
}

func (r *packageRepository) Update(ctx context.Context, pkg *domain.ServicePackage) error {
	query := `
		UPDATE service_packages
		SET name = :name, description = :description,
			short_description = :short_description, price = :price,
			currency = :currency, category = :category, features = :features,
			included_extra_features = :included_extra_features,
			duration = :duration, delivery_time = :delivery_time,
			max_revisions = :max_revisions, popular = :popular,
			active = :active, updated_at = NOW()
		WHERE package_id = :package_id`

	res, err := r.db.NamedExecContext(ctx, query, pkg)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrPackageNotFound
	}
	return nil
}

func (r *packageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM service_packages WHERE package_id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrPackageNotFound
	}
	return nil
}
