package repository

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zentproje-backend/internal/domain"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "sqlmock"), mock
}

func testOrder() *domain.Order {
	return &domain.Order{
		ID:          uuid.New(),
		OrderNumber: "ORD-1-AAAAAAAAA",
		UserID:      uuid.New(),
		PackageID:   uuid.New(),
		SiteName:    "zentproje",
		Domain:      "zentproje.com",
		Description: "Kurumsal site",
		ThemeColor:  "#3B82F6",
		TotalAmount: 5000,
		Currency:    "TRY",
		Status:      domain.OrderPending,
	}
}

func TestOrderCreateMapsNumberCollision(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectQuery("INSERT INTO orders").WillReturnError(&pq.Error{
		Code:       "23505",
		Constraint: "orders_order_number_key",
	})

	err := repo.Create(context.Background(), testOrder())
	assert.ErrorIs(t, err, ErrOrderNumberTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrderCreateOtherUniqueViolationPassesThrough(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	pqErr := &pq.Error{Code: "23505", Constraint: "orders_pkey"}
	mock.ExpectQuery("INSERT INTO orders").WillReturnError(pqErr)

	err := repo.Create(context.Background(), testOrder())
	assert.NotErrorIs(t, err, ErrOrderNumberTaken)
	assert.Error(t, err)
}

func TestOrderUpdateNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectQuery("UPDATE orders").WillReturnRows(sqlmock.NewRows([]string{"updated_at"}))

	order := testOrder()
	err := repo.Update(context.Background(), order)
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestOrderDeleteNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewOrderRepository(db)

	mock.ExpectExec("DELETE FROM orders").WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Delete(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrOrderNotFound)
}

func TestUserCreateMapsDuplicateEmail(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserRepository(db)

	mock.ExpectQuery("INSERT INTO users").WillReturnError(&pq.Error{
		Code:       "23505",
		Constraint: "users_email_key",
	})

	err := repo.Create(context.Background(), &domain.User{
		ID:    uuid.New(),
		Email: "taken@zentproje.com",
		Role:  domain.RoleUser,
	})
	assert.ErrorIs(t, err, domain.ErrEmailExists)
}
