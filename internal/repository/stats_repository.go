package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"zentproje-backend/internal/domain"
)

type Stats struct {
	TotalOrders        int64                        `json:"total_orders"`
	OrdersByStatus     map[domain.OrderStatus]int64 `json:"orders_by_status"`
	TotalUsers         int64                        `json:"total_users"`
	UnreadContacts     int64                        `json:"unread_contacts"`
	TotalSubscriptions int64                        `json:"total_subscriptions"`
	TotalProjects      int64                        `json:"total_projects"`
	TotalPackages      int64                        `json:"total_packages"`
}

type StatsRepository interface {
	GetStats(ctx context.Context) (*Stats, error)
}

type statsRepository struct {
	db *sqlx.DB
}

func NewStatsRepository(db *sqlx.DB) StatsRepository {
	return &statsRepository{db: db}
}

func (r *statsRepository) GetStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{OrdersByStatus: make(map[domain.OrderStatus]int64)}

	counts := []struct {
		dest  *int64
		query string
	}{
		{&stats.TotalOrders, `SELECT COUNT(*) FROM orders`},
		{&stats.TotalUsers, `SELECT COUNT(*) FROM users`},
		{&stats.UnreadContacts, `SELECT COUNT(*) FROM contacts WHERE is_read = false`},
		{&stats.TotalSubscriptions, `SELECT COUNT(*) FROM subscriptions`},
		{&stats.TotalProjects, `SELECT COUNT(*) FROM projects`},
		{&stats.TotalPackages, `SELECT COUNT(*) FROM service_packages`},
	}

	for _, c := range counts {
		if err := r.db.GetContext(ctx, c.dest, c.query); err != nil {
			return nil, err
		}
	}

	rows, err := r.db.QueryxContext(ctx, `SELECT status, COUNT(*) FROM orders GROUP BY status`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var status domain.OrderStatus
		var count int64
		if err := rows.Scan(&status, &count); err != nil {
			return nil, err
		}
		stats.OrdersByStatus[status] = count
	}

	return stats, rows.Err()
}
