package repository

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"

	"zentproje-backend/internal/domain"
)

// BackupRepository dumps and restores the full database. Restore is
// all-or-nothing: every delete and insert runs inside one transaction, in
// foreign-key-safe order, so an interrupted restore rolls back to the
// pre-restore state.
type BackupRepository interface {
	DumpAll(ctx context.Context) (*domain.Snapshot, error)
	RestoreAll(ctx context.Context, snapshot *domain.Snapshot) error
}

type backupRepository struct {
	db *sqlx.DB
}

func NewBackupRepository(db *sqlx.DB) BackupRepository {
	return &backupRepository{db: db}
}

func (r *backupRepository) DumpAll(ctx context.Context) (*domain.Snapshot, error) {
	snapshot := &domain.Snapshot{Timestamp: time.Now().UTC()}

	dumps := []struct {
		dest  interface{}
		query string
	}{
		{&snapshot.Users, `SELECT * FROM users ORDER BY created_at`},
		{&snapshot.ServicePackages, `SELECT * FROM service_packages ORDER BY created_at`},
		{&snapshot.Projects, `SELECT * FROM projects ORDER BY created_at`},
		{&snapshot.Stories, `SELECT * FROM stories ORDER BY created_at`},
		{&snapshot.Orders, `SELECT * FROM orders ORDER BY created_at`},
		{&snapshot.Subscriptions, `SELECT * FROM subscriptions ORDER BY created_at`},
		{&snapshot.Contacts, `SELECT * FROM contacts ORDER BY created_at`},
		{&snapshot.BlogPosts, `SELECT * FROM blog_posts ORDER BY created_at`},
		{&snapshot.AdminNotifications, `SELECT * FROM admin_notifications ORDER BY created_at`},
	}

	for _, d := range dumps {
		if err := r.db.SelectContext(ctx, d.dest, d.query); err != nil {
			return nil, err
		}
	}

	return snapshot, nil
}

func (r *backupRepository) RestoreAll(ctx context.Context, snapshot *domain.Snapshot) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	// Children before parents.
	deletes := []string{
		`DELETE FROM admin_notifications`,
		`DELETE FROM blog_posts`,
		`DELETE FROM contacts`,
		`DELETE FROM subscriptions`,
		`DELETE FROM orders`,
		`DELETE FROM stories`,
		`DELETE FROM projects`,
		`DELETE FROM service_packages`,
		`DELETE FROM users`,
	}
	for _, q := range deletes {
		if _, err := tx.ExecContext(ctx, q); err != nil {
			return err
		}
	}

	if len(snapshot.Users) > 0 {
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO users (user_id, email, password_hash, name, role, created_at, updated_at)
			VALUES (:user_id, :email, :password_hash, :name, :role, :created_at, :updated_at)`,
			snapshot.Users)
		if err != nil {
			return err
		}
	}

	if len(snapshot.ServicePackages) > 0 {
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO service_packages (
				package_id, name, description, short_description, price,
				currency, category, features, included_extra_features,
				duration, delivery_time, max_revisions, popular, active,
				created_at, updated_at)
			VALUES (
				:package_id, :name, :description, :short_description, :price,
				:currency, :category, :features, :included_extra_features,
				:duration, :delivery_time, :max_revisions, :popular, :active,
				:created_at, :updated_at)`,
			snapshot.ServicePackages)
		if err != nil {
			return err
		}
	}

	if len(snapshot.Projects) > 0 {
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO projects (
				project_id, title, description, image, status, priority,
				client, start_date, end_date, budget, currency, tags,
				progress, team_members, featured, created_at, updated_at)
			VALUES (
				:project_id, :title, :description, :image, :status, :priority,
				:client, :start_date, :end_date, :budget, :currency, :tags,
				:progress, :team_members, :featured, :created_at, :updated_at)`,
			snapshot.Projects)
		if err != nil {
			return err
		}
	}

	if len(snapshot.Stories) > 0 {
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO stories (story_id, title, image, thumbnail, description, sort_order, expires_at, created_at, updated_at)
			VALUES (:story_id, :title, :image, :thumbnail, :description, :sort_order, :expires_at, :created_at, :updated_at)`,
			snapshot.Stories)
		if err != nil {
			return err
		}
	}

	if len(snapshot.Orders) > 0 {
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO orders (
				order_id, order_number, user_id, package_id, site_name,
				domain, description, theme_color, extra_features,
				ssl_certificate, analytics, fast_loading, mobile_responsive,
				social_media, guest_purchase, design_template, total_amount,
				currency, status, payment_status, created_at, updated_at)
			VALUES (
				:order_id, :order_number, :user_id, :package_id, :site_name,
				:domain, :description, :theme_color, :extra_features,
				:ssl_certificate, :analytics, :fast_loading, :mobile_responsive,
				:social_media, :guest_purchase, :design_template, :total_amount,
				:currency, :status, :payment_status, :created_at, :updated_at)`,
			snapshot.Orders)
		if err != nil {
			return err
		}
	}

	if len(snapshot.Subscriptions) > 0 {
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO subscriptions (subscription_id, email, active, created_at)
			VALUES (:subscription_id, :email, :active, :created_at)`,
			snapshot.Subscriptions)
		if err != nil {
			return err
		}
	}

	if len(snapshot.Contacts) > 0 {
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO contacts (contact_id, name, email, phone, subject, message, is_read, created_at)
			VALUES (:contact_id, :name, :email, :phone, :subject, :message, :is_read, :created_at)`,
			snapshot.Contacts)
		if err != nil {
			return err
		}
	}

	if len(snapshot.BlogPosts) > 0 {
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO blog_posts (post_id, title, slug, excerpt, content, image, published, published_at, created_at, updated_at)
			VALUES (:post_id, :title, :slug, :excerpt, :content, :image, :published, :published_at, :created_at, :updated_at)`,
			snapshot.BlogPosts)
		if err != nil {
			return err
		}
	}

	if len(snapshot.AdminNotifications) > 0 {
		_, err = tx.NamedExecContext(ctx, `
			INSERT INTO admin_notifications (notification_id, type, title, message, related_id, is_read, read_at, created_at)
			VALUES (:notification_id, :type, :title, :message, :related_id, :is_read, :read_at, :created_at)`,
			snapshot.AdminNotifications)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}
