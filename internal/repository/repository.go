package repository

import (
	"errors"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

type Repositories struct {
	User         UserRepository
	Package      PackageRepository
	Project      ProjectRepository
	Story        StoryRepository
	Order        OrderRepository
	Contact      ContactRepository
	Subscription SubscriptionRepository
	BlogPost     BlogPostRepository
	Notification NotificationRepository
	Backup       BackupRepository
	Stats        StatsRepository
}

func NewRepositories(db *sqlx.DB) *Repositories {
	return &Repositories{
		User:         NewUserRepository(db),
		Package:      NewPackageRepository(db),
		Project:      NewProjectRepository(db),
		Story:        NewStoryRepository(db),
		Order:        NewOrderRepository(db),
		Contact:      NewContactRepository(db),
		Subscription: NewSubscriptionRepository(db),
		BlogPost:     NewBlogPostRepository(db),
		Notification: NewNotificationRepository(db),
		Backup:       NewBackupRepository(db),
		Stats:        NewStatsRepository(db),
	}
}

// isUniqueViolation reports whether err is a Postgres unique-constraint
// failure, optionally on a specific constraint name.
func isUniqueViolation(err error, constraint string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) {
		return false
	}
	if pqErr.Code != "23505" {
		return false
	}
	return constraint == "" || pqErr.Constraint == constraint
}
