package service

import (
	"github.com/minio/minio-go/v7"
	"github.com/redis/go-redis/v9"

	"zentproje-backend/internal/config"
	"zentproje-backend/internal/repository"
	"zentproje-backend/internal/service/auth"
	"zentproje-backend/internal/service/backup"
	"zentproje-backend/internal/service/blog"
	"zentproje-backend/internal/service/contact"
	"zentproje-backend/internal/service/dashboard"
	"zentproje-backend/internal/service/email"
	"zentproje-backend/internal/service/media"
	"zentproje-backend/internal/service/notification"
	"zentproje-backend/internal/service/order"
	"zentproje-backend/internal/service/packages"
	"zentproje-backend/internal/service/project"
	"zentproje-backend/internal/service/story"
	"zentproje-backend/internal/service/subscription"
	"zentproje-backend/internal/service/user"
)

type Services struct {
	Auth         auth.Service
	User         user.Service
	Package      packages.Service
	Project      project.Service
	Story        story.Service
	Blog         blog.Service
	Order        order.Service
	Contact      contact.Service
	Subscription subscription.Service
	Notification notification.Service
	Email        email.Service
	Media        media.Service
	Dashboard    dashboard.Service
	Backup       backup.Service
}

func NewServices(repos *repository.Repositories, redis *redis.Client, minioClient *minio.Client, cfg *config.Config) *Services {
	emailService := email.NewService(cfg)
	notificationService := notification.NewService(repos.Notification, redis, emailService)

	return &Services{
		Auth:         auth.NewService(repos.User, notificationService, cfg),
		User:         user.NewService(repos.User),
		Package:      packages.NewService(repos.Package, redis),
		Project:      project.NewService(repos.Project, redis),
		Story:        story.NewService(repos.Story),
		Blog:         blog.NewService(repos.BlogPost),
		Order:        order.NewService(repos.Order, repos.Package, notificationService),
		Contact:      contact.NewService(repos.Contact, notificationService),
		Subscription: subscription.NewService(repos.Subscription),
		Notification: notificationService,
		Email:        emailService,
		Media:        media.NewService(minioClient, cfg),
		Dashboard:    dashboard.NewService(repos.Stats, redis),
		Backup:       backup.NewService(repos.Backup, cfg),
	}
}
