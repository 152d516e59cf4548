package handler

import (
	"github.com/gofiber/fiber/v2"

	"zentproje-backend/internal/config"
	"zentproje-backend/internal/domain"
	"zentproje-backend/internal/service"
)

type Handlers struct {
	Auth         *AuthHandler
	Catalog      *CatalogHandler
	User         *UserHandler
	Package      *PackageHandler
	Project      *ProjectHandler
	Story        *StoryHandler
	Blog         *BlogHandler
	Order        *OrderHandler
	Contact      *ContactHandler
	Subscription *SubscriptionHandler
	Notification *NotificationHandler
	Media        *MediaHandler
	Dashboard    *DashboardHandler
	Backup       *BackupHandler
}

func NewHandlers(services *service.Services, cfg *config.Config) *Handlers {
	return &Handlers{
		Auth:         NewAuthHandler(services.Auth, cfg),
		Catalog:      NewCatalogHandler(),
		User:         NewUserHandler(services.User),
		Package:      NewPackageHandler(services.Package),
		Project:      NewProjectHandler(services.Project),
		Story:        NewStoryHandler(services.Story),
		Blog:         NewBlogHandler(services.Blog),
		Order:        NewOrderHandler(services.Order),
		Contact:      NewContactHandler(services.Contact),
		Subscription: NewSubscriptionHandler(services.Subscription),
		Notification: NewNotificationHandler(services.Notification),
		Media:        NewMediaHandler(services.Media),
		Dashboard:    NewDashboardHandler(services.Dashboard),
		Backup:       NewBackupHandler(services.Backup),
	}
}

func getPaginationParams(c *fiber.Ctx) domain.PaginationParams {
	params := domain.DefaultPagination()

	if page := c.QueryInt("page", 1); page > 0 {
		params.Page = page
	}
	if pageSize := c.QueryInt("page_size", 20); pageSize > 0 {
		params.PageSize = pageSize
	}

	params.Validate()
	return params
}
