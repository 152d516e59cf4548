package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"zentproje-backend/internal/config"
	"zentproje-backend/internal/handler"
	"zentproje-backend/internal/middleware"
	"zentproje-backend/internal/repository"
	"zentproje-backend/internal/service"
	authservice "zentproje-backend/internal/service/auth"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := config.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	rdb, err := config.NewRedisClient(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer rdb.Close()

	minioClient, err := config.NewMinIOClient(cfg)
	if err != nil {
		log.Printf("Warning: Failed to connect to MinIO: %v (image upload will not work)", err)
	}

	repos := repository.NewRepositories(db)
	services := service.NewServices(repos, rdb, minioClient, cfg)
	handlers := handler.NewHandlers(services, cfg)

	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler,
		BodyLimit:    10 << 20,
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Next: func(c *fiber.Ctx) bool {
			return c.Path() == "/health"
		},
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		AllowCredentials: true,
	}))

	setupRoutes(app, handlers, services.Auth, rdb)

	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func setupRoutes(app *fiber.App, h *handler.Handlers, authService authservice.Service, rdb *redis.Client) {
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api")
	api.Use(middleware.APIRateLimit(rdb))

	// Public marketing site.
	api.Get("/catalog", h.Catalog.Get)
	api.Get("/packages", h.Package.ListPublic)
	api.Get("/packages/:id", h.Package.Get)
	api.Get("/projects", h.Project.List)
	api.Get("/projects/:id", h.Project.Get)
	api.Get("/stories", h.Story.ListPublic)
	api.Get("/blog", h.Blog.ListPublic)
	api.Get("/blog/:slug", h.Blog.GetBySlug)
	api.Post("/contact", h.Contact.Create)
	api.Post("/subscribe", h.Subscription.Subscribe)
	api.Post("/unsubscribe", h.Subscription.Unsubscribe)
	api.Post("/upload", middleware.AdminRequired(authService), h.Media.Upload)

	// Customer sessions.
	auth := api.Group("/auth")
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", middleware.LoginRateLimit(rdb), h.Auth.Login)
	auth.Post("/logout", h.Auth.Logout)
	auth.Get("/me", middleware.UserRequired(authService), h.Auth.Me)

	// Customer orders.
	orders := api.Group("/orders", middleware.UserRequired(authService))
	orders.Post("/", h.Order.Create)
	orders.Get("/", h.Order.ListMine)

	// Back office.
	admin := api.Group("/admin")
	admin.Post("/login", middleware.LoginRateLimit(rdb), h.Auth.AdminLogin)
	admin.Post("/logout", h.Auth.AdminLogout)

	protected := admin.Group("", middleware.AdminRequired(authService))
	protected.Get("/me", h.Auth.AdminMe)
	protected.Get("/stats", h.Dashboard.Stats)

	protected.Get("/packages", h.Package.ListAll)
	protected.Post("/packages", h.Package.Create)
	protected.Put("/packages/:id", h.Package.Update)
	protected.Delete("/packages/:id", h.Package.Delete)

	protected.Post("/projects", h.Project.Create)
	protected.Put("/projects/:id", h.Project.Update)
	protected.Delete("/projects/:id", h.Project.Delete)

	protected.Get("/stories", h.Story.ListAll)
	protected.Post("/stories", h.Story.Create)
	protected.Put("/stories/:id", h.Story.Update)
	protected.Delete("/stories/:id", h.Story.Delete)

	protected.Get("/blog", h.Blog.ListAll)
	protected.Post("/blog", h.Blog.Create)
	protected.Put("/blog/:id", h.Blog.Update)
	protected.Delete("/blog/:id", h.Blog.Delete)

	protected.Get("/orders", h.Order.List)
	protected.Get("/orders/:id", h.Order.Get)
	protected.Put("/orders/:id", h.Order.Update)
	protected.Delete("/orders/:id", h.Order.Delete)

	protected.Get("/contacts", h.Contact.List)
	protected.Put("/contacts/:id/read", h.Contact.MarkAsRead)
	protected.Delete("/contacts/:id", h.Contact.Delete)

	protected.Get("/subscriptions", h.Subscription.List)
	protected.Delete("/subscriptions/:id", h.Subscription.Delete)

	protected.Get("/users", h.User.List)
	protected.Delete("/users/:id", h.User.Delete)

	protected.Get("/notifications", h.Notification.Feed)
	protected.Get("/notifications/unread-count", h.Notification.UnreadCount)
	protected.Put("/notifications/:id/read", h.Notification.MarkAsRead)
	protected.Post("/notifications/mark-all-read", h.Notification.MarkAllAsRead)

	protected.Post("/database/backup", h.Backup.Create)
	protected.Get("/database/backups", h.Backup.List)
	protected.Get("/database/backups/:filename", h.Backup.Download)
	protected.Delete("/database/backups/:filename", h.Backup.Delete)
	protected.Post("/database/restore", h.Backup.Restore)

	protected.Post("/upload", h.Media.Upload)
}
