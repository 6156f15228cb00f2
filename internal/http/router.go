package http

import (
	"time"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/partnerlink/backend/internal/config"
	"github.com/partnerlink/backend/internal/http/handlers"
	"github.com/partnerlink/backend/internal/middleware"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func SetupRouter(
	app *fiber.App,
	cfg *config.Config,
	log *zap.Logger,
	rdb *redis.Client,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	campaignHandler *handlers.CampaignHandler,
	eventHandler *handlers.EventHandler,
	partnershipHandler *handlers.PartnershipHandler,
	taskHandler *handlers.TaskHandler,
	messageHandler *handlers.MessageHandler,
	uploadHandler *handlers.UploadHandler,
	previewHandler *handlers.PreviewHandler,
	wsHub *handlers.WSHub,
) {
	// Global middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization, X-Request-ID",
	}))
	app.Use(middleware.RequestIDMiddleware())
	app.Use(middleware.LoggerMiddleware(log))

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	api := app.Group("/api/v1")

	// Auth (public)
	api.Post("/auth/signup", authHandler.Signup)
	api.Post("/auth/login", authHandler.Login)

	// Rate-limited public endpoints
	api.Use(middleware.RateLimitMiddleware(rdb, cfg.RateLimitPerMinute, time.Minute))

	// Meta (public, no auth required)
	metaHandler := handlers.NewMetaHandler()
	api.Get("/meta/industries", metaHandler.GetIndustries)
	api.Get("/meta/platforms", metaHandler.GetPlatforms)

	// Protected endpoints
	protected := api.Group("", middleware.AuthMiddleware(cfg, log))

	// User
	protected.Get("/me", authHandler.GetMe)
	protected.Put("/me/profile", userHandler.UpdateProfile)
	protected.Get("/partners", userHandler.DiscoverPartners)
	protected.Get("/users/:id", userHandler.GetUser)

	// Campaigns
	protected.Post("/campaigns", campaignHandler.CreateCampaign)
	protected.Get("/campaigns", campaignHandler.ListCampaigns)
	protected.Get("/campaigns/:id", campaignHandler.GetCampaign)
	protected.Put("/campaigns/:id", campaignHandler.UpdateCampaign)
	protected.Delete("/campaigns/:id", campaignHandler.DeleteCampaign)
	protected.Post("/campaigns/:id/requests", partnershipHandler.RequestCampaign)

	// Events
	protected.Post("/events", eventHandler.CreateEvent)
	protected.Get("/events", eventHandler.ListEvents)
	protected.Get("/events/:id", eventHandler.GetEvent)
	protected.Put("/events/:id", eventHandler.UpdateEvent)
	protected.Delete("/events/:id", eventHandler.DeleteEvent)
	protected.Post("/events/:id/requests", partnershipHandler.RequestEvent)

	// Partnership requests
	protected.Get("/requests/sent", partnershipHandler.ListSentRequests)
	protected.Get("/requests/received", partnershipHandler.ListReceivedRequests)
	protected.Post("/requests/:id/approve", partnershipHandler.ApproveRequest)
	protected.Post("/requests/:id/deny", partnershipHandler.DenyRequest)
	protected.Get("/partnerships", partnershipHandler.ListPartnerships)

	// Tasks
	protected.Get("/tasks", taskHandler.ListTasks)
	protected.Get("/tasks/recent", taskHandler.RecentTasks)
	protected.Get("/tasks/calendar", taskHandler.CalendarTasks)

	// Messages
	protected.Post("/messages", messageHandler.SendMessage)
	protected.Get("/conversations", messageHandler.ListConversations)
	protected.Get("/conversations/:id/messages", messageHandler.GetThread)

	// Uploads + link preview
	protected.Post("/uploads/presign", uploadHandler.PresignUpload)
	protected.Get("/link-preview", previewHandler.GetPreview)

	// WebSocket
	app.Use("/ws", handlers.WSUpgradeMiddleware())
	app.Get("/ws", websocket.New(wsHub.HandleWS))
}
