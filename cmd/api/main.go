package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/partnerlink/backend/internal/config"
	"github.com/partnerlink/backend/internal/db"
	"github.com/partnerlink/backend/internal/events"
	apphttp "github.com/partnerlink/backend/internal/http"
	"github.com/partnerlink/backend/internal/http/handlers"
	"github.com/partnerlink/backend/internal/linkpreview"
	"github.com/partnerlink/backend/internal/repositories"
	"github.com/partnerlink/backend/internal/services"
	"github.com/partnerlink/backend/internal/storage"
	"github.com/partnerlink/backend/internal/tasks"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	cfg.Validate(log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Database
	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	// Run migrations
	if err := db.RunMigrations(ctx, pool, "migrations", log); err != nil {
		log.Fatal("failed to run migrations", zap.Error(err))
	}

	// Redis
	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	// Repositories
	userRepo := repositories.NewUserRepo(pool)
	campaignRepo := repositories.NewCampaignRepo(pool)
	eventRepo := repositories.NewEventRepo(pool)
	partnershipRepo := repositories.NewPartnershipRepo(pool)
	messageRepo := repositories.NewMessageRepo(pool)
	auditRepo := repositories.NewAuditRepo(pool)

	// Events
	publisher := events.NewRedisPublisher(rdb, log)
	subscriber := events.NewRedisSubscriber(rdb, log)

	// Services
	campaignService := services.NewCampaignService(campaignRepo, auditRepo, log)
	eventService := services.NewEventService(eventRepo, auditRepo, log)
	partnershipService := services.NewPartnershipService(partnershipRepo, campaignRepo, eventRepo, userRepo, auditRepo, publisher, log)
	messageService := services.NewMessageService(messageRepo, userRepo, publisher, log)
	aggregator := tasks.NewAggregator(repositories.NewTaskStore(campaignRepo, eventRepo, partnershipRepo, userRepo), log)

	// Object storage + link preview
	uploader, err := storage.NewUploader(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to init object storage", zap.Error(err))
	}
	previewFetcher := linkpreview.NewFetcher(cfg.PreviewTimeoutMS, cfg.PreviewMaxRetries, log)

	// Handlers
	authHandler := handlers.NewAuthHandler(userRepo, cfg, log)
	userHandler := handlers.NewUserHandler(userRepo, log)
	campaignHandler := handlers.NewCampaignHandler(campaignService, log)
	eventHandler := handlers.NewEventHandler(eventService, log)
	partnershipHandler := handlers.NewPartnershipHandler(partnershipService, log)
	taskHandler := handlers.NewTaskHandler(aggregator, log)
	messageHandler := handlers.NewMessageHandler(messageService, log)
	uploadHandler := handlers.NewUploadHandler(uploader, log)
	previewHandler := handlers.NewPreviewHandler(previewFetcher, log)
	wsHub := handlers.NewWSHub(cfg, subscriber, log)

	// Start WS hub
	wsHub.Start(ctx)

	// Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		},
	})

	apphttp.SetupRouter(app, cfg, log, rdb,
		authHandler, userHandler, campaignHandler, eventHandler,
		partnershipHandler, taskHandler, messageHandler,
		uploadHandler, previewHandler, wsHub)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")
		cancel()
		_ = app.Shutdown()
	}()

	addr := fmt.Sprintf(":%s", cfg.APIPort)
	log.Info("starting API server", zap.String("addr", addr))
	if err := app.Listen(addr); err != nil {
		log.Fatal("server error", zap.Error(err))
	}
}
