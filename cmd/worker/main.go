package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/partnerlink/backend/internal/config"
	"github.com/partnerlink/backend/internal/db"
	"github.com/partnerlink/backend/internal/events"
	"github.com/partnerlink/backend/internal/repositories"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	log, _ := zap.NewProduction()
	defer log.Sync()

	cfg := config.Load()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pool, err := db.NewPostgresPool(ctx, cfg.PostgresDSN, log)
	if err != nil {
		log.Fatal("failed to connect to postgres", zap.Error(err))
	}
	defer pool.Close()

	rdb, err := db.NewRedisClient(ctx, cfg.RedisURL, log)
	if err != nil {
		log.Fatal("failed to connect to redis", zap.Error(err))
	}
	defer rdb.Close()

	campaignRepo := repositories.NewCampaignRepo(pool)
	eventRepo := repositories.NewEventRepo(pool)
	publisher := events.NewRedisPublisher(rdb, log)

	log.Info("worker started",
		zap.Int("reminder_window_hours", cfg.ReminderWindowHours),
		zap.Duration("interval", cfg.ReminderInterval),
	)

	reminderTicker := time.NewTicker(cfg.ReminderInterval)
	defer reminderTicker.Stop()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// First pass right away, then on the ticker.
	runReminders(ctx, campaignRepo, eventRepo, publisher, rdb, cfg, log)

	for {
		select {
		case <-reminderTicker.C:
			runReminders(ctx, campaignRepo, eventRepo, publisher, rdb, cfg, log)
		case <-sigCh:
			log.Info("shutting down worker")
			cancel()
			return
		case <-ctx.Done():
			return
		}
	}
}

// runReminders publishes a due-soon event for every campaign and event whose
// date falls inside the reminder window. Each record gets at most one
// reminder per day, deduplicated through redis.
func runReminders(
	ctx context.Context,
	campaignRepo *repositories.CampaignRepo,
	eventRepo *repositories.EventRepo,
	publisher events.Publisher,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {
	now := time.Now()
	from := now.Format("2006-01-02")
	to := now.Add(time.Duration(cfg.ReminderWindowHours) * time.Hour).Format("2006-01-02")

	campaigns, err := campaignRepo.ListDueWithin(ctx, from, to)
	if err != nil {
		log.Error("failed to list due campaigns", zap.Error(err))
		return
	}

	for _, c := range campaigns {
		if !remindOnce(ctx, rdb, "campaign", c.ID.String(), from) {
			continue
		}
		publishReminder(ctx, publisher, log, events.Event{
			Type:   events.EventTaskDueSoon,
			UserID: c.CreatorID.String(),
			Payload: map[string]any{
				"task_type": "campaign",
				"task_id":   c.ID.String(),
				"title":     c.Title,
				"due_date":  c.DueDate,
				"platform":  c.Platform,
			},
		})
	}

	dueEvents, err := eventRepo.ListDueWithin(ctx, from, to)
	if err != nil {
		log.Error("failed to list due events", zap.Error(err))
		return
	}

	for _, e := range dueEvents {
		if !remindOnce(ctx, rdb, "event", e.ID.String(), from) {
			continue
		}
		publishReminder(ctx, publisher, log, events.Event{
			Type:   events.EventTaskDueSoon,
			UserID: e.CreatorID.String(),
			Payload: map[string]any{
				"task_type": "event",
				"task_id":   e.ID.String(),
				"title":     e.Title,
				"due_date":  e.EventDate,
			},
		})
	}
}

// remindOnce claims the daily dedupe key; false means today's reminder for
// this record already went out.
func remindOnce(ctx context.Context, rdb *redis.Client, kind, id, day string) bool {
	key := fmt.Sprintf("reminders:%s:%s:%s", kind, id, day)
	ok, err := rdb.SetNX(ctx, key, "1", 48*time.Hour).Result()
	if err != nil {
		return false
	}
	return ok
}

func publishReminder(ctx context.Context, publisher events.Publisher, log *zap.Logger, event events.Event) {
	if err := publisher.Publish(ctx, events.StreamReminders, event); err != nil {
		log.Error("failed to publish reminder", zap.Error(err))
		return
	}
	log.Info("reminder published",
		zap.String("user_id", event.UserID),
		zap.Any("task_id", event.Payload["task_id"]),
	)
}
