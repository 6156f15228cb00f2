package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/partnerlink/backend/internal/models"
	"github.com/partnerlink/backend/internal/repositories"
	"github.com/partnerlink/backend/internal/tasks"
	"go.uber.org/zap"
)

type EventService struct {
	eventRepo *repositories.EventRepo
	auditRepo *repositories.AuditRepo
	log       *zap.Logger
}

func NewEventService(
	eventRepo *repositories.EventRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *EventService {
	return &EventService{
		eventRepo: eventRepo,
		auditRepo: auditRepo,
		log:       log,
	}
}

func (s *EventService) Create(ctx context.Context, userID uuid.UUID, e *models.Event) error {
	e.CreatorID = userID
	if e.Status == "" {
		e.Status = models.EventStatusPending
	}
	if !models.IsValidEventStatus(e.Status) {
		return fmt.Errorf("invalid event status %q", e.Status)
	}
	if err := e.ValidatePayment(); err != nil {
		return err
	}
	date, err := tasks.NormalizeDate(e.EventDate)
	if err != nil {
		return fmt.Errorf("invalid event date: %w", err)
	}
	e.EventDate = date

	if err := s.eventRepo.Create(ctx, e); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "event_created",
		EntityType:  "event",
		EntityID:    &e.ID,
	})

	return nil
}

func (s *EventService) GetByID(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	return s.eventRepo.GetByID(ctx, id)
}

func (s *EventService) ListMine(ctx context.Context, userID uuid.UUID) ([]models.Event, error) {
	return s.eventRepo.ListByCreator(ctx, userID)
}

func (s *EventService) Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, e *models.Event) error {
	existing, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("event not found")
	}
	if existing.CreatorID != userID {
		return fmt.Errorf("event not found")
	}

	e.ID = id
	e.CreatorID = existing.CreatorID
	if e.Status == "" {
		e.Status = existing.Status
	}
	if !models.IsValidEventStatus(e.Status) {
		return fmt.Errorf("invalid event status %q", e.Status)
	}
	if err := e.ValidatePayment(); err != nil {
		return err
	}
	date, err := tasks.NormalizeDate(e.EventDate)
	if err != nil {
		return fmt.Errorf("invalid event date: %w", err)
	}
	e.EventDate = date

	return s.eventRepo.Update(ctx, e)
}

func (s *EventService) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	existing, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("event not found")
	}
	if existing.CreatorID != userID {
		return fmt.Errorf("event not found")
	}

	return s.eventRepo.Delete(ctx, id)
}
