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

type CampaignService struct {
	campaignRepo *repositories.CampaignRepo
	auditRepo    *repositories.AuditRepo
	log          *zap.Logger
}

func NewCampaignService(
	campaignRepo *repositories.CampaignRepo,
	auditRepo *repositories.AuditRepo,
	log *zap.Logger,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		auditRepo:    auditRepo,
		log:          log,
	}
}

func (s *CampaignService) Create(ctx context.Context, userID uuid.UUID, c *models.Campaign) error {
	c.CreatorID = userID
	if c.Status == "" {
		c.Status = models.CampaignStatusDraft
	}
	if !models.IsValidCampaignStatus(c.Status) {
		return fmt.Errorf("invalid campaign status %q", c.Status)
	}
	if !models.IsValidPlatform(c.Platform) {
		return fmt.Errorf("invalid platform %q", c.Platform)
	}
	due, err := tasks.NormalizeDate(c.DueDate)
	if err != nil {
		return fmt.Errorf("invalid due date: %w", err)
	}
	c.DueDate = due

	if err := s.campaignRepo.Create(ctx, c); err != nil {
		return err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &userID,
		ActorType:   "user",
		Action:      "campaign_created",
		EntityType:  "campaign",
		EntityID:    &c.ID,
	})

	return nil
}

func (s *CampaignService) GetByID(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	return s.campaignRepo.GetByID(ctx, id)
}

func (s *CampaignService) ListMine(ctx context.Context, userID uuid.UUID) ([]models.Campaign, error) {
	return s.campaignRepo.ListByCreator(ctx, userID)
}

func (s *CampaignService) Update(ctx context.Context, id uuid.UUID, userID uuid.UUID, c *models.Campaign) error {
	existing, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("campaign not found")
	}
	if existing.CreatorID != userID {
		return fmt.Errorf("campaign not found")
	}

	c.ID = id
	c.CreatorID = existing.CreatorID
	if c.Status == "" {
		c.Status = existing.Status
	}
	if !models.IsValidCampaignStatus(c.Status) {
		return fmt.Errorf("invalid campaign status %q", c.Status)
	}
	if !models.IsValidPlatform(c.Platform) {
		return fmt.Errorf("invalid platform %q", c.Platform)
	}
	due, err := tasks.NormalizeDate(c.DueDate)
	if err != nil {
		return fmt.Errorf("invalid due date: %w", err)
	}
	c.DueDate = due

	return s.campaignRepo.Update(ctx, c)
}

func (s *CampaignService) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	existing, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("campaign not found")
	}
	if existing.CreatorID != userID {
		return fmt.Errorf("campaign not found")
	}

	return s.campaignRepo.Delete(ctx, id)
}
