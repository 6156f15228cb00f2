package repositories

import (
	"context"

	"github.com/google/uuid"
	"github.com/partnerlink/backend/internal/models"
)

// TaskStore adapts the concrete repositories to the read-only capability the
// task aggregator depends on, so the aggregator never touches a pool directly.
type TaskStore struct {
	campaigns    *CampaignRepo
	events       *EventRepo
	partnerships *PartnershipRepo
	users        *UserRepo
}

func NewTaskStore(campaigns *CampaignRepo, events *EventRepo, partnerships *PartnershipRepo, users *UserRepo) *TaskStore {
	return &TaskStore{
		campaigns:    campaigns,
		events:       events,
		partnerships: partnerships,
		users:        users,
	}
}

func (s *TaskStore) QueryCampaigns(ctx context.Context, creatorID uuid.UUID) ([]models.Campaign, error) {
	return s.campaigns.ListByCreator(ctx, creatorID)
}

func (s *TaskStore) QueryEvents(ctx context.Context, creatorID uuid.UUID) ([]models.Event, error) {
	return s.events.ListByCreator(ctx, creatorID)
}

func (s *TaskStore) QueryPartnershipRequests(ctx context.Context, requesterID uuid.UUID) ([]models.PartnershipRequest, error) {
	return s.partnerships.ListByRequester(ctx, requesterID)
}

func (s *TaskStore) GetCampaign(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	return s.campaigns.GetOrNil(ctx, id)
}

func (s *TaskStore) GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error) {
	return s.events.GetOrNil(ctx, id)
}

func (s *TaskStore) GetUserProfile(ctx context.Context, id uuid.UUID) (*models.UserProfile, error) {
	return s.users.GetOrNil(ctx, id)
}
