package tasks

import (
	"context"

	"github.com/google/uuid"
	"github.com/partnerlink/backend/internal/models"
)

// Store is the read-side capability the aggregator needs from the persistence
// layer. Single-record getters return (nil, nil) when the record does not
// exist; an error means the retrieval itself failed.
type Store interface {
	QueryCampaigns(ctx context.Context, creatorID uuid.UUID) ([]models.Campaign, error)
	QueryEvents(ctx context.Context, creatorID uuid.UUID) ([]models.Event, error)
	QueryPartnershipRequests(ctx context.Context, requesterID uuid.UUID) ([]models.PartnershipRequest, error)
	GetCampaign(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
	GetEvent(ctx context.Context, id uuid.UUID) (*models.Event, error)
	GetUserProfile(ctx context.Context, id uuid.UUID) (*models.UserProfile, error)
}
