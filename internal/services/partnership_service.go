package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/partnerlink/backend/internal/events"
	"github.com/partnerlink/backend/internal/models"
	"github.com/partnerlink/backend/internal/rbac"
	"github.com/partnerlink/backend/internal/repositories"
	"go.uber.org/zap"
)

type PartnershipService struct {
	partnershipRepo *repositories.PartnershipRepo
	campaignRepo    *repositories.CampaignRepo
	eventRepo       *repositories.EventRepo
	userRepo        *repositories.UserRepo
	auditRepo       *repositories.AuditRepo
	publisher       events.Publisher
	log             *zap.Logger
}

func NewPartnershipService(
	partnershipRepo *repositories.PartnershipRepo,
	campaignRepo *repositories.CampaignRepo,
	eventRepo *repositories.EventRepo,
	userRepo *repositories.UserRepo,
	auditRepo *repositories.AuditRepo,
	publisher events.Publisher,
	log *zap.Logger,
) *PartnershipService {
	return &PartnershipService{
		partnershipRepo: partnershipRepo,
		campaignRepo:    campaignRepo,
		eventRepo:       eventRepo,
		userRepo:        userRepo,
		auditRepo:       auditRepo,
		publisher:       publisher,
		log:             log,
	}
}

// RequestCampaign files a pending partnership request against a campaign.
func (s *PartnershipService) RequestCampaign(ctx context.Context, requesterID, campaignID uuid.UUID, content *string, tags []string, photoURL *string) (*models.PartnershipRequest, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("campaign not found")
	}

	req := models.NewCampaignRequest(requesterID, campaign.CreatorID, campaignID, content, tags, photoURL)
	return s.createRequest(ctx, req)
}

// RequestEvent files a pending partnership request against an event. For paid
// events the requester must agree to contribute.
func (s *PartnershipService) RequestEvent(ctx context.Context, requesterID, eventID uuid.UUID, agreeToPay bool) (*models.PartnershipRequest, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, fmt.Errorf("event not found")
	}
	if event.RequiresPayment && !agreeToPay {
		return nil, fmt.Errorf("this event requires a contribution")
	}

	req := models.NewEventRequest(requesterID, event.CreatorID, eventID, agreeToPay)
	return s.createRequest(ctx, req)
}

func (s *PartnershipService) createRequest(ctx context.Context, req *models.PartnershipRequest) (*models.PartnershipRequest, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	pending, err := s.partnershipRepo.HasPendingRequest(ctx, req.RequesterID, req.Type, req.TargetID())
	if err != nil {
		return nil, err
	}
	if pending {
		return nil, fmt.Errorf("a pending request for this %s already exists", req.Type)
	}

	if err := s.partnershipRepo.CreateRequest(ctx, req); err != nil {
		return nil, err
	}

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &req.RequesterID,
		ActorType:   "user",
		Action:      "partnership_request_created",
		EntityType:  "partnership_request",
		EntityID:    &req.ID,
		Meta:        map[string]any{"type": req.Type, "target_id": req.TargetID().String()},
	})

	_ = s.publisher.Publish(ctx, events.StreamPartnerships, events.Event{
		Type:   events.EventRequestCreated,
		UserID: req.CreatorID.String(),
		Payload: map[string]any{
			"request_id":   req.ID.String(),
			"requester_id": req.RequesterID.String(),
			"type":         req.Type,
		},
	})

	return req, nil
}

// Approve moves a pending request to approved and creates the derived
// partnership. Only the target's creator may approve.
func (s *PartnershipService) Approve(ctx context.Context, requestID, actorID uuid.UUID) (*models.Partnership, error) {
	req, err := s.transition(ctx, requestID, actorID, models.RequestStatusApproved, rbac.PermApproveRequest)
	if err != nil {
		return nil, err
	}

	partnership := models.FromRequest(req)
	if err := s.partnershipRepo.CreatePartnership(ctx, partnership); err != nil {
		return nil, err
	}

	_ = s.publisher.Publish(ctx, events.StreamPartnerships, events.Event{
		Type:   events.EventRequestApproved,
		UserID: req.RequesterID.String(),
		Payload: map[string]any{
			"request_id":     req.ID.String(),
			"partnership_id": partnership.ID.String(),
			"type":           req.Type,
		},
	})

	return partnership, nil
}

// Deny moves a pending request to denied.
func (s *PartnershipService) Deny(ctx context.Context, requestID, actorID uuid.UUID) error {
	req, err := s.transition(ctx, requestID, actorID, models.RequestStatusDenied, rbac.PermDenyRequest)
	if err != nil {
		return err
	}

	_ = s.publisher.Publish(ctx, events.StreamPartnerships, events.Event{
		Type:   events.EventRequestDenied,
		UserID: req.RequesterID.String(),
		Payload: map[string]any{
			"request_id": req.ID.String(),
			"type":       req.Type,
		},
	})

	return nil
}

// transition validates permissions and the one-way status funnel, persists the
// new status and writes the audit trail.
func (s *PartnershipService) transition(ctx context.Context, requestID, actorID uuid.UUID, newStatus, perm string) (*models.PartnershipRequest, error) {
	req, err := s.partnershipRepo.GetRequest(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("request not found")
	}

	role := rbac.RoleRequester
	if req.CreatorID == actorID {
		role = rbac.RoleCreator
	} else if req.RequesterID != actorID {
		return nil, fmt.Errorf("request not found")
	}
	if !rbac.HasPermission(role, perm) {
		return nil, fmt.Errorf("only the creator can %s a request", newStatus)
	}

	if !models.IsValidRequestTransition(req.Status, newStatus) {
		return nil, fmt.Errorf("invalid transition from %s to %s", req.Status, newStatus)
	}

	oldStatus := req.Status
	if err := s.partnershipRepo.UpdateRequestStatus(ctx, req.ID, newStatus); err != nil {
		return nil, err
	}
	req.Status = newStatus

	_ = s.auditRepo.Log(ctx, models.AuditLog{
		ActorUserID: &actorID,
		ActorType:   "user",
		Action:      fmt.Sprintf("request_status_%s_to_%s", oldStatus, newStatus),
		EntityType:  "partnership_request",
		EntityID:    &req.ID,
		Meta:        map[string]any{"old_status": oldStatus, "new_status": newStatus},
	})

	return req, nil
}

func (s *PartnershipService) ListSent(ctx context.Context, userID uuid.UUID) ([]models.PartnershipRequest, error) {
	return s.partnershipRepo.ListByRequester(ctx, userID)
}

// ListReceived returns requests against the user's campaigns/events, enriched
// with requester display info for the updates feed. A missing requester
// profile degrades to a placeholder rather than dropping the request.
func (s *PartnershipService) ListReceived(ctx context.Context, userID uuid.UUID) ([]models.RequestWithRequester, error) {
	requests, err := s.partnershipRepo.ListByCreator(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]models.RequestWithRequester, 0, len(requests))
	for _, req := range requests {
		enriched := models.RequestWithRequester{PartnershipRequest: req, RequesterName: "Unknown User"}
		profile, err := s.userRepo.GetOrNil(ctx, req.RequesterID)
		if err != nil {
			return nil, err
		}
		if profile != nil {
			enriched.RequesterName = profile.FullName
			enriched.RequesterPhoto = profile.ProfilePhotoURL
		}
		out = append(out, enriched)
	}
	return out, nil
}

func (s *PartnershipService) ListPartnerships(ctx context.Context, userID uuid.UUID, asCreator bool) ([]models.Partnership, error) {
	if asCreator {
		return s.partnershipRepo.ListPartnershipsByCreator(ctx, userID)
	}
	return s.partnershipRepo.ListPartnershipsByPartner(ctx, userID)
}
