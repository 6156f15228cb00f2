package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Partnership request target types
const (
	RequestTypeCampaign = "campaign"
	RequestTypeEvent    = "event"
)

// Partnership request statuses
const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusDenied   = "denied"
)

// Valid state transitions: from -> []to. The request lifecycle is a one-way
// funnel from pending to a terminal state; there is no path back.
var ValidRequestTransitions = map[string][]string{
	RequestStatusPending:  {RequestStatusApproved, RequestStatusDenied},
	RequestStatusApproved: {},
	RequestStatusDenied:   {},
}

func IsValidRequestTransition(from, to string) bool {
	allowed, ok := ValidRequestTransitions[from]
	if !ok {
		return false
	}
	for _, s := range allowed {
		if s == to {
			return true
		}
	}
	return false
}

// PartnershipRequest expresses "requester wants to participate in creator's
// campaign or event". Exactly one of CampaignID/EventID is set, matching Type.
type PartnershipRequest struct {
	ID          uuid.UUID  `json:"id"`
	RequesterID uuid.UUID  `json:"requester_id"`
	CreatorID   uuid.UUID  `json:"creator_id"`
	Type        string     `json:"type"` // campaign / event
	CampaignID  *uuid.UUID `json:"campaign_id,omitempty"`
	EventID     *uuid.UUID `json:"event_id,omitempty"`
	Status      string     `json:"status"`

	// Campaign drafts only
	Content  *string  `json:"content,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	PhotoURL *string  `json:"photo_url,omitempty"`

	// Paid events only
	AgreeToPay bool `json:"agree_to_pay"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewCampaignRequest builds a pending request against a campaign.
func NewCampaignRequest(requesterID, creatorID, campaignID uuid.UUID, content *string, tags []string, photoURL *string) *PartnershipRequest {
	id := campaignID
	return &PartnershipRequest{
		RequesterID: requesterID,
		CreatorID:   creatorID,
		Type:        RequestTypeCampaign,
		CampaignID:  &id,
		Status:      RequestStatusPending,
		Content:     content,
		Tags:        tags,
		PhotoURL:    photoURL,
	}
}

// NewEventRequest builds a pending request against an event.
func NewEventRequest(requesterID, creatorID, eventID uuid.UUID, agreeToPay bool) *PartnershipRequest {
	id := eventID
	return &PartnershipRequest{
		RequesterID: requesterID,
		CreatorID:   creatorID,
		Type:        RequestTypeEvent,
		EventID:     &id,
		Status:      RequestStatusPending,
		AgreeToPay:  agreeToPay,
	}
}

// Validate enforces the tagged-union invariant at construction rather than by
// convention: the populated target id must match Type.
func (r *PartnershipRequest) Validate() error {
	switch r.Type {
	case RequestTypeCampaign:
		if r.CampaignID == nil || r.EventID != nil {
			return fmt.Errorf("campaign request must set campaign_id and only campaign_id")
		}
	case RequestTypeEvent:
		if r.EventID == nil || r.CampaignID != nil {
			return fmt.Errorf("event request must set event_id and only event_id")
		}
	default:
		return fmt.Errorf("unknown request type %q", r.Type)
	}
	if r.RequesterID == r.CreatorID {
		return fmt.Errorf("cannot request partnership on your own %s", r.Type)
	}
	return nil
}

// TargetID returns the linked record id for the request's type.
func (r *PartnershipRequest) TargetID() uuid.UUID {
	if r.Type == RequestTypeCampaign && r.CampaignID != nil {
		return *r.CampaignID
	}
	if r.Type == RequestTypeEvent && r.EventID != nil {
		return *r.EventID
	}
	return uuid.Nil
}

// Partnership statuses
const (
	PartnershipStatusActive    = "active"
	PartnershipStatusCompleted = "completed"
	PartnershipStatusCancelled = "cancelled"
)

// Partnership payment statuses
const (
	PaymentStatusPending     = "pending"
	PaymentStatusCompleted   = "completed"
	PaymentStatusNotRequired = "not_required"
)

// Partnership is the record derived from an approved request.
type Partnership struct {
	ID            uuid.UUID  `json:"id"`
	PartnerID     uuid.UUID  `json:"partner_id"`
	CreatorID     uuid.UUID  `json:"creator_id"`
	Type          string     `json:"type"`
	CampaignID    *uuid.UUID `json:"campaign_id,omitempty"`
	EventID       *uuid.UUID `json:"event_id,omitempty"`
	Status        string     `json:"status"`
	PaymentStatus string     `json:"payment_status"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// FromRequest derives the partnership created when a request is approved.
func FromRequest(req *PartnershipRequest) *Partnership {
	paymentStatus := PaymentStatusNotRequired
	if req.AgreeToPay {
		paymentStatus = PaymentStatusPending
	}
	return &Partnership{
		PartnerID:     req.RequesterID,
		CreatorID:     req.CreatorID,
		Type:          req.Type,
		CampaignID:    req.CampaignID,
		EventID:       req.EventID,
		Status:        PartnershipStatusActive,
		PaymentStatus: paymentStatus,
	}
}

// RequestWithRequester embeds PartnershipRequest and adds requester display
// info for the updates feed, avoiding N+1 profile lookups at the edge.
type RequestWithRequester struct {
	PartnershipRequest
	RequesterName  string  `json:"requester_name"`
	RequesterPhoto *string `json:"requester_photo,omitempty"`
}
