package models

import (
	"testing"

	"github.com/google/uuid"
)

func TestIsValidRequestTransition(t *testing.T) {
	tests := []struct {
		from     string
		to       string
		expected bool
	}{
		{RequestStatusPending, RequestStatusApproved, true},
		{RequestStatusPending, RequestStatusDenied, true},

		// One-way funnel: no path out of a terminal state.
		{RequestStatusApproved, RequestStatusPending, false},
		{RequestStatusApproved, RequestStatusDenied, false},
		{RequestStatusDenied, RequestStatusPending, false},
		{RequestStatusDenied, RequestStatusApproved, false},
		{RequestStatusPending, RequestStatusPending, false},
		{"nonexistent", RequestStatusApproved, false},
		{RequestStatusPending, "nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.from+"->"+tt.to, func(t *testing.T) {
			result := IsValidRequestTransition(tt.from, tt.to)
			if result != tt.expected {
				t.Errorf("IsValidRequestTransition(%q, %q) = %v, want %v", tt.from, tt.to, result, tt.expected)
			}
		})
	}
}

func TestTerminalRequestStatusesHaveNoTransitions(t *testing.T) {
	for _, status := range []string{RequestStatusApproved, RequestStatusDenied} {
		if transitions := ValidRequestTransitions[status]; len(transitions) != 0 {
			t.Errorf("terminal status %q should have no transitions, got %v", status, transitions)
		}
	}
}

func TestPartnershipRequestValidate(t *testing.T) {
	requester := uuid.New()
	creator := uuid.New()
	campaignID := uuid.New()
	eventID := uuid.New()

	tests := []struct {
		name    string
		req     *PartnershipRequest
		wantErr bool
	}{
		{
			name:    "campaign request",
			req:     NewCampaignRequest(requester, creator, campaignID, nil, nil, nil),
			wantErr: false,
		},
		{
			name:    "event request",
			req:     NewEventRequest(requester, creator, eventID, true),
			wantErr: false,
		},
		{
			name: "campaign type without campaign id",
			req: &PartnershipRequest{
				RequesterID: requester, CreatorID: creator,
				Type: RequestTypeCampaign, EventID: &eventID,
			},
			wantErr: true,
		},
		{
			name: "both ids set",
			req: &PartnershipRequest{
				RequesterID: requester, CreatorID: creator,
				Type: RequestTypeCampaign, CampaignID: &campaignID, EventID: &eventID,
			},
			wantErr: true,
		},
		{
			name: "unknown type",
			req: &PartnershipRequest{
				RequesterID: requester, CreatorID: creator,
				Type: "board_game", CampaignID: &campaignID,
			},
			wantErr: true,
		},
		{
			name:    "self request",
			req:     NewCampaignRequest(creator, creator, campaignID, nil, nil, nil),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFromRequest(t *testing.T) {
	requester := uuid.New()
	creator := uuid.New()
	eventID := uuid.New()

	paid := FromRequest(NewEventRequest(requester, creator, eventID, true))
	if paid.Status != PartnershipStatusActive {
		t.Errorf("Status = %q, want active", paid.Status)
	}
	if paid.PaymentStatus != PaymentStatusPending {
		t.Errorf("PaymentStatus = %q, want pending for agree-to-pay", paid.PaymentStatus)
	}
	if paid.PartnerID != requester || paid.CreatorID != creator {
		t.Errorf("partnership parties wrong: %+v", paid)
	}

	free := FromRequest(NewEventRequest(requester, creator, eventID, false))
	if free.PaymentStatus != PaymentStatusNotRequired {
		t.Errorf("PaymentStatus = %q, want not_required", free.PaymentStatus)
	}
}

func TestEventValidatePayment(t *testing.T) {
	amount := 25.0
	negative := -5.0

	tests := []struct {
		name    string
		event   Event
		wantErr bool
	}{
		{"free event", Event{RequiresPayment: false}, false},
		{"paid with amount", Event{RequiresPayment: true, PaymentAmount: &amount}, false},
		{"paid without amount", Event{RequiresPayment: true}, true},
		{"paid negative amount", Event{RequiresPayment: true, PaymentAmount: &negative}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.event.ValidatePayment()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePayment() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
