package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Event statuses
const (
	EventStatusPending         = "pending"
	EventStatusApproved        = "approved"
	EventStatusDenied          = "denied"
	EventStatusPaymentRequired = "payment_required"
)

func IsValidEventStatus(s string) bool {
	switch s {
	case EventStatusPending, EventStatusApproved, EventStatusDenied, EventStatusPaymentRequired:
		return true
	}
	return false
}

type Event struct {
	ID              uuid.UUID `json:"id"`
	CreatorID       uuid.UUID `json:"creator_id"`
	Title           string    `json:"title"`
	// Platform is a context label for events, e.g. "In person".
	Platform        string    `json:"platform"`
	EventDate       string    `json:"event_date"` // wall-clock calendar date, YYYY-MM-DD
	Details         string    `json:"details"`
	RequiresPayment bool      `json:"requires_payment"`
	PaymentAmount   *float64  `json:"payment_amount,omitempty"`
	ImageURLs       []string  `json:"image_urls"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ValidatePayment enforces the contribution invariant: a paid event must carry
// a non-negative amount.
func (e *Event) ValidatePayment() error {
	if !e.RequiresPayment {
		return nil
	}
	if e.PaymentAmount == nil {
		return fmt.Errorf("payment amount is required for paid events")
	}
	if *e.PaymentAmount < 0 {
		return fmt.Errorf("payment amount must be non-negative, got %v", *e.PaymentAmount)
	}
	return nil
}
