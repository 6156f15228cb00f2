package models

import (
	"strings"

	"github.com/google/uuid"
)

// Task types
const (
	TaskTypeCampaign = "campaign"
	TaskTypeEvent    = "event"
)

// Status display categories
const (
	CategoryPositive = "green"
	CategoryNegative = "red"
	CategoryNeutral  = "blue"
	CategoryWarning  = "orange"
	CategoryDefault  = "gray"
)

// Task is the ephemeral view-model unifying campaigns and events (owned or
// requested) into one sortable, actionable list item. It is never persisted.
type Task struct {
	ID          uuid.UUID `json:"id"`
	Type        string    `json:"type"` // campaign / event
	Title       string    `json:"title"`
	DueDate     string    `json:"due_date"` // normalized YYYY-MM-DD
	Status      string    `json:"status"`
	Platform    string    `json:"platform"`
	CreatorName string    `json:"creator_name"`
	CreatorRole string    `json:"creator_role"`
	Action      string    `json:"action"`
}

// actionLabels maps a lowercased status to its recommended next-step label.
// The mapping is total: anything unrecognized falls back to "View details".
var actionLabels = map[string]string{
	CampaignStatusDraft:   "Edit draft",
	RequestStatusPending:  "View draft",
	RequestStatusApproved: "Submit post",
	RequestStatusDenied:   "View/edit draft",
	CampaignStatusLive:    "View post",
	"edit_required":       "View draft",
}

// ActionForStatus returns the UI action label for a status. Comparison is
// case-insensitive; statuses arrive in mixed case from different sources.
func ActionForStatus(status string) string {
	if label, ok := actionLabels[strings.ToLower(status)]; ok {
		return label
	}
	return "View details"
}

// StatusCategory returns the display color category for a status.
func StatusCategory(status string) string {
	switch strings.ToLower(status) {
	case RequestStatusApproved, CampaignStatusLive:
		return CategoryPositive
	case RequestStatusDenied:
		return CategoryNegative
	case CampaignStatusDraft, RequestStatusPending:
		return CategoryNeutral
	case "edit_required":
		return CategoryWarning
	default:
		return CategoryDefault
	}
}

// DisplayStatus capitalizes a status for presentation ("pending" -> "Pending").
func DisplayStatus(status string) string {
	if status == "" {
		return ""
	}
	s := strings.ToLower(status)
	return strings.ToUpper(s[:1]) + s[1:]
}
