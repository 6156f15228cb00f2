package models

import (
	"time"

	"github.com/google/uuid"
)

// Campaign statuses
const (
	CampaignStatusDraft    = "draft"
	CampaignStatusPending  = "pending"
	CampaignStatusApproved = "approved"
	CampaignStatusDenied   = "denied"
	CampaignStatusLive     = "live"
)

// Supported social platforms
const (
	PlatformInstagram = "Instagram"
	PlatformTwitter   = "Twitter"
	PlatformLinkedIn  = "LinkedIn"
	PlatformTikTok    = "TikTok"
	PlatformYouTube   = "YouTube"
)

var Platforms = []string{
	PlatformInstagram, PlatformTwitter, PlatformLinkedIn, PlatformTikTok, PlatformYouTube,
}

func IsValidPlatform(p string) bool {
	for _, v := range Platforms {
		if v == p {
			return true
		}
	}
	return false
}

func IsValidCampaignStatus(s string) bool {
	switch s {
	case CampaignStatusDraft, CampaignStatusPending, CampaignStatusApproved,
		CampaignStatusDenied, CampaignStatusLive:
		return true
	}
	return false
}

type Campaign struct {
	ID           uuid.UUID `json:"id"`
	CreatorID    uuid.UUID `json:"creator_id"`
	Title        string    `json:"title"`
	Platform     string    `json:"platform"`
	DueDate      string    `json:"due_date"` // wall-clock calendar date, YYYY-MM-DD
	Requirements string    `json:"requirements"`
	PromotedURL  *string   `json:"promoted_url,omitempty"`
	ImageURLs    []string  `json:"image_urls"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
