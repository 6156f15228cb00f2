package dto

type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	FullName            string  `json:"full_name"`
	CompanyName         string  `json:"company_name"`
	Industry            string  `json:"industry"`
	CustomIndustry      *string `json:"custom_industry,omitempty"`
	CareerExperience    string  `json:"career_experience"`
	Location            string  `json:"location"`
	SocialMediaPlatform string  `json:"social_media_platform"`
	SocialMediaHandle   string  `json:"social_media_handle"`
	Bio                 string  `json:"bio"`
	Goals               string  `json:"goals"`
	ProfilePhotoURL     *string `json:"profile_photo_url,omitempty"`
}

// Campaigns

type CreateCampaignRequest struct {
	Title        string   `json:"title"`
	Platform     string   `json:"platform"`
	DueDate      string   `json:"due_date"`
	Requirements string   `json:"requirements"`
	PromotedURL  *string  `json:"promoted_url,omitempty"`
	ImageURLs    []string `json:"image_urls,omitempty"`
}

type UpdateCampaignRequest struct {
	Title        string   `json:"title"`
	Platform     string   `json:"platform"`
	DueDate      string   `json:"due_date"`
	Requirements string   `json:"requirements"`
	PromotedURL  *string  `json:"promoted_url,omitempty"`
	ImageURLs    []string `json:"image_urls,omitempty"`
	Status       string   `json:"status,omitempty"`
}

// Events

type CreateEventRequest struct {
	Title           string   `json:"title"`
	Platform        string   `json:"platform,omitempty"`
	EventDate       string   `json:"event_date"`
	Details         string   `json:"details"`
	RequiresPayment bool     `json:"requires_payment"`
	PaymentAmount   *float64 `json:"payment_amount,omitempty"`
	ImageURLs       []string `json:"image_urls,omitempty"`
}

type UpdateEventRequest struct {
	Title           string   `json:"title"`
	Platform        string   `json:"platform,omitempty"`
	EventDate       string   `json:"event_date"`
	Details         string   `json:"details"`
	RequiresPayment bool     `json:"requires_payment"`
	PaymentAmount   *float64 `json:"payment_amount,omitempty"`
	ImageURLs       []string `json:"image_urls,omitempty"`
	Status          string   `json:"status,omitempty"`
}

// Partnership requests

type CampaignRequestRequest struct {
	Content  *string  `json:"content,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	PhotoURL *string  `json:"photo_url,omitempty"`
}

type EventRequestRequest struct {
	AgreeToPay bool `json:"agree_to_pay"`
}

// Messages

type SendMessageRequest struct {
	RecipientID string `json:"recipient_id"`
	Content     string `json:"content"`
}

// Uploads

type PresignUploadRequest struct {
	Kind        string `json:"kind"` // campaigns / events / profiles / partnership-requests
	Filename    string `json:"filename"`
	ContentType string `json:"content_type,omitempty"`
}
