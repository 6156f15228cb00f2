package models

import (
	"time"

	"github.com/google/uuid"
)

// Industry labels offered during profile setup. "Other" unlocks a free-text
// custom industry.
var Industries = []string{
	"Real Estate Agent",
	"Mortgage Broker",
	"Home Inspector",
	"Insurance Agent",
	"Title Agent",
	"Property Manager",
	"Interior Designer",
	"Contractor",
	"Other",
}

type UserProfile struct {
	ID                  uuid.UUID `json:"id"`
	Email               string    `json:"email"`
	FullName            string    `json:"full_name"`
	CompanyName         string    `json:"company_name"`
	Industry            string    `json:"industry"`
	CustomIndustry      *string   `json:"custom_industry,omitempty"`
	CareerExperience    string    `json:"career_experience"`
	Location            string    `json:"location"`
	SocialMediaPlatform string    `json:"social_media_platform"`
	SocialMediaHandle   string    `json:"social_media_handle"`
	Bio                 string    `json:"bio"`
	Goals               string    `json:"goals"`
	ProfilePhotoURL     *string   `json:"profile_photo_url,omitempty"`
	IsProfileComplete   bool      `json:"is_profile_complete"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// RoleLabel is the industry label shown next to a user's name; the custom
// industry wins when "Other" was chosen.
func (u *UserProfile) RoleLabel() string {
	if u.Industry == "Other" && u.CustomIndustry != nil && *u.CustomIndustry != "" {
		return *u.CustomIndustry
	}
	return u.Industry
}
