package model

import (
	"time"

	"github.com/google/uuid"
)

// Banner represents a hero-carousel slide, fully admin-editable.
type Banner struct {
	ID                  uuid.UUID `json:"id" db:"id"`
	Tag                 string    `json:"tag" db:"tag"`
	Title               string    `json:"title" db:"title"`
	Subtitle            string    `json:"subtitle" db:"subtitle"`
	ImageURL            string    `json:"imageUrl" db:"image_url"`
	ButtonPrimaryText   string    `json:"buttonPrimaryText" db:"button_primary_text"`
	ButtonPrimaryLink   string    `json:"buttonPrimaryLink" db:"button_primary_link"`
	ButtonSecondaryText string    `json:"buttonSecondaryText" db:"button_secondary_text"`
	ButtonSecondaryLink string    `json:"buttonSecondaryLink" db:"button_secondary_link"`
	Priority            int       `json:"priority" db:"priority"`
	Active              bool      `json:"active" db:"active"`
	DisplayDuration     int       `json:"displayDuration" db:"display_duration"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`
}

// BannerRequest represents the payload for creating or updating a banner.
type BannerRequest struct {
	Tag                 string `json:"tag"`
	Title               string `json:"title"`
	Subtitle            string `json:"subtitle"`
	ImageURL            string `json:"imageUrl"`
	ButtonPrimaryText   string `json:"buttonPrimaryText"`
	ButtonPrimaryLink   string `json:"buttonPrimaryLink"`
	ButtonSecondaryText string `json:"buttonSecondaryText"`
	ButtonSecondaryLink string `json:"buttonSecondaryLink"`
	Priority            int    `json:"priority"`
	Active              bool   `json:"active"`
	DisplayDuration     int    `json:"displayDuration"`
}
