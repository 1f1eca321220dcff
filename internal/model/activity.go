package model

import (
	"time"

	"github.com/google/uuid"
)

// Activity is an append-only entry in the admin dashboard feed.
type Activity struct {
	ID         uuid.UUID `json:"id" db:"id"`
	Icon       string    `json:"icon" db:"icon"`
	Title      string    `json:"title" db:"title"`
	Subtitle   string    `json:"subtitle" db:"subtitle"`
	Color      string    `json:"color" db:"color"`
	ValueLabel string    `json:"valueLabel" db:"value_label"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
