package domain

import (
	"strings"
	"time"
)

// Ad is a rewarded advertisement. Ads are immutable once created.
type Ad struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Reward      int64     `json:"reward"` // points per qualifying view
	CreatedAt   time.Time `json:"created_at"`
}

// Validate checks the fields supplied by the creator of an ad.
func (a Ad) Validate() error {
	if strings.TrimSpace(a.Title) == "" {
		return ErrInvalidArgument
	}
	if a.Reward <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
