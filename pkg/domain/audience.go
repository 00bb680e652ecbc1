package domain

import (
	"time"

	"github.com/google/uuid"
)

// AudienceID uniquely identifies an audience.
type AudienceID uuid.UUID

// String returns the canonical UUID text form.
func (a AudienceID) String() string { return uuid.UUID(a).String() }

// Audience is a named group of subscribers. SubscriberCount is the only sizing
// input the estimator reads; the subscriber list itself is never loaded.
type Audience struct {
	ID     AudienceID `json:"id"`
	UserID UserID     `json:"userId"`

	Name            string         `json:"name"`
	Description     string         `json:"description"`
	Criteria        map[string]any `json:"criteria"`
	SubscriberCount int            `json:"subscriberCount"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
