package domain

import (
	"time"

	"github.com/google/uuid"
)

// SubscriberID uniquely identifies a subscriber.
type SubscriberID uuid.UUID

// SubscriberStatus is the mailing state of a subscriber.
type SubscriberStatus string

const (
	SubscriberStatusActive       SubscriberStatus = "active"
	SubscriberStatusUnsubscribed SubscriberStatus = "unsubscribed"
	SubscriberStatusBounced      SubscriberStatus = "bounced"
)

// Subscriber is a single mailing-list member.
type Subscriber struct {
	ID     SubscriberID `json:"id"`
	UserID UserID       `json:"userId"`

	Email     string           `json:"email"`
	FirstName string           `json:"firstName"`
	LastName  string           `json:"lastName"`
	Status    SubscriberStatus `json:"status"`
	Tags      []string         `json:"tags"`

	SubscribedAt time.Time `json:"subscribedAt"`
}
