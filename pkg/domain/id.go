package domain

import (
	"fmt"

	"github.com/google/uuid"
)

// Typed IDs are distinct types over uuid.UUID and do not inherit its methods,
// so each one encodes itself as canonical UUID text.

func (u UserID) MarshalText() ([]byte, error)      { return uuid.UUID(u).MarshalText() }
func (u *UserID) UnmarshalText(b []byte) error     { return unmarshalID((*uuid.UUID)(u), b) }
func (a AudienceID) MarshalText() ([]byte, error)  { return uuid.UUID(a).MarshalText() }
func (a *AudienceID) UnmarshalText(b []byte) error { return unmarshalID((*uuid.UUID)(a), b) }
func (c CampaignID) MarshalText() ([]byte, error)  { return uuid.UUID(c).MarshalText() }
func (c *CampaignID) UnmarshalText(b []byte) error { return unmarshalID((*uuid.UUID)(c), b) }

func (s SubscriberID) MarshalText() ([]byte, error)  { return uuid.UUID(s).MarshalText() }
func (s *SubscriberID) UnmarshalText(b []byte) error { return unmarshalID((*uuid.UUID)(s), b) }
func (p PredictionID) MarshalText() ([]byte, error)  { return uuid.UUID(p).MarshalText() }
func (p *PredictionID) UnmarshalText(b []byte) error { return unmarshalID((*uuid.UUID)(p), b) }

func unmarshalID(dst *uuid.UUID, b []byte) error {
	id, err := uuid.ParseBytes(b)
	if err != nil {
		return fmt.Errorf("could not parse id: %w", err)
	}
	*dst = id

	return nil
}
