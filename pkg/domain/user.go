package domain

import "github.com/google/uuid"

// UserID identifies the authenticated account that owns every other entity.
type UserID uuid.UUID

// String returns the canonical UUID text form.
func (u UserID) String() string { return uuid.UUID(u).String() }
