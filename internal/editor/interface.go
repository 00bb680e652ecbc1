package editor

import (
	"context"
	"encoding/json"

	"campaigner/pkg/domain"
)

//go:generate mockgen -package mockeditor -source=interface.go -destination=mock/mockeditor.go *
type Editor interface {
	// Token returns the vendor token document used to start an editor session
	// for the user.
	Token(ctx context.Context, userID domain.UserID) (json.RawMessage, error)
}
