// Package beefree defines the server-side half of the embedded email editor:
// exchanging application credentials for an editor token and converting
// imported HTML into an editor design document.
package beefree

import (
	"context"
	"embed"
	"encoding/json"
	"time"
)

// DefaultUsername identifies editor sessions started without a user id.
const DefaultUsername = "marketing-buddy-user"

// Token is the vendor's token document. Raw is handed to the editor SDK
// unchanged; AccessToken and ExpiresIn are read from it for caching.
type Token struct {
	Raw         json.RawMessage
	AccessToken string
	ExpiresIn   time.Duration
}

// Client is the abstraction over the editor vendor API.
//
//go:generate mockgen -package mockbeefree -source=interface.go -destination=mock/mockbeefree.go *
type Client interface {
	// Authenticate exchanges the configured client credentials for a token
	// bound to uid. An empty uid uses DefaultUsername.
	Authenticate(ctx context.Context, uid string) (Token, error)
	// ConvertHTML turns an HTML email into a design document of the form
	// {"page": {...}}.
	ConvertHTML(ctx context.Context, html string) (json.RawMessage, error)
}

//go:embed templates/*.json
var templates embed.FS

func mustTemplate(name string) json.RawMessage {
	b, err := templates.ReadFile("templates/" + name)
	if err != nil {
		panic(err)
	}

	return b
}

// FallbackTemplate is used in place of a design when HTML conversion fails.
func FallbackTemplate() json.RawMessage {
	return mustTemplate("fallback.json")
}

// StarterTemplate seeds the editor for campaigns without a saved design.
func StarterTemplate() json.RawMessage {
	return mustTemplate("starter.json")
}
