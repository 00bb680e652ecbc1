// Package editor performs the server-side half of the email editor login, so
// vendor credentials never reach the browser. Tokens are cached until shortly
// before they expire.
package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"campaigner/internal/config"
	"campaigner/pkg/beefree"
	"campaigner/pkg/domain"
	"campaigner/pkg/logger"
	"campaigner/pkg/storage"

	"go.uber.org/zap"
)

// Options configure token caching.
type Options struct {
	// TTLMargin is subtracted from the vendor's token lifetime before caching.
	TTLMargin time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		TTLMargin: cfg.Editor.TokenTTLMargin,
	}
}

type editor struct {
	options Options
	client  beefree.Client
	cache   storage.TokenCache
}

func cacheKey(userID domain.UserID) string {
	return "editor-token:" + userID.String()
}

// Token serves a cached token when there is one. Cache failures are logged
// and fall through to the vendor.
func (e *editor) Token(ctx context.Context, userID domain.UserID) (json.RawMessage, error) {
	key := cacheKey(userID)
	if e.cache != nil {
		b, ok, err := e.cache.Token(ctx, key)
		switch {
		case err != nil:
			logger.Warn(ctx, "could not read cached editor token", zap.Error(err))
		case ok:
			return b, nil
		}
	}

	token, err := e.client.Authenticate(ctx, userID.String())
	if err != nil {
		return nil, fmt.Errorf("could not authenticate editor: %w", err)
	}

	if ttl := token.ExpiresIn - e.options.TTLMargin; e.cache != nil && ttl > 0 {
		if err := e.cache.StoreToken(ctx, key, token.Raw, ttl); err != nil {
			logger.Warn(ctx, "could not cache editor token", zap.Error(err))
		}
	}

	return token.Raw, nil
}

// New creates an Editor using client for the vendor exchange. cache may be nil.
func New(client beefree.Client, cache storage.TokenCache, options Options) Editor {
	return &editor{
		options: options,
		client:  client,
		cache:   cache,
	}
}
