// Package campaign manages a user's audiences and campaigns: plain CRUD, the
// editor design of each campaign, background template imports and stored
// outcome predictions.
package campaign

import (
	"campaigner/internal/config"
	"campaigner/internal/estimator"
	"campaigner/pkg/storage"
)

// Options configure job enqueueing and listing.
type Options struct {
	// MaxAttempts is the maximum number of attempts the background worker
	// makes to convert an imported template.
	MaxAttempts int
	// PredictionHistory caps the number of stored predictions returned per campaign.
	PredictionHistory uint
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		MaxAttempts:       cfg.Worker.MaxAttempts,
		PredictionHistory: 20,
	}
}

// manager is the concrete implementation of the Manager interface.
type manager struct {
	options   Options
	storage   storage.Storage
	estimator estimator.Estimator
}

// New creates a new Manager backed by the provided storage. Predictions are
// computed with est.
func New(storage storage.Storage, est estimator.Estimator, options Options) Manager {
	return &manager{
		options:   options,
		storage:   storage,
		estimator: est,
	}
}
