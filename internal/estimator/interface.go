package estimator

import (
	"context"

	"campaigner/pkg/domain"
	"campaigner/pkg/estimate"
)

// Request identifies what to project. Generation, when non-zero, orders
// requests issued by the same client session so only the latest one is
// answered; Session scopes that ordering within a user.
type Request struct {
	AudienceID domain.AudienceID
	Subject    string
	Segment    domain.Segment
	Generation uint64
	Session    string
}

//go:generate mockgen -package mockestimator -source=interface.go -destination=mock/mockestimator.go *
type Estimator interface {
	Estimate(ctx context.Context, userID domain.UserID, req Request) (estimate.Result, error)
}
