package storage

import (
	"context"

	"campaigner/pkg/domain"
)

// SubscriberStorage stores mailing-list members.
type SubscriberStorage interface {
	// StoreSubscribers inserts subscribers; an existing (user, email) pair is
	// left untouched. It returns the rows that were inserted.
	StoreSubscribers(ctx context.Context, subscribers ...domain.Subscriber) ([]domain.Subscriber, error)
	// SubscriberCounts returns the number of subscribers per status.
	SubscriberCounts(ctx context.Context, userID domain.UserID) (map[domain.SubscriberStatus]int64, error)
}
