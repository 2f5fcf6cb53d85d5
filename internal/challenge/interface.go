package challenge

import (
	"context"
	"time"
)

// Store defines the persistence operations for challenges.
type Store interface {
	// HasPending reports whether challengerID has a PENDING challenge to challengedID
	// that is still answerable at now.
	HasPending(ctx context.Context, challengerID, challengedID string, now time.Time) (bool, error)
	Create(ctx context.Context, c *Challenge) error
	Get(ctx context.Context, challengeID string) (*Challenge, error)
	// Respond accepts or declines a pending challenge on behalf of userID.
	Respond(ctx context.Context, challengeID, userID string, accept bool, now time.Time) (*Challenge, error)
	// ExpireStale marks every pending challenge whose expiry has passed as EXPIRED.
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}
