package scheduler

import (
	"context"
	"time"
)

// Scheduler runs the periodic challenge sweep.
type Scheduler interface {
	Start() error
	Shutdown() error
}

// ChallengeExpirer defines the challenge operation required by the sweep.
type ChallengeExpirer interface {
	ExpireStale(ctx context.Context, now time.Time) (int64, error)
}
