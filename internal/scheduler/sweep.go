package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/pingponghub/internal/metrics"
)

// Sweeper expires pending challenges that are past their deadline.
type Sweeper struct {
	challenges ChallengeExpirer
	metrics    metrics.Metrics
	now        func() time.Time
}

// NewSweeper creates a new Sweeper.
func NewSweeper(challenges ChallengeExpirer, metrics metrics.Metrics) *Sweeper {
	return &Sweeper{
		challenges: challenges,
		metrics:    metrics,
		now:        time.Now,
	}
}

// Run performs a single sweep and returns the number of challenges expired.
func (s *Sweeper) Run(ctx context.Context) (int64, error) {
	n, err := s.challenges.ExpireStale(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("failed to expire challenges: %w", err)
	}
	if n > 0 {
		s.metrics.AddChallengesExpired(int(n))
		log.Info("Expired stale challenges", "count", n)
	}
	return n, nil
}
