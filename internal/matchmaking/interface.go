package matchmaking

import (
	"context"
	"time"

	"github.com/mauv0809/pingponghub/internal/challenge"
	"github.com/mauv0809/pingponghub/internal/profile"
)

// PlayerStore defines the profile reads required by matchmaking.
type PlayerStore interface {
	GetPlayer(ctx context.Context, playerID string) (*profile.Player, error)
	FindInRatingBand(ctx context.Context, excludeID string, minRating, maxRating, limit int) ([]profile.Player, error)
}

// ChallengeStore defines the challenge operations required by matchmaking.
type ChallengeStore interface {
	HasPending(ctx context.Context, challengerID, challengedID string, now time.Time) (bool, error)
	Create(ctx context.Context, c *challenge.Challenge) error
}

// Notifier defines the notification operations required by matchmaking.
// This keeps the matchmaking package decoupled from the main notifier interface.
type Notifier interface {
	ChallengeCreated(ctx context.Context, c *challenge.Challenge, challenger, challenged profile.Player) error
}
