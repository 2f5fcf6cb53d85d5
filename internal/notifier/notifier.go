package notifier

import (
	"context"

	"github.com/mauv0809/pingponghub/internal/badge"
	"github.com/mauv0809/pingponghub/internal/challenge"
	"github.com/mauv0809/pingponghub/internal/profile"
	"github.com/mauv0809/pingponghub/internal/rating"
)

// Notifier defines a high-level interface for announcing community events.
// This decouples the rest of the application from the specific notification provider (e.g., Slack).
type Notifier interface {
	ChallengeCreated(ctx context.Context, c *challenge.Challenge, challenger, challenged profile.Player) error
	MatchRated(ctx context.Context, result *rating.Result, winner, loser profile.Player) error
	BadgesAwarded(ctx context.Context, player profile.Player, badges []badge.Badge) error
}
