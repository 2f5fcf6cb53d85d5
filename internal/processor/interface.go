package processor

import (
	"context"

	"github.com/mauv0809/pingponghub/internal/badge"
	"github.com/mauv0809/pingponghub/internal/profile"
	"github.com/mauv0809/pingponghub/internal/rating"
)

// RatingStore defines the match and rating operations required by the processor.
type RatingStore interface {
	CompleteMatch(ctx context.Context, matchID string, player1Score, player2Score int) (*rating.Match, error)
	Recalculate(ctx context.Context, matchID, winnerID string) (*rating.Result, error)
}

// BadgeAwarder grants badges a player has become eligible for.
type BadgeAwarder interface {
	Award(ctx context.Context, userID string) (*badge.Award, error)
}

// PlayerStore defines the profile reads required by the processor.
type PlayerStore interface {
	GetPlayers(ctx context.Context, playerIDs []string) ([]profile.Player, error)
}

// Notifier defines the notification operations required by the processor.
type Notifier interface {
	MatchRated(ctx context.Context, result *rating.Result, winner, loser profile.Player) error
}
