package badge

import (
	"context"

	"github.com/mauv0809/pingponghub/internal/profile"
)

// Store defines the interface for badge definitions and awards.
type Store interface {
	// Evaluate grants every badge the user now qualifies for and returns the new badge ids.
	Evaluate(ctx context.Context, userID string) ([]string, error)
	GetBadges(ctx context.Context, badgeIDs []string) ([]Badge, error)
	GetUserBadges(ctx context.Context, userID string) ([]Badge, error)
	CreateBadge(ctx context.Context, b Badge) (*Badge, error)
}

// PlayerStore defines the profile reads required to announce awards.
type PlayerStore interface {
	GetPlayer(ctx context.Context, playerID string) (*profile.Player, error)
}

// Notifier defines the notification operations required by the badge service.
type Notifier interface {
	BadgesAwarded(ctx context.Context, player profile.Player, badges []Badge) error
}
