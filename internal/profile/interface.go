package profile

import "context"

// PlayerStore defines the interface for reading and writing player profiles.
type PlayerStore interface {
	GetPlayer(ctx context.Context, playerID string) (*Player, error)
	GetPlayers(ctx context.Context, playerIDs []string) ([]Player, error)
	// FindInRatingBand returns players whose rating lies in [minRating, maxRating],
	// excluding excludeID, capped at limit rows.
	FindInRatingBand(ctx context.Context, excludeID string, minRating, maxRating, limit int) ([]Player, error)
	UpsertPlayer(ctx context.Context, player Player) error
	SetOnline(ctx context.Context, playerID string, online bool) error
}
