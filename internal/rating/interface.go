package rating

import "context"

// Store defines the interface for match bookkeeping and rating updates.
type Store interface {
	CreateMatch(ctx context.Context, player1ID, player2ID, matchType string, challengeID *string) (*Match, error)
	GetMatch(ctx context.Context, matchID string) (*Match, error)
	// CompleteMatch records the final score and derives the winner.
	CompleteMatch(ctx context.Context, matchID string, player1Score, player2Score int) (*Match, error)
	// Recalculate applies the ELO change for a match in a single transaction.
	Recalculate(ctx context.Context, matchID, winnerID string) (*Result, error)
}
