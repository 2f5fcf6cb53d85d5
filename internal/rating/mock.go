package rating

import (
	"context"
	"sync"
)

// Mock is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	CreateMatchFunc   func(ctx context.Context, player1ID, player2ID, matchType string, challengeID *string) (*Match, error)
	GetMatchFunc      func(ctx context.Context, matchID string) (*Match, error)
	CompleteMatchFunc func(ctx context.Context, matchID string, player1Score, player2Score int) (*Match, error)
	RecalculateFunc   func(ctx context.Context, matchID, winnerID string) (*Result, error)

	RecalculateCalls [][2]string
}

var _ Store = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) CreateMatch(ctx context.Context, player1ID, player2ID, matchType string, challengeID *string) (*Match, error) {
	if m.CreateMatchFunc != nil {
		return m.CreateMatchFunc(ctx, player1ID, player2ID, matchType, challengeID)
	}
	return &Match{ID: "mock-match", Player1ID: player1ID, Player2ID: player2ID, MatchType: matchType, ChallengeID: challengeID}, nil
}

func (m *Mock) GetMatch(ctx context.Context, matchID string) (*Match, error) {
	if m.GetMatchFunc != nil {
		return m.GetMatchFunc(ctx, matchID)
	}
	return nil, ErrMatchNotFound
}

func (m *Mock) CompleteMatch(ctx context.Context, matchID string, player1Score, player2Score int) (*Match, error) {
	if m.CompleteMatchFunc != nil {
		return m.CompleteMatchFunc(ctx, matchID, player1Score, player2Score)
	}
	return nil, ErrMatchNotFound
}

func (m *Mock) Recalculate(ctx context.Context, matchID, winnerID string) (*Result, error) {
	m.mu.Lock()
	m.RecalculateCalls = append(m.RecalculateCalls, [2]string{matchID, winnerID})
	m.mu.Unlock()
	if m.RecalculateFunc != nil {
		return m.RecalculateFunc(ctx, matchID, winnerID)
	}
	return nil, ErrMatchNotFound
}
