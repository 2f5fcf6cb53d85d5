package profile

import (
	"context"
	"sync"
)

// Mock is a mock implementation of the PlayerStore interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	GetPlayerFunc        func(ctx context.Context, playerID string) (*Player, error)
	GetPlayersFunc       func(ctx context.Context, playerIDs []string) ([]Player, error)
	FindInRatingBandFunc func(ctx context.Context, excludeID string, minRating, maxRating, limit int) ([]Player, error)
	UpsertPlayerFunc     func(ctx context.Context, player Player) error
	SetOnlineFunc        func(ctx context.Context, playerID string, online bool) error

	FindInRatingBandCalls []FindInRatingBandCall
	UpsertPlayerCalls     []Player
}

// FindInRatingBandCall holds the arguments for a call to FindInRatingBand.
type FindInRatingBandCall struct {
	ExcludeID string
	MinRating int
	MaxRating int
	Limit     int
}

var _ PlayerStore = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) GetPlayer(ctx context.Context, playerID string) (*Player, error) {
	if m.GetPlayerFunc != nil {
		return m.GetPlayerFunc(ctx, playerID)
	}
	return nil, ErrNotFound
}

func (m *Mock) GetPlayers(ctx context.Context, playerIDs []string) ([]Player, error) {
	if m.GetPlayersFunc != nil {
		return m.GetPlayersFunc(ctx, playerIDs)
	}
	return []Player{}, nil
}

func (m *Mock) FindInRatingBand(ctx context.Context, excludeID string, minRating, maxRating, limit int) ([]Player, error) {
	m.mu.Lock()
	m.FindInRatingBandCalls = append(m.FindInRatingBandCalls, FindInRatingBandCall{excludeID, minRating, maxRating, limit})
	m.mu.Unlock()
	if m.FindInRatingBandFunc != nil {
		return m.FindInRatingBandFunc(ctx, excludeID, minRating, maxRating, limit)
	}
	return []Player{}, nil
}

func (m *Mock) UpsertPlayer(ctx context.Context, player Player) error {
	m.mu.Lock()
	m.UpsertPlayerCalls = append(m.UpsertPlayerCalls, player)
	m.mu.Unlock()
	if m.UpsertPlayerFunc != nil {
		return m.UpsertPlayerFunc(ctx, player)
	}
	return nil
}

func (m *Mock) SetOnline(ctx context.Context, playerID string, online bool) error {
	if m.SetOnlineFunc != nil {
		return m.SetOnlineFunc(ctx, playerID, online)
	}
	return nil
}
