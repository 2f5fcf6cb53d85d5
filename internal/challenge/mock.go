package challenge

import (
	"context"
	"sync"
	"time"
)

// Mock is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	HasPendingFunc  func(ctx context.Context, challengerID, challengedID string, now time.Time) (bool, error)
	CreateFunc      func(ctx context.Context, c *Challenge) error
	GetFunc         func(ctx context.Context, challengeID string) (*Challenge, error)
	RespondFunc     func(ctx context.Context, challengeID, userID string, accept bool, now time.Time) (*Challenge, error)
	ExpireStaleFunc func(ctx context.Context, now time.Time) (int64, error)

	HasPendingCalls  [][2]string
	CreateCalls      []*Challenge
	ExpireStaleCalls []time.Time
}

var _ Store = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) HasPending(ctx context.Context, challengerID, challengedID string, now time.Time) (bool, error) {
	m.mu.Lock()
	m.HasPendingCalls = append(m.HasPendingCalls, [2]string{challengerID, challengedID})
	m.mu.Unlock()
	if m.HasPendingFunc != nil {
		return m.HasPendingFunc(ctx, challengerID, challengedID, now)
	}
	return false, nil
}

func (m *Mock) Create(ctx context.Context, c *Challenge) error {
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, c)
	m.mu.Unlock()
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *Mock) Get(ctx context.Context, challengeID string) (*Challenge, error) {
	if m.GetFunc != nil {
		return m.GetFunc(ctx, challengeID)
	}
	return nil, ErrNotFound
}

func (m *Mock) Respond(ctx context.Context, challengeID, userID string, accept bool, now time.Time) (*Challenge, error) {
	if m.RespondFunc != nil {
		return m.RespondFunc(ctx, challengeID, userID, accept, now)
	}
	return nil, ErrNotFound
}

func (m *Mock) ExpireStale(ctx context.Context, now time.Time) (int64, error) {
	m.mu.Lock()
	m.ExpireStaleCalls = append(m.ExpireStaleCalls, now)
	m.mu.Unlock()
	if m.ExpireStaleFunc != nil {
		return m.ExpireStaleFunc(ctx, now)
	}
	return 0, nil
}
