package badge

import (
	"context"
	"sync"
)

// Mock is a mock implementation of the Store interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	EvaluateFunc      func(ctx context.Context, userID string) ([]string, error)
	GetBadgesFunc     func(ctx context.Context, badgeIDs []string) ([]Badge, error)
	GetUserBadgesFunc func(ctx context.Context, userID string) ([]Badge, error)
	CreateBadgeFunc   func(ctx context.Context, b Badge) (*Badge, error)

	EvaluateCalls []string
}

var _ Store = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Evaluate(ctx context.Context, userID string) ([]string, error) {
	m.mu.Lock()
	m.EvaluateCalls = append(m.EvaluateCalls, userID)
	m.mu.Unlock()
	if m.EvaluateFunc != nil {
		return m.EvaluateFunc(ctx, userID)
	}
	return []string{}, nil
}

func (m *Mock) GetBadges(ctx context.Context, badgeIDs []string) ([]Badge, error) {
	if m.GetBadgesFunc != nil {
		return m.GetBadgesFunc(ctx, badgeIDs)
	}
	return []Badge{}, nil
}

func (m *Mock) GetUserBadges(ctx context.Context, userID string) ([]Badge, error) {
	if m.GetUserBadgesFunc != nil {
		return m.GetUserBadgesFunc(ctx, userID)
	}
	return []Badge{}, nil
}

func (m *Mock) CreateBadge(ctx context.Context, b Badge) (*Badge, error) {
	if m.CreateBadgeFunc != nil {
		return m.CreateBadgeFunc(ctx, b)
	}
	return &b, nil
}
