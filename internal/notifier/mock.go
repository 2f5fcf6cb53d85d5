package notifier

import (
	"context"
	"sync"

	"github.com/mauv0809/pingponghub/internal/badge"
	"github.com/mauv0809/pingponghub/internal/challenge"
	"github.com/mauv0809/pingponghub/internal/profile"
	"github.com/mauv0809/pingponghub/internal/rating"
)

// Mock is a mock implementation of the Notifier interface for testing.
// It is safe for concurrent use.
type Mock struct {
	mu sync.Mutex

	// Spies
	ChallengeCreatedFunc func(ctx context.Context, c *challenge.Challenge, challenger, challenged profile.Player) error
	MatchRatedFunc       func(ctx context.Context, result *rating.Result, winner, loser profile.Player) error
	BadgesAwardedFunc    func(ctx context.Context, player profile.Player, badges []badge.Badge) error

	// Call records
	ChallengeCreatedCalls []struct {
		Challenge  *challenge.Challenge
		Challenger profile.Player
		Challenged profile.Player
	}
	MatchRatedCalls []struct {
		Result *rating.Result
		Winner profile.Player
		Loser  profile.Player
	}
	BadgesAwardedCalls []struct {
		Player profile.Player
		Badges []badge.Badge
	}
}

var _ Notifier = (*Mock)(nil)

// NewMock creates a new mock instance.
func NewMock() *Mock {
	return &Mock{}
}

// Reset clears all call records.
func (m *Mock) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ChallengeCreatedCalls = nil
	m.MatchRatedCalls = nil
	m.BadgesAwardedCalls = nil
}

func (m *Mock) ChallengeCreated(ctx context.Context, c *challenge.Challenge, challenger, challenged profile.Player) error {
	m.mu.Lock()
	m.ChallengeCreatedCalls = append(m.ChallengeCreatedCalls, struct {
		Challenge  *challenge.Challenge
		Challenger profile.Player
		Challenged profile.Player
	}{c, challenger, challenged})
	m.mu.Unlock()
	if m.ChallengeCreatedFunc != nil {
		return m.ChallengeCreatedFunc(ctx, c, challenger, challenged)
	}
	return nil
}

func (m *Mock) MatchRated(ctx context.Context, result *rating.Result, winner, loser profile.Player) error {
	m.mu.Lock()
	m.MatchRatedCalls = append(m.MatchRatedCalls, struct {
		Result *rating.Result
		Winner profile.Player
		Loser  profile.Player
	}{result, winner, loser})
	m.mu.Unlock()
	if m.MatchRatedFunc != nil {
		return m.MatchRatedFunc(ctx, result, winner, loser)
	}
	return nil
}

func (m *Mock) BadgesAwarded(ctx context.Context, player profile.Player, badges []badge.Badge) error {
	m.mu.Lock()
	m.BadgesAwardedCalls = append(m.BadgesAwardedCalls, struct {
		Player profile.Player
		Badges []badge.Badge
	}{player, badges})
	m.mu.Unlock()
	if m.BadgesAwardedFunc != nil {
		return m.BadgesAwardedFunc(ctx, player, badges)
	}
	return nil
}
