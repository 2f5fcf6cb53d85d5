package badge

import (
	"context"
	"errors"
	"testing"

	"github.com/mauv0809/pingponghub/internal/metrics"
	"github.com/mauv0809/pingponghub/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// notifierMock is a local mock to avoid an import cycle with the notifier package.
type notifierMock struct {
	err   error
	calls [][]Badge
}

func (n *notifierMock) BadgesAwarded(ctx context.Context, player profile.Player, badges []Badge) error {
	n.calls = append(n.calls, badges)
	return n.err
}

func TestAward(t *testing.T) {
	players := profile.NewMock()
	players.GetPlayerFunc = func(ctx context.Context, playerID string) (*profile.Player, error) {
		return &profile.Player{ID: playerID, Username: "alice"}, nil
	}

	t.Run("nothing new", func(t *testing.T) {
		store := NewMock()
		n := &notifierMock{}
		m := metrics.NewMock()
		s := NewService(store, players, n, m)

		award, err := s.Award(context.Background(), "alice")

		require.NoError(t, err)
		assert.NotNil(t, award.BadgeIDs)
		assert.Empty(t, award.BadgeIDs)
		assert.NotNil(t, award.Badges)
		assert.Empty(t, n.calls)
		assert.Equal(t, 0, m.BadgesAwarded())
	})

	t.Run("new badges", func(t *testing.T) {
		store := NewMock()
		store.EvaluateFunc = func(ctx context.Context, userID string) ([]string, error) {
			return []string{"b1", "b2"}, nil
		}
		store.GetBadgesFunc = func(ctx context.Context, badgeIDs []string) ([]Badge, error) {
			assert.Equal(t, []string{"b1", "b2"}, badgeIDs)
			return []Badge{{ID: "b1", Name: "First Serve"}, {ID: "b2", Name: "Regular"}}, nil
		}
		n := &notifierMock{err: errors.New("slack down")}
		m := metrics.NewMock()
		s := NewService(store, players, n, m)

		award, err := s.Award(context.Background(), "alice")

		require.NoError(t, err, "notification failures never fail the award")
		assert.Equal(t, []string{"b1", "b2"}, award.BadgeIDs)
		assert.Len(t, award.Badges, 2)
		require.Len(t, n.calls, 1)
		assert.Equal(t, 2, m.BadgesAwarded())
	})

	t.Run("unknown user", func(t *testing.T) {
		store := NewMock()
		store.EvaluateFunc = func(ctx context.Context, userID string) ([]string, error) {
			return nil, ErrUserNotFound
		}
		s := NewService(store, players, &notifierMock{}, metrics.NewMock())

		_, err := s.Award(context.Background(), "ghost")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}
