package matchmaking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mauv0809/pingponghub/internal/challenge"
	"github.com/mauv0809/pingponghub/internal/metrics"
	"github.com/mauv0809/pingponghub/internal/notifier"
	"github.com/mauv0809/pingponghub/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService(players *profile.Mock, challenges *challenge.Mock, n *notifier.Mock, m *metrics.Mock) *Service {
	s := NewService(players, challenges, n, m)
	s.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return s
}

func TestFindOpponents_PlayerNotFound(t *testing.T) {
	players := profile.NewMock()
	m := metrics.NewMock()
	s := newTestService(players, challenge.NewMock(), notifier.NewMock(), m)

	_, err := s.FindOpponents(context.Background(), NewSearchParams("ghost"))

	assert.ErrorIs(t, err, ErrPlayerNotFound)
	assert.Empty(t, players.FindInRatingBandCalls)
	assert.Equal(t, 1, m.MatchmakingSearches())
}

func TestFindOpponents_InvalidParams(t *testing.T) {
	s := newTestService(profile.NewMock(), challenge.NewMock(), notifier.NewMock(), metrics.NewMock())

	params := NewSearchParams("p1")
	params.RatingRange = -1
	_, err := s.FindOpponents(context.Background(), params)
	assert.ErrorIs(t, err, ErrInvalidParams)

	params = NewSearchParams("p1")
	params.MaxDistanceKm = -5
	_, err = s.FindOpponents(context.Background(), params)
	assert.ErrorIs(t, err, ErrInvalidParams)
}

func TestFindOpponents_StoreError(t *testing.T) {
	players := profile.NewMock()
	players.GetPlayerFunc = func(ctx context.Context, playerID string) (*profile.Player, error) {
		return nil, errors.New("db is gone")
	}
	s := newTestService(players, challenge.NewMock(), notifier.NewMock(), metrics.NewMock())

	_, err := s.FindOpponents(context.Background(), NewSearchParams("p1"))

	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrPlayerNotFound)
}

func TestFindOpponents_RanksWithinBand(t *testing.T) {
	players := profile.NewMock()
	players.GetPlayerFunc = func(ctx context.Context, playerID string) (*profile.Player, error) {
		return &profile.Player{ID: "p1", Username: "alice", RatingMR: 1200, Level: 3}, nil
	}
	players.FindInRatingBandFunc = func(ctx context.Context, excludeID string, minRating, maxRating, limit int) ([]profile.Player, error) {
		return []profile.Player{
			{ID: "p2", Username: "bob", RatingMR: 1250, Level: 3},
			{ID: "p3", Username: "carol", RatingMR: 1200, Level: 3, IsOnline: true},
		}, nil
	}
	challenges := challenge.NewMock()
	s := newTestService(players, challenges, notifier.NewMock(), metrics.NewMock())

	params := NewSearchParams("p1")
	params.RatingRange = 150
	res, err := s.FindOpponents(context.Background(), params)

	require.NoError(t, err)
	require.Len(t, players.FindInRatingBandCalls, 1)
	call := players.FindInRatingBandCalls[0]
	assert.Equal(t, "p1", call.ExcludeID)
	assert.Equal(t, 1050, call.MinRating)
	assert.Equal(t, 1350, call.MaxRating)
	assert.Equal(t, candidateLimit, call.Limit)

	assert.Equal(t, 1200, res.PlayerRating)
	assert.Equal(t, 150, res.SearchParams.RatingRange)
	require.Len(t, res.Opponents, 2)
	assert.Equal(t, "p3", res.Opponents[0].ID)
	assert.Equal(t, 120.0, res.Opponents[0].Score)
	assert.Equal(t, "p2", res.Opponents[1].ID)
	assert.Equal(t, 50, res.Opponents[1].RatingDiff)
	assert.Nil(t, res.ChallengeCreated)
	assert.Empty(t, challenges.CreateCalls)
}

func TestFindOpponents_AutoChallenge(t *testing.T) {
	alice := profile.Player{ID: "p1", Username: "alice", RatingMR: 1200}
	bob := profile.Player{ID: "p2", Username: "bob", RatingMR: 1210}

	setup := func() (*profile.Mock, *challenge.Mock, *notifier.Mock, *metrics.Mock) {
		players := profile.NewMock()
		players.GetPlayerFunc = func(ctx context.Context, playerID string) (*profile.Player, error) {
			p := alice
			return &p, nil
		}
		players.FindInRatingBandFunc = func(ctx context.Context, excludeID string, minRating, maxRating, limit int) ([]profile.Player, error) {
			return []profile.Player{bob}, nil
		}
		return players, challenge.NewMock(), notifier.NewMock(), metrics.NewMock()
	}

	params := NewSearchParams("p1")
	params.AutoCreateChallenge = true
	params.MatchType = "ranked"

	t.Run("creates and announces", func(t *testing.T) {
		players, challenges, n, m := setup()
		s := newTestService(players, challenges, n, m)

		res, err := s.FindOpponents(context.Background(), params)

		require.NoError(t, err)
		require.NotNil(t, res.ChallengeCreated)
		assert.Equal(t, "p1", res.ChallengeCreated.ChallengerID)
		assert.Equal(t, "p2", res.ChallengeCreated.ChallengedID)
		assert.Equal(t, "ranked", res.ChallengeCreated.MatchType)
		assert.Equal(t, challenge.StatusPending, res.ChallengeCreated.Status)
		assert.Equal(t, s.now().Add(challenge.DefaultTTL), res.ChallengeCreated.ExpiresAt)
		require.Len(t, challenges.CreateCalls, 1)
		require.Len(t, n.ChallengeCreatedCalls, 1)
		assert.Equal(t, "bob", n.ChallengeCreatedCalls[0].Challenged.Username)
		assert.Equal(t, 1, m.ChallengesCreated())
	})

	t.Run("insert failure keeps the search result", func(t *testing.T) {
		players, challenges, n, m := setup()
		challenges.CreateFunc = func(ctx context.Context, c *challenge.Challenge) error {
			return errors.New("constraint failed")
		}
		s := newTestService(players, challenges, n, m)

		res, err := s.FindOpponents(context.Background(), params)

		require.NoError(t, err)
		assert.Len(t, res.Opponents, 1)
		assert.Nil(t, res.ChallengeCreated)
		assert.Empty(t, n.ChallengeCreatedCalls)
		assert.Equal(t, 0, m.ChallengesCreated())
	})

	t.Run("pending challenge is not duplicated", func(t *testing.T) {
		players, challenges, n, m := setup()
		var checkedAt time.Time
		challenges.HasPendingFunc = func(ctx context.Context, challengerID, challengedID string, now time.Time) (bool, error) {
			checkedAt = now
			return true, nil
		}
		s := newTestService(players, challenges, n, m)

		res, err := s.FindOpponents(context.Background(), params)

		require.NoError(t, err)
		assert.Equal(t, s.now(), checkedAt)
		assert.Nil(t, res.ChallengeCreated)
		assert.Empty(t, challenges.CreateCalls)
	})

	t.Run("notifier failure still returns the challenge", func(t *testing.T) {
		players, challenges, n, m := setup()
		n.ChallengeCreatedFunc = func(ctx context.Context, c *challenge.Challenge, challenger, challenged profile.Player) error {
			return errors.New("slack down")
		}
		s := newTestService(players, challenges, n, m)

		res, err := s.FindOpponents(context.Background(), params)

		require.NoError(t, err)
		assert.NotNil(t, res.ChallengeCreated)
	})

	t.Run("no opponents means no challenge", func(t *testing.T) {
		players, challenges, n, m := setup()
		players.FindInRatingBandFunc = func(ctx context.Context, excludeID string, minRating, maxRating, limit int) ([]profile.Player, error) {
			return []profile.Player{}, nil
		}
		s := newTestService(players, challenges, n, m)

		res, err := s.FindOpponents(context.Background(), params)

		require.NoError(t, err)
		assert.Empty(t, res.Opponents)
		assert.NotNil(t, res.Opponents)
		assert.Nil(t, res.ChallengeCreated)
		assert.Empty(t, challenges.HasPendingCalls)
	})
}
