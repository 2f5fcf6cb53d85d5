package badge_test

import (
	"context"
	"testing"

	"github.com/mauv0809/pingponghub/internal/badge"
	"github.com/mauv0809/pingponghub/internal/database"
	"github.com/mauv0809/pingponghub/internal/profile"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (badge.Store, profile.PlayerStore, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)
	return badge.New(db), profile.New(db), teardown
}

func TestCreateBadge(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	b, err := store.CreateBadge(ctx, badge.Badge{Name: "First Serve!", Criterion: badge.CriterionTotalMatches, Threshold: 1})
	require.NoError(t, err)
	assert.Equal(t, "first-serve", b.Code)
	assert.Equal(t, badge.RarityCommon, b.Rarity)
	assert.NotEmpty(t, b.ID)

	_, err = store.CreateBadge(ctx, badge.Badge{Name: "First Serve!", Criterion: badge.CriterionTotalMatches, Threshold: 1})
	assert.Error(t, err, "codes are unique")

	_, err = store.CreateBadge(ctx, badge.Badge{Name: "Mystery", Criterion: "streak", Threshold: 3})
	assert.ErrorIs(t, err, badge.ErrUnknownCriterion)
}

func TestEvaluate(t *testing.T) {
	store, players, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	require.NoError(t, players.UpsertPlayer(ctx, profile.Player{
		ID: "alice", Username: "alice", RatingMR: 1250, Level: 4, TotalMatches: 12, Wins: 4,
	}))

	defs := []badge.Badge{
		{Name: "First Serve", Criterion: badge.CriterionTotalMatches, Threshold: 1},
		{Name: "Regular", Criterion: badge.CriterionTotalMatches, Threshold: 10},
		{Name: "Veteran", Criterion: badge.CriterionTotalMatches, Threshold: 100},
		{Name: "Five Wins", Criterion: badge.CriterionWins, Threshold: 5},
		{Name: "Rising Star", Criterion: badge.CriterionRating, Threshold: 1200},
		{Name: "Level Five", Criterion: badge.CriterionLevel, Threshold: 5},
	}
	codes := map[string]string{}
	for _, d := range defs {
		b, err := store.CreateBadge(ctx, d)
		require.NoError(t, err)
		codes[b.ID] = b.Code
	}

	ids, err := store.Evaluate(ctx, "alice")
	require.NoError(t, err)
	var got []string
	for _, id := range ids {
		got = append(got, codes[id])
	}
	assert.Equal(t, []string{"first-serve", "regular", "rising-star"}, got)

	t.Run("second evaluation awards nothing", func(t *testing.T) {
		ids, err := store.Evaluate(ctx, "alice")
		require.NoError(t, err)
		assert.NotNil(t, ids)
		assert.Empty(t, ids)
	})

	t.Run("user badges", func(t *testing.T) {
		held, err := store.GetUserBadges(ctx, "alice")
		require.NoError(t, err)
		assert.Len(t, held, 3)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := store.Evaluate(ctx, "ghost")
		assert.ErrorIs(t, err, badge.ErrUserNotFound)
	})
}

func TestGetBadges_Empty(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	badges, err := store.GetBadges(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, badges)
	assert.Empty(t, badges)
}
