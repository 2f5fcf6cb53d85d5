package rating_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/mauv0809/pingponghub/internal/database"
	"github.com/mauv0809/pingponghub/internal/profile"
	"github.com/mauv0809/pingponghub/internal/rating"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*sql.DB, rating.Store, profile.PlayerStore, func()) {
	t.Helper()

	db, teardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	players := profile.New(db)
	ctx := context.Background()
	require.NoError(t, players.UpsertPlayer(ctx, profile.Player{ID: "alice", Username: "alice", RatingMR: 1500}))
	require.NoError(t, players.UpsertPlayer(ctx, profile.Player{ID: "bob", Username: "bob", RatingMR: 1500}))
	require.NoError(t, players.UpsertPlayer(ctx, profile.Player{ID: "carol", Username: "carol", RatingMR: 1000}))
	return db, rating.New(db), players, teardown
}

func TestRecalculate(t *testing.T) {
	db, store, players, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	m, err := store.CreateMatch(ctx, "alice", "bob", "casual", nil)
	require.NoError(t, err)

	res, err := store.Recalculate(ctx, m.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, &rating.Result{
		MatchID:            m.ID,
		WinnerID:           "alice",
		LoserID:            "bob",
		WinnerRatingBefore: 1500,
		WinnerRatingAfter:  1516,
		LoserRatingBefore:  1500,
		LoserRatingAfter:   1484,
		RatingChange:       16,
	}, res)

	alice, err := players.GetPlayer(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 1516, alice.RatingMR)
	assert.Equal(t, 1, alice.TotalMatches)
	assert.Equal(t, 1, alice.Wins)
	assert.Equal(t, 0, alice.Losses)

	bob, err := players.GetPlayer(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 1484, bob.RatingMR)
	assert.Equal(t, 1, bob.Losses)

	stored, err := store.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.WinnerID)
	assert.Equal(t, "alice", *stored.WinnerID)
	assert.NotNil(t, stored.RatedAt)
	assert.NotNil(t, stored.CompletedAt)

	var history int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM rating_history WHERE match_id = ?`, m.ID).Scan(&history))
	assert.Equal(t, 2, history)

	t.Run("already rated", func(t *testing.T) {
		_, err := store.Recalculate(ctx, m.ID, "alice")
		assert.ErrorIs(t, err, rating.ErrAlreadyRated)

		alice, err := players.GetPlayer(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, 1516, alice.RatingMR)
	})
}

func TestRecalculate_Errors(t *testing.T) {
	_, store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	_, err := store.Recalculate(ctx, "missing", "alice")
	assert.ErrorIs(t, err, rating.ErrMatchNotFound)

	m, err := store.CreateMatch(ctx, "alice", "bob", "casual", nil)
	require.NoError(t, err)

	_, err = store.Recalculate(ctx, m.ID, "carol")
	assert.ErrorIs(t, err, rating.ErrWinnerNotInMatch)
}

func TestCompleteMatch(t *testing.T) {
	_, store, _, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	challengeID := "ch-1"
	m, err := store.CreateMatch(ctx, "alice", "carol", "ranked", &challengeID)
	require.NoError(t, err)

	_, err = store.CompleteMatch(ctx, m.ID, 2, 2)
	assert.ErrorIs(t, err, rating.ErrTiedScore)

	_, err = store.CompleteMatch(ctx, "missing", 3, 1)
	assert.ErrorIs(t, err, rating.ErrMatchNotFound)

	done, err := store.CompleteMatch(ctx, m.ID, 1, 3)
	require.NoError(t, err)
	require.NotNil(t, done.WinnerID)
	assert.Equal(t, "carol", *done.WinnerID)
	assert.NotNil(t, done.CompletedAt)

	stored, err := store.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Player1Score)
	assert.Equal(t, 3, stored.Player2Score)
	require.NotNil(t, stored.ChallengeID)
	assert.Equal(t, "ch-1", *stored.ChallengeID)
	assert.Nil(t, stored.RatedAt)

	_, err = store.CompleteMatch(ctx, m.ID, 3, 1)
	assert.ErrorIs(t, err, rating.ErrMatchCompleted)
}

func TestRecalculate_RecordedWinner(t *testing.T) {
	db, store, players, teardown := setupTestDB(t)
	defer teardown()
	ctx := context.Background()

	m, err := store.CreateMatch(ctx, "alice", "bob", "casual", nil)
	require.NoError(t, err)
	_, err = store.CompleteMatch(ctx, m.ID, 3, 1)
	require.NoError(t, err)

	_, err = store.Recalculate(ctx, m.ID, "bob")
	assert.ErrorIs(t, err, rating.ErrWinnerMismatch)

	bob, err := players.GetPlayer(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 1500, bob.RatingMR)
	assert.Equal(t, 0, bob.TotalMatches)

	stored, err := store.GetMatch(ctx, m.ID)
	require.NoError(t, err)
	require.NotNil(t, stored.WinnerID)
	assert.Equal(t, "alice", *stored.WinnerID)
	assert.Nil(t, stored.RatedAt)

	var history int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM rating_history WHERE match_id = ?`, m.ID).Scan(&history))
	assert.Equal(t, 0, history)

	res, err := store.Recalculate(ctx, m.ID, "alice")
	require.NoError(t, err)
	assert.Equal(t, 16, res.RatingChange)
}
