package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/mauv0809/pingponghub/internal/challenge"
	"github.com/mauv0809/pingponghub/internal/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSweeper_Run(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	t.Run("records expired challenges", func(t *testing.T) {
		store := challenge.NewMock()
		store.ExpireStaleFunc = func(ctx context.Context, at time.Time) (int64, error) {
			assert.Equal(t, now, at)
			return 3, nil
		}
		m := metrics.NewMock()
		s := NewSweeper(store, m)
		s.now = func() time.Time { return now }

		n, err := s.Run(context.Background())

		require.NoError(t, err)
		assert.EqualValues(t, 3, n)
		assert.Equal(t, 3, m.ChallengesExpired())
	})

	t.Run("store failure", func(t *testing.T) {
		store := challenge.NewMock()
		store.ExpireStaleFunc = func(ctx context.Context, at time.Time) (int64, error) {
			return 0, errors.New("locked")
		}
		m := metrics.NewMock()

		_, err := NewSweeper(store, m).Run(context.Background())

		assert.Error(t, err)
		assert.Equal(t, 0, m.ChallengesExpired())
	})
}

func TestLocal(t *testing.T) {
	ran := make(chan struct{}, 1)
	store := challenge.NewMock()
	store.ExpireStaleFunc = func(ctx context.Context, at time.Time) (int64, error) {
		select {
		case ran <- struct{}{}:
		default:
		}
		return 0, nil
	}

	s, err := NewLocal("*/5 * * * *", NewSweeper(store, metrics.NewMock()))
	require.NoError(t, err)
	require.NoError(t, s.Start())
	defer s.Shutdown()

	require.NoError(t, s.(*local).job.RunNow())
	select {
	case <-ran:
	case <-time.After(5 * time.Second):
		t.Fatal("sweep did not run")
	}
}

func TestLocal_InvalidCron(t *testing.T) {
	_, err := NewLocal("every now and then", NewSweeper(challenge.NewMock(), metrics.NewMock()))
	assert.Error(t, err)
}
