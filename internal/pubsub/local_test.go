package pubsub

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEvent struct {
	MatchID     string    `msgpack:"match_id"`
	CompletedAt time.Time `msgpack:"completed_at"`
}

func TestLocalClient_RoundTrip(t *testing.T) {
	c := NewLocal()
	sent := testEvent{MatchID: "m1", CompletedAt: time.Unix(1700000000, 0).UTC()}

	var got testEvent
	c.Subscribe(EventMatchCompleted, func(ctx context.Context, data []byte) error {
		return c.ProcessMessage(data, &got)
	})

	require.NoError(t, c.SendMessage(context.Background(), EventMatchCompleted, sent))
	assert.Equal(t, sent.MatchID, got.MatchID)
	assert.True(t, sent.CompletedAt.Equal(got.CompletedAt))
}

func TestLocalClient_NoSubscribers(t *testing.T) {
	c := NewLocal()
	assert.NoError(t, c.SendMessage(context.Background(), EventMatchCompleted, testEvent{MatchID: "m1"}))
}

func TestLocalClient_HandlerErrors(t *testing.T) {
	c := NewLocal()
	boom := errors.New("boom")
	calls := 0
	c.Subscribe(EventMatchCompleted, func(ctx context.Context, data []byte) error {
		calls++
		return boom
	})
	c.Subscribe(EventMatchCompleted, func(ctx context.Context, data []byte) error {
		calls++
		return nil
	})

	err := c.SendMessage(context.Background(), EventMatchCompleted, testEvent{MatchID: "m1"})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 2, calls, "every subscriber sees the message")
}

func TestProcessMessage_InvalidPayload(t *testing.T) {
	var evt testEvent
	assert.Error(t, NewLocal().ProcessMessage([]byte{0xc1}, &evt))
}
