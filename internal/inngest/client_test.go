package inngest

import (
	"context"
	"testing"

	"github.com/inngest/inngestgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sweeperMock struct {
	calls int
}

func (s *sweeperMock) Run(ctx context.Context) (int64, error) {
	s.calls++
	return 0, nil
}

func newTestClient(t *testing.T) inngestgo.Client {
	t.Helper()
	dev := true
	c, err := inngestgo.NewClient(inngestgo.ClientOpts{AppID: "pingponghub-test", Dev: &dev})
	require.NoError(t, err)
	return c
}

func TestNew_RegistersSweep(t *testing.T) {
	c, err := New(newTestClient(t), "*/5 * * * *", &sweeperMock{})
	require.NoError(t, err)

	assert.NoError(t, c.Start())
	assert.NoError(t, c.Shutdown())
	assert.NotNil(t, c.Serve())
}
