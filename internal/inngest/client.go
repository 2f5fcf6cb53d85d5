package inngest

import (
	"context"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/inngest/inngestgo"
	"github.com/inngest/inngestgo/step"
	"github.com/mauv0809/pingponghub/internal/scheduler"
)

var _ scheduler.Scheduler = (*client)(nil)

// New registers the challenge sweep as an Inngest cron function. Inngest calls
// back into the handler returned by Serve, so Start and Shutdown have nothing to do.
func New(inngestClient inngestgo.Client, cronExpr string, sweeper Sweeper) (InngestClient, error) {
	c := &client{
		inngestClient: inngestClient,
		sweeper:       sweeper,
	}
	if _, err := c.createSweepFunction(cronExpr); err != nil {
		return nil, err
	}
	return c, nil
}

func (i *client) createSweepFunction(cronExpr string) (inngestgo.ServableFunction, error) {
	config := inngestgo.FunctionOpts{
		ID:   sweepFunctionID,
		Name: "Expire stale challenges",
	}
	f, err := inngestgo.CreateFunction(
		i.inngestClient,
		config,
		inngestgo.CronTrigger(cronExpr),
		func(ctx context.Context, input inngestgo.Input[map[string]any]) (any, error) {
			// Wrapped in a step so Inngest retries the sweep on failure.
			expired, err := step.Run(ctx, "expire-stale", func(ctx context.Context) (int64, error) {
				return i.sweeper.Run(ctx)
			})
			if err != nil {
				return nil, err
			}
			return SweepOutput{Expired: expired}, nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create function %s: %w", sweepFunctionID, err)
	}
	return f, nil
}

func (i *client) Serve() http.Handler {
	return i.inngestClient.Serve()
}

func (i *client) Start() error {
	log.Info("Challenge sweep is scheduled by Inngest", "function", sweepFunctionID)
	return nil
}

func (i *client) Shutdown() error {
	return nil
}
