package inngest

import (
	"context"

	"github.com/inngest/inngestgo"
)

const sweepFunctionID = "expire-challenges"

// Sweeper performs a single challenge sweep.
type Sweeper interface {
	Run(ctx context.Context) (int64, error)
}

type client struct {
	inngestClient inngestgo.Client
	sweeper       Sweeper
}

// SweepOutput is the result reported back to Inngest for each sweep run.
type SweepOutput struct {
	Expired int64 `json:"expired"`
}
