package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-co-op/gocron/v2"
)

const sweepTimeout = 30 * time.Second

// local runs the sweep on an in-process gocron scheduler.
type local struct {
	scheduler gocron.Scheduler
	job       gocron.Job
}

// NewLocal creates a Scheduler running sweeper on the crontab expression cronExpr.
func NewLocal(cronExpr string, sweeper *Sweeper) (Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create scheduler: %w", err)
	}

	job, err := s.NewJob(
		gocron.CronJob(cronExpr, false),
		gocron.NewTask(func() {
			ctx, cancel := context.WithTimeout(context.Background(), sweepTimeout)
			defer cancel()
			if _, err := sweeper.Run(ctx); err != nil {
				log.Error("Challenge sweep failed", "error", err)
			}
		}),
		gocron.WithName("expire-challenges"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		_ = s.Shutdown()
		return nil, fmt.Errorf("failed to schedule challenge sweep %q: %w", cronExpr, err)
	}

	return &local{scheduler: s, job: job}, nil
}

func (l *local) Start() error {
	l.scheduler.Start()
	log.Info("Started challenge sweep scheduler", "job", l.job.Name())
	return nil
}

func (l *local) Shutdown() error {
	return l.scheduler.Shutdown()
}
