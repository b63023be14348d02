package scheduler

import (
	"context"
	"log/slog"
	"time"

	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/pkg/config"
	"parking-engine/internal/usecase/commands"

	"github.com/go-co-op/gocron/v2"
)

const sweepJobName = "policy-sweeper"

// Scheduler runs the policy sweeper on a fixed interval. Overlapping runs are skipped.
type Scheduler struct {
	inner    gocron.Scheduler
	sweeper  commands.Sweeper
	clock    clock.Clock
	interval time.Duration
	timeout  time.Duration

	ctx    context.Context
	cancel context.CancelFunc
}

func New(sweeper commands.Sweeper, clk clock.Clock, cfg config.SweeperConfig) (*Scheduler, error) {
	inner, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, err
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Scheduler{
		inner:    inner,
		sweeper:  sweeper,
		clock:    clk,
		interval: cfg.Interval,
		timeout:  max(cfg.Interval, time.Minute),
		ctx:      ctx,
		cancel:   cancel,
	}, nil
}

func (s *Scheduler) Start() error {
	j, err := s.inner.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.Sweep),
		gocron.WithName(sweepJobName),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return err
	}
	s.inner.Start()
	slog.Info("sweeper scheduled", "job_id", j.ID().String(), "interval", s.interval.String())
	return nil
}

// Sweep runs one pass of the sweeper.
func (s *Scheduler) Sweep() {
	ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
	defer cancel()

	report, err := s.sweeper.Run(ctx, s.clock.Now())
	if err != nil {
		slog.Error("sweep failed", "error", err.Error())
		return
	}
	if report.Failed > 0 {
		slog.Warn("sweep finished with failures", "failed", report.Failed)
	}
}

func (s *Scheduler) Stop() error {
	s.cancel()
	return s.inner.Shutdown()
}
