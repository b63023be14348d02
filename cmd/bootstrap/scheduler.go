package bootstrap

import (
	"context"
	"log/slog"

	"parking-engine/internal/infra/scheduler"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/pkg/config"
	"parking-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Invoke(StartScheduler),
)

func StartScheduler(lc fx.Lifecycle, cfg config.Config, sweeper commands.Sweeper, clk clock.Clock, logger *slog.Logger) error {
	if !cfg.Sweeper.Enabled {
		logger.Info("policy sweeper disabled")
		return nil
	}
	s, err := scheduler.New(sweeper, clk, cfg.Sweeper)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			return s.Start()
		},
		OnStop: func(_ context.Context) error {
			return s.Stop()
		},
	})
	return nil
}
