package bootstrap

import (
	"context"
	"log/slog"

	"parking-engine/internal/domain/booking"
	"parking-engine/internal/infra/metrics"
	"parking-engine/internal/infra/occupancy"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/pkg/config"
	"parking-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

var InfraModule = fx.Module("infra",
	fx.Provide(
		clock.NewRealClock,
		booking.NewRandomCodeGenerator,
		metrics.New,
		func(m *metrics.Metrics) shared.EngineMetrics { return m },
		NewOccupancyPublisher,
	),
)

// NewOccupancyPublisher falls back to a no-op when REDIS_URL is unset.
func NewOccupancyPublisher(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.OccupancyPublisher, error) {
	if cfg.Redis.URL == "" {
		logger.Info("occupancy publishing disabled")
		return shared.NoopPublisher{}, nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := occupancy.NewRedisClient(ctx, cfg.Redis.URL)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})
	pub := occupancy.NewPublisher(client, cfg.Redis)
	logger.Info("occupancy publishing enabled", "channel", pub.Channel())
	return pub, nil
}
