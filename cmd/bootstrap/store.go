package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"parking-engine/internal/infra/memstore"
	"parking-engine/internal/infra/postgres"
	"parking-engine/internal/pkg/config"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/usecase/shared"

	"go.uber.org/fx"
)

const connectTimeout = 30 * time.Second

var StoreModule = fx.Module("store",
	fx.Provide(
		NewUnitOfWork,
	),
)

// NewUnitOfWork picks the backing store named by STORE_DRIVER.
func NewUnitOfWork(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (shared.UnitOfWork, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		logger.Warn("using in-memory store; state is lost on restart")
		return memstore.NewUnitOfWork(memstore.NewStore(cfg.Store.LockTimeout)), nil
	case config.StoreDriverPostgres:
		ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
		defer cancel()

		pool, cleanup, err := postgres.Connect(ctx, cfg.DB)
		if err != nil {
			return nil, err
		}
		lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				cleanup()
				return nil
			},
		})
		if cfg.DB.Migrate {
			if err := postgres.Migrate(ctx, pool); err != nil {
				return nil, err
			}
			logger.Info("database schema applied", "db", cfg.DB.DBName)
		}
		return postgres.NewStore(pool, cfg.Store.MaxRetries, cfg.Store.LockTimeout), nil
	default:
		return nil, errs.Newf("unknown store driver %q", cfg.Store.Driver)
	}
}
