package bootstrap

import (
	"context"
	"log/slog"

	"parking-engine/internal/pkg/config"
	"parking-engine/internal/usecase/commands"

	"go.uber.org/fx"
)

var SeedModule = fx.Module("seed",
	fx.Invoke(SeedSystemAdmin),
)

func SeedSystemAdmin(lc fx.Lifecycle, cfg config.Config, auth commands.AuthCommands, logger *slog.Logger) {
	if cfg.Admin.Username == "" || cfg.Admin.Password == "" {
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := auth.EnsureSystemAdmin(ctx, cfg.Admin.Username, cfg.Admin.Password); err != nil {
				return err
			}
			logger.Info("system administrator ensured", "username", cfg.Admin.Username)
			return nil
		},
	})
}
