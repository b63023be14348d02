package bootstrap

import (
	"parking-engine/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
		func(cfg config.Config) config.BillingConfig { return cfg.Billing },
	),
)
