package bootstrap

import (
	"parking-engine/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	StoreModule,
	InfraModule,
	JWTModule,
	components.UseCaseModule,
	components.HandlerModule,
	SeedModule,
	SchedulerModule,
)
