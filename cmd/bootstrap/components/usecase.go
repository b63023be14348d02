package components

import (
	"parking-engine/internal/usecase"
	"parking-engine/internal/usecase/commands"
	"parking-engine/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	commands.NewRules,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewLotCommands,
		commands.NewAllocatorCommands,
		commands.NewVehicleCommands,
		commands.NewSessionCommands,
		commands.NewBookingCommands,
		commands.NewBillingCommands,
		commands.NewSweeper,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewUserQueries,
		queries.NewLotQueries,
		queries.NewVehicleQueries,
		queries.NewSessionQueries,
		queries.NewBookingQueries,
		queries.NewBillingQueries,
		queries.NewAnalyticsQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
		usecase.NewAuthorizer,
	),
)
