package components

import (
	"parking-engine/internal/handler"
	"parking-engine/internal/handler/api"
	"parking-engine/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewLotHandler,
		api.NewVehicleHandler,
		api.NewSessionHandler,
		api.NewBookingHandler,
		api.NewBillingHandler,
		api.NewAnalyticsHandler,
		api.NewAdminHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
