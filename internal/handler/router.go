package handler

import (
	"net/http"

	"parking-engine/internal/domain/user"
	"parking-engine/internal/handler/api"
	"parking-engine/internal/handler/middleware"
	"parking-engine/internal/infra/metrics"
	"parking-engine/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type RouterParams struct {
	fx.In

	Engine    *gin.Engine
	Config    config.Config
	Logger    *middleware.Logger
	Metrics   *metrics.Metrics
	Auth      *middleware.AuthMiddleware
	Users     *api.AuthHandler
	Lots      *api.LotHandler
	Vehicles  *api.VehicleHandler
	Sessions  *api.SessionHandler
	Bookings  *api.BookingHandler
	Billing   *api.BillingHandler
	Analytics *api.AnalyticsHandler
	Admin     *api.AdminHandler
}

func NewRouter(p RouterParams) {
	setupMiddleware(p)
	setupRoutes(p)
}

func setupMiddleware(p RouterParams) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	p.Engine.Use(middleware.CustomRecovery())
	p.Engine.Use(middleware.NewCORSMiddleware(p.Config.CORS))
	p.Engine.Use(p.Logger.LoggingMiddleware())
	p.Engine.Use(middleware.Metrics(p.Metrics))
	p.Engine.Use(middleware.ErrorHandler())
}

func setupRoutes(p RouterParams) {
	engine := p.Engine
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(p.Metrics.Handler()))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	systemAdmin := p.Auth.RequireRole(user.RoleSystemAdmin)
	anyAdmin := p.Auth.RequireRole(user.RoleSystemAdmin, user.RoleLotAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: p.Users.Register},
				{Method: http.MethodPost, Path: "/login", Handler: p.Users.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(p.Auth.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: p.Users.Me},
			})
		}

		secured := apiGroup.Group("")
		secured.Use(p.Auth.RequireAuth())

		addRoutes(secured.Group("/admin"), []route{
			{Method: http.MethodPost, Path: "/users", Handler: p.Users.CreateAdmin, Mw: []gin.HandlerFunc{systemAdmin}},
			{Method: http.MethodPost, Path: "/sweep", Handler: p.Admin.Sweep, Mw: []gin.HandlerFunc{systemAdmin}},
		})

		addRoutes(secured.Group("/lots"), []route{
			{Method: http.MethodPost, Path: "", Handler: p.Lots.Create, Mw: []gin.HandlerFunc{systemAdmin}},
			{Method: http.MethodGet, Path: "", Handler: p.Lots.List},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Lots.Get},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.Lots.Delete, Mw: []gin.HandlerFunc{systemAdmin}},
			{Method: http.MethodGet, Path: "/:id/occupancy", Handler: p.Lots.Occupancy},
			{Method: http.MethodGet, Path: "/:id/spaces", Handler: p.Lots.ListSpaces},
			{Method: http.MethodPost, Path: "/:id/spaces", Handler: p.Lots.AddSpaces, Mw: []gin.HandlerFunc{anyAdmin}},
			{Method: http.MethodPost, Path: "/:id/spaces/acquire", Handler: p.Lots.AcquireSpace, Mw: []gin.HandlerFunc{anyAdmin}},
			{Method: http.MethodPatch, Path: "/:id/rate", Handler: p.Lots.UpdateRate, Mw: []gin.HandlerFunc{anyAdmin}},
			{Method: http.MethodGet, Path: "/:id/stats/occupancy", Handler: p.Analytics.Occupancy, Mw: []gin.HandlerFunc{anyAdmin}},
			{Method: http.MethodGet, Path: "/:id/stats/violations", Handler: p.Analytics.Violations, Mw: []gin.HandlerFunc{anyAdmin}},
			{Method: http.MethodGet, Path: "/:id/stats/revenue", Handler: p.Analytics.Revenue, Mw: []gin.HandlerFunc{anyAdmin}},
		})

		addRoutes(secured.Group("/spaces"), []route{
			{Method: http.MethodPost, Path: "/:id/release", Handler: p.Lots.ReleaseSpace, Mw: []gin.HandlerFunc{anyAdmin}},
		})

		addRoutes(secured.Group("/vehicles"), []route{
			{Method: http.MethodPost, Path: "", Handler: p.Vehicles.Register},
			{Method: http.MethodGet, Path: "", Handler: p.Vehicles.List},
			{Method: http.MethodGet, Path: "/plate/:plate", Handler: p.Vehicles.FindByPlate},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Vehicles.Get},
			{Method: http.MethodPut, Path: "/:id", Handler: p.Vehicles.Update},
			{Method: http.MethodDelete, Path: "/:id", Handler: p.Vehicles.Delete},
			{Method: http.MethodGet, Path: "/:id/session", Handler: p.Vehicles.ActiveSession},
			{Method: http.MethodGet, Path: "/:id/sessions", Handler: p.Vehicles.Sessions},
			{Method: http.MethodGet, Path: "/:id/violations", Handler: p.Vehicles.Violations},
		})

		addRoutes(secured.Group("/sessions"), []route{
			{Method: http.MethodPost, Path: "/enter", Handler: p.Sessions.Enter},
			{Method: http.MethodPost, Path: "/exit", Handler: p.Sessions.Exit},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Sessions.Get},
		})

		addRoutes(secured.Group("/bookings"), []route{
			{Method: http.MethodPost, Path: "", Handler: p.Bookings.Create},
			{Method: http.MethodGet, Path: "", Handler: p.Bookings.List},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Bookings.Get},
			{Method: http.MethodGet, Path: "/code/:code", Handler: p.Bookings.GetByCode},
			{Method: http.MethodPost, Path: "/:id/cancel", Handler: p.Bookings.Cancel},
			{Method: http.MethodPost, Path: "/:id/complete", Handler: p.Bookings.Complete},
		})

		addRoutes(secured.Group("/violations"), []route{
			{Method: http.MethodPost, Path: "", Handler: p.Billing.RecordViolation, Mw: []gin.HandlerFunc{anyAdmin}},
			{Method: http.MethodGet, Path: "/:id", Handler: p.Billing.GetViolation},
			{Method: http.MethodPost, Path: "/:id/pay", Handler: p.Billing.PayFine},
		})

		addRoutes(secured.Group("/payments"), []route{
			{Method: http.MethodPost, Path: "", Handler: p.Billing.Settle},
			{Method: http.MethodGet, Path: "", Handler: p.Billing.ListPayments},
			{Method: http.MethodGet, Path: "/mine", Handler: p.Billing.MyPayments},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		handlers := make([]gin.HandlerFunc, 0, len(r.Mw)+1)
		handlers = append(handlers, r.Mw...)
		handlers = append(handlers, r.Handler)
		g.Handle(r.Method, r.Path, handlers...)
	}
}
