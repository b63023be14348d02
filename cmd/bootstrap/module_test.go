//go:build unit

package bootstrap_test

import (
	"net/http"
	"strings"
	"testing"
	"time"

	"parking-engine/cmd/bootstrap"
	"parking-engine/cmd/bootstrap/components"
	reqdto "parking-engine/internal/handler/dto/request"
	resdto "parking-engine/internal/handler/dto/response"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/pkg/config"
	"parking-engine/internal/usecase/queries"
	"parking-engine/tests/common/authtest"
	"parking-engine/tests/common/builder"
	"parking-engine/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
	"go.uber.org/fx/fxtest"
)

type flowSuite struct {
	suite.Suite
	app    *fxtest.App
	router *gin.Engine
	clock  *clock.MockClock
}

func TestModuleFlowSuite(t *testing.T) {
	suite.Run(t, new(flowSuite))
}

func (s *flowSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig()
	cfg.Admin = config.AdminConfig{Username: "root", Password: "root-password"}
	s.clock = clock.NewMockClock(time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC))

	s.app = fxtest.New(s.T(),
		fx.Provide(
			func() config.Config { return cfg },
			func(cfg config.Config) config.BillingConfig { return cfg.Billing },
			func() *gin.Engine { return gin.New() },
		),
		bootstrap.LoggerModule,
		bootstrap.StoreModule,
		bootstrap.InfraModule,
		bootstrap.JWTModule,
		components.UseCaseModule,
		components.HandlerModule,
		bootstrap.SeedModule,
		bootstrap.SchedulerModule,
		fx.Decorate(func(clock.Clock) clock.Clock { return s.clock }),
		fx.Populate(&s.router),
		fx.NopLogger,
	)
	s.app.RequireStart()
}

func (s *flowSuite) TearDownTest() {
	s.app.RequireStop()
}

func (s *flowSuite) do(method, path string, body any, token string, status int, out any) {
	s.T().Helper()
	rec := httptest.PerformRequest(s.T(), s.router, method, path, body, token)
	httptest.AssertSuccessResponse(s.T(), rec, status, out)
}

func (s *flowSuite) code(method, path string, body any, token string) (int, string) {
	rec := httptest.PerformRequest(s.T(), s.router, method, path, body, token)
	var resp struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	_ = httptest.DecodeResponseBody(s.T(), rec.Body, &resp)
	return rec.Code, resp.Error.Code
}

func (s *flowSuite) TestParkAndPay() {
	admin := authtest.LoginUser(s.T(), s.router, "root", "root-password")

	lotReq := builder.NewLotBuilder().With(func(b *builder.LotBuilder) {
		b.HourlyRate = "12.00"
		b.Capacities = map[string]int{"standard": 1}
	}).BuildRequest()
	var lotView queries.LotView
	s.do(http.MethodPost, "/api/lots", lotReq, admin, http.StatusCreated, &lotView)
	lotPath := "/api/lots/" + lotView.ID.String()

	driver := authtest.RegisterAndLogin(s.T(), s.router, "driver1", "driver-password")

	var car, van queries.VehicleView
	s.do(http.MethodPost, "/api/vehicles", reqdto.VehicleRequest{Plate: "abc 123"}, driver, http.StatusCreated, &car)
	s.do(http.MethodPost, "/api/vehicles", reqdto.VehicleRequest{Plate: "VAN-9"}, driver, http.StatusCreated, &van)

	var entered queries.SessionView
	s.do(http.MethodPost, "/api/sessions/enter",
		reqdto.EnterRequest{VehicleID: car.ID, LotID: lotView.ID}, driver, http.StatusCreated, &entered)
	s.Equal("ACTIVE", entered.Status)

	status, code := s.code(http.MethodPost, "/api/sessions/enter",
		reqdto.EnterRequest{VehicleID: van.ID, LotID: lotView.ID}, driver)
	s.Equal(http.StatusConflict, status)
	s.Equal("NO_CAPACITY", code)

	var occ map[string]queries.OccupancyView
	s.do(http.MethodGet, lotPath+"/occupancy", nil, driver, http.StatusOK, &occ)
	s.Equal(queries.OccupancyView{Occupied: 1, Total: 1, Free: 0}, occ["standard"])

	s.clock.Add(2 * time.Hour)

	var exited resdto.ExitResponse
	s.do(http.MethodPost, "/api/sessions/exit", reqdto.ExitRequest{VehicleID: car.ID}, driver, http.StatusOK, &exited)
	s.Require().NotNil(exited.Session)
	s.Equal("CLOSED", exited.Session.Status)
	s.Equal("24.00", exited.Session.Fee)
	s.Equal("UNPAID", exited.Session.PaymentStatus)
	s.Nil(exited.Violation)

	settle := reqdto.SettlePaymentRequest{
		TargetID:   entered.ID,
		TargetType: "SESSION",
		Amount:     "20.00",
		Method:     "WALLET",
	}
	status, code = s.code(http.MethodPost, "/api/payments", settle, driver)
	s.Equal(http.StatusUnprocessableEntity, status)
	s.Equal("AMOUNT_MISMATCH", code)

	settle.Amount = "24.00"
	var paid queries.PaymentView
	s.do(http.MethodPost, "/api/payments", settle, driver, http.StatusCreated, &paid)
	s.Equal("SUCCEEDED", paid.Status)
	s.NotEmpty(paid.TransactionNo)

	status, code = s.code(http.MethodPost, "/api/payments", settle, driver)
	s.Equal(http.StatusConflict, status)
	s.Equal("ALREADY_PAID", code)

	var active resdto.ActiveSessionResponse
	s.do(http.MethodGet, "/api/vehicles/"+car.ID.String()+"/session", nil, driver, http.StatusOK, &active)
	s.False(active.Parked)

	s.do(http.MethodGet, lotPath+"/occupancy", nil, driver, http.StatusOK, &occ)
	s.Equal(1, occ["standard"].Free)

	var history resdto.ListResponse[queries.PaymentView]
	s.do(http.MethodGet, "/api/payments/mine", nil, driver, http.StatusOK, &history)
	s.Require().Equal(1, history.Count)
	s.Equal(paid.ID, history.Items[0].ID)
	s.Equal(lotView.ID, history.Items[0].LotID)

	var byPlate resdto.ListResponse[queries.VehicleView]
	s.do(http.MethodGet, "/api/vehicles/plate/abc123", nil, driver, http.StatusOK, &byPlate)
	s.Require().Equal(1, byPlate.Count)
	s.Equal(car.ID, byPlate.Items[0].ID)

	window := "?from=2026-03-02T00:00:00Z&to=2026-03-03T00:00:00Z"
	status, _ = s.code(http.MethodGet, lotPath+"/stats/revenue"+window, nil, driver)
	s.Equal(http.StatusForbidden, status)

	var revenue queries.RevenueStatsView
	s.do(http.MethodGet, lotPath+"/stats/revenue"+window, nil, admin, http.StatusOK, &revenue)
	s.Equal("24.00", revenue.Parking)
	s.Equal(1, revenue.Payments)

	var usage queries.OccupancyStatsView
	s.do(http.MethodGet, lotPath+"/stats/occupancy"+window, nil, admin, http.StatusOK, &usage)
	s.Equal(1, usage.UsedSpaces)
	s.Equal("100.00", usage.UsageRate)
	s.Equal("2.00", usage.AvgParkingHours)
}

func (s *flowSuite) TestAccessControl() {
	status, _ := s.code(http.MethodGet, "/api/lots", nil, "")
	s.Equal(http.StatusUnauthorized, status)

	driver := authtest.RegisterAndLogin(s.T(), s.router, "driver2", "driver-password")

	status, _ = s.code(http.MethodPost, "/api/lots", builder.NewLotBuilder().BuildRequest(), driver)
	s.Equal(http.StatusForbidden, status)

	status, code := s.code(http.MethodPost, "/api/auth/register",
		reqdto.RegisterRequest{Username: "driver2", Password: "another-password"}, "")
	s.Equal(http.StatusConflict, status)
	s.Equal("CONFLICT", code)
}

func (s *flowSuite) TestOperationalEndpoints() {
	rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodGet, "/health", nil, "",
		map[string]string{"X-Request-ID": "req-0042"})
	s.Equal(http.StatusOK, rec.Code)
	httptest.AssertHeaders(s.T(), rec, map[string]string{"X-Request-ID": "req-0042"})

	rec = httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/metrics", nil, "")
	s.Equal(http.StatusOK, rec.Code)
	s.True(strings.Contains(rec.Body.String(), "parking_http_requests_total"), "request counter exported")
}
