//go:build e2e

package e2e

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"parking-engine/cmd/bootstrap"
	"parking-engine/cmd/bootstrap/components"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/pkg/config"
	"parking-engine/internal/usecase/commands"
	"parking-engine/tests/common/dbtest"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/fx"
)

const (
	AdminUsername = "root"
	AdminPassword = "root-password"
)

// Epoch is where every suite's mock clock starts.
var Epoch = time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)

// ------------------------------------------------------------
// Per-process environment: one database, one fx app
// ------------------------------------------------------------
func setupE2EEnvironment(t *testing.T, clk clock.Clock) (*pgxpool.Pool, *e2eApp) {
	gin.SetMode(gin.TestMode)
	pool, dbConfig := dbtest.NewDatabase(t)

	built, app := buildE2EApp(t, dbConfig, clk)
	require.NotNil(t, built.router, "router setup failed")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("failed to stop fx app", "error", err.Error())
		}
	})

	return pool, built
}

type e2eApp struct {
	router *gin.Engine
	cfg    config.Config
	auth   commands.AuthCommands
}

// buildE2EApp wires the production graph against the test database. The schema is
// already applied by dbtest, so the store skips migration.
func buildE2EApp(t *testing.T, dbConfig config.DBConfig, clk clock.Clock) (*e2eApp, *fx.App) {
	built := &e2eApp{cfg: createTestConfig(dbConfig)}
	cfg := built.cfg

	testConfigModule := fx.Module("testconfig",
		fx.Provide(
			func() config.Config { return cfg },
			func(cfg config.Config) config.BillingConfig { return cfg.Billing },
		),
	)

	app := fx.New(
		testConfigModule,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.StoreModule,
		bootstrap.InfraModule,
		bootstrap.JWTModule,
		components.UseCaseModule,
		components.HandlerModule,
		bootstrap.SeedModule,
		bootstrap.SchedulerModule,
		fx.Decorate(func(clock.Clock) clock.Clock { return clk }),

		fx.Populate(&built.router, &built.auth),

		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "failed to start fx app")

	return built, app
}

func createTestConfig(dbConfig config.DBConfig) config.Config {
	testConfig := config.NewTestConfig()
	testConfig.Store.Driver = config.StoreDriverPostgres
	testConfig.DB = dbConfig
	testConfig.DB.Migrate = false
	testConfig.Admin = config.AdminConfig{Username: AdminUsername, Password: AdminPassword}
	return testConfig
}

// ------------------------------------------------------------
// Shared suite for e2e tests
// ------------------------------------------------------------
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
	Clock  *clock.MockClock
	auth   commands.AuthCommands
}

func (s *SharedSuite) SetupSharedSuite(t *testing.T) {
	s.Clock = clock.NewMockClock(Epoch)
	db, built := setupE2EEnvironment(t, s.Clock)
	s.DB = db
	s.Router = built.router
	s.Config = built.cfg
	s.auth = built.auth
	require.NotNil(t, db, "database setup failed")
	require.NotNil(t, s.Router, "router setup failed")
}

func (s *SharedSuite) SetupSuite() {
	s.SetupSharedSuite(s.T())
}

// SetupTest empties the database, restores the clock and re-seeds the administrator.
func (s *SharedSuite) SetupTest() {
	ctx := s.T().Context()
	require.NoError(s.T(), dbtest.ResetDB(ctx, s.DB), "failed to reset database state")
	s.Clock.Set(Epoch)
	require.NoError(s.T(), s.auth.EnsureSystemAdmin(ctx, AdminUsername, AdminPassword))
}
