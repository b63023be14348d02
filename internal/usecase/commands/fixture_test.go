//go:build unit

package commands_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"parking-engine/internal/domain/lot"
	"parking-engine/internal/domain/session"
	reqdto "parking-engine/internal/handler/dto/request"
	"parking-engine/internal/infra/memstore"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/usecase/commands"
	"parking-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2025, 3, 1, hour, minute, 0, 0, time.UTC)
}

type publishRecorder struct {
	mu    sync.Mutex
	calls map[uuid.UUID]lot.Occupancy
}

func (p *publishRecorder) Publish(_ context.Context, lotID uuid.UUID, occ lot.Occupancy, _ time.Time) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.calls == nil {
		p.calls = make(map[uuid.UUID]lot.Occupancy)
	}
	p.calls[lotID] = occ
	return nil
}

func (p *publishRecorder) last(lotID uuid.UUID) lot.Occupancy {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls[lotID]
}

type fixture struct {
	t         *testing.T
	ctx       context.Context
	store     *memstore.Store
	clock     *clock.MockClock
	published *publishRecorder

	lots      commands.LotCommands
	allocator commands.AllocatorCommands
	sessions  commands.SessionCommands
	bookings  commands.BookingCommands
	billing   commands.BillingCommands
	vehicles  commands.VehicleCommands
	sweeper   commands.Sweeper

	lotQueries     queries.LotQueries
	sessionQueries queries.SessionQueries
	billingQueries queries.BillingQueries
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	store := memstore.NewStore(2 * time.Second)
	clk := clock.NewMockClock(base)
	rules := commands.DefaultRules()
	pub := &publishRecorder{}

	return &fixture{
		t:         t,
		ctx:       context.Background(),
		store:     store,
		clock:     clk,
		published: pub,

		lots:      commands.NewLotCommands(store, pub, nil, clk),
		allocator: commands.NewAllocatorCommands(store, pub, nil, clk),
		sessions:  commands.NewSessionCommands(store, rules, pub, nil, clk),
		bookings:  commands.NewBookingCommands(store, nil, rules, nil, clk),
		billing:   commands.NewBillingCommands(store, nil, clk),
		vehicles:  commands.NewVehicleCommands(store, clk),
		sweeper:   commands.NewSweeper(store, rules, nil),

		lotQueries:     queries.NewLotQueries(store),
		sessionQueries: queries.NewSessionQueries(store),
		billingQueries: queries.NewBillingQueries(store),
	}
}

func (f *fixture) createLot(rate string, caps map[string]int) uuid.UUID {
	f.t.Helper()
	l, err := f.lots.CreateLot(f.ctx, reqdto.CreateLotRequest{
		Name:       "Central",
		Location:   "Main St 1",
		HourlyRate: rate,
		Capacities: caps,
	})
	require.NoError(f.t, err)
	return l.ID()
}

func (f *fixture) registerVehicle(plate string) (ownerID, vehicleID uuid.UUID) {
	f.t.Helper()
	ownerID = uuid.New()
	v, err := f.vehicles.RegisterVehicle(f.ctx, ownerID, reqdto.VehicleRequest{Plate: plate})
	require.NoError(f.t, err)
	return ownerID, v.ID()
}

func (f *fixture) enter(vehicleID, lotID uuid.UUID) (*session.Session, error) {
	return f.sessions.Enter(f.ctx, reqdto.EnterRequest{VehicleID: vehicleID, LotID: lotID})
}

func (f *fixture) exit(vehicleID uuid.UUID) (*commands.ExitResult, error) {
	return f.sessions.Exit(f.ctx, reqdto.ExitRequest{VehicleID: vehicleID})
}

func (f *fixture) occupancy(lotID uuid.UUID) map[string]queries.OccupancyView {
	f.t.Helper()
	occ, err := f.lotQueries.Occupancy(f.ctx, lotID)
	require.NoError(f.t, err)
	return occ
}

func assertErrIs(t *testing.T, err, target error) {
	t.Helper()
	require.Error(t, err)
	assert.True(t, errs.Is(err, target), "expected %v, got %v", target, err)
}
