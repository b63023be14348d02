//go:build e2e

package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/booking"
	"parking-engine/internal/domain/lot"
	"parking-engine/internal/domain/session"
	reqdto "parking-engine/internal/handler/dto/request"
	"parking-engine/internal/infra"
	"parking-engine/internal/infra/postgres"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/usecase/commands"
	"parking-engine/internal/usecase/queries"
	"parking-engine/internal/usecase/shared"
	"parking-engine/tests/common/dbtest"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"golang.org/x/sync/errgroup"
)

var base = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

type StoreSuite struct {
	suite.Suite
	pool  *pgxpool.Pool
	store *postgres.Store
	clock *clock.MockClock

	lots     commands.LotCommands
	vehicles commands.VehicleCommands
	sessions commands.SessionCommands
	bookings commands.BookingCommands
	billing  commands.BillingCommands
	lotViews queries.LotQueries
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupSuite() {
	s.pool, _ = dbtest.NewDatabase(s.T())
	s.store = postgres.NewStore(s.pool, 3, 2*time.Second)
}

func (s *StoreSuite) SetupTest() {
	require.NoError(s.T(), dbtest.ResetDB(context.Background(), s.pool))
	s.clock = clock.NewMockClock(base)
	rules := commands.DefaultRules()
	s.lots = commands.NewLotCommands(s.store, nil, nil, s.clock)
	s.vehicles = commands.NewVehicleCommands(s.store, s.clock)
	s.sessions = commands.NewSessionCommands(s.store, rules, nil, nil, s.clock)
	s.bookings = commands.NewBookingCommands(s.store, nil, rules, nil, s.clock)
	s.billing = commands.NewBillingCommands(s.store, nil, s.clock)
	s.lotViews = queries.NewLotQueries(s.store)
}

func (s *StoreSuite) createLot(rate string, caps map[string]int) uuid.UUID {
	l, err := s.lots.CreateLot(context.Background(), reqdto.CreateLotRequest{
		Name: "Harbour", Location: "Pier 3", HourlyRate: rate, Capacities: caps,
	})
	s.Require().NoError(err)
	return l.ID()
}

func (s *StoreSuite) registerVehicle(plate string) (uuid.UUID, uuid.UUID) {
	owner := uuid.New()
	v, err := s.vehicles.RegisterVehicle(context.Background(), owner, reqdto.VehicleRequest{Plate: plate, Brand: "Mazda"})
	s.Require().NoError(err)
	return owner, v.ID()
}

func (s *StoreSuite) TestRoundTripThroughRepositories() {
	ctx := context.Background()
	lotID := s.createLot("12.5", map[string]int{"standard": 2, "ev": 1})

	l, err := s.lotViews.GetLot(ctx, lotID)
	s.Require().NoError(err)
	s.Equal("12.50", l.HourlyRate)
	s.Equal(3, l.TotalCapacity)

	_, car := s.registerVehicle("pg 101")
	opened, err := s.sessions.Enter(ctx, reqdto.EnterRequest{VehicleID: car, LotID: lotID, SpaceType: "ev"})
	s.Require().NoError(err)
	s.Equal(lot.SpaceType("ev"), opened.SpaceType())

	s.clock.Add(90 * time.Minute)
	res, err := s.sessions.Exit(ctx, reqdto.ExitRequest{VehicleID: car})
	s.Require().NoError(err)
	s.Equal(session.StatusClosed, res.Session.Status())
	s.Equal("18.75", res.Session.Fee().StringFixed(2))

	err = s.store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		stored, err := tx.Sessions().FindByID(ctx, opened.ID())
		if err != nil {
			return err
		}
		s.Equal(90*time.Minute, stored.Duration())
		s.True(stored.Fee().Equal(decimal.RequireFromString("18.75")))
		s.NotNil(stored.ExitAt())
		return nil
	})
	s.Require().NoError(err)

	payment, err := s.billing.SettlePayment(ctx, reqdto.SettlePaymentRequest{
		TargetID: opened.ID(), TargetType: "SESSION", Amount: "18.75", Method: "CASH", TransactionNo: "PG-TX-1",
	})
	s.Require().NoError(err)
	s.Equal(billing.PaymentSucceeded, payment.Status())

	from, to := base.Add(-time.Hour), base.Add(3*time.Hour)
	err = s.store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		paid, err := tx.Payments().ListByLotPaidBetween(ctx, lotID, from, to)
		if err != nil {
			return err
		}
		s.Require().Len(paid, 1)
		s.Equal(lotID, paid[0].LotID())
		s.Equal(opened.ID(), paid[0].TargetID())

		stays, err := tx.Sessions().ListByLotBetween(ctx, lotID, base.Add(time.Hour), to)
		if err != nil {
			return err
		}
		s.Len(stays, 1, "stay ending after the window start overlaps it")
		stays, err = tx.Sessions().ListByLotBetween(ctx, lotID, base.Add(2*time.Hour), to)
		if err != nil {
			return err
		}
		s.Empty(stays)

		cars, err := tx.Vehicles().ListByPlate(ctx, "PG101")
		if err != nil {
			return err
		}
		s.Require().Len(cars, 1)
		s.Equal(car, cars[0].ID())
		return nil
	})
	s.Require().NoError(err)

	revenue, err := queries.NewAnalyticsQueries(s.store).RevenueStats(ctx, lotID, from, to)
	s.Require().NoError(err)
	s.Equal("18.75", revenue.Parking)
	s.Equal("18.75", revenue.Total)
}

func (s *StoreSuite) TestConcurrentEntersRespectCapacity() {
	ctx := context.Background()
	lotID := s.createLot("5", map[string]int{"standard": 3})

	cars := make([]uuid.UUID, 12)
	for i := range cars {
		_, cars[i] = s.registerVehicle(fmt.Sprintf("CC-%02d", i))
	}

	results := make([]error, len(cars))
	var g errgroup.Group
	for i, car := range cars {
		g.Go(func() error {
			_, results[i] = s.sessions.Enter(ctx, reqdto.EnterRequest{VehicleID: car, LotID: lotID})
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	admitted := 0
	for _, err := range results {
		if err == nil {
			admitted++
			continue
		}
		s.True(errs.Is(err, errs.ErrNoCapacity), "unexpected error: %v", err)
	}
	s.Equal(3, admitted)

	occ, err := s.lotViews.Occupancy(ctx, lotID)
	s.Require().NoError(err)
	s.Equal(3, occ["standard"].Occupied)
}

func (s *StoreSuite) TestOverlappingBookingsUnderContention() {
	ctx := context.Background()
	lotID := s.createLot("4", map[string]int{"standard": 2})
	start := base.Add(2 * time.Hour)

	var g errgroup.Group
	results := make([]error, 8)
	for i := range results {
		owner, car := s.registerVehicle(fmt.Sprintf("BK-%02d", i))
		g.Go(func() error {
			_, results[i] = s.bookings.CreateBooking(ctx, owner, reqdto.CreateBookingRequest{
				VehicleID: car, LotID: lotID, StartTime: start, EndTime: start.Add(time.Hour),
			})
			return nil
		})
	}
	s.Require().NoError(g.Wait())

	confirmed := 0
	for _, err := range results {
		if err == nil {
			confirmed++
		}
	}
	s.Equal(2, confirmed)

	err := s.store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		slot, err := booking.NewTimeSlot(start, start.Add(time.Hour))
		if err != nil {
			return err
		}
		holding, err := tx.Bookings().ListHolding(ctx, lotID, lot.DefaultSpaceType, slot)
		s.Len(holding, 2)
		return err
	})
	s.Require().NoError(err)
}

func (s *StoreSuite) TestUniqueIndexesSurfaceAsDuplicateKey() {
	ctx := context.Background()
	lotID := s.createLot("5", map[string]int{"standard": 2})
	_, car := s.registerVehicle("UNQ-1")

	active := session.Open(car, lotID, 1, lot.DefaultSpaceType, nil, base)
	second := session.Open(car, lotID, 2, lot.DefaultSpaceType, nil, base)
	err := s.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Sessions().Create(ctx, active); err != nil {
			return err
		}
		return tx.Sessions().Create(ctx, second)
	})
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindDuplicateKey), "got %v", err)

	err = s.store.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Sessions().FindActiveByVehicle(ctx, car)
		return err
	})
	s.True(infra.IsNotFound(err), "rolled back")

	_, other := s.registerVehicle("UNQ-2")
	sameSpace := session.Open(other, lotID, 1, lot.DefaultSpaceType, nil, base)
	err = s.store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Sessions().Create(ctx, active); err != nil {
			return err
		}
		return tx.Sessions().Create(ctx, sameSpace)
	})
	s.Require().Error(err)
	s.True(infra.IsKind(err, infra.KindDuplicateKey), "one active session per space, got %v", err)
}

func (s *StoreSuite) TestLockTimeout() {
	ctx := context.Background()
	key := shared.LotLock(uuid.New())
	store := postgres.NewStore(s.pool, 0, 200*time.Millisecond)

	held := make(chan struct{})
	release := make(chan struct{})
	var g errgroup.Group
	g.Go(func() error {
		return store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Lock(ctx, key); err != nil {
				return err
			}
			close(held)
			<-release
			return nil
		})
	})

	<-held
	err := store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Lock(ctx, key)
	})
	close(release)
	s.Require().NoError(g.Wait())

	require.Error(s.T(), err)
	assert.True(s.T(), infra.IsKind(err, infra.KindLockTimeout), "got %v", err)
}
