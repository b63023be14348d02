//go:build unit

package commands_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"parking-engine/internal/domain/booking"
	reqdto "parking-engine/internal/handler/dto/request"
	"parking-engine/internal/infra"
	"parking-engine/internal/infra/memstore"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/usecase/commands"
	"parking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func (f *fixture) book(owner, vehicleID, lotID uuid.UUID, start, end time.Time) (*booking.Order, error) {
	return f.bookings.CreateBooking(f.ctx, owner, reqdto.CreateBookingRequest{
		VehicleID: vehicleID, LotID: lotID, StartTime: start, EndTime: end,
	})
}

func TestCreateBookingCapacityScenario(t *testing.T) {
	f := newFixture(t)
	lotID := f.createLot("10", map[string]int{"standard": 2})
	owner, car := f.registerVehicle("BK-1")

	first, err := f.book(owner, car, lotID, at(10, 0), at(12, 0))
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, first.Status())
	assert.Equal(t, "20.00", first.Fee().StringFixed(2))
	assert.True(t, booking.IsValidCode(first.Code()), first.Code())

	_, err = f.book(owner, car, lotID, at(11, 0), at(13, 0))
	require.NoError(t, err)

	_, err = f.book(owner, car, lotID, at(11, 30), at(11, 45))
	assertErrIs(t, err, errs.ErrNoCapacity)

	t.Run("back-to-back slots do not overlap", func(t *testing.T) {
		_, err := f.book(owner, car, lotID, at(13, 0), at(14, 0))
		require.NoError(t, err)
	})

	t.Run("cancelling frees capacity", func(t *testing.T) {
		_, err := f.bookings.CancelBooking(f.ctx, first.ID())
		require.NoError(t, err)
		_, err = f.book(owner, car, lotID, at(11, 30), at(11, 45))
		require.NoError(t, err)
	})
}

func TestCreateBookingValidation(t *testing.T) {
	f := newFixture(t)
	lotID := f.createLot("10", map[string]int{"standard": 1})
	owner, car := f.registerVehicle("BK-2")

	cases := []struct {
		name       string
		lotID      uuid.UUID
		start, end time.Time
		spaceType  string
		want       error
	}{
		{name: "end before start", lotID: lotID, start: at(12, 0), end: at(11, 0), want: errs.ErrInvalidInterval},
		{name: "empty slot", lotID: lotID, start: at(12, 0), end: at(12, 0), want: errs.ErrInvalidInterval},
		{name: "start in the past", lotID: lotID, start: at(8, 0), end: at(10, 0), want: errs.ErrInvalidInterval},
		{name: "unknown lot", lotID: uuid.New(), start: at(10, 0), end: at(11, 0), want: errs.ErrNotFound},
		{name: "type without spaces", lotID: lotID, start: at(10, 0), end: at(11, 0), spaceType: "ev", want: errs.ErrNoCapacity},
		{name: "bad type tag", lotID: lotID, start: at(10, 0), end: at(11, 0), spaceType: "no spaces!", want: errs.ErrValidation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.bookings.CreateBooking(f.ctx, owner, reqdto.CreateBookingRequest{
				VehicleID: car, LotID: tc.lotID, SpaceType: tc.spaceType, StartTime: tc.start, EndTime: tc.end,
			})
			assertErrIs(t, err, tc.want)
		})
	}

	t.Run("start within past tolerance", func(t *testing.T) {
		_, err := f.book(owner, car, lotID, base.Add(-4*time.Minute), at(10, 0))
		require.NoError(t, err)
	})
}

func TestBookingTransitions(t *testing.T) {
	f := newFixture(t)
	lotID := f.createLot("10", map[string]int{"standard": 3})
	owner, car := f.registerVehicle("BK-3")

	t.Run("cancel twice", func(t *testing.T) {
		o, err := f.book(owner, car, lotID, at(10, 0), at(11, 0))
		require.NoError(t, err)
		cancelled, err := f.bookings.CancelBooking(f.ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, cancelled.Status())

		_, err = f.bookings.CancelBooking(f.ctx, o.ID())
		assertErrIs(t, err, errs.ErrInvalidState)
	})

	t.Run("complete only after end", func(t *testing.T) {
		o, err := f.book(owner, car, lotID, at(12, 0), at(13, 0))
		require.NoError(t, err)

		_, err = f.bookings.CompleteBooking(f.ctx, o.ID())
		assertErrIs(t, err, errs.ErrInvalidState)

		f.clock.Set(at(13, 0))
		done, err := f.bookings.CompleteBooking(f.ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCompleted, done.Status())

		_, err = f.bookings.CancelBooking(f.ctx, o.ID())
		assertErrIs(t, err, errs.ErrInvalidState)
	})

	t.Run("cancel a claimed reservation", func(t *testing.T) {
		f.clock.Set(at(9, 0))
		o, err := f.book(owner, car, lotID, at(9, 0), at(10, 0))
		require.NoError(t, err)
		parked, err := f.enter(car, lotID)
		require.NoError(t, err)
		require.NotNil(t, parked.ReservationID())

		cancelled, err := f.bookings.CancelBooking(f.ctx, o.ID())
		require.NoError(t, err)
		assert.Equal(t, booking.StatusCancelled, cancelled.Status())

		f.clock.Set(at(11, 0))
		res, err := f.exit(car)
		require.NoError(t, err)
		assert.False(t, res.Completed, "a cancelled reservation is not completed on exit")
		assert.False(t, res.Session.IsActive())
		assert.Nil(t, res.Violation, "no overstay against a cancelled reservation")
		assert.False(t, res.Session.IsViolation())
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := f.bookings.CancelBooking(f.ctx, uuid.New())
		assertErrIs(t, err, errs.ErrNotFound)
	})
}

func TestConcurrentOverlappingBookings(t *testing.T) {
	f := newFixture(t)
	const capacity = 2
	lotID := f.createLot("10", map[string]int{"standard": capacity})

	var created atomic.Int32
	var g errgroup.Group
	for i := range 12 {
		owner, car := f.registerVehicle(fmt.Sprintf("OV-%02d", i))
		start := at(10, i%4*10)
		g.Go(func() error {
			_, err := f.book(owner, car, lotID, start, start.Add(time.Hour))
			if err == nil {
				created.Add(1)
				return nil
			}
			if errs.Is(err, errs.ErrNoCapacity) {
				return nil
			}
			return err
		})
	}
	require.NoError(t, g.Wait())
	assert.Equal(t, int32(capacity), created.Load())
}

type scriptedCodes struct {
	mu    sync.Mutex
	codes []string
}

func (s *scriptedCodes) Generate() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	code := s.codes[0]
	if len(s.codes) > 1 {
		s.codes = s.codes[1:]
	}
	return code, nil
}

func TestBookingCodeCollisions(t *testing.T) {
	f := newFixture(t)
	lotID := f.createLot("10", map[string]int{"standard": 5})
	owner, car := f.registerVehicle("CODE-1")

	codes := &scriptedCodes{codes: []string{"RAAAAAAAA", "RAAAAAAAA", "RBBBBBBBB", "RBBBBBBBB"}}
	bookings := commands.NewBookingCommands(f.store, codes, commands.DefaultRules(), nil, f.clock)
	book := func() (*booking.Order, error) {
		return bookings.CreateBooking(f.ctx, owner, reqdto.CreateBookingRequest{
			VehicleID: car, LotID: lotID, StartTime: at(10, 0), EndTime: at(11, 0),
		})
	}

	first, err := book()
	require.NoError(t, err)
	assert.Equal(t, "RAAAAAAAA", first.Code())

	second, err := book()
	require.NoError(t, err)
	assert.Equal(t, "RBBBBBBBB", second.Code(), "retries past a taken code")

	_, err = book()
	require.ErrorIs(t, err, commands.ErrCodeExhausted)
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestCreateBookingHoldsVehicleLock(t *testing.T) {
	ctx := context.Background()
	store := memstore.NewStore(100 * time.Millisecond)
	clk := clock.NewMockClock(base)
	lots := commands.NewLotCommands(store, &publishRecorder{}, nil, clk)
	vehicles := commands.NewVehicleCommands(store, clk)
	bookings := commands.NewBookingCommands(store, nil, commands.DefaultRules(), nil, clk)

	l, err := lots.CreateLot(ctx, reqdto.CreateLotRequest{
		Name: "Central", Location: "Main St 1", HourlyRate: "10", Capacities: map[string]int{"standard": 1},
	})
	require.NoError(t, err)
	owner := uuid.New()
	v, err := vehicles.RegisterVehicle(ctx, owner, reqdto.VehicleRequest{Plate: "LOCK-1"})
	require.NoError(t, err)
	req := reqdto.CreateBookingRequest{VehicleID: v.ID(), LotID: l.ID(), StartTime: at(10, 0), EndTime: at(11, 0)}

	held := make(chan struct{})
	release := make(chan struct{})
	var g errgroup.Group
	g.Go(func() error {
		return store.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Lock(ctx, shared.VehicleLock(v.ID())); err != nil {
				return err
			}
			close(held)
			<-release
			return nil
		})
	})

	<-held
	_, err = bookings.CreateBooking(ctx, owner, req)
	close(release)
	require.NoError(t, g.Wait())
	require.Error(t, err)
	assert.True(t, infra.IsKind(err, infra.KindLockTimeout), "got %v", err)

	require.NoError(t, vehicles.DeleteVehicle(ctx, v.ID()))
	_, err = bookings.CreateBooking(ctx, owner, req)
	assertErrIs(t, err, errs.ErrNotFound)
}
