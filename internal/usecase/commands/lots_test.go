//go:build unit

package commands_test

import (
	"testing"
	"time"

	reqdto "parking-engine/internal/handler/dto/request"
	"parking-engine/internal/pkg/errs"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateLot(t *testing.T) {
	f := newFixture(t)
	lotID := f.createLot("3.5", map[string]int{"standard": 2, "EV": 1})

	spaces, err := f.lotQueries.ListSpaces(f.ctx, lotID)
	require.NoError(t, err)
	labels := make([]string, 0, len(spaces))
	for _, s := range spaces {
		labels = append(labels, s.Label)
	}
	if diff := cmp.Diff([]string{"EV-001", "STANDARD-001", "STANDARD-002"}, labels); diff != "" {
		t.Errorf("space labels mismatch (-want +got):\n%s", diff)
	}

	cases := []struct {
		name string
		req  reqdto.CreateLotRequest
	}{
		{name: "no capacity", req: reqdto.CreateLotRequest{Location: "x", HourlyRate: "1", Capacities: map[string]int{"standard": 0}}},
		{name: "negative rate", req: reqdto.CreateLotRequest{Location: "x", HourlyRate: "-1", Capacities: map[string]int{"standard": 1}}},
		{name: "rate not a number", req: reqdto.CreateLotRequest{Location: "x", HourlyRate: "ten", Capacities: map[string]int{"standard": 1}}},
		{name: "blank location", req: reqdto.CreateLotRequest{Location: " ", HourlyRate: "1", Capacities: map[string]int{"standard": 1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.lots.CreateLot(f.ctx, tc.req)
			assertErrIs(t, err, errs.ErrValidation)
		})
	}
}

func TestDeleteLot(t *testing.T) {
	f := newFixture(t)
	lotID := f.createLot("10", map[string]int{"standard": 1})
	owner, car := f.registerVehicle("DEL-1")

	_, err := f.enter(car, lotID)
	require.NoError(t, err)
	assertErrIs(t, f.lots.DeleteLot(f.ctx, lotID), errs.ErrConflict)

	_, err = f.exit(car)
	require.NoError(t, err)
	o, err := f.book(owner, car, lotID, at(12, 0), at(13, 0))
	require.NoError(t, err)
	assertErrIs(t, f.lots.DeleteLot(f.ctx, lotID), errs.ErrConflict)

	_, err = f.bookings.CancelBooking(f.ctx, o.ID())
	require.NoError(t, err)
	require.NoError(t, f.lots.DeleteLot(f.ctx, lotID))

	_, err = f.lotQueries.GetLot(f.ctx, lotID)
	assertErrIs(t, err, errs.ErrNotFound)
	assertErrIs(t, f.lots.DeleteLot(f.ctx, uuid.New()), errs.ErrNotFound)
}

func TestAddSpacesAndRate(t *testing.T) {
	f := newFixture(t)
	lotID := f.createLot("10", map[string]int{"standard": 1})
	_, car := f.registerVehicle("RATE-1")

	l, err := f.lots.AddSpaces(f.ctx, lotID, reqdto.AddSpacesRequest{SpaceType: "standard", Count: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, l.Capacity("standard"))

	spaces, err := f.lotQueries.ListSpaces(f.ctx, lotID)
	require.NoError(t, err)
	require.Len(t, spaces, 3)
	assert.Equal(t, "STANDARD-003", spaces[2].Label)

	_, err = f.enter(car, lotID)
	require.NoError(t, err)
	f.clock.Add(time.Hour)

	_, err = f.lots.UpdateRate(f.ctx, lotID, decimal.NewFromInt(20))
	require.NoError(t, err)
	res, err := f.exit(car)
	require.NoError(t, err)
	assert.Equal(t, "20.00", res.Session.Fee().StringFixed(2), "rate applies at exit")

	_, err = f.lots.UpdateRate(f.ctx, lotID, decimal.NewFromInt(-1))
	assertErrIs(t, err, errs.ErrValidation)
}

func TestManualSpaceAllocation(t *testing.T) {
	f := newFixture(t)
	lotID := f.createLot("10", map[string]int{"standard": 2})

	first, err := f.allocator.AcquireSpace(f.ctx, lotID, "")
	require.NoError(t, err)
	second, err := f.allocator.AcquireSpace(f.ctx, lotID, "standard")
	require.NoError(t, err)
	assert.Less(t, first.ID(), second.ID(), "lowest free id first")

	_, err = f.allocator.AcquireSpace(f.ctx, lotID, "standard")
	assertErrIs(t, err, errs.ErrNoCapacity)

	_, err = f.allocator.ReleaseSpace(f.ctx, first.ID())
	require.NoError(t, err)
	_, err = f.allocator.ReleaseSpace(f.ctx, first.ID())
	assertErrIs(t, err, errs.ErrInvalidState)

	again, err := f.allocator.AcquireSpace(f.ctx, lotID, "standard")
	require.NoError(t, err)
	assert.Equal(t, first.ID(), again.ID())
}

func TestReleaseRefusesSessionHeldSpace(t *testing.T) {
	f := newFixture(t)
	lotID := f.createLot("10", map[string]int{"standard": 1})
	_, carA := f.registerVehicle("A-1")
	_, carB := f.registerVehicle("B-2")

	parked, err := f.enter(carA, lotID)
	require.NoError(t, err)

	_, err = f.allocator.ReleaseSpace(f.ctx, parked.SpaceID())
	assertErrIs(t, err, errs.ErrInvalidState)

	_, err = f.enter(carB, lotID)
	assertErrIs(t, err, errs.ErrNoCapacity)
	assert.Equal(t, 1, f.occupancy(lotID)["standard"].Occupied, "space stays with the parked vehicle")

	_, err = f.exit(carA)
	require.NoError(t, err)
	_, err = f.allocator.ReleaseSpace(f.ctx, parked.SpaceID())
	assertErrIs(t, err, errs.ErrInvalidState)

	next, err := f.enter(carB, lotID)
	require.NoError(t, err)
	assert.Equal(t, parked.SpaceID(), next.SpaceID())
}
