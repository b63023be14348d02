//go:build unit

package lot_test

import (
	"testing"
	"time"

	"parking-engine/internal/domain/lot"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func TestNewLot(t *testing.T) {
	t.Run("basic success case", func(t *testing.T) {
		l, err := lot.NewLot("", " Central Plaza ", decimal.RequireFromString("10.005"),
			lot.Capacities{"standard": 3, "ev": 1, "disabled": 0}, now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, l.ID())
		assert.Equal(t, "Central Plaza", l.Location())
		assert.Equal(t, "Central Plaza", l.Name(), "name falls back to location")
		assert.Equal(t, "10.01", l.HourlyRate().StringFixed(2))
		assert.Equal(t, 4, l.TotalCapacity())
		assert.Equal(t, 0, l.Capacity("disabled"))
		assert.Equal(t, []lot.SpaceType{"ev", "standard"}, l.Capacities().Types(), "zero-capacity types dropped")
	})

	cases := []struct {
		name     string
		location string
		rate     string
		caps     lot.Capacities
		errIs    error
	}{
		{name: "empty location", location: " ", rate: "1", caps: lot.Capacities{"standard": 1}, errIs: lot.ErrEmptyLocation},
		{name: "negative rate", location: "x", rate: "-0.01", caps: lot.Capacities{"standard": 1}, errIs: lot.ErrNegativeRate},
		{name: "negative capacity", location: "x", rate: "1", caps: lot.Capacities{"standard": -1, "ev": 2}, errIs: lot.ErrInvalidCapacity},
		{name: "no spaces", location: "x", rate: "1", caps: lot.Capacities{"standard": 0}, errIs: lot.ErrNoSpaces},
		{name: "free lot", location: "x", rate: "0", caps: lot.Capacities{"standard": 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := lot.NewLot("", tc.location, decimal.RequireFromString(tc.rate), tc.caps, now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestLotAddCapacity(t *testing.T) {
	l, err := lot.NewLot("A", "A street", decimal.NewFromInt(5), lot.Capacities{"standard": 2}, now)
	require.NoError(t, err)

	before := l.Capacities()
	require.NoError(t, l.AddCapacity("ev", 2, now.Add(time.Hour)))
	require.NoError(t, l.AddCapacity("standard", 1, now.Add(time.Hour)))

	assert.Equal(t, 2, before["standard"], "earlier snapshots are not mutated")
	assert.Equal(t, 3, l.Capacity("standard"))
	assert.Equal(t, 2, l.Capacity("ev"))
	assert.Equal(t, now.Add(time.Hour), l.UpdatedAt())
	assert.ErrorIs(t, l.AddCapacity("ev", 0, now), lot.ErrInvalidIncrement)
}

func TestLotChangeRate(t *testing.T) {
	l, err := lot.NewLot("A", "A street", decimal.NewFromInt(5), lot.Capacities{"standard": 1}, now)
	require.NoError(t, err)

	require.NoError(t, l.ChangeRate(decimal.RequireFromString("7.5"), now))
	assert.True(t, l.HourlyRate().Equal(decimal.RequireFromString("7.50")))
	assert.ErrorIs(t, l.ChangeRate(decimal.NewFromInt(-1), now), lot.ErrNegativeRate)
}

func TestNewSpaceType(t *testing.T) {
	st, err := lot.NewSpaceType("  EV ")
	require.NoError(t, err)
	assert.Equal(t, lot.SpaceType("ev"), st)

	st, err = lot.NewSpaceType("")
	require.NoError(t, err)
	assert.Equal(t, lot.DefaultSpaceType, st)

	_, err = lot.NewSpaceType("has space")
	assert.ErrorIs(t, err, lot.ErrInvalidSpaceType)
}

func TestSpace(t *testing.T) {
	lotID := uuid.New()

	t.Run("occupy and release", func(t *testing.T) {
		s := lot.ReconstructSpace(1, lotID, "standard", "STANDARD-001", false, now)
		require.NoError(t, s.Occupy(now))
		assert.True(t, s.IsOccupied())
		assert.ErrorIs(t, s.Occupy(now), lot.ErrSpaceOccupied)
		require.NoError(t, s.Release(now))
		assert.ErrorIs(t, s.Release(now), lot.ErrSpaceNotOccupied)
	})

	t.Run("label", func(t *testing.T) {
		s := lot.NewSpace(lotID, "ev", 7, now)
		assert.Equal(t, "EV-007", s.Label())
		assert.Zero(t, s.ID())
	})

	t.Run("pick free chooses lowest id", func(t *testing.T) {
		spaces := []*lot.Space{
			lot.ReconstructSpace(9, lotID, "standard", "S9", false, now),
			lot.ReconstructSpace(3, lotID, "standard", "S3", true, now),
			lot.ReconstructSpace(5, lotID, "standard", "S5", false, now),
			lot.ReconstructSpace(1, lotID, "ev", "E1", false, now),
		}
		s, ok := lot.PickFree(spaces, "standard")
		require.True(t, ok)
		assert.Equal(t, int64(5), s.ID())

		_, ok = lot.PickFree(spaces, "disabled")
		assert.False(t, ok)
		assert.Equal(t, 3, lot.CountOfType(spaces, "standard"))
	})

	t.Run("tally", func(t *testing.T) {
		spaces := []*lot.Space{
			lot.ReconstructSpace(1, lotID, "standard", "S1", true, now),
			lot.ReconstructSpace(2, lotID, "standard", "S2", false, now),
			lot.ReconstructSpace(3, lotID, "ev", "E1", true, now),
		}
		want := lot.Occupancy{
			"standard": {Occupied: 1, Total: 2},
			"ev":       {Occupied: 1, Total: 1},
		}
		if diff := cmp.Diff(want, lot.Tally(spaces)); diff != "" {
			t.Errorf("occupancy mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, 1, want["standard"].Free())
	})
}
