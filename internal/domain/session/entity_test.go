//go:build unit

package session_test

import (
	"testing"
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/session"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	entry = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	ten   = decimal.NewFromInt(10)
)

func TestFeePolicy(t *testing.T) {
	p := session.NewFeePolicy(session.DefaultBillingUnit)

	cases := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{name: "zero duration is free", duration: 0, want: "0.00"},
		{name: "negative duration is free", duration: -time.Minute, want: "0.00"},
		{name: "one second bills one unit", duration: time.Second, want: "0.10"},
		{name: "exactly one unit", duration: 36 * time.Second, want: "0.10"},
		{name: "just over one unit", duration: 37 * time.Second, want: "0.20"},
		{name: "exactly one hour", duration: time.Hour, want: "10.00"},
		{name: "ninety minutes", duration: 90 * time.Minute, want: "15.00"},
		{name: "one hour and one second", duration: time.Hour + time.Second, want: "10.10"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.Fee(tc.duration, ten).StringFixed(2))
		})
	}

	t.Run("hourly unit rounds up to whole hours", func(t *testing.T) {
		hourly := session.NewFeePolicy(time.Hour)
		assert.Equal(t, "10.00", hourly.Fee(time.Minute, ten).StringFixed(2))
		assert.Equal(t, "20.00", hourly.Fee(61*time.Minute, ten).StringFixed(2))
	})

	t.Run("non-positive unit falls back to default", func(t *testing.T) {
		assert.Equal(t, session.DefaultBillingUnit, session.NewFeePolicy(0).Unit)
		assert.Equal(t, "10.00", session.FeePolicy{}.Fee(time.Hour, ten).StringFixed(2))
	})

	t.Run("fee is non-negative and monotonic in duration", func(t *testing.T) {
		rate := decimal.RequireFromString("7.35")
		prev := decimal.Zero
		for d := time.Duration(0); d <= 3*time.Hour; d += 7 * time.Second {
			fee := p.Fee(d, rate)
			require.False(t, fee.IsNegative(), "duration %s", d)
			require.True(t, fee.GreaterThanOrEqual(prev), "fee decreased at %s: %s < %s", d, fee, prev)
			prev = fee
		}
	})
}

func TestSessionLifecycle(t *testing.T) {
	vehicleID, lotID := uuid.New(), uuid.New()
	policy := session.NewFeePolicy(session.DefaultBillingUnit)

	t.Run("open then close", func(t *testing.T) {
		s := session.Open(vehicleID, lotID, 4, "standard", nil, entry)
		assert.True(t, s.IsActive())
		assert.Nil(t, s.ExitAt())
		assert.Equal(t, billing.PaymentUnpaid, s.PaymentStatus())
		assert.True(t, s.Outstanding().IsZero(), "nothing owed while active")

		require.NoError(t, s.Close(entry.Add(time.Hour), policy, ten))
		assert.Equal(t, session.StatusClosed, s.Status())
		require.NotNil(t, s.ExitAt())
		assert.Equal(t, time.Hour, s.Duration())
		assert.Equal(t, "10.00", s.Fee().StringFixed(2))
		assert.Equal(t, "10.00", s.Outstanding().StringFixed(2))

		assert.ErrorIs(t, s.Close(entry.Add(2*time.Hour), policy, ten), session.ErrAlreadyClosed)
	})

	t.Run("clock skew yields zero duration", func(t *testing.T) {
		s := session.Open(vehicleID, lotID, 4, "standard", nil, entry)
		require.NoError(t, s.Close(entry.Add(-time.Minute), policy, ten))
		assert.Zero(t, s.Duration())
		assert.True(t, s.Fee().IsZero())
		assert.Equal(t, billing.PaymentPaid, s.PaymentStatus(), "a free stay owes nothing")
		assert.ErrorIs(t, s.MarkPaid(entry), session.ErrAlreadyPaid)
	})

	t.Run("payment", func(t *testing.T) {
		s := session.Open(vehicleID, lotID, 4, "standard", nil, entry)
		assert.ErrorIs(t, s.MarkPaid(entry), session.ErrNotClosed)

		require.NoError(t, s.Close(entry.Add(30*time.Minute), policy, ten))
		require.NoError(t, s.MarkPaid(entry.Add(time.Hour)))
		assert.Equal(t, billing.PaymentPaid, s.PaymentStatus())
		assert.True(t, s.Outstanding().IsZero())
		assert.ErrorIs(t, s.MarkPaid(entry.Add(time.Hour)), session.ErrAlreadyPaid)
	})

	t.Run("violations accumulate", func(t *testing.T) {
		s := session.Open(vehicleID, lotID, 4, "standard", nil, entry)
		s.FlagViolation(decimal.NewFromInt(10))
		s.FlagViolation(decimal.RequireFromString("2.5"))
		assert.True(t, s.IsViolation())
		assert.Equal(t, "12.50", s.ViolationFee().StringFixed(2))
	})

	t.Run("snapshot round trip", func(t *testing.T) {
		reservationID := uuid.New()
		s := session.Open(vehicleID, lotID, 4, "ev", &reservationID, entry)
		require.NoError(t, s.Close(entry.Add(time.Hour), policy, ten))
		again := session.Reconstruct(s.Snapshot())
		assert.Equal(t, s.Snapshot(), again.Snapshot())
	})
}
