package billing

import (
	"time"

	"github.com/shopspring/decimal"
)

var oneHour = decimal.NewFromInt(1)

// Policy holds the fine rules. Fines are expressed in hours of the lot rate.
type Policy struct {
	OverstayGrace     time.Duration
	OverstayFineHours decimal.Decimal
	NoShowGrace       time.Duration
	NoShowFineHours   decimal.Decimal
	UnpaidFeeAfter    time.Duration
	UnpaidFineAfter   time.Duration
	EscalationFactor  decimal.Decimal
}

func DefaultPolicy() Policy {
	return Policy{
		OverstayGrace:     30 * time.Minute,
		OverstayFineHours: oneHour,
		NoShowGrace:       30 * time.Minute,
		NoShowFineHours:   oneHour,
		UnpaidFeeAfter:    30 * 24 * time.Hour,
		UnpaidFineAfter:   14 * 24 * time.Hour,
		EscalationFactor:  decimal.NewFromInt(2),
	}
}

// Overstay reports the fine for leaving after reservedEnd plus the grace period.
func (p Policy) Overstay(exitAt, reservedEnd time.Time, rate decimal.Decimal) (decimal.Decimal, bool) {
	if !exitAt.After(reservedEnd.Add(p.OverstayGrace)) {
		return decimal.Zero, false
	}
	return rate.Mul(p.OverstayFineHours).Round(2), true
}

// NoShowDue: the reservation start plus grace has passed.
func (p Policy) NoShowDue(start, now time.Time) bool {
	return !now.Before(start.Add(p.NoShowGrace))
}

func (p Policy) NoShowFine(rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(p.NoShowFineHours).Round(2)
}

func (p Policy) Escalate(amount decimal.Decimal) decimal.Decimal {
	return amount.Mul(p.EscalationFactor).Round(2)
}

func (p Policy) FeeOverdue(closedAt, now time.Time) bool {
	return !now.Before(closedAt.Add(p.UnpaidFeeAfter))
}

func (p Policy) FineOverdue(detectedAt, now time.Time) bool {
	return !now.Before(detectedAt.Add(p.UnpaidFineAfter))
}
