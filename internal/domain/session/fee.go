package session

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultBillingUnit is 0.01 hour.
const DefaultBillingUnit = 36 * time.Second

var secondsPerHour = decimal.NewFromInt(3600)

// FeePolicy bills a duration in whole units, rounding up. Any positive duration costs
// at least one unit; a zero duration is free.
type FeePolicy struct {
	Unit time.Duration
}

func NewFeePolicy(unit time.Duration) FeePolicy {
	if unit <= 0 {
		unit = DefaultBillingUnit
	}
	return FeePolicy{Unit: unit}
}

func (p FeePolicy) unit() time.Duration {
	if p.Unit <= 0 {
		return DefaultBillingUnit
	}
	return p.Unit
}

// BilledHours is the duration rounded up to whole units, expressed in hours.
func (p FeePolicy) BilledHours(d time.Duration) decimal.Decimal {
	if d <= 0 {
		return decimal.Zero
	}
	u := p.unit()
	units := int64(d / u)
	if d%u != 0 {
		units++
	}
	seconds := decimal.NewFromInt(units).Mul(decimal.NewFromFloat(u.Seconds()))
	return seconds.Div(secondsPerHour)
}

// Fee is billed hours times rate, rounded to cents.
func (p FeePolicy) Fee(d time.Duration, hourlyRate decimal.Decimal) decimal.Decimal {
	return p.BilledHours(d).Mul(hourlyRate).Round(2)
}
