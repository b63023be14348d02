//go:build unit || e2e

package builder

import (
	"time"

	"parking-engine/internal/domain/lot"
	"parking-engine/internal/handler/dto/request"

	"github.com/shopspring/decimal"
)

type LotBuilder struct {
	Name       string
	Location   string
	HourlyRate string
	Capacities map[string]int
}

func NewLotBuilder() *LotBuilder {
	return &LotBuilder{
		Name:       "Central",
		Location:   "1 Main St",
		HourlyRate: "10.00",
		Capacities: map[string]int{"standard": 2},
	}
}

func (b *LotBuilder) With(mutate func(*LotBuilder)) *LotBuilder {
	mutate(b)
	return b
}

func (b *LotBuilder) BuildRequest() request.CreateLotRequest {
	caps := make(map[string]int, len(b.Capacities))
	for t, n := range b.Capacities {
		caps[t] = n
	}
	return request.CreateLotRequest{
		Name:       b.Name,
		Location:   b.Location,
		HourlyRate: b.HourlyRate,
		Capacities: caps,
	}
}

func (b *LotBuilder) BuildDomain(now time.Time) (*lot.Lot, error) {
	rate, caps, err := b.BuildRequest().ToDomain()
	if err != nil {
		return nil, err
	}
	return lot.NewLot(b.Name, b.Location, rate, caps, now)
}

// Rate is the hourly rate as a decimal, for fee expectations.
func (b *LotBuilder) Rate() decimal.Decimal {
	return decimal.RequireFromString(b.HourlyRate)
}
