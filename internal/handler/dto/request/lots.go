package request

import (
	"parking-engine/internal/domain/lot"

	"github.com/shopspring/decimal"
)

type CreateLotRequest struct {
	Name       string         `json:"name" binding:"max=100"`
	Location   string         `json:"location" binding:"required,max=200"`
	HourlyRate string         `json:"hourly_rate" binding:"required"`
	Capacities map[string]int `json:"capacities" binding:"required"`
}

// ToDomain parses the rate and normalises capacity type tags.
func (r CreateLotRequest) ToDomain() (decimal.Decimal, lot.Capacities, error) {
	rate, err := decimal.NewFromString(r.HourlyRate)
	if err != nil {
		return decimal.Zero, nil, err
	}
	caps := make(lot.Capacities, len(r.Capacities))
	for raw, n := range r.Capacities {
		t, err := lot.NewSpaceType(raw)
		if err != nil {
			return decimal.Zero, nil, err
		}
		caps[t] += n
	}
	return rate, caps, nil
}

type AddSpacesRequest struct {
	SpaceType string `json:"space_type"`
	Count     int    `json:"count" binding:"required,min=1,max=1000"`
}

type UpdateRateRequest struct {
	HourlyRate string `json:"hourly_rate" binding:"required"`
}

func (r UpdateRateRequest) ToDomain() (decimal.Decimal, error) {
	return decimal.NewFromString(r.HourlyRate)
}

type AcquireSpaceRequest struct {
	SpaceType string `json:"space_type"`
}
