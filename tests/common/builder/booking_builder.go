//go:build unit || e2e

package builder

import (
	"time"

	"parking-engine/internal/handler/dto/request"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	VehicleID uuid.UUID
	LotID     uuid.UUID
	SpaceType string
	Start     time.Time
	Length    time.Duration
}

// NewBookingBuilder starts a two-hour booking one hour after now.
func NewBookingBuilder(vehicleID, lotID uuid.UUID, now time.Time) *BookingBuilder {
	return &BookingBuilder{
		VehicleID: vehicleID,
		LotID:     lotID,
		Start:     now.Add(time.Hour),
		Length:    2 * time.Hour,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildRequest() request.CreateBookingRequest {
	return request.CreateBookingRequest{
		VehicleID: b.VehicleID,
		LotID:     b.LotID,
		SpaceType: b.SpaceType,
		StartTime: b.Start,
		EndTime:   b.Start.Add(b.Length),
	}
}
