package request

import (
	"time"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	VehicleID uuid.UUID `json:"vehicle_id" binding:"required"`
	LotID     uuid.UUID `json:"lot_id" binding:"required"`
	SpaceType string    `json:"space_type"`
	StartTime time.Time `json:"start_time" binding:"required"`
	EndTime   time.Time `json:"end_time" binding:"required"`
}
