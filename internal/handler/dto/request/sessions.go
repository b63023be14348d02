package request

import (
	"github.com/google/uuid"
)

type EnterRequest struct {
	VehicleID uuid.UUID `json:"vehicle_id" binding:"required"`
	LotID     uuid.UUID `json:"lot_id" binding:"required"`
	SpaceType string    `json:"space_type"`
}

type ExitRequest struct {
	VehicleID uuid.UUID `json:"vehicle_id" binding:"required"`
}
