package request

import (
	"parking-engine/internal/domain/vehicle"
)

type VehicleRequest struct {
	Plate string `json:"plate" binding:"required,max=20"`
	Brand string `json:"brand" binding:"max=50"`
	Model string `json:"model" binding:"max=50"`
	Color string `json:"color" binding:"max=50"`
}

func (r VehicleRequest) Attributes() vehicle.Attributes {
	return vehicle.Attributes{Brand: r.Brand, Model: r.Model, Color: r.Color}
}
