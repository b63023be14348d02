package queries

import (
	"context"

	"parking-engine/internal/domain/vehicle"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type VehicleQueries interface {
	GetVehicle(ctx context.Context, vehicleID uuid.UUID) (*VehicleView, error)
	ListVehicles(ctx context.Context, ownerID uuid.UUID) ([]*VehicleView, error)
	// FindVehiclesByPlate normalizes plate first. Plates are unique per owner only,
	// so several vehicles may match.
	FindVehiclesByPlate(ctx context.Context, plate string) ([]*VehicleView, error)
}

type vehicleQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewVehicleQueries(uow shared.UnitOfWork) VehicleQueries {
	return &vehicleQueriesImpl{uow: uow}
}

func (q *vehicleQueriesImpl) GetVehicle(ctx context.Context, vehicleID uuid.UUID) (*VehicleView, error) {
	var view *VehicleView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Vehicles().FindByID(ctx, vehicleID)
		if err != nil {
			return readErr(err, "find vehicle")
		}
		view = NewVehicleView(v)
		return nil
	})
	return view, err
}

func (q *vehicleQueriesImpl) ListVehicles(ctx context.Context, ownerID uuid.UUID) ([]*VehicleView, error) {
	var views []*VehicleView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.Vehicles().ListByOwner(ctx, ownerID)
		if err != nil {
			return readErr(err, "list vehicles")
		}
		views = mapViews(rows, NewVehicleView)
		return nil
	})
	return views, err
}

func (q *vehicleQueriesImpl) FindVehiclesByPlate(ctx context.Context, plate string) ([]*VehicleView, error) {
	normalized, err := vehicle.NormalizePlate(plate)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "plate"), errs.ErrValidation)
	}
	var views []*VehicleView
	err = q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.Vehicles().ListByPlate(ctx, normalized)
		if err != nil {
			return readErr(err, "find vehicles")
		}
		views = mapViews(rows, NewVehicleView)
		return nil
	})
	return views, err
}
