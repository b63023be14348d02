package commands

import (
	"context"
	"log/slog"

	"parking-engine/internal/domain/vehicle"
	reqdto "parking-engine/internal/handler/dto/request"
	"parking-engine/internal/infra"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type VehicleCommands interface {
	RegisterVehicle(ctx context.Context, ownerID uuid.UUID, req reqdto.VehicleRequest) (*vehicle.Vehicle, error)
	UpdateVehicle(ctx context.Context, vehicleID uuid.UUID, req reqdto.VehicleRequest) (*vehicle.Vehicle, error)
	DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error
}

type vehicleCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewVehicleCommands(uow shared.UnitOfWork, clk clock.Clock) VehicleCommands {
	return &vehicleCommandsImpl{uow: uow, clock: clk}
}

func (c *vehicleCommandsImpl) RegisterVehicle(ctx context.Context, ownerID uuid.UUID, req reqdto.VehicleRequest) (*vehicle.Vehicle, error) {
	v, err := vehicle.NewVehicle(ownerID, req.Plate, req.Attributes(), c.clock.Now())
	if err != nil {
		return nil, fail(err, errs.ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lock(ctx, shared.NameLock("plate", ownerID.String()+"/"+v.Plate())); err != nil {
			return storeErr(err, "lock plate")
		}
		if err := tx.Vehicles().Create(ctx, v); err != nil {
			return storeErr(err, "register vehicle")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("vehicle registered", "vehicle_id", v.ID(), "owner_id", ownerID, "plate", v.Plate())
	return v, nil
}

func (c *vehicleCommandsImpl) UpdateVehicle(ctx context.Context, vehicleID uuid.UUID, req reqdto.VehicleRequest) (*vehicle.Vehicle, error) {
	var updated *vehicle.Vehicle
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lock(ctx, shared.VehicleLock(vehicleID)); err != nil {
			return storeErr(err, "lock vehicle")
		}
		v, err := tx.Vehicles().FindByID(ctx, vehicleID)
		if err != nil {
			return storeErr(err, "find vehicle")
		}
		if err := v.Update(req.Plate, req.Attributes(), c.clock.Now()); err != nil {
			return fail(err, errs.ErrValidation)
		}
		if err := tx.Vehicles().Update(ctx, v); err != nil {
			return storeErr(err, "update vehicle")
		}
		updated = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("vehicle updated", "vehicle_id", vehicleID, "plate", updated.Plate())
	return updated, nil
}

// DeleteVehicle refuses while the vehicle is parked or holds reservations.
func (c *vehicleCommandsImpl) DeleteVehicle(ctx context.Context, vehicleID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lock(ctx, shared.VehicleLock(vehicleID)); err != nil {
			return storeErr(err, "lock vehicle")
		}
		if _, err := tx.Vehicles().FindByID(ctx, vehicleID); err != nil {
			return storeErr(err, "find vehicle")
		}
		_, err := tx.Sessions().FindActiveByVehicle(ctx, vehicleID)
		if err == nil {
			return errs.Wrapf(errs.ErrConflict, "vehicle %s is parked", vehicleID)
		}
		if !infra.IsNotFound(err) {
			return storeErr(err, "find active session")
		}
		holding, err := tx.Bookings().CountHoldingByVehicle(ctx, vehicleID)
		if err != nil {
			return storeErr(err, "count reservations")
		}
		if holding > 0 {
			return errs.Wrapf(errs.ErrConflict, "vehicle %s has %d open reservations", vehicleID, holding)
		}
		return storeErr(tx.Vehicles().Delete(ctx, vehicleID), "delete vehicle")
	})
	if err != nil {
		return err
	}

	slog.Info("vehicle deleted", "vehicle_id", vehicleID)
	return nil
}
