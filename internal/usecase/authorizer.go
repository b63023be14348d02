package usecase

import (
	"context"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/user"
	"parking-engine/internal/infra"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// Authorizer decides whether a principal may act on an entity.
// Users act on what they own, lot admins on their lot, system admins on everything.
type Authorizer interface {
	ManageLot(p user.Principal, lotID uuid.UUID) error
	ManageSpace(ctx context.Context, p user.Principal, spaceID int64) error
	Vehicle(ctx context.Context, p user.Principal, vehicleID uuid.UUID) error
	// OwnVehicle is stricter than Vehicle: lot admins get no access through a parked session.
	OwnVehicle(ctx context.Context, p user.Principal, vehicleID uuid.UUID) error
	// Enter allows the owner, or an admin of the target lot.
	Enter(ctx context.Context, p user.Principal, vehicleID, lotID uuid.UUID) error
	// Exit allows the owner, or an admin of the lot the vehicle is parked in.
	Exit(ctx context.Context, p user.Principal, vehicleID uuid.UUID) error
	Session(ctx context.Context, p user.Principal, sessionID uuid.UUID) error
	Booking(ctx context.Context, p user.Principal, orderID uuid.UUID) error
	Violation(ctx context.Context, p user.Principal, violationID uuid.UUID) error
	Target(ctx context.Context, p user.Principal, targetType billing.TargetType, targetID uuid.UUID) error
}

type authorizerImpl struct {
	uow shared.UnitOfWork
}

func NewAuthorizer(uow shared.UnitOfWork) Authorizer {
	return &authorizerImpl{uow: uow}
}

func forbidden(p user.Principal) error {
	return errs.Wrapf(errs.ErrForbidden, "principal %s (%s)", p.UserID, p.Role)
}

func notFound(err error, what string) error {
	if infra.IsNotFound(err) {
		return errs.Mark(errs.Wrap(err, what), errs.ErrNotFound)
	}
	return errs.Wrap(err, what)
}

// allow passes when p owns the entity or administers its lot.
func allow(p user.Principal, ownerID, lotID uuid.UUID) error {
	if p.UserID == ownerID || p.CanManageLot(lotID) {
		return nil
	}
	return forbidden(p)
}

func (a *authorizerImpl) ManageLot(p user.Principal, lotID uuid.UUID) error {
	if p.CanManageLot(lotID) {
		return nil
	}
	return forbidden(p)
}

func (a *authorizerImpl) ManageSpace(ctx context.Context, p user.Principal, spaceID int64) error {
	if p.IsSystemAdmin() {
		return nil
	}
	return a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Spaces().FindByID(ctx, spaceID)
		if err != nil {
			return notFound(err, "find space")
		}
		return a.ManageLot(p, s.LotID())
	})
}

func (a *authorizerImpl) ownerOf(ctx context.Context, tx shared.Tx, vehicleID uuid.UUID) (uuid.UUID, error) {
	v, err := tx.Vehicles().FindByID(ctx, vehicleID)
	if err != nil {
		return uuid.Nil, notFound(err, "find vehicle")
	}
	return v.OwnerID(), nil
}

func (a *authorizerImpl) Vehicle(ctx context.Context, p user.Principal, vehicleID uuid.UUID) error {
	if p.IsSystemAdmin() {
		return nil
	}
	return a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		ownerID, err := a.ownerOf(ctx, tx, vehicleID)
		if err != nil {
			return err
		}
		if ownerID == p.UserID {
			return nil
		}
		// Lot admins may look at vehicles currently parked in their lot.
		if s, err := tx.Sessions().FindActiveByVehicle(ctx, vehicleID); err == nil && p.CanManageLot(s.LotID()) {
			return nil
		}
		return forbidden(p)
	})
}

func (a *authorizerImpl) OwnVehicle(ctx context.Context, p user.Principal, vehicleID uuid.UUID) error {
	if p.IsSystemAdmin() {
		return nil
	}
	return a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		ownerID, err := a.ownerOf(ctx, tx, vehicleID)
		if err != nil {
			return err
		}
		if ownerID != p.UserID {
			return forbidden(p)
		}
		return nil
	})
}

func (a *authorizerImpl) Enter(ctx context.Context, p user.Principal, vehicleID, lotID uuid.UUID) error {
	if p.CanManageLot(lotID) {
		return nil
	}
	return a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		ownerID, err := a.ownerOf(ctx, tx, vehicleID)
		if err != nil {
			return err
		}
		if ownerID != p.UserID {
			return forbidden(p)
		}
		return nil
	})
}

func (a *authorizerImpl) Exit(ctx context.Context, p user.Principal, vehicleID uuid.UUID) error {
	return a.Vehicle(ctx, p, vehicleID)
}

func (a *authorizerImpl) Session(ctx context.Context, p user.Principal, sessionID uuid.UUID) error {
	if p.IsSystemAdmin() {
		return nil
	}
	return a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Sessions().FindByID(ctx, sessionID)
		if err != nil {
			return notFound(err, "find session")
		}
		ownerID, err := a.ownerOf(ctx, tx, s.VehicleID())
		if err != nil && !errs.Is(err, errs.ErrNotFound) {
			return err
		}
		return allow(p, ownerID, s.LotID())
	})
}

func (a *authorizerImpl) Booking(ctx context.Context, p user.Principal, orderID uuid.UUID) error {
	if p.IsSystemAdmin() {
		return nil
	}
	return a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Bookings().FindByID(ctx, orderID)
		if err != nil {
			return notFound(err, "find reservation")
		}
		return allow(p, o.UserID(), o.LotID())
	})
}

func (a *authorizerImpl) Violation(ctx context.Context, p user.Principal, violationID uuid.UUID) error {
	if p.IsSystemAdmin() {
		return nil
	}
	return a.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Violations().FindByID(ctx, violationID)
		if err != nil {
			return notFound(err, "find violation")
		}
		ownerID, err := a.ownerOf(ctx, tx, v.VehicleID())
		if err != nil && !errs.Is(err, errs.ErrNotFound) {
			return err
		}
		return allow(p, ownerID, v.LotID())
	})
}

func (a *authorizerImpl) Target(ctx context.Context, p user.Principal, targetType billing.TargetType, targetID uuid.UUID) error {
	switch targetType {
	case billing.TargetSession:
		return a.Session(ctx, p, targetID)
	case billing.TargetReservation:
		return a.Booking(ctx, p, targetID)
	case billing.TargetViolation:
		return a.Violation(ctx, p, targetID)
	default:
		return errs.Wrapf(errs.ErrValidation, "unknown target type %q", targetType)
	}
}
