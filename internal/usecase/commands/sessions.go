package commands

import (
	"context"
	"log/slog"
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/booking"
	"parking-engine/internal/domain/lot"
	"parking-engine/internal/domain/session"
	reqdto "parking-engine/internal/handler/dto/request"
	"parking-engine/internal/infra"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	rejectNoCapacity    = "no_capacity"
	rejectAlreadyParked = "already_parked"
)

type ExitResult struct {
	Session   *session.Session
	Violation *billing.Violation
	// Completed is set when the exit completed the linked reservation.
	Completed bool
}

type SessionCommands interface {
	Enter(ctx context.Context, req reqdto.EnterRequest) (*session.Session, error)
	Exit(ctx context.Context, req reqdto.ExitRequest) (*ExitResult, error)
}

type sessionCommandsImpl struct {
	uow       shared.UnitOfWork
	allocator Allocator
	rules     Rules
	notifier  notifier
	metrics   shared.EngineMetrics
	clock     clock.Clock
}

func NewSessionCommands(
	uow shared.UnitOfWork,
	rules Rules,
	publisher shared.OccupancyPublisher,
	metrics shared.EngineMetrics,
	clk clock.Clock,
) SessionCommands {
	n := newNotifier(uow, publisher, metrics, clk)
	return &sessionCommandsImpl{
		uow:      uow,
		rules:    rules,
		notifier: n,
		metrics:  n.metrics,
		clock:    clk,
	}
}

func (c *sessionCommandsImpl) Enter(ctx context.Context, req reqdto.EnterRequest) (*session.Session, error) {
	t, err := lot.NewSpaceType(req.SpaceType)
	if err != nil {
		return nil, fail(err, errs.ErrValidation)
	}

	var opened *session.Session
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lock(ctx, shared.VehicleLock(req.VehicleID)); err != nil {
			return storeErr(err, "lock vehicle")
		}
		if _, err := tx.Vehicles().FindByID(ctx, req.VehicleID); err != nil {
			return storeErr(err, "find vehicle")
		}
		active, err := tx.Sessions().FindActiveByVehicle(ctx, req.VehicleID)
		if err != nil && !infra.IsNotFound(err) {
			return storeErr(err, "find active session")
		}
		if active != nil {
			return errs.Wrapf(errs.ErrAlreadyParked, "vehicle %s is in session %s", req.VehicleID, active.ID())
		}

		if err := tx.Lock(ctx, shared.LotLock(req.LotID)); err != nil {
			return storeErr(err, "lock lot")
		}
		if _, err := tx.Lots().FindByID(ctx, req.LotID); err != nil {
			return storeErr(err, "find lot")
		}

		now := c.clock.Now()
		claim, err := c.findClaim(ctx, tx, req.VehicleID, req.LotID, t, now)
		if err != nil {
			return err
		}
		if claim == nil {
			if err := c.checkWalkInRoom(ctx, tx, req.LotID, t, now); err != nil {
				return err
			}
		}

		space, err := c.allocator.acquire(ctx, tx, req.LotID, t, now)
		if err != nil {
			return err
		}

		var reservationID *uuid.UUID
		if claim != nil {
			id := claim.ID()
			reservationID = &id
		}
		opened = session.Open(req.VehicleID, req.LotID, space.ID(), t, reservationID, now)
		if err := tx.Sessions().Create(ctx, opened); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.Mark(err, errs.ErrAlreadyParked)
			}
			return storeErr(err, "create session")
		}

		if claim != nil {
			if err := claim.Claim(opened.ID(), now); err != nil {
				return fail(err, errs.ErrInvalidState)
			}
			if err := tx.Bookings().Update(ctx, claim); err != nil {
				return storeErr(err, "claim reservation")
			}
		}
		return nil
	})
	if err != nil {
		c.rejected(err)
		return nil, err
	}

	slog.Info("vehicle entered",
		"session_id", opened.ID(),
		"vehicle_id", opened.VehicleID(),
		"lot_id", opened.LotID(),
		"space_id", opened.SpaceID(),
		"reservation_id", opened.ReservationID(),
	)
	c.metrics.SessionOpened(opened.LotID(), opened.SpaceType())
	c.notifier.occupancyChanged(ctx, opened.LotID())
	return opened, nil
}

func (c *sessionCommandsImpl) rejected(err error) {
	switch {
	case errs.Is(err, errs.ErrNoCapacity):
		c.metrics.EntryRejected(rejectNoCapacity)
	case errs.Is(err, errs.ErrAlreadyParked):
		c.metrics.EntryRejected(rejectAlreadyParked)
	}
}

// findClaim returns the vehicle's earliest reservation it may use on arrival at now.
func (c *sessionCommandsImpl) findClaim(ctx context.Context, tx shared.Tx, vehicleID, lotID uuid.UUID, t lot.SpaceType, now time.Time) (*booking.Order, error) {
	orders, err := tx.Bookings().ListConfirmedByVehicle(ctx, vehicleID, lotID)
	if err != nil {
		return nil, storeErr(err, "list reservations")
	}
	for _, o := range orders {
		if o.SpaceType() == t && o.ClaimableAt(now, c.rules.EarlyArrival) {
			return o, nil
		}
	}
	return nil, nil
}

// checkWalkInRoom keeps one space per confirmed, unclaimed reservation whose slot is running.
func (c *sessionCommandsImpl) checkWalkInRoom(ctx context.Context, tx shared.Tx, lotID uuid.UUID, t lot.SpaceType, now time.Time) error {
	instant, err := booking.NewTimeSlot(now, now.Add(time.Nanosecond))
	if err != nil {
		return fail(err, errs.ErrInvalidInterval)
	}
	holding, err := tx.Bookings().ListHolding(ctx, lotID, t, instant)
	if err != nil {
		return storeErr(err, "list reservations")
	}
	held := 0
	for _, o := range holding {
		if o.Status() == booking.StatusConfirmed && !o.IsClaimed() {
			held++
		}
	}
	if held == 0 {
		return nil
	}
	free, err := c.allocator.freeOf(ctx, tx, lotID, t)
	if err != nil {
		return err
	}
	if free <= held {
		return errs.Wrapf(errs.ErrNoCapacity, "%d free %s spaces are held for reservations", free, t)
	}
	return nil
}

func (c *sessionCommandsImpl) Exit(ctx context.Context, req reqdto.ExitRequest) (*ExitResult, error) {
	var result ExitResult
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lock(ctx, shared.VehicleLock(req.VehicleID)); err != nil {
			return storeErr(err, "lock vehicle")
		}
		s, err := tx.Sessions().FindActiveByVehicle(ctx, req.VehicleID)
		if err != nil {
			if infra.IsNotFound(err) {
				return errs.Mark(err, errs.ErrNotParked)
			}
			return storeErr(err, "find active session")
		}

		if err := tx.Lock(ctx, shared.LotLock(s.LotID())); err != nil {
			return storeErr(err, "lock lot")
		}
		l, err := tx.Lots().FindByID(ctx, s.LotID())
		if err != nil {
			return storeErr(err, "find lot")
		}

		now := c.clock.Now()
		if err := s.Close(now, c.rules.Fee, l.HourlyRate()); err != nil {
			return fail(err, errs.ErrInvalidState)
		}
		if _, err := c.allocator.release(ctx, tx, s.SpaceID(), now); err != nil {
			return err
		}

		if s.ReservationID() != nil {
			v, completed, err := c.settleReservation(ctx, tx, s, l, now)
			if err != nil {
				return err
			}
			result.Violation = v
			result.Completed = completed
		}

		if err := tx.Sessions().Update(ctx, s); err != nil {
			return storeErr(err, "close session")
		}
		result.Session = s
		return nil
	})
	if err != nil {
		return nil, err
	}

	s := result.Session
	slog.Info("vehicle exited",
		"session_id", s.ID(),
		"vehicle_id", s.VehicleID(),
		"lot_id", s.LotID(),
		"duration", s.Duration().String(),
		"fee", s.Fee().StringFixed(2),
		"violation", s.IsViolation(),
	)
	c.metrics.SessionClosed(s.LotID(), s.Duration(), s.Fee())
	if v := result.Violation; v != nil {
		c.metrics.ViolationRecorded(v.Type(), v.Fine())
	}
	if result.Completed {
		c.metrics.BookingTransition(string(booking.StatusCompleted))
	}
	c.notifier.occupancyChanged(ctx, s.LotID())
	return &result, nil
}

// settleReservation applies the overstay rule and completes the linked reservation.
// A cancelled reservation leaves the stay to close as a walk-in.
func (c *sessionCommandsImpl) settleReservation(ctx context.Context, tx shared.Tx, s *session.Session, l *lot.Lot, now time.Time) (*billing.Violation, bool, error) {
	order, err := tx.Bookings().FindByID(ctx, *s.ReservationID())
	if err != nil {
		return nil, false, storeErr(err, "find reservation")
	}
	if order.Status() == booking.StatusCancelled {
		return nil, false, nil
	}

	var recorded *billing.Violation
	if fine, over := c.rules.Billing.Overstay(now, order.Slot().End(), l.HourlyRate()); over {
		sessionID := s.ID()
		reservationID := order.ID()
		v, err := billing.NewViolation(billing.ViolationRef{
			SessionID:     &sessionID,
			ReservationID: &reservationID,
			VehicleID:     s.VehicleID(),
			LotID:         s.LotID(),
		}, billing.ViolationOverstay, "left after reserved end "+order.Slot().End().Format(time.RFC3339), fine, now)
		if err != nil {
			return nil, false, fail(err, errs.ErrValidation)
		}
		if err := tx.Violations().Create(ctx, v); err != nil {
			return nil, false, storeErr(err, "record overstay")
		}
		s.FlagViolation(fine)
		recorded = v
	}

	if order.Status() == booking.StatusConfirmed {
		if err := order.Complete(now, true); err != nil {
			return nil, false, fail(err, errs.ErrInvalidState)
		}
		if err := tx.Bookings().Update(ctx, order); err != nil {
			return nil, false, storeErr(err, "complete reservation")
		}
		return recorded, true, nil
	}
	return recorded, false, nil
}
