package commands

import (
	"context"
	"log/slog"

	"parking-engine/internal/domain/booking"
	"parking-engine/internal/domain/lot"
	reqdto "parking-engine/internal/handler/dto/request"
	"parking-engine/internal/infra"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

const codeAttempts = 5

var ErrCodeExhausted = errs.Mark(errs.New("could not allocate a unique reservation code"), errs.ErrConflict)

type BookingCommands interface {
	CreateBooking(ctx context.Context, userID uuid.UUID, req reqdto.CreateBookingRequest) (*booking.Order, error)
	CancelBooking(ctx context.Context, orderID uuid.UUID) (*booking.Order, error)
	CompleteBooking(ctx context.Context, orderID uuid.UUID) (*booking.Order, error)
}

type bookingCommandsImpl struct {
	uow     shared.UnitOfWork
	codes   booking.CodeGenerator
	rules   Rules
	metrics shared.EngineMetrics
	clock   clock.Clock
}

func NewBookingCommands(uow shared.UnitOfWork, codes booking.CodeGenerator, rules Rules, metrics shared.EngineMetrics, clk clock.Clock) BookingCommands {
	if codes == nil {
		codes = booking.NewRandomCodeGenerator()
	}
	if metrics == nil {
		metrics = shared.NoopMetrics{}
	}
	return &bookingCommandsImpl{
		uow:     uow,
		codes:   codes,
		rules:   rules,
		metrics: metrics,
		clock:   clk,
	}
}

func (c *bookingCommandsImpl) CreateBooking(ctx context.Context, userID uuid.UUID, req reqdto.CreateBookingRequest) (*booking.Order, error) {
	t, err := lot.NewSpaceType(req.SpaceType)
	if err != nil {
		return nil, fail(err, errs.ErrValidation)
	}
	slot, err := booking.NewTimeSlot(req.StartTime, req.EndTime)
	if err != nil {
		return nil, fail(err, errs.ErrInvalidInterval)
	}
	now := c.clock.Now()
	if slot.Start().Before(now.Add(-c.rules.PastTolerance)) {
		return nil, errs.Wrapf(errs.ErrInvalidInterval, "start %s is in the past", slot.Start())
	}

	var created *booking.Order
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lock(ctx, shared.VehicleLock(req.VehicleID), shared.LotLock(req.LotID)); err != nil {
			return storeErr(err, "lock reservation keys")
		}
		if _, err := tx.Vehicles().FindByID(ctx, req.VehicleID); err != nil {
			return storeErr(err, "find vehicle")
		}
		l, err := tx.Lots().FindByID(ctx, req.LotID)
		if err != nil {
			return storeErr(err, "find lot")
		}

		capacity := l.Capacity(t)
		holding, err := tx.Bookings().ListHolding(ctx, req.LotID, t, slot)
		if err != nil {
			return storeErr(err, "list reservations")
		}
		if peak := booking.PeakConcurrency(booking.Slots(holding), slot); peak+1 > capacity {
			return errs.Wrapf(errs.ErrNoCapacity, "%d of %d %s spaces already reserved in window", peak, capacity, t)
		}

		code, err := c.uniqueCode(ctx, tx)
		if err != nil {
			return err
		}
		o := booking.NewOrder(userID, req.VehicleID, req.LotID, t, slot, code, l.HourlyRate(), now)
		if err := o.Confirm(now); err != nil {
			return fail(err, errs.ErrInvalidState)
		}
		if err := tx.Bookings().Create(ctx, o); err != nil {
			return storeErr(err, "create reservation")
		}
		created = o
		return nil
	})
	if err != nil {
		if errs.Is(err, errs.ErrNoCapacity) {
			c.metrics.BookingRejected(rejectNoCapacity)
		}
		return nil, err
	}

	slog.Info("reservation created",
		"reservation_id", created.ID(),
		"code", created.Code(),
		"lot_id", created.LotID(),
		"vehicle_id", created.VehicleID(),
		"start", created.Slot().Start(),
		"end", created.Slot().End(),
		"fee", created.Fee().StringFixed(2),
	)
	c.metrics.BookingCreated(created.LotID(), created.SpaceType())
	return created, nil
}

func (c *bookingCommandsImpl) uniqueCode(ctx context.Context, tx shared.Tx) (string, error) {
	for range codeAttempts {
		code, err := c.codes.Generate()
		if err != nil {
			return "", errs.Wrap(err, "generate reservation code")
		}
		_, err = tx.Bookings().FindByCode(ctx, code)
		if infra.IsNotFound(err) {
			return code, nil
		}
		if err != nil {
			return "", storeErr(err, "check reservation code")
		}
	}
	return "", ErrCodeExhausted
}

func (c *bookingCommandsImpl) CancelBooking(ctx context.Context, orderID uuid.UUID) (*booking.Order, error) {
	order, err := c.transition(ctx, orderID, func(_ context.Context, _ shared.Tx, o *booking.Order) error {
		return o.Cancel(c.clock.Now())
	})
	if err != nil {
		return nil, err
	}
	slog.Info("reservation cancelled", "reservation_id", order.ID(), "lot_id", order.LotID())
	return order, nil
}

func (c *bookingCommandsImpl) CompleteBooking(ctx context.Context, orderID uuid.UUID) (*booking.Order, error) {
	order, err := c.transition(ctx, orderID, func(ctx context.Context, tx shared.Tx, o *booking.Order) error {
		sessionClosed := false
		if o.SessionID() != nil {
			s, err := tx.Sessions().FindByID(ctx, *o.SessionID())
			if err != nil {
				return storeErr(err, "find linked session")
			}
			sessionClosed = !s.IsActive()
		}
		return o.Complete(c.clock.Now(), sessionClosed)
	})
	if err != nil {
		return nil, err
	}
	slog.Info("reservation completed", "reservation_id", order.ID(), "lot_id", order.LotID())
	return order, nil
}

// transition re-reads the order under its lot lock, applies fn and stores the result.
func (c *bookingCommandsImpl) transition(
	ctx context.Context,
	orderID uuid.UUID,
	fn func(ctx context.Context, tx shared.Tx, o *booking.Order) error,
) (*booking.Order, error) {
	var updated *booking.Order
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Bookings().FindByID(ctx, orderID)
		if err != nil {
			return storeErr(err, "find reservation")
		}
		if err := tx.Lock(ctx, shared.LotLock(found.LotID())); err != nil {
			return storeErr(err, "lock lot")
		}
		o, err := tx.Bookings().FindByID(ctx, orderID)
		if err != nil {
			return storeErr(err, "find reservation")
		}
		if err := fn(ctx, tx, o); err != nil {
			if errs.Is(err, booking.ErrInvalidTransition) || errs.Is(err, booking.ErrNotYetEnded) {
				return fail(err, errs.ErrInvalidState)
			}
			return err
		}
		if err := tx.Bookings().Update(ctx, o); err != nil {
			return storeErr(err, "update reservation")
		}
		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}
	c.metrics.BookingTransition(string(updated.Status()))
	return updated, nil
}
