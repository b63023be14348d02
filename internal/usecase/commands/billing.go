package commands

import (
	"context"
	"log/slog"
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/booking"
	"parking-engine/internal/domain/session"
	reqdto "parking-engine/internal/handler/dto/request"
	"parking-engine/internal/infra"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BillingCommands interface {
	RecordViolation(ctx context.Context, req reqdto.RecordViolationRequest) (*billing.Violation, error)
	PayFine(ctx context.Context, violationID uuid.UUID, req reqdto.PayFineRequest) (*billing.Payment, error)
	SettlePayment(ctx context.Context, req reqdto.SettlePaymentRequest) (*billing.Payment, error)
}

type billingCommandsImpl struct {
	uow     shared.UnitOfWork
	metrics shared.EngineMetrics
	clock   clock.Clock
}

func NewBillingCommands(uow shared.UnitOfWork, metrics shared.EngineMetrics, clk clock.Clock) BillingCommands {
	if metrics == nil {
		metrics = shared.NoopMetrics{}
	}
	return &billingCommandsImpl{uow: uow, metrics: metrics, clock: clk}
}

func (c *billingCommandsImpl) RecordViolation(ctx context.Context, req reqdto.RecordViolationRequest) (*billing.Violation, error) {
	vt, fine, err := req.ToDomain()
	if err != nil {
		return nil, fail(err, errs.ErrValidation)
	}

	var recorded *billing.Violation
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := c.lockSession(ctx, tx, req.SessionID)
		if err != nil {
			return err
		}
		sessionID := s.ID()
		v, err := billing.NewViolation(billing.ViolationRef{
			SessionID:     &sessionID,
			ReservationID: s.ReservationID(),
			VehicleID:     s.VehicleID(),
			LotID:         s.LotID(),
		}, vt, req.Description, fine, c.clock.Now())
		if err != nil {
			return fail(err, errs.ErrValidation)
		}
		if err := tx.Violations().Create(ctx, v); err != nil {
			return storeErr(err, "record violation")
		}
		s.FlagViolation(fine)
		if err := tx.Sessions().Update(ctx, s); err != nil {
			return storeErr(err, "flag session")
		}
		recorded = v
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("violation recorded",
		"violation_id", recorded.ID(),
		"session_id", req.SessionID,
		"type", recorded.Type(),
		"fine", recorded.Fine().StringFixed(2),
	)
	c.metrics.ViolationRecorded(recorded.Type(), recorded.Fine())
	return recorded, nil
}

// lockSession takes vehicle then target locks for a session and re-reads it.
func (c *billingCommandsImpl) lockSession(ctx context.Context, tx shared.Tx, sessionID uuid.UUID) (*session.Session, error) {
	found, err := tx.Sessions().FindByID(ctx, sessionID)
	if err != nil {
		return nil, storeErr(err, "find session")
	}
	if err := tx.Lock(ctx, shared.VehicleLock(found.VehicleID()), shared.TargetLock(sessionID)); err != nil {
		return nil, storeErr(err, "lock session")
	}
	s, err := tx.Sessions().FindByID(ctx, sessionID)
	if err != nil {
		return nil, storeErr(err, "find session")
	}
	return s, nil
}

func (c *billingCommandsImpl) PayFine(ctx context.Context, violationID uuid.UUID, req reqdto.PayFineRequest) (*billing.Payment, error) {
	method, amount, err := req.ToDomain()
	if err != nil {
		return nil, fail(err, errs.ErrValidation)
	}

	var payment *billing.Payment
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := c.lockViolation(ctx, tx, violationID)
		if err != nil {
			return err
		}
		due := v.Fine()
		if amount != nil {
			due = *amount
		}
		payment, err = c.settle(ctx, tx, v.ID(), billing.TargetViolation, v.LotID(), v.Outstanding(), due, method, req.TransactionNo, v.MarkPaid)
		if err != nil {
			return err
		}
		return storeErr(tx.Violations().Update(ctx, v), "mark violation paid")
	})
	if err != nil {
		return nil, err
	}

	c.settled(payment)
	return payment, nil
}

func (c *billingCommandsImpl) lockViolation(ctx context.Context, tx shared.Tx, violationID uuid.UUID) (*billing.Violation, error) {
	if err := tx.Lock(ctx, shared.TargetLock(violationID)); err != nil {
		return nil, storeErr(err, "lock violation")
	}
	v, err := tx.Violations().FindByID(ctx, violationID)
	if err != nil {
		return nil, storeErr(err, "find violation")
	}
	if v.IsPaid() {
		return nil, errs.Wrapf(errs.ErrAlreadyPaid, "violation %s", violationID)
	}
	return v, nil
}

func (c *billingCommandsImpl) SettlePayment(ctx context.Context, req reqdto.SettlePaymentRequest) (*billing.Payment, error) {
	targetType, amount, method, err := req.ToDomain()
	if err != nil {
		return nil, fail(err, errs.ErrValidation)
	}

	var payment *billing.Payment
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		switch targetType {
		case billing.TargetSession:
			s, err := c.lockSession(ctx, tx, req.TargetID)
			if err != nil {
				return err
			}
			if s.IsActive() {
				return errs.Wrapf(errs.ErrInvalidState, "session %s is still active", s.ID())
			}
			if s.PaymentStatus() == billing.PaymentPaid {
				return errs.Wrapf(errs.ErrAlreadyPaid, "session %s", s.ID())
			}
			payment, err = c.settle(ctx, tx, s.ID(), targetType, s.LotID(), s.Outstanding(), amount, method, req.TransactionNo, s.MarkPaid)
			if err != nil {
				return err
			}
			return storeErr(tx.Sessions().Update(ctx, s), "mark session paid")

		case billing.TargetReservation:
			o, err := c.lockReservation(ctx, tx, req.TargetID)
			if err != nil {
				return err
			}
			if o.Status() == booking.StatusCancelled {
				return errs.Wrapf(errs.ErrInvalidState, "reservation %s is cancelled", o.ID())
			}
			if o.PaymentStatus() == billing.PaymentPaid {
				return errs.Wrapf(errs.ErrAlreadyPaid, "reservation %s", o.ID())
			}
			payment, err = c.settle(ctx, tx, o.ID(), targetType, o.LotID(), o.Outstanding(), amount, method, req.TransactionNo, o.MarkPaid)
			if err != nil {
				return err
			}
			return storeErr(tx.Bookings().Update(ctx, o), "mark reservation paid")

		default:
			v, err := c.lockViolation(ctx, tx, req.TargetID)
			if err != nil {
				return err
			}
			payment, err = c.settle(ctx, tx, v.ID(), targetType, v.LotID(), v.Outstanding(), amount, method, req.TransactionNo, v.MarkPaid)
			if err != nil {
				return err
			}
			return storeErr(tx.Violations().Update(ctx, v), "mark violation paid")
		}
	})
	if err != nil {
		return nil, err
	}

	c.settled(payment)
	return payment, nil
}

func (c *billingCommandsImpl) lockReservation(ctx context.Context, tx shared.Tx, orderID uuid.UUID) (*booking.Order, error) {
	found, err := tx.Bookings().FindByID(ctx, orderID)
	if err != nil {
		return nil, storeErr(err, "find reservation")
	}
	if err := tx.Lock(ctx, shared.LotLock(found.LotID()), shared.TargetLock(orderID)); err != nil {
		return nil, storeErr(err, "lock reservation")
	}
	o, err := tx.Bookings().FindByID(ctx, orderID)
	if err != nil {
		return nil, storeErr(err, "find reservation")
	}
	return o, nil
}

// settle checks the amount, marks the target paid and stores the payment record.
// Any failure aborts the surrounding transaction, so nothing is recorded.
func (c *billingCommandsImpl) settle(
	ctx context.Context,
	tx shared.Tx,
	targetID uuid.UUID,
	targetType billing.TargetType,
	lotID uuid.UUID,
	outstanding, amount decimal.Decimal,
	method billing.Method,
	transactionNo string,
	markPaid func(now time.Time) error,
) (*billing.Payment, error) {
	if err := billing.CheckSettlement(outstanding, amount); err != nil {
		switch {
		case errs.Is(err, billing.ErrNothingOutstanding):
			return nil, fail(err, errs.ErrInvalidState)
		case errs.Is(err, billing.ErrNonPositiveAmount):
			return nil, fail(err, errs.ErrValidation)
		default:
			return nil, fail(err, errs.ErrAmountMismatch)
		}
	}

	now := c.clock.Now()
	p, err := billing.NewPayment(targetID, targetType, lotID, amount, method, transactionNo, now)
	if err != nil {
		return nil, fail(err, errs.ErrValidation)
	}
	_, err = tx.Payments().FindByTransactionNo(ctx, p.TransactionNo())
	if err == nil {
		return nil, errs.Wrapf(errs.ErrConflict, "transaction %s already recorded", p.TransactionNo())
	}
	if !infra.IsNotFound(err) {
		return nil, storeErr(err, "check transaction")
	}

	if err := markPaid(now); err != nil {
		return nil, fail(err, errs.ErrAlreadyPaid)
	}
	if err := tx.Payments().Create(ctx, p); err != nil {
		return nil, storeErr(err, "record payment")
	}
	return p, nil
}

func (c *billingCommandsImpl) settled(p *billing.Payment) {
	slog.Info("payment settled",
		"payment_id", p.ID(),
		"target_id", p.TargetID(),
		"target_type", p.TargetType(),
		"lot_id", p.LotID(),
		"amount", p.Amount().StringFixed(2),
		"method", p.Method(),
		"transaction_no", p.TransactionNo(),
	)
	c.metrics.PaymentSettled(p.TargetType(), p.Amount())
}
