package commands

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/booking"
	"parking-engine/internal/domain/session"
	"parking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// SweepReport counts what one sweep changed.
type SweepReport struct {
	NoShows        int
	Completed      int
	UnpaidFees     int
	EscalatedFines int
	Failed         int
}

// Sweeper applies the time-driven policies: no-shows, completion of ended
// reservations and escalation of unpaid fees and fines. Every rule is idempotent.
type Sweeper interface {
	Run(ctx context.Context, now time.Time) (SweepReport, error)
}

type sweeperImpl struct {
	uow     shared.UnitOfWork
	rules   Rules
	metrics shared.EngineMetrics
}

func NewSweeper(uow shared.UnitOfWork, rules Rules, metrics shared.EngineMetrics) Sweeper {
	if metrics == nil {
		metrics = shared.NoopMetrics{}
	}
	return &sweeperImpl{uow: uow, rules: rules, metrics: metrics}
}

func (s *sweeperImpl) Run(ctx context.Context, now time.Time) (SweepReport, error) {
	var report SweepReport

	var orders []*booking.Order
	var sessions []*session.Session
	var fines []*billing.Violation
	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		if orders, err = tx.Bookings().ListConfirmedStartedBefore(ctx, now); err != nil {
			return err
		}
		if sessions, err = tx.Sessions().ListUnpaidClosedBefore(ctx, now.Add(-s.rules.Billing.UnpaidFeeAfter)); err != nil {
			return err
		}
		fines, err = tx.Violations().ListUnpaidDetectedBefore(ctx, now.Add(-s.rules.Billing.UnpaidFineAfter))
		return err
	})
	if err != nil {
		return report, storeErr(err, "scan sweep candidates")
	}

	for _, o := range orders {
		changed, err := s.sweepReservation(ctx, o.ID(), now)
		s.tally(&report, changed, err, "reservation", o.ID())
	}
	for _, sess := range sessions {
		changed, err := s.escalateFee(ctx, sess.ID(), now)
		if changed {
			report.UnpaidFees++
		}
		s.tally(&report, "", err, "session", sess.ID())
	}
	for _, v := range fines {
		changed, err := s.escalateFine(ctx, v.ID(), now)
		if changed {
			report.EscalatedFines++
		}
		s.tally(&report, "", err, "violation", v.ID())
	}

	if report != (SweepReport{}) {
		slog.Info("sweep finished",
			"no_shows", report.NoShows,
			"completed", report.Completed,
			"unpaid_fees", report.UnpaidFees,
			"escalated_fines", report.EscalatedFines,
			"failed", report.Failed,
		)
	}
	return report, nil
}

func (s *sweeperImpl) tally(report *SweepReport, outcome string, err error, kind string, id uuid.UUID) {
	if err != nil {
		report.Failed++
		slog.Warn("sweep step failed", "kind", kind, "id", id, "error", err.Error())
		return
	}
	switch outcome {
	case string(booking.StatusCancelled):
		report.NoShows++
	case string(booking.StatusCompleted):
		report.Completed++
	}
}

// sweepReservation cancels a no-show or completes an ended reservation.
// It returns the new status, or "" when nothing applied.
func (s *sweeperImpl) sweepReservation(ctx context.Context, orderID uuid.UUID, now time.Time) (string, error) {
	var outcome string
	var fined *billing.Violation
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Bookings().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if err := tx.Lock(ctx, shared.LotLock(found.LotID()), shared.TargetLock(orderID)); err != nil {
			return err
		}
		o, err := tx.Bookings().FindByID(ctx, orderID)
		if err != nil {
			return err
		}
		if o.Status() != booking.StatusConfirmed {
			return nil
		}

		if !o.IsClaimed() {
			if !s.rules.Billing.NoShowDue(o.Slot().Start(), now) {
				return nil
			}
			return s.noShow(ctx, tx, o, now, &outcome, &fined)
		}

		if now.Before(o.Slot().End()) {
			return nil
		}
		linked, err := tx.Sessions().FindByID(ctx, *o.SessionID())
		if err != nil {
			return err
		}
		if linked.IsActive() {
			return nil
		}
		if err := o.Complete(now, true); err != nil {
			return err
		}
		outcome = string(booking.StatusCompleted)
		return tx.Bookings().Update(ctx, o)
	})
	if err != nil {
		return "", err
	}
	if outcome != "" {
		s.metrics.BookingTransition(outcome)
	}
	if fined != nil {
		s.metrics.ViolationRecorded(fined.Type(), fined.Fine())
	}
	return outcome, nil
}

func (s *sweeperImpl) noShow(ctx context.Context, tx shared.Tx, o *booking.Order, now time.Time, outcome *string, fined **billing.Violation) error {
	if err := o.Cancel(now); err != nil {
		return err
	}
	if err := tx.Bookings().Update(ctx, o); err != nil {
		return err
	}
	*outcome = string(booking.StatusCancelled)

	exists, err := tx.Violations().ExistsFor(ctx, billing.ViolationNoShow, o.ID())
	if err != nil || exists {
		return err
	}
	l, err := tx.Lots().FindByID(ctx, o.LotID())
	if err != nil {
		return err
	}
	reservationID := o.ID()
	v, err := billing.NewViolation(billing.ViolationRef{
		ReservationID: &reservationID,
		VehicleID:     o.VehicleID(),
		LotID:         o.LotID(),
	}, billing.ViolationNoShow, fmt.Sprintf("no arrival for reservation %s", o.Code()), s.rules.Billing.NoShowFine(l.HourlyRate()), now)
	if err != nil {
		return err
	}
	if err := tx.Violations().Create(ctx, v); err != nil {
		return err
	}
	*fined = v
	slog.Info("reservation marked no-show", "reservation_id", o.ID(), "violation_id", v.ID())
	return nil
}

func (s *sweeperImpl) escalateFee(ctx context.Context, sessionID uuid.UUID, now time.Time) (bool, error) {
	var escalated *billing.Violation
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lock(ctx, shared.TargetLock(sessionID)); err != nil {
			return err
		}
		sess, err := tx.Sessions().FindByID(ctx, sessionID)
		if err != nil {
			return err
		}
		outstanding := sess.Outstanding()
		if !outstanding.IsPositive() || sess.ExitAt() == nil || !s.rules.Billing.FeeOverdue(*sess.ExitAt(), now) {
			return nil
		}
		exists, err := tx.Violations().ExistsFor(ctx, billing.ViolationUnpaidFee, sessionID)
		if err != nil || exists {
			return err
		}
		id := sess.ID()
		v, err := billing.NewViolation(billing.ViolationRef{
			SessionID:     &id,
			ReservationID: sess.ReservationID(),
			VehicleID:     sess.VehicleID(),
			LotID:         sess.LotID(),
		}, billing.ViolationUnpaidFee, "parking fee "+outstanding.StringFixed(2)+" unpaid", s.rules.Billing.Escalate(outstanding), now)
		if err != nil {
			return err
		}
		if err := tx.Violations().Create(ctx, v); err != nil {
			return err
		}
		escalated = v
		return nil
	})
	if err != nil || escalated == nil {
		return false, err
	}
	slog.Info("unpaid fee escalated", "session_id", sessionID, "violation_id", escalated.ID())
	s.metrics.ViolationRecorded(escalated.Type(), escalated.Fine())
	return true, nil
}

func (s *sweeperImpl) escalateFine(ctx context.Context, violationID uuid.UUID, now time.Time) (bool, error) {
	var escalated *billing.Violation
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lock(ctx, shared.TargetLock(violationID)); err != nil {
			return err
		}
		v, err := tx.Violations().FindByID(ctx, violationID)
		if err != nil {
			return err
		}
		// Escalations are not escalated again.
		if v.Type() == billing.ViolationUnpaidFine || v.IsPaid() || !v.Fine().IsPositive() ||
			!s.rules.Billing.FineOverdue(v.DetectedAt(), now) {
			return nil
		}
		exists, err := tx.Violations().ExistsFor(ctx, billing.ViolationUnpaidFine, violationID)
		if err != nil || exists {
			return err
		}
		ref := v.Ref()
		parentID := v.ID()
		ref.ParentID = &parentID
		e, err := billing.NewViolation(ref, billing.ViolationUnpaidFine,
			fmt.Sprintf("%s fine %s unpaid", v.Type(), v.Fine().StringFixed(2)), s.rules.Billing.Escalate(v.Fine()), now)
		if err != nil {
			return err
		}
		if err := tx.Violations().Create(ctx, e); err != nil {
			return err
		}
		escalated = e
		return nil
	})
	if err != nil || escalated == nil {
		return false, err
	}
	slog.Info("unpaid fine escalated", "violation_id", violationID, "escalation_id", escalated.ID())
	s.metrics.ViolationRecorded(escalated.Type(), escalated.Fine())
	return true, nil
}
