package queries

import (
	"cmp"
	"context"
	"slices"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type BillingQueries interface {
	GetViolation(ctx context.Context, violationID uuid.UUID) (*ViolationView, error)
	ListViolationsByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*ViolationView, error)
	ListViolationsBySession(ctx context.Context, sessionID uuid.UUID) ([]*ViolationView, error)
	ListPaymentsByTarget(ctx context.Context, targetID uuid.UUID) ([]*PaymentView, error)
	// ListPaymentsByUser collects payments for the user's reservations and for the
	// sessions and violations of the vehicles the user owns.
	ListPaymentsByUser(ctx context.Context, userID uuid.UUID) ([]*PaymentView, error)
}

type billingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBillingQueries(uow shared.UnitOfWork) BillingQueries {
	return &billingQueriesImpl{uow: uow}
}

func (q *billingQueriesImpl) GetViolation(ctx context.Context, violationID uuid.UUID) (*ViolationView, error) {
	var view *ViolationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		v, err := tx.Violations().FindByID(ctx, violationID)
		if err != nil {
			return readErr(err, "find violation")
		}
		view = NewViolationView(v)
		return nil
	})
	return view, err
}

func (q *billingQueriesImpl) ListViolationsByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*ViolationView, error) {
	var views []*ViolationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.Violations().ListByVehicle(ctx, vehicleID)
		if err != nil {
			return readErr(err, "list violations")
		}
		views = mapViews(rows, NewViolationView)
		return nil
	})
	return views, err
}

func (q *billingQueriesImpl) ListViolationsBySession(ctx context.Context, sessionID uuid.UUID) ([]*ViolationView, error) {
	var views []*ViolationView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.Violations().ListBySession(ctx, sessionID)
		if err != nil {
			return readErr(err, "list violations")
		}
		views = mapViews(rows, NewViolationView)
		return nil
	})
	return views, err
}

func (q *billingQueriesImpl) ListPaymentsByTarget(ctx context.Context, targetID uuid.UUID) ([]*PaymentView, error) {
	var views []*PaymentView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.Payments().ListByTarget(ctx, targetID)
		if err != nil {
			return readErr(err, "list payments")
		}
		views = mapViews(rows, NewPaymentView)
		return nil
	})
	return views, err
}

func (q *billingQueriesImpl) ListPaymentsByUser(ctx context.Context, userID uuid.UUID) ([]*PaymentView, error) {
	var views []*PaymentView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var targets []uuid.UUID
		vehicles, err := tx.Vehicles().ListByOwner(ctx, userID)
		if err != nil {
			return readErr(err, "list vehicles")
		}
		for _, v := range vehicles {
			sessions, err := tx.Sessions().ListByVehicle(ctx, v.ID())
			if err != nil {
				return readErr(err, "list sessions")
			}
			for _, s := range sessions {
				targets = append(targets, s.ID())
			}
			violations, err := tx.Violations().ListByVehicle(ctx, v.ID())
			if err != nil {
				return readErr(err, "list violations")
			}
			for _, vi := range violations {
				targets = append(targets, vi.ID())
			}
		}
		orders, err := tx.Bookings().ListByUser(ctx, userID)
		if err != nil {
			return readErr(err, "list reservations")
		}
		for _, o := range orders {
			targets = append(targets, o.ID())
		}

		var rows []*billing.Payment
		seen := make(map[uuid.UUID]bool, len(targets))
		for _, id := range targets {
			if seen[id] {
				continue
			}
			seen[id] = true
			paid, err := tx.Payments().ListByTarget(ctx, id)
			if err != nil {
				return readErr(err, "list payments")
			}
			rows = append(rows, paid...)
		}
		slices.SortFunc(rows, func(a, b *billing.Payment) int {
			return cmp.Or(a.PaidAt().Compare(b.PaidAt()), cmp.Compare(a.ID().String(), b.ID().String()))
		})
		views = mapViews(rows, NewPaymentView)
		return nil
	})
	return views, err
}
