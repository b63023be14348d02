package queries

import (
	"context"
	"strings"

	"parking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetBooking(ctx context.Context, orderID uuid.UUID) (*BookingView, error)
	GetBookingByCode(ctx context.Context, code string) (*BookingView, error)
	ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewBookingQueries(uow shared.UnitOfWork) BookingQueries {
	return &bookingQueriesImpl{uow: uow}
}

func (q *bookingQueriesImpl) GetBooking(ctx context.Context, orderID uuid.UUID) (*BookingView, error) {
	var view *BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Bookings().FindByID(ctx, orderID)
		if err != nil {
			return readErr(err, "find reservation")
		}
		view = NewBookingView(o)
		return nil
	})
	return view, err
}

func (q *bookingQueriesImpl) GetBookingByCode(ctx context.Context, code string) (*BookingView, error) {
	var view *BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		o, err := tx.Bookings().FindByCode(ctx, strings.ToUpper(strings.TrimSpace(code)))
		if err != nil {
			return readErr(err, "find reservation by code")
		}
		view = NewBookingView(o)
		return nil
	})
	return view, err
}

func (q *bookingQueriesImpl) ListBookingsByUser(ctx context.Context, userID uuid.UUID) ([]*BookingView, error) {
	var views []*BookingView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.Bookings().ListByUser(ctx, userID)
		if err != nil {
			return readErr(err, "list reservations")
		}
		views = mapViews(rows, NewBookingView)
		return nil
	})
	return views, err
}
