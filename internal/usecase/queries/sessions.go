package queries

import (
	"context"

	"parking-engine/internal/infra"
	"parking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type SessionQueries interface {
	GetSession(ctx context.Context, sessionID uuid.UUID) (*SessionView, error)
	// ActiveSessionFor returns nil when the vehicle is not parked.
	ActiveSessionFor(ctx context.Context, vehicleID uuid.UUID) (*SessionView, error)
	ListSessionsByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*SessionView, error)
}

type sessionQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewSessionQueries(uow shared.UnitOfWork) SessionQueries {
	return &sessionQueriesImpl{uow: uow}
}

func (q *sessionQueriesImpl) GetSession(ctx context.Context, sessionID uuid.UUID) (*SessionView, error) {
	var view *SessionView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Sessions().FindByID(ctx, sessionID)
		if err != nil {
			return readErr(err, "find session")
		}
		view = NewSessionView(s)
		return nil
	})
	return view, err
}

func (q *sessionQueriesImpl) ActiveSessionFor(ctx context.Context, vehicleID uuid.UUID) (*SessionView, error) {
	var view *SessionView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Sessions().FindActiveByVehicle(ctx, vehicleID)
		if infra.IsNotFound(err) {
			return nil
		}
		if err != nil {
			return readErr(err, "find active session")
		}
		view = NewSessionView(s)
		return nil
	})
	return view, err
}

func (q *sessionQueriesImpl) ListSessionsByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*SessionView, error) {
	var views []*SessionView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		rows, err := tx.Sessions().ListByVehicle(ctx, vehicleID)
		if err != nil {
			return readErr(err, "list sessions")
		}
		views = mapViews(rows, NewSessionView)
		return nil
	})
	return views, err
}
