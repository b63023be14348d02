package queries

import (
	"context"

	"parking-engine/internal/domain/lot"
	"parking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

type LotQueries interface {
	GetLot(ctx context.Context, lotID uuid.UUID) (*LotView, error)
	ListLots(ctx context.Context) ([]*LotView, error)
	Occupancy(ctx context.Context, lotID uuid.UUID) (map[string]OccupancyView, error)
	ListSpaces(ctx context.Context, lotID uuid.UUID) ([]*SpaceView, error)
}

type lotQueriesImpl struct {
	uow shared.UnitOfWork
}

func NewLotQueries(uow shared.UnitOfWork) LotQueries {
	return &lotQueriesImpl{uow: uow}
}

func (q *lotQueriesImpl) GetLot(ctx context.Context, lotID uuid.UUID) (*LotView, error) {
	var view *LotView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Lots().FindByID(ctx, lotID)
		if err != nil {
			return readErr(err, "find lot")
		}
		spaces, err := tx.Spaces().ListByLot(ctx, lotID)
		if err != nil {
			return readErr(err, "list spaces")
		}
		view = NewLotView(l, lot.Tally(spaces))
		return nil
	})
	return view, err
}

func (q *lotQueriesImpl) ListLots(ctx context.Context) ([]*LotView, error) {
	var views []*LotView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		lots, err := tx.Lots().List(ctx)
		if err != nil {
			return readErr(err, "list lots")
		}
		views = make([]*LotView, 0, len(lots))
		for _, l := range lots {
			spaces, err := tx.Spaces().ListByLot(ctx, l.ID())
			if err != nil {
				return readErr(err, "list spaces")
			}
			views = append(views, NewLotView(l, lot.Tally(spaces)))
		}
		return nil
	})
	return views, err
}

func (q *lotQueriesImpl) Occupancy(ctx context.Context, lotID uuid.UUID) (map[string]OccupancyView, error) {
	view, err := q.GetLot(ctx, lotID)
	if err != nil {
		return nil, err
	}
	return view.Occupancy, nil
}

func (q *lotQueriesImpl) ListSpaces(ctx context.Context, lotID uuid.UUID) ([]*SpaceView, error) {
	var views []*SpaceView
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Lots().FindByID(ctx, lotID); err != nil {
			return readErr(err, "find lot")
		}
		spaces, err := tx.Spaces().ListByLot(ctx, lotID)
		if err != nil {
			return readErr(err, "list spaces")
		}
		views = mapViews(spaces, NewSpaceView)
		return nil
	})
	return views, err
}
