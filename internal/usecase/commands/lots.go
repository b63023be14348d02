package commands

import (
	"context"
	"log/slog"
	"time"

	"parking-engine/internal/domain/lot"
	reqdto "parking-engine/internal/handler/dto/request"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type LotCommands interface {
	CreateLot(ctx context.Context, req reqdto.CreateLotRequest) (*lot.Lot, error)
	DeleteLot(ctx context.Context, lotID uuid.UUID) error
	AddSpaces(ctx context.Context, lotID uuid.UUID, req reqdto.AddSpacesRequest) (*lot.Lot, error)
	UpdateRate(ctx context.Context, lotID uuid.UUID, rate decimal.Decimal) (*lot.Lot, error)
}

type lotCommandsImpl struct {
	uow      shared.UnitOfWork
	notifier notifier
	clock    clock.Clock
}

func NewLotCommands(uow shared.UnitOfWork, publisher shared.OccupancyPublisher, metrics shared.EngineMetrics, clk clock.Clock) LotCommands {
	return &lotCommandsImpl{
		uow:      uow,
		notifier: newNotifier(uow, publisher, metrics, clk),
		clock:    clk,
	}
}

func (c *lotCommandsImpl) CreateLot(ctx context.Context, req reqdto.CreateLotRequest) (*lot.Lot, error) {
	rate, caps, err := req.ToDomain()
	if err != nil {
		return nil, fail(err, errs.ErrValidation)
	}
	now := c.clock.Now()
	l, err := lot.NewLot(req.Name, req.Location, rate, caps, now)
	if err != nil {
		return nil, fail(err, errs.ErrValidation)
	}

	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lots().Create(ctx, l); err != nil {
			return storeErr(err, "create lot")
		}
		return createSpaces(ctx, tx, l.ID(), l.Capacities(), nil, now)
	})
	if err != nil {
		return nil, err
	}

	slog.Info("lot created", "lot_id", l.ID(), "name", l.Name(), "capacity", l.TotalCapacity())
	c.notifier.occupancyChanged(ctx, l.ID())
	return l, nil
}

// createSpaces adds count spaces per type, numbering labels after the existing ones.
func createSpaces(ctx context.Context, tx shared.Tx, lotID uuid.UUID, counts lot.Capacities, existing []*lot.Space, now time.Time) error {
	for _, t := range counts.Types() {
		seq := lot.CountOfType(existing, t)
		for range counts[t] {
			seq++
			if _, err := tx.Spaces().Create(ctx, lot.NewSpace(lotID, t, seq, now)); err != nil {
				return storeErr(err, "create space")
			}
		}
	}
	return nil
}

func (c *lotCommandsImpl) DeleteLot(ctx context.Context, lotID uuid.UUID) error {
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lock(ctx, shared.LotLock(lotID)); err != nil {
			return storeErr(err, "lock lot")
		}
		if _, err := tx.Lots().FindByID(ctx, lotID); err != nil {
			return storeErr(err, "find lot")
		}

		active, err := tx.Sessions().CountActiveByLot(ctx, lotID)
		if err != nil {
			return storeErr(err, "count active sessions")
		}
		if active > 0 {
			return errs.Wrapf(errs.ErrConflict, "lot has %d active sessions", active)
		}
		holding, err := tx.Bookings().CountHoldingByLot(ctx, lotID)
		if err != nil {
			return storeErr(err, "count reservations")
		}
		if holding > 0 {
			return errs.Wrapf(errs.ErrConflict, "lot has %d pending or confirmed reservations", holding)
		}

		if err := tx.Spaces().DeleteByLot(ctx, lotID); err != nil {
			return storeErr(err, "delete spaces")
		}
		return storeErr(tx.Lots().Delete(ctx, lotID), "delete lot")
	})
	if err != nil {
		return err
	}

	slog.Info("lot deleted", "lot_id", lotID)
	return nil
}

func (c *lotCommandsImpl) AddSpaces(ctx context.Context, lotID uuid.UUID, req reqdto.AddSpacesRequest) (*lot.Lot, error) {
	t, err := lot.NewSpaceType(req.SpaceType)
	if err != nil {
		return nil, fail(err, errs.ErrValidation)
	}

	var updated *lot.Lot
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lock(ctx, shared.LotLock(lotID)); err != nil {
			return storeErr(err, "lock lot")
		}
		l, err := tx.Lots().FindByID(ctx, lotID)
		if err != nil {
			return storeErr(err, "find lot")
		}
		now := c.clock.Now()
		if err := l.AddCapacity(t, req.Count, now); err != nil {
			return fail(err, errs.ErrValidation)
		}
		existing, err := tx.Spaces().ListByLot(ctx, lotID)
		if err != nil {
			return storeErr(err, "list spaces")
		}
		if err := createSpaces(ctx, tx, lotID, lot.Capacities{t: req.Count}, existing, now); err != nil {
			return err
		}
		if err := tx.Lots().Update(ctx, l); err != nil {
			return storeErr(err, "update lot")
		}
		updated = l
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("lot capacity extended", "lot_id", lotID, "space_type", t, "added", req.Count)
	c.notifier.occupancyChanged(ctx, lotID)
	return updated, nil
}

func (c *lotCommandsImpl) UpdateRate(ctx context.Context, lotID uuid.UUID, rate decimal.Decimal) (*lot.Lot, error) {
	var updated *lot.Lot
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lock(ctx, shared.LotLock(lotID)); err != nil {
			return storeErr(err, "lock lot")
		}
		l, err := tx.Lots().FindByID(ctx, lotID)
		if err != nil {
			return storeErr(err, "find lot")
		}
		if err := l.ChangeRate(rate, c.clock.Now()); err != nil {
			return fail(err, errs.ErrValidation)
		}
		if err := tx.Lots().Update(ctx, l); err != nil {
			return storeErr(err, "update lot")
		}
		updated = l
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Info("lot rate changed", "lot_id", lotID, "hourly_rate", updated.HourlyRate().StringFixed(2))
	return updated, nil
}
