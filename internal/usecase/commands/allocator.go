package commands

import (
	"context"
	"log/slog"
	"time"

	"parking-engine/internal/domain/lot"
	"parking-engine/internal/infra"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// Allocator picks and frees spaces inside a caller's transaction.
// Callers hold the lot lock.
type Allocator struct{}

func (Allocator) acquire(ctx context.Context, tx shared.Tx, lotID uuid.UUID, t lot.SpaceType, now time.Time) (*lot.Space, error) {
	spaces, err := tx.Spaces().ListByLot(ctx, lotID)
	if err != nil {
		return nil, storeErr(err, "list spaces")
	}
	space, ok := lot.PickFree(spaces, t)
	if !ok {
		return nil, errs.Wrapf(errs.ErrNoCapacity, "lot %s has no free %s space", lotID, t)
	}
	if err := space.Occupy(now); err != nil {
		return nil, fail(err, errs.ErrInvalidState)
	}
	if err := tx.Spaces().Update(ctx, space); err != nil {
		return nil, storeErr(err, "occupy space")
	}
	return space, nil
}

func (Allocator) release(ctx context.Context, tx shared.Tx, spaceID int64, now time.Time) (*lot.Space, error) {
	space, err := tx.Spaces().FindByID(ctx, spaceID)
	if err != nil {
		return nil, storeErr(err, "find space")
	}
	if err := space.Release(now); err != nil {
		return nil, fail(err, errs.ErrInvalidState)
	}
	if err := tx.Spaces().Update(ctx, space); err != nil {
		return nil, storeErr(err, "release space")
	}
	return space, nil
}

// freeOf counts free spaces of a type.
func (Allocator) freeOf(ctx context.Context, tx shared.Tx, lotID uuid.UUID, t lot.SpaceType) (int, error) {
	spaces, err := tx.Spaces().ListByLot(ctx, lotID)
	if err != nil {
		return 0, storeErr(err, "list spaces")
	}
	return lot.Tally(spaces)[t].Free(), nil
}

// AllocatorCommands exposes manual space handling to lot operators.
type AllocatorCommands interface {
	AcquireSpace(ctx context.Context, lotID uuid.UUID, spaceType string) (*lot.Space, error)
	ReleaseSpace(ctx context.Context, spaceID int64) (*lot.Space, error)
}

type allocatorCommandsImpl struct {
	uow       shared.UnitOfWork
	allocator Allocator
	notifier  notifier
	clock     clock.Clock
}

func NewAllocatorCommands(uow shared.UnitOfWork, publisher shared.OccupancyPublisher, metrics shared.EngineMetrics, clk clock.Clock) AllocatorCommands {
	return &allocatorCommandsImpl{
		uow:      uow,
		notifier: newNotifier(uow, publisher, metrics, clk),
		clock:    clk,
	}
}

func (a *allocatorCommandsImpl) AcquireSpace(ctx context.Context, lotID uuid.UUID, spaceType string) (*lot.Space, error) {
	t, err := lot.NewSpaceType(spaceType)
	if err != nil {
		return nil, fail(err, errs.ErrValidation)
	}

	var space *lot.Space
	err = a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Lock(ctx, shared.LotLock(lotID)); err != nil {
			return storeErr(err, "lock lot")
		}
		if _, err := tx.Lots().FindByID(ctx, lotID); err != nil {
			return storeErr(err, "find lot")
		}
		space, err = a.allocator.acquire(ctx, tx, lotID, t, a.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("space acquired", "lot_id", lotID, "space_id", space.ID(), "space_type", t)
	a.notifier.occupancyChanged(ctx, lotID)
	return space, nil
}

func (a *allocatorCommandsImpl) ReleaseSpace(ctx context.Context, spaceID int64) (*lot.Space, error) {
	var space *lot.Space
	err := a.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		found, err := tx.Spaces().FindByID(ctx, spaceID)
		if err != nil {
			return storeErr(err, "find space")
		}
		if err := tx.Lock(ctx, shared.LotLock(found.LotID())); err != nil {
			return storeErr(err, "lock lot")
		}
		holder, err := tx.Sessions().FindActiveBySpace(ctx, spaceID)
		if err != nil && !infra.IsNotFound(err) {
			return storeErr(err, "find active session")
		}
		if holder != nil {
			return errs.Wrapf(errs.ErrInvalidState, "space %d is held by session %s", spaceID, holder.ID())
		}
		space, err = a.allocator.release(ctx, tx, spaceID, a.clock.Now())
		return err
	})
	if err != nil {
		return nil, err
	}

	slog.Info("space released", "lot_id", space.LotID(), "space_id", spaceID)
	a.notifier.occupancyChanged(ctx, space.LotID())
	return space, nil
}
