package commands

import (
	"context"
	"log/slog"

	"parking-engine/internal/domain/lot"
	"parking-engine/internal/pkg/clock"
	"parking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

// notifier pushes committed occupancy changes out. Failures are logged, never returned.
type notifier struct {
	uow       shared.UnitOfWork
	publisher shared.OccupancyPublisher
	metrics   shared.EngineMetrics
	clock     clock.Clock
}

func newNotifier(uow shared.UnitOfWork, publisher shared.OccupancyPublisher, metrics shared.EngineMetrics, clk clock.Clock) notifier {
	if publisher == nil {
		publisher = shared.NoopPublisher{}
	}
	if metrics == nil {
		metrics = shared.NoopMetrics{}
	}
	return notifier{uow: uow, publisher: publisher, metrics: metrics, clock: clk}
}

func (n notifier) occupancyChanged(ctx context.Context, lotID uuid.UUID) {
	ctx = context.WithoutCancel(ctx)
	var occ lot.Occupancy
	err := n.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		spaces, err := tx.Spaces().ListByLot(ctx, lotID)
		if err != nil {
			return err
		}
		occ = lot.Tally(spaces)
		return nil
	})
	if err != nil {
		slog.Warn("failed to read occupancy snapshot", "lot_id", lotID, "error", err.Error())
		return
	}

	n.metrics.OccupancyChanged(lotID, occ)
	if err := n.publisher.Publish(ctx, lotID, occ, n.clock.Now()); err != nil {
		slog.Warn("failed to publish occupancy", "lot_id", lotID, "error", err.Error())
	}
}
