package shared

import (
	"context"
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/lot"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OccupancyPublisher receives lot snapshots after a committed change.
// Failures are logged by callers and never fail the command.
type OccupancyPublisher interface {
	Publish(ctx context.Context, lotID uuid.UUID, occ lot.Occupancy, at time.Time) error
}

// EngineMetrics observes committed engine events.
type EngineMetrics interface {
	SessionOpened(lotID uuid.UUID, spaceType lot.SpaceType)
	SessionClosed(lotID uuid.UUID, duration time.Duration, fee decimal.Decimal)
	EntryRejected(reason string)
	BookingCreated(lotID uuid.UUID, spaceType lot.SpaceType)
	BookingRejected(reason string)
	BookingTransition(status string)
	ViolationRecorded(vt billing.ViolationType, fine decimal.Decimal)
	PaymentSettled(target billing.TargetType, amount decimal.Decimal)
	OccupancyChanged(lotID uuid.UUID, occ lot.Occupancy)
}

type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, uuid.UUID, lot.Occupancy, time.Time) error { return nil }

type NoopMetrics struct{}

func (NoopMetrics) SessionOpened(uuid.UUID, lot.SpaceType)                   {}
func (NoopMetrics) SessionClosed(uuid.UUID, time.Duration, decimal.Decimal)  {}
func (NoopMetrics) EntryRejected(string)                                     {}
func (NoopMetrics) BookingCreated(uuid.UUID, lot.SpaceType)                  {}
func (NoopMetrics) BookingRejected(string)                                   {}
func (NoopMetrics) BookingTransition(string)                                 {}
func (NoopMetrics) ViolationRecorded(billing.ViolationType, decimal.Decimal) {}
func (NoopMetrics) PaymentSettled(billing.TargetType, decimal.Decimal)       {}
func (NoopMetrics) OccupancyChanged(uuid.UUID, lot.Occupancy)                {}
