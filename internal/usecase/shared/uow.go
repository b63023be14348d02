package shared

import (
	"context"
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/booking"
	"parking-engine/internal/domain/lot"
	"parking-engine/internal/domain/session"
	"parking-engine/internal/domain/user"
	"parking-engine/internal/domain/vehicle"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: all-or-nothing transaction for commands. Locks taken through Tx are held until it ends.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent reads for queries, no locks, no writes.
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	// Lock blocks until every key is held exclusively by this transaction.
	// Callers take keys in LockKey order: vehicle, lot, target.
	Lock(ctx context.Context, keys ...LockKey) error

	Lots() LotRepository
	Spaces() SpaceRepository
	Sessions() SessionRepository
	Bookings() BookingRepository
	Violations() ViolationRepository
	Payments() PaymentRepository
	Vehicles() VehicleRepository
	Users() UserRepository
}

type LotRepository interface {
	Create(ctx context.Context, l *lot.Lot) error
	Update(ctx context.Context, l *lot.Lot) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*lot.Lot, error)
	List(ctx context.Context) ([]*lot.Lot, error)
}

type SpaceRepository interface {
	// Create stores s and returns the id assigned to it.
	Create(ctx context.Context, s *lot.Space) (int64, error)
	Update(ctx context.Context, s *lot.Space) error
	FindByID(ctx context.Context, id int64) (*lot.Space, error)
	// ListByLot is ordered by id.
	ListByLot(ctx context.Context, lotID uuid.UUID) ([]*lot.Space, error)
	DeleteByLot(ctx context.Context, lotID uuid.UUID) error
}

type SessionRepository interface {
	Create(ctx context.Context, s *session.Session) error
	Update(ctx context.Context, s *session.Session) error
	FindByID(ctx context.Context, id uuid.UUID) (*session.Session, error)
	FindActiveByVehicle(ctx context.Context, vehicleID uuid.UUID) (*session.Session, error)
	FindActiveBySpace(ctx context.Context, spaceID int64) (*session.Session, error)
	CountActiveByLot(ctx context.Context, lotID uuid.UUID) (int, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*session.Session, error)
	ListUnpaidClosedBefore(ctx context.Context, before time.Time) ([]*session.Session, error)
	// ListByLotBetween returns sessions of the lot whose stay overlaps [from, to), oldest entry first.
	ListByLotBetween(ctx context.Context, lotID uuid.UUID, from, to time.Time) ([]*session.Session, error)
}

type BookingRepository interface {
	Create(ctx context.Context, o *booking.Order) error
	Update(ctx context.Context, o *booking.Order) error
	FindByID(ctx context.Context, id uuid.UUID) (*booking.Order, error)
	FindByCode(ctx context.Context, code string) (*booking.Order, error)
	// ListHolding returns PENDING/CONFIRMED orders of the lot and type overlapping window.
	ListHolding(ctx context.Context, lotID uuid.UUID, t lot.SpaceType, window booking.TimeSlot) ([]*booking.Order, error)
	CountHoldingByLot(ctx context.Context, lotID uuid.UUID) (int, error)
	CountHoldingByVehicle(ctx context.Context, vehicleID uuid.UUID) (int, error)
	// ListConfirmedByVehicle returns CONFIRMED orders for the vehicle in the lot, oldest start first.
	ListConfirmedByVehicle(ctx context.Context, vehicleID, lotID uuid.UUID) ([]*booking.Order, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*booking.Order, error)
	// ListConfirmedStartedBefore feeds the sweeper.
	ListConfirmedStartedBefore(ctx context.Context, before time.Time) ([]*booking.Order, error)
	// ListByLotBetween returns orders of the lot in any status whose slot overlaps [from, to).
	ListByLotBetween(ctx context.Context, lotID uuid.UUID, from, to time.Time) ([]*booking.Order, error)
}

type ViolationRepository interface {
	Create(ctx context.Context, v *billing.Violation) error
	Update(ctx context.Context, v *billing.Violation) error
	FindByID(ctx context.Context, id uuid.UUID) (*billing.Violation, error)
	ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*billing.Violation, error)
	ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*billing.Violation, error)
	// ExistsFor reports whether a violation of type vt already references refID
	// as its session, reservation or parent.
	ExistsFor(ctx context.Context, vt billing.ViolationType, refID uuid.UUID) (bool, error)
	ListUnpaidDetectedBefore(ctx context.Context, before time.Time) ([]*billing.Violation, error)
	ListByLotDetectedBetween(ctx context.Context, lotID uuid.UUID, from, to time.Time) ([]*billing.Violation, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *billing.Payment) error
	FindByTransactionNo(ctx context.Context, transactionNo string) (*billing.Payment, error)
	ListByTarget(ctx context.Context, targetID uuid.UUID) ([]*billing.Payment, error)
	ListByLotPaidBetween(ctx context.Context, lotID uuid.UUID, from, to time.Time) ([]*billing.Payment, error)
}

type VehicleRepository interface {
	Create(ctx context.Context, v *vehicle.Vehicle) error
	Update(ctx context.Context, v *vehicle.Vehicle) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*vehicle.Vehicle, error)
	// ListByPlate matches the normalized plate across owners.
	ListByPlate(ctx context.Context, plate string) ([]*vehicle.Vehicle, error)
}

type UserRepository interface {
	Create(ctx context.Context, u *user.User) error
	FindByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	FindByUsername(ctx context.Context, username string) (*user.User, error)
}
