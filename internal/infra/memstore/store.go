// Package memstore is a transactional in-process implementation of the engine's
// persistence ports. Every transaction stages its writes and publishes them
// atomically on commit; a failed transaction leaves no trace.
package memstore

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/booking"
	"parking-engine/internal/domain/lot"
	"parking-engine/internal/domain/session"
	"parking-engine/internal/domain/user"
	"parking-engine/internal/domain/vehicle"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/usecase/shared"

	"github.com/google/uuid"
)

var errReadOnly = errs.New("write attempted in read-only transaction")

const defaultLockTimeout = 5 * time.Second

type Store struct {
	mu          sync.RWMutex
	locks       *keyedLocks
	lockTimeout time.Duration
	nextSpaceID atomic.Int64

	lots       *table[uuid.UUID, lot.Lot]
	spaces     *table[int64, lot.Space]
	sessions   *table[uuid.UUID, session.Session]
	bookings   *table[uuid.UUID, booking.Order]
	violations *table[uuid.UUID, billing.Violation]
	payments   *table[uuid.UUID, billing.Payment]
	vehicles   *table[uuid.UUID, vehicle.Vehicle]
	users      *table[uuid.UUID, user.User]
}

func NewStore(lockTimeout time.Duration) *Store {
	if lockTimeout <= 0 {
		lockTimeout = defaultLockTimeout
	}
	return &Store{
		locks:       newKeyedLocks(),
		lockTimeout: lockTimeout,
		lots:        newTable("lot", func(l *lot.Lot) uuid.UUID { return l.ID() }, nil),
		spaces:      newTable("space", func(s *lot.Space) int64 { return s.ID() }, nil),
		sessions: newTable("session", func(s *session.Session) uuid.UUID { return s.ID() },
			func(s *session.Session) string {
				if !s.IsActive() {
					return ""
				}
				return "active vehicle " + s.VehicleID().String()
			}),
		bookings: newTable("reservation", func(o *booking.Order) uuid.UUID { return o.ID() },
			func(o *booking.Order) string { return "code " + o.Code() }),
		violations: newTable("violation", func(v *billing.Violation) uuid.UUID { return v.ID() }, nil),
		payments: newTable("payment", func(p *billing.Payment) uuid.UUID { return p.ID() },
			func(p *billing.Payment) string { return "transaction " + p.TransactionNo() }),
		vehicles: newTable("vehicle", func(v *vehicle.Vehicle) uuid.UUID { return v.ID() },
			func(v *vehicle.Vehicle) string { return "plate " + v.OwnerID().String() + "/" + v.Plate() }),
		users: newTable("user", func(u *user.User) uuid.UUID { return u.ID() },
			func(u *user.User) string { return "username " + strings.ToLower(u.Username()) }),
	}
}

// NewUnitOfWork exposes the store through the shared.UnitOfWork port.
func NewUnitOfWork(s *Store) shared.UnitOfWork {
	return s
}

func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := s.begin(false)
	defer tx.finish()

	if err := fn(ctx, tx); err != nil {
		return err
	}
	return tx.commit()
}

func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	tx := s.begin(true)
	defer tx.finish()

	return fn(ctx, tx)
}

func (s *Store) begin(readOnly bool) *memTx {
	tx := &memTx{store: s, readOnly: readOnly, held: make(map[shared.LockKey]struct{})}
	if readOnly {
		s.mu.RLock()
	}
	tx.lots = newOverlay(s.lots, tx)
	tx.spaces = newOverlay(s.spaces, tx)
	tx.sessions = newOverlay(s.sessions, tx)
	tx.bookings = newOverlay(s.bookings, tx)
	tx.violations = newOverlay(s.violations, tx)
	tx.payments = newOverlay(s.payments, tx)
	tx.vehicles = newOverlay(s.vehicles, tx)
	tx.users = newOverlay(s.users, tx)
	return tx
}

type stagedTable interface {
	validate() error
	apply()
}

type memTx struct {
	store    *Store
	readOnly bool
	held     map[shared.LockKey]struct{}
	order    []shared.LockKey
	staged   []stagedTable
	done     bool

	lots       *overlay[uuid.UUID, lot.Lot]
	spaces     *overlay[int64, lot.Space]
	sessions   *overlay[uuid.UUID, session.Session]
	bookings   *overlay[uuid.UUID, booking.Order]
	violations *overlay[uuid.UUID, billing.Violation]
	payments   *overlay[uuid.UUID, billing.Payment]
	vehicles   *overlay[uuid.UUID, vehicle.Vehicle]
	users      *overlay[uuid.UUID, user.User]
}

// Lock is re-entrant within a transaction.
func (t *memTx) Lock(ctx context.Context, keys ...shared.LockKey) error {
	if err := t.writable(); err != nil {
		return err
	}
	for _, key := range keys {
		if _, ok := t.held[key]; ok {
			continue
		}
		lockCtx, cancel := context.WithTimeout(ctx, t.store.lockTimeout)
		err := t.store.locks.acquire(lockCtx, key)
		cancel()
		if err != nil {
			return err
		}
		t.held[key] = struct{}{}
		t.order = append(t.order, key)
	}
	return nil
}

func (t *memTx) writable() error {
	if t.readOnly {
		return errReadOnly
	}
	return nil
}

// Read-only transactions hold the read lock for their whole life.
func (t *memTx) rlock() {
	if !t.readOnly {
		t.store.mu.RLock()
	}
}

func (t *memTx) runlock() {
	if !t.readOnly {
		t.store.mu.RUnlock()
	}
}

func (t *memTx) commit() error {
	t.store.mu.Lock()
	defer t.store.mu.Unlock()

	for _, s := range t.staged {
		if err := s.validate(); err != nil {
			return err
		}
	}
	for _, s := range t.staged {
		s.apply()
	}
	return nil
}

// finish releases keyed locks in reverse order; runs after commit so waiters see the result.
func (t *memTx) finish() {
	if t.done {
		return
	}
	t.done = true
	if t.readOnly {
		t.store.mu.RUnlock()
	}
	for i := len(t.order) - 1; i >= 0; i-- {
		t.store.locks.release(t.order[i])
	}
}

func (t *memTx) Lots() shared.LotRepository             { return &lotRepo{o: t.lots} }
func (t *memTx) Spaces() shared.SpaceRepository         { return &spaceRepo{o: t.spaces, store: t.store} }
func (t *memTx) Sessions() shared.SessionRepository     { return &sessionRepo{o: t.sessions} }
func (t *memTx) Bookings() shared.BookingRepository     { return &bookingRepo{o: t.bookings} }
func (t *memTx) Violations() shared.ViolationRepository { return &violationRepo{o: t.violations} }
func (t *memTx) Payments() shared.PaymentRepository     { return &paymentRepo{o: t.payments} }
func (t *memTx) Vehicles() shared.VehicleRepository     { return &vehicleRepo{o: t.vehicles} }
func (t *memTx) Users() shared.UserRepository           { return &userRepo{o: t.users} }
