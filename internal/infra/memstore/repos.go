package memstore

import (
	"cmp"
	"context"
	"slices"
	"strings"
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/booking"
	"parking-engine/internal/domain/lot"
	"parking-engine/internal/domain/session"
	"parking-engine/internal/domain/user"
	"parking-engine/internal/domain/vehicle"
	"parking-engine/internal/infra"

	"github.com/google/uuid"
)

func byTime[T any](rows []*T, at func(*T) time.Time) []*T {
	slices.SortFunc(rows, func(a, b *T) int { return at(a).Compare(at(b)) })
	return rows
}

type lotRepo struct {
	o *overlay[uuid.UUID, lot.Lot]
}

func (r *lotRepo) Create(_ context.Context, l *lot.Lot) error { return r.o.insert(l) }
func (r *lotRepo) Update(_ context.Context, l *lot.Lot) error { return r.o.update(l) }
func (r *lotRepo) Delete(_ context.Context, id uuid.UUID) error {
	return r.o.remove(id)
}

func (r *lotRepo) FindByID(_ context.Context, id uuid.UUID) (*lot.Lot, error) {
	l, ok := r.o.get(id)
	if !ok {
		return nil, infra.NotFound("lot")
	}
	return l, nil
}

func (r *lotRepo) List(_ context.Context) ([]*lot.Lot, error) {
	rows := r.o.scan(func(*lot.Lot) bool { return true })
	slices.SortFunc(rows, func(a, b *lot.Lot) int {
		return cmp.Or(a.CreatedAt().Compare(b.CreatedAt()), strings.Compare(a.Name(), b.Name()))
	})
	return rows, nil
}

type spaceRepo struct {
	o     *overlay[int64, lot.Space]
	store *Store
}

func (r *spaceRepo) Create(_ context.Context, s *lot.Space) (int64, error) {
	if err := r.o.tx.writable(); err != nil {
		return 0, err
	}
	id := r.store.nextSpaceID.Add(1)
	stored := lot.ReconstructSpace(id, s.LotID(), s.SpaceType(), s.Label(), s.IsOccupied(), s.UpdatedAt())
	if err := r.o.insert(stored); err != nil {
		return 0, err
	}
	return id, nil
}

func (r *spaceRepo) Update(_ context.Context, s *lot.Space) error { return r.o.update(s) }

func (r *spaceRepo) FindByID(_ context.Context, id int64) (*lot.Space, error) {
	s, ok := r.o.get(id)
	if !ok {
		return nil, infra.NotFound("space")
	}
	return s, nil
}

func (r *spaceRepo) ListByLot(_ context.Context, lotID uuid.UUID) ([]*lot.Space, error) {
	rows := r.o.scan(func(s *lot.Space) bool { return s.LotID() == lotID })
	slices.SortFunc(rows, func(a, b *lot.Space) int { return cmp.Compare(a.ID(), b.ID()) })
	return rows, nil
}

func (r *spaceRepo) DeleteByLot(_ context.Context, lotID uuid.UUID) error {
	for _, s := range r.o.scan(func(s *lot.Space) bool { return s.LotID() == lotID }) {
		if err := r.o.remove(s.ID()); err != nil {
			return err
		}
	}
	return nil
}

type sessionRepo struct {
	o *overlay[uuid.UUID, session.Session]
}

func (r *sessionRepo) Create(_ context.Context, s *session.Session) error { return r.o.insert(s) }
func (r *sessionRepo) Update(_ context.Context, s *session.Session) error { return r.o.update(s) }

func (r *sessionRepo) FindByID(_ context.Context, id uuid.UUID) (*session.Session, error) {
	s, ok := r.o.get(id)
	if !ok {
		return nil, infra.NotFound("session")
	}
	return s, nil
}

func (r *sessionRepo) FindActiveByVehicle(_ context.Context, vehicleID uuid.UUID) (*session.Session, error) {
	rows := r.o.scan(func(s *session.Session) bool { return s.IsActive() && s.VehicleID() == vehicleID })
	if len(rows) == 0 {
		return nil, infra.NotFound("active session")
	}
	return rows[0], nil
}

func (r *sessionRepo) FindActiveBySpace(_ context.Context, spaceID int64) (*session.Session, error) {
	rows := r.o.scan(func(s *session.Session) bool { return s.IsActive() && s.SpaceID() == spaceID })
	if len(rows) == 0 {
		return nil, infra.NotFound("active session")
	}
	return rows[0], nil
}

func (r *sessionRepo) CountActiveByLot(_ context.Context, lotID uuid.UUID) (int, error) {
	return len(r.o.scan(func(s *session.Session) bool { return s.IsActive() && s.LotID() == lotID })), nil
}

func (r *sessionRepo) ListByVehicle(_ context.Context, vehicleID uuid.UUID) ([]*session.Session, error) {
	rows := r.o.scan(func(s *session.Session) bool { return s.VehicleID() == vehicleID })
	return byTime(rows, (*session.Session).EntryAt), nil
}

func (r *sessionRepo) ListUnpaidClosedBefore(_ context.Context, before time.Time) ([]*session.Session, error) {
	rows := r.o.scan(func(s *session.Session) bool {
		return !s.IsActive() && s.PaymentStatus() == billing.PaymentUnpaid &&
			s.ExitAt() != nil && !s.ExitAt().After(before) && s.Fee().IsPositive()
	})
	return byTime(rows, (*session.Session).EntryAt), nil
}

func (r *sessionRepo) ListByLotBetween(_ context.Context, lotID uuid.UUID, from, to time.Time) ([]*session.Session, error) {
	rows := r.o.scan(func(s *session.Session) bool {
		return s.LotID() == lotID && s.EntryAt().Before(to) && (s.ExitAt() == nil || s.ExitAt().After(from))
	})
	return byTime(rows, (*session.Session).EntryAt), nil
}

type bookingRepo struct {
	o *overlay[uuid.UUID, booking.Order]
}

func (r *bookingRepo) Create(_ context.Context, o *booking.Order) error { return r.o.insert(o) }
func (r *bookingRepo) Update(_ context.Context, o *booking.Order) error { return r.o.update(o) }

func (r *bookingRepo) FindByID(_ context.Context, id uuid.UUID) (*booking.Order, error) {
	o, ok := r.o.get(id)
	if !ok {
		return nil, infra.NotFound("reservation")
	}
	return o, nil
}

func (r *bookingRepo) FindByCode(_ context.Context, code string) (*booking.Order, error) {
	rows := r.o.scan(func(o *booking.Order) bool { return o.Code() == code })
	if len(rows) == 0 {
		return nil, infra.NotFound("reservation")
	}
	return rows[0], nil
}

func orderStart(o *booking.Order) time.Time { return o.Slot().Start() }

func (r *bookingRepo) ListHolding(_ context.Context, lotID uuid.UUID, t lot.SpaceType, window booking.TimeSlot) ([]*booking.Order, error) {
	rows := r.o.scan(func(o *booking.Order) bool {
		return o.LotID() == lotID && o.SpaceType() == t && o.Status().HoldsCapacity() && o.Slot().Overlaps(window)
	})
	return byTime(rows, orderStart), nil
}

func (r *bookingRepo) CountHoldingByLot(_ context.Context, lotID uuid.UUID) (int, error) {
	return len(r.o.scan(func(o *booking.Order) bool {
		return o.LotID() == lotID && o.Status().HoldsCapacity()
	})), nil
}

func (r *bookingRepo) CountHoldingByVehicle(_ context.Context, vehicleID uuid.UUID) (int, error) {
	return len(r.o.scan(func(o *booking.Order) bool {
		return o.VehicleID() == vehicleID && o.Status().HoldsCapacity()
	})), nil
}

func (r *bookingRepo) ListConfirmedByVehicle(_ context.Context, vehicleID, lotID uuid.UUID) ([]*booking.Order, error) {
	rows := r.o.scan(func(o *booking.Order) bool {
		return o.VehicleID() == vehicleID && o.LotID() == lotID && o.Status() == booking.StatusConfirmed
	})
	return byTime(rows, orderStart), nil
}

func (r *bookingRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*booking.Order, error) {
	rows := r.o.scan(func(o *booking.Order) bool { return o.UserID() == userID })
	return byTime(rows, orderStart), nil
}

func (r *bookingRepo) ListConfirmedStartedBefore(_ context.Context, before time.Time) ([]*booking.Order, error) {
	rows := r.o.scan(func(o *booking.Order) bool {
		return o.Status() == booking.StatusConfirmed && o.Slot().Start().Before(before)
	})
	return byTime(rows, orderStart), nil
}

func (r *bookingRepo) ListByLotBetween(_ context.Context, lotID uuid.UUID, from, to time.Time) ([]*booking.Order, error) {
	rows := r.o.scan(func(o *booking.Order) bool {
		return o.LotID() == lotID && o.Slot().Start().Before(to) && o.Slot().End().After(from)
	})
	return byTime(rows, orderStart), nil
}

type violationRepo struct {
	o *overlay[uuid.UUID, billing.Violation]
}

func (r *violationRepo) Create(_ context.Context, v *billing.Violation) error { return r.o.insert(v) }
func (r *violationRepo) Update(_ context.Context, v *billing.Violation) error { return r.o.update(v) }

func (r *violationRepo) FindByID(_ context.Context, id uuid.UUID) (*billing.Violation, error) {
	v, ok := r.o.get(id)
	if !ok {
		return nil, infra.NotFound("violation")
	}
	return v, nil
}

func (r *violationRepo) ListByVehicle(_ context.Context, vehicleID uuid.UUID) ([]*billing.Violation, error) {
	rows := r.o.scan(func(v *billing.Violation) bool { return v.VehicleID() == vehicleID })
	return byTime(rows, (*billing.Violation).DetectedAt), nil
}

func (r *violationRepo) ListBySession(_ context.Context, sessionID uuid.UUID) ([]*billing.Violation, error) {
	rows := r.o.scan(func(v *billing.Violation) bool { return refers(v.SessionID(), sessionID) })
	return byTime(rows, (*billing.Violation).DetectedAt), nil
}

func (r *violationRepo) ExistsFor(_ context.Context, vt billing.ViolationType, refID uuid.UUID) (bool, error) {
	rows := r.o.scan(func(v *billing.Violation) bool {
		return v.Type() == vt &&
			(refers(v.SessionID(), refID) || refers(v.ReservationID(), refID) || refers(v.ParentID(), refID))
	})
	return len(rows) > 0, nil
}

func (r *violationRepo) ListUnpaidDetectedBefore(_ context.Context, before time.Time) ([]*billing.Violation, error) {
	rows := r.o.scan(func(v *billing.Violation) bool {
		return !v.IsPaid() && v.Fine().IsPositive() && !v.DetectedAt().After(before)
	})
	return byTime(rows, (*billing.Violation).DetectedAt), nil
}

func (r *violationRepo) ListByLotDetectedBetween(_ context.Context, lotID uuid.UUID, from, to time.Time) ([]*billing.Violation, error) {
	rows := r.o.scan(func(v *billing.Violation) bool {
		return v.LotID() == lotID && !v.DetectedAt().Before(from) && v.DetectedAt().Before(to)
	})
	return byTime(rows, (*billing.Violation).DetectedAt), nil
}

func refers(id *uuid.UUID, want uuid.UUID) bool {
	return id != nil && *id == want
}

type paymentRepo struct {
	o *overlay[uuid.UUID, billing.Payment]
}

func (r *paymentRepo) Create(_ context.Context, p *billing.Payment) error { return r.o.insert(p) }

func (r *paymentRepo) FindByTransactionNo(_ context.Context, transactionNo string) (*billing.Payment, error) {
	rows := r.o.scan(func(p *billing.Payment) bool { return p.TransactionNo() == transactionNo })
	if len(rows) == 0 {
		return nil, infra.NotFound("payment")
	}
	return rows[0], nil
}

func (r *paymentRepo) ListByTarget(_ context.Context, targetID uuid.UUID) ([]*billing.Payment, error) {
	rows := r.o.scan(func(p *billing.Payment) bool { return p.TargetID() == targetID })
	return byTime(rows, (*billing.Payment).PaidAt), nil
}

func (r *paymentRepo) ListByLotPaidBetween(_ context.Context, lotID uuid.UUID, from, to time.Time) ([]*billing.Payment, error) {
	rows := r.o.scan(func(p *billing.Payment) bool {
		return p.LotID() == lotID && !p.PaidAt().Before(from) && p.PaidAt().Before(to)
	})
	return byTime(rows, (*billing.Payment).PaidAt), nil
}

type vehicleRepo struct {
	o *overlay[uuid.UUID, vehicle.Vehicle]
}

func (r *vehicleRepo) Create(_ context.Context, v *vehicle.Vehicle) error { return r.o.insert(v) }
func (r *vehicleRepo) Update(_ context.Context, v *vehicle.Vehicle) error { return r.o.update(v) }
func (r *vehicleRepo) Delete(_ context.Context, id uuid.UUID) error       { return r.o.remove(id) }

func (r *vehicleRepo) FindByID(_ context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	v, ok := r.o.get(id)
	if !ok {
		return nil, infra.NotFound("vehicle")
	}
	return v, nil
}

func (r *vehicleRepo) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*vehicle.Vehicle, error) {
	rows := r.o.scan(func(v *vehicle.Vehicle) bool { return v.OwnerID() == ownerID })
	return byTime(rows, (*vehicle.Vehicle).CreatedAt), nil
}

func (r *vehicleRepo) ListByPlate(_ context.Context, plate string) ([]*vehicle.Vehicle, error) {
	rows := r.o.scan(func(v *vehicle.Vehicle) bool { return v.Plate() == plate })
	return byTime(rows, (*vehicle.Vehicle).CreatedAt), nil
}

type userRepo struct {
	o *overlay[uuid.UUID, user.User]
}

func (r *userRepo) Create(_ context.Context, u *user.User) error { return r.o.insert(u) }

func (r *userRepo) FindByID(_ context.Context, id uuid.UUID) (*user.User, error) {
	u, ok := r.o.get(id)
	if !ok {
		return nil, infra.NotFound("user")
	}
	return u, nil
}

func (r *userRepo) FindByUsername(_ context.Context, username string) (*user.User, error) {
	rows := r.o.scan(func(u *user.User) bool { return strings.EqualFold(u.Username(), username) })
	if len(rows) == 0 {
		return nil, infra.NotFound("user")
	}
	return rows[0], nil
}
