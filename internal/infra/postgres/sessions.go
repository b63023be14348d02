package postgres

import (
	"context"
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/lot"
	"parking-engine/internal/domain/session"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type sessionRepo struct {
	db DBTX
}

const sessionColumns = `id, vehicle_id, lot_id, space_id, space_type, reservation_id, entry_at, exit_at,
	duration_ns, fee::text, violation, violation_fee::text, status, payment_status, paid_at`

func scanSession(row rowScanner) (*session.Session, error) {
	var (
		s                            session.Snapshot
		spaceType, status, payStatus string
		reservationID                pgtype.UUID
		durationNs                   int64
		fee, violationFee            string
	)
	err := row.Scan(&s.ID, &s.VehicleID, &s.LotID, &s.SpaceID, &spaceType, &reservationID, &s.EntryAt, &s.ExitAt,
		&durationNs, &fee, &s.Violation, &violationFee, &status, &payStatus, &s.PaidAt)
	if err != nil {
		return nil, err
	}
	if s.Fee, err = money(fee); err != nil {
		return nil, err
	}
	if s.ViolationFee, err = money(violationFee); err != nil {
		return nil, err
	}
	s.SpaceType = lot.SpaceType(spaceType)
	s.ReservationID = uuidPtr(reservationID)
	s.Duration = time.Duration(durationNs)
	s.Status = session.Status(status)
	s.PaymentStatus = billing.PaymentStatus(payStatus)
	return session.Reconstruct(s), nil
}

func (r *sessionRepo) Create(ctx context.Context, s *session.Session) error {
	snap := s.Snapshot()
	_, err := r.db.Exec(ctx, `
		INSERT INTO sessions (id, vehicle_id, lot_id, space_id, space_type, reservation_id, entry_at, exit_at,
			duration_ns, fee, violation, violation_fee, status, payment_status, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::text::numeric, $11, $12::text::numeric, $13, $14, $15)`,
		snap.ID, snap.VehicleID, snap.LotID, snap.SpaceID, snap.SpaceType.String(), nullUUID(snap.ReservationID),
		snap.EntryAt, snap.ExitAt, int64(snap.Duration), snap.Fee.StringFixed(2), snap.Violation,
		snap.ViolationFee.StringFixed(2), string(snap.Status), string(snap.PaymentStatus), snap.PaidAt)
	return wrapErr(err, "create session")
}

func (r *sessionRepo) Update(ctx context.Context, s *session.Session) error {
	snap := s.Snapshot()
	tag, err := r.db.Exec(ctx, `
		UPDATE sessions SET exit_at = $2, duration_ns = $3, fee = $4::text::numeric, violation = $5,
			violation_fee = $6::text::numeric, status = $7, payment_status = $8, paid_at = $9
		WHERE id = $1`,
		snap.ID, snap.ExitAt, int64(snap.Duration), snap.Fee.StringFixed(2), snap.Violation,
		snap.ViolationFee.StringFixed(2), string(snap.Status), string(snap.PaymentStatus), snap.PaidAt)
	return expectOne(tag, err, "session")
}

func (r *sessionRepo) FindByID(ctx context.Context, id uuid.UUID) (*session.Session, error) {
	s, err := scanSession(r.db.QueryRow(ctx, `SELECT `+sessionColumns+` FROM sessions WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr(err, "session")
	}
	return s, nil
}

func (r *sessionRepo) FindActiveByVehicle(ctx context.Context, vehicleID uuid.UUID) (*session.Session, error) {
	s, err := scanSession(r.db.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE vehicle_id = $1 AND status = $2`,
		vehicleID, string(session.StatusActive)))
	if err != nil {
		return nil, wrapErr(err, "active session")
	}
	return s, nil
}

func (r *sessionRepo) FindActiveBySpace(ctx context.Context, spaceID int64) (*session.Session, error) {
	s, err := scanSession(r.db.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM sessions WHERE space_id = $1 AND status = $2`,
		spaceID, string(session.StatusActive)))
	if err != nil {
		return nil, wrapErr(err, "active session")
	}
	return s, nil
}

func (r *sessionRepo) CountActiveByLot(ctx context.Context, lotID uuid.UUID) (int, error) {
	return count(ctx, r.db, "count active sessions",
		`SELECT count(*) FROM sessions WHERE lot_id = $1 AND status = $2`, lotID, string(session.StatusActive))
}

func (r *sessionRepo) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*session.Session, error) {
	return queryAll(ctx, r.db, scanSession, "list sessions",
		`SELECT `+sessionColumns+` FROM sessions WHERE vehicle_id = $1 ORDER BY entry_at`, vehicleID)
}

func (r *sessionRepo) ListUnpaidClosedBefore(ctx context.Context, before time.Time) ([]*session.Session, error) {
	return queryAll(ctx, r.db, scanSession, "list unpaid sessions", `
		SELECT `+sessionColumns+` FROM sessions
		WHERE status = $1 AND payment_status = $2 AND exit_at <= $3 AND fee > 0
		ORDER BY entry_at`,
		string(session.StatusClosed), string(billing.PaymentUnpaid), before)
}

func (r *sessionRepo) ListByLotBetween(ctx context.Context, lotID uuid.UUID, from, to time.Time) ([]*session.Session, error) {
	return queryAll(ctx, r.db, scanSession, "list lot sessions", `
		SELECT `+sessionColumns+` FROM sessions
		WHERE lot_id = $1 AND entry_at < $3 AND (exit_at IS NULL OR exit_at > $2)
		ORDER BY entry_at`,
		lotID, from, to)
}
