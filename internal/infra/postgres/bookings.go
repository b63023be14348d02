package postgres

import (
	"context"
	"time"

	"parking-engine/internal/domain/billing"
	"parking-engine/internal/domain/booking"
	"parking-engine/internal/domain/lot"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type bookingRepo struct {
	db DBTX
}

const bookingColumns = `id, user_id, vehicle_id, lot_id, space_type, start_at, end_at, code, status,
	fee::text, payment_status, session_id, created_at, updated_at`

// holdingStatuses are the statuses that count against capacity.
var holdingStatuses = []string{string(booking.StatusPending), string(booking.StatusConfirmed)}

func scanBooking(row rowScanner) (*booking.Order, error) {
	var (
		s                            booking.Snapshot
		spaceType, status, payStatus string
		fee                          string
		sessionID                    pgtype.UUID
	)
	err := row.Scan(&s.ID, &s.UserID, &s.VehicleID, &s.LotID, &spaceType, &s.Start, &s.End, &s.Code, &status,
		&fee, &payStatus, &sessionID, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if s.Fee, err = money(fee); err != nil {
		return nil, err
	}
	s.SpaceType = lot.SpaceType(spaceType)
	s.Status = booking.Status(status)
	s.PaymentStatus = billing.PaymentStatus(payStatus)
	s.SessionID = uuidPtr(sessionID)
	return booking.Reconstruct(s), nil
}

func (r *bookingRepo) Create(ctx context.Context, o *booking.Order) error {
	s := o.Snapshot()
	_, err := r.db.Exec(ctx, `
		INSERT INTO bookings (id, user_id, vehicle_id, lot_id, space_type, start_at, end_at, code, status,
			fee, payment_status, session_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10::text::numeric, $11, $12, $13, $14)`,
		s.ID, s.UserID, s.VehicleID, s.LotID, s.SpaceType.String(), s.Start, s.End, s.Code, string(s.Status),
		s.Fee.StringFixed(2), string(s.PaymentStatus), nullUUID(s.SessionID), s.CreatedAt, s.UpdatedAt)
	return wrapErr(err, "create reservation")
}

func (r *bookingRepo) Update(ctx context.Context, o *booking.Order) error {
	s := o.Snapshot()
	tag, err := r.db.Exec(ctx, `
		UPDATE bookings SET status = $2, payment_status = $3, session_id = $4, updated_at = $5
		WHERE id = $1`,
		s.ID, string(s.Status), string(s.PaymentStatus), nullUUID(s.SessionID), s.UpdatedAt)
	return expectOne(tag, err, "reservation")
}

func (r *bookingRepo) FindByID(ctx context.Context, id uuid.UUID) (*booking.Order, error) {
	o, err := scanBooking(r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr(err, "reservation")
	}
	return o, nil
}

func (r *bookingRepo) FindByCode(ctx context.Context, code string) (*booking.Order, error) {
	o, err := scanBooking(r.db.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE code = $1`, code))
	if err != nil {
		return nil, wrapErr(err, "reservation")
	}
	return o, nil
}

func (r *bookingRepo) ListHolding(ctx context.Context, lotID uuid.UUID, t lot.SpaceType, window booking.TimeSlot) ([]*booking.Order, error) {
	return queryAll(ctx, r.db, scanBooking, "list holding reservations", `
		SELECT `+bookingColumns+` FROM bookings
		WHERE lot_id = $1 AND space_type = $2 AND status = ANY($3)
			AND start_at < $5 AND $4 < end_at
		ORDER BY start_at`,
		lotID, t.String(), holdingStatuses, window.Start(), window.End())
}

func (r *bookingRepo) CountHoldingByLot(ctx context.Context, lotID uuid.UUID) (int, error) {
	return count(ctx, r.db, "count reservations",
		`SELECT count(*) FROM bookings WHERE lot_id = $1 AND status = ANY($2)`, lotID, holdingStatuses)
}

func (r *bookingRepo) CountHoldingByVehicle(ctx context.Context, vehicleID uuid.UUID) (int, error) {
	return count(ctx, r.db, "count reservations",
		`SELECT count(*) FROM bookings WHERE vehicle_id = $1 AND status = ANY($2)`, vehicleID, holdingStatuses)
}

func (r *bookingRepo) ListConfirmedByVehicle(ctx context.Context, vehicleID, lotID uuid.UUID) ([]*booking.Order, error) {
	return queryAll(ctx, r.db, scanBooking, "list confirmed reservations", `
		SELECT `+bookingColumns+` FROM bookings
		WHERE vehicle_id = $1 AND lot_id = $2 AND status = $3
		ORDER BY start_at`,
		vehicleID, lotID, string(booking.StatusConfirmed))
}

func (r *bookingRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]*booking.Order, error) {
	return queryAll(ctx, r.db, scanBooking, "list reservations",
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY start_at`, userID)
}

func (r *bookingRepo) ListConfirmedStartedBefore(ctx context.Context, before time.Time) ([]*booking.Order, error) {
	return queryAll(ctx, r.db, scanBooking, "list started reservations", `
		SELECT `+bookingColumns+` FROM bookings
		WHERE status = $1 AND start_at < $2
		ORDER BY start_at`,
		string(booking.StatusConfirmed), before)
}

func (r *bookingRepo) ListByLotBetween(ctx context.Context, lotID uuid.UUID, from, to time.Time) ([]*booking.Order, error) {
	return queryAll(ctx, r.db, scanBooking, "list lot reservations", `
		SELECT `+bookingColumns+` FROM bookings
		WHERE lot_id = $1 AND start_at < $3 AND $2 < end_at
		ORDER BY start_at`,
		lotID, from, to)
}
