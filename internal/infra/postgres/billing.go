package postgres

import (
	"context"
	"time"

	"parking-engine/internal/domain/billing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type violationRepo struct {
	db DBTX
}

const violationColumns = `id, session_id, reservation_id, parent_id, vehicle_id, lot_id, type, description,
	fine::text, status, detected_at, paid_at`

func scanViolation(row rowScanner) (*billing.Violation, error) {
	var (
		id                            uuid.UUID
		ref                           billing.ViolationRef
		sessionID, reservationID      pgtype.UUID
		parentID                      pgtype.UUID
		vt, description, fine, status string
		detectedAt                    time.Time
		paidAt                        *time.Time
	)
	err := row.Scan(&id, &sessionID, &reservationID, &parentID, &ref.VehicleID, &ref.LotID, &vt, &description,
		&fine, &status, &detectedAt, &paidAt)
	if err != nil {
		return nil, err
	}
	amount, err := money(fine)
	if err != nil {
		return nil, err
	}
	ref.SessionID = uuidPtr(sessionID)
	ref.ReservationID = uuidPtr(reservationID)
	ref.ParentID = uuidPtr(parentID)
	return billing.ReconstructViolation(id, ref, billing.ViolationType(vt), description, amount,
		billing.ViolationStatus(status), detectedAt, paidAt), nil
}

func (r *violationRepo) Create(ctx context.Context, v *billing.Violation) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO violations (id, session_id, reservation_id, parent_id, vehicle_id, lot_id, type, description,
			fine, status, detected_at, paid_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::text::numeric, $10, $11, $12)`,
		v.ID(), nullUUID(v.SessionID()), nullUUID(v.ReservationID()), nullUUID(v.ParentID()), v.VehicleID(), v.LotID(),
		string(v.Type()), v.Description(), v.Fine().StringFixed(2), string(v.Status()), v.DetectedAt(), v.PaidAt())
	return wrapErr(err, "create violation")
}

func (r *violationRepo) Update(ctx context.Context, v *billing.Violation) error {
	tag, err := r.db.Exec(ctx, `UPDATE violations SET status = $2, paid_at = $3 WHERE id = $1`,
		v.ID(), string(v.Status()), v.PaidAt())
	return expectOne(tag, err, "violation")
}

func (r *violationRepo) FindByID(ctx context.Context, id uuid.UUID) (*billing.Violation, error) {
	v, err := scanViolation(r.db.QueryRow(ctx, `SELECT `+violationColumns+` FROM violations WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr(err, "violation")
	}
	return v, nil
}

func (r *violationRepo) ListByVehicle(ctx context.Context, vehicleID uuid.UUID) ([]*billing.Violation, error) {
	return queryAll(ctx, r.db, scanViolation, "list violations",
		`SELECT `+violationColumns+` FROM violations WHERE vehicle_id = $1 ORDER BY detected_at`, vehicleID)
}

func (r *violationRepo) ListBySession(ctx context.Context, sessionID uuid.UUID) ([]*billing.Violation, error) {
	return queryAll(ctx, r.db, scanViolation, "list violations",
		`SELECT `+violationColumns+` FROM violations WHERE session_id = $1 ORDER BY detected_at`, sessionID)
}

func (r *violationRepo) ExistsFor(ctx context.Context, vt billing.ViolationType, refID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM violations
			WHERE type = $1 AND (session_id = $2 OR reservation_id = $2 OR parent_id = $2)
		)`, string(vt), refID).Scan(&exists)
	if err != nil {
		return false, wrapErr(err, "check violation")
	}
	return exists, nil
}

func (r *violationRepo) ListUnpaidDetectedBefore(ctx context.Context, before time.Time) ([]*billing.Violation, error) {
	return queryAll(ctx, r.db, scanViolation, "list unpaid violations", `
		SELECT `+violationColumns+` FROM violations
		WHERE status = $1 AND fine > 0 AND detected_at <= $2
		ORDER BY detected_at`,
		string(billing.PaymentUnpaid), before)
}

func (r *violationRepo) ListByLotDetectedBetween(ctx context.Context, lotID uuid.UUID, from, to time.Time) ([]*billing.Violation, error) {
	return queryAll(ctx, r.db, scanViolation, "list lot violations", `
		SELECT `+violationColumns+` FROM violations
		WHERE lot_id = $1 AND detected_at >= $2 AND detected_at < $3
		ORDER BY detected_at`,
		lotID, from, to)
}

type paymentRepo struct {
	db DBTX
}

const paymentColumns = `id, target_id, target_type, lot_id, amount::text, method, status, transaction_no, paid_at`

func scanPayment(row rowScanner) (*billing.Payment, error) {
	var (
		id, targetID, lotID                    uuid.UUID
		targetType, amount, method, status, tx string
		paidAt                                 time.Time
	)
	if err := row.Scan(&id, &targetID, &targetType, &lotID, &amount, &method, &status, &tx, &paidAt); err != nil {
		return nil, err
	}
	value, err := money(amount)
	if err != nil {
		return nil, err
	}
	return billing.ReconstructPayment(id, targetID, billing.TargetType(targetType), lotID, value, billing.Method(method),
		billing.PaymentRecordStatus(status), tx, paidAt), nil
}

func (r *paymentRepo) Create(ctx context.Context, p *billing.Payment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO payments (id, target_id, target_type, lot_id, amount, method, status, transaction_no, paid_at)
		VALUES ($1, $2, $3, $4, $5::text::numeric, $6, $7, $8, $9)`,
		p.ID(), p.TargetID(), string(p.TargetType()), p.LotID(), p.Amount().StringFixed(2), string(p.Method()),
		string(p.Status()), p.TransactionNo(), p.PaidAt())
	return wrapErr(err, "create payment")
}

func (r *paymentRepo) FindByTransactionNo(ctx context.Context, transactionNo string) (*billing.Payment, error) {
	p, err := scanPayment(r.db.QueryRow(ctx,
		`SELECT `+paymentColumns+` FROM payments WHERE transaction_no = $1`, transactionNo))
	if err != nil {
		return nil, wrapErr(err, "payment")
	}
	return p, nil
}

func (r *paymentRepo) ListByTarget(ctx context.Context, targetID uuid.UUID) ([]*billing.Payment, error) {
	return queryAll(ctx, r.db, scanPayment, "list payments",
		`SELECT `+paymentColumns+` FROM payments WHERE target_id = $1 ORDER BY paid_at`, targetID)
}

func (r *paymentRepo) ListByLotPaidBetween(ctx context.Context, lotID uuid.UUID, from, to time.Time) ([]*billing.Payment, error) {
	return queryAll(ctx, r.db, scanPayment, "list lot payments", `
		SELECT `+paymentColumns+` FROM payments
		WHERE lot_id = $1 AND paid_at >= $2 AND paid_at < $3
		ORDER BY paid_at`,
		lotID, from, to)
}
