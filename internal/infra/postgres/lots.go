package postgres

import (
	"context"
	"time"

	"parking-engine/internal/domain/lot"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type rowScanner interface {
	Scan(dest ...any) error
}

type lotRepo struct {
	db DBTX
}

const lotColumns = `id, name, location, hourly_rate::text, capacities, created_at, updated_at`

func capacitiesToRow(c lot.Capacities) map[string]int {
	row := make(map[string]int, len(c))
	for t, n := range c {
		row[t.String()] = n
	}
	return row
}

func scanLot(row rowScanner) (*lot.Lot, error) {
	var (
		id                   uuid.UUID
		name, location, rate string
		caps                 map[string]int
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &name, &location, &rate, &caps, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	hourlyRate, err := decimal.NewFromString(rate)
	if err != nil {
		return nil, err
	}
	capacities := make(lot.Capacities, len(caps))
	for t, n := range caps {
		capacities[lot.SpaceType(t)] = n
	}
	return lot.ReconstructLot(id, name, location, hourlyRate, capacities, createdAt, updatedAt), nil
}

func (r *lotRepo) Create(ctx context.Context, l *lot.Lot) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO lots (id, name, location, hourly_rate, capacities, created_at, updated_at)
		VALUES ($1, $2, $3, $4::text::numeric, $5, $6, $7)`,
		l.ID(), l.Name(), l.Location(), l.HourlyRate().StringFixed(2), capacitiesToRow(l.Capacities()), l.CreatedAt(), l.UpdatedAt())
	return wrapErr(err, "create lot")
}

func (r *lotRepo) Update(ctx context.Context, l *lot.Lot) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE lots SET name = $2, location = $3, hourly_rate = $4::text::numeric, capacities = $5, updated_at = $6
		WHERE id = $1`,
		l.ID(), l.Name(), l.Location(), l.HourlyRate().StringFixed(2), capacitiesToRow(l.Capacities()), l.UpdatedAt())
	return expectOne(tag, err, "lot")
}

func (r *lotRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM lots WHERE id = $1`, id)
	return expectOne(tag, err, "lot")
}

func (r *lotRepo) FindByID(ctx context.Context, id uuid.UUID) (*lot.Lot, error) {
	l, err := scanLot(r.db.QueryRow(ctx, `SELECT `+lotColumns+` FROM lots WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr(err, "lot")
	}
	return l, nil
}

func (r *lotRepo) List(ctx context.Context) ([]*lot.Lot, error) {
	return queryAll(ctx, r.db, scanLot, "list lots", `SELECT `+lotColumns+` FROM lots ORDER BY created_at, name`)
}

type spaceRepo struct {
	db DBTX
}

const spaceColumns = `id, lot_id, space_type, label, occupied, updated_at`

func scanSpace(row rowScanner) (*lot.Space, error) {
	var (
		id        int64
		lotID     uuid.UUID
		spaceType string
		label     string
		occupied  bool
		updatedAt time.Time
	)
	if err := row.Scan(&id, &lotID, &spaceType, &label, &occupied, &updatedAt); err != nil {
		return nil, err
	}
	return lot.ReconstructSpace(id, lotID, lot.SpaceType(spaceType), label, occupied, updatedAt), nil
}

func (r *spaceRepo) Create(ctx context.Context, s *lot.Space) (int64, error) {
	var id int64
	err := r.db.QueryRow(ctx, `
		INSERT INTO spaces (lot_id, space_type, label, occupied, updated_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		s.LotID(), s.SpaceType().String(), s.Label(), s.IsOccupied(), s.UpdatedAt()).Scan(&id)
	if err != nil {
		return 0, wrapErr(err, "create space")
	}
	return id, nil
}

func (r *spaceRepo) Update(ctx context.Context, s *lot.Space) error {
	tag, err := r.db.Exec(ctx, `UPDATE spaces SET occupied = $2, updated_at = $3 WHERE id = $1`,
		s.ID(), s.IsOccupied(), s.UpdatedAt())
	return expectOne(tag, err, "space")
}

func (r *spaceRepo) FindByID(ctx context.Context, id int64) (*lot.Space, error) {
	s, err := scanSpace(r.db.QueryRow(ctx, `SELECT `+spaceColumns+` FROM spaces WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr(err, "space")
	}
	return s, nil
}

func (r *spaceRepo) ListByLot(ctx context.Context, lotID uuid.UUID) ([]*lot.Space, error) {
	return queryAll(ctx, r.db, scanSpace, "list spaces",
		`SELECT `+spaceColumns+` FROM spaces WHERE lot_id = $1 ORDER BY id`, lotID)
}

func (r *spaceRepo) DeleteByLot(ctx context.Context, lotID uuid.UUID) error {
	_, err := r.db.Exec(ctx, `DELETE FROM spaces WHERE lot_id = $1`, lotID)
	return wrapErr(err, "delete spaces")
}

func queryAll[T any](ctx context.Context, db DBTX, scan func(rowScanner) (*T, error), what, sql string, args ...any) ([]*T, error) {
	rows, err := db.Query(ctx, sql, args...)
	if err != nil {
		return nil, wrapErr(err, what)
	}
	defer rows.Close()

	var out []*T
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, wrapErr(err, what)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapErr(err, what)
	}
	return out, nil
}

func count(ctx context.Context, db DBTX, what, sql string, args ...any) (int, error) {
	var n int
	if err := db.QueryRow(ctx, sql, args...).Scan(&n); err != nil {
		return 0, wrapErr(err, what)
	}
	return n, nil
}

func money(row string) (decimal.Decimal, error) {
	return decimal.NewFromString(row)
}
