package postgres

import (
	"context"
	"time"

	"parking-engine/internal/domain/user"
	"parking-engine/internal/domain/vehicle"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type vehicleRepo struct {
	db DBTX
}

const vehicleColumns = `id, owner_id, plate, brand, model, color, created_at, updated_at`

func scanVehicle(row rowScanner) (*vehicle.Vehicle, error) {
	var (
		id, ownerID          uuid.UUID
		plate                string
		attrs                vehicle.Attributes
		createdAt, updatedAt time.Time
	)
	if err := row.Scan(&id, &ownerID, &plate, &attrs.Brand, &attrs.Model, &attrs.Color, &createdAt, &updatedAt); err != nil {
		return nil, err
	}
	return vehicle.ReconstructVehicle(id, ownerID, plate, attrs, createdAt, updatedAt), nil
}

func (r *vehicleRepo) Create(ctx context.Context, v *vehicle.Vehicle) error {
	a := v.Attributes()
	_, err := r.db.Exec(ctx, `
		INSERT INTO vehicles (id, owner_id, plate, brand, model, color, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		v.ID(), v.OwnerID(), v.Plate(), a.Brand, a.Model, a.Color, v.CreatedAt(), v.UpdatedAt())
	return wrapErr(err, "create vehicle")
}

func (r *vehicleRepo) Update(ctx context.Context, v *vehicle.Vehicle) error {
	a := v.Attributes()
	tag, err := r.db.Exec(ctx, `
		UPDATE vehicles SET plate = $2, brand = $3, model = $4, color = $5, updated_at = $6
		WHERE id = $1`,
		v.ID(), v.Plate(), a.Brand, a.Model, a.Color, v.UpdatedAt())
	return expectOne(tag, err, "vehicle")
}

func (r *vehicleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM vehicles WHERE id = $1`, id)
	return expectOne(tag, err, "vehicle")
}

func (r *vehicleRepo) FindByID(ctx context.Context, id uuid.UUID) (*vehicle.Vehicle, error) {
	v, err := scanVehicle(r.db.QueryRow(ctx, `SELECT `+vehicleColumns+` FROM vehicles WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr(err, "vehicle")
	}
	return v, nil
}

func (r *vehicleRepo) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*vehicle.Vehicle, error) {
	return queryAll(ctx, r.db, scanVehicle, "list vehicles",
		`SELECT `+vehicleColumns+` FROM vehicles WHERE owner_id = $1 ORDER BY created_at`, ownerID)
}

func (r *vehicleRepo) ListByPlate(ctx context.Context, plate string) ([]*vehicle.Vehicle, error) {
	return queryAll(ctx, r.db, scanVehicle, "list vehicles",
		`SELECT `+vehicleColumns+` FROM vehicles WHERE plate = $1 ORDER BY created_at`, plate)
}

type userRepo struct {
	db DBTX
}

const userColumns = `id, username, password_hash, phone, role, lot_id, created_at`

func scanUser(row rowScanner) (*user.User, error) {
	var (
		id                    uuid.UUID
		username, hash, phone string
		role                  string
		lotID                 pgtype.UUID
		createdAt             time.Time
	)
	if err := row.Scan(&id, &username, &hash, &phone, &role, &lotID, &createdAt); err != nil {
		return nil, err
	}
	return user.ReconstructUser(id, username, hash, phone, user.Role(role), uuidPtr(lotID), createdAt), nil
}

func (r *userRepo) Create(ctx context.Context, u *user.User) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO users (id, username, password_hash, phone, role, lot_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		u.ID(), u.Username(), u.PasswordHash(), u.Phone(), string(u.Role()), nullUUID(u.LotID()), u.CreatedAt())
	return wrapErr(err, "create user")
}

func (r *userRepo) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id))
	if err != nil {
		return nil, wrapErr(err, "user")
	}
	return u, nil
}

func (r *userRepo) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE lower(username) = lower($1)`, username))
	if err != nil {
		return nil, wrapErr(err, "user")
	}
	return u, nil
}
