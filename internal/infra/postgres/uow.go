package postgres

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"parking-engine/internal/infra"
	"parking-engine/internal/pkg/errs"
	"parking-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
	errReadOnly           = errs.New("write attempted in a read-only transaction")
)

// DBTX is satisfied by both the pool and a pgx transaction.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type Store struct {
	pool        *pgxpool.Pool
	maxRetries  int
	lockTimeout time.Duration
}

func NewStore(pool *pgxpool.Pool, maxRetries int, lockTimeout time.Duration) *Store {
	if maxRetries < 0 {
		maxRetries = 0
	}
	if lockTimeout <= 0 {
		lockTimeout = 5 * time.Second
	}
	return &Store{pool: pool, maxRetries: maxRetries, lockTimeout: lockTimeout}
}

// Within runs fn under READ COMMITTED. Row consistency comes from the advisory locks taken through Tx.Lock.
func (s *Store) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return s.runInTx(ctx, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (s *Store) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	pgxTx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, &pgTx{db: pgxTx, readOnly: true}); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (s *Store) runInTx(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= s.maxRetries; attempt++ {
		pgxTx, err := s.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted})
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		err = s.setLockTimeout(ctx, pgxTx)
		if err == nil {
			err = fn(ctx, &pgTx{db: pgxTx})
		}
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !isRetryableError(err) {
			return err
		}
		if attempt == s.maxRetries {
			slog.Error("transaction failed after max retries",
				"attempts", attempt+1,
				"error", err.Error())
			return errs.Mark(err, errMaxRetriesExceeded)
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (s *Store) setLockTimeout(ctx context.Context, tx pgx.Tx) error {
	// SET does not accept bind parameters.
	stmt := fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", s.lockTimeout.Milliseconds())
	if _, err := tx.Exec(ctx, stmt); err != nil {
		return wrapErr(err, "set lock timeout")
	}
	return nil
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	db       DBTX
	readOnly bool
}

// Lock takes transaction-scoped advisory locks in the order given.
func (t *pgTx) Lock(ctx context.Context, keys ...shared.LockKey) error {
	if t.readOnly {
		return infra.WrapRepoErr(infra.KindDBFailure, "lock", errReadOnly)
	}
	for _, key := range keys {
		if _, err := t.db.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtextextended($1, 0))`, key.String()); err != nil {
			return wrapErr(err, "lock "+key.String())
		}
	}
	return nil
}

func (t *pgTx) Lots() shared.LotRepository             { return &lotRepo{db: t.db} }
func (t *pgTx) Spaces() shared.SpaceRepository         { return &spaceRepo{db: t.db} }
func (t *pgTx) Sessions() shared.SessionRepository     { return &sessionRepo{db: t.db} }
func (t *pgTx) Bookings() shared.BookingRepository     { return &bookingRepo{db: t.db} }
func (t *pgTx) Violations() shared.ViolationRepository { return &violationRepo{db: t.db} }
func (t *pgTx) Payments() shared.PaymentRepository     { return &paymentRepo{db: t.db} }
func (t *pgTx) Vehicles() shared.VehicleRepository     { return &vehicleRepo{db: t.db} }
func (t *pgTx) Users() shared.UserRepository           { return &userRepo{db: t.db} }
