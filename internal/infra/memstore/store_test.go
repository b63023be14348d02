//go:build unit

package memstore

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"parking-engine/internal/domain/lot"
	"parking-engine/internal/domain/session"
	"parking-engine/internal/domain/user"
	"parking-engine/internal/infra"
	"parking-engine/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

var now = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

func newLot(t *testing.T) *lot.Lot {
	t.Helper()
	l, err := lot.NewLot("Central", "Main St 1", decimal.NewFromInt(10), lot.Capacities{"standard": 2}, now)
	require.NoError(t, err)
	return l
}

func TestStoreCommitAndRollback(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Second)

	t.Run("committed writes are visible", func(t *testing.T) {
		l := newLot(t)
		err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Lots().Create(ctx, l); err != nil {
				return err
			}
			_, err := tx.Spaces().Create(ctx, lot.NewSpace(l.ID(), "standard", 1, now))
			return err
		})
		require.NoError(t, err)

		err = s.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			got, err := tx.Lots().FindByID(ctx, l.ID())
			require.NoError(t, err)
			assert.Equal(t, l.Name(), got.Name())

			spaces, err := tx.Spaces().ListByLot(ctx, l.ID())
			require.NoError(t, err)
			require.Len(t, spaces, 1)
			assert.Equal(t, "STANDARD-001", spaces[0].Label())
			assert.Positive(t, spaces[0].ID())
			return nil
		})
		require.NoError(t, err)
	})

	t.Run("failed transaction leaves no trace", func(t *testing.T) {
		l := newLot(t)
		boom := errors.New("boom")
		err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			require.NoError(t, tx.Lots().Create(ctx, l))
			_, err := tx.Lots().FindByID(ctx, l.ID())
			require.NoError(t, err, "own writes are visible inside the transaction")
			return boom
		})
		require.ErrorIs(t, err, boom)

		err = s.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			_, err := tx.Lots().FindByID(ctx, l.ID())
			return err
		})
		assert.True(t, infra.IsNotFound(err))
	})

	t.Run("read-only transaction rejects writes", func(t *testing.T) {
		err := s.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Lots().Create(ctx, newLot(t))
		})
		require.ErrorIs(t, err, errReadOnly)
	})
}

func TestStoreUniqueIndexes(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Second)
	vehicleID := uuid.New()
	lotID := uuid.New()

	err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Sessions().Create(ctx, session.Open(vehicleID, lotID, 1, "standard", nil, now))
	})
	require.NoError(t, err)

	t.Run("second active session for a vehicle", func(t *testing.T) {
		err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Sessions().Create(ctx, session.Open(vehicleID, lotID, 2, "standard", nil, now))
		})
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey), "got %v", err)
	})

	t.Run("closed sessions do not take part", func(t *testing.T) {
		err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			active, err := tx.Sessions().FindActiveByVehicle(ctx, vehicleID)
			if err != nil {
				return err
			}
			if err := active.Close(now.Add(time.Hour), session.NewFeePolicy(0), decimal.NewFromInt(10)); err != nil {
				return err
			}
			if err := tx.Sessions().Update(ctx, active); err != nil {
				return err
			}
			return tx.Sessions().Create(ctx, session.Open(vehicleID, lotID, 2, "standard", nil, now.Add(2*time.Hour)))
		})
		require.NoError(t, err)
	})

	t.Run("usernames ignore case", func(t *testing.T) {
		u1, err := user.NewUser("alice", "hash", "", user.RoleUser, nil, now)
		require.NoError(t, err)
		u2, err := user.NewUser("ALICE", "hash", "", user.RoleUser, nil, now)
		require.NoError(t, err)

		require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Users().Create(ctx, u1)
		}))
		err = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Users().Create(ctx, u2)
		})
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})
}

func TestStoreCommitRevalidatesUniqueness(t *testing.T) {
	ctx := context.Background()
	s := NewStore(time.Second)
	vehicleID := uuid.New()

	staged := make(chan struct{})
	proceed := make(chan struct{})

	var g errgroup.Group
	g.Go(func() error {
		return s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Sessions().Create(ctx, session.Open(vehicleID, uuid.New(), 1, "standard", nil, now)); err != nil {
				return err
			}
			close(staged)
			<-proceed
			return nil
		})
	})

	<-staged
	err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Sessions().Create(ctx, session.Open(vehicleID, uuid.New(), 2, "standard", nil, now))
	})
	require.NoError(t, err)
	close(proceed)

	err = g.Wait()
	assert.True(t, infra.IsKind(err, infra.KindDuplicateKey), "late committer must lose, got %v", err)
}

func TestStoreLocks(t *testing.T) {
	ctx := context.Background()

	t.Run("same key serialises read-modify-write", func(t *testing.T) {
		s := NewStore(5 * time.Second)
		l := newLot(t)
		require.NoError(t, s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Lots().Create(ctx, l)
		}))

		const workers = 20
		var g errgroup.Group
		for range workers {
			g.Go(func() error {
				return s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
					if err := tx.Lock(ctx, shared.LotLock(l.ID())); err != nil {
						return err
					}
					got, err := tx.Lots().FindByID(ctx, l.ID())
					if err != nil {
						return err
					}
					if err := got.AddCapacity("standard", 1, now); err != nil {
						return err
					}
					return tx.Lots().Update(ctx, got)
				})
			})
		}
		require.NoError(t, g.Wait())

		err := s.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
			got, err := tx.Lots().FindByID(ctx, l.ID())
			require.NoError(t, err)
			assert.Equal(t, 2+workers, got.Capacity("standard"))
			return nil
		})
		require.NoError(t, err)
		assert.Zero(t, s.locks.size(), "unused lock entries are forgotten")
	})

	t.Run("re-entrant within a transaction", func(t *testing.T) {
		s := NewStore(100 * time.Millisecond)
		key := shared.VehicleLock(uuid.New())
		err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			if err := tx.Lock(ctx, key); err != nil {
				return err
			}
			return tx.Lock(ctx, key, key)
		})
		require.NoError(t, err)
	})

	t.Run("times out while another transaction holds the key", func(t *testing.T) {
		s := NewStore(50 * time.Millisecond)
		key := shared.TargetLock(uuid.New())
		held := make(chan struct{})
		done := make(chan struct{})

		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
				if err := tx.Lock(ctx, key); err != nil {
					return err
				}
				close(held)
				<-done
				return nil
			})
		}()

		<-held
		err := s.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			return tx.Lock(ctx, key)
		})
		close(done)
		wg.Wait()
		assert.True(t, infra.IsKind(err, infra.KindLockTimeout), "got %v", err)
	})
}
