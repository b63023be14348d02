package memstore

import (
	"context"
	"errors"
	"sync"

	"parking-engine/internal/infra"
	"parking-engine/internal/usecase/shared"

	"golang.org/x/sync/semaphore"
)

type lockEntry struct {
	sem  *semaphore.Weighted
	refs int
}

// keyedLocks hands out one binary semaphore per key and forgets it once unused.
type keyedLocks struct {
	mu    sync.Mutex
	locks map[shared.LockKey]*lockEntry
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{locks: make(map[shared.LockKey]*lockEntry)}
}

func (k *keyedLocks) acquire(ctx context.Context, key shared.LockKey) error {
	k.mu.Lock()
	e, ok := k.locks[key]
	if !ok {
		e = &lockEntry{sem: semaphore.NewWeighted(1)}
		k.locks[key] = e
	}
	e.refs++
	k.mu.Unlock()

	if err := e.sem.Acquire(ctx, 1); err != nil {
		k.forget(key, e)
		if errors.Is(err, context.DeadlineExceeded) {
			return infra.WrapRepoErr(infra.KindLockTimeout, "lock "+key.String(), err)
		}
		return err
	}
	return nil
}

func (k *keyedLocks) release(key shared.LockKey) {
	k.mu.Lock()
	e, ok := k.locks[key]
	k.mu.Unlock()
	if !ok {
		return
	}
	e.sem.Release(1)
	k.forget(key, e)
}

func (k *keyedLocks) forget(key shared.LockKey, e *lockEntry) {
	k.mu.Lock()
	defer k.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(k.locks, key)
	}
}

func (k *keyedLocks) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.locks)
}
