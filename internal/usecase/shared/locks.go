package shared

import (
	"github.com/google/uuid"
)

// LockKey names a unit of mutual exclusion. Keys of different entities never contend.
type LockKey string

func VehicleLock(id uuid.UUID) LockKey {
	return LockKey("vehicle:" + id.String())
}

func LotLock(id uuid.UUID) LockKey {
	return LockKey("lot:" + id.String())
}

// TargetLock guards settlement of a session, reservation or violation.
func TargetLock(id uuid.UUID) LockKey {
	return LockKey("target:" + id.String())
}

// NameLock serialises registrations competing for a unique name.
func NameLock(kind, name string) LockKey {
	return LockKey("name:" + kind + ":" + name)
}

func (k LockKey) String() string {
	return string(k)
}
