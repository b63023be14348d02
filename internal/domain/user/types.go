package user

import "github.com/google/uuid"

// Role is the single tagged variant for every account kind.
type Role string

const (
	RoleUser        Role = "USER"
	RoleSystemAdmin Role = "SYSTEM_ADMIN"
	RoleLotAdmin    Role = "LOT_ADMIN"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleSystemAdmin, RoleLotAdmin:
		return true
	default:
		return false
	}
}

func (r Role) IsAdmin() bool {
	return r == RoleSystemAdmin || r == RoleLotAdmin
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// Principal is the authenticated caller as seen by authorization checks.
type Principal struct {
	UserID uuid.UUID
	Role   Role
	LotID  *uuid.UUID
}

// CanManageLot: system admins manage every lot, lot admins only their own.
func (p Principal) CanManageLot(lotID uuid.UUID) bool {
	switch p.Role {
	case RoleSystemAdmin:
		return true
	case RoleLotAdmin:
		return p.LotID != nil && *p.LotID == lotID
	default:
		return false
	}
}

func (p Principal) IsSystemAdmin() bool {
	return p.Role == RoleSystemAdmin
}
