package user

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidRole       = errors.New("invalid role")
	ErrInvalidUsername   = errors.New("username must be 3-32 characters of letters, digits, '.', '_' or '-'")
	ErrPasswordTooWeak   = errors.New("password must be at least 8 characters long")
	ErrLotScopeRequired  = errors.New("lot admin requires a lot id")
	ErrLotScopeForbidden = errors.New("only lot admins carry a lot id")
)

const MinPasswordLength = 8

var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9._-]{3,32}$`)

type User struct {
	id           uuid.UUID
	username     string
	passwordHash string
	phone        string
	role         Role
	lotID        *uuid.UUID
	createdAt    time.Time
}

func NewUser(username, passwordHash, phone string, role Role, lotID *uuid.UUID, now time.Time) (*User, error) {
	username = strings.TrimSpace(username)
	if !usernameRegex.MatchString(username) {
		return nil, ErrInvalidUsername
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if role == RoleLotAdmin && lotID == nil {
		return nil, ErrLotScopeRequired
	}
	if role != RoleLotAdmin && lotID != nil {
		return nil, ErrLotScopeForbidden
	}
	return &User{
		id:           uuid.New(),
		username:     username,
		passwordHash: passwordHash,
		phone:        strings.TrimSpace(phone),
		role:         role,
		lotID:        lotID,
		createdAt:    now,
	}, nil
}

func ReconstructUser(id uuid.UUID, username, passwordHash, phone string, role Role, lotID *uuid.UUID, createdAt time.Time) *User {
	return &User{
		id:           id,
		username:     username,
		passwordHash: passwordHash,
		phone:        phone,
		role:         role,
		lotID:        lotID,
		createdAt:    createdAt,
	}
}

// ValidatePassword checks the plain text before hashing.
func ValidatePassword(plain string) error {
	if len(plain) < MinPasswordLength {
		return ErrPasswordTooWeak
	}
	return nil
}

func (u *User) Principal() Principal {
	return Principal{UserID: u.id, Role: u.role, LotID: u.lotID}
}

func (u *User) ID() uuid.UUID        { return u.id }
func (u *User) Username() string     { return u.username }
func (u *User) PasswordHash() string { return u.passwordHash }
func (u *User) Phone() string        { return u.phone }
func (u *User) Role() Role           { return u.role }
func (u *User) LotID() *uuid.UUID    { return u.lotID }
func (u *User) CreatedAt() time.Time { return u.createdAt }
