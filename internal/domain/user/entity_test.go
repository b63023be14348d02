//go:build unit

package user_test

import (
	"testing"
	"time"

	"parking-engine/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	lotID := uuid.New()

	t.Run("basic success case", func(t *testing.T) {
		u, err := user.NewUser("  alice ", "hash", "555-0100", user.RoleUser, nil, now)
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, u.ID())
		assert.Equal(t, "alice", u.Username())
		assert.Equal(t, user.RoleUser, u.Role())
		assert.Nil(t, u.LotID())
		assert.Equal(t, now, u.CreatedAt())
	})

	cases := []struct {
		name     string
		username string
		role     user.Role
		lotID    *uuid.UUID
		errIs    error
	}{
		{name: "too short username", username: "ab", role: user.RoleUser, errIs: user.ErrInvalidUsername},
		{name: "username with spaces", username: "a b c", role: user.RoleUser, errIs: user.ErrInvalidUsername},
		{name: "unknown role", username: "alice", role: user.Role("ROOT"), errIs: user.ErrInvalidRole},
		{name: "lot admin without lot", username: "keeper", role: user.RoleLotAdmin, errIs: user.ErrLotScopeRequired},
		{name: "user with lot", username: "alice", role: user.RoleUser, lotID: &lotID, errIs: user.ErrLotScopeForbidden},
		{name: "lot admin with lot", username: "keeper", role: user.RoleLotAdmin, lotID: &lotID},
		{name: "system admin", username: "root.admin", role: user.RoleSystemAdmin},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			u, err := user.NewUser(tc.username, "hash", "", tc.role, tc.lotID, now)
			if tc.errIs != nil {
				assert.ErrorIs(t, err, tc.errIs)
				assert.Nil(t, u)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.role, u.Role())
		})
	}
}

func TestPrincipal(t *testing.T) {
	lotA, lotB := uuid.New(), uuid.New()

	sys := user.Principal{UserID: uuid.New(), Role: user.RoleSystemAdmin}
	keeper := user.Principal{UserID: uuid.New(), Role: user.RoleLotAdmin, LotID: &lotA}
	driver := user.Principal{UserID: uuid.New(), Role: user.RoleUser}

	assert.True(t, sys.CanManageLot(lotA))
	assert.True(t, sys.CanManageLot(lotB))
	assert.True(t, keeper.CanManageLot(lotA))
	assert.False(t, keeper.CanManageLot(lotB))
	assert.False(t, driver.CanManageLot(lotA))

	assert.True(t, sys.IsSystemAdmin())
	assert.False(t, keeper.IsSystemAdmin())
	assert.True(t, keeper.Role.IsAdmin())
	assert.False(t, driver.Role.IsAdmin())
}

func TestNewRole(t *testing.T) {
	r, err := user.NewRole("LOT_ADMIN")
	require.NoError(t, err)
	assert.Equal(t, user.RoleLotAdmin, r)

	_, err = user.NewRole("admin")
	assert.ErrorIs(t, err, user.ErrInvalidRole)
}

func TestValidatePassword(t *testing.T) {
	assert.NoError(t, user.ValidatePassword("12345678"))
	assert.ErrorIs(t, user.ValidatePassword("1234567"), user.ErrPasswordTooWeak)
}
