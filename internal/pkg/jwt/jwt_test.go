//go:build unit

package jwt

import (
	"testing"
	"time"

	"parking-engine/internal/domain/user"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService(t *testing.T) {
	lotID := uuid.New()
	principal := user.Principal{UserID: uuid.New(), Role: user.RoleLotAdmin, LotID: &lotID}

	t.Run("round trip keeps lot scope", func(t *testing.T) {
		svc := NewService("secret", time.Hour)
		token, err := svc.GenerateToken(principal)
		require.NoError(t, err)

		claims, err := svc.ValidateToken(token)
		require.NoError(t, err)
		got, err := claims.Principal()
		require.NoError(t, err)
		assert.Equal(t, principal.UserID, got.UserID)
		assert.Equal(t, user.RoleLotAdmin, got.Role)
		require.NotNil(t, got.LotID)
		assert.Equal(t, lotID, *got.LotID)
	})

	t.Run("expired token", func(t *testing.T) {
		svc := NewService("secret", time.Minute)
		issued := time.Now().Add(-time.Hour)
		svc.now = func() time.Time { return issued }
		token, err := svc.GenerateToken(principal)
		require.NoError(t, err)

		svc.now = time.Now
		_, err = svc.ValidateToken(token)
		assert.ErrorIs(t, err, ErrExpiredToken)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := NewService("secret", time.Hour).GenerateToken(principal)
		require.NoError(t, err)

		_, err = NewService("other", time.Hour).ValidateToken(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := NewService("secret", time.Hour).ValidateToken("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
