//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"parking-engine/internal/domain/user"
	"parking-engine/internal/pkg/config"
	"parking-engine/internal/pkg/jwt"

	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, p user.Principal) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, h.cfg.Duration).GenerateToken(p)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken signs a token that expired a minute ago.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, p user.Principal) string {
	t.Helper()
	token, err := jwt.NewService(h.cfg.Secret, -time.Minute).GenerateToken(p)
	require.NoError(t, err)
	return token
}
