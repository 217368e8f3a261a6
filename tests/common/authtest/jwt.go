//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"cuponera/internal/domain/user"
	"cuponera/internal/pkg/config"
	"cuponera/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// JWTHelper mints tokens directly from the configured secret, bypassing the
// login endpoint.
type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) durations(t *testing.T) (access, refresh time.Duration) {
	t.Helper()
	access, err := time.ParseDuration(h.cfg.AccessTokenDuration)
	require.NoError(t, err)
	refresh, err = time.ParseDuration(h.cfg.RefreshTokenDuration)
	require.NoError(t, err)
	return access, refresh
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	access, refresh := h.durations(t)
	token, err := jwt.NewService(h.cfg.Secret, access, refresh).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateExpiredToken issues a token with a millisecond lifetime and waits it
// out, for expiry-path tests.
func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	_, refresh := h.durations(t)
	token, err := jwt.NewService(h.cfg.Secret, time.Millisecond, refresh).GenerateAccessToken(userID, role)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)
	return token
}
