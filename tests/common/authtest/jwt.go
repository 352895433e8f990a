//go:build unit || e2e

package authtest

import (
	"testing"
	"time"

	"gin-order-admin/internal/domain/user"
	"gin-order-admin/internal/pkg/config"
	"gin-order-admin/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type JWTHelper struct {
	cfg config.JWTConfig
}

func NewJWTHelper(cfg config.JWTConfig) *JWTHelper {
	return &JWTHelper{cfg: cfg}
}

func (h *JWTHelper) GenerateToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	duration, err := time.ParseDuration(h.cfg.Duration)
	require.NoError(t, err)
	token, _, err := jwt.NewService(h.cfg.Secret, duration, h.cfg.Issuer).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

func (h *JWTHelper) CreateExpiredToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, _, err := jwt.NewService(h.cfg.Secret, -time.Minute, h.cfg.Issuer).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}

// CreateForeignToken is signed with a different secret.
func (h *JWTHelper) CreateForeignToken(t *testing.T, userID uuid.UUID, role user.Role) string {
	t.Helper()
	token, _, err := jwt.NewService(h.cfg.Secret+"-other", time.Hour, h.cfg.Issuer).GenerateToken(userID, role)
	require.NoError(t, err)
	return token
}
