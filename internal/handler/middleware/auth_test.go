//go:build unit

package middleware_test

import (
	"net/http"
	"testing"
	"time"

	"gin-order-admin/internal/domain/user"
	"gin-order-admin/internal/handler/middleware"
	"gin-order-admin/internal/pkg/config"
	"gin-order-admin/internal/pkg/cookie"
	"gin-order-admin/internal/pkg/jwt"
	"gin-order-admin/internal/usecase"
	"gin-order-admin/tests/common/authtest"
	"gin-order-admin/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T, cfg config.Config, minRole user.Role) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	duration, err := time.ParseDuration(cfg.JWT.Duration)
	require.NoError(t, err)
	mw := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(cfg.JWT.Secret, duration, cfg.JWT.Issuer)))

	r := gin.New()
	r.GET("/protected", mw.RequireAuth(), mw.RequireRoleAtLeast(minRole), func(c *gin.Context) {
		id, ok := middleware.GetUserID(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.String(http.StatusOK, id.String())
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	cfg := config.NewTestConfig()
	helper := authtest.NewJWTHelper(cfg.JWT)
	router := newRouter(t, cfg, user.RoleViewer)
	userID := uuid.New()

	t.Run("bearer token", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, helper.GenerateToken(t, userID, user.RoleViewer))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, userID.String(), w.Body.String())
	})

	t.Run("session cookie", func(t *testing.T) {
		session := &http.Cookie{Name: cookie.AccessTokenCookieName, Value: helper.GenerateToken(t, userID, user.RoleAdmin)}
		w := httptest.PerformRequestWithCookies(t, router, http.MethodGet, "/protected", nil, []*http.Cookie{session}, "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "")
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Access token required")
	})

	t.Run("expired token", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, helper.CreateExpiredToken(t, userID, user.RoleAdmin))
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})

	t.Run("foreign signature", func(t *testing.T) {
		w := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, helper.CreateForeignToken(t, userID, user.RoleAdmin))
		httptest.AssertErrorResponse(t, w, http.StatusUnauthorized, "Invalid or expired token")
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	cfg := config.NewTestConfig()
	helper := authtest.NewJWTHelper(cfg.JWT)
	router := newRouter(t, cfg, user.RoleOperator)

	tests := []struct {
		role   user.Role
		status int
	}{
		{user.RoleViewer, http.StatusForbidden},
		{user.RoleOperator, http.StatusOK},
		{user.RoleAdmin, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.role.String(), func(t *testing.T) {
			w := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, helper.GenerateToken(t, uuid.New(), tt.role))
			assert.Equal(t, tt.status, w.Code)
			if tt.status == http.StatusForbidden {
				httptest.AssertErrorDetail(t, w, map[string]any{"requiredRole": "operator"})
			}
		})
	}
}
