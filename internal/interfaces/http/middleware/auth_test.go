package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainUser "github.com/marai-app/marai/internal/domain/user"
	"github.com/marai-app/marai/internal/infrastructure/auth"
	"github.com/marai-app/marai/internal/shared/constants"
	"github.com/marai-app/marai/internal/shared/logger"
	"github.com/marai-app/marai/internal/shared/scope"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func newAuthTestRouter(t *testing.T, svc *auth.JWTService) (*gin.Engine, *scope.Scope, *bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var captured scope.Scope
	var bound bool

	r := gin.New()
	mw := NewAuthMiddleware(svc, testLogger())
	r.GET("/protected", mw.RequireAuth(), func(c *gin.Context) {
		if sc, ok := scope.FromContext(c.Request.Context()); ok {
			captured = sc
			bound = true
		}
		c.JSON(http.StatusOK, gin.H{
			"user_id": c.GetUint(constants.ContextKeyUserID),
			"role":    c.GetString(constants.ContextKeyUserRole),
		})
	})
	return r, &captured, &bound
}

func farmUser(t *testing.T) *domainUser.User {
	t.Helper()
	farmID := uint(7)
	u, err := domainUser.Reconstruct(
		42, "usr_42", 3,
		"manager@farm.example", "hash", "Noor", constants.RoleManager,
		&farmID, true, nil,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return u
}

func TestRequireAuth(t *testing.T) {
	svc := auth.NewJWTService("test-secret", 15, 7)

	t.Run("rejects missing header", func(t *testing.T) {
		r, _, _ := newAuthTestRouter(t, svc)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/protected", nil))
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects malformed header", func(t *testing.T) {
		r, _, _ := newAuthTestRouter(t, svc)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Basic abc123")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects refresh token on access endpoints", func(t *testing.T) {
		token, err := svc.IssueRefreshToken(farmUser(t))
		require.NoError(t, err)

		r, _, _ := newAuthTestRouter(t, svc)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("binds tenant and farm onto the request context", func(t *testing.T) {
		token, err := svc.IssueAccessToken(farmUser(t))
		require.NoError(t, err)

		r, captured, bound := newAuthTestRouter(t, svc)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		require.True(t, *bound)
		assert.Equal(t, uint(3), captured.TenantID)
		assert.Equal(t, uint(7), captured.FarmID)
	})

	t.Run("platform admin carries no tenant scope", func(t *testing.T) {
		admin, err := domainUser.Reconstruct(
			1, "usr_1", 0,
			"root@marai.example", "hash", "Root", constants.RoleSuperAdmin,
			nil, true, nil,
			time.Now(), time.Now(),
		)
		require.NoError(t, err)

		token, err := svc.IssueAccessToken(admin)
		require.NoError(t, err)

		r, _, bound := newAuthTestRouter(t, svc)
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.False(t, *bound)
	})
}
