package middleware

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/marai-app/marai/internal/infrastructure/permission"
	"github.com/marai-app/marai/internal/shared/constants"
)

const rbacModel = `[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

func newTestEnforcer(t *testing.T) *permission.Enforcer {
	t.Helper()

	modelPath := filepath.Join(t.TempDir(), "rbac_model.conf")
	require.NoError(t, os.WriteFile(modelPath, []byte(rbacModel), 0o600))

	// The casbin gorm adapter uses two pool connections at once (a
	// transaction plus a side query); in-memory SQLite gives each
	// connection its own database, so back the test DB with a file.
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "casbin.db")), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	enforcer, err := permission.NewEnforcer(db, modelPath, testLogger())
	require.NoError(t, err)
	require.NoError(t, permission.InitFarmPermissions(enforcer.Raw(), testLogger()))

	return enforcer
}

func newPermTestRouter(t *testing.T, enforcer *permission.Enforcer, role, resource, action string) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	mw := NewPermissionMiddleware(enforcer, testLogger())
	r.GET("/x",
		func(c *gin.Context) { c.Set(constants.ContextKeyUserRole, role) },
		mw.RequirePermission(resource, action),
		func(c *gin.Context) { c.Status(http.StatusOK) },
	)
	return r
}

func TestRequirePermission(t *testing.T) {
	enforcer := newTestEnforcer(t)

	get := func(r *gin.Engine) int {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
		return w.Code
	}

	t.Run("owner bypasses the policy table", func(t *testing.T) {
		r := newPermTestRouter(t, enforcer, constants.RoleOwner, "goat", "delete")
		assert.Equal(t, http.StatusOK, get(r))
	})

	t.Run("worker may read the herd", func(t *testing.T) {
		r := newPermTestRouter(t, enforcer, constants.RoleWorker, "goat", "read")
		assert.Equal(t, http.StatusOK, get(r))
	})

	t.Run("worker may not register animals", func(t *testing.T) {
		r := newPermTestRouter(t, enforcer, constants.RoleWorker, "goat", "create")
		assert.Equal(t, http.StatusForbidden, get(r))
	})

	t.Run("manager may not delete animals", func(t *testing.T) {
		r := newPermTestRouter(t, enforcer, constants.RoleManager, "goat", "delete")
		assert.Equal(t, http.StatusForbidden, get(r))
	})

	t.Run("missing role is unauthenticated", func(t *testing.T) {
		gin.SetMode(gin.TestMode)
		r := gin.New()
		mw := NewPermissionMiddleware(enforcer, testLogger())
		r.GET("/x", mw.RequirePermission("goat", "read"), func(c *gin.Context) { c.Status(http.StatusOK) })
		assert.Equal(t, http.StatusUnauthorized, get(r))
	})
}

func TestRequireRole(t *testing.T) {
	enforcer := newTestEnforcer(t)
	mw := NewPermissionMiddleware(enforcer, testLogger())
	gin.SetMode(gin.TestMode)

	run := func(role string) int {
		r := gin.New()
		r.GET("/admin",
			func(c *gin.Context) {
				if role != "" {
					c.Set(constants.ContextKeyUserRole, role)
				}
			},
			mw.RequireRole(constants.RoleSuperAdmin),
			func(c *gin.Context) { c.Status(http.StatusOK) },
		)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin", nil))
		return w.Code
	}

	assert.Equal(t, http.StatusOK, run(constants.RoleSuperAdmin))
	assert.Equal(t, http.StatusForbidden, run(constants.RoleOwner))
	assert.Equal(t, http.StatusUnauthorized, run(""))
}
