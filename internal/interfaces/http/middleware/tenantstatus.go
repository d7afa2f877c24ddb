package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/marai-app/marai/internal/domain/tenant"
	"github.com/marai-app/marai/internal/infrastructure/cache"
	"github.com/marai-app/marai/internal/shared/constants"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
	"github.com/marai-app/marai/internal/shared/utils"
)

// TenantStatusMiddleware gates every scoped request on the tenant
// being active. Deactivated tenants get a distinct error so clients
// can route to support. Platform admins bypass the gate so they can
// service deactivated accounts.
type TenantStatusMiddleware struct {
	tenantRepo  tenant.Repository
	statusCache cache.TenantStatusCache
	logger      logger.Interface
}

func NewTenantStatusMiddleware(
	tenantRepo tenant.Repository,
	statusCache cache.TenantStatusCache,
	logger logger.Interface,
) *TenantStatusMiddleware {
	return &TenantStatusMiddleware{
		tenantRepo:  tenantRepo,
		statusCache: statusCache,
		logger:      logger,
	}
}

func (m *TenantStatusMiddleware) RequireActiveTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role := c.GetString(constants.ContextKeyUserRole); role == constants.RoleSuperAdmin {
			c.Next()
			return
		}

		tenantID := c.GetUint(constants.ContextKeyTenantID)
		if tenantID == 0 {
			utils.ErrorResponse(c, http.StatusUnauthorized, "no tenant bound to request")
			c.Abort()
			return
		}

		active, err := m.isActive(c, tenantID)
		if err != nil {
			m.logger.Errorw("failed to check tenant status", "tenant_id", tenantID, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, "failed to check tenant status")
			c.Abort()
			return
		}

		if !active {
			utils.ErrorResponseWithError(c, errors.NewTenantDeactivatedError("account is deactivated, contact support"))
			c.Abort()
			return
		}

		c.Next()
	}
}

func (m *TenantStatusMiddleware) isActive(c *gin.Context, tenantID uint) (bool, error) {
	ctx := c.Request.Context()

	if m.statusCache != nil {
		cached, err := m.statusCache.GetStatus(ctx, tenantID)
		if err != nil {
			// Cache trouble falls through to the database.
			m.logger.Warnw("tenant status cache lookup failed", "tenant_id", tenantID, "error", err)
		} else if cached != nil {
			if cached.NotFound {
				return false, nil
			}
			return cached.Active, nil
		}
	}

	tenantEntity, err := m.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return false, err
	}
	if tenantEntity == nil {
		if m.statusCache != nil {
			_ = m.statusCache.SetNullMarker(ctx, tenantID)
		}
		return false, nil
	}

	if m.statusCache != nil {
		_ = m.statusCache.SetStatus(ctx, tenantID, &cache.CachedTenantStatus{
			Active: tenantEntity.IsActive(),
			Plan:   tenantEntity.Plan().String(),
		})
	}

	return tenantEntity.IsActive(), nil
}
