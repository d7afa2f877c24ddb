package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	tenantUC "github.com/marai-app/marai/internal/application/tenant/usecases"
	domainTenant "github.com/marai-app/marai/internal/domain/tenant"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
	"github.com/marai-app/marai/internal/shared/utils"
)

// TenantAdminHandler handles platform-admin tenant management. Routes
// using it are gated to the super_admin role.
type TenantAdminHandler struct {
	getUC        *tenantUC.GetTenantUseCase
	setStatusUC  *tenantUC.SetTenantStatusUseCase
	changePlanUC *tenantUC.ChangePlanUseCase
	logger       logger.Interface
}

// NewTenantAdminHandler creates a new tenant admin handler
func NewTenantAdminHandler(
	getUC *tenantUC.GetTenantUseCase,
	setStatusUC *tenantUC.SetTenantStatusUseCase,
	changePlanUC *tenantUC.ChangePlanUseCase,
	log logger.Interface,
) *TenantAdminHandler {
	return &TenantAdminHandler{
		getUC:        getUC,
		setStatusUC:  setStatusUC,
		changePlanUC: changePlanUC,
		logger:       log,
	}
}

// GetTenant handles GET /admin/tenants/:sid
func (h *TenantAdminHandler) GetTenant(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), c.Param("sid"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type SetTenantStatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetStatus handles PATCH /admin/tenants/:sid/status
func (h *TenantAdminHandler) SetStatus(c *gin.Context) {
	var req SetTenantStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.setStatusUC.Execute(c.Request.Context(), c.Param("sid"), *req.Active)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tenant status updated", result)
}

type ChangePlanRequest struct {
	Plan string `json:"plan" binding:"required,oneof=FREE STANDARD ENTERPRISE"`
}

// ChangePlan handles PATCH /admin/tenants/:sid/plan
func (h *TenantAdminHandler) ChangePlan(c *gin.Context) {
	var req ChangePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.changePlanUC.Execute(c.Request.Context(), c.Param("sid"), domainTenant.Plan(req.Plan))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Tenant plan updated", result)
}
