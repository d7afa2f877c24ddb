package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	tenantUC "github.com/marai-app/marai/internal/application/tenant/usecases"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
	"github.com/marai-app/marai/internal/shared/utils"
)

// FarmHandler handles farm and per-farm setting endpoints.
type FarmHandler struct {
	createUC       *tenantUC.CreateFarmUseCase
	listUC         *tenantUC.ListFarmsUseCase
	upsertSettingUC *tenantUC.UpsertSettingUseCase
	listSettingsUC *tenantUC.ListSettingsUseCase
	logger         logger.Interface
}

// NewFarmHandler creates a new farm handler
func NewFarmHandler(
	createUC *tenantUC.CreateFarmUseCase,
	listUC *tenantUC.ListFarmsUseCase,
	upsertSettingUC *tenantUC.UpsertSettingUseCase,
	listSettingsUC *tenantUC.ListSettingsUseCase,
	log logger.Interface,
) *FarmHandler {
	return &FarmHandler{
		createUC:        createUC,
		listUC:          listUC,
		upsertSettingUC: upsertSettingUC,
		listSettingsUC:  listSettingsUC,
		logger:          log,
	}
}

type CreateFarmRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Location string `json:"location" binding:"max=200"`
	Currency string `json:"currency" binding:"omitempty,len=3"`
}

// CreateFarm handles POST /farms
func (h *FarmHandler) CreateFarm(c *gin.Context) {
	var req CreateFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create farm", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), tenantUC.CreateFarmCommand{
		Name:     req.Name,
		Location: req.Location,
		Currency: req.Currency,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Farm created successfully")
}

// ListFarms handles GET /farms
func (h *FarmHandler) ListFarms(c *gin.Context) {
	results, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", results)
}

type UpsertSettingRequest struct {
	Key   string `json:"key" binding:"required,min=1,max=100"`
	Value string `json:"value" binding:"required"`
}

// UpsertSetting handles PUT /settings
func (h *FarmHandler) UpsertSetting(c *gin.Context) {
	var req UpsertSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.upsertSettingUC.Execute(c.Request.Context(), req.Key, req.Value)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Setting saved", result)
}

// ListSettings handles GET /settings
func (h *FarmHandler) ListSettings(c *gin.Context) {
	results, err := h.listSettingsUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", results)
}
