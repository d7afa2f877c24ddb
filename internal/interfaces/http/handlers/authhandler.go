// Package handlers contains the gin HTTP handlers. Handlers bind and
// validate the wire format, call a use case with the request context,
// and translate results through the shared response envelope. Tenant
// identity never appears in a request body; it rides on the context
// set by the auth middleware.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	authUC "github.com/marai-app/marai/internal/application/auth/usecases"
	tenantUC "github.com/marai-app/marai/internal/application/tenant/usecases"
	"github.com/marai-app/marai/internal/shared/constants"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
	"github.com/marai-app/marai/internal/shared/utils"
)

// AuthHandler handles signup, login and farm switching.
type AuthHandler struct {
	signupUC     *tenantUC.SignupUseCase
	loginUC      *authUC.LoginUseCase
	switchFarmUC *tenantUC.SwitchFarmUseCase
	logger       logger.Interface
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(
	signupUC *tenantUC.SignupUseCase,
	loginUC *authUC.LoginUseCase,
	switchFarmUC *tenantUC.SwitchFarmUseCase,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		signupUC:     signupUC,
		loginUC:      loginUC,
		switchFarmUC: switchFarmUC,
		logger:       log,
	}
}

type SignupRequest struct {
	TenantName string `json:"tenant_name" binding:"required,min=2,max=100"`
	FarmName   string `json:"farm_name" binding:"required,min=2,max=100"`
	Location   string `json:"location" binding:"max=200"`
	Currency   string `json:"currency" binding:"omitempty,len=3"`
	OwnerEmail string `json:"owner_email" binding:"required,email"`
	OwnerName  string `json:"owner_name" binding:"required,min=2,max=100"`
	Password   string `json:"password" binding:"required,min=8,max=72"`
}

// Signup handles POST /auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for signup", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.signupUC.Execute(c.Request.Context(), tenantUC.SignupCommand{
		TenantName: req.TenantName,
		FarmName:   req.FarmName,
		Location:   req.Location,
		Currency:   req.Currency,
		OwnerEmail: req.OwnerEmail,
		OwnerName:  req.OwnerName,
		Password:   req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Account created successfully")
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for login", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.loginUC.Execute(c.Request.Context(), authUC.LoginCommand{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type SwitchFarmRequest struct {
	FarmSID string `json:"farm_sid" binding:"required"`
}

// SwitchFarm handles POST /auth/switch-farm
func (h *AuthHandler) SwitchFarm(c *gin.Context) {
	var req SwitchFarmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.switchFarmUC.Execute(c.Request.Context(), tenantUC.SwitchFarmCommand{
		UserID:  c.GetUint(constants.ContextKeyUserID),
		FarmSID: req.FarmSID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Active farm switched", result)
}
