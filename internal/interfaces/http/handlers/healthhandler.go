package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	healthUC "github.com/marai-app/marai/internal/application/health/usecases"
	domainHealth "github.com/marai-app/marai/internal/domain/health"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
	"github.com/marai-app/marai/internal/shared/query"
	"github.com/marai-app/marai/internal/shared/utils"
)

// HealthEventHandler handles veterinary record endpoints.
type HealthEventHandler struct {
	recordUC *healthUC.RecordHealthEventUseCase
	deleteUC *healthUC.DeleteHealthEventUseCase
	listUC   *healthUC.ListHealthEventsUseCase
	logger   logger.Interface
}

// NewHealthEventHandler creates a new health event handler
func NewHealthEventHandler(
	recordUC *healthUC.RecordHealthEventUseCase,
	deleteUC *healthUC.DeleteHealthEventUseCase,
	listUC *healthUC.ListHealthEventsUseCase,
	log logger.Interface,
) *HealthEventHandler {
	return &HealthEventHandler{
		recordUC: recordUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		logger:   log,
	}
}

type RecordHealthEventRequest struct {
	GoatSID     string   `json:"goat_sid" binding:"required"`
	EventType   string   `json:"event_type" binding:"required,oneof=VACCINATION TREATMENT CHECKUP DEWORMING QUARANTINE"`
	EventDate   string   `json:"event_date" binding:"required,dateonly"`
	Description string   `json:"description" binding:"required,max=2000"`
	VetName     string   `json:"vet_name" binding:"max=100"`
	Cost        *float64 `json:"cost" binding:"omitempty,gte=0"`
}

// RecordEvent handles POST /health-events
func (h *HealthEventHandler) RecordEvent(c *gin.Context) {
	var req RecordHealthEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for health event", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	eventDate, err := time.Parse(time.DateOnly, req.EventDate)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid event date, expected YYYY-MM-DD"))
		return
	}

	result, err := h.recordUC.Execute(c.Request.Context(), healthUC.RecordHealthEventCommand{
		GoatSID:     req.GoatSID,
		EventType:   domainHealth.EventType(req.EventType),
		EventDate:   eventDate,
		Description: req.Description,
		VetName:     req.VetName,
		Cost:        req.Cost,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Health event recorded successfully")
}

// DeleteEvent handles DELETE /health-events/:sid
func (h *HealthEventHandler) DeleteEvent(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("sid")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

type ListHealthEventsRequest struct {
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	EventType string `form:"event_type" binding:"omitempty,oneof=VACCINATION TREATMENT CHECKUP DEWORMING QUARANTINE"`
}

// ListEvents handles GET /health-events
func (h *HealthEventHandler) ListEvents(c *gin.Context) {
	var req ListHealthEventsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid query parameters", err.Error()))
		return
	}

	filter := domainHealth.ListFilter{
		BaseFilter: query.BaseFilter{
			PageFilter: query.PageFilter{Page: req.Page, PageSize: req.PageSize},
		},
	}
	if req.EventType != "" {
		et := domainHealth.EventType(req.EventType)
		filter.EventType = &et
	}

	results, total, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filter.Normalize()
	utils.ListSuccessResponse(c, results, total, filter.Page, filter.PageSize)
}
