package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	feedUC "github.com/marai-app/marai/internal/application/feed/usecases"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
	"github.com/marai-app/marai/internal/shared/utils"
)

// FeedScheduleHandler handles feeding schedule endpoints.
type FeedScheduleHandler struct {
	createUC *feedUC.CreateFeedScheduleUseCase
	updateUC *feedUC.UpdateFeedScheduleUseCase
	deleteUC *feedUC.DeleteFeedScheduleUseCase
	listUC   *feedUC.ListFeedSchedulesUseCase
	logger   logger.Interface
}

// NewFeedScheduleHandler creates a new feed schedule handler
func NewFeedScheduleHandler(
	createUC *feedUC.CreateFeedScheduleUseCase,
	updateUC *feedUC.UpdateFeedScheduleUseCase,
	deleteUC *feedUC.DeleteFeedScheduleUseCase,
	listUC *feedUC.ListFeedSchedulesUseCase,
	log logger.Interface,
) *FeedScheduleHandler {
	return &FeedScheduleHandler{
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		listUC:   listUC,
		logger:   log,
	}
}

type FeedScheduleRequest struct {
	Name        string   `json:"name" binding:"required,min=2,max=100"`
	FeedType    string   `json:"feed_type" binding:"required,min=2,max=100"`
	TimesPerDay int      `json:"times_per_day" binding:"required,min=1,max=12"`
	AmountKg    *float64 `json:"amount_kg" binding:"omitempty,gt=0"`
	Notes       string   `json:"notes"`
}

func (r FeedScheduleRequest) toCommand() feedUC.FeedScheduleCommand {
	return feedUC.FeedScheduleCommand{
		Name:        r.Name,
		FeedType:    r.FeedType,
		TimesPerDay: r.TimesPerDay,
		AmountKg:    r.AmountKg,
		Notes:       r.Notes,
	}
}

// CreateSchedule handles POST /feed-schedules
func (h *FeedScheduleHandler) CreateSchedule(c *gin.Context) {
	var req FeedScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create feed schedule", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), req.toCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Feed schedule created successfully")
}

// UpdateSchedule handles PUT /feed-schedules/:sid
func (h *FeedScheduleHandler) UpdateSchedule(c *gin.Context) {
	var req FeedScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.updateUC.Execute(c.Request.Context(), c.Param("sid"), req.toCommand())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Feed schedule updated successfully", result)
}

// DeleteSchedule handles DELETE /feed-schedules/:sid
func (h *FeedScheduleHandler) DeleteSchedule(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("sid")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// ListSchedules handles GET /feed-schedules
func (h *FeedScheduleHandler) ListSchedules(c *gin.Context) {
	results, err := h.listUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", results)
}
