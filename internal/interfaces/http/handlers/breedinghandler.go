package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	breedingUC "github.com/marai-app/marai/internal/application/breeding/usecases"
	domainBreeding "github.com/marai-app/marai/internal/domain/breeding"
	domainGoat "github.com/marai-app/marai/internal/domain/goat"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
	"github.com/marai-app/marai/internal/shared/query"
	"github.com/marai-app/marai/internal/shared/utils"
)

// BreedingHandler handles the breeding lifecycle: plan a mating,
// confirm or fail the pregnancy, record the delivery.
type BreedingHandler struct {
	createUC      *breedingUC.CreateBreedingUseCase
	confirmUC     *breedingUC.ConfirmPregnancyUseCase
	failUC        *breedingUC.MarkBreedingFailedUseCase
	recordBirthUC *breedingUC.RecordBirthUseCase
	getUC         *breedingUC.GetBreedingUseCase
	listUC        *breedingUC.ListBreedingsUseCase
	logger        logger.Interface
}

// NewBreedingHandler creates a new breeding handler
func NewBreedingHandler(
	createUC *breedingUC.CreateBreedingUseCase,
	confirmUC *breedingUC.ConfirmPregnancyUseCase,
	failUC *breedingUC.MarkBreedingFailedUseCase,
	recordBirthUC *breedingUC.RecordBirthUseCase,
	getUC *breedingUC.GetBreedingUseCase,
	listUC *breedingUC.ListBreedingsUseCase,
	log logger.Interface,
) *BreedingHandler {
	return &BreedingHandler{
		createUC:      createUC,
		confirmUC:     confirmUC,
		failUC:        failUC,
		recordBirthUC: recordBirthUC,
		getUC:         getUC,
		listUC:        listUC,
		logger:        log,
	}
}

type CreateBreedingRequest struct {
	MotherSID    string  `json:"mother_sid" binding:"required"`
	FatherSID    string  `json:"father_sid"`
	MatingDate   string  `json:"mating_date" binding:"required,dateonly"`
	ExpectedDate *string `json:"expected_date" binding:"omitempty,dateonly"`
	Notes        string  `json:"notes"`
}

// CreateBreeding handles POST /breedings
func (h *BreedingHandler) CreateBreeding(c *gin.Context) {
	var req CreateBreedingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create breeding", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	matingDate, err := time.Parse(time.DateOnly, req.MatingDate)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid mating date, expected YYYY-MM-DD"))
		return
	}

	cmd := breedingUC.CreateBreedingCommand{
		MotherSID:  req.MotherSID,
		FatherSID:  req.FatherSID,
		MatingDate: matingDate,
		Notes:      req.Notes,
	}
	if req.ExpectedDate != nil {
		expected, err := time.Parse(time.DateOnly, *req.ExpectedDate)
		if err != nil {
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid expected date, expected YYYY-MM-DD"))
			return
		}
		cmd.ExpectedDate = &expected
	}

	result, err := h.createUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Breeding recorded successfully")
}

// ConfirmPregnancy handles POST /breedings/:sid/confirm
func (h *BreedingHandler) ConfirmPregnancy(c *gin.Context) {
	result, err := h.confirmUC.Execute(c.Request.Context(), c.Param("sid"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Pregnancy confirmed", result)
}

// MarkFailed handles POST /breedings/:sid/fail
func (h *BreedingHandler) MarkFailed(c *gin.Context) {
	result, err := h.failUC.Execute(c.Request.Context(), c.Param("sid"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Breeding marked as failed", result)
}

type KidRequest struct {
	TagID    string   `json:"tag_id"`
	Gender   string   `json:"gender" binding:"required,oneof=MALE FEMALE"`
	Outcome  string   `json:"outcome" binding:"required,oneof=ALIVE STILLBORN DIED"`
	WeightKg *float64 `json:"weight_kg" binding:"omitempty,gte=0"`
	Notes    string   `json:"notes"`
}

type RecordBirthRequest struct {
	BirthDate string       `json:"birth_date" binding:"required,dateonly"`
	Kids      []KidRequest `json:"kids" binding:"required,min=1,max=6,dive"`
}

// RecordBirth handles POST /breedings/:sid/birth. The entire delivery
// commits or rolls back as one unit: birth records, kid animals and
// the breeding status flip.
func (h *BreedingHandler) RecordBirth(c *gin.Context) {
	var req RecordBirthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for record birth", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	birthDate, err := time.Parse(time.DateOnly, req.BirthDate)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid birth date, expected YYYY-MM-DD"))
		return
	}

	cmd := breedingUC.RecordBirthCommand{
		BreedingSID: c.Param("sid"),
		BirthDate:   birthDate,
	}
	for _, kid := range req.Kids {
		cmd.Kids = append(cmd.Kids, breedingUC.KidInput{
			TagID:    kid.TagID,
			Gender:   domainGoat.Gender(kid.Gender),
			Outcome:  domainBreeding.Outcome(kid.Outcome),
			WeightKg: kid.WeightKg,
			Notes:    kid.Notes,
		})
	}

	result, err := h.recordBirthUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Birth recorded successfully")
}

// GetBreeding handles GET /breedings/:sid
func (h *BreedingHandler) GetBreeding(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), c.Param("sid"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type ListBreedingsRequest struct {
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Status    string `form:"status" binding:"omitempty,oneof=PLANNED PREGNANT DELIVERED FAILED"`
}

// ListBreedings handles GET /breedings
func (h *BreedingHandler) ListBreedings(c *gin.Context) {
	var req ListBreedingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid query parameters", err.Error()))
		return
	}

	filter := domainBreeding.ListFilter{
		BaseFilter: query.BaseFilter{
			PageFilter: query.PageFilter{Page: req.Page, PageSize: req.PageSize},
			SortFilter: query.SortFilter{SortBy: req.SortBy, SortOrder: req.SortOrder},
		},
	}
	if req.Status != "" {
		s := domainBreeding.Status(req.Status)
		filter.Status = &s
	}

	results, total, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	filter.Normalize()
	utils.ListSuccessResponse(c, results, total, filter.Page, filter.PageSize)
}
