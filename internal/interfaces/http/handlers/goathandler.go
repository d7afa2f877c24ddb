package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	goatUC "github.com/marai-app/marai/internal/application/goat/usecases"
	domainGoat "github.com/marai-app/marai/internal/domain/goat"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
	"github.com/marai-app/marai/internal/shared/query"
	"github.com/marai-app/marai/internal/shared/services/markdown"
	"github.com/marai-app/marai/internal/shared/utils"
)

// GoatHandler handles HTTP requests for herd operations
type GoatHandler struct {
	createUC  *goatUC.CreateGoatUseCase
	getUC     *goatUC.GetGoatUseCase
	lineageUC *goatUC.GetLineageUseCase
	listUC    *goatUC.ListGoatsUseCase
	updateUC  *goatUC.UpdateGoatUseCase
	deleteUC  *goatUC.DeleteGoatUseCase
	markdown  markdown.MarkdownService
	logger    logger.Interface
}

// NewGoatHandler creates a new goat handler
func NewGoatHandler(
	createUC *goatUC.CreateGoatUseCase,
	getUC *goatUC.GetGoatUseCase,
	lineageUC *goatUC.GetLineageUseCase,
	listUC *goatUC.ListGoatsUseCase,
	updateUC *goatUC.UpdateGoatUseCase,
	deleteUC *goatUC.DeleteGoatUseCase,
	markdownService markdown.MarkdownService,
	log logger.Interface,
) *GoatHandler {
	return &GoatHandler{
		createUC:  createUC,
		getUC:     getUC,
		lineageUC: lineageUC,
		listUC:    listUC,
		updateUC:  updateUC,
		deleteUC:  deleteUC,
		markdown:  markdownService,
		logger:    log,
	}
}

type CreateGoatRequest struct {
	TagID     string   `json:"tag_id" binding:"required,min=1,max=64"`
	Gender    string   `json:"gender" binding:"required,oneof=MALE FEMALE"`
	BirthDate string   `json:"birth_date" binding:"required,dateonly"`
	WeightKg  *float64 `json:"weight_kg" binding:"omitempty,gte=0"`
	BreedName string   `json:"breed_name" binding:"max=100"`
	Notes     string   `json:"notes"`
}

// CreateGoat handles POST /goats
func (h *GoatHandler) CreateGoat(c *gin.Context) {
	var req CreateGoatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create goat", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	birthDate, err := time.Parse(time.DateOnly, req.BirthDate)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid birth date, expected YYYY-MM-DD"))
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), goatUC.CreateGoatCommand{
		TagID:     req.TagID,
		Gender:    domainGoat.Gender(req.Gender),
		BirthDate: birthDate,
		WeightKg:  req.WeightKg,
		BreedName: req.BreedName,
		Notes:     req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Goat registered successfully")
}

type GoatDetailResponse struct {
	goatUC.GoatResult
	NotesHTML string `json:"notes_html,omitempty"`
}

// GetGoat handles GET /goats/:sid
func (h *GoatHandler) GetGoat(c *gin.Context) {
	result, err := h.getUC.Execute(c.Request.Context(), c.Param("sid"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	detail := GoatDetailResponse{GoatResult: *result}
	if result.Notes != "" {
		rendered, err := h.markdown.ToHTMLSanitized(result.Notes)
		if err != nil {
			h.logger.Warnw("failed to render goat notes", "error", err, "sid", result.SID)
		} else {
			detail.NotesHTML = rendered
		}
	}

	utils.SuccessResponse(c, http.StatusOK, "", detail)
}

// GetLineage handles GET /goats/:sid/lineage
func (h *GoatHandler) GetLineage(c *gin.Context) {
	result, err := h.lineageUC.Execute(c.Request.Context(), c.Param("sid"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type ListGoatsRequest struct {
	Page      int    `form:"page"`
	PageSize  int    `form:"page_size"`
	SortBy    string `form:"sort_by"`
	SortOrder string `form:"sort_order"`
	Gender    string `form:"gender" binding:"omitempty,oneof=MALE FEMALE"`
	Status    string `form:"status" binding:"omitempty,oneof=ACTIVE SOLD DECEASED QUARANTINE"`
	TagID     string `form:"tag_id"`
}

// ListGoats handles GET /goats
func (h *GoatHandler) ListGoats(c *gin.Context) {
	var req ListGoatsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid query parameters", err.Error()))
		return
	}

	filter := domainGoat.ListFilter{
		BaseFilter: query.BaseFilter{
			PageFilter: query.PageFilter{Page: req.Page, PageSize: req.PageSize},
			SortFilter: query.SortFilter{SortBy: req.SortBy, SortOrder: req.SortOrder},
		},
		TagID: req.TagID,
	}
	if req.Gender != "" {
		g := domainGoat.Gender(req.Gender)
		filter.Gender = &g
	}
	if req.Status != "" {
		s := domainGoat.Status(req.Status)
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

type UpdateGoatRequest struct {
	Status   *string  `json:"status" binding:"omitempty,oneof=ACTIVE SOLD DECEASED QUARANTINE"`
	WeightKg *float64 `json:"weight_kg" binding:"omitempty,gte=0"`
	Notes    *string  `json:"notes"`
}

// UpdateGoat handles PUT /goats/:sid
func (h *GoatHandler) UpdateGoat(c *gin.Context) {
	var req UpdateGoatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	cmd := goatUC.UpdateGoatCommand{
		SID:      c.Param("sid"),
		WeightKg: req.WeightKg,
		Notes:    req.Notes,
	}
	if req.Status != nil {
		s := domainGoat.Status(*req.Status)
		cmd.Status = &s
	}

	result, err := h.updateUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Goat updated successfully", result)
}

// DeleteGoat handles DELETE /goats/:sid
func (h *GoatHandler) DeleteGoat(c *gin.Context) {
	if err := h.deleteUC.Execute(c.Request.Context(), c.Param("sid")); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
