package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	saleUC "github.com/marai-app/marai/internal/application/sale/usecases"
	domainSale "github.com/marai-app/marai/internal/domain/sale"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
	"github.com/marai-app/marai/internal/shared/query"
	"github.com/marai-app/marai/internal/shared/utils"
)

// SaleHandler handles sale record endpoints.
type SaleHandler struct {
	recordUC   *saleUC.RecordSaleUseCase
	markPaidUC *saleUC.MarkSalePaidUseCase
	listUC     *saleUC.ListSalesUseCase
	summaryUC  *saleUC.SalesSummaryUseCase
	printer    *message.Printer
	logger     logger.Interface
}

// NewSaleHandler creates a new sale handler
func NewSaleHandler(
	recordUC *saleUC.RecordSaleUseCase,
	markPaidUC *saleUC.MarkSalePaidUseCase,
	listUC *saleUC.ListSalesUseCase,
	summaryUC *saleUC.SalesSummaryUseCase,
	log logger.Interface,
) *SaleHandler {
	return &SaleHandler{
		recordUC:   recordUC,
		markPaidUC: markPaidUC,
		listUC:     listUC,
		summaryUC:  summaryUC,
		printer:    message.NewPrinter(language.English),
		logger:     log,
	}
}

type SaleResponse struct {
	saleUC.SaleResult
	AmountDisplay string `json:"amount_display,omitempty"`
}

// toSaleResponse decorates a sale with its amount rendered in the
// sale currency. Unknown currency codes leave the display field empty.
func (h *SaleHandler) toSaleResponse(result saleUC.SaleResult) SaleResponse {
	resp := SaleResponse{SaleResult: result}
	if unit, err := currency.ParseISO(result.Currency); err == nil {
		resp.AmountDisplay = h.printer.Sprint(currency.Symbol(unit.Amount(result.Amount)))
	}
	return resp
}

type RecordSaleRequest struct {
	GoatSID       string  `json:"goat_sid" binding:"required"`
	BuyerName     string  `json:"buyer_name" binding:"required,min=2,max=100"`
	Amount        float64 `json:"amount" binding:"required,gt=0"`
	Currency      string  `json:"currency" binding:"required,len=3"`
	SaleDate      string  `json:"sale_date" binding:"required,dateonly"`
	PaymentStatus string  `json:"payment_status" binding:"omitempty,oneof=PENDING PAID"`
	Notes         string  `json:"notes"`
}

// RecordSale handles POST /sales
func (h *SaleHandler) RecordSale(c *gin.Context) {
	var req RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for record sale", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	saleDate, err := time.Parse(time.DateOnly, req.SaleDate)
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid sale date, expected YYYY-MM-DD"))
		return
	}

	result, err := h.recordUC.Execute(c.Request.Context(), saleUC.RecordSaleCommand{
		GoatSID:       req.GoatSID,
		BuyerName:     req.BuyerName,
		Amount:        req.Amount,
		Currency:      req.Currency,
		SaleDate:      saleDate,
		PaymentStatus: domainSale.PaymentStatus(req.PaymentStatus),
		Notes:         req.Notes,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, h.toSaleResponse(*result), "Sale recorded successfully")
}

// MarkPaid handles POST /sales/:sid/pay
func (h *SaleHandler) MarkPaid(c *gin.Context) {
	result, err := h.markPaidUC.Execute(c.Request.Context(), c.Param("sid"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Sale marked as paid", h.toSaleResponse(*result))
}

type ListSalesRequest struct {
	Page     int `form:"page"`
	PageSize int `form:"page_size"`
}

// ListSales handles GET /sales
func (h *SaleHandler) ListSales(c *gin.Context) {
	var req ListSalesRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid query parameters", err.Error()))
		return
	}

	filter := domainSale.ListFilter{
		BaseFilter: query.BaseFilter{
			PageFilter: query.PageFilter{Page: req.Page, PageSize: req.PageSize},
		},
	}

	results, total, err := h.listUC.Execute(c.Request.Context(), filter)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	responses := make([]SaleResponse, 0, len(results))
	for _, r := range results {
		responses = append(responses, h.toSaleResponse(r))
	}

	filter.Normalize()
	utils.ListSuccessResponse(c, responses, total, filter.Page, filter.PageSize)
}

// SalesSummary handles GET /sales/summary?from=...&to=...
func (h *SaleHandler) SalesSummary(c *gin.Context) {
	from, err := time.Parse(time.DateOnly, c.Query("from"))
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid from date, expected YYYY-MM-DD"))
		return
	}
	to, err := time.Parse(time.DateOnly, c.Query("to"))
	if err != nil {
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid to date, expected YYYY-MM-DD"))
		return
	}

	result, err := h.summaryUC.Execute(c.Request.Context(), from, to)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}
