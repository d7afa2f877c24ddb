// Package usecases holds the sale flows.
package usecases

import (
	"context"
	"fmt"
	"time"

	domainGoat "github.com/marai-app/marai/internal/domain/goat"
	domainSale "github.com/marai-app/marai/internal/domain/sale"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
)

// RecordSaleCommand contains the data for selling one animal.
type RecordSaleCommand struct {
	GoatSID       string
	BuyerName     string
	Amount        float64
	Currency      string
	SaleDate      time.Time
	PaymentStatus domainSale.PaymentStatus
	Notes         string
}

// SaleResult is the API view of a sale.
type SaleResult struct {
	SID           string    `json:"sid"`
	GoatSID       string    `json:"goat_sid"`
	BuyerName     string    `json:"buyer_name"`
	Amount        float64   `json:"amount"`
	Currency      string    `json:"currency"`
	SaleDate      time.Time `json:"sale_date"`
	PaymentStatus string    `json:"payment_status"`
	Notes         string    `json:"notes"`
}

// RecordSaleUseCase records a sale and marks the animal as sold. The
// animal leaves the active herd but its records stay queryable.
type RecordSaleUseCase struct {
	saleRepo domainSale.Repository
	goatRepo domainGoat.Repository
	logger   logger.Interface
}

// NewRecordSaleUseCase creates a new record sale use case
func NewRecordSaleUseCase(
	saleRepo domainSale.Repository,
	goatRepo domainGoat.Repository,
	logger logger.Interface,
) *RecordSaleUseCase {
	return &RecordSaleUseCase{
		saleRepo: saleRepo,
		goatRepo: goatRepo,
		logger:   logger,
	}
}

// Execute executes the record sale use case
func (uc *RecordSaleUseCase) Execute(ctx context.Context, cmd RecordSaleCommand) (*SaleResult, error) {
	if cmd.GoatSID == "" {
		return nil, errors.NewValidationError("goat reference is required")
	}

	goatEntity, err := uc.goatRepo.GetBySID(ctx, cmd.GoatSID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goat: %w", err)
	}
	if goatEntity == nil {
		return nil, errors.NewNotFoundError("goat not found", cmd.GoatSID)
	}
	if goatEntity.Status() == domainGoat.StatusSold {
		return nil, errors.NewConflictError("goat is already sold")
	}
	if goatEntity.Status() != domainGoat.StatusActive {
		return nil, errors.NewPreconditionFailedError("only active goats can be sold")
	}

	entity, err := domainSale.NewSale(goatEntity.ID(), cmd.BuyerName, cmd.Amount, cmd.Currency, cmd.SaleDate, cmd.PaymentStatus, cmd.Notes)
	if err != nil {
		return nil, errors.NewValidationError("invalid sale", err.Error())
	}

	if err := uc.saleRepo.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to save sale: %w", err)
	}

	if err := goatEntity.ChangeStatus(domainGoat.StatusSold); err != nil {
		return nil, errors.NewValidationError("cannot mark goat as sold", err.Error())
	}
	if err := uc.goatRepo.Update(ctx, goatEntity); err != nil {
		return nil, fmt.Errorf("failed to update goat status: %w", err)
	}

	uc.logger.Infow("sale recorded", "sid", entity.SID(), "goat_sid", cmd.GoatSID, "amount", cmd.Amount)
	return toSaleResult(entity, cmd.GoatSID), nil
}

func toSaleResult(s *domainSale.Sale, goatSID string) *SaleResult {
	return &SaleResult{
		SID:           s.SID(),
		GoatSID:       goatSID,
		BuyerName:     s.BuyerName(),
		Amount:        s.Amount(),
		Currency:      s.Currency(),
		SaleDate:      s.SaleDate(),
		PaymentStatus: s.PaymentStatus().String(),
		Notes:         s.Notes(),
	}
}

// MarkSalePaidUseCase settles an outstanding sale.
type MarkSalePaidUseCase struct {
	saleRepo domainSale.Repository
	logger   logger.Interface
}

// NewMarkSalePaidUseCase creates a new mark sale paid use case
func NewMarkSalePaidUseCase(saleRepo domainSale.Repository, logger logger.Interface) *MarkSalePaidUseCase {
	return &MarkSalePaidUseCase{saleRepo: saleRepo, logger: logger}
}

// Execute executes the mark sale paid use case
func (uc *MarkSalePaidUseCase) Execute(ctx context.Context, sid string) (*SaleResult, error) {
	entity, err := uc.saleRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to load sale: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("sale not found", sid)
	}
	if entity.PaymentStatus() == domainSale.PaymentPaid {
		return nil, errors.NewConflictError("sale is already paid")
	}

	entity.MarkPaid()
	if err := uc.saleRepo.Update(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to update sale: %w", err)
	}

	uc.logger.Infow("sale marked paid", "sid", sid)
	return toSaleResult(entity, ""), nil
}

// ListSalesUseCase retrieves a filtered page of sales.
type ListSalesUseCase struct {
	saleRepo domainSale.Repository
	logger   logger.Interface
}

// NewListSalesUseCase creates a new list sales use case
func NewListSalesUseCase(saleRepo domainSale.Repository, logger logger.Interface) *ListSalesUseCase {
	return &ListSalesUseCase{saleRepo: saleRepo, logger: logger}
}

// Execute executes the list sales use case
func (uc *ListSalesUseCase) Execute(ctx context.Context, filter domainSale.ListFilter) ([]SaleResult, int64, error) {
	sales, total, err := uc.saleRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list sales: %w", err)
	}

	results := make([]SaleResult, 0, len(sales))
	for _, s := range sales {
		results = append(results, *toSaleResult(s, ""))
	}
	return results, total, nil
}

// SalesSummaryResult aggregates revenue over a period.
type SalesSummaryResult struct {
	From  time.Time `json:"from"`
	To    time.Time `json:"to"`
	Total float64   `json:"total"`
}

// SalesSummaryUseCase sums sale revenue for the current farm over a
// date range.
type SalesSummaryUseCase struct {
	saleRepo domainSale.Repository
	logger   logger.Interface
}

// NewSalesSummaryUseCase creates a new sales summary use case
func NewSalesSummaryUseCase(saleRepo domainSale.Repository, logger logger.Interface) *SalesSummaryUseCase {
	return &SalesSummaryUseCase{saleRepo: saleRepo, logger: logger}
}

// Execute executes the sales summary use case
func (uc *SalesSummaryUseCase) Execute(ctx context.Context, from, to time.Time) (*SalesSummaryResult, error) {
	if to.Before(from) {
		return nil, errors.NewValidationError("end date must not be before start date")
	}

	total, err := uc.saleRepo.SumAmount(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to sum sales: %w", err)
	}
	return &SalesSummaryResult{From: from, To: to, Total: total}, nil
}
