package repository

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/marai-app/marai/internal/domain/sale"
	"github.com/marai-app/marai/internal/infrastructure/persistence/mappers"
	"github.com/marai-app/marai/internal/infrastructure/persistence/models"
	"github.com/marai-app/marai/internal/shared/db"
	"github.com/marai-app/marai/internal/shared/id"
	"github.com/marai-app/marai/internal/shared/logger"
)

// SaleRepository implements the sale repository interface backed by
// GORM.
type SaleRepository struct {
	db     *gorm.DB
	mapper mappers.SaleMapper
	logger logger.Interface
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB, logger logger.Interface) sale.Repository {
	return &SaleRepository{
		db:     db,
		mapper: mappers.NewSaleMapper(),
		logger: logger,
	}
}

// Create creates a new sale record within the current scope
func (r *SaleRepository) Create(ctx context.Context, entity *sale.Sale) error {
	if entity.SID() == "" {
		entity.SetSID(id.MustGenerateWithPrefix(id.PrefixSale, id.DefaultLength))
	}

	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map sale entity to model", "error", err)
		return fmt.Errorf("failed to map sale entity: %w", err)
	}

	db.InjectScope(ctx, model)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create sale in database", "error", err)
		return fmt.Errorf("failed to create sale: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set sale ID: %w", err)
	}

	r.logger.Infow("sale created", "id", model.ID, "sid", model.SID, "goat_id", model.GoatID)
	return nil
}

// GetBySID retrieves a sale record by external SID
func (r *SaleRepository) GetBySID(ctx context.Context, sid string) (*sale.Sale, error) {
	var model models.SaleModel

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &model)
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get sale by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get sale: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Update persists changes to an existing sale record
func (r *SaleRepository) Update(ctx context.Context, entity *sale.Sale) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map sale entity to model", "error", err)
		return fmt.Errorf("failed to map sale entity: %w", err)
	}

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), model)
	result := tx.Model(&models.SaleModel{}).Where("id = ?", entity.ID()).Updates(map[string]interface{}{
		"buyer_name":     model.BuyerName,
		"amount":         model.Amount,
		"currency":       model.Currency,
		"sale_date":      model.SaleDate,
		"payment_status": model.PaymentStatus,
		"notes":          model.Notes,
		"updated_at":     model.UpdatedAt,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update sale", "id", entity.ID(), "error", result.Error)
		return fmt.Errorf("failed to update sale: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Delete removes a sale record by internal ID
func (r *SaleRepository) Delete(ctx context.Context, saleID uint) error {
	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &models.SaleModel{})
	result := tx.Delete(&models.SaleModel{}, saleID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete sale", "id", saleID, "error", result.Error)
		return fmt.Errorf("failed to delete sale: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List retrieves a paginated, filtered list of sale records
func (r *SaleRepository) List(ctx context.Context, filter sale.ListFilter) ([]*sale.Sale, int64, error) {
	filter.Normalize()

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &models.SaleModel{}).Model(&models.SaleModel{})

	if filter.GoatID != nil {
		tx = tx.Where("goat_id = ?", *filter.GoatID)
	}
	if filter.From != nil {
		tx = tx.Where("sale_date >= ?", *filter.From)
	}
	if filter.To != nil {
		tx = tx.Where("sale_date <= ?", *filter.To)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count sales", "error", err)
		return nil, 0, fmt.Errorf("failed to count sales: %w", err)
	}

	var saleModels []*models.SaleModel
	if err := tx.Order("sale_date DESC").Offset(filter.Offset()).Limit(filter.PageSize).Find(&saleModels).Error; err != nil {
		r.logger.Errorw("failed to list sales", "error", err)
		return nil, 0, fmt.Errorf("failed to list sales: %w", err)
	}

	entities, err := r.mapper.ToEntities(saleModels)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map sales: %w", err)
	}
	return entities, total, nil
}

// SumAmount totals sale amounts in scope within a date range
func (r *SaleRepository) SumAmount(ctx context.Context, from, to time.Time) (float64, error) {
	var total *float64

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &models.SaleModel{})
	err := tx.Model(&models.SaleModel{}).
		Where("sale_date >= ? AND sale_date <= ?", from, to).
		Select("SUM(amount)").Scan(&total).Error
	if err != nil {
		r.logger.Errorw("failed to sum sales", "error", err)
		return 0, fmt.Errorf("failed to sum sales: %w", err)
	}
	if total == nil {
		return 0, nil
	}
	return *total, nil
}
