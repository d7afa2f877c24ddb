package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/marai-app/marai/internal/domain/tenant"
	"github.com/marai-app/marai/internal/infrastructure/persistence/mappers"
	"github.com/marai-app/marai/internal/infrastructure/persistence/models"
	"github.com/marai-app/marai/internal/shared/db"
	"github.com/marai-app/marai/internal/shared/id"
	"github.com/marai-app/marai/internal/shared/logger"
	"github.com/marai-app/marai/internal/shared/scope"
)

// FarmRepository implements the farm repository interface backed by
// GORM. Farm rows are what the farm scope points at, so they filter on
// the tenant half of the bound scope rather than the scope embed.
type FarmRepository struct {
	db     *gorm.DB
	mapper mappers.TenantMapper
	logger logger.Interface
}

// NewFarmRepository creates a new farm repository
func NewFarmRepository(db *gorm.DB, logger logger.Interface) tenant.FarmRepository {
	return &FarmRepository{
		db:     db,
		mapper: mappers.NewTenantMapper(),
		logger: logger,
	}
}

// tenantScoped narrows a farm query to the tenant bound to ctx.
func (r *FarmRepository) tenantScoped(ctx context.Context) *gorm.DB {
	tx := db.GetTxFromContext(ctx, r.db)
	if sc, ok := scope.FromContext(ctx); ok {
		tx = tx.Where("tenant_id = ?", sc.TenantID)
	}
	return tx
}

// Create creates a new farm. The tenant column comes from the bound
// scope when present, so a forged payload cannot create a farm under
// another tenant.
func (r *FarmRepository) Create(ctx context.Context, entity *tenant.Farm) error {
	if entity.SID() == "" {
		entity.SetSID(id.MustGenerateWithPrefix(id.PrefixFarm, id.DefaultLength))
	}

	model, err := r.mapper.FarmToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map farm entity to model", "error", err)
		return fmt.Errorf("failed to map farm entity: %w", err)
	}

	if sc, ok := scope.FromContext(ctx); ok {
		model.TenantID = sc.TenantID
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create farm in database", "error", err)
		return fmt.Errorf("failed to create farm: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set farm ID: %w", err)
	}

	r.logger.Infow("farm created", "id", model.ID, "sid", model.SID, "name", model.Name)
	return nil
}

// GetByID retrieves a farm by internal ID
func (r *FarmRepository) GetByID(ctx context.Context, farmID uint) (*tenant.Farm, error) {
	var model models.FarmModel

	if err := r.tenantScoped(ctx).First(&model, farmID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get farm by ID", "id", farmID, "error", err)
		return nil, fmt.Errorf("failed to get farm: %w", err)
	}

	return r.mapper.FarmToEntity(&model)
}

// GetBySID retrieves a farm by external SID
func (r *FarmRepository) GetBySID(ctx context.Context, sid string) (*tenant.Farm, error) {
	var model models.FarmModel

	if err := r.tenantScoped(ctx).Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get farm by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get farm: %w", err)
	}

	return r.mapper.FarmToEntity(&model)
}

// Update updates an existing farm
func (r *FarmRepository) Update(ctx context.Context, entity *tenant.Farm) error {
	model, err := r.mapper.FarmToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map farm entity to model", "error", err)
		return fmt.Errorf("failed to map farm entity: %w", err)
	}

	result := r.tenantScoped(ctx).Model(&models.FarmModel{}).Where("id = ?", entity.ID()).Updates(map[string]interface{}{
		"name":       model.Name,
		"location":   model.Location,
		"updated_at": model.UpdatedAt,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update farm", "id", entity.ID(), "error", result.Error)
		return fmt.Errorf("failed to update farm: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Delete removes a farm by internal ID (soft delete)
func (r *FarmRepository) Delete(ctx context.Context, farmID uint) error {
	result := r.tenantScoped(ctx).Delete(&models.FarmModel{}, farmID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete farm", "id", farmID, "error", result.Error)
		return fmt.Errorf("failed to delete farm: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// List retrieves the tenant's farms
func (r *FarmRepository) List(ctx context.Context) ([]*tenant.Farm, error) {
	var farmModels []*models.FarmModel

	if err := r.tenantScoped(ctx).Order("id ASC").Find(&farmModels).Error; err != nil {
		r.logger.Errorw("failed to list farms", "error", err)
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}

	return r.mapper.FarmsToEntities(farmModels)
}

// Count returns the number of farms in scope
func (r *FarmRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.tenantScoped(ctx).Model(&models.FarmModel{}).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count farms", "error", err)
		return 0, fmt.Errorf("failed to count farms: %w", err)
	}
	return count, nil
}
