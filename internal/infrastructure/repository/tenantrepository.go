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
)

// TenantRepository implements the tenant repository interface backed by
// GORM. Tenants sit above the scoping boundary, so queries here are
// unscoped by design.
type TenantRepository struct {
	db     *gorm.DB
	mapper mappers.TenantMapper
	logger logger.Interface
}

// NewTenantRepository creates a new tenant repository
func NewTenantRepository(db *gorm.DB, logger logger.Interface) tenant.Repository {
	return &TenantRepository{
		db:     db,
		mapper: mappers.NewTenantMapper(),
		logger: logger,
	}
}

// Create creates a new tenant
func (r *TenantRepository) Create(ctx context.Context, entity *tenant.Tenant) error {
	if entity.SID() == "" {
		entity.SetSID(id.MustGenerateWithPrefix(id.PrefixTenant, id.DefaultLength))
	}

	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map tenant entity to model", "error", err)
		return fmt.Errorf("failed to map tenant entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create tenant in database", "error", err)
		return fmt.Errorf("failed to create tenant: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set tenant ID: %w", err)
	}

	r.logger.Infow("tenant created", "id", model.ID, "sid", model.SID, "name", model.Name)
	return nil
}

// GetByID retrieves a tenant by internal ID
func (r *TenantRepository) GetByID(ctx context.Context, tenantID uint) (*tenant.Tenant, error) {
	var model models.TenantModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.First(&model, tenantID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get tenant by ID", "id", tenantID, "error", err)
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetBySID retrieves a tenant by external SID
func (r *TenantRepository) GetBySID(ctx context.Context, sid string) (*tenant.Tenant, error) {
	var model models.TenantModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get tenant by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get tenant: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Update updates an existing tenant
func (r *TenantRepository) Update(ctx context.Context, entity *tenant.Tenant) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map tenant entity to model", "error", err)
		return fmt.Errorf("failed to map tenant entity: %w", err)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.TenantModel{}).Where("id = ?", entity.ID()).Updates(map[string]interface{}{
		"name":       model.Name,
		"plan":       model.Plan,
		"limits":     model.Limits,
		"active":     model.Active,
		"updated_at": model.UpdatedAt,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update tenant", "id", entity.ID(), "error", result.Error)
		return fmt.Errorf("failed to update tenant: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// List retrieves all tenants (platform administration only)
func (r *TenantRepository) List(ctx context.Context) ([]*tenant.Tenant, error) {
	var tenantModels []*models.TenantModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Order("id ASC").Find(&tenantModels).Error; err != nil {
		r.logger.Errorw("failed to list tenants", "error", err)
		return nil, fmt.Errorf("failed to list tenants: %w", err)
	}

	return r.mapper.ToEntities(tenantModels)
}
