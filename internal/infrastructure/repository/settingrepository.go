package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/marai-app/marai/internal/domain/tenant"
	"github.com/marai-app/marai/internal/infrastructure/persistence/mappers"
	"github.com/marai-app/marai/internal/infrastructure/persistence/models"
	"github.com/marai-app/marai/internal/shared/db"
	"github.com/marai-app/marai/internal/shared/logger"
)

// SettingRepository implements the setting repository interface backed
// by GORM.
type SettingRepository struct {
	db     *gorm.DB
	mapper mappers.TenantMapper
	logger logger.Interface
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *gorm.DB, logger logger.Interface) tenant.SettingRepository {
	return &SettingRepository{
		db:     db,
		mapper: mappers.NewTenantMapper(),
		logger: logger,
	}
}

// Get retrieves a setting by key, nil when absent
func (r *SettingRepository) Get(ctx context.Context, key string) (*tenant.Setting, error) {
	var model models.SettingModel

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &model)
	if err := tx.Where("setting_key = ?", key).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get setting", "key", key, "error", err)
		return nil, fmt.Errorf("failed to get setting: %w", err)
	}

	return r.mapper.SettingToEntity(&model)
}

// Upsert creates or replaces a setting by key
func (r *SettingRepository) Upsert(ctx context.Context, entity *tenant.Setting) error {
	model, err := r.mapper.SettingToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map setting entity to model", "error", err)
		return fmt.Errorf("failed to map setting entity: %w", err)
	}

	var existing models.SettingModel
	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &existing)
	err = tx.Where("setting_key = ?", model.Key).First(&existing).Error
	switch {
	case err == gorm.ErrRecordNotFound:
		db.InjectScope(ctx, model)
		if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
			r.logger.Errorw("failed to create setting", "key", model.Key, "error", err)
			return fmt.Errorf("failed to create setting: %w", err)
		}
		return entity.SetID(model.ID)
	case err != nil:
		return fmt.Errorf("failed to look up setting: %w", err)
	default:
		update := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), model)
		if err := update.Model(&models.SettingModel{}).Where("id = ?", existing.ID).Updates(map[string]interface{}{
			"setting_value": model.Value,
			"updated_at":    model.UpdatedAt,
		}).Error; err != nil {
			r.logger.Errorw("failed to update setting", "key", model.Key, "error", err)
			return fmt.Errorf("failed to update setting: %w", err)
		}
		return nil
	}
}

// List retrieves all settings in scope
func (r *SettingRepository) List(ctx context.Context) ([]*tenant.Setting, error) {
	var settingModels []*models.SettingModel

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &models.SettingModel{})
	if err := tx.Order("setting_key ASC").Find(&settingModels).Error; err != nil {
		r.logger.Errorw("failed to list settings", "error", err)
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	entities := make([]*tenant.Setting, 0, len(settingModels))
	for _, model := range settingModels {
		entity, err := r.mapper.SettingToEntity(model)
		if err != nil {
			return nil, fmt.Errorf("failed to map setting: %w", err)
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// Delete removes a setting by key
func (r *SettingRepository) Delete(ctx context.Context, key string) error {
	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &models.SettingModel{})
	result := tx.Where("setting_key = ?", key).Delete(&models.SettingModel{})
	if result.Error != nil {
		r.logger.Errorw("failed to delete setting", "key", key, "error", result.Error)
		return fmt.Errorf("failed to delete setting: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
