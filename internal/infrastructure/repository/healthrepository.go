package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/marai-app/marai/internal/domain/health"
	"github.com/marai-app/marai/internal/infrastructure/persistence/mappers"
	"github.com/marai-app/marai/internal/infrastructure/persistence/models"
	"github.com/marai-app/marai/internal/shared/db"
	"github.com/marai-app/marai/internal/shared/id"
	"github.com/marai-app/marai/internal/shared/logger"
)

// HealthEventRepository implements the health event repository backed
// by GORM.
type HealthEventRepository struct {
	db     *gorm.DB
	mapper mappers.HealthEventMapper
	logger logger.Interface
}

// NewHealthEventRepository creates a new health event repository
func NewHealthEventRepository(db *gorm.DB, logger logger.Interface) health.Repository {
	return &HealthEventRepository{
		db:     db,
		mapper: mappers.NewHealthEventMapper(),
		logger: logger,
	}
}

// Create creates a new health event within the current scope
func (r *HealthEventRepository) Create(ctx context.Context, entity *health.Event) error {
	if entity.SID() == "" {
		entity.SetSID(id.MustGenerateWithPrefix("hlt", id.DefaultLength))
	}

	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map health event entity to model", "error", err)
		return fmt.Errorf("failed to map health event entity: %w", err)
	}

	db.InjectScope(ctx, model)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create health event in database", "error", err)
		return fmt.Errorf("failed to create health event: %w", err)
	}

	return entity.SetID(model.ID)
}

// GetBySID retrieves a health event by external SID
func (r *HealthEventRepository) GetBySID(ctx context.Context, sid string) (*health.Event, error) {
	var model models.HealthEventModel

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &model)
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get health event by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get health event: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Delete removes a health event by internal ID
func (r *HealthEventRepository) Delete(ctx context.Context, eventID uint) error {
	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &models.HealthEventModel{})
	result := tx.Delete(&models.HealthEventModel{}, eventID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete health event", "id", eventID, "error", result.Error)
		return fmt.Errorf("failed to delete health event: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List retrieves a paginated, filtered list of health events
func (r *HealthEventRepository) List(ctx context.Context, filter health.ListFilter) ([]*health.Event, int64, error) {
	filter.Normalize()

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &models.HealthEventModel{}).Model(&models.HealthEventModel{})

	if filter.GoatID != nil {
		tx = tx.Where("goat_id = ?", *filter.GoatID)
	}
	if filter.EventType != nil {
		tx = tx.Where("event_type = ?", filter.EventType.String())
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count health events", "error", err)
		return nil, 0, fmt.Errorf("failed to count health events: %w", err)
	}

	var eventModels []*models.HealthEventModel
	if err := tx.Order("event_date DESC").Offset(filter.Offset()).Limit(filter.PageSize).Find(&eventModels).Error; err != nil {
		r.logger.Errorw("failed to list health events", "error", err)
		return nil, 0, fmt.Errorf("failed to list health events: %w", err)
	}

	entities, err := r.mapper.ToEntities(eventModels)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map health events: %w", err)
	}
	return entities, total, nil
}
