package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/marai-app/marai/internal/domain/feed"
	"github.com/marai-app/marai/internal/infrastructure/persistence/mappers"
	"github.com/marai-app/marai/internal/infrastructure/persistence/models"
	"github.com/marai-app/marai/internal/shared/db"
	"github.com/marai-app/marai/internal/shared/id"
	"github.com/marai-app/marai/internal/shared/logger"
)

// FeedScheduleRepository implements the feeding schedule repository
// backed by GORM.
type FeedScheduleRepository struct {
	db     *gorm.DB
	mapper mappers.FeedScheduleMapper
	logger logger.Interface
}

// NewFeedScheduleRepository creates a new feed schedule repository
func NewFeedScheduleRepository(db *gorm.DB, logger logger.Interface) feed.Repository {
	return &FeedScheduleRepository{
		db:     db,
		mapper: mappers.NewFeedScheduleMapper(),
		logger: logger,
	}
}

// Create creates a new schedule within the current scope
func (r *FeedScheduleRepository) Create(ctx context.Context, entity *feed.Schedule) error {
	if entity.SID() == "" {
		entity.SetSID(id.MustGenerateWithPrefix("fd", id.DefaultLength))
	}

	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map feed schedule entity to model", "error", err)
		return fmt.Errorf("failed to map feed schedule entity: %w", err)
	}

	db.InjectScope(ctx, model)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create feed schedule in database", "error", err)
		return fmt.Errorf("failed to create feed schedule: %w", err)
	}

	return entity.SetID(model.ID)
}

// GetBySID retrieves a schedule by external SID
func (r *FeedScheduleRepository) GetBySID(ctx context.Context, sid string) (*feed.Schedule, error) {
	var model models.FeedScheduleModel

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &model)
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get feed schedule by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get feed schedule: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Update updates an existing schedule
func (r *FeedScheduleRepository) Update(ctx context.Context, entity *feed.Schedule) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map feed schedule entity to model", "error", err)
		return fmt.Errorf("failed to map feed schedule entity: %w", err)
	}

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), model)
	result := tx.Model(&models.FeedScheduleModel{}).Where("id = ?", entity.ID()).Updates(map[string]interface{}{
		"name":          model.Name,
		"feed_type":     model.FeedType,
		"times_per_day": model.TimesPerDay,
		"amount_kg":     model.AmountKg,
		"notes":         model.Notes,
		"updated_at":    model.UpdatedAt,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update feed schedule", "id", entity.ID(), "error", result.Error)
		return fmt.Errorf("failed to update feed schedule: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Delete removes a schedule by internal ID
func (r *FeedScheduleRepository) Delete(ctx context.Context, scheduleID uint) error {
	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &models.FeedScheduleModel{})
	result := tx.Delete(&models.FeedScheduleModel{}, scheduleID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete feed schedule", "id", scheduleID, "error", result.Error)
		return fmt.Errorf("failed to delete feed schedule: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List retrieves all schedules in scope
func (r *FeedScheduleRepository) List(ctx context.Context) ([]*feed.Schedule, error) {
	var scheduleModels []*models.FeedScheduleModel

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &models.FeedScheduleModel{})
	if err := tx.Order("name ASC").Find(&scheduleModels).Error; err != nil {
		r.logger.Errorw("failed to list feed schedules", "error", err)
		return nil, fmt.Errorf("failed to list feed schedules: %w", err)
	}

	return r.mapper.ToEntities(scheduleModels)
}
