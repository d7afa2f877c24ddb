package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/marai-app/marai/internal/domain/goat"
	"github.com/marai-app/marai/internal/infrastructure/persistence/mappers"
	"github.com/marai-app/marai/internal/infrastructure/persistence/models"
	"github.com/marai-app/marai/internal/shared/db"
	"github.com/marai-app/marai/internal/shared/logger"
)

// BreedRepository implements the breed lookup repository backed by
// GORM. Breeds scope per tenant, shared across farms.
type BreedRepository struct {
	db     *gorm.DB
	mapper mappers.BreedMapper
	logger logger.Interface
}

// NewBreedRepository creates a new breed repository
func NewBreedRepository(db *gorm.DB, logger logger.Interface) goat.BreedRepository {
	return &BreedRepository{
		db:     db,
		mapper: mappers.NewBreedMapper(),
		logger: logger,
	}
}

// Create creates a new breed within the current tenant
func (r *BreedRepository) Create(ctx context.Context, entity *goat.Breed) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map breed entity to model", "error", err)
		return fmt.Errorf("failed to map breed entity: %w", err)
	}

	db.InjectScope(ctx, model)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create breed in database", "error", err)
		return fmt.Errorf("failed to create breed: %w", err)
	}

	return entity.SetID(model.ID)
}

// GetByID retrieves a breed by internal ID
func (r *BreedRepository) GetByID(ctx context.Context, breedID uint) (*goat.Breed, error) {
	var model models.BreedModel

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &model)
	if err := tx.First(&model, breedID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get breed by ID", "id", breedID, "error", err)
		return nil, fmt.Errorf("failed to get breed: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByName retrieves a breed by exact name
func (r *BreedRepository) GetByName(ctx context.Context, name string) (*goat.Breed, error) {
	var model models.BreedModel

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &model)
	if err := tx.Where("name = ?", name).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get breed by name", "name", name, "error", err)
		return nil, fmt.Errorf("failed to get breed: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// List retrieves all breeds in scope
func (r *BreedRepository) List(ctx context.Context) ([]*goat.Breed, error) {
	var breedModels []*models.BreedModel

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &models.BreedModel{})
	if err := tx.Order("name ASC").Find(&breedModels).Error; err != nil {
		r.logger.Errorw("failed to list breeds", "error", err)
		return nil, fmt.Errorf("failed to list breeds: %w", err)
	}

	return r.mapper.ToEntities(breedModels)
}

// Delete removes a breed by internal ID
func (r *BreedRepository) Delete(ctx context.Context, breedID uint) error {
	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &models.BreedModel{})
	result := tx.Delete(&models.BreedModel{}, breedID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete breed", "id", breedID, "error", result.Error)
		return fmt.Errorf("failed to delete breed: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
