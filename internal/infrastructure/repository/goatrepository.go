package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/marai-app/marai/internal/domain/goat"
	"github.com/marai-app/marai/internal/infrastructure/persistence/mappers"
	"github.com/marai-app/marai/internal/infrastructure/persistence/models"
	"github.com/marai-app/marai/internal/shared/db"
	"github.com/marai-app/marai/internal/shared/id"
	"github.com/marai-app/marai/internal/shared/logger"
)

// allowedGoatOrderByFields defines the whitelist of allowed ORDER BY
// fields to prevent SQL injection attacks.
var allowedGoatOrderByFields = map[string]bool{
	"id":         true,
	"sid":        true,
	"tag_id":     true,
	"gender":     true,
	"status":     true,
	"birth_date": true,
	"created_at": true,
	"updated_at": true,
}

// GoatRepository implements the goat repository interface backed by
// GORM. Every query routes through the tenant-scoping helpers.
type GoatRepository struct {
	db     *gorm.DB
	mapper mappers.GoatMapper
	logger logger.Interface
}

// NewGoatRepository creates a new goat repository
func NewGoatRepository(db *gorm.DB, logger logger.Interface) goat.Repository {
	return &GoatRepository{
		db:     db,
		mapper: mappers.NewGoatMapper(),
		logger: logger,
	}
}

// Create creates a new goat within the current scope
func (r *GoatRepository) Create(ctx context.Context, entity *goat.Goat) error {
	if entity.SID() == "" {
		entity.SetSID(id.MustGenerateWithPrefix(id.PrefixGoat, id.DefaultLength))
	}

	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map goat entity to model", "error", err)
		return fmt.Errorf("failed to map goat entity: %w", err)
	}

	db.InjectScope(ctx, model)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create goat in database", "error", err)
		return fmt.Errorf("failed to create goat: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set goat ID: %w", err)
	}

	r.logger.Infow("goat created", "id", model.ID, "sid", model.SID, "tag_id", model.TagID)
	return nil
}

// GetByID retrieves a goat by internal ID
func (r *GoatRepository) GetByID(ctx context.Context, goatID uint) (*goat.Goat, error) {
	var model models.GoatModel

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &model)
	if err := tx.First(&model, goatID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get goat by ID", "id", goatID, "error", err)
		return nil, fmt.Errorf("failed to get goat: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetBySID retrieves a goat by external SID
func (r *GoatRepository) GetBySID(ctx context.Context, sid string) (*goat.Goat, error) {
	var model models.GoatModel

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &model)
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get goat by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get goat: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetByTagID retrieves a goat by its tag identifier
func (r *GoatRepository) GetByTagID(ctx context.Context, tagID string) (*goat.Goat, error) {
	var model models.GoatModel

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &model)
	if err := tx.Where("tag_id = ?", tagID).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get goat by tag", "tag_id", tagID, "error", err)
		return nil, fmt.Errorf("failed to get goat: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Update updates an existing goat
func (r *GoatRepository) Update(ctx context.Context, entity *goat.Goat) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map goat entity to model", "error", err)
		return fmt.Errorf("failed to map goat entity: %w", err)
	}

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), model)
	result := tx.Model(&models.GoatModel{}).Where("id = ?", entity.ID()).Updates(map[string]interface{}{
		"tag_id":          model.TagID,
		"gender":          model.Gender,
		"status":          model.Status,
		"birth_date":      model.BirthDate,
		"weight_kg":       model.WeightKg,
		"breed_id":        model.BreedID,
		"mother_id":       model.MotherID,
		"father_id":       model.FatherID,
		"breeding_id":     model.BreedingID,
		"birth_record_id": model.BirthRecordID,
		"notes":           model.Notes,
		"updated_at":      model.UpdatedAt,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update goat", "id", entity.ID(), "error", result.Error)
		return fmt.Errorf("failed to update goat: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Delete removes a goat by internal ID (soft delete)
func (r *GoatRepository) Delete(ctx context.Context, goatID uint) error {
	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &models.GoatModel{})
	result := tx.Delete(&models.GoatModel{}, goatID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete goat", "id", goatID, "error", result.Error)
		return fmt.Errorf("failed to delete goat: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.logger.Infow("goat deleted", "id", goatID)
	return nil
}

// List retrieves a paginated, filtered list of goats
func (r *GoatRepository) List(ctx context.Context, filter goat.ListFilter) ([]*goat.Goat, int64, error) {
	filter.Normalize()

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &models.GoatModel{}).Model(&models.GoatModel{})

	if filter.Gender != nil {
		tx = tx.Where("gender = ?", filter.Gender.String())
	}
	if filter.Status != nil {
		tx = tx.Where("status = ?", filter.Status.String())
	}
	if filter.BreedID != nil {
		tx = tx.Where("breed_id = ?", *filter.BreedID)
	}
	if filter.MotherID != nil {
		tx = tx.Where("mother_id = ?", *filter.MotherID)
	}
	if filter.TagID != "" {
		tx = tx.Where("tag_id = ?", filter.TagID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count goats", "error", err)
		return nil, 0, fmt.Errorf("failed to count goats: %w", err)
	}

	orderBy := "created_at"
	if filter.SortBy != "" && allowedGoatOrderByFields[filter.SortBy] {
		orderBy = filter.SortBy
	}
	order := orderBy + " " + sortDirection(filter.SortOrder)

	var goatModels []*models.GoatModel
	if err := tx.Order(order).Offset(filter.Offset()).Limit(filter.PageSize).Find(&goatModels).Error; err != nil {
		r.logger.Errorw("failed to list goats", "error", err)
		return nil, 0, fmt.Errorf("failed to list goats: %w", err)
	}

	entities, err := r.mapper.ToEntities(goatModels)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map goats: %w", err)
	}
	return entities, total, nil
}

// ListOffspring retrieves all goats mothered or fathered by the given
// animal
func (r *GoatRepository) ListOffspring(ctx context.Context, parentID uint) ([]*goat.Goat, error) {
	var goatModels []*models.GoatModel

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &models.GoatModel{})
	if err := tx.Where("mother_id = ? OR father_id = ?", parentID, parentID).
		Order("birth_date DESC").Find(&goatModels).Error; err != nil {
		r.logger.Errorw("failed to list offspring", "parent_id", parentID, "error", err)
		return nil, fmt.Errorf("failed to list offspring: %w", err)
	}

	return r.mapper.ToEntities(goatModels)
}

// ListSiblings retrieves the litter siblings of the given goat. An
// animal without a breeding or mother reference has no derivable
// siblings.
func (r *GoatRepository) ListSiblings(ctx context.Context, entity *goat.Goat) ([]*goat.Goat, error) {
	if entity.BreedingID() == nil || entity.MotherID() == nil {
		return []*goat.Goat{}, nil
	}

	var goatModels []*models.GoatModel
	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &models.GoatModel{})
	if err := tx.Where("breeding_id = ? AND mother_id = ? AND id != ?",
		*entity.BreedingID(), *entity.MotherID(), entity.ID()).
		Find(&goatModels).Error; err != nil {
		r.logger.Errorw("failed to list siblings", "id", entity.ID(), "error", err)
		return nil, fmt.Errorf("failed to list siblings: %w", err)
	}

	return r.mapper.ToEntities(goatModels)
}

// CountActive returns the number of ACTIVE goats in scope
func (r *GoatRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &models.GoatModel{})
	if err := tx.Model(&models.GoatModel{}).Where("status = ?", goat.StatusActive.String()).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count goats", "error", err)
		return 0, fmt.Errorf("failed to count goats: %w", err)
	}
	return count, nil
}
