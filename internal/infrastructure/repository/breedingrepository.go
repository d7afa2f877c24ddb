package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/marai-app/marai/internal/domain/breeding"
	"github.com/marai-app/marai/internal/infrastructure/persistence/mappers"
	"github.com/marai-app/marai/internal/infrastructure/persistence/models"
	"github.com/marai-app/marai/internal/shared/db"
	"github.com/marai-app/marai/internal/shared/id"
	"github.com/marai-app/marai/internal/shared/logger"
)

// allowedBreedingOrderByFields defines the whitelist of allowed ORDER
// BY fields to prevent SQL injection attacks.
var allowedBreedingOrderByFields = map[string]bool{
	"id":          true,
	"sid":         true,
	"status":      true,
	"mating_date": true,
	"birth_date":  true,
	"created_at":  true,
	"updated_at":  true,
}

// BreedingRepository implements the breeding repository interface
// backed by GORM.
type BreedingRepository struct {
	db     *gorm.DB
	mapper mappers.BreedingMapper
	logger logger.Interface
}

// NewBreedingRepository creates a new breeding repository
func NewBreedingRepository(db *gorm.DB, logger logger.Interface) breeding.Repository {
	return &BreedingRepository{
		db:     db,
		mapper: mappers.NewBreedingMapper(),
		logger: logger,
	}
}

// Create creates a new breeding record within the current scope
func (r *BreedingRepository) Create(ctx context.Context, entity *breeding.Breeding) error {
	if entity.SID() == "" {
		entity.SetSID(id.MustGenerateWithPrefix(id.PrefixBreeding, id.DefaultLength))
	}

	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map breeding entity to model", "error", err)
		return fmt.Errorf("failed to map breeding entity: %w", err)
	}

	db.InjectScope(ctx, model)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create breeding in database", "error", err)
		return fmt.Errorf("failed to create breeding: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set breeding ID: %w", err)
	}

	r.logger.Infow("breeding created", "id", model.ID, "sid", model.SID)
	return nil
}

// GetByID retrieves a breeding record by internal ID
func (r *BreedingRepository) GetByID(ctx context.Context, breedingID uint) (*breeding.Breeding, error) {
	var model models.BreedingModel

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &model)
	if err := tx.First(&model, breedingID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get breeding by ID", "id", breedingID, "error", err)
		return nil, fmt.Errorf("failed to get breeding: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetBySID retrieves a breeding record by external SID
func (r *BreedingRepository) GetBySID(ctx context.Context, sid string) (*breeding.Breeding, error) {
	var model models.BreedingModel

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &model)
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to get breeding by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to get breeding: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// GetBySIDForUpdate retrieves a breeding record by SID holding a row
// lock until the surrounding transaction ends. SQLite serializes write
// transactions on its own and rejects FOR UPDATE, so the locking
// clause is applied only on dialects that support it.
func (r *BreedingRepository) GetBySIDForUpdate(ctx context.Context, sid string) (*breeding.Breeding, error) {
	var model models.BreedingModel

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &model)
	if tx.Dialector.Name() != "sqlite" {
		tx = tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	if err := tx.Where("sid = ?", sid).First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		r.logger.Errorw("failed to lock breeding by SID", "sid", sid, "error", err)
		return nil, fmt.Errorf("failed to lock breeding: %w", err)
	}

	return r.mapper.ToEntity(&model)
}

// Update updates an existing breeding record
func (r *BreedingRepository) Update(ctx context.Context, entity *breeding.Breeding) error {
	model, err := r.mapper.ToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map breeding entity to model", "error", err)
		return fmt.Errorf("failed to map breeding entity: %w", err)
	}

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), model)
	result := tx.Model(&models.BreedingModel{}).Where("id = ?", entity.ID()).Updates(map[string]interface{}{
		"mother_id":     model.MotherID,
		"father_id":     model.FatherID,
		"status":        model.Status,
		"mating_date":   model.MatingDate,
		"expected_date": model.ExpectedDate,
		"birth_date":    model.BirthDate,
		"notes":         model.Notes,
		"updated_at":    model.UpdatedAt,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update breeding", "id", entity.ID(), "error", result.Error)
		return fmt.Errorf("failed to update breeding: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// Delete removes a breeding record by internal ID (soft delete)
func (r *BreedingRepository) Delete(ctx context.Context, breedingID uint) error {
	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &models.BreedingModel{})
	result := tx.Delete(&models.BreedingModel{}, breedingID)
	if result.Error != nil {
		r.logger.Errorw("failed to delete breeding", "id", breedingID, "error", result.Error)
		return fmt.Errorf("failed to delete breeding: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// List retrieves a paginated, filtered list of breeding records
func (r *BreedingRepository) List(ctx context.Context, filter breeding.ListFilter) ([]*breeding.Breeding, int64, error) {
	filter.Normalize()

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &models.BreedingModel{}).Model(&models.BreedingModel{})

	if filter.Status != nil {
		tx = tx.Where("status = ?", filter.Status.String())
	}
	if filter.MotherID != nil {
		tx = tx.Where("mother_id = ?", *filter.MotherID)
	}

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count breedings", "error", err)
		return nil, 0, fmt.Errorf("failed to count breedings: %w", err)
	}

	orderBy := "created_at"
	if filter.SortBy != "" && allowedBreedingOrderByFields[filter.SortBy] {
		orderBy = filter.SortBy
	}
	order := orderBy + " " + sortDirection(filter.SortOrder)

	var breedingModels []*models.BreedingModel
	if err := tx.Order(order).Offset(filter.Offset()).Limit(filter.PageSize).Find(&breedingModels).Error; err != nil {
		r.logger.Errorw("failed to list breedings", "error", err)
		return nil, 0, fmt.Errorf("failed to list breedings: %w", err)
	}

	entities, err := r.mapper.ToEntities(breedingModels)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to map breedings: %w", err)
	}
	return entities, total, nil
}

// CreateBirth persists a birth event within the current scope
func (r *BreedingRepository) CreateBirth(ctx context.Context, entity *breeding.Birth) error {
	if entity.SID() == "" {
		entity.SetSID(id.MustGenerateWithPrefix(id.PrefixBirth, id.DefaultLength))
	}

	model, err := r.mapper.BirthToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map birth entity to model", "error", err)
		return fmt.Errorf("failed to map birth entity: %w", err)
	}

	db.InjectScope(ctx, model)

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		r.logger.Errorw("failed to create birth in database", "error", err)
		return fmt.Errorf("failed to create birth: %w", err)
	}

	if err := entity.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set birth ID: %w", err)
	}

	return nil
}

// UpdateBirth updates an existing birth event
func (r *BreedingRepository) UpdateBirth(ctx context.Context, entity *breeding.Birth) error {
	model, err := r.mapper.BirthToModel(entity)
	if err != nil {
		r.logger.Errorw("failed to map birth entity to model", "error", err)
		return fmt.Errorf("failed to map birth entity: %w", err)
	}

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), model)
	result := tx.Model(&models.BirthModel{}).Where("id = ?", entity.ID()).Updates(map[string]interface{}{
		"goat_id":    model.GoatID,
		"tag_id":     model.TagID,
		"gender":     model.Gender,
		"outcome":    model.Outcome,
		"weight_kg":  model.WeightKg,
		"notes":      model.Notes,
		"updated_at": model.UpdatedAt,
	})
	if result.Error != nil {
		r.logger.Errorw("failed to update birth", "id", entity.ID(), "error", result.Error)
		return fmt.Errorf("failed to update birth: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	return nil
}

// ListBirths retrieves all birth events of a breeding record ordered by
// creation
func (r *BreedingRepository) ListBirths(ctx context.Context, breedingID uint) ([]*breeding.Birth, error) {
	var birthModels []*models.BirthModel

	tx := db.ScopedQuery(ctx, db.GetTxFromContext(ctx, r.db), &models.BirthModel{})
	if err := tx.Where("breeding_id = ?", breedingID).Order("id ASC").Find(&birthModels).Error; err != nil {
		r.logger.Errorw("failed to list births", "breeding_id", breedingID, "error", err)
		return nil, fmt.Errorf("failed to list births: %w", err)
	}

	return r.mapper.BirthsToEntities(birthModels)
}
