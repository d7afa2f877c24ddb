package mappers

import (
	"fmt"

	"github.com/marai-app/marai/internal/domain/breeding"
	"github.com/marai-app/marai/internal/domain/goat"
	"github.com/marai-app/marai/internal/infrastructure/persistence/models"
)

// BreedingMapper handles the conversion between breeding domain
// entities and persistence models.
type BreedingMapper interface {
	ToEntity(model *models.BreedingModel) (*breeding.Breeding, error)
	ToModel(entity *breeding.Breeding) (*models.BreedingModel, error)
	ToEntities(models []*models.BreedingModel) ([]*breeding.Breeding, error)

	BirthToEntity(model *models.BirthModel) (*breeding.Birth, error)
	BirthToModel(entity *breeding.Birth) (*models.BirthModel, error)
	BirthsToEntities(models []*models.BirthModel) ([]*breeding.Birth, error)
}

// BreedingMapperImpl is the concrete implementation of BreedingMapper
type BreedingMapperImpl struct{}

// NewBreedingMapper creates a new breeding mapper
func NewBreedingMapper() BreedingMapper {
	return &BreedingMapperImpl{}
}

func (m *BreedingMapperImpl) ToEntity(model *models.BreedingModel) (*breeding.Breeding, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := breeding.Reconstruct(
		model.ID,
		model.SID,
		model.MotherID,
		model.FatherID,
		breeding.Status(model.Status),
		model.MatingDate,
		model.ExpectedDate,
		model.BirthDate,
		model.Notes,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct breeding entity: %w", err)
	}
	return entity, nil
}

func (m *BreedingMapperImpl) ToModel(entity *breeding.Breeding) (*models.BreedingModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.BreedingModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		MotherID:     entity.MotherID(),
		FatherID:     entity.FatherID(),
		Status:       entity.Status().String(),
		MatingDate:   entity.MatingDate(),
		ExpectedDate: entity.ExpectedDate(),
		BirthDate:    entity.BirthDate(),
		Notes:        entity.Notes(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *BreedingMapperImpl) ToEntities(breedingModels []*models.BreedingModel) ([]*breeding.Breeding, error) {
	entities := make([]*breeding.Breeding, 0, len(breedingModels))
	for _, model := range breedingModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *BreedingMapperImpl) BirthToEntity(model *models.BirthModel) (*breeding.Birth, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := breeding.ReconstructBirth(
		model.ID,
		model.SID,
		model.BreedingID,
		model.GoatID,
		model.TagID,
		goat.Gender(model.Gender),
		model.BirthDate,
		breeding.Outcome(model.Outcome),
		model.WeightKg,
		model.Notes,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct birth entity: %w", err)
	}
	return entity, nil
}

func (m *BreedingMapperImpl) BirthToModel(entity *breeding.Birth) (*models.BirthModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.BirthModel{
		ID:         entity.ID(),
		SID:        entity.SID(),
		BreedingID: entity.BreedingID(),
		GoatID:     entity.GoatID(),
		TagID:      entity.TagID(),
		Gender:     entity.Gender().String(),
		BirthDate:  entity.BirthDate(),
		Outcome:    entity.Outcome().String(),
		WeightKg:   entity.WeightKg(),
		Notes:      entity.Notes(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}, nil
}

func (m *BreedingMapperImpl) BirthsToEntities(birthModels []*models.BirthModel) ([]*breeding.Birth, error) {
	entities := make([]*breeding.Birth, 0, len(birthModels))
	for _, model := range birthModels {
		entity, err := m.BirthToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
