package mappers

import (
	"fmt"

	"github.com/marai-app/marai/internal/domain/goat"
	"github.com/marai-app/marai/internal/infrastructure/persistence/models"
)

// GoatMapper handles the conversion between goat domain entities and
// persistence models.
type GoatMapper interface {
	// ToEntity converts a persistence model to a domain entity
	ToEntity(model *models.GoatModel) (*goat.Goat, error)

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *goat.Goat) (*models.GoatModel, error)

	// ToEntities converts multiple persistence models to domain entities
	ToEntities(models []*models.GoatModel) ([]*goat.Goat, error)
}

// GoatMapperImpl is the concrete implementation of GoatMapper
type GoatMapperImpl struct{}

// NewGoatMapper creates a new goat mapper
func NewGoatMapper() GoatMapper {
	return &GoatMapperImpl{}
}

func (m *GoatMapperImpl) ToEntity(model *models.GoatModel) (*goat.Goat, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := goat.Reconstruct(
		model.ID,
		model.SID,
		model.TagID,
		goat.Gender(model.Gender),
		goat.Status(model.Status),
		model.BirthDate,
		model.WeightKg,
		model.BreedID,
		model.MotherID,
		model.FatherID,
		model.BreedingID,
		model.BirthRecordID,
		model.Notes,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct goat entity: %w", err)
	}
	return entity, nil
}

func (m *GoatMapperImpl) ToModel(entity *goat.Goat) (*models.GoatModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.GoatModel{
		ID:            entity.ID(),
		SID:           entity.SID(),
		TagID:         entity.TagID(),
		Gender:        entity.Gender().String(),
		Status:        entity.Status().String(),
		BirthDate:     entity.BirthDate(),
		WeightKg:      entity.WeightKg(),
		BreedID:       entity.BreedID(),
		MotherID:      entity.MotherID(),
		FatherID:      entity.FatherID(),
		BreedingID:    entity.BreedingID(),
		BirthRecordID: entity.BirthRecordID(),
		Notes:         entity.Notes(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

func (m *GoatMapperImpl) ToEntities(goatModels []*models.GoatModel) ([]*goat.Goat, error) {
	entities := make([]*goat.Goat, 0, len(goatModels))
	for _, model := range goatModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

// BreedMapper handles the conversion between breed lookup entries and
// persistence models.
type BreedMapper interface {
	ToEntity(model *models.BreedModel) (*goat.Breed, error)
	ToModel(entity *goat.Breed) (*models.BreedModel, error)
	ToEntities(models []*models.BreedModel) ([]*goat.Breed, error)
}

// BreedMapperImpl is the concrete implementation of BreedMapper
type BreedMapperImpl struct{}

// NewBreedMapper creates a new breed mapper
func NewBreedMapper() BreedMapper {
	return &BreedMapperImpl{}
}

func (m *BreedMapperImpl) ToEntity(model *models.BreedModel) (*goat.Breed, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := goat.ReconstructBreed(model.ID, model.Name, model.Description, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct breed entity: %w", err)
	}
	return entity, nil
}

func (m *BreedMapperImpl) ToModel(entity *goat.Breed) (*models.BreedModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.BreedModel{
		ID:          entity.ID(),
		Name:        entity.Name(),
		Description: entity.Description(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *BreedMapperImpl) ToEntities(breedModels []*models.BreedModel) ([]*goat.Breed, error) {
	entities := make([]*goat.Breed, 0, len(breedModels))
	for _, model := range breedModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
