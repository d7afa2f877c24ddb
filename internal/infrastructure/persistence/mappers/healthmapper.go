package mappers

import (
	"fmt"

	"github.com/marai-app/marai/internal/domain/health"
	"github.com/marai-app/marai/internal/infrastructure/persistence/models"
)

// HealthEventMapper handles the conversion between health event
// entities and persistence models.
type HealthEventMapper interface {
	ToEntity(model *models.HealthEventModel) (*health.Event, error)
	ToModel(entity *health.Event) (*models.HealthEventModel, error)
	ToEntities(models []*models.HealthEventModel) ([]*health.Event, error)
}

// HealthEventMapperImpl is the concrete implementation of
// HealthEventMapper
type HealthEventMapperImpl struct{}

// NewHealthEventMapper creates a new health event mapper
func NewHealthEventMapper() HealthEventMapper {
	return &HealthEventMapperImpl{}
}

func (m *HealthEventMapperImpl) ToEntity(model *models.HealthEventModel) (*health.Event, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := health.Reconstruct(
		model.ID,
		model.SID,
		model.GoatID,
		health.EventType(model.EventType),
		model.EventDate,
		model.Description,
		model.VetName,
		model.Cost,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct health event entity: %w", err)
	}
	return entity, nil
}

func (m *HealthEventMapperImpl) ToModel(entity *health.Event) (*models.HealthEventModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.HealthEventModel{
		ID:          entity.ID(),
		SID:         entity.SID(),
		GoatID:      entity.GoatID(),
		EventType:   entity.Type().String(),
		EventDate:   entity.EventDate(),
		Description: entity.Description(),
		VetName:     entity.VetName(),
		Cost:        entity.Cost(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *HealthEventMapperImpl) ToEntities(eventModels []*models.HealthEventModel) ([]*health.Event, error) {
	entities := make([]*health.Event, 0, len(eventModels))
	for _, model := range eventModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
