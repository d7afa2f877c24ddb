package mappers

import (
	"fmt"

	"github.com/marai-app/marai/internal/domain/feed"
	"github.com/marai-app/marai/internal/infrastructure/persistence/models"
)

// FeedScheduleMapper handles the conversion between feeding schedule
// entities and persistence models.
type FeedScheduleMapper interface {
	ToEntity(model *models.FeedScheduleModel) (*feed.Schedule, error)
	ToModel(entity *feed.Schedule) (*models.FeedScheduleModel, error)
	ToEntities(models []*models.FeedScheduleModel) ([]*feed.Schedule, error)
}

// FeedScheduleMapperImpl is the concrete implementation of
// FeedScheduleMapper
type FeedScheduleMapperImpl struct{}

// NewFeedScheduleMapper creates a new feed schedule mapper
func NewFeedScheduleMapper() FeedScheduleMapper {
	return &FeedScheduleMapperImpl{}
}

func (m *FeedScheduleMapperImpl) ToEntity(model *models.FeedScheduleModel) (*feed.Schedule, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := feed.Reconstruct(
		model.ID,
		model.SID,
		model.Name,
		model.FeedType,
		model.TimesPerDay,
		model.AmountKg,
		model.Notes,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct feed schedule entity: %w", err)
	}
	return entity, nil
}

func (m *FeedScheduleMapperImpl) ToModel(entity *feed.Schedule) (*models.FeedScheduleModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.FeedScheduleModel{
		ID:          entity.ID(),
		SID:         entity.SID(),
		Name:        entity.Name(),
		FeedType:    entity.FeedType(),
		TimesPerDay: entity.TimesPerDay(),
		AmountKg:    entity.AmountKg(),
		Notes:       entity.Notes(),
		CreatedAt:   entity.CreatedAt(),
		UpdatedAt:   entity.UpdatedAt(),
	}, nil
}

func (m *FeedScheduleMapperImpl) ToEntities(scheduleModels []*models.FeedScheduleModel) ([]*feed.Schedule, error) {
	entities := make([]*feed.Schedule, 0, len(scheduleModels))
	for _, model := range scheduleModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
