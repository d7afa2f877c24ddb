package mappers

import (
	"fmt"

	"github.com/marai-app/marai/internal/domain/user"
	"github.com/marai-app/marai/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between user domain entities and
// persistence models.
type UserMapper interface {
	ToEntity(model *models.UserModel) (*user.User, error)
	ToModel(entity *user.User) (*models.UserModel, error)
	ToEntities(models []*models.UserModel) ([]*user.User, error)
}

// UserMapperImpl is the concrete implementation of UserMapper
type UserMapperImpl struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

func (m *UserMapperImpl) ToEntity(model *models.UserModel) (*user.User, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := user.Reconstruct(
		model.ID,
		model.SID,
		model.TenantID,
		model.Email,
		model.PasswordHash,
		model.Name,
		model.Role,
		model.ActiveFarmID,
		model.Active,
		model.LastLoginAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct user entity: %w", err)
	}
	return entity, nil
}

func (m *UserMapperImpl) ToModel(entity *user.User) (*models.UserModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.UserModel{
		ID:           entity.ID(),
		SID:          entity.SID(),
		TenantID:     entity.TenantID(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		Name:         entity.Name(),
		Role:         entity.Role(),
		ActiveFarmID: entity.ActiveFarmID(),
		Active:       entity.IsActive(),
		LastLoginAt:  entity.LastLoginAt(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}, nil
}

func (m *UserMapperImpl) ToEntities(userModels []*models.UserModel) ([]*user.User, error) {
	entities := make([]*user.User, 0, len(userModels))
	for _, model := range userModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
