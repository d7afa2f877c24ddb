package mappers

import (
	"encoding/json"
	"fmt"

	"gorm.io/datatypes"

	"github.com/marai-app/marai/internal/domain/tenant"
	"github.com/marai-app/marai/internal/infrastructure/persistence/models"
)

// TenantMapper handles the conversion between tenant domain entities
// and persistence models.
type TenantMapper interface {
	ToEntity(model *models.TenantModel) (*tenant.Tenant, error)
	ToModel(entity *tenant.Tenant) (*models.TenantModel, error)
	ToEntities(models []*models.TenantModel) ([]*tenant.Tenant, error)

	FarmToEntity(model *models.FarmModel) (*tenant.Farm, error)
	FarmToModel(entity *tenant.Farm) (*models.FarmModel, error)
	FarmsToEntities(models []*models.FarmModel) ([]*tenant.Farm, error)

	SettingToEntity(model *models.SettingModel) (*tenant.Setting, error)
	SettingToModel(entity *tenant.Setting) (*models.SettingModel, error)
}

// TenantMapperImpl is the concrete implementation of TenantMapper
type TenantMapperImpl struct{}

// NewTenantMapper creates a new tenant mapper
func NewTenantMapper() TenantMapper {
	return &TenantMapperImpl{}
}

func (m *TenantMapperImpl) ToEntity(model *models.TenantModel) (*tenant.Tenant, error) {
	if model == nil {
		return nil, nil
	}

	var limits tenant.PlanLimits
	if len(model.Limits) > 0 {
		if err := json.Unmarshal(model.Limits, &limits); err != nil {
			return nil, fmt.Errorf("failed to decode plan limits: %w", err)
		}
	} else {
		limits = tenant.DefaultLimits(tenant.Plan(model.Plan))
	}

	entity, err := tenant.ReconstructTenant(
		model.ID,
		model.SID,
		model.Name,
		tenant.Plan(model.Plan),
		limits,
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct tenant entity: %w", err)
	}
	return entity, nil
}

func (m *TenantMapperImpl) ToModel(entity *tenant.Tenant) (*models.TenantModel, error) {
	if entity == nil {
		return nil, nil
	}

	limits, err := json.Marshal(entity.Limits())
	if err != nil {
		return nil, fmt.Errorf("failed to encode plan limits: %w", err)
	}

	return &models.TenantModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		Name:      entity.Name(),
		Plan:      entity.Plan().String(),
		Limits:    datatypes.JSON(limits),
		Active:    entity.IsActive(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *TenantMapperImpl) ToEntities(tenantModels []*models.TenantModel) ([]*tenant.Tenant, error) {
	entities := make([]*tenant.Tenant, 0, len(tenantModels))
	for _, model := range tenantModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *TenantMapperImpl) FarmToEntity(model *models.FarmModel) (*tenant.Farm, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := tenant.ReconstructFarm(
		model.ID,
		model.SID,
		model.TenantID,
		model.Name,
		model.Location,
		model.Currency,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct farm entity: %w", err)
	}
	return entity, nil
}

func (m *TenantMapperImpl) FarmToModel(entity *tenant.Farm) (*models.FarmModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.FarmModel{
		ID:        entity.ID(),
		SID:       entity.SID(),
		TenantID:  entity.TenantID(),
		Name:      entity.Name(),
		Location:  entity.Location(),
		Currency:  entity.Currency(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}

func (m *TenantMapperImpl) FarmsToEntities(farmModels []*models.FarmModel) ([]*tenant.Farm, error) {
	entities := make([]*tenant.Farm, 0, len(farmModels))
	for _, model := range farmModels {
		entity, err := m.FarmToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}

func (m *TenantMapperImpl) SettingToEntity(model *models.SettingModel) (*tenant.Setting, error) {
	if model == nil {
		return nil, nil
	}
	entity, err := tenant.ReconstructSetting(model.ID, model.Key, model.Value, model.CreatedAt, model.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct setting entity: %w", err)
	}
	return entity, nil
}

func (m *TenantMapperImpl) SettingToModel(entity *tenant.Setting) (*models.SettingModel, error) {
	if entity == nil {
		return nil, nil
	}
	return &models.SettingModel{
		ID:        entity.ID(),
		Key:       entity.Key(),
		Value:     entity.Value(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}, nil
}
