package mappers

import (
	"fmt"

	"github.com/marai-app/marai/internal/domain/sale"
	"github.com/marai-app/marai/internal/infrastructure/persistence/models"
)

// SaleMapper handles the conversion between sale domain entities and
// persistence models.
type SaleMapper interface {
	ToEntity(model *models.SaleModel) (*sale.Sale, error)
	ToModel(entity *sale.Sale) (*models.SaleModel, error)
	ToEntities(models []*models.SaleModel) ([]*sale.Sale, error)
}

// SaleMapperImpl is the concrete implementation of SaleMapper
type SaleMapperImpl struct{}

// NewSaleMapper creates a new sale mapper
func NewSaleMapper() SaleMapper {
	return &SaleMapperImpl{}
}

func (m *SaleMapperImpl) ToEntity(model *models.SaleModel) (*sale.Sale, error) {
	if model == nil {
		return nil, nil
	}

	entity, err := sale.Reconstruct(
		model.ID,
		model.SID,
		model.GoatID,
		model.BuyerName,
		model.Amount,
		model.Currency,
		model.SaleDate,
		sale.PaymentStatus(model.PaymentStatus),
		model.Notes,
		model.CreatedAt,
		model.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct sale entity: %w", err)
	}
	return entity, nil
}

func (m *SaleMapperImpl) ToModel(entity *sale.Sale) (*models.SaleModel, error) {
	if entity == nil {
		return nil, nil
	}

	return &models.SaleModel{
		ID:            entity.ID(),
		SID:           entity.SID(),
		GoatID:        entity.GoatID(),
		BuyerName:     entity.BuyerName(),
		Amount:        entity.Amount(),
		Currency:      entity.Currency(),
		SaleDate:      entity.SaleDate(),
		PaymentStatus: entity.PaymentStatus().String(),
		Notes:         entity.Notes(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}, nil
}

func (m *SaleMapperImpl) ToEntities(saleModels []*models.SaleModel) ([]*sale.Sale, error) {
	entities := make([]*sale.Sale, 0, len(saleModels))
	for _, model := range saleModels {
		entity, err := m.ToEntity(model)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
