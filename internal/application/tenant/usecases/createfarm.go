package usecases

import (
	"context"
	"fmt"
	"time"

	domainTenant "github.com/marai-app/marai/internal/domain/tenant"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
	"github.com/marai-app/marai/internal/shared/scope"
)

// FarmResult is the API view of a farm.
type FarmResult struct {
	SID       string    `json:"sid"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
}

// CreateFarmCommand contains the data for adding a farm to the tenant.
type CreateFarmCommand struct {
	Name     string
	Location string
	Currency string
}

// CreateFarmUseCase adds a farm under the calling tenant, enforcing
// the plan's farm limit.
type CreateFarmUseCase struct {
	tenantRepo domainTenant.Repository
	farmRepo   domainTenant.FarmRepository
	logger     logger.Interface
}

// NewCreateFarmUseCase creates a new create farm use case
func NewCreateFarmUseCase(tenantRepo domainTenant.Repository, farmRepo domainTenant.FarmRepository, logger logger.Interface) *CreateFarmUseCase {
	return &CreateFarmUseCase{tenantRepo: tenantRepo, farmRepo: farmRepo, logger: logger}
}

// Execute executes the create farm use case
func (uc *CreateFarmUseCase) Execute(ctx context.Context, cmd CreateFarmCommand) (*FarmResult, error) {
	sc, ok := scope.FromContext(ctx)
	if !ok {
		return nil, errors.NewUnauthenticatedError("no tenant bound to request")
	}

	tenantEntity, err := uc.tenantRepo.GetByID(ctx, sc.TenantID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	if tenantEntity == nil {
		return nil, errors.NewNotFoundError("tenant not found")
	}

	count, err := uc.farmRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count farms: %w", err)
	}
	if count >= int64(tenantEntity.Limits().MaxFarms) {
		return nil, errors.NewPreconditionFailedError(
			fmt.Sprintf("farm limit reached for plan %s", tenantEntity.Plan()))
	}

	farmEntity, err := domainTenant.NewFarm(tenantEntity.ID(), cmd.Name, cmd.Location, cmd.Currency)
	if err != nil {
		return nil, errors.NewValidationError("invalid farm", err.Error())
	}
	if err := uc.farmRepo.Create(ctx, farmEntity); err != nil {
		return nil, fmt.Errorf("failed to create farm: %w", err)
	}

	uc.logger.Infow("farm created", "sid", farmEntity.SID(), "name", farmEntity.Name())
	return toFarmResult(farmEntity), nil
}

// ListFarmsUseCase retrieves the tenant's farms.
type ListFarmsUseCase struct {
	farmRepo domainTenant.FarmRepository
	logger   logger.Interface
}

// NewListFarmsUseCase creates a new list farms use case
func NewListFarmsUseCase(farmRepo domainTenant.FarmRepository, logger logger.Interface) *ListFarmsUseCase {
	return &ListFarmsUseCase{farmRepo: farmRepo, logger: logger}
}

// Execute executes the list farms use case
func (uc *ListFarmsUseCase) Execute(ctx context.Context) ([]*FarmResult, error) {
	farms, err := uc.farmRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}

	results := make([]*FarmResult, 0, len(farms))
	for _, f := range farms {
		results = append(results, toFarmResult(f))
	}
	return results, nil
}

func toFarmResult(f *domainTenant.Farm) *FarmResult {
	return &FarmResult{
		SID:       f.SID(),
		Name:      f.Name(),
		Location:  f.Location(),
		Currency:  f.Currency(),
		CreatedAt: f.CreatedAt(),
	}
}
