package usecases

import (
	"context"
	"fmt"

	domainGoat "github.com/marai-app/marai/internal/domain/goat"
	domainTenant "github.com/marai-app/marai/internal/domain/tenant"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/scope"
)

// PlanLimitService enforces per-plan resource caps. It satisfies the
// limit-checker hooks of the herd use cases.
type PlanLimitService struct {
	tenantRepo domainTenant.Repository
	goatRepo   domainGoat.Repository
}

// NewPlanLimitService creates a new plan limit service
func NewPlanLimitService(tenantRepo domainTenant.Repository, goatRepo domainGoat.Repository) *PlanLimitService {
	return &PlanLimitService{tenantRepo: tenantRepo, goatRepo: goatRepo}
}

// CheckHerdLimit rejects animal creation once the tenant's herd cap is
// reached.
func (s *PlanLimitService) CheckHerdLimit(ctx context.Context) error {
	sc, ok := scope.FromContext(ctx)
	if !ok {
		return errors.NewUnauthenticatedError("no tenant bound to request")
	}

	tenantEntity, err := s.tenantRepo.GetByID(ctx, sc.TenantID)
	if err != nil {
		return fmt.Errorf("failed to load tenant: %w", err)
	}
	if tenantEntity == nil {
		return errors.NewNotFoundError("tenant not found")
	}

	count, err := s.goatRepo.CountActive(ctx)
	if err != nil {
		return fmt.Errorf("failed to count herd: %w", err)
	}
	if count >= int64(tenantEntity.Limits().MaxAnimals) {
		return errors.NewPreconditionFailedError(
			fmt.Sprintf("herd limit reached for plan %s", tenantEntity.Plan()))
	}
	return nil
}
