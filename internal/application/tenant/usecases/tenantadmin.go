package usecases

import (
	"context"
	"fmt"

	domainTenant "github.com/marai-app/marai/internal/domain/tenant"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
)

// StatusInvalidator drops any cached tenant state after an admin
// mutation so gates see the change immediately.
type StatusInvalidator interface {
	Invalidate(ctx context.Context, tenantID uint) error
}

// TenantResult is the API view of a tenant account.
type TenantResult struct {
	SID    string                  `json:"sid"`
	Name   string                  `json:"name"`
	Plan   string                  `json:"plan"`
	Active bool                    `json:"active"`
	Limits domainTenant.PlanLimits `json:"limits"`
}

func toTenantResult(t *domainTenant.Tenant) *TenantResult {
	return &TenantResult{
		SID:    t.SID(),
		Name:   t.Name(),
		Plan:   t.Plan().String(),
		Active: t.IsActive(),
		Limits: t.Limits(),
	}
}

// SetTenantStatusUseCase activates or deactivates a tenant account.
// Platform-admin only.
type SetTenantStatusUseCase struct {
	tenantRepo  domainTenant.Repository
	invalidator StatusInvalidator
	logger      logger.Interface
}

// NewSetTenantStatusUseCase creates a new set tenant status use case
func NewSetTenantStatusUseCase(tenantRepo domainTenant.Repository, logger logger.Interface) *SetTenantStatusUseCase {
	return &SetTenantStatusUseCase{tenantRepo: tenantRepo, logger: logger}
}

// SetStatusInvalidator wires the optional cache invalidation hook
func (uc *SetTenantStatusUseCase) SetStatusInvalidator(inv StatusInvalidator) {
	uc.invalidator = inv
}

// Execute executes the set tenant status use case
func (uc *SetTenantStatusUseCase) Execute(ctx context.Context, tenantSID string, active bool) (*TenantResult, error) {
	entity, err := uc.tenantRepo.GetBySID(ctx, tenantSID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("tenant not found", tenantSID)
	}

	if active {
		entity.Activate()
	} else {
		entity.Deactivate()
	}

	if err := uc.tenantRepo.Update(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	if uc.invalidator != nil {
		if err := uc.invalidator.Invalidate(ctx, entity.ID()); err != nil {
			uc.logger.Warnw("failed to invalidate tenant status cache", "tenant_sid", tenantSID, "error", err)
		}
	}

	uc.logger.Infow("tenant status changed", "tenant_sid", tenantSID, "active", active)
	return toTenantResult(entity), nil
}

// ChangePlanUseCase moves a tenant to a new plan and resets its limits
// to the plan defaults.
type ChangePlanUseCase struct {
	tenantRepo  domainTenant.Repository
	invalidator StatusInvalidator
	logger      logger.Interface
}

// NewChangePlanUseCase creates a new change plan use case
func NewChangePlanUseCase(tenantRepo domainTenant.Repository, logger logger.Interface) *ChangePlanUseCase {
	return &ChangePlanUseCase{tenantRepo: tenantRepo, logger: logger}
}

// SetStatusInvalidator wires the optional cache invalidation hook
func (uc *ChangePlanUseCase) SetStatusInvalidator(inv StatusInvalidator) {
	uc.invalidator = inv
}

// Execute executes the change plan use case
func (uc *ChangePlanUseCase) Execute(ctx context.Context, tenantSID string, plan domainTenant.Plan) (*TenantResult, error) {
	entity, err := uc.tenantRepo.GetBySID(ctx, tenantSID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("tenant not found", tenantSID)
	}

	if err := entity.ChangePlan(plan); err != nil {
		return nil, errors.NewValidationError("invalid plan", err.Error())
	}

	if err := uc.tenantRepo.Update(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to update tenant: %w", err)
	}

	if uc.invalidator != nil {
		if err := uc.invalidator.Invalidate(ctx, entity.ID()); err != nil {
			uc.logger.Warnw("failed to invalidate tenant status cache", "tenant_sid", tenantSID, "error", err)
		}
	}

	uc.logger.Infow("tenant plan changed", "tenant_sid", tenantSID, "plan", plan.String())
	return toTenantResult(entity), nil
}

// GetTenantUseCase retrieves a tenant account by SID.
type GetTenantUseCase struct {
	tenantRepo domainTenant.Repository
	logger     logger.Interface
}

// NewGetTenantUseCase creates a new get tenant use case
func NewGetTenantUseCase(tenantRepo domainTenant.Repository, logger logger.Interface) *GetTenantUseCase {
	return &GetTenantUseCase{tenantRepo: tenantRepo, logger: logger}
}

// Execute executes the get tenant use case
func (uc *GetTenantUseCase) Execute(ctx context.Context, tenantSID string) (*TenantResult, error) {
	entity, err := uc.tenantRepo.GetBySID(ctx, tenantSID)
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("tenant not found", tenantSID)
	}
	return toTenantResult(entity), nil
}
