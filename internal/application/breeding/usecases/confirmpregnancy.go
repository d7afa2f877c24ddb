package usecases

import (
	"context"
	"fmt"

	domainBreeding "github.com/marai-app/marai/internal/domain/breeding"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
)

// ConfirmPregnancyUseCase moves a planned breeding to PREGNANT, making
// it eligible for a delivery record.
type ConfirmPregnancyUseCase struct {
	breedingRepo domainBreeding.Repository
	logger       logger.Interface
}

// NewConfirmPregnancyUseCase creates a new confirm pregnancy use case
func NewConfirmPregnancyUseCase(breedingRepo domainBreeding.Repository, logger logger.Interface) *ConfirmPregnancyUseCase {
	return &ConfirmPregnancyUseCase{breedingRepo: breedingRepo, logger: logger}
}

// Execute executes the confirm pregnancy use case
func (uc *ConfirmPregnancyUseCase) Execute(ctx context.Context, breedingSID string) (*BreedingResult, error) {
	if breedingSID == "" {
		return nil, errors.NewValidationError("breeding reference is required")
	}

	entity, err := uc.breedingRepo.GetBySID(ctx, breedingSID)
	if err != nil {
		return nil, fmt.Errorf("failed to load breeding: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("breeding record not found", breedingSID)
	}

	if err := entity.ConfirmPregnancy(); err != nil {
		return nil, errors.NewPreconditionFailedError("cannot confirm pregnancy", err.Error())
	}

	if err := uc.breedingRepo.Update(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to update breeding: %w", err)
	}

	uc.logger.Infow("pregnancy confirmed", "sid", breedingSID)
	return toBreedingResult(entity, "", ""), nil
}

// MarkBreedingFailedUseCase records that a pregnancy did not carry to
// term.
type MarkBreedingFailedUseCase struct {
	breedingRepo domainBreeding.Repository
	logger       logger.Interface
}

// NewMarkBreedingFailedUseCase creates a new mark breeding failed use
// case
func NewMarkBreedingFailedUseCase(breedingRepo domainBreeding.Repository, logger logger.Interface) *MarkBreedingFailedUseCase {
	return &MarkBreedingFailedUseCase{breedingRepo: breedingRepo, logger: logger}
}

// Execute executes the mark breeding failed use case
func (uc *MarkBreedingFailedUseCase) Execute(ctx context.Context, breedingSID string) (*BreedingResult, error) {
	if breedingSID == "" {
		return nil, errors.NewValidationError("breeding reference is required")
	}

	entity, err := uc.breedingRepo.GetBySID(ctx, breedingSID)
	if err != nil {
		return nil, fmt.Errorf("failed to load breeding: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("breeding record not found", breedingSID)
	}

	if err := entity.MarkFailed(); err != nil {
		return nil, errors.NewConflictError("cannot mark breeding failed", err.Error())
	}

	if err := uc.breedingRepo.Update(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to update breeding: %w", err)
	}

	uc.logger.Infow("breeding marked failed", "sid", breedingSID)
	return toBreedingResult(entity, "", ""), nil
}
