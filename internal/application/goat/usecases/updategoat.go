package usecases

import (
	"context"
	"fmt"

	domainGoat "github.com/marai-app/marai/internal/domain/goat"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
)

// UpdateGoatCommand contains the editable fields of a herd animal. Nil
// pointers leave the field untouched.
type UpdateGoatCommand struct {
	SID      string
	Status   *domainGoat.Status
	WeightKg *float64
	Notes    *string
}

// UpdateGoatUseCase handles status, weight, and notes updates for a
// herd animal. Identity fields (tag, gender, lineage) are immutable
// through this path.
type UpdateGoatUseCase struct {
	goatRepo domainGoat.Repository
	logger   logger.Interface
}

// NewUpdateGoatUseCase creates a new update goat use case
func NewUpdateGoatUseCase(goatRepo domainGoat.Repository, logger logger.Interface) *UpdateGoatUseCase {
	return &UpdateGoatUseCase{goatRepo: goatRepo, logger: logger}
}

// Execute executes the update goat use case
func (uc *UpdateGoatUseCase) Execute(ctx context.Context, cmd UpdateGoatCommand) (*GoatResult, error) {
	if cmd.SID == "" {
		return nil, errors.NewValidationError("goat reference is required")
	}

	entity, err := uc.goatRepo.GetBySID(ctx, cmd.SID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goat: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("goat not found", cmd.SID)
	}

	if cmd.Status != nil {
		if err := entity.ChangeStatus(*cmd.Status); err != nil {
			return nil, errors.NewValidationError("invalid status", err.Error())
		}
	}
	if cmd.WeightKg != nil {
		if err := entity.UpdateWeight(*cmd.WeightKg); err != nil {
			return nil, errors.NewValidationError("invalid weight", err.Error())
		}
	}
	if cmd.Notes != nil {
		entity.UpdateNotes(*cmd.Notes)
	}

	if err := uc.goatRepo.Update(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to update goat: %w", err)
	}

	uc.logger.Infow("goat updated", "sid", cmd.SID)
	return toGoatResult(entity, ""), nil
}

// DeleteGoatUseCase removes an animal from the herd (soft delete).
type DeleteGoatUseCase struct {
	goatRepo domainGoat.Repository
	logger   logger.Interface
}

// NewDeleteGoatUseCase creates a new delete goat use case
func NewDeleteGoatUseCase(goatRepo domainGoat.Repository, logger logger.Interface) *DeleteGoatUseCase {
	return &DeleteGoatUseCase{goatRepo: goatRepo, logger: logger}
}

// Execute executes the delete goat use case
func (uc *DeleteGoatUseCase) Execute(ctx context.Context, sid string) error {
	if sid == "" {
		return errors.NewValidationError("goat reference is required")
	}

	entity, err := uc.goatRepo.GetBySID(ctx, sid)
	if err != nil {
		return fmt.Errorf("failed to load goat: %w", err)
	}
	if entity == nil {
		return errors.NewNotFoundError("goat not found", sid)
	}

	if err := uc.goatRepo.Delete(ctx, entity.ID()); err != nil {
		return fmt.Errorf("failed to delete goat: %w", err)
	}

	uc.logger.Infow("goat deleted", "sid", sid)
	return nil
}
