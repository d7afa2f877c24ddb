package usecases

import (
	"context"
	"fmt"
	"time"

	domainGoat "github.com/marai-app/marai/internal/domain/goat"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
)

// CreateGoatCommand contains the data for registering an animal that
// enters the herd directly (purchase or initial registration, as
// opposed to being born on-farm).
type CreateGoatCommand struct {
	TagID     string
	Gender    domainGoat.Gender
	BirthDate time.Time
	WeightKg  *float64
	BreedName string
	Notes     string
}

// GoatResult is the API view of a herd animal.
type GoatResult struct {
	SID       string    `json:"sid"`
	TagID     string    `json:"tag_id"`
	Gender    string    `json:"gender"`
	Status    string    `json:"status"`
	BirthDate time.Time `json:"birth_date"`
	WeightKg  *float64  `json:"weight_kg,omitempty"`
	BreedName string    `json:"breed_name,omitempty"`
	Notes     string    `json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HerdLimitChecker reports whether the current tenant may add another
// animal under its plan.
type HerdLimitChecker interface {
	CheckHerdLimit(ctx context.Context) error
}

// CreateGoatUseCase handles the business logic for registering a herd
// animal.
type CreateGoatUseCase struct {
	goatRepo     domainGoat.Repository
	breedRepo    domainGoat.BreedRepository
	limitChecker HerdLimitChecker // Optional, can be nil
	logger       logger.Interface
}

// NewCreateGoatUseCase creates a new create goat use case
func NewCreateGoatUseCase(
	goatRepo domainGoat.Repository,
	breedRepo domainGoat.BreedRepository,
	logger logger.Interface,
) *CreateGoatUseCase {
	return &CreateGoatUseCase{
		goatRepo:  goatRepo,
		breedRepo: breedRepo,
		logger:    logger,
	}
}

// SetLimitChecker sets the plan limit checker (optional dependency
// injection)
func (uc *CreateGoatUseCase) SetLimitChecker(checker HerdLimitChecker) {
	uc.limitChecker = checker
}

// Execute executes the create goat use case
func (uc *CreateGoatUseCase) Execute(ctx context.Context, cmd CreateGoatCommand) (*GoatResult, error) {
	if cmd.TagID == "" {
		return nil, errors.NewValidationError("tag identifier is required")
	}

	if uc.limitChecker != nil {
		if err := uc.limitChecker.CheckHerdLimit(ctx); err != nil {
			return nil, err
		}
	}

	existing, err := uc.goatRepo.GetByTagID(ctx, cmd.TagID)
	if err != nil {
		return nil, fmt.Errorf("failed to check tag: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("tag already in use", cmd.TagID)
	}

	var breedID *uint
	breedName := ""
	if cmd.BreedName != "" {
		breed, err := uc.breedRepo.GetByName(ctx, cmd.BreedName)
		if err != nil {
			return nil, fmt.Errorf("failed to look up breed: %w", err)
		}
		if breed == nil {
			breed, err = domainGoat.NewBreed(cmd.BreedName, "")
			if err != nil {
				return nil, errors.NewValidationError("invalid breed", err.Error())
			}
			if err := uc.breedRepo.Create(ctx, breed); err != nil {
				return nil, fmt.Errorf("failed to create breed: %w", err)
			}
		}
		bid := breed.ID()
		breedID = &bid
		breedName = breed.Name()
	}

	entity, err := domainGoat.NewGoat(cmd.TagID, cmd.Gender, cmd.BirthDate, cmd.WeightKg, breedID)
	if err != nil {
		return nil, errors.NewValidationError("invalid goat", err.Error())
	}
	if cmd.Notes != "" {
		entity.UpdateNotes(cmd.Notes)
	}

	if err := uc.goatRepo.Create(ctx, entity); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("tag already in use", cmd.TagID)
		}
		return nil, fmt.Errorf("failed to save goat: %w", err)
	}

	uc.logger.Infow("goat registered", "sid", entity.SID(), "tag_id", entity.TagID())
	return toGoatResult(entity, breedName), nil
}

func toGoatResult(entity *domainGoat.Goat, breedName string) *GoatResult {
	return &GoatResult{
		SID:       entity.SID(),
		TagID:     entity.TagID(),
		Gender:    entity.Gender().String(),
		Status:    entity.Status().String(),
		BirthDate: entity.BirthDate(),
		WeightKg:  entity.WeightKg(),
		BreedName: breedName,
		Notes:     entity.Notes(),
		CreatedAt: entity.CreatedAt(),
		UpdatedAt: entity.UpdatedAt(),
	}
}
