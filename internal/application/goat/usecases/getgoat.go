package usecases

import (
	"context"
	"fmt"

	domainGoat "github.com/marai-app/marai/internal/domain/goat"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
)

// GetGoatUseCase retrieves a single herd animal.
type GetGoatUseCase struct {
	goatRepo  domainGoat.Repository
	breedRepo domainGoat.BreedRepository
	logger    logger.Interface
}

// NewGetGoatUseCase creates a new get goat use case
func NewGetGoatUseCase(goatRepo domainGoat.Repository, breedRepo domainGoat.BreedRepository, logger logger.Interface) *GetGoatUseCase {
	return &GetGoatUseCase{goatRepo: goatRepo, breedRepo: breedRepo, logger: logger}
}

// Execute executes the get goat use case
func (uc *GetGoatUseCase) Execute(ctx context.Context, sid string) (*GoatResult, error) {
	entity, err := uc.loadGoat(ctx, sid)
	if err != nil {
		return nil, err
	}
	breedName, err := uc.resolveBreedName(ctx, entity)
	if err != nil {
		return nil, err
	}
	return toGoatResult(entity, breedName), nil
}

func (uc *GetGoatUseCase) loadGoat(ctx context.Context, sid string) (*domainGoat.Goat, error) {
	if sid == "" {
		return nil, errors.NewValidationError("goat reference is required")
	}
	entity, err := uc.goatRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to load goat: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("goat not found", sid)
	}
	return entity, nil
}

func (uc *GetGoatUseCase) resolveBreedName(ctx context.Context, entity *domainGoat.Goat) (string, error) {
	if entity.BreedID() == nil {
		return "", nil
	}
	breed, err := uc.breedRepo.GetByID(ctx, *entity.BreedID())
	if err != nil {
		return "", fmt.Errorf("failed to load breed: %w", err)
	}
	if breed == nil {
		return "", nil
	}
	return breed.Name(), nil
}

// LineageResult is the family view of an animal: parents, litter
// siblings, and offspring.
type LineageResult struct {
	Goat      GoatResult   `json:"goat"`
	Mother    *GoatResult  `json:"mother,omitempty"`
	Father    *GoatResult  `json:"father,omitempty"`
	Siblings  []GoatResult `json:"siblings"`
	Offspring []GoatResult `json:"offspring"`
}

// GetLineageUseCase retrieves the family tree around one animal.
// Siblings are litter siblings: animals from the same breeding with
// the same mother.
type GetLineageUseCase struct {
	goatRepo domainGoat.Repository
	logger   logger.Interface
}

// NewGetLineageUseCase creates a new get lineage use case
func NewGetLineageUseCase(goatRepo domainGoat.Repository, logger logger.Interface) *GetLineageUseCase {
	return &GetLineageUseCase{goatRepo: goatRepo, logger: logger}
}

// Execute executes the get lineage use case
func (uc *GetLineageUseCase) Execute(ctx context.Context, sid string) (*LineageResult, error) {
	if sid == "" {
		return nil, errors.NewValidationError("goat reference is required")
	}

	entity, err := uc.goatRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to load goat: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("goat not found", sid)
	}

	result := &LineageResult{Goat: *toGoatResult(entity, "")}

	if entity.MotherID() != nil {
		mother, err := uc.goatRepo.GetByID(ctx, *entity.MotherID())
		if err != nil {
			return nil, fmt.Errorf("failed to load mother: %w", err)
		}
		if mother != nil {
			result.Mother = toGoatResult(mother, "")
		}
	}
	if entity.FatherID() != nil {
		father, err := uc.goatRepo.GetByID(ctx, *entity.FatherID())
		if err != nil {
			return nil, fmt.Errorf("failed to load father: %w", err)
		}
		if father != nil {
			result.Father = toGoatResult(father, "")
		}
	}

	siblings, err := uc.goatRepo.ListSiblings(ctx, entity)
	if err != nil {
		return nil, fmt.Errorf("failed to load siblings: %w", err)
	}
	for _, s := range siblings {
		result.Siblings = append(result.Siblings, *toGoatResult(s, ""))
	}

	offspring, err := uc.goatRepo.ListOffspring(ctx, entity.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load offspring: %w", err)
	}
	for _, o := range offspring {
		result.Offspring = append(result.Offspring, *toGoatResult(o, ""))
	}

	return result, nil
}

// ListGoatsUseCase retrieves a filtered page of herd animals.
type ListGoatsUseCase struct {
	goatRepo domainGoat.Repository
	logger   logger.Interface
}

// NewListGoatsUseCase creates a new list goats use case
func NewListGoatsUseCase(goatRepo domainGoat.Repository, logger logger.Interface) *ListGoatsUseCase {
	return &ListGoatsUseCase{goatRepo: goatRepo, logger: logger}
}

// Execute executes the list goats use case
func (uc *ListGoatsUseCase) Execute(ctx context.Context, filter domainGoat.ListFilter) ([]*GoatResult, int64, error) {
	entities, total, err := uc.goatRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list goats: %w", err)
	}

	results := make([]*GoatResult, 0, len(entities))
	for _, entity := range entities {
		results = append(results, toGoatResult(entity, ""))
	}
	return results, total, nil
}
