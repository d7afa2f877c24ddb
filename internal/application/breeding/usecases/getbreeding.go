package usecases

import (
	"context"
	"fmt"
	"time"

	domainBreeding "github.com/marai-app/marai/internal/domain/breeding"
	domainGoat "github.com/marai-app/marai/internal/domain/goat"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
)

// BirthResult is the API view of a birth event.
type BirthResult struct {
	SID       string    `json:"sid"`
	GoatSID   string    `json:"goat_sid"`
	TagID     string    `json:"tag_id"`
	Gender    string    `json:"gender"`
	BirthDate time.Time `json:"birth_date"`
	Outcome   string    `json:"outcome"`
	WeightKg  *float64  `json:"weight_kg,omitempty"`
	Notes     string    `json:"notes"`
}

// BreedingDetailResult is a breeding record together with its birth
// events.
type BreedingDetailResult struct {
	BreedingResult
	Births []BirthResult `json:"births"`
}

// GetBreedingUseCase retrieves a breeding record with its birth
// events.
type GetBreedingUseCase struct {
	breedingRepo domainBreeding.Repository
	goatRepo     domainGoat.Repository
	logger       logger.Interface
}

// NewGetBreedingUseCase creates a new get breeding use case
func NewGetBreedingUseCase(breedingRepo domainBreeding.Repository, goatRepo domainGoat.Repository, logger logger.Interface) *GetBreedingUseCase {
	return &GetBreedingUseCase{breedingRepo: breedingRepo, goatRepo: goatRepo, logger: logger}
}

// Execute executes the get breeding use case
func (uc *GetBreedingUseCase) Execute(ctx context.Context, breedingSID string) (*BreedingDetailResult, error) {
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

	births, err := uc.breedingRepo.ListBirths(ctx, entity.ID())
	if err != nil {
		return nil, fmt.Errorf("failed to load births: %w", err)
	}

	birthResults := make([]BirthResult, 0, len(births))
	for _, b := range births {
		br := BirthResult{
			SID:       b.SID(),
			TagID:     b.TagID(),
			Gender:    b.Gender().String(),
			BirthDate: b.BirthDate(),
			Outcome:   b.Outcome().String(),
			WeightKg:  b.WeightKg(),
			Notes:     b.Notes(),
		}
		if b.GoatID() != nil {
			kid, err := uc.goatRepo.GetByID(ctx, *b.GoatID())
			if err != nil {
				return nil, fmt.Errorf("failed to load offspring: %w", err)
			}
			if kid != nil {
				br.GoatSID = kid.SID()
			}
		}
		birthResults = append(birthResults, br)
	}

	return &BreedingDetailResult{
		BreedingResult: *toBreedingResult(entity, "", ""),
		Births:         birthResults,
	}, nil
}

// ListBreedingsUseCase retrieves a filtered page of breeding records.
type ListBreedingsUseCase struct {
	breedingRepo domainBreeding.Repository
	logger       logger.Interface
}

// NewListBreedingsUseCase creates a new list breedings use case
func NewListBreedingsUseCase(breedingRepo domainBreeding.Repository, logger logger.Interface) *ListBreedingsUseCase {
	return &ListBreedingsUseCase{breedingRepo: breedingRepo, logger: logger}
}

// Execute executes the list breedings use case
func (uc *ListBreedingsUseCase) Execute(ctx context.Context, filter domainBreeding.ListFilter) ([]*BreedingResult, int64, error) {
	entities, total, err := uc.breedingRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list breedings: %w", err)
	}

	results := make([]*BreedingResult, 0, len(entities))
	for _, entity := range entities {
		results = append(results, toBreedingResult(entity, "", ""))
	}
	return results, total, nil
}
