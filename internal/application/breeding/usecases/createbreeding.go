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

// CreateBreedingCommand contains the data for planning a mating.
type CreateBreedingCommand struct {
	MotherSID    string
	FatherSID    string
	MatingDate   time.Time
	ExpectedDate *time.Time
	Notes        string
}

// BreedingResult is the API view of a breeding record.
type BreedingResult struct {
	SID          string     `json:"sid"`
	MotherSID    string     `json:"mother_sid"`
	FatherSID    string     `json:"father_sid"`
	Status       string     `json:"status"`
	MatingDate   time.Time  `json:"mating_date"`
	ExpectedDate *time.Time `json:"expected_date,omitempty"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Notes        string     `json:"notes"`
	CreatedAt    time.Time  `json:"created_at"`
}

// CreateBreedingUseCase handles the business logic for planning a
// mating between two animals.
type CreateBreedingUseCase struct {
	breedingRepo domainBreeding.Repository
	goatRepo     domainGoat.Repository
	logger       logger.Interface
}

// NewCreateBreedingUseCase creates a new create breeding use case
func NewCreateBreedingUseCase(
	breedingRepo domainBreeding.Repository,
	goatRepo domainGoat.Repository,
	logger logger.Interface,
) *CreateBreedingUseCase {
	return &CreateBreedingUseCase{
		breedingRepo: breedingRepo,
		goatRepo:     goatRepo,
		logger:       logger,
	}
}

// Execute executes the create breeding use case
func (uc *CreateBreedingUseCase) Execute(ctx context.Context, cmd CreateBreedingCommand) (*BreedingResult, error) {
	if cmd.MotherSID == "" {
		return nil, errors.NewValidationError("mother is required")
	}
	if cmd.MatingDate.IsZero() {
		return nil, errors.NewValidationError("mating date is required")
	}

	mother, err := uc.goatRepo.GetBySID(ctx, cmd.MotherSID)
	if err != nil {
		return nil, fmt.Errorf("failed to load mother: %w", err)
	}
	if mother == nil {
		return nil, errors.NewNotFoundError("mother not found", cmd.MotherSID)
	}
	if !mother.IsActive() {
		return nil, errors.NewPreconditionFailedError(
			fmt.Sprintf("mother must be ACTIVE, is %s", mother.Status()))
	}
	if mother.Gender() != domainGoat.GenderFemale {
		return nil, errors.NewPreconditionFailedError("mother must be FEMALE")
	}

	var father *domainGoat.Goat
	var fatherID *uint
	if cmd.FatherSID != "" {
		father, err = uc.goatRepo.GetBySID(ctx, cmd.FatherSID)
		if err != nil {
			return nil, fmt.Errorf("failed to load father: %w", err)
		}
		if father == nil {
			return nil, errors.NewNotFoundError("father not found", cmd.FatherSID)
		}
		if !father.IsActive() {
			return nil, errors.NewPreconditionFailedError(
				fmt.Sprintf("father must be ACTIVE, is %s", father.Status()))
		}
		if father.Gender() != domainGoat.GenderMale {
			return nil, errors.NewPreconditionFailedError("father must be MALE")
		}
		fid := father.ID()
		fatherID = &fid
	}

	entity, err := domainBreeding.NewBreeding(mother.ID(), fatherID, cmd.MatingDate, cmd.ExpectedDate, cmd.Notes)
	if err != nil {
		return nil, errors.NewValidationError("invalid breeding", err.Error())
	}

	if err := uc.breedingRepo.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to save breeding: %w", err)
	}

	uc.logger.Infow("breeding planned", "sid", entity.SID(), "mother_sid", cmd.MotherSID)

	result := toBreedingResult(entity, cmd.MotherSID, cmd.FatherSID)
	return result, nil
}

func toBreedingResult(entity *domainBreeding.Breeding, motherSID, fatherSID string) *BreedingResult {
	return &BreedingResult{
		SID:          entity.SID(),
		MotherSID:    motherSID,
		FatherSID:    fatherSID,
		Status:       entity.Status().String(),
		MatingDate:   entity.MatingDate(),
		ExpectedDate: entity.ExpectedDate(),
		BirthDate:    entity.BirthDate(),
		Notes:        entity.Notes(),
		CreatedAt:    entity.CreatedAt(),
	}
}
