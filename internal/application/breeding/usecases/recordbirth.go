package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	domainBreeding "github.com/marai-app/marai/internal/domain/breeding"
	domainGoat "github.com/marai-app/marai/internal/domain/goat"
	"github.com/marai-app/marai/internal/shared/constants"
	"github.com/marai-app/marai/internal/shared/db"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
)

// KidInput describes one kid of a delivery. TagID is optional; kids
// without a tag get a deterministic placeholder tag derived from the
// breeding record.
type KidInput struct {
	TagID    string
	Gender   domainGoat.Gender
	Outcome  domainBreeding.Outcome
	WeightKg *float64
	Notes    string
}

// RecordBirthCommand contains the data for recording a delivery
// against a breeding record.
type RecordBirthCommand struct {
	BreedingSID string
	BirthDate   time.Time
	Kids        []KidInput
}

// KidResult is the created record pair for one kid, in input order.
type KidResult struct {
	BirthSID string `json:"birth_sid"`
	GoatSID  string `json:"goat_sid"`
	TagID    string `json:"tag_id"`
	Outcome  string `json:"outcome"`
}

// RecordBirthResult is the outcome of recording a delivery.
type RecordBirthResult struct {
	BreedingSID string      `json:"breeding_sid"`
	Status      string      `json:"status"`
	BirthDate   time.Time   `json:"birth_date"`
	Kids        []KidResult `json:"kids"`
}

// DeliveryNotifier announces a recorded delivery. Optional; failures
// never affect the transaction outcome.
type DeliveryNotifier interface {
	NotifyDelivery(motherTag string, kidCount int) error
}

// RecordBirthUseCase records a delivery: it validates the breeding
// preconditions, then atomically creates one birth event and one herd
// animal per kid, links them, and marks the breeding delivered.
// Every kid gets an animal row regardless of survival outcome, so the
// herd history stays complete; the birth event keeps the outcome.
type RecordBirthUseCase struct {
	breedingRepo domainBreeding.Repository
	goatRepo     domainGoat.Repository
	txManager    *db.TransactionManager
	notifier     DeliveryNotifier
	logger       logger.Interface
}

// NewRecordBirthUseCase creates a new record birth use case
func NewRecordBirthUseCase(
	breedingRepo domainBreeding.Repository,
	goatRepo domainGoat.Repository,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *RecordBirthUseCase {
	return &RecordBirthUseCase{
		breedingRepo: breedingRepo,
		goatRepo:     goatRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// SetDeliveryNotifier wires the optional delivery notification hook
func (uc *RecordBirthUseCase) SetDeliveryNotifier(notifier DeliveryNotifier) {
	uc.notifier = notifier
}

// Execute executes the record birth use case
func (uc *RecordBirthUseCase) Execute(ctx context.Context, cmd RecordBirthCommand) (*RecordBirthResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	uc.logger.Infow("recording birth", "breeding_sid", cmd.BreedingSID, "kids", len(cmd.Kids))

	breedingEntity, err := uc.breedingRepo.GetBySID(ctx, cmd.BreedingSID)
	if err != nil {
		return nil, fmt.Errorf("failed to load breeding: %w", err)
	}
	if breedingEntity == nil {
		return nil, errors.NewNotFoundError("breeding record not found", cmd.BreedingSID)
	}

	mother, father, err := uc.checkParents(ctx, breedingEntity, cmd.BirthDate)
	if err != nil {
		return nil, err
	}

	if err := uc.checkTags(ctx, cmd.Kids); err != nil {
		return nil, err
	}

	var result *RecordBirthResult
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		// Re-read under lock: the pre-transaction check can race with a
		// concurrent delivery against the same record.
		locked, err := uc.breedingRepo.GetBySIDForUpdate(txCtx, cmd.BreedingSID)
		if err != nil {
			return fmt.Errorf("failed to lock breeding: %w", err)
		}
		if locked == nil {
			return errors.NewNotFoundError("breeding record not found", cmd.BreedingSID)
		}
		if locked.IsDelivered() {
			return errors.NewConflictError("delivery already recorded for this breeding", cmd.BreedingSID)
		}
		if !locked.IsPregnant() {
			return errors.NewPreconditionFailedError(
				fmt.Sprintf("breeding must be PREGNANT to record a delivery, is %s", locked.Status()))
		}

		kids := make([]KidResult, 0, len(cmd.Kids))
		for i, kid := range cmd.Kids {
			created, err := uc.recordKid(txCtx, locked, mother, father, cmd.BirthDate, kid, i)
			if err != nil {
				return err
			}
			kids = append(kids, *created)
		}

		if err := locked.MarkDelivered(cmd.BirthDate); err != nil {
			return errors.NewConflictError("delivery already recorded for this breeding", err.Error())
		}
		if err := uc.breedingRepo.Update(txCtx, locked); err != nil {
			return fmt.Errorf("failed to update breeding: %w", err)
		}

		result = &RecordBirthResult{
			BreedingSID: locked.SID(),
			Status:      locked.Status().String(),
			BirthDate:   *locked.BirthDate(),
			Kids:        kids,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.notifier != nil {
		if err := uc.notifier.NotifyDelivery(mother.TagID(), len(result.Kids)); err != nil {
			uc.logger.Warnw("failed to send delivery notification", "breeding_sid", result.BreedingSID, "error", err)
		}
	}

	uc.logger.Infow("birth recorded", "breeding_sid", result.BreedingSID, "kids", len(result.Kids))
	return result, nil
}

// recordKid creates the birth event and the herd animal for one kid
// and links them both ways.
func (uc *RecordBirthUseCase) recordKid(
	ctx context.Context,
	breedingEntity *domainBreeding.Breeding,
	mother *domainGoat.Goat,
	father *domainGoat.Goat,
	birthDate time.Time,
	kid KidInput,
	index int,
) (*KidResult, error) {
	// A whitespace-only tag counts as absent, same as in checkTags.
	tagID := strings.TrimSpace(kid.TagID)
	if tagID == "" {
		tagID = domainBreeding.PlaceholderTag(breedingEntity.SID(), index)
	}

	birth, err := domainBreeding.NewBirth(breedingEntity.ID(), tagID, kid.Gender, birthDate, kid.Outcome, kid.WeightKg, kid.Notes)
	if err != nil {
		return nil, errors.NewValidationError("invalid birth event", err.Error())
	}
	if err := uc.breedingRepo.CreateBirth(ctx, birth); err != nil {
		return nil, fmt.Errorf("failed to create birth event: %w", err)
	}

	var fatherID *uint
	if father != nil {
		fid := father.ID()
		fatherID = &fid
	}
	offspring, err := domainGoat.NewOffspring(tagID, kid.Gender, birthDate, kid.WeightKg, mother, fatherID, breedingEntity.ID())
	if err != nil {
		return nil, errors.NewValidationError("invalid offspring", err.Error())
	}
	offspring.SetBirthRecord(birth.ID())

	if err := uc.goatRepo.Create(ctx, offspring); err != nil {
		if errors.IsDuplicateError(err) {
			return nil, errors.NewConflictError("tag already in use", tagID)
		}
		return nil, fmt.Errorf("failed to create offspring: %w", err)
	}

	birth.LinkGoat(offspring.ID())
	if err := uc.breedingRepo.UpdateBirth(ctx, birth); err != nil {
		return nil, fmt.Errorf("failed to link birth event: %w", err)
	}

	return &KidResult{
		BirthSID: birth.SID(),
		GoatSID:  offspring.SID(),
		TagID:    tagID,
		Outcome:  kid.Outcome.String(),
	}, nil
}

// checkParents verifies the breeding's parents against the delivery
// being recorded, in order: mother must exist, be ACTIVE and FEMALE;
// the sire, when known, must be ACTIVE and MALE; and the birth date
// must leave the mother a plausible maturity window.
func (uc *RecordBirthUseCase) checkParents(ctx context.Context, breedingEntity *domainBreeding.Breeding, birthDate time.Time) (*domainGoat.Goat, *domainGoat.Goat, error) {
	mother, err := uc.goatRepo.GetByID(ctx, breedingEntity.MotherID())
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load mother: %w", err)
	}
	if mother == nil {
		return nil, nil, errors.NewPreconditionFailedError("mother no longer exists in the herd")
	}
	if !mother.IsActive() {
		return nil, nil, errors.NewPreconditionFailedError(
			fmt.Sprintf("mother must be ACTIVE, is %s", mother.Status()))
	}
	if mother.Gender() != domainGoat.GenderFemale {
		return nil, nil, errors.NewPreconditionFailedError("mother must be FEMALE")
	}

	var father *domainGoat.Goat
	if breedingEntity.FatherID() != nil {
		father, err = uc.goatRepo.GetByID(ctx, *breedingEntity.FatherID())
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load father: %w", err)
		}
		if father == nil {
			return nil, nil, errors.NewPreconditionFailedError("father no longer exists in the herd")
		}
		if !father.IsActive() {
			return nil, nil, errors.NewPreconditionFailedError(
				fmt.Sprintf("father must be ACTIVE, is %s", father.Status()))
		}
		if father.Gender() != domainGoat.GenderMale {
			return nil, nil, errors.NewPreconditionFailedError("father must be MALE")
		}
	}

	earliest := mother.BirthDate().AddDate(0, constants.MinimumMotherMaturityMonths, 0)
	if birthDate.Before(earliest) {
		return nil, nil, errors.NewPreconditionFailedError(
			fmt.Sprintf("birth date is less than %d months after the mother's own birth", constants.MinimumMotherMaturityMonths))
	}

	return mother, father, nil
}

// checkTags rejects caller-supplied tags that are already in use or
// duplicated within the litter.
func (uc *RecordBirthUseCase) checkTags(ctx context.Context, kids []KidInput) error {
	seen := make(map[string]bool, len(kids))
	for _, kid := range kids {
		tagID := strings.TrimSpace(kid.TagID)
		if tagID == "" {
			continue
		}
		if seen[tagID] {
			return errors.NewValidationError("duplicate tag within the litter", tagID)
		}
		seen[tagID] = true

		existing, err := uc.goatRepo.GetByTagID(ctx, tagID)
		if err != nil {
			return fmt.Errorf("failed to check tag: %w", err)
		}
		if existing != nil {
			return errors.NewConflictError("tag already in use", tagID)
		}
	}
	return nil
}

func (uc *RecordBirthUseCase) validateCommand(cmd RecordBirthCommand) error {
	if cmd.BreedingSID == "" {
		return errors.NewValidationError("breeding reference is required")
	}
	if cmd.BirthDate.IsZero() {
		return errors.NewValidationError("birth date is required")
	}
	if len(cmd.Kids) == 0 {
		return errors.NewValidationError("at least one kid is required")
	}
	for i, kid := range cmd.Kids {
		if !kid.Gender.IsValid() {
			return errors.NewValidationError(fmt.Sprintf("kid %d: invalid gender", i+1))
		}
		if !kid.Outcome.IsValid() {
			return errors.NewValidationError(fmt.Sprintf("kid %d: invalid outcome", i+1))
		}
		if kid.WeightKg != nil && *kid.WeightKg < 0 {
			return errors.NewValidationError(fmt.Sprintf("kid %d: weight cannot be negative", i+1))
		}
	}
	return nil
}
