// Package usecases holds the veterinary record flows.
package usecases

import (
	"context"
	"fmt"
	"time"

	domainGoat "github.com/marai-app/marai/internal/domain/goat"
	domainHealth "github.com/marai-app/marai/internal/domain/health"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
)

// RecordHealthEventCommand contains the data for one veterinary
// record.
type RecordHealthEventCommand struct {
	GoatSID     string
	EventType   domainHealth.EventType
	EventDate   time.Time
	Description string
	VetName     string
	Cost        *float64
}

// HealthEventResult is the API view of a health event.
type HealthEventResult struct {
	SID         string    `json:"sid"`
	GoatSID     string    `json:"goat_sid"`
	EventType   string    `json:"event_type"`
	EventDate   time.Time `json:"event_date"`
	Description string    `json:"description"`
	VetName     string    `json:"vet_name"`
	Cost        *float64  `json:"cost,omitempty"`
}

// RecordHealthEventUseCase attaches a veterinary event to an animal.
type RecordHealthEventUseCase struct {
	healthRepo domainHealth.Repository
	goatRepo   domainGoat.Repository
	logger     logger.Interface
}

// NewRecordHealthEventUseCase creates a new record health event use
// case
func NewRecordHealthEventUseCase(
	healthRepo domainHealth.Repository,
	goatRepo domainGoat.Repository,
	logger logger.Interface,
) *RecordHealthEventUseCase {
	return &RecordHealthEventUseCase{
		healthRepo: healthRepo,
		goatRepo:   goatRepo,
		logger:     logger,
	}
}

// Execute executes the record health event use case
func (uc *RecordHealthEventUseCase) Execute(ctx context.Context, cmd RecordHealthEventCommand) (*HealthEventResult, error) {
	if cmd.GoatSID == "" {
		return nil, errors.NewValidationError("goat reference is required")
	}

	goatEntity, err := uc.goatRepo.GetBySID(ctx, cmd.GoatSID)
	if err != nil {
		return nil, fmt.Errorf("failed to load goat: %w", err)
	}
	if goatEntity == nil {
		return nil, errors.NewNotFoundError("goat not found", cmd.GoatSID)
	}

	entity, err := domainHealth.NewEvent(goatEntity.ID(), cmd.EventType, cmd.EventDate, cmd.Description, cmd.VetName, cmd.Cost)
	if err != nil {
		return nil, errors.NewValidationError("invalid health event", err.Error())
	}

	if err := uc.healthRepo.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to save health event: %w", err)
	}

	// Quarantine events take the animal out of the active herd until a
	// later status change clears it.
	if cmd.EventType == domainHealth.EventQuarantine && goatEntity.IsActive() {
		if err := goatEntity.ChangeStatus(domainGoat.StatusQuarantine); err != nil {
			return nil, errors.NewValidationError("cannot quarantine goat", err.Error())
		}
		if err := uc.goatRepo.Update(ctx, goatEntity); err != nil {
			return nil, fmt.Errorf("failed to update goat status: %w", err)
		}
	}

	uc.logger.Infow("health event recorded", "sid", entity.SID(), "goat_sid", cmd.GoatSID)
	return &HealthEventResult{
		SID:         entity.SID(),
		GoatSID:     cmd.GoatSID,
		EventType:   entity.Type().String(),
		EventDate:   entity.EventDate(),
		Description: entity.Description(),
		VetName:     entity.VetName(),
		Cost:        entity.Cost(),
	}, nil
}

// DeleteHealthEventUseCase removes a health event.
type DeleteHealthEventUseCase struct {
	healthRepo domainHealth.Repository
	logger     logger.Interface
}

// NewDeleteHealthEventUseCase creates a new delete health event use
// case
func NewDeleteHealthEventUseCase(healthRepo domainHealth.Repository, logger logger.Interface) *DeleteHealthEventUseCase {
	return &DeleteHealthEventUseCase{healthRepo: healthRepo, logger: logger}
}

// Execute executes the delete health event use case
func (uc *DeleteHealthEventUseCase) Execute(ctx context.Context, sid string) error {
	entity, err := uc.healthRepo.GetBySID(ctx, sid)
	if err != nil {
		return fmt.Errorf("failed to load health event: %w", err)
	}
	if entity == nil {
		return errors.NewNotFoundError("health event not found", sid)
	}

	if err := uc.healthRepo.Delete(ctx, entity.ID()); err != nil {
		return fmt.Errorf("failed to delete health event: %w", err)
	}

	uc.logger.Infow("health event deleted", "sid", sid)
	return nil
}

// ListHealthEventsUseCase retrieves a filtered page of health events.
type ListHealthEventsUseCase struct {
	healthRepo domainHealth.Repository
	logger     logger.Interface
}

// NewListHealthEventsUseCase creates a new list health events use case
func NewListHealthEventsUseCase(healthRepo domainHealth.Repository, logger logger.Interface) *ListHealthEventsUseCase {
	return &ListHealthEventsUseCase{healthRepo: healthRepo, logger: logger}
}

// Execute executes the list health events use case
func (uc *ListHealthEventsUseCase) Execute(ctx context.Context, filter domainHealth.ListFilter) ([]HealthEventResult, int64, error) {
	events, total, err := uc.healthRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list health events: %w", err)
	}

	results := make([]HealthEventResult, 0, len(events))
	for _, e := range events {
		results = append(results, HealthEventResult{
			SID:         e.SID(),
			EventType:   e.Type().String(),
			EventDate:   e.EventDate(),
			Description: e.Description(),
			VetName:     e.VetName(),
			Cost:        e.Cost(),
		})
	}
	return results, total, nil
}
