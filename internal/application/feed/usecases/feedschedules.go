// Package usecases holds the feeding schedule flows.
package usecases

import (
	"context"
	"fmt"

	domainFeed "github.com/marai-app/marai/internal/domain/feed"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
)

// FeedScheduleCommand contains the data for creating or replacing a
// feeding schedule.
type FeedScheduleCommand struct {
	Name        string
	FeedType    string
	TimesPerDay int
	AmountKg    *float64
	Notes       string
}

// FeedScheduleResult is the API view of a feeding schedule.
type FeedScheduleResult struct {
	SID         string   `json:"sid"`
	Name        string   `json:"name"`
	FeedType    string   `json:"feed_type"`
	TimesPerDay int      `json:"times_per_day"`
	AmountKg    *float64 `json:"amount_kg,omitempty"`
	Notes       string   `json:"notes"`
}

func toFeedScheduleResult(s *domainFeed.Schedule) *FeedScheduleResult {
	return &FeedScheduleResult{
		SID:         s.SID(),
		Name:        s.Name(),
		FeedType:    s.FeedType(),
		TimesPerDay: s.TimesPerDay(),
		AmountKg:    s.AmountKg(),
		Notes:       s.Notes(),
	}
}

// CreateFeedScheduleUseCase creates a feeding schedule for the current
// farm.
type CreateFeedScheduleUseCase struct {
	feedRepo domainFeed.Repository
	logger   logger.Interface
}

// NewCreateFeedScheduleUseCase creates a new create feed schedule use
// case
func NewCreateFeedScheduleUseCase(feedRepo domainFeed.Repository, logger logger.Interface) *CreateFeedScheduleUseCase {
	return &CreateFeedScheduleUseCase{feedRepo: feedRepo, logger: logger}
}

// Execute executes the create feed schedule use case
func (uc *CreateFeedScheduleUseCase) Execute(ctx context.Context, cmd FeedScheduleCommand) (*FeedScheduleResult, error) {
	entity, err := domainFeed.NewSchedule(cmd.Name, cmd.FeedType, cmd.TimesPerDay, cmd.AmountKg, cmd.Notes)
	if err != nil {
		return nil, errors.NewValidationError("invalid feed schedule", err.Error())
	}

	if err := uc.feedRepo.Create(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to save feed schedule: %w", err)
	}

	uc.logger.Infow("feed schedule created", "sid", entity.SID(), "name", entity.Name())
	return toFeedScheduleResult(entity), nil
}

// UpdateFeedScheduleUseCase replaces an existing feeding schedule.
type UpdateFeedScheduleUseCase struct {
	feedRepo domainFeed.Repository
	logger   logger.Interface
}

// NewUpdateFeedScheduleUseCase creates a new update feed schedule use
// case
func NewUpdateFeedScheduleUseCase(feedRepo domainFeed.Repository, logger logger.Interface) *UpdateFeedScheduleUseCase {
	return &UpdateFeedScheduleUseCase{feedRepo: feedRepo, logger: logger}
}

// Execute executes the update feed schedule use case
func (uc *UpdateFeedScheduleUseCase) Execute(ctx context.Context, sid string, cmd FeedScheduleCommand) (*FeedScheduleResult, error) {
	if sid == "" {
		return nil, errors.NewValidationError("schedule reference is required")
	}

	entity, err := uc.feedRepo.GetBySID(ctx, sid)
	if err != nil {
		return nil, fmt.Errorf("failed to load feed schedule: %w", err)
	}
	if entity == nil {
		return nil, errors.NewNotFoundError("feed schedule not found", sid)
	}

	if err := entity.Update(cmd.Name, cmd.FeedType, cmd.TimesPerDay, cmd.AmountKg, cmd.Notes); err != nil {
		return nil, errors.NewValidationError("invalid feed schedule", err.Error())
	}
	if err := uc.feedRepo.Update(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to update feed schedule: %w", err)
	}

	uc.logger.Infow("feed schedule updated", "sid", sid)
	return toFeedScheduleResult(entity), nil
}

// DeleteFeedScheduleUseCase removes a feeding schedule.
type DeleteFeedScheduleUseCase struct {
	feedRepo domainFeed.Repository
	logger   logger.Interface
}

// NewDeleteFeedScheduleUseCase creates a new delete feed schedule use
// case
func NewDeleteFeedScheduleUseCase(feedRepo domainFeed.Repository, logger logger.Interface) *DeleteFeedScheduleUseCase {
	return &DeleteFeedScheduleUseCase{feedRepo: feedRepo, logger: logger}
}

// Execute executes the delete feed schedule use case
func (uc *DeleteFeedScheduleUseCase) Execute(ctx context.Context, sid string) error {
	entity, err := uc.feedRepo.GetBySID(ctx, sid)
	if err != nil {
		return fmt.Errorf("failed to load feed schedule: %w", err)
	}
	if entity == nil {
		return errors.NewNotFoundError("feed schedule not found", sid)
	}

	if err := uc.feedRepo.Delete(ctx, entity.ID()); err != nil {
		return fmt.Errorf("failed to delete feed schedule: %w", err)
	}

	uc.logger.Infow("feed schedule deleted", "sid", sid)
	return nil
}

// ListFeedSchedulesUseCase retrieves all schedules of the current farm.
type ListFeedSchedulesUseCase struct {
	feedRepo domainFeed.Repository
	logger   logger.Interface
}

// NewListFeedSchedulesUseCase creates a new list feed schedules use
// case
func NewListFeedSchedulesUseCase(feedRepo domainFeed.Repository, logger logger.Interface) *ListFeedSchedulesUseCase {
	return &ListFeedSchedulesUseCase{feedRepo: feedRepo, logger: logger}
}

// Execute executes the list feed schedules use case
func (uc *ListFeedSchedulesUseCase) Execute(ctx context.Context) ([]FeedScheduleResult, error) {
	schedules, err := uc.feedRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list feed schedules: %w", err)
	}

	results := make([]FeedScheduleResult, 0, len(schedules))
	for _, s := range schedules {
		results = append(results, *toFeedScheduleResult(s))
	}
	return results, nil
}
