package usecases

import (
	"context"
	"fmt"

	domainTenant "github.com/marai-app/marai/internal/domain/tenant"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
)

// SettingResult is the API view of one setting entry.
type SettingResult struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// UpsertSettingUseCase creates or replaces a per-farm setting.
type UpsertSettingUseCase struct {
	settingRepo domainTenant.SettingRepository
	logger      logger.Interface
}

// NewUpsertSettingUseCase creates a new upsert setting use case
func NewUpsertSettingUseCase(settingRepo domainTenant.SettingRepository, logger logger.Interface) *UpsertSettingUseCase {
	return &UpsertSettingUseCase{settingRepo: settingRepo, logger: logger}
}

// Execute executes the upsert setting use case
func (uc *UpsertSettingUseCase) Execute(ctx context.Context, key, value string) (*SettingResult, error) {
	entity, err := domainTenant.NewSetting(key, value)
	if err != nil {
		return nil, errors.NewValidationError("invalid setting", err.Error())
	}

	if err := uc.settingRepo.Upsert(ctx, entity); err != nil {
		return nil, fmt.Errorf("failed to save setting: %w", err)
	}

	uc.logger.Infow("setting saved", "key", entity.Key())
	return &SettingResult{Key: entity.Key(), Value: entity.Value()}, nil
}

// ListSettingsUseCase retrieves all settings of the current farm.
type ListSettingsUseCase struct {
	settingRepo domainTenant.SettingRepository
	logger      logger.Interface
}

// NewListSettingsUseCase creates a new list settings use case
func NewListSettingsUseCase(settingRepo domainTenant.SettingRepository, logger logger.Interface) *ListSettingsUseCase {
	return &ListSettingsUseCase{settingRepo: settingRepo, logger: logger}
}

// Execute executes the list settings use case
func (uc *ListSettingsUseCase) Execute(ctx context.Context) ([]SettingResult, error) {
	settings, err := uc.settingRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list settings: %w", err)
	}

	results := make([]SettingResult, 0, len(settings))
	for _, s := range settings {
		results = append(results, SettingResult{Key: s.Key(), Value: s.Value()})
	}
	return results, nil
}
