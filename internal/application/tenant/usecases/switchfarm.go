package usecases

import (
	"context"
	"fmt"

	domainTenant "github.com/marai-app/marai/internal/domain/tenant"
	domainUser "github.com/marai-app/marai/internal/domain/user"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
)

// TokenIssuer issues access tokens carrying the user's tenant and
// active farm.
type TokenIssuer interface {
	IssueAccessToken(u *domainUser.User) (string, error)
	IssueRefreshToken(u *domainUser.User) (string, error)
}

// SwitchFarmCommand contains the data for switching a user's active
// farm.
type SwitchFarmCommand struct {
	UserID  uint
	FarmSID string
}

// SwitchFarmResult carries the reissued token pair. The farm binding
// lives in the token, so switching farms means switching tokens.
type SwitchFarmResult struct {
	Farm         FarmResult `json:"farm"`
	AccessToken  string     `json:"access_token"`
	RefreshToken string     `json:"refresh_token"`
}

// SwitchFarmUseCase changes the caller's active farm and reissues
// tokens scoped to it. The target farm must belong to the caller's
// tenant; the scoped lookup guarantees that.
type SwitchFarmUseCase struct {
	farmRepo domainTenant.FarmRepository
	userRepo domainUser.Repository
	issuer   TokenIssuer
	logger   logger.Interface
}

// NewSwitchFarmUseCase creates a new switch farm use case
func NewSwitchFarmUseCase(
	farmRepo domainTenant.FarmRepository,
	userRepo domainUser.Repository,
	issuer TokenIssuer,
	logger logger.Interface,
) *SwitchFarmUseCase {
	return &SwitchFarmUseCase{
		farmRepo: farmRepo,
		userRepo: userRepo,
		issuer:   issuer,
		logger:   logger,
	}
}

// Execute executes the switch farm use case
func (uc *SwitchFarmUseCase) Execute(ctx context.Context, cmd SwitchFarmCommand) (*SwitchFarmResult, error) {
	if cmd.FarmSID == "" {
		return nil, errors.NewValidationError("farm reference is required")
	}

	farm, err := uc.farmRepo.GetBySID(ctx, cmd.FarmSID)
	if err != nil {
		return nil, fmt.Errorf("failed to load farm: %w", err)
	}
	if farm == nil {
		return nil, errors.NewNotFoundError("farm not found", cmd.FarmSID)
	}

	userEntity, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	if userEntity == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if err := userEntity.SwitchFarm(farm.ID()); err != nil {
		return nil, errors.NewValidationError("cannot switch farm", err.Error())
	}
	if err := uc.userRepo.Update(ctx, userEntity); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	accessToken, err := uc.issuer.IssueAccessToken(userEntity)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refreshToken, err := uc.issuer.IssueRefreshToken(userEntity)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	uc.logger.Infow("user switched farm", "user_id", cmd.UserID, "farm_sid", cmd.FarmSID)
	return &SwitchFarmResult{
		Farm:         *toFarmResult(farm),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
