// Package usecases holds the authentication flows.
package usecases

import (
	"context"
	"fmt"
	"strings"

	tenantUC "github.com/marai-app/marai/internal/application/tenant/usecases"
	domainTenant "github.com/marai-app/marai/internal/domain/tenant"
	domainUser "github.com/marai-app/marai/internal/domain/user"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
)

// LoginCommand contains the login credentials.
type LoginCommand struct {
	Email    string
	Password string
}

// LoginResult carries the authenticated session.
type LoginResult struct {
	UserSID      string `json:"user_sid"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	TenantSID    string `json:"tenant_sid"`
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// LoginUseCase authenticates a user and issues a token pair bound to
// their tenant and active farm. Deactivated tenants fail here with a
// distinct error so the UI can route to support.
type LoginUseCase struct {
	userRepo   domainUser.Repository
	tenantRepo domainTenant.Repository
	hasher     tenantUC.PasswordHasher
	issuer     tenantUC.TokenIssuer
	logger     logger.Interface
}

// NewLoginUseCase creates a new login use case
func NewLoginUseCase(
	userRepo domainUser.Repository,
	tenantRepo domainTenant.Repository,
	hasher tenantUC.PasswordHasher,
	issuer tenantUC.TokenIssuer,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:   userRepo,
		tenantRepo: tenantRepo,
		hasher:     hasher,
		issuer:     issuer,
		logger:     logger,
	}
}

// Execute executes the login use case
func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewValidationError("email and password are required")
	}

	userEntity, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	// Same error for unknown email and wrong password so the endpoint
	// does not leak which emails exist.
	if userEntity == nil || !userEntity.IsActive() {
		return nil, errors.NewUnauthenticatedError("invalid credentials")
	}
	if err := uc.hasher.Compare(userEntity.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "user_sid", userEntity.SID())
		return nil, errors.NewUnauthenticatedError("invalid credentials")
	}

	tenantEntity, err := uc.tenantRepo.GetByID(ctx, userEntity.TenantID())
	if err != nil {
		return nil, fmt.Errorf("failed to load tenant: %w", err)
	}
	if tenantEntity == nil {
		return nil, errors.NewUnauthenticatedError("invalid credentials")
	}
	if !tenantEntity.IsActive() {
		return nil, errors.NewTenantDeactivatedError("account is deactivated, contact support")
	}

	userEntity.RecordLogin()
	if err := uc.userRepo.Update(ctx, userEntity); err != nil {
		return nil, fmt.Errorf("failed to record login: %w", err)
	}

	accessToken, err := uc.issuer.IssueAccessToken(userEntity)
	if err != nil {
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}
	refreshToken, err := uc.issuer.IssueRefreshToken(userEntity)
	if err != nil {
		return nil, fmt.Errorf("failed to issue refresh token: %w", err)
	}

	uc.logger.Infow("user logged in", "user_sid", userEntity.SID())
	return &LoginResult{
		UserSID:      userEntity.SID(),
		Name:         userEntity.Name(),
		Role:         userEntity.Role(),
		TenantSID:    tenantEntity.SID(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
