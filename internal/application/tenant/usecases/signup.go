package usecases

import (
	"context"
	"fmt"
	"time"

	domainTenant "github.com/marai-app/marai/internal/domain/tenant"
	domainUser "github.com/marai-app/marai/internal/domain/user"
	"github.com/marai-app/marai/internal/shared/constants"
	"github.com/marai-app/marai/internal/shared/db"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
)

// PasswordHasher abstracts credential hashing for the application
// layer.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// WelcomeEmailSender sends the post-signup welcome email. Optional;
// signup succeeds regardless of delivery.
type WelcomeEmailSender interface {
	SendWelcomeEmail(to, tenantName, farmName string) error
}

// SignupCommand contains the data for creating a new tenant account
// with its owner and first farm.
type SignupCommand struct {
	TenantName string
	FarmName   string
	Location   string
	Currency   string
	OwnerEmail string
	OwnerName  string
	Password   string
}

// SignupResult is the created account triple.
type SignupResult struct {
	TenantSID string    `json:"tenant_sid"`
	FarmSID   string    `json:"farm_sid"`
	UserSID   string    `json:"user_sid"`
	CreatedAt time.Time `json:"created_at"`
}

// SignupUseCase creates a tenant, its first farm, and the owner
// account in one transaction. Partial signups never survive.
type SignupUseCase struct {
	tenantRepo  domainTenant.Repository
	farmRepo    domainTenant.FarmRepository
	userRepo    domainUser.Repository
	hasher      PasswordHasher
	txManager   *db.TransactionManager
	emailSender WelcomeEmailSender
	logger      logger.Interface
}

// NewSignupUseCase creates a new signup use case
func NewSignupUseCase(
	tenantRepo domainTenant.Repository,
	farmRepo domainTenant.FarmRepository,
	userRepo domainUser.Repository,
	hasher PasswordHasher,
	txManager *db.TransactionManager,
	logger logger.Interface,
) *SignupUseCase {
	return &SignupUseCase{
		tenantRepo: tenantRepo,
		farmRepo:   farmRepo,
		userRepo:   userRepo,
		hasher:     hasher,
		txManager:  txManager,
		logger:     logger,
	}
}

// SetWelcomeEmailSender wires the optional welcome email hook
func (uc *SignupUseCase) SetWelcomeEmailSender(sender WelcomeEmailSender) {
	uc.emailSender = sender
}

// Execute executes the signup use case
func (uc *SignupUseCase) Execute(ctx context.Context, cmd SignupCommand) (*SignupResult, error) {
	if err := uc.validateCommand(cmd); err != nil {
		return nil, err
	}

	existing, err := uc.userRepo.GetByEmail(ctx, cmd.OwnerEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, errors.NewConflictError("email already registered", cmd.OwnerEmail)
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	var result *SignupResult
	err = uc.txManager.RunInTransaction(ctx, func(txCtx context.Context) error {
		tenantEntity, err := domainTenant.NewTenant(cmd.TenantName, domainTenant.PlanFree)
		if err != nil {
			return errors.NewValidationError("invalid tenant", err.Error())
		}
		if err := uc.tenantRepo.Create(txCtx, tenantEntity); err != nil {
			return fmt.Errorf("failed to create tenant: %w", err)
		}

		farmEntity, err := domainTenant.NewFarm(tenantEntity.ID(), cmd.FarmName, cmd.Location, cmd.Currency)
		if err != nil {
			return errors.NewValidationError("invalid farm", err.Error())
		}
		if err := uc.farmRepo.Create(txCtx, farmEntity); err != nil {
			return fmt.Errorf("failed to create farm: %w", err)
		}

		owner, err := domainUser.NewUser(tenantEntity.ID(), cmd.OwnerEmail, hash, cmd.OwnerName, constants.RoleOwner)
		if err != nil {
			return errors.NewValidationError("invalid owner account", err.Error())
		}
		if err := owner.SwitchFarm(farmEntity.ID()); err != nil {
			return fmt.Errorf("failed to set active farm: %w", err)
		}
		if err := uc.userRepo.Create(txCtx, owner); err != nil {
			if errors.IsDuplicateError(err) {
				return errors.NewConflictError("email already registered", cmd.OwnerEmail)
			}
			return fmt.Errorf("failed to create owner: %w", err)
		}

		result = &SignupResult{
			TenantSID: tenantEntity.SID(),
			FarmSID:   farmEntity.SID(),
			UserSID:   owner.SID(),
			CreatedAt: tenantEntity.CreatedAt(),
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.emailSender != nil {
		if err := uc.emailSender.SendWelcomeEmail(cmd.OwnerEmail, cmd.TenantName, cmd.FarmName); err != nil {
			uc.logger.Warnw("failed to send welcome email", "email", cmd.OwnerEmail, "error", err)
		}
	}

	uc.logger.Infow("tenant signed up", "tenant_sid", result.TenantSID, "farm_sid", result.FarmSID)
	return result, nil
}

func (uc *SignupUseCase) validateCommand(cmd SignupCommand) error {
	if cmd.TenantName == "" {
		return errors.NewValidationError("tenant name is required")
	}
	if cmd.FarmName == "" {
		return errors.NewValidationError("farm name is required")
	}
	if cmd.OwnerEmail == "" {
		return errors.NewValidationError("owner email is required")
	}
	if len(cmd.Password) < 8 {
		return errors.NewValidationError("password must be at least 8 characters")
	}
	return nil
}
