package usecases

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainTenant "github.com/marai-app/marai/internal/domain/tenant"
	"github.com/marai-app/marai/internal/shared/errors"
	"github.com/marai-app/marai/internal/shared/logger"
)

func testLogger() logger.Interface {
	return logger.NewLoggerWithSlog(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

type mockTenantRepo struct {
	createFn   func(ctx context.Context, t *domainTenant.Tenant) error
	getByIDFn  func(ctx context.Context, id uint) (*domainTenant.Tenant, error)
	getBySIDFn func(ctx context.Context, sid string) (*domainTenant.Tenant, error)
	updateFn   func(ctx context.Context, t *domainTenant.Tenant) error
	listFn     func(ctx context.Context) ([]*domainTenant.Tenant, error)
}

func (m *mockTenantRepo) Create(ctx context.Context, t *domainTenant.Tenant) error {
	if m.createFn != nil {
		return m.createFn(ctx, t)
	}
	return nil
}

func (m *mockTenantRepo) GetByID(ctx context.Context, id uint) (*domainTenant.Tenant, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockTenantRepo) GetBySID(ctx context.Context, sid string) (*domainTenant.Tenant, error) {
	if m.getBySIDFn != nil {
		return m.getBySIDFn(ctx, sid)
	}
	return nil, nil
}

func (m *mockTenantRepo) Update(ctx context.Context, t *domainTenant.Tenant) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, t)
	}
	return nil
}

func (m *mockTenantRepo) List(ctx context.Context) ([]*domainTenant.Tenant, error) {
	if m.listFn != nil {
		return m.listFn(ctx)
	}
	return nil, nil
}

type mockInvalidator struct {
	invalidated []uint
	err         error
}

func (m *mockInvalidator) Invalidate(_ context.Context, tenantID uint) error {
	m.invalidated = append(m.invalidated, tenantID)
	return m.err
}

func activeTenant(t *testing.T) *domainTenant.Tenant {
	t.Helper()
	tn, err := domainTenant.NewTenant("Hillside Goats", domainTenant.PlanFree)
	require.NoError(t, err)
	require.NoError(t, tn.SetID(3))
	tn.SetSID("tnt_3")
	return tn
}

func TestSetTenantStatusUseCase_Execute(t *testing.T) {
	t.Run("deactivates and invalidates cache", func(t *testing.T) {
		tn := activeTenant(t)
		var updated *domainTenant.Tenant
		repo := &mockTenantRepo{
			getBySIDFn: func(_ context.Context, sid string) (*domainTenant.Tenant, error) {
				assert.Equal(t, "tnt_3", sid)
				return tn, nil
			},
			updateFn: func(_ context.Context, t *domainTenant.Tenant) error {
				updated = t
				return nil
			},
		}
		inv := &mockInvalidator{}

		uc := NewSetTenantStatusUseCase(repo, testLogger())
		uc.SetStatusInvalidator(inv)

		result, err := uc.Execute(context.Background(), "tnt_3", false)
		require.NoError(t, err)

		assert.False(t, result.Active)
		require.NotNil(t, updated)
		assert.False(t, updated.IsActive())
		assert.Equal(t, []uint{3}, inv.invalidated)
	})

	t.Run("reactivates", func(t *testing.T) {
		tn := activeTenant(t)
		tn.Deactivate()
		repo := &mockTenantRepo{
			getBySIDFn: func(_ context.Context, sid string) (*domainTenant.Tenant, error) {
				return tn, nil
			},
		}

		uc := NewSetTenantStatusUseCase(repo, testLogger())
		result, err := uc.Execute(context.Background(), "tnt_3", true)
		require.NoError(t, err)
		assert.True(t, result.Active)
	})

	t.Run("invalidator failure does not fail the mutation", func(t *testing.T) {
		repo := &mockTenantRepo{
			getBySIDFn: func(_ context.Context, sid string) (*domainTenant.Tenant, error) {
				return activeTenant(t), nil
			},
		}
		inv := &mockInvalidator{err: fmt.Errorf("redis down")}

		uc := NewSetTenantStatusUseCase(repo, testLogger())
		uc.SetStatusInvalidator(inv)

		_, err := uc.Execute(context.Background(), "tnt_3", false)
		assert.NoError(t, err)
	})

	t.Run("unknown tenant returns not found", func(t *testing.T) {
		uc := NewSetTenantStatusUseCase(&mockTenantRepo{}, testLogger())
		_, err := uc.Execute(context.Background(), "tnt_missing", false)
		require.Error(t, err)
		assert.True(t, errors.IsNotFoundError(err))
	})
}

func TestChangePlanUseCase_Execute(t *testing.T) {
	t.Run("changes plan and resets limits", func(t *testing.T) {
		tn := activeTenant(t)
		repo := &mockTenantRepo{
			getBySIDFn: func(_ context.Context, sid string) (*domainTenant.Tenant, error) {
				return tn, nil
			},
		}
		inv := &mockInvalidator{}

		uc := NewChangePlanUseCase(repo, testLogger())
		uc.SetStatusInvalidator(inv)

		result, err := uc.Execute(context.Background(), "tnt_3", domainTenant.PlanStandard)
		require.NoError(t, err)

		assert.Equal(t, "STANDARD", result.Plan)
		assert.Equal(t, domainTenant.DefaultLimits(domainTenant.PlanStandard), result.Limits)
		assert.Equal(t, []uint{3}, inv.invalidated)
	})

	t.Run("rejects unknown plan", func(t *testing.T) {
		repo := &mockTenantRepo{
			getBySIDFn: func(_ context.Context, sid string) (*domainTenant.Tenant, error) {
				return activeTenant(t), nil
			},
		}

		uc := NewChangePlanUseCase(repo, testLogger())
		_, err := uc.Execute(context.Background(), "tnt_3", domainTenant.Plan("PLATINUM"))
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	})
}
