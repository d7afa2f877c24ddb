package db

import (
	"context"

	"gorm.io/gorm"

	"github.com/marai-app/marai/internal/shared/scope"
)

// ScopeClass classifies an entity kind's tenant isolation requirements.
// The classification is fixed per kind and checked at compile time:
// a persistence model only passes through the scoped helpers if it
// implements TenantScoped, which it gets by embedding one of the
// scope structs below.
type ScopeClass int

const (
	// ScopeNone marks platform-level data (tenants themselves, users).
	ScopeNone ScopeClass = iota
	// ScopeTenant marks data isolated per tenant but shared across the
	// tenant's farms (settings, activity log).
	ScopeTenant
	// ScopeTenantFarm marks operational data isolated per tenant+farm
	// pair (goats, breedings, births, health events, sales, feeds).
	ScopeTenantFarm
)

// TenantScoped is implemented by every persistence model subject to
// tenant isolation. Repositories must route every read, create, and
// bulk mutation for such models through ScopedQuery / InjectScope.
type TenantScoped interface {
	ScopeClass() ScopeClass
	ApplyTenant(tenantID, farmID uint)
}

// TenantFarmScope is embedded by models isolated per tenant+farm pair.
type TenantFarmScope struct {
	TenantID uint `gorm:"not null;index:,composite:tenant_farm"`
	FarmID   uint `gorm:"not null;index:,composite:tenant_farm"`
}

func (TenantFarmScope) ScopeClass() ScopeClass { return ScopeTenantFarm }

func (s *TenantFarmScope) ApplyTenant(tenantID, farmID uint) {
	s.TenantID = tenantID
	s.FarmID = farmID
}

// TenantOnlyScope is embedded by models isolated per tenant only.
type TenantOnlyScope struct {
	TenantID uint `gorm:"not null;index"`
}

func (TenantOnlyScope) ScopeClass() ScopeClass { return ScopeTenant }

func (s *TenantOnlyScope) ApplyTenant(tenantID, _ uint) {
	s.TenantID = tenantID
}

// ScopedQuery narrows tx to the scope bound to ctx for the given model.
// The predicate is merged additively: caller-supplied conditions still
// apply, they can only narrow the result further, never widen it past
// the tenant boundary. With no scope bound the query passes through
// untouched; unscoped execution is reserved for trusted out-of-request
// paths (migrations, seeding, platform admin).
func ScopedQuery(ctx context.Context, tx *gorm.DB, m TenantScoped) *gorm.DB {
	sc, ok := scope.FromContext(ctx)
	if !ok {
		return tx
	}
	switch m.ScopeClass() {
	case ScopeTenantFarm:
		return tx.Where("tenant_id = ? AND farm_id = ?", sc.TenantID, sc.FarmID)
	case ScopeTenant:
		return tx.Where("tenant_id = ?", sc.TenantID)
	default:
		return tx
	}
}

// InjectScope overwrites the model's tenant columns from the scope bound
// to ctx before a create. Caller-supplied values are always discarded so
// a forged payload cannot write into another tenant.
func InjectScope(ctx context.Context, m TenantScoped) {
	sc, ok := scope.FromContext(ctx)
	if !ok {
		return
	}
	switch m.ScopeClass() {
	case ScopeTenantFarm:
		m.ApplyTenant(sc.TenantID, sc.FarmID)
	case ScopeTenant:
		m.ApplyTenant(sc.TenantID, 0)
	}
}
