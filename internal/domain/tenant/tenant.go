// Package tenant holds the account-level entities: the tenant itself,
// its farms, and per-farm settings.
package tenant

import (
	"fmt"
	"strings"
	"time"

	"github.com/marai-app/marai/internal/shared/biztime"
)

// Plan is a tenant's subscription plan.
type Plan string

const (
	PlanFree       Plan = "FREE"
	PlanStandard   Plan = "STANDARD"
	PlanEnterprise Plan = "ENTERPRISE"
)

func (p Plan) IsValid() bool {
	switch p {
	case PlanFree, PlanStandard, PlanEnterprise:
		return true
	}
	return false
}

func (p Plan) String() string { return string(p) }

// PlanLimits are the per-plan resource caps, stored as JSON on the
// tenant row so support can adjust them per account.
type PlanLimits struct {
	MaxFarms   int `json:"max_farms"`
	MaxAnimals int `json:"max_animals"`
	MaxUsers   int `json:"max_users"`
}

// DefaultLimits returns the stock limits for a plan.
func DefaultLimits(p Plan) PlanLimits {
	switch p {
	case PlanStandard:
		return PlanLimits{MaxFarms: 5, MaxAnimals: 2000, MaxUsers: 20}
	case PlanEnterprise:
		return PlanLimits{MaxFarms: 50, MaxAnimals: 100000, MaxUsers: 500}
	default:
		return PlanLimits{MaxFarms: 1, MaxAnimals: 100, MaxUsers: 3}
	}
}

// Tenant is a customer account. All farm data hangs off a tenant; a
// deactivated tenant keeps its data but loses access.
type Tenant struct {
	id        uint
	sid       string
	name      string
	plan      Plan
	limits    PlanLimits
	active    bool
	createdAt time.Time
	updatedAt time.Time
}

// NewTenant creates an active tenant on the given plan with stock
// limits.
func NewTenant(name string, plan Plan) (*Tenant, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("tenant name is required")
	}
	if !plan.IsValid() {
		return nil, fmt.Errorf("invalid plan: %s", plan)
	}

	now := biztime.NowUTC()
	return &Tenant{
		name:      name,
		plan:      plan,
		limits:    DefaultLimits(plan),
		active:    true,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructTenant rebuilds a tenant from persistence.
func ReconstructTenant(id uint, sid, name string, plan Plan, limits PlanLimits, active bool, createdAt, updatedAt time.Time) (*Tenant, error) {
	if id == 0 {
		return nil, fmt.Errorf("tenant ID cannot be zero")
	}
	if !plan.IsValid() {
		return nil, fmt.Errorf("invalid plan: %s", plan)
	}
	return &Tenant{
		id:        id,
		sid:       sid,
		name:      name,
		plan:      plan,
		limits:    limits,
		active:    active,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (t *Tenant) ID() uint             { return t.id }
func (t *Tenant) SID() string          { return t.sid }
func (t *Tenant) Name() string         { return t.name }
func (t *Tenant) Plan() Plan           { return t.plan }
func (t *Tenant) Limits() PlanLimits   { return t.limits }
func (t *Tenant) IsActive() bool       { return t.active }
func (t *Tenant) CreatedAt() time.Time { return t.createdAt }
func (t *Tenant) UpdatedAt() time.Time { return t.updatedAt }

func (t *Tenant) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("tenant ID already set")
	}
	t.id = id
	return nil
}

func (t *Tenant) SetSID(sid string) {
	if t.sid == "" {
		t.sid = sid
	}
}

// Rename updates the tenant display name.
func (t *Tenant) Rename(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("tenant name is required")
	}
	t.name = name
	t.updatedAt = biztime.NowUTC()
	return nil
}

// ChangePlan moves the tenant to a new plan and resets its limits to
// the plan defaults.
func (t *Tenant) ChangePlan(plan Plan) error {
	if !plan.IsValid() {
		return fmt.Errorf("invalid plan: %s", plan)
	}
	t.plan = plan
	t.limits = DefaultLimits(plan)
	t.updatedAt = biztime.NowUTC()
	return nil
}

// Deactivate suspends the tenant. Data is kept; requests are rejected
// at the middleware gate.
func (t *Tenant) Deactivate() {
	t.active = false
	t.updatedAt = biztime.NowUTC()
}

// Activate restores a suspended tenant.
func (t *Tenant) Activate() {
	t.active = true
	t.updatedAt = biztime.NowUTC()
}
