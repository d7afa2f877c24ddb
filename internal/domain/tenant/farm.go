package tenant

import (
	"fmt"
	"strings"
	"time"

	"github.com/marai-app/marai/internal/shared/biztime"
)

// Farm is a physical location under a tenant. Herd data is scoped to
// tenant and farm together; users switch farms explicitly.
type Farm struct {
	id        uint
	sid       string
	tenantID  uint
	name      string
	location  string
	currency  string
	createdAt time.Time
	updatedAt time.Time
}

// NewFarm creates a farm under a tenant. Currency is an ISO 4217 code
// used for sale records on this farm.
func NewFarm(tenantID uint, name, location, currency string) (*Farm, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant is required")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("farm name is required")
	}
	currency = strings.ToUpper(strings.TrimSpace(currency))
	if len(currency) != 3 {
		return nil, fmt.Errorf("currency must be a 3-letter ISO code")
	}

	now := biztime.NowUTC()
	return &Farm{
		tenantID:  tenantID,
		name:      name,
		location:  strings.TrimSpace(location),
		currency:  currency,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructFarm rebuilds a farm from persistence.
func ReconstructFarm(id uint, sid string, tenantID uint, name, location, currency string, createdAt, updatedAt time.Time) (*Farm, error) {
	if id == 0 {
		return nil, fmt.Errorf("farm ID cannot be zero")
	}
	return &Farm{
		id:        id,
		sid:       sid,
		tenantID:  tenantID,
		name:      name,
		location:  location,
		currency:  currency,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

func (f *Farm) ID() uint             { return f.id }
func (f *Farm) SID() string          { return f.sid }
func (f *Farm) TenantID() uint       { return f.tenantID }
func (f *Farm) Name() string         { return f.name }
func (f *Farm) Location() string     { return f.location }
func (f *Farm) Currency() string     { return f.currency }
func (f *Farm) CreatedAt() time.Time { return f.createdAt }
func (f *Farm) UpdatedAt() time.Time { return f.updatedAt }

func (f *Farm) SetID(id uint) error {
	if f.id != 0 {
		return fmt.Errorf("farm ID already set")
	}
	f.id = id
	return nil
}

func (f *Farm) SetSID(sid string) {
	if f.sid == "" {
		f.sid = sid
	}
}

// Update replaces the farm's editable fields.
func (f *Farm) Update(name, location string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("farm name is required")
	}
	f.name = name
	f.location = strings.TrimSpace(location)
	f.updatedAt = biztime.NowUTC()
	return nil
}
