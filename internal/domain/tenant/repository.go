package tenant

import "context"

// Repository defines data access for tenants. Tenant rows sit above
// the scoping boundary: lookups here are by explicit identifier, used
// by the auth middleware and platform administration.
type Repository interface {
	// Create persists a new tenant
	Create(ctx context.Context, t *Tenant) error

	// GetByID retrieves a tenant by internal ID
	GetByID(ctx context.Context, id uint) (*Tenant, error)

	// GetBySID retrieves a tenant by external SID
	GetBySID(ctx context.Context, sid string) (*Tenant, error)

	// Update persists changes to an existing tenant
	Update(ctx context.Context, t *Tenant) error

	// List retrieves all tenants (platform administration only)
	List(ctx context.Context) ([]*Tenant, error)
}

// FarmRepository defines data access for farms. Farm rows are
// tenant-scoped: reads return only the calling tenant's farms.
type FarmRepository interface {
	// Create persists a new farm
	Create(ctx context.Context, f *Farm) error

	// GetByID retrieves a farm by internal ID
	GetByID(ctx context.Context, id uint) (*Farm, error)

	// GetBySID retrieves a farm by external SID
	GetBySID(ctx context.Context, sid string) (*Farm, error)

	// Update persists changes to an existing farm
	Update(ctx context.Context, f *Farm) error

	// Delete removes a farm by internal ID
	Delete(ctx context.Context, id uint) error

	// List retrieves the tenant's farms
	List(ctx context.Context) ([]*Farm, error)

	// Count returns the number of farms in scope, used for plan limit
	// checks
	Count(ctx context.Context) (int64, error)
}

// SettingRepository defines data access for per-farm settings.
type SettingRepository interface {
	// Get retrieves a setting by key, nil when absent
	Get(ctx context.Context, key string) (*Setting, error)

	// Upsert creates or replaces a setting by key
	Upsert(ctx context.Context, s *Setting) error

	// List retrieves all settings in scope
	List(ctx context.Context) ([]*Setting, error)

	// Delete removes a setting by key
	Delete(ctx context.Context, key string) error
}
