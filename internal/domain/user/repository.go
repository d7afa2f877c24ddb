package user

import "context"

// Repository defines data access for user accounts. Like tenants, user
// rows sit above the farm-scoping boundary: lookups by email serve the
// login path before any scope exists, tenant-scoped listings serve
// staff administration.
type Repository interface {
	// Create persists a new user
	Create(ctx context.Context, u *User) error

	// GetByID retrieves a user by internal ID
	GetByID(ctx context.Context, id uint) (*User, error)

	// GetBySID retrieves a user by external SID
	GetBySID(ctx context.Context, sid string) (*User, error)

	// GetByEmail retrieves a user by email across all tenants, used by
	// the login path
	GetByEmail(ctx context.Context, email string) (*User, error)

	// Update persists changes to an existing user
	Update(ctx context.Context, u *User) error

	// Delete removes a user by internal ID
	Delete(ctx context.Context, id uint) error

	// ListByTenant retrieves a tenant's staff accounts
	ListByTenant(ctx context.Context, tenantID uint) ([]*User, error)

	// CountByTenant returns the number of accounts under a tenant,
	// used for plan limit checks
	CountByTenant(ctx context.Context, tenantID uint) (int64, error)
}
