// Package constants defines shared context keys and limits.
package constants

// Gin context keys set by the auth middleware.
const (
	ContextKeyUserID   = "user_id"
	ContextKeyUserSID  = "user_sid"
	ContextKeyUserRole = "user_role"
	ContextKeyTenantID = "tenant_id"
	ContextKeyFarmID   = "farm_id"
)

// Roles recognized by the permission layer. SuperAdmin bypasses the
// tenant-deactivation gate for platform support access.
const (
	RoleSuperAdmin = "super_admin"
	RoleOwner      = "owner"
	RoleManager    = "manager"
	RoleWorker     = "worker"
)

// Deployment environments.
const (
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"
)

// MinimumMotherMaturityMonths is the sanity window between a mother's
// own birth date and the earliest delivery date accepted for her. A
// data-entry guard, not a veterinary claim.
const MinimumMotherMaturityMonths = 6
