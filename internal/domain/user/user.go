// Package user holds farm staff accounts and their authentication
// state.
package user

import (
	"fmt"
	"strings"
	"time"

	"github.com/marai-app/marai/internal/shared/biztime"
	"github.com/marai-app/marai/internal/shared/constants"
)

// User is a staff account. Users belong to one tenant and carry an
// active farm selection that the auth layer stamps into their tokens.
type User struct {
	id           uint
	sid          string
	tenantID     uint
	email        string
	passwordHash string
	name         string
	role         string
	activeFarmID *uint
	active       bool
	lastLoginAt  *time.Time
	createdAt    time.Time
	updatedAt    time.Time
}

// NewUser creates an active user. The password hash must already be
// computed; entities never see plaintext passwords.
func NewUser(tenantID uint, email, passwordHash, name, role string) (*User, error) {
	if tenantID == 0 {
		return nil, fmt.Errorf("tenant is required")
	}
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("valid email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if !isValidRole(role) {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := biztime.NowUTC()
	return &User{
		tenantID:     tenantID,
		email:        email,
		passwordHash: passwordHash,
		name:         strings.TrimSpace(name),
		role:         role,
		active:       true,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

// Reconstruct rebuilds a user from persistence.
func Reconstruct(
	id uint,
	sid string,
	tenantID uint,
	email, passwordHash, name, role string,
	activeFarmID *uint,
	active bool,
	lastLoginAt *time.Time,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if !isValidRole(role) {
		return nil, fmt.Errorf("invalid role: %s", role)
	}
	return &User{
		id:           id,
		sid:          sid,
		tenantID:     tenantID,
		email:        email,
		passwordHash: passwordHash,
		name:         name,
		role:         role,
		activeFarmID: activeFarmID,
		active:       active,
		lastLoginAt:  lastLoginAt,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func isValidRole(role string) bool {
	switch role {
	case constants.RoleSuperAdmin, constants.RoleOwner, constants.RoleManager, constants.RoleWorker:
		return true
	}
	return false
}

func (u *User) ID() uint                { return u.id }
func (u *User) SID() string             { return u.sid }
func (u *User) TenantID() uint          { return u.tenantID }
func (u *User) Email() string           { return u.email }
func (u *User) PasswordHash() string    { return u.passwordHash }
func (u *User) Name() string            { return u.name }
func (u *User) Role() string            { return u.role }
func (u *User) ActiveFarmID() *uint     { return u.activeFarmID }
func (u *User) IsActive() bool          { return u.active }
func (u *User) LastLoginAt() *time.Time { return u.lastLoginAt }
func (u *User) CreatedAt() time.Time    { return u.createdAt }
func (u *User) UpdatedAt() time.Time    { return u.updatedAt }

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID already set")
	}
	u.id = id
	return nil
}

func (u *User) SetSID(sid string) {
	if u.sid == "" {
		u.sid = sid
	}
}

// SwitchFarm changes the user's active farm selection.
func (u *User) SwitchFarm(farmID uint) error {
	if farmID == 0 {
		return fmt.Errorf("farm is required")
	}
	u.activeFarmID = &farmID
	u.updatedAt = biztime.NowUTC()
	return nil
}

// ChangeRole updates the user's role.
func (u *User) ChangeRole(role string) error {
	if !isValidRole(role) {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = biztime.NowUTC()
	return nil
}

// RecordLogin stamps the last successful login time.
func (u *User) RecordLogin() {
	now := biztime.NowUTC()
	u.lastLoginAt = &now
	u.updatedAt = now
}

// Deactivate disables the account without deleting it.
func (u *User) Deactivate() {
	u.active = false
	u.updatedAt = biztime.NowUTC()
}

// Activate restores a disabled account.
func (u *User) Activate() {
	u.active = true
	u.updatedAt = biztime.NowUTC()
}

// ChangePasswordHash replaces the stored credential hash.
func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.updatedAt = biztime.NowUTC()
	return nil
}
