package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marai-app/marai/internal/shared/constants"
)

func TestNewUser(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		u, err := NewUser(1, "Owner@Farm.Example ", "$2a$hash", "Amal", constants.RoleOwner)
		require.NoError(t, err)
		assert.Equal(t, "owner@farm.example", u.Email(), "email normalized")
		assert.Equal(t, constants.RoleOwner, u.Role())
		assert.True(t, u.IsActive())
		assert.Nil(t, u.ActiveFarmID())
	})

	t.Run("missing tenant", func(t *testing.T) {
		_, err := NewUser(0, "a@b.c", "$2a$hash", "", constants.RoleWorker)
		assert.Error(t, err)
	})

	t.Run("bad email", func(t *testing.T) {
		_, err := NewUser(1, "not-an-email", "$2a$hash", "", constants.RoleWorker)
		assert.Error(t, err)
	})

	t.Run("missing hash", func(t *testing.T) {
		_, err := NewUser(1, "a@b.c", "", "", constants.RoleWorker)
		assert.Error(t, err)
	})

	t.Run("invalid role", func(t *testing.T) {
		_, err := NewUser(1, "a@b.c", "$2a$hash", "", "intern")
		assert.Error(t, err)
	})
}

func TestUser_SwitchFarm(t *testing.T) {
	u, err := NewUser(1, "a@b.c", "$2a$hash", "", constants.RoleManager)
	require.NoError(t, err)

	require.NoError(t, u.SwitchFarm(3))
	require.NotNil(t, u.ActiveFarmID())
	assert.Equal(t, uint(3), *u.ActiveFarmID())

	assert.Error(t, u.SwitchFarm(0))
}

func TestUser_RecordLogin(t *testing.T) {
	u, err := NewUser(1, "a@b.c", "$2a$hash", "", constants.RoleWorker)
	require.NoError(t, err)
	require.Nil(t, u.LastLoginAt())

	u.RecordLogin()
	assert.NotNil(t, u.LastLoginAt())
}

func TestUser_ChangeRole(t *testing.T) {
	u, err := NewUser(1, "a@b.c", "$2a$hash", "", constants.RoleWorker)
	require.NoError(t, err)

	require.NoError(t, u.ChangeRole(constants.RoleManager))
	assert.Equal(t, constants.RoleManager, u.Role())
	assert.Error(t, u.ChangeRole("boss"))
}

func TestUser_Deactivate(t *testing.T) {
	u, err := NewUser(1, "a@b.c", "$2a$hash", "", constants.RoleWorker)
	require.NoError(t, err)

	u.Deactivate()
	assert.False(t, u.IsActive())
	u.Activate()
	assert.True(t, u.IsActive())
}
