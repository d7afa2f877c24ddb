package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainUser "github.com/marai-app/marai/internal/domain/user"
	"github.com/marai-app/marai/internal/shared/constants"
)

func testUser(t *testing.T) *domainUser.User {
	t.Helper()
	farmID := uint(7)
	u, err := domainUser.Reconstruct(
		42, "usr_42", 3,
		"owner@farm.example", "hash", "Fatima", constants.RoleOwner,
		&farmID, true, nil,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)
	return u
}

func TestJWTService_AccessTokenRoundTrip(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)
	u := testUser(t)

	token, err := svc.IssueAccessToken(u)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "usr_42", claims.UserSID)
	assert.Equal(t, uint(3), claims.TenantID)
	assert.Equal(t, uint(7), claims.FarmID)
	assert.Equal(t, constants.RoleOwner, claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
}

func TestJWTService_RefreshTokenCarriesType(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	token, err := svc.IssueRefreshToken(testUser(t))
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, claims.TokenType)
}

func TestJWTService_NoActiveFarm(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	u, err := domainUser.Reconstruct(
		9, "usr_9", 3,
		"admin@marai.example", "hash", "Root", constants.RoleSuperAdmin,
		nil, true, nil,
		time.Now(), time.Now(),
	)
	require.NoError(t, err)

	token, err := svc.IssueAccessToken(u)
	require.NoError(t, err)

	claims, err := svc.Verify(token)
	require.NoError(t, err)
	assert.Zero(t, claims.FarmID)
}

func TestJWTService_RejectsWrongSecret(t *testing.T) {
	issuer := NewJWTService("secret-a", 15, 7)
	verifier := NewJWTService("secret-b", 15, 7)

	token, err := issuer.IssueAccessToken(testUser(t))
	require.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.Error(t, err)
}

func TestJWTService_RejectsGarbage(t *testing.T) {
	svc := NewJWTService("test-secret", 15, 7)

	_, err := svc.Verify("not.a.token")
	assert.Error(t, err)
}

func TestBcryptPasswordHasher(t *testing.T) {
	hasher := NewBcryptPasswordHasher(4)

	hash, err := hasher.Hash("correct horse battery staple")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse battery staple", hash)

	assert.NoError(t, hasher.Compare(hash, "correct horse battery staple"))
	assert.Error(t, hasher.Compare(hash, "wrong password"))
}
