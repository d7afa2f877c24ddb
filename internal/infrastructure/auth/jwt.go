package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	domainUser "github.com/marai-app/marai/internal/domain/user"
	"github.com/marai-app/marai/internal/shared/biztime"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims carry the user identity plus the tenant and farm binding that
// the scoping middleware reads back into the request context.
type Claims struct {
	UserID    uint      `json:"user_id"`
	UserSID   string    `json:"user_sid"`
	TenantID  uint      `json:"tenant_id"`
	FarmID    uint      `json:"farm_id"`
	Role      string    `json:"role"`
	TokenType TokenType `json:"token_type"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
	refreshExpDays   int
}

func NewJWTService(secret string, accessExpMinutes, refreshExpDays int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
		refreshExpDays:   refreshExpDays,
	}
}

func (s *JWTService) claimsFor(u *domainUser.User, tokenType TokenType, exp time.Time) *Claims {
	now := biztime.NowUTC()
	var farmID uint
	if u.ActiveFarmID() != nil {
		farmID = *u.ActiveFarmID()
	}
	return &Claims{
		UserID:    u.ID(),
		UserSID:   u.SID(),
		TenantID:  u.TenantID(),
		FarmID:    farmID,
		Role:      u.Role(),
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(exp),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
}

// IssueAccessToken signs a short-lived token bound to the user's
// tenant and active farm.
func (s *JWTService) IssueAccessToken(u *domainUser.User) (string, error) {
	exp := biztime.NowUTC().Add(time.Duration(s.accessExpMinutes) * time.Minute)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, s.claimsFor(u, TokenTypeAccess, exp))
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return signed, nil
}

// IssueRefreshToken signs a long-lived token used only to obtain new
// access tokens.
func (s *JWTService) IssueRefreshToken(u *domainUser.User) (string, error) {
	exp := biztime.NowUTC().Add(time.Duration(s.refreshExpDays) * 24 * time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, s.claimsFor(u, TokenTypeRefresh, exp))
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign refresh token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a token string.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}

// AccessExpMinutes returns the access token expiration time in minutes
func (s *JWTService) AccessExpMinutes() int {
	return s.accessExpMinutes
}
