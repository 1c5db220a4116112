// File: internal/auth/service_test.go
package auth

import (
	"testing"
	"time"

	"sabuconnect_backend/internal/common"
	"sabuconnect_backend/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type tokenUser struct {
	id    uuid.UUID
	email string
	role  common.Role
}

func (u tokenUser) GetID() uuid.UUID     { return u.id }
func (u tokenUser) GetEmail() string     { return u.email }
func (u tokenUser) GetRole() common.Role { return u.role }

func newTestJWTService(accessTTL time.Duration) *JWTService {
	cfg := &config.Config{
		JWTSecretKey:                "test-secret-key",
		JWTAccessTokenExpiryMinutes: accessTTL,
		JWTRefreshTokenExpiryDays:   24 * time.Hour,
	}
	return NewJWTService(cfg, zap.NewNop()).(*JWTService)
}

func TestGenerateAndValidateAccessToken(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)
	u := tokenUser{id: uuid.New(), email: "provider@example.com", role: common.RoleProvider}

	tokenStr, expiresAt, err := svc.GenerateAccessToken(u)
	require.NoError(t, err)
	assert.NotEmpty(t, tokenStr)
	assert.WithinDuration(t, time.Now().Add(15*time.Minute), expiresAt, 5*time.Second)

	claims, err := svc.ValidateToken(tokenStr)
	require.NoError(t, err)
	assert.Equal(t, u.id, claims.UserID)
	assert.Equal(t, u.email, claims.Email)
	assert.Equal(t, string(common.RoleProvider), claims.Role)
}

func TestValidateToken_WrongSecret(t *testing.T) {
	issuer := newTestJWTService(15 * time.Minute)
	u := tokenUser{id: uuid.New(), email: "a@example.com", role: common.RoleUser}

	tokenStr, _, err := issuer.GenerateAccessToken(u)
	require.NoError(t, err)

	verifier := NewJWTService(&config.Config{JWTSecretKey: "different-secret"}, zap.NewNop()).(*JWTService)
	_, err = verifier.ValidateToken(tokenStr)
	assert.Error(t, err)
}

func TestValidateToken_Expired(t *testing.T) {
	svc := newTestJWTService(-1 * time.Minute)
	u := tokenUser{id: uuid.New(), email: "a@example.com", role: common.RoleUser}

	tokenStr, _, err := svc.GenerateAccessToken(u)
	require.NoError(t, err)

	_, err = svc.ValidateToken(tokenStr)
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	svc := newTestJWTService(15 * time.Minute)
	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}
