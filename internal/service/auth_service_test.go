package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	appErrors "github.com/kanaka-pac/pac-api/pkg/errors"
)

func newAuthService(t *testing.T, ttl time.Duration) *AuthService {
	t.Helper()
	return NewAuthService(AuthConfig{
		AdminPassword: "council-password",
		Secret:        "test-secret",
		TTL:           ttl,
	}, nil)
}

func TestLoginIssuesValidToken(t *testing.T) {
	svc := newAuthService(t, time.Hour)

	token, err := svc.Login("council-password")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.NoError(t, svc.ValidateToken(token))
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc := newAuthService(t, time.Hour)

	_, err := svc.Login("guess")
	require.Error(t, err)
	appErr := appErrors.FromError(err)
	assert.Equal(t, "Invalid password", appErr.Message)
	assert.Equal(t, 401, appErr.Status)
}

func TestLoginWithBcryptHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("council-password"), bcrypt.MinCost)
	require.NoError(t, err)

	svc := NewAuthService(AuthConfig{
		AdminPassword:     "ignored-when-hash-set",
		AdminPasswordHash: string(hash),
		Secret:            "test-secret",
		TTL:               time.Hour,
	}, nil)

	_, err = svc.Login("council-password")
	assert.NoError(t, err)

	_, err = svc.Login("ignored-when-hash-set")
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	svc := newAuthService(t, time.Hour)

	assert.Error(t, svc.ValidateToken("not-a-token"))
	assert.Error(t, svc.ValidateToken(""))
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	svc := newAuthService(t, -time.Minute)

	token, err := svc.Login("council-password")
	require.NoError(t, err)

	assert.Error(t, svc.ValidateToken(token))
}

func TestValidateTokenRejectsForeignSecret(t *testing.T) {
	issuer := newAuthService(t, time.Hour)
	token, err := issuer.Login("council-password")
	require.NoError(t, err)

	other := NewAuthService(AuthConfig{
		AdminPassword: "council-password",
		Secret:        "different-secret",
		TTL:           time.Hour,
	}, nil)
	assert.Error(t, other.ValidateToken(token))
}
