package service

import (
	"crypto/subtle"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	appErrors "github.com/kanaka-pac/pac-api/pkg/errors"
)

const sessionIssuer = "pac-api"

// AuthConfig defines the single-password admin gate. When AdminPasswordHash
// is set it takes precedence and AdminPassword is ignored.
type AuthConfig struct {
	AdminPassword     string
	AdminPasswordHash string
	Secret            string
	TTL               time.Duration
}

// AuthService issues and validates admin session tokens. Sessions are
// stateless signed tokens; logout simply drops the cookie, so a token stays
// valid until expiry.
type AuthService struct {
	config AuthConfig
	logger *zap.Logger
}

// NewAuthService constructs an AuthService instance.
func NewAuthService(config AuthConfig, logger *zap.Logger) *AuthService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{config: config, logger: logger}
}

// Login checks the candidate password and returns a signed session token.
func (s *AuthService) Login(password string) (string, error) {
	if !s.verifyPassword(password) {
		s.logger.Warn("admin login rejected")
		return "", appErrors.ErrInvalidPassword
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Issuer:    sessionIssuer,
		Subject:   "admin",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to sign session token")
	}
	return signed, nil
}

// ValidateToken reports whether the session token is valid and unexpired.
func (s *AuthService) ValidateToken(tokenString string) error {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(s.config.Secret), nil
	}, jwt.WithIssuer(sessionIssuer), jwt.WithExpirationRequired())
	if err != nil || !token.Valid {
		return appErrors.ErrUnauthorized
	}
	return nil
}

// TTL exposes the configured session lifetime for cookie max-age.
func (s *AuthService) TTL() time.Duration {
	return s.config.TTL
}

func (s *AuthService) verifyPassword(candidate string) bool {
	if s.config.AdminPasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(s.config.AdminPasswordHash), []byte(candidate)) == nil
	}
	return subtle.ConstantTimeCompare([]byte(s.config.AdminPassword), []byte(candidate)) == 1
}
