// Package auth implements credential checking and JWT issuance for the API.
// A single editor account is configured at startup; tokens are HS256-signed
// and carry the subject and an expiry.
package auth

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Sentinel errors returned by the service.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Credentials represents a username/password pair presented at login.
type Credentials struct {
	Username string
	Password string
}

// Service validates credentials and mints/verifies JWT tokens.
type Service struct {
	secret   []byte
	ttl      time.Duration
	username string
	password string
}

// NewService creates an auth service for the configured editor account.
func NewService(secret string, ttl time.Duration, username, password string) *Service {
	return &Service{
		secret:   []byte(secret),
		ttl:      ttl,
		username: username,
		password: password,
	}
}

// Authenticate checks the presented credentials against the configured
// account. Comparison is constant-time to avoid leaking prefix matches.
func (s *Service) Authenticate(_ context.Context, creds Credentials) error {
	if creds.Username == "" || creds.Password == "" {
		return ErrInvalidCredentials
	}

	userMatch := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(s.username)) == 1
	passMatch := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(s.password)) == 1
	if !userMatch || !passMatch {
		return ErrInvalidCredentials
	}
	return nil
}

// IssueToken mints a signed token for the given subject, expiring after the
// configured TTL.
func (s *Service) IssueToken(subject string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": subject,
		"exp": time.Now().Add(s.ttl).Unix(),
		"iat": time.Now().Unix(),
	})

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("IssueToken: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a token string, returning the subject.
// Only HS256 is accepted; anything else is treated as forged.
func (s *Service) VerifyToken(tokenString string) (string, error) {
	tok, err := jwt.Parse(tokenString, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return "", ErrInvalidToken
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return "", ErrInvalidToken
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return "", ErrInvalidToken
	}
	return sub, nil
}
