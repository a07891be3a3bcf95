package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for any cookie value that does not verify.
var ErrInvalidToken = errors.New("invalid session token")

// ErrEmptySecret is returned when signing without a key.
var ErrEmptySecret = errors.New("session secret is empty")

// SessionClaims identify a server-side session.
type SessionClaims struct {
	SessionID string
	UserID    int64
}

// TokenManager signs and verifies session cookie values. Tokens carry no
// expiry; a session lives as long as its server-side entry.
type TokenManager struct {
	secret []byte
	issuer string
}

// NewTokenManager creates a manager with the provided secret and issuer.
func NewTokenManager(secret, issuer string) *TokenManager {
	return &TokenManager{
		secret: []byte(secret),
		issuer: issuer,
	}
}

// Generate issues a signed token for the session.
func (t *TokenManager) Generate(claims SessionClaims) (string, error) {
	if len(t.secret) == 0 {
		return "", ErrEmptySecret
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		ID:       claims.SessionID,
		Subject:  strconv.FormatInt(claims.UserID, 10),
		Issuer:   t.issuer,
		IssuedAt: jwt.NewNumericDate(time.Now()),
	})
	return token.SignedString(t.secret)
}

// Parse verifies a token and returns the session it names.
func (t *TokenManager) Parse(raw string) (SessionClaims, error) {
	var rc jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &rc, func(*jwt.Token) (any, error) {
		return t.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithIssuer(t.issuer))
	if err != nil {
		return SessionClaims{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if rc.ID == "" {
		return SessionClaims{}, ErrInvalidToken
	}
	userID, err := strconv.ParseInt(rc.Subject, 10, 64)
	if err != nil {
		return SessionClaims{}, fmt.Errorf("%w: subject %q", ErrInvalidToken, rc.Subject)
	}
	return SessionClaims{SessionID: rc.ID, UserID: userID}, nil
}
