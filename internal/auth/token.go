package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/edventure-park/community-api/internal/user"
)

// ErrInvalidToken is returned for malformed, tampered or wrongly signed tokens.
var ErrInvalidToken = errors.New("invalid token")

// ErrExpiredToken is returned for well-formed tokens past their expiry.
var ErrExpiredToken = errors.New("token expired")

// Claims are the statements embedded in every bearer token. Subject carries
// the user's email.
type Claims struct {
	jwt.RegisteredClaims
	UserID string    `json:"user_id"`
	Role   user.Role `json:"role"`
}

// TokenIssuer signs and validates bearer tokens with a process-wide secret.
// Tokens are stateless; rotating the secret invalidates everything outstanding.
type TokenIssuer struct {
	secret []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer for the given HMAC algorithm
// identifier (for example "HS256").
func NewTokenIssuer(secret, algorithm string, ttl time.Duration) (*TokenIssuer, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", algorithm)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not an HMAC method", algorithm)
	}

	return &TokenIssuer{
		secret: []byte(secret),
		method: method,
		ttl:    ttl,
	}, nil
}

// Issue signs a token for u expiring after the configured lifetime.
func (t *TokenIssuer) Issue(u *user.User) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
		UserID: u.ID,
		Role:   u.Role,
	}

	signed, err := jwt.NewWithClaims(t.method, claims).SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("signing token: %w", err)
	}
	return signed, nil
}

// Validate parses and verifies a raw token, returning its claims. The
// accepted algorithm is pinned to the issuer's own.
func (t *TokenIssuer) Validate(raw string) (*Claims, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(raw, claims,
		func(*jwt.Token) (any, error) { return t.secret, nil },
		jwt.WithValidMethods([]string{t.method.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	return claims, nil
}
