package auth_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edventure-park/community-api/internal/auth"
	"github.com/edventure-park/community-api/internal/user"
)

const testSecret = "test-secret"

func newIssuer(t *testing.T, ttl time.Duration) *auth.TokenIssuer {
	t.Helper()
	issuer, err := auth.NewTokenIssuer(testSecret, "HS256", ttl)
	require.NoError(t, err)
	return issuer
}

func sampleUser() *user.User {
	return &user.User{
		ID:    "user-1",
		Email: "alice@edventurepark.com",
		Role:  user.RoleTeam,
	}
}

func TestNewTokenIssuer_UnknownAlgorithm(t *testing.T) {
	_, err := auth.NewTokenIssuer(testSecret, "XS999", time.Hour)

	assert.Error(t, err)
}

func TestNewTokenIssuer_RejectsNonHMAC(t *testing.T) {
	_, err := auth.NewTokenIssuer(testSecret, "RS256", time.Hour)

	assert.Error(t, err)
}

func TestIssueAndValidate_RoundTrip(t *testing.T) {
	issuer := newIssuer(t, time.Hour)

	token, err := issuer.Issue(sampleUser())
	require.NoError(t, err)

	claims, err := issuer.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "alice@edventurepark.com", claims.Subject)
	assert.Equal(t, user.RoleTeam, claims.Role)
}

func TestValidate_ExpiredToken(t *testing.T) {
	issuer := newIssuer(t, -time.Minute)

	token, err := issuer.Issue(sampleUser())
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, auth.ErrExpiredToken)
}

func TestValidate_TamperedToken(t *testing.T) {
	issuer := newIssuer(t, time.Hour)

	token, err := issuer.Issue(sampleUser())
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"

	_, err = issuer.Validate(tampered)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestValidate_WrongSecret(t *testing.T) {
	issuer := newIssuer(t, time.Hour)
	other, err := auth.NewTokenIssuer("another-secret", "HS256", time.Hour)
	require.NoError(t, err)

	token, err := other.Issue(sampleUser())
	require.NoError(t, err)

	_, err = issuer.Validate(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestValidate_AlgorithmIsPinned(t *testing.T) {
	issuer := newIssuer(t, time.Hour)

	// A token signed with a different HMAC variant must be rejected even
	// though the signature itself would verify.
	foreign := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "alice@edventurepark.com",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	signed, err := foreign.SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = issuer.Validate(signed)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestValidate_Garbage(t *testing.T) {
	issuer := newIssuer(t, time.Hour)

	_, err := issuer.Validate("not-a-jwt")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
