package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/edventure-park/community-api/internal/auth"
	"github.com/edventure-park/community-api/internal/user"
)

const testBcryptCost = bcrypt.MinCost

func newService(t *testing.T) (*auth.Service, user.Repository) {
	t.Helper()
	repo := user.NewMemoryRepository()
	svc := auth.NewService(repo, newIssuer(t, time.Hour), testBcryptCost)
	return svc, repo
}

func registerParams() auth.RegisterParams {
	return auth.RegisterParams{
		Email:    "alice@edventurepark.com",
		Password: "hunter22",
		Name:     "Alice",
		Role:     user.RoleTeam,
	}
}

func TestRegister_Success(t *testing.T) {
	svc, repo := newService(t)

	u, token, err := svc.Register(context.Background(), registerParams())

	require.NoError(t, err)
	assert.NotEmpty(t, u.ID)
	assert.NotEmpty(t, token)
	assert.Equal(t, "alice@edventurepark.com", u.Email)
	assert.NotEqual(t, "hunter22", u.PasswordHash, "password must be stored hashed")
	assert.NotNil(t, u.Skills)
	assert.NotNil(t, u.Achievements)
	assert.False(t, u.JoinedDate.IsZero())

	stored, err := repo.GetByEmail(context.Background(), "alice@edventurepark.com")
	require.NoError(t, err)
	assert.Equal(t, u.ID, stored.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc, _ := newService(t)

	_, _, err := svc.Register(context.Background(), registerParams())
	require.NoError(t, err)

	p := registerParams()
	p.Email = "ALICE@edventurepark.com"
	_, _, err = svc.Register(context.Background(), p)

	assert.ErrorIs(t, err, user.ErrDuplicateEmail, "email uniqueness is case-insensitive")
}

func TestLogin_Success(t *testing.T) {
	svc, _ := newService(t)
	registered, _, err := svc.Register(context.Background(), registerParams())
	require.NoError(t, err)

	u, token, err := svc.Login(context.Background(), "alice@edventurepark.com", "hunter22")

	require.NoError(t, err)
	assert.Equal(t, registered.ID, u.ID)
	assert.NotEmpty(t, token)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, _ := newService(t)
	_, _, err := svc.Register(context.Background(), registerParams())
	require.NoError(t, err)

	_, _, err = svc.Login(context.Background(), "alice@edventurepark.com", "wrong")

	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestLogin_UnknownEmail(t *testing.T) {
	svc, _ := newService(t)

	_, _, err := svc.Login(context.Background(), "nobody@edventurepark.com", "hunter22")

	// Unknown email and wrong password must be indistinguishable.
	assert.ErrorIs(t, err, auth.ErrInvalidCredentials)
}

func TestAuthenticate_RoundTrip(t *testing.T) {
	svc, _ := newService(t)
	u, token, err := svc.Register(context.Background(), registerParams())
	require.NoError(t, err)

	identity, err := svc.Authenticate(token)

	require.NoError(t, err)
	assert.Equal(t, u.ID, identity.UserID)
	assert.Equal(t, u.Email, identity.Email)
	assert.Equal(t, user.RoleTeam, identity.Role)
}

func TestAuthenticate_InvalidToken(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Authenticate("garbage")

	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}
