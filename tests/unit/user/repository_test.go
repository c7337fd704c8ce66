package user_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edventure-park/community-api/internal/user"
)

func seedUser(t *testing.T, repo *user.MemoryRepository, id, email string) *user.User {
	t.Helper()
	u := &user.User{
		ID:           id,
		Email:        email,
		PasswordHash: "$2a$04$fakehash",
		Name:         "Someone",
		Role:         user.RoleCampusLead,
		Skills:       []string{},
		Achievements: []string{},
	}
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func TestMemoryCreate_DuplicateEmailCaseInsensitive(t *testing.T) {
	repo := user.NewMemoryRepository()
	seedUser(t, repo, "u1", "alice@edventurepark.com")

	err := repo.Create(context.Background(), &user.User{
		ID:    "u2",
		Email: "Alice@EdventurePark.com",
	})

	assert.ErrorIs(t, err, user.ErrDuplicateEmail)
}

func TestMemoryGetByID(t *testing.T) {
	repo := user.NewMemoryRepository()
	seedUser(t, repo, "u1", "alice@edventurepark.com")

	got, err := repo.GetByID(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, "alice@edventurepark.com", got.Email)

	_, err = repo.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, user.ErrUserNotFound)
}

func TestMemoryGetByEmail_CaseInsensitive(t *testing.T) {
	repo := user.NewMemoryRepository()
	seedUser(t, repo, "u1", "alice@edventurepark.com")

	got, err := repo.GetByEmail(context.Background(), "ALICE@edventurepark.com")

	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestMemoryUpdateProfile_PartialUpdate(t *testing.T) {
	repo := user.NewMemoryRepository()
	seedUser(t, repo, "u1", "alice@edventurepark.com")

	bio := "Building the campus startup ecosystem"
	updated, err := repo.UpdateProfile(context.Background(), "u1", user.ProfileUpdate{
		Bio:    &bio,
		Skills: []string{"Design", "Marketing"},
	})

	require.NoError(t, err)
	assert.Equal(t, bio, updated.Bio)
	assert.Equal(t, []string{"Design", "Marketing"}, updated.Skills)
	assert.Equal(t, "Someone", updated.Name, "unset fields stay untouched")
	assert.Equal(t, "alice@edventurepark.com", updated.Email)
}

func TestMemoryUpdateProfile_NotFound(t *testing.T) {
	repo := user.NewMemoryRepository()

	_, err := repo.UpdateProfile(context.Background(), "missing", user.ProfileUpdate{})

	assert.ErrorIs(t, err, user.ErrUserNotFound)
}
