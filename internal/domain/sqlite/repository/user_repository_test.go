package repository_test

import (
	"testing"

	"sharednotes/internal/domain/entity"
	"sharednotes/internal/domain/sqlite/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindByEmail(t *testing.T) {
	repo := repository.NewUserRepository(newTestDB(t))
	seedUser(t, repo, "john@x.com")

	user, err := repo.FindByEmail("john@x.com")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "john@x.com", user.Email)

	missing, err := repo.FindByEmail("nobody@x.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestExistsByEmail(t *testing.T) {
	repo := repository.NewUserRepository(newTestDB(t))
	seedUser(t, repo, "john@x.com")

	exists, err := repo.ExistsByEmail("john@x.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByEmail("nobody@x.com")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestEmailUniqueIndex(t *testing.T) {
	repo := repository.NewUserRepository(newTestDB(t))
	seedUser(t, repo, "john@x.com")

	dup := &entity.User{Firstname: "Other", Lastname: "User", Email: "john@x.com", Password: "hash"}
	assert.Error(t, repo.Save(dup))
}

func TestFindAllInIDsDropsUnknown(t *testing.T) {
	repo := repository.NewUserRepository(newTestDB(t))
	john := seedUser(t, repo, "john@x.com")
	jane := seedUser(t, repo, "jane@x.com")

	users, err := repo.FindAllInIDs([]int{john.ID, jane.ID, 99999})
	require.NoError(t, err)
	assert.Len(t, users, 2)

	users, err = repo.FindAllInIDs(nil)
	require.NoError(t, err)
	assert.Empty(t, users)
}
