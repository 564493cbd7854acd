package repository_test

import (
	"testing"

	"sharednotes/internal/domain/entity"
	"sharednotes/internal/domain/sqlite"
	"sharednotes/internal/domain/sqlite/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := sqlite.Init(":memory:", "app_")
	require.NoError(t, err)
	return db
}

func seedUser(t *testing.T, repo *repository.DefaultUserRepository, email string) *entity.User {
	t.Helper()
	user := &entity.User{
		Firstname: "Test",
		Lastname:  "User",
		Email:     email,
		Password:  "hash",
	}
	require.NoError(t, repo.Save(user))
	return user
}

func seedNote(t *testing.T, repo *repository.DefaultNoteRepository, owner *entity.User, title string) *entity.Note {
	t.Helper()
	note := &entity.Note{
		Title:       title,
		Description: "description",
		Content:     "content",
		OwnerID:     owner.ID,
	}
	require.NoError(t, repo.Save(note))
	return note
}
