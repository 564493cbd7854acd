package service_test

import (
	"testing"

	"sharednotes/internal/contract"
	"sharednotes/internal/domain/entity"
	"sharednotes/internal/domain/sqlite"
	"sharednotes/internal/domain/sqlite/repository"
	"sharednotes/internal/service"
	"sharednotes/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

type harness struct {
	users  *repository.DefaultUserRepository
	notes  *repository.DefaultNoteRepository
	auth   *service.AuthService
	note   *service.DefaultNoteService
	search *service.DefaultSearchService
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	db, err := sqlite.Init(":memory:", "app_")
	require.NoError(t, err)

	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("hasupper", validators.HasUpper))
	require.NoError(t, validate.RegisterValidation("haslower", validators.HasLower))
	require.NoError(t, validate.RegisterValidation("hasdigit", validators.HasDigit))
	require.NoError(t, validate.RegisterValidation("hasspecial", validators.HasSpecial))
	require.NoError(t, validate.RegisterValidation("nodupes", validators.NoDupes))
	validate.RegisterStructValidation(validators.SignupNameCheck, contract.SignupRequest{})

	users := repository.NewUserRepository(db)
	notes := repository.NewNoteRepository(db)

	return &harness{
		users:  users,
		notes:  notes,
		auth:   service.NewAuthService(users, validate, testSecret),
		note:   service.NewNoteService(notes, users, validate),
		search: service.NewSearchService(notes),
	}
}

// signup registers a user through the real service and returns the stored
// entity.
func (h *harness) signup(t *testing.T, firstname, email string) *entity.User {
	t.Helper()

	resp, apierr := h.auth.Signup(&contract.SignupRequest{
		Firstname: firstname,
		Lastname:  "Tester",
		Email:     email,
		Password:  "Abcdef1!",
	})
	require.Nil(t, apierr)

	user, err := h.users.FindByID(resp.User.ID)
	require.NoError(t, err)
	require.NotNil(t, user)
	return user
}

func (h *harness) createNote(t *testing.T, owner *entity.User, title string) *contract.NoteResponse {
	t.Helper()

	resp, apierr := h.note.CreateNote(owner, &contract.CreateNoteRequest{
		Title:       title,
		Content:     "ccccc",
		Description: "ddddd",
	})
	require.Nil(t, apierr)
	return resp.Note
}

func strptr(s string) *string {
	return &s
}
