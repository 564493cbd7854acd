package validators_test

import (
	"testing"

	"sharednotes/internal/contract"
	"sharednotes/internal/utils/validators"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation("hasupper", validators.HasUpper))
	require.NoError(t, validate.RegisterValidation("haslower", validators.HasLower))
	require.NoError(t, validate.RegisterValidation("hasdigit", validators.HasDigit))
	require.NoError(t, validate.RegisterValidation("hasspecial", validators.HasSpecial))
	require.NoError(t, validate.RegisterValidation("nodupes", validators.NoDupes))
	validate.RegisterStructValidation(validators.SignupNameCheck, contract.SignupRequest{})
	return validate
}

func TestPasswordCharacterClasses(t *testing.T) {
	validate := newValidator(t)

	type probe struct {
		Value string `validate:"hasupper,haslower,hasdigit,hasspecial"`
	}

	assert.NoError(t, validate.Struct(probe{Value: "Abcdef1!"}))
	assert.Error(t, validate.Struct(probe{Value: "abcdef1!"}), "missing uppercase")
	assert.Error(t, validate.Struct(probe{Value: "ABCDEF1!"}), "missing lowercase")
	assert.Error(t, validate.Struct(probe{Value: "Abcdefg!"}), "missing digit")
	assert.Error(t, validate.Struct(probe{Value: "Abcdefg1"}), "missing special char")
}

func TestNoDupes(t *testing.T) {
	validate := newValidator(t)

	type probe struct {
		IDs []int `validate:"nodupes"`
	}

	assert.NoError(t, validate.Struct(probe{IDs: []int{1, 2, 3}}))
	assert.NoError(t, validate.Struct(probe{IDs: nil}))
	assert.Error(t, validate.Struct(probe{IDs: []int{1, 2, 1}}))
}

func TestSignupNameCheck(t *testing.T) {
	validate := newValidator(t)

	base := contract.SignupRequest{
		Firstname: "John",
		Lastname:  "Doe",
		Email:     "john@x.com",
	}

	ok := base
	ok.Password = "Abcdef1!"
	assert.NoError(t, validate.Struct(ok))

	withFirst := base
	withFirst.Password = "xJOHNx1!aB"
	err := validate.Struct(withFirst)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "noname")

	withLast := base
	withLast.Password = "Abdoe123!"
	assert.Error(t, validate.Struct(withLast))
}
