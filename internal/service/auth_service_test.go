package service_test

import (
	"testing"

	"sharednotes/internal/contract"
	"sharednotes/internal/utils/apierror"
	"sharednotes/internal/utils/tokens"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignup(t *testing.T) {
	h := newHarness(t)

	resp, apierr := h.auth.Signup(&contract.SignupRequest{
		Firstname: "John",
		Lastname:  "Doe",
		Email:     "john@x.com",
		Password:  "Abcdef1!",
	})
	require.Nil(t, apierr)
	assert.Equal(t, "john@x.com", resp.User.Email)
	assert.Equal(t, "John", resp.User.Firstname)
	assert.NotZero(t, resp.User.ID)
}

func TestSignupDuplicateEmail(t *testing.T) {
	h := newHarness(t)
	h.signup(t, "John", "john@x.com")

	_, apierr := h.auth.Signup(&contract.SignupRequest{
		Firstname: "Johnny",
		Lastname:  "Other",
		Email:     "john@x.com",
		Password:  "Abcdef1!",
	})
	assert.Equal(t, apierror.EmailInUseError, apierr)
}

func TestSignupNormalizesEmailCase(t *testing.T) {
	h := newHarness(t)
	h.signup(t, "John", "john@x.com")

	// Email uniqueness is case-insensitive.
	_, apierr := h.auth.Signup(&contract.SignupRequest{
		Firstname: "Johnny",
		Lastname:  "Other",
		Email:     "John@X.com",
		Password:  "Abcdef1!",
	})
	assert.Equal(t, apierror.EmailInUseError, apierr)
}

func TestSignupValidationBatch(t *testing.T) {
	h := newHarness(t)

	_, apierr := h.auth.Signup(&contract.SignupRequest{
		Firstname: "Jo", // too short
		Lastname:  "Doe",
		Email:     "not-an-email",
		Password:  "weak",
	})

	structured, ok := apierr.(*apierror.StructuredError)
	require.True(t, ok)
	assert.Equal(t, 400, structured.Code())
	// All violating fields are reported in one response.
	assert.Contains(t, structured.Errors, "firstname")
	assert.Contains(t, structured.Errors, "email")
	assert.Contains(t, structured.Errors, "password")
}

func TestSignupRejectsPasswordContainingName(t *testing.T) {
	h := newHarness(t)

	_, apierr := h.auth.Signup(&contract.SignupRequest{
		Firstname: "John",
		Lastname:  "Doe",
		Email:     "john@x.com",
		Password:  "John1234!a",
	})

	structured, ok := apierr.(*apierror.StructuredError)
	require.True(t, ok)
	assert.Contains(t, structured.Errors, "password")
}

func TestSigninIssuesToken(t *testing.T) {
	h := newHarness(t)
	user := h.signup(t, "John", "john@x.com")

	resp, apierr := h.auth.Signin(&contract.SigninRequest{
		Email:    "john@x.com",
		Password: "Abcdef1!",
	})
	require.Nil(t, apierr)

	id, err := tokens.Parse(resp.Token, testSecret)
	require.NoError(t, err)
	assert.Equal(t, user.ID, id)
}

func TestSigninFailsIdentically(t *testing.T) {
	h := newHarness(t)
	h.signup(t, "John", "john@x.com")

	_, unknownEmail := h.auth.Signin(&contract.SigninRequest{
		Email:    "nobody@x.com",
		Password: "Abcdef1!",
	})
	_, wrongPassword := h.auth.Signin(&contract.SigninRequest{
		Email:    "john@x.com",
		Password: "Wrong123!",
	})

	// Same error either way, so accounts cannot be enumerated.
	assert.Equal(t, apierror.InvalidCredentialsError, unknownEmail)
	assert.Equal(t, apierror.InvalidCredentialsError, wrongPassword)
}
