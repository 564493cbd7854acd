package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse abstracts all API error responses to the user.
//
// This interface does not implement `error`, since its only purpose
// is to be used for API responses and not for logging circumstances.
//
// In general, the whole ErrorResponse can be sent for serialization.
type ErrorResponse interface {
	// Code is the HTTP status code to be returned.
	Code() int
}

type APIError struct {
	Message string `json:"message"`
	Status  int    `json:"-"`
}

func (a *APIError) Code() int {
	return a.Status
}

// StructuredError carries the full batch of field-level validation
// problems for one request. A request never fails on the first violation
// only.
type StructuredError struct {
	Errors map[string][]string `json:"errors"`
	Status int                 `json:"-"`
}

func (s *StructuredError) Code() int {
	return s.Status
}

func (s *StructuredError) Add(field, problem string) {
	s.Errors[field] = append(s.Errors[field], problem)
}

var (
	MalformedBodyError  = NewSimple(http.StatusBadRequest, "Malformed JSON body")
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error.")

	// Authentication
	MissingLoginError       = NewSimple(http.StatusUnauthorized, "please login first.")
	InvalidTokenError       = NewSimple(http.StatusUnauthorized, "Invalid or expired token.")
	UserNotFoundError       = NewSimple(http.StatusNotFound, "User not found.")
	InvalidCredentialsError = NewSimple(http.StatusUnauthorized, "Invalid email or password.")
	EmailInUseError         = NewSimple(http.StatusBadRequest, "Email already in use.")

	// Notes. NoteNotFoundError deliberately covers both "does not exist"
	// and "exists but the caller has no access", so a caller cannot probe
	// for foreign note ids.
	NoteNotFoundError      = NewSimple(http.StatusNotFound, "Note not found or access denied.")
	NoValidRecipientsError = NewSimple(http.StatusBadRequest, "None of the provided user IDs are valid.")

	// Search
	MissingQueryError    = NewSimple(http.StatusBadRequest, "Search query is required.")
	NoMatchingNotesError = NewSimple(http.StatusNotFound, "No matching notes found.")
)

// FromValidationError converts validator.ValidationErrors into the
// structured per-field batch the API responds with. Any other error
// degrades to InternalServerError, never to a typed-nil response.
func FromValidationError(err error) ErrorResponse {
	var ve validator.ValidationErrors
	ok := errors.As(err, &ve)
	if !ok {
		return InternalServerError
	}

	problems := map[string][]string{}
	for _, fe := range ve {
		field := strings.ToLower(fe.Field())

		switch fe.Tag() {
		case "required":
			problems[field] = append(problems[field], "This field is required")
		case "min":
			problems[field] = append(problems[field], "Value is too short, min: "+fe.Param())
		case "max":
			problems[field] = append(problems[field], "Value is too long, max: "+fe.Param())
		case "hasupper":
			problems[field] = append(problems[field], "Value must have at least one uppercase character")
		case "haslower":
			problems[field] = append(problems[field], "Value must have at least one lowercase character")
		case "hasdigit":
			problems[field] = append(problems[field], "Value must have at least one number")
		case "hasspecial":
			problems[field] = append(problems[field], "Value must have at least one special character")
		case "email":
			problems[field] = append(problems[field], "Value must be a valid email address")
		case "noname":
			problems[field] = append(problems[field], "Value cannot contain your first or last name")
		case "nodupes":
			problems[field] = append(problems[field], "Value must contain unique values")

		default:
			problems[field] = append(problems[field], "Invalid value provided")
		}
	}

	return &StructuredError{
		Errors: problems,
		Status: http.StatusBadRequest,
	}
}

func NewSimple(status int, msg string, args ...any) *APIError {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return &APIError{Status: status, Message: msg}
}

func NewStructured(code int) *StructuredError {
	return &StructuredError{
		Errors: make(map[string][]string),
		Status: code,
	}
}

func NewDuplicateTitleError(title string) *APIError {
	return NewSimple(http.StatusBadRequest, "A note with the title %q already exists.", title)
}

func NewInvalidParamTypeError(name, dataType string) *APIError {
	return NewSimple(http.StatusBadRequest, "Parameter '%s' has invalid type, expected: %s", name, dataType)
}
