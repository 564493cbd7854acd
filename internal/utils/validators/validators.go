package validators

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"

	"sharednotes/internal/contract"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

var specialRegex = regexp.MustCompile(`[\\^$*.\[\]{}()?"!@#%&/\\,><':;|_~` + "`" + `=+\-]`)

func HasUpper(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	for _, ch := range val {
		if unicode.IsUpper(ch) {
			return true
		}
	}
	return false
}

func HasLower(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	for _, ch := range val {
		if unicode.IsLower(ch) {
			return true
		}
	}
	return false
}

func HasDigit(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}

	for _, ch := range val {
		if unicode.IsDigit(ch) {
			return true
		}
	}
	return false
}

func HasSpecial(fl validator.FieldLevel) bool {
	val, ok := fl.Field().Interface().(string)
	if !ok {
		return false
	}
	return specialRegex.MatchString(val)
}

func NoDupes(fl validator.FieldLevel) bool {
	slice := fl.Field()
	if slice.Kind() != reflect.Slice {
		log.Warnf("validator 'nodupes' applied to non-slice type: %s", slice.Kind().String())
		return false
	}

	length := slice.Len()
	seen := make(map[any]bool, length)
	for i := 0; i < length; i++ {
		val := slice.Index(i).Interface()
		if _, exists := seen[val]; exists {
			return false
		}
		seen[val] = true
	}
	return true
}

// SignupNameCheck rejects passwords containing the registrant's first or
// last name, case-insensitively. Cross-field, so it runs at struct level.
func SignupNameCheck(sl validator.StructLevel) {
	req := sl.Current().Interface().(contract.SignupRequest)
	password := strings.ToLower(req.Password)
	first := strings.ToLower(req.Firstname)
	last := strings.ToLower(req.Lastname)

	if first != "" && strings.Contains(password, first) {
		sl.ReportError(req.Password, "Password", "password", "noname", "")
		return
	}
	if last != "" && strings.Contains(password, last) {
		sl.ReportError(req.Password, "Password", "password", "noname", "")
	}
}
