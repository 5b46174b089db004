package credential

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	minNameLength     = 2
	minPasswordLength = 6
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsValidEmail performs a structural check: one "@", non-empty local part,
// a dotted domain and no whitespace. It is not RFC 5322 complete.
func IsValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// IsValidName reports whether the trimmed name has at least two characters.
func IsValidName(s string) bool {
	return utf8.RuneCountInString(strings.TrimSpace(s)) >= minNameLength
}

// IsValidPassword reports whether the password has at least six characters.
func IsValidPassword(s string) bool {
	return utf8.RuneCountInString(s) >= minPasswordLength
}

// Validation tags registered by NewValidator.
const (
	TagEmail    = "account_email"
	TagName     = "person_name"
	TagPassword = "account_password"
)

// NewValidator returns a validator with the account tags registered.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	register := func(tag string, fn func(string) bool) {
		// registration only fails for empty tags or nil funcs
		_ = v.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return fn(fl.Field().String())
		})
	}
	register(TagEmail, IsValidEmail)
	register(TagName, IsValidName)
	register(TagPassword, IsValidPassword)
	return v
}
