package service

import (
	"unicode"

	"github.com/wahhajahmed/KarachiSofas/internal/config"
)

// bcrypt 只使用前 72 字节
const maxPasswordBytes = 72

// passwordPolicyError 携带翻译 key 与参数，errors.Is 视为 ErrWeakPassword
type passwordPolicyError struct {
	key  string
	args []interface{}
}

func (e passwordPolicyError) Error() string        { return e.key }
func (e passwordPolicyError) Is(target error) bool { return target == ErrWeakPassword }
func (e passwordPolicyError) Key() string          { return e.key }
func (e passwordPolicyError) Args() []interface{}  { return e.args }

type passwordClasses struct {
	letter, upper, lower, number, special bool
}

func classifyPassword(password string) passwordClasses {
	var c passwordClasses
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			c.upper, c.letter = true, true
		case unicode.IsLower(r):
			c.lower, c.letter = true, true
		case unicode.IsLetter(r):
			c.letter = true
		case unicode.IsDigit(r):
			c.number = true
		case !unicode.IsSpace(r):
			c.special = true
		}
	}
	return c
}

func validatePassword(policy config.PasswordPolicyConfig, password string) error {
	if len(password) > maxPasswordBytes {
		return passwordPolicyError{key: "error.password_too_long", args: []interface{}{maxPasswordBytes}}
	}
	if policy.MinLength > 0 && len([]rune(password)) < policy.MinLength {
		return passwordPolicyError{key: "error.password_min_length", args: []interface{}{policy.MinLength}}
	}

	classes := classifyPassword(password)
	checks := []struct {
		required bool
		present  bool
		key      string
	}{
		{policy.RequireLetter, classes.letter, "error.password_require_letter"},
		{policy.RequireUpper, classes.upper, "error.password_require_upper"},
		{policy.RequireLower, classes.lower, "error.password_require_lower"},
		{policy.RequireNumber, classes.number, "error.password_require_number"},
		{policy.RequireSpecial, classes.special, "error.password_require_special"},
	}
	for _, check := range checks {
		if check.required && !check.present {
			return passwordPolicyError{key: check.key}
		}
	}
	return nil
}
