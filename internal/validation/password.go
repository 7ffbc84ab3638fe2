package validation

import (
	"errors"
	"unicode"
)

const MinPasswordLength = 6

// ValidatePassword applies the registration rule: at least six characters
// with one uppercase and one lowercase letter.
func ValidatePassword(password string) error {
	if len([]rune(password)) < MinPasswordLength {
		return errors.New("password must be at least 6 characters")
	}

	var upper, lower bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		}
	}
	if !upper {
		return errors.New("password must contain an uppercase letter")
	}
	if !lower {
		return errors.New("password must contain a lowercase letter")
	}

	return nil
}

// ValidatePasswordConfirmation checks that both password fields match.
func ValidatePasswordConfirmation(password, confirm string) error {
	if password != confirm {
		return errors.New("passwords do not match")
	}
	return nil
}
