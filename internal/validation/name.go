package validation

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MaxNameLength   = 100
	MaxTitleLength  = 200
	MaxMediumLength = 100
)

// ValidateName checks a display name (user or artist).
func ValidateName(name string) error {
	return ValidateText("name", name, MaxNameLength)
}

// ValidateText requires a single-line value of at most limit characters.
// field names the value in the error message.
func ValidateText(field, value string, limit int) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return fmt.Errorf("%s is required", field)
	}
	if n := utf8.RuneCountInString(value); n > limit {
		return fmt.Errorf("%s is too long (max %d characters)", field, limit)
	}
	if strings.ContainsFunc(value, unicode.IsControl) {
		return fmt.Errorf("%s contains invalid characters", field)
	}
	return nil
}
