package form

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// FieldValidation holds runtime validation rules for a form field.
type FieldValidation struct {
	Required  bool
	MaxLength int
}

// ValidateText checks a text value against the validation rules.
// The value is trimmed before checking so whitespace-only input counts
// as empty. Returns an empty string when the value is valid.
func (v FieldValidation) ValidateText(value string) string {
	value = strings.TrimSpace(value)
	if v.Required && value == "" {
		return "required"
	}
	if value == "" {
		return ""
	}
	if v.MaxLength > 0 && utf8.RuneCountInString(value) > v.MaxLength {
		return fmt.Sprintf("maximum %d characters", v.MaxLength)
	}
	return ""
}
