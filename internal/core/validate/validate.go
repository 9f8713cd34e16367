// Package validate provides shared validation functions.
package validate

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/hay-kot/criterio"
)

// MaxTitleLength is the longest allowed task title, in characters.
const MaxTitleLength = 50

// TaskTitle validates a task title is non-empty after trimming whitespace
// and no longer than MaxTitleLength characters.
func TaskTitle(title string) error {
	trimmed := strings.TrimSpace(title)
	if trimmed == "" {
		return fmt.Errorf("title is required")
	}
	if utf8.RuneCountInString(trimmed) > MaxTitleLength {
		return fmt.Errorf("title must be %d characters or fewer", MaxTitleLength)
	}
	return nil
}

// TaskTitleField returns a criterio validator for task titles.
func TaskTitleField(field, title string) error {
	return criterio.Run(field, title, TaskTitle)
}
