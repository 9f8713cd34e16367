package task

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
)

// fold lower-cases with full Unicode case folding so search behaves the
// same for non-ASCII titles. Caser values are not safe for concurrent use,
// so a fresh one is taken per call.
func fold(s string) string {
	return cases.Fold().String(s)
}

// Visible is the view pipeline: given the store's tasks plus the current
// filter and search query, it produces the ordered sequence to display.
//
// It is pure and deterministic. The sort is stable, so tasks that compare
// equal on every key keep their relative store order across calls.
func Visible(tasks []Task, filter Filter, query string) []Task {
	out := make([]Task, 0, len(tasks))

	for _, t := range tasks {
		switch filter {
		case FilterActive:
			if t.Done {
				continue
			}
		case FilterDone:
			if !t.Done {
				continue
			}
		}
		out = append(out, t)
	}

	if q := fold(strings.TrimSpace(query)); q != "" {
		matched := out[:0]
		for _, t := range out {
			if strings.Contains(fold(t.Title), q) || strings.Contains(fold(t.Description), q) {
				matched = append(matched, t)
			}
		}
		out = matched
	}

	slices.SortStableFunc(out, compare)
	return out
}

// compare orders incomplete before complete, then by descending priority
// rank, then newest first.
func compare(a, b Task) int {
	if a.Done != b.Done {
		if a.Done {
			return 1
		}
		return -1
	}
	if ra, rb := a.Priority.Rank(), b.Priority.Rank(); ra != rb {
		return rb - ra
	}
	switch {
	case a.CreatedAt.After(b.CreatedAt):
		return -1
	case b.CreatedAt.After(a.CreatedAt):
		return 1
	default:
		return 0
	}
}
