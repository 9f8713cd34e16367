// Package task defines the task domain model and the view pipeline.
package task

import "time"

// Priority classifies how urgent a task is.
type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Priorities returns all priorities in ascending rank order.
func Priorities() []Priority {
	return []Priority{PriorityLow, PriorityMedium, PriorityHigh}
}

// Rank returns the numeric sort rank of the priority (high=3, medium=2, low=1).
// Unknown values rank below low so a zero Priority never outranks a real one.
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 3
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 1
	default:
		return 0
	}
}

// Filter restricts which tasks are visible by completion state.
type Filter string

const (
	FilterAll    Filter = "all"
	FilterActive Filter = "active"
	FilterDone   Filter = "done"
)

// Next cycles to the following filter: all -> active -> done -> all.
func (f Filter) Next() Filter {
	switch f {
	case FilterAll:
		return FilterActive
	case FilterActive:
		return FilterDone
	default:
		return FilterAll
	}
}

// Task represents a single user-entered to-do item.
//
// Tasks are immutable value objects: edits construct a new Task carrying the
// same ID and the store replaces the old instance by id lookup.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Done        bool      `json:"done"`
	Priority    Priority  `json:"priority"`
	CreatedAt   time.Time `json:"created_at"`
}

// WithDone returns a copy of the task with the completion flag set to done.
func (t Task) WithDone(done bool) Task {
	t.Done = done
	return t
}
