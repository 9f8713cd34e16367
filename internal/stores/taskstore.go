// Package stores holds the in-memory data stores backing a tick session.
package stores

import (
	"crypto/rand"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/colonyops/tick/internal/core/task"
	"github.com/colonyops/tick/internal/core/validate"
)

// TaskStore is the authoritative, ordered collection of tasks for one
// session. Insertion order is preserved so a removed task can be put back
// at its original index.
//
// Nothing is persisted; the store lives and dies with the process.
type TaskStore struct {
	mu    sync.RWMutex
	tasks []task.Task
	now   func() time.Time
}

// NewTaskStore creates an empty task store.
func NewTaskStore() *TaskStore {
	return &TaskStore{now: time.Now}
}

// newID returns a fresh collision-resistant task id.
func newID() string {
	entropy := ulid.Monotonic(rand.Reader, 0)
	return ulid.MustNew(ulid.Timestamp(time.Now()), entropy).String()
}

// Add validates the title, constructs a new incomplete Task with a fresh id
// and creation timestamp, and appends it. The stored title is trimmed.
// Returns a field validation error and leaves the store untouched when the
// title is blank or too long.
func (s *TaskStore) Add(title, description string, priority task.Priority) (task.Task, error) {
	if err := validate.TaskTitleField("title", title); err != nil {
		return task.Task{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := task.Task{
		ID:          newID(),
		Title:       strings.TrimSpace(title),
		Description: description,
		Done:        false,
		Priority:    priority,
		CreatedAt:   s.now(),
	}
	s.tasks = append(s.tasks, t)
	return t, nil
}

// Update replaces the stored task with the same id, preserving its position.
// Unknown ids are a benign no-op; the return reports whether a replacement
// happened.
func (s *TaskStore) Update(t task.Task) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == t.ID {
			s.tasks[i] = t
			return true
		}
	}
	return false
}

// Remove deletes the task with the given id and returns the removed task
// together with its original index, both needed for RestoreAt. Unknown ids
// are a benign no-op with ok=false.
func (s *TaskStore) Remove(id string) (removed task.Task, index int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			removed = s.tasks[i]
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return removed, i, true
		}
	}
	return task.Task{}, 0, false
}

// RestoreAt reinserts a previously removed task at index, clamped into
// [0, len]. The store imposes no deadline: restoring is valid for as long
// as the caller holds the removed task.
func (s *TaskStore) RestoreAt(t task.Task, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if index < 0 {
		index = 0
	}
	if index > len(s.tasks) {
		index = len(s.tasks)
	}
	s.tasks = slices.Insert(s.tasks, index, t)
}

// ToggleDone flips the completion flag of the task with the given id.
// Unknown ids are a benign no-op with ok=false.
func (s *TaskStore) ToggleDone(id string) (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i] = s.tasks[i].WithDone(!s.tasks[i].Done)
			return s.tasks[i], true
		}
	}
	return task.Task{}, false
}

// Get returns the task with the given id.
func (s *TaskStore) Get(id string) (task.Task, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.tasks {
		if t.ID == id {
			return t, true
		}
	}
	return task.Task{}, false
}

// All returns a copy of the tasks in insertion order.
func (s *TaskStore) All() []task.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]task.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of stored tasks.
func (s *TaskStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}
