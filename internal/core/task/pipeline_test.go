package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(sec int) time.Time {
	return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC).Add(time.Duration(sec) * time.Second)
}

func TestVisible_SortOrder(t *testing.T) {
	t1 := Task{ID: "t1", Title: "first", Priority: PriorityHigh, CreatedAt: at(10)}
	t2 := Task{ID: "t2", Title: "second", Priority: PriorityLow, CreatedAt: at(20)}
	t3 := Task{ID: "t3", Title: "third", Done: true, Priority: PriorityHigh, CreatedAt: at(30)}

	got := Visible([]Task{t3, t2, t1}, FilterAll, "")

	require.Len(t, got, 3)
	// incomplete before complete, then high priority before low
	assert.Equal(t, "t1", got[0].ID)
	assert.Equal(t, "t2", got[1].ID)
	assert.Equal(t, "t3", got[2].ID)
}

func TestVisible_NewestFirstWithinPriority(t *testing.T) {
	older := Task{ID: "old", Priority: PriorityMedium, CreatedAt: at(1)}
	newer := Task{ID: "new", Priority: PriorityMedium, CreatedAt: at(2)}

	got := Visible([]Task{older, newer}, FilterAll, "")

	require.Len(t, got, 2)
	assert.Equal(t, "new", got[0].ID)
	assert.Equal(t, "old", got[1].ID)
}

func TestVisible_Filter(t *testing.T) {
	a := Task{ID: "a", Title: "active one", CreatedAt: at(1)}
	b := Task{ID: "b", Title: "done one", Done: true, CreatedAt: at(2)}
	all := []Task{a, b}

	tests := []struct {
		name    string
		filter  Filter
		wantIDs []string
	}{
		{"all keeps everything", FilterAll, []string{"a", "b"}},
		{"active keeps incomplete", FilterActive, []string{"a"}},
		{"done keeps complete", FilterDone, []string{"b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible(all, tt.filter, "")
			ids := make([]string, 0, len(got))
			for _, task := range got {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestVisible_Search(t *testing.T) {
	milk := Task{ID: "milk", Title: "Buy milk", CreatedAt: at(1)}
	mom := Task{ID: "mom", Title: "Call mom", Description: "milk included", CreatedAt: at(2)}
	other := Task{ID: "other", Title: "Walk dog", CreatedAt: at(3)}
	all := []Task{milk, mom, other}

	tests := []struct {
		name    string
		query   string
		wantIDs []string
	}{
		{"matches title or description", "milk", []string{"mom", "milk"}},
		{"case insensitive", "MILK", []string{"mom", "milk"}},
		{"query is trimmed", "  milk  ", []string{"mom", "milk"}},
		{"blank query keeps everything", "   ", []string{"other", "mom", "milk"}},
		{"no match yields empty", "xyzzy", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Visible(all, FilterAll, tt.query)
			ids := make([]string, 0, len(got))
			for _, task := range got {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestVisible_Idempotent(t *testing.T) {
	all := []Task{
		{ID: "a", Title: "alpha", Priority: PriorityHigh, CreatedAt: at(1)},
		{ID: "b", Title: "beta", Priority: PriorityLow, Done: true, CreatedAt: at(2)},
		{ID: "c", Title: "gamma", Priority: PriorityMedium, CreatedAt: at(3)},
	}

	first := Visible(all, FilterAll, "a")
	second := Visible(all, FilterAll, "a")

	assert.Equal(t, first, second)
}

func TestVisible_StableOnEqualKeys(t *testing.T) {
	// Same done state, priority, and timestamp: relative input order must
	// be preserved, and repeated calls must not reorder.
	ts := at(5)
	all := []Task{
		{ID: "x", Title: "same", Priority: PriorityMedium, CreatedAt: ts},
		{ID: "y", Title: "same", Priority: PriorityMedium, CreatedAt: ts},
		{ID: "z", Title: "same", Priority: PriorityMedium, CreatedAt: ts},
	}

	got := Visible(all, FilterAll, "")

	require.Len(t, got, 3)
	assert.Equal(t, "x", got[0].ID)
	assert.Equal(t, "y", got[1].ID)
	assert.Equal(t, "z", got[2].ID)
}

func TestVisible_DoesNotMutateInput(t *testing.T) {
	all := []Task{
		{ID: "b", Priority: PriorityLow, CreatedAt: at(1)},
		{ID: "a", Priority: PriorityHigh, CreatedAt: at(2)},
	}

	_ = Visible(all, FilterAll, "")

	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "a", all[1].ID)
}
