package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tick/internal/core/task"
)

func TestTaskStore_Add(t *testing.T) {
	t.Run("assigns id and timestamp", func(t *testing.T) {
		store := NewTaskStore()

		got, err := store.Add("Buy milk", "2%", task.PriorityHigh)
		require.NoError(t, err)

		assert.NotEmpty(t, got.ID)
		assert.False(t, got.CreatedAt.IsZero())
		assert.Equal(t, "Buy milk", got.Title)
		assert.Equal(t, "2%", got.Description)
		assert.Equal(t, task.PriorityHigh, got.Priority)
		assert.False(t, got.Done)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("stores trimmed title", func(t *testing.T) {
		store := NewTaskStore()

		got, err := store.Add("  Buy milk  ", "", task.PriorityMedium)
		require.NoError(t, err)
		assert.Equal(t, "Buy milk", got.Title)
	})

	t.Run("rejects blank titles without mutating", func(t *testing.T) {
		store := NewTaskStore()

		for _, title := range []string{"", "   ", "\t"} {
			_, err := store.Add(title, "", task.PriorityMedium)
			assert.Error(t, err, "Add(%q) should fail", title)
		}
		assert.Equal(t, 0, store.Len())
	})

	t.Run("ids are unique", func(t *testing.T) {
		store := NewTaskStore()

		seen := make(map[string]bool)
		for range 100 {
			got, err := store.Add("task", "", task.PriorityLow)
			require.NoError(t, err)
			assert.False(t, seen[got.ID], "duplicate id %s", got.ID)
			seen[got.ID] = true
		}
	})

	t.Run("length equals successful adds", func(t *testing.T) {
		store := NewTaskStore()

		titles := []string{"one", "  ", "two", "", "three"}
		successes := 0
		for _, title := range titles {
			if _, err := store.Add(title, "", task.PriorityMedium); err == nil {
				successes++
			}
		}
		assert.Equal(t, successes, store.Len())
		assert.Equal(t, 3, store.Len())
	})
}

func TestTaskStore_Update(t *testing.T) {
	t.Run("replaces in place preserving position", func(t *testing.T) {
		store := NewTaskStore()
		first, err := store.Add("first", "", task.PriorityMedium)
		require.NoError(t, err)
		_, err = store.Add("second", "", task.PriorityMedium)
		require.NoError(t, err)

		first.Title = "renamed"
		first.Priority = task.PriorityHigh
		assert.True(t, store.Update(first))

		all := store.All()
		require.Len(t, all, 2)
		assert.Equal(t, "renamed", all[0].Title)
		assert.Equal(t, task.PriorityHigh, all[0].Priority)
		assert.Equal(t, "second", all[1].Title)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		store := NewTaskStore()
		added, err := store.Add("only", "", task.PriorityMedium)
		require.NoError(t, err)

		ghost := task.Task{ID: "missing", Title: "ghost"}
		assert.False(t, store.Update(ghost))

		all := store.All()
		require.Len(t, all, 1)
		assert.Equal(t, added, all[0])
	})
}

func TestTaskStore_RemoveRestore(t *testing.T) {
	t.Run("remove returns task and index", func(t *testing.T) {
		store := NewTaskStore()
		_, _ = store.Add("a", "", task.PriorityMedium)
		b, _ := store.Add("b", "", task.PriorityMedium)
		_, _ = store.Add("c", "", task.PriorityMedium)

		removed, index, ok := store.Remove(b.ID)
		require.True(t, ok)
		assert.Equal(t, b, removed)
		assert.Equal(t, 1, index)
		assert.Equal(t, 2, store.Len())
	})

	t.Run("remove unknown id is a no-op", func(t *testing.T) {
		store := NewTaskStore()
		_, _ = store.Add("a", "", task.PriorityMedium)

		_, _, ok := store.Remove("missing")
		assert.False(t, ok)
		assert.Equal(t, 1, store.Len())
	})

	t.Run("remove then restore reproduces the sequence", func(t *testing.T) {
		store := NewTaskStore()
		_, _ = store.Add("a", "", task.PriorityMedium)
		b, _ := store.Add("b", "", task.PriorityMedium)
		_, _ = store.Add("c", "", task.PriorityMedium)

		before := store.All()

		removed, index, ok := store.Remove(b.ID)
		require.True(t, ok)
		store.RestoreAt(removed, index)

		assert.Equal(t, before, store.All())
	})

	t.Run("restore clamps index into range", func(t *testing.T) {
		store := NewTaskStore()
		_, _ = store.Add("a", "", task.PriorityMedium)

		low := task.Task{ID: "low", Title: "low"}
		high := task.Task{ID: "high", Title: "high"}
		store.RestoreAt(low, -5)
		store.RestoreAt(high, 99)

		all := store.All()
		require.Len(t, all, 3)
		assert.Equal(t, "low", all[0].ID)
		assert.Equal(t, "high", all[2].ID)
	})
}

func TestTaskStore_ToggleDone(t *testing.T) {
	t.Run("flips completion both ways", func(t *testing.T) {
		store := NewTaskStore()
		added, _ := store.Add("a", "", task.PriorityMedium)

		got, ok := store.ToggleDone(added.ID)
		require.True(t, ok)
		assert.True(t, got.Done)

		got, ok = store.ToggleDone(added.ID)
		require.True(t, ok)
		assert.False(t, got.Done)
	})

	t.Run("unknown id is a no-op", func(t *testing.T) {
		store := NewTaskStore()

		_, ok := store.ToggleDone("missing")
		assert.False(t, ok)
	})
}

func TestTaskStore_Get(t *testing.T) {
	store := NewTaskStore()
	added, _ := store.Add("a", "desc", task.PriorityLow)

	got, ok := store.Get(added.ID)
	require.True(t, ok)
	assert.Equal(t, added, got)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestTaskStore_AllReturnsCopy(t *testing.T) {
	store := NewTaskStore()
	_, _ = store.Add("a", "", task.PriorityMedium)

	all := store.All()
	all[0].Title = "mutated"

	fresh := store.All()
	assert.Equal(t, "a", fresh[0].Title)
}
