package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tick/internal/core/task"
)

func TestTaskForm_SubmitBlocksBlankTitle(t *testing.T) {
	f := NewTaskForm(task.PriorityMedium)

	cmd := f.submit()

	assert.Nil(t, cmd, "blank title must not submit")
	assert.NotEmpty(t, f.errs[fieldTitle])
}

func TestTaskForm_SubmitEmitsValues(t *testing.T) {
	f := NewEditForm(task.Task{
		ID:          "abc",
		Title:       "Buy milk",
		Description: "2%",
		Priority:    task.PriorityHigh,
	})

	cmd := f.submit()
	require.NotNil(t, cmd)

	msg, ok := cmd().(taskSubmitMsg)
	require.True(t, ok)
	assert.Equal(t, "abc", msg.EditID)
	assert.Equal(t, "Buy milk", msg.Title)
	assert.Equal(t, "2%", msg.Description)
	assert.Equal(t, task.PriorityHigh, msg.Priority)
}

func TestTaskForm_SubmitTrimsTitle(t *testing.T) {
	f := NewEditForm(task.Task{
		ID:       "abc",
		Title:    "  Buy milk  ",
		Priority: task.PriorityMedium,
	})

	cmd := f.submit()
	require.NotNil(t, cmd)

	msg, ok := cmd().(taskSubmitMsg)
	require.True(t, ok)
	assert.Equal(t, "Buy milk", msg.Title)
}

func TestTaskForm_CycleFocus(t *testing.T) {
	f := NewTaskForm(task.PriorityMedium)
	_ = f.Init()

	assert.True(t, f.fields[fieldTitle].Focused())

	_ = f.cycleFocus(false)
	assert.True(t, f.fields[fieldDescription].Focused())
	assert.False(t, f.fields[fieldTitle].Focused())

	_ = f.cycleFocus(true)
	assert.True(t, f.fields[fieldTitle].Focused())
}

func TestTaskForm_Editing(t *testing.T) {
	assert.False(t, NewTaskForm(task.PriorityMedium).Editing())
	assert.True(t, NewEditForm(task.Task{ID: "x"}).Editing())
}
