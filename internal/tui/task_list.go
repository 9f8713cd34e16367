package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tick/internal/core/styles"
	"github.com/colonyops/tick/internal/core/task"
)

// TaskItem wraps a task for the list component.
type TaskItem struct {
	Task task.Task
}

// FilterValue returns the value used for filtering. The list's own filter
// is disabled (search goes through the view pipeline), but the interface
// requires it.
func (i TaskItem) FilterValue() string {
	return i.Task.Title
}

// TaskDelegate handles rendering of task items in the list.
type TaskDelegate struct{}

// NewTaskDelegate creates a new task delegate.
func NewTaskDelegate() TaskDelegate {
	return TaskDelegate{}
}

// Height returns the height of each item.
func (d TaskDelegate) Height() int {
	return 2
}

// Spacing returns the spacing between items.
func (d TaskDelegate) Spacing() int {
	return 0
}

// Update handles item updates.
func (d TaskDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders a single task item.
// Line 1: checkbox + title
// Line 2: priority badge + creation time + description snippet
func (d TaskDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	taskItem, ok := item.(TaskItem)
	if !ok {
		return
	}

	t := taskItem.Task
	isSelected := index == m.Index()
	width := m.Width()
	if width <= 0 {
		width = 80
	}
	contentWidth := width - 4

	checkbox := "[ ]"
	titleStyle := styles.ItemTitleStyle
	if t.Done {
		checkbox = "[x]"
		titleStyle = styles.ItemTitleDoneStyle
	}

	cursor := "  "
	if isSelected {
		cursor = "> "
		if !t.Done {
			titleStyle = styles.ItemSelectedStyle
		}
	}

	title := truncate(t.Title, contentWidth-len(checkbox)-3)
	line1 := fmt.Sprintf("%s%s %s", cursor, checkbox, titleStyle.Render(title))

	meta := []string{
		priorityBadge(t.Priority),
		styles.ItemMetaStyle.Render(t.CreatedAt.Format("Jan 2 15:04")),
	}
	if desc := strings.ReplaceAll(t.Description, "\n", " "); desc != "" {
		meta = append(meta, styles.ItemMetaStyle.Render(truncate(desc, contentWidth/2)))
	}
	line2 := "      " + strings.Join(meta, styles.ItemMetaStyle.Render(" • "))

	_, _ = io.WriteString(w, lipgloss.JoinVertical(lipgloss.Left, line1, line2))
}

// priorityBadge renders a colored priority tag.
func priorityBadge(p task.Priority) string {
	switch p {
	case task.PriorityHigh:
		return styles.PriorityHighStyle.Render("high")
	case task.PriorityLow:
		return styles.PriorityLowStyle.Render("low")
	default:
		return styles.PriorityMediumStyle.Render("med")
	}
}

// truncate cuts s to at most width runes, appending an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
