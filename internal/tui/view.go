package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tick/internal/core/styles"
	"github.com/colonyops/tick/internal/core/task"
)

// filterLabel maps a filter to its display label. Display vocabulary stays
// in the presentation layer; the core only knows the enum.
func filterLabel(f task.Filter) string {
	switch f {
	case task.FilterActive:
		return "active"
	case task.FilterDone:
		return "done"
	default:
		return "all"
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	switch m.mode {
	case modeForm:
		return m.centered(m.form.View())
	case modePreview:
		return m.centered(m.preview.View())
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		styles.HeaderStyle.Render("tick"),
		"  ",
		styles.FilterLabelStyle.Render("["+filterLabel(m.filter)+"]"),
		"  ",
		m.statusLine(),
	)

	searchLine := styles.SearchOffStyle.Render("press / to search")
	if m.searching || m.search.Value() != "" {
		searchLine = m.search.View()
	}

	body := m.list.View()
	if len(m.list.Items()) == 0 {
		body = styles.TextMutedStyle.Render("\n  nothing here - press a to add a task\n")
	}

	sections := []string{header, searchLine, body}

	if m.toasts.HasToasts() {
		lines := make([]string, 0, len(m.toasts.Toasts()))
		for _, t := range m.toasts.Toasts() {
			lines = append(lines, styles.ToastInfoStyle.Render(t.text))
		}
		sections = append(sections, styles.ToastStyle.Render(strings.Join(lines, "\n")))
	}

	sections = append(sections, m.help.View(m.keys))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// centered renders a modal centered in the available space when the
// terminal size is known.
func (m *Model) centered(content string) string {
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}
