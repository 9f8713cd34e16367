package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tick/internal/core/styles"
	"github.com/colonyops/tick/internal/core/task"
)

// PreviewModal shows a single task in full, with the description rendered
// as markdown.
type PreviewModal struct {
	task     task.Task
	rendered string
}

// NewPreviewModal creates a preview for the given task. width is the
// terminal width used for word wrapping.
func NewPreviewModal(t task.Task, width int) *PreviewModal {
	return &PreviewModal{
		task:     t,
		rendered: renderDescription(t.Description, width),
	}
}

// renderDescription renders markdown for display, falling back to the raw
// text when the renderer fails.
func renderDescription(md string, width int) string {
	if strings.TrimSpace(md) == "" {
		return styles.TextMutedStyle.Render("no description")
	}

	wrapWidth := max(width-10, 20)
	r, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(wrapWidth),
	)
	if err != nil {
		return md
	}

	rendered, err := r.Render(md)
	if err != nil {
		return md
	}
	return strings.TrimRight(rendered, "\n")
}

func (p *PreviewModal) View() string {
	t := p.task

	status := styles.TextSuccessStyle.Render("done")
	if !t.Done {
		status = styles.TextPrimaryStyle.Render("active")
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		styles.ModalTitleStyle.Render(t.Title),
		"  ",
		priorityBadge(t.Priority),
		" ",
		status,
	)
	meta := styles.ItemMetaStyle.Render("created " + t.CreatedAt.Format("Jan 2 2006 15:04"))

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		header,
		meta,
		"",
		p.rendered,
		"",
		styles.ModalHelpStyle.Render("esc close"),
	)
	return styles.ModalStyle.Render(content)
}
