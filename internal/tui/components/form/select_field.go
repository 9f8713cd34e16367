package form

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tick/internal/core/styles"
)

// SelectField is a single-select form field cycled with left/right keys.
type SelectField struct {
	options  []string
	selected int
	label    string
	focused  bool
}

// NewSelectField creates a single-select field from static options.
// defaultVal pre-selects the matching option if found.
func NewSelectField(label string, options []string, defaultVal string) *SelectField {
	selected := 0
	for i, opt := range options {
		if opt == defaultVal {
			selected = i
		}
	}

	return &SelectField{
		options:  options,
		selected: selected,
		label:    label,
	}
}

func (f *SelectField) Update(msg tea.Msg) (Field, tea.Cmd) {
	if !f.focused {
		return f, nil
	}

	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "left", "h":
			f.selected = (f.selected + len(f.options) - 1) % len(f.options)
		case "right", "l", " ":
			f.selected = (f.selected + 1) % len(f.options)
		}
	}
	return f, nil
}

func (f *SelectField) View() string {
	titleStyle := styles.TextMutedStyle
	if f.focused {
		titleStyle = styles.FormTitleStyle
	}
	title := titleStyle.Render(f.label)

	rendered := make([]string, len(f.options))
	for i, opt := range f.options {
		if i == f.selected {
			rendered[i] = styles.TextPrimaryStyle.Render("● " + opt)
		} else {
			rendered[i] = styles.TextMutedStyle.Render("○ " + opt)
		}
	}
	row := strings.Join(rendered, "  ")

	content := lipgloss.JoinVertical(lipgloss.Left, title, row)

	borderStyle := styles.FormFieldStyle
	if f.focused {
		borderStyle = styles.FormFieldFocusedStyle
	}

	return borderStyle.Render(content)
}

func (f *SelectField) Focus() tea.Cmd {
	f.focused = true
	return nil
}

func (f *SelectField) Blur() {
	f.focused = false
}

func (f *SelectField) Focused() bool { return f.focused }
func (f *SelectField) Value() any    { return f.options[f.selected] }
func (f *SelectField) Label() string { return f.label }
