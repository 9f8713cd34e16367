package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/colonyops/tick/internal/core/styles"
	"github.com/colonyops/tick/internal/core/task"
	"github.com/colonyops/tick/internal/core/validate"
	"github.com/colonyops/tick/internal/tui/components/form"
)

// taskSubmitMsg carries the confirmed form values back to the model.
// EditID is empty for adds, otherwise the id of the task being edited.
type taskSubmitMsg struct {
	EditID      string
	Title       string
	Description string
	Priority    task.Priority
}

// taskFormCancelMsg signals the form was dismissed without saving.
type taskFormCancelMsg struct{}

// TaskForm is the add/edit dialog. Field state is plain local form state:
// nothing escapes until the user confirms, at which point the values are
// submitted as a single message.
type TaskForm struct {
	fields []form.Field
	focus  int
	errs   []string
	editID string
}

const (
	fieldTitle = iota
	fieldDescription
	fieldPriority
	fieldCount
)

// NewTaskForm creates an empty form for adding a task.
func NewTaskForm(defaultPriority task.Priority) *TaskForm {
	return newTaskForm("", "", "", defaultPriority)
}

// NewEditForm creates a form pre-filled from an existing task.
func NewEditForm(t task.Task) *TaskForm {
	return newTaskForm(t.ID, t.Title, t.Description, t.Priority)
}

func newTaskForm(editID, title, description string, priority task.Priority) *TaskForm {
	priorities := task.Priorities()
	options := make([]string, 0, len(priorities))
	for _, p := range priorities {
		options = append(options, string(p))
	}

	f := &TaskForm{
		fields: []form.Field{
			form.NewTextField("Title", "what needs doing?", title),
			form.NewTextAreaField("Description", "details (optional, markdown ok)", description),
			form.NewSelectField("Priority", options, string(priority)),
		},
		errs:   make([]string, fieldCount),
		editID: editID,
	}
	return f
}

// Init focuses the title field.
func (f *TaskForm) Init() tea.Cmd {
	return f.fields[fieldTitle].Focus()
}

// Editing reports whether the form edits an existing task.
func (f *TaskForm) Editing() bool {
	return f.editID != ""
}

func (f *TaskForm) Update(msg tea.Msg) (*TaskForm, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "esc":
			return f, func() tea.Msg { return taskFormCancelMsg{} }
		case "tab", "shift+tab":
			return f, f.cycleFocus(key.String() == "shift+tab")
		case "ctrl+s":
			return f, f.submit()
		case "enter":
			// Enter inserts a newline in the description textarea;
			// everywhere else it submits.
			if f.focus != fieldDescription {
				return f, f.submit()
			}
		}
	}

	var cmd tea.Cmd
	f.fields[f.focus], cmd = f.fields[f.focus].Update(msg)
	return f, cmd
}

func (f *TaskForm) cycleFocus(backward bool) tea.Cmd {
	f.fields[f.focus].Blur()
	if backward {
		f.focus = (f.focus + fieldCount - 1) % fieldCount
	} else {
		f.focus = (f.focus + 1) % fieldCount
	}
	return f.fields[f.focus].Focus()
}

// titleValidation holds the inline validation rules for the title field.
// The store re-validates on Add, so the two paths share the same limits.
var titleValidation = form.FieldValidation{
	Required:  true,
	MaxLength: validate.MaxTitleLength,
}

// submit validates the title and either records an inline error or emits
// a taskSubmitMsg with the confirmed values. The title is trimmed here so
// the add and edit paths store the same value.
func (f *TaskForm) submit() tea.Cmd {
	title, _ := f.fields[fieldTitle].Value().(string)

	f.errs[fieldTitle] = titleValidation.ValidateText(title)
	if f.errs[fieldTitle] != "" {
		return nil
	}

	description, _ := f.fields[fieldDescription].Value().(string)
	priority, _ := f.fields[fieldPriority].Value().(string)

	msg := taskSubmitMsg{
		EditID:      f.editID,
		Title:       strings.TrimSpace(title),
		Description: description,
		Priority:    task.Priority(priority),
	}
	return func() tea.Msg { return msg }
}

func (f *TaskForm) View() string {
	title := "New Task"
	if f.Editing() {
		title = "Edit Task"
	}

	parts := []string{styles.ModalTitleStyle.Render(title)}
	for i, field := range f.fields {
		parts = append(parts, field.View())
		if f.errs[i] != "" {
			parts = append(parts, styles.FormErrorStyle.Render("  "+f.errs[i]))
		}
	}
	parts = append(parts, styles.ModalHelpStyle.Render("tab next • enter save • esc cancel"))

	return styles.ModalStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}
