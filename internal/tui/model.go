// Package tui implements the single-screen task list application.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"

	"github.com/colonyops/tick/internal/core/config"
	"github.com/colonyops/tick/internal/core/styles"
	"github.com/colonyops/tick/internal/core/task"
	"github.com/colonyops/tick/internal/stores"
)

// mode identifies which surface currently owns key input.
type mode int

const (
	modeList mode = iota
	modeForm
	modePreview
)

// deletedTask is the single-step undo snapshot. Only the most recent
// delete is undoable: a second delete replaces the snapshot.
type deletedTask struct {
	task  task.Task
	index int
}

// toastTickMsg drives the toast TTL countdown.
type toastTickMsg struct{}

func toastTick() tea.Cmd {
	return tea.Tick(toastTickInterval, func(time.Time) tea.Msg {
		return toastTickMsg{}
	})
}

// Model is the bubbletea model for the task list screen. All task state
// lives in the store; the model owns only view state (filter, search,
// selection, open modal).
type Model struct {
	store *stores.TaskStore
	cfg   *config.Config

	mode    mode
	filter  task.Filter
	keys    KeyMap
	help    help.Model
	list    list.Model
	search  textinput.Model
	toasts  *ToastController
	form    *TaskForm
	preview *PreviewModal

	searching   bool
	lastDeleted *deletedTask

	width  int
	height int
}

// New creates the task list model backed by store.
func New(store *stores.TaskStore, cfg *config.Config) *Model {
	l := list.New(nil, NewTaskDelegate(), 80, 20)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowPagination(false)

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search title or description"
	search.Width = 40

	m := &Model{
		store:  store,
		cfg:    cfg,
		filter: cfg.Defaults.Filter,
		keys:   DefaultKeyMap(),
		help:   help.New(),
		list:   l,
		search: search,
		toasts: NewToastController(),
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// refresh recomputes the visible task list from the store and current view
// state, keeping the selection on the same task where possible.
func (m *Model) refresh() {
	var selectedID string
	if item, ok := m.list.SelectedItem().(TaskItem); ok {
		selectedID = item.Task.ID
	}

	visible := task.Visible(m.store.All(), m.filter, m.search.Value())

	items := make([]list.Item, len(visible))
	selected := 0
	for i, t := range visible {
		items[i] = TaskItem{Task: t}
		if t.ID == selectedID {
			selected = i
		}
	}

	m.list.SetItems(items)
	if len(items) > 0 {
		m.list.Select(selected)
	}
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(msg.Width, max(msg.Height-6, 4))
		m.help.Width = msg.Width
		return m, nil

	case toastTickMsg:
		m.toasts.Tick(toastTickInterval)
		if !m.toasts.HasToasts() {
			m.toasts.SetTicking(false)
			return m, nil
		}
		return m, toastTick()

	case taskSubmitMsg:
		return m.handleSubmit(msg)

	case taskFormCancelMsg:
		m.form = nil
		m.mode = modeList
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			var cmd tea.Cmd
			m.form, cmd = m.form.Update(msg)
			return m, cmd
		case modePreview:
			if msg.String() == "esc" || msg.String() == "q" {
				m.preview = nil
				m.mode = modeList
			}
			return m, nil
		default:
			return m.updateList(msg)
		}
	}

	return m, nil
}

// updateList handles keys on the main list screen.
func (m *Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		switch msg.String() {
		case "esc":
			m.searching = false
			m.search.Blur()
			m.search.SetValue("")
			m.refresh()
			return m, nil
		case "enter":
			m.searching = false
			m.search.Blur()
			return m, nil
		default:
			var cmd tea.Cmd
			m.search, cmd = m.search.Update(msg)
			m.refresh()
			return m, cmd
		}
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Filter):
		m.filter = m.filter.Next()
		m.refresh()
		return m, nil

	case key.Matches(msg, m.keys.Add):
		m.form = NewTaskForm(m.cfg.Defaults.Priority)
		m.mode = modeForm
		return m, m.form.Init()

	case key.Matches(msg, m.keys.Edit):
		if item, ok := m.list.SelectedItem().(TaskItem); ok {
			m.form = NewEditForm(item.Task)
			m.mode = modeForm
			return m, m.form.Init()
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		return m.deleteSelected()

	case key.Matches(msg, m.keys.Undo):
		return m.undoDelete()

	case key.Matches(msg, m.keys.Toggle):
		if item, ok := m.list.SelectedItem().(TaskItem); ok {
			if _, ok := m.store.ToggleDone(item.Task.ID); ok {
				m.refresh()
			}
		}
		return m, nil

	case key.Matches(msg, m.keys.Preview):
		if item, ok := m.list.SelectedItem().(TaskItem); ok {
			m.preview = NewPreviewModal(item.Task, m.width)
			m.mode = modePreview
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// handleSubmit applies a confirmed form to the store.
func (m *Model) handleSubmit(msg taskSubmitMsg) (tea.Model, tea.Cmd) {
	if msg.EditID == "" {
		t, err := m.store.Add(msg.Title, msg.Description, msg.Priority)
		if err != nil {
			// The form validates before submitting, so this only fires if
			// the two validation paths ever drift apart.
			log.Warn().Err(err).Msg("add rejected by store")
			return m, nil
		}
		log.Debug().Str("id", t.ID).Msg("task added")
	} else {
		prev, ok := m.store.Get(msg.EditID)
		if ok {
			updated := task.Task{
				ID:          prev.ID,
				Title:       msg.Title,
				Description: msg.Description,
				Done:        prev.Done,
				Priority:    msg.Priority,
				CreatedAt:   prev.CreatedAt,
			}
			m.store.Update(updated)
		}
	}

	m.form = nil
	m.mode = modeList
	m.refresh()
	return m, nil
}

// deleteSelected removes the selected task and arms the undo snapshot.
func (m *Model) deleteSelected() (tea.Model, tea.Cmd) {
	item, ok := m.list.SelectedItem().(TaskItem)
	if !ok {
		return m, nil
	}

	removed, index, ok := m.store.Remove(item.Task.ID)
	if !ok {
		return m, nil
	}

	m.lastDeleted = &deletedTask{task: removed, index: index}
	m.refresh()

	m.toasts.Push("deleted \"" + truncate(removed.Title, 24) + "\" - press u to undo")
	if !m.toasts.Ticking() {
		m.toasts.SetTicking(true)
		return m, toastTick()
	}
	return m, nil
}

// undoDelete restores the most recently deleted task at its original index.
func (m *Model) undoDelete() (tea.Model, tea.Cmd) {
	if m.lastDeleted == nil {
		return m, nil
	}

	m.store.RestoreAt(m.lastDeleted.task, m.lastDeleted.index)
	log.Debug().Str("id", m.lastDeleted.task.ID).Msg("task restored")
	m.lastDeleted = nil
	m.toasts.DismissAll()
	m.refresh()
	return m, nil
}

// statusLine summarizes the current view state for the header.
func (m *Model) statusLine() string {
	active := 0
	for _, t := range m.store.All() {
		if !t.Done {
			active++
		}
	}
	total := m.store.Len()
	noun := "tasks"
	if total == 1 {
		noun = "task"
	}
	return styles.TextMutedStyle.Render(fmt.Sprintf("%d %s, %d active", total, noun, active))
}
