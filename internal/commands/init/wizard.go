// Package initcmd implements the interactive first-run setup.
package initcmd

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/afero"

	"github.com/colonyops/tick/internal/core/config"
	"github.com/colonyops/tick/internal/core/styles"
	"github.com/colonyops/tick/internal/core/task"
)

// WizardOptions configures the wizard behavior.
type WizardOptions struct {
	ConfigPath string
	Yes        bool // skip prompts, use defaults
	Force      bool // overwrite existing config
}

// Wizard orchestrates the init process.
type Wizard struct {
	opts WizardOptions
	fs   afero.Fs
}

// NewWizard creates a new init wizard writing through fs.
func NewWizard(fs afero.Fs, opts WizardOptions) *Wizard {
	return &Wizard{opts: opts, fs: fs}
}

// Run executes the wizard.
func (w *Wizard) Run() error {
	exists, err := afero.Exists(w.fs, w.opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("check config: %w", err)
	}

	if exists && !w.opts.Force {
		if w.opts.Yes {
			return fmt.Errorf("config exists at %s; use --force to overwrite", w.opts.ConfigPath)
		}

		var overwrite bool
		err := huh.NewConfirm().
			Title("Config file already exists").
			Description(w.opts.ConfigPath + "\nOverwrite?").
			Value(&overwrite).
			Run()
		if err != nil {
			return err
		}
		if !overwrite {
			fmt.Println("init cancelled")
			return nil
		}
	}

	cfg := config.Default()
	if !w.opts.Yes {
		if err := w.promptUser(cfg); err != nil {
			return err
		}
	}

	if err := config.Write(w.fs, w.opts.ConfigPath, cfg); err != nil {
		return err
	}

	fmt.Printf("Wrote config to %s\n", w.opts.ConfigPath)
	return nil
}

// promptUser collects theme and default preferences.
func (w *Wizard) promptUser(cfg *config.Config) error {
	themeOptions := huh.NewOptions(styles.ThemeNames()...)

	priorities := task.Priorities()
	priorityOptions := make([]huh.Option[task.Priority], 0, len(priorities))
	for _, p := range priorities {
		priorityOptions = append(priorityOptions, huh.NewOption(string(p), p))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Theme").
			Options(themeOptions...).
			Value(&cfg.TUI.Theme),
		huh.NewSelect[task.Priority]().
			Title("Default priority for new tasks").
			Options(priorityOptions...).
			Value(&cfg.Defaults.Priority),
	))

	return form.Run()
}
