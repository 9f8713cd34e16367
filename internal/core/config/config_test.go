package config

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/colonyops/tick/internal/core/styles"
	"github.com/colonyops/tick/internal/core/task"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()

	cfg, err := Load(fs, "/home/user/.config/tick/tick.yml")
	require.NoError(t, err)

	assert.Equal(t, styles.DefaultTheme, cfg.TUI.Theme)
	assert.Equal(t, task.PriorityMedium, cfg.Defaults.Priority)
	assert.Equal(t, task.FilterAll, cfg.Defaults.Filter)
}

func TestLoad_PartialConfigFillsDefaults(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/cfg/tick.yml"
	require.NoError(t, afero.WriteFile(fs, path, []byte("tui:\n  theme: gruvbox\n"), 0o644))

	cfg, err := Load(fs, path)
	require.NoError(t, err)

	assert.Equal(t, "gruvbox", cfg.TUI.Theme)
	assert.Equal(t, task.PriorityMedium, cfg.Defaults.Priority)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown theme", "tui:\n  theme: neon-dreams\n"},
		{"unknown priority", "defaults:\n  priority: urgent\n"},
		{"unknown filter", "defaults:\n  filter: someday\n"},
		{"malformed yaml", "tui: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := afero.NewMemMapFs()
			path := "/cfg/tick.yml"
			require.NoError(t, afero.WriteFile(fs, path, []byte(tt.yaml), 0o644))

			_, err := Load(fs, path)
			assert.Error(t, err)
		})
	}
}

func TestWrite_RoundTrip(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := "/home/user/.config/tick/tick.yml"

	cfg := Default()
	cfg.TUI.Theme = "gruvbox"
	cfg.Defaults.Priority = task.PriorityHigh

	require.NoError(t, Write(fs, path, cfg))

	got, err := Load(fs, path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}
