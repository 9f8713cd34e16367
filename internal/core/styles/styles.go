// Package styles provides shared lipgloss styles for the tick TUI.
package styles

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines a minimal semantic theme palette.
type Palette struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
}

// ThemeNames returns sorted names of all built-in themes.
func ThemeNames() []string {
	names := make([]string, 0, len(themes))
	for name := range themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetPalette returns the palette for the given theme name.
func GetPalette(name string) (Palette, bool) {
	p, ok := themes[name]
	return p, ok
}

// CurrentPalette holds the active theme palette.
var CurrentPalette Palette

// Exported color aliases for convenience.
var (
	ColorPrimary    lipgloss.Color
	ColorSecondary  lipgloss.Color
	ColorForeground lipgloss.Color
	ColorMuted      lipgloss.Color
	ColorSurface    lipgloss.Color
	ColorSuccess    lipgloss.Color
	ColorWarning    lipgloss.Color
	ColorError      lipgloss.Color
)

// Style exports.
var (
	TextPrimaryStyle    lipgloss.Style
	TextForegroundStyle lipgloss.Style
	TextMutedStyle      lipgloss.Style
	TextSuccessStyle    lipgloss.Style
	TextErrorStyle      lipgloss.Style

	HeaderStyle      lipgloss.Style
	FilterLabelStyle lipgloss.Style
	SearchOffStyle   lipgloss.Style

	ItemTitleStyle      lipgloss.Style
	ItemTitleDoneStyle  lipgloss.Style
	ItemSelectedStyle   lipgloss.Style
	ItemMetaStyle       lipgloss.Style
	PriorityHighStyle   lipgloss.Style
	PriorityMediumStyle lipgloss.Style
	PriorityLowStyle    lipgloss.Style

	ModalStyle      lipgloss.Style
	ModalTitleStyle lipgloss.Style
	ModalHelpStyle  lipgloss.Style

	FormTitleStyle        lipgloss.Style
	FormFieldStyle        lipgloss.Style
	FormFieldFocusedStyle lipgloss.Style
	FormErrorStyle        lipgloss.Style

	ToastStyle     lipgloss.Style
	ToastInfoStyle lipgloss.Style
)

// SetTheme sets the active palette and rebuilds all global styles.
func SetTheme(p Palette) {
	CurrentPalette = p

	ColorPrimary = p.Primary
	ColorSecondary = p.Secondary
	ColorForeground = p.Foreground
	ColorMuted = p.Muted
	ColorSurface = p.Surface
	ColorSuccess = p.Success
	ColorWarning = p.Warning
	ColorError = p.Error

	TextPrimaryStyle = lipgloss.NewStyle().Foreground(p.Primary)
	TextForegroundStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	TextMutedStyle = lipgloss.NewStyle().Foreground(p.Muted)
	TextSuccessStyle = lipgloss.NewStyle().Foreground(p.Success)
	TextErrorStyle = lipgloss.NewStyle().Foreground(p.Error)

	HeaderStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	FilterLabelStyle = lipgloss.NewStyle().Foreground(p.Secondary).Bold(true)
	SearchOffStyle = lipgloss.NewStyle().Foreground(p.Muted)

	ItemTitleStyle = lipgloss.NewStyle().Foreground(p.Foreground)
	ItemTitleDoneStyle = lipgloss.NewStyle().Foreground(p.Muted).Strikethrough(true)
	ItemSelectedStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	ItemMetaStyle = lipgloss.NewStyle().Foreground(p.Muted)
	PriorityHighStyle = lipgloss.NewStyle().Foreground(p.Error).Bold(true)
	PriorityMediumStyle = lipgloss.NewStyle().Foreground(p.Warning)
	PriorityLowStyle = lipgloss.NewStyle().Foreground(p.Muted)

	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(1, 2)
	ModalTitleStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	ModalHelpStyle = lipgloss.NewStyle().Foreground(p.Muted)

	FormTitleStyle = lipgloss.NewStyle().Foreground(p.Primary).Bold(true)
	FormFieldStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Surface).
		Padding(0, 1)
	FormFieldFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Primary).
		Padding(0, 1)
	FormErrorStyle = lipgloss.NewStyle().Foreground(p.Error)

	ToastStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Warning).
		Padding(0, 1)
	ToastInfoStyle = lipgloss.NewStyle().Foreground(p.Foreground)
}

func init() {
	// Default theme until config is loaded.
	p, _ := GetPalette(DefaultTheme)
	SetTheme(p)
}
