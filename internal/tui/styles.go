package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/deputui/internal/asynctask"
)

// Colors defines the color palette for the TUI.
var Colors = struct {
	// Base colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color

	// Text colors
	TextNormal  lipgloss.Color
	TextFocused lipgloss.Color
	Inactive    lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green
	Warning:   lipgloss.Color("#FDCB6E"), // Yellow

	TextNormal:  lipgloss.Color("#DFE6E9"), // Light gray
	TextFocused: lipgloss.Color("#FFEAA7"), // Yellow
	Inactive:    lipgloss.Color("#4B5563"), // Dark gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	// Panes
	PaneActive   lipgloss.Style
	PaneInactive lipgloss.Style

	// Release list
	Cursor         lipgloss.Style
	CursorInactive lipgloss.Style
	Bracket        lipgloss.Style
	Check          lipgloss.Style
	Label          lipgloss.Style
	LabelFocused   lipgloss.Style

	// Notes placeholders
	NotesIdle    lipgloss.Style
	NotesLoading lipgloss.Style
	NotesError   lipgloss.Style

	// Footer
	Footer lipgloss.Style

	// Fatal error
	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		PaneActive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary),

		PaneInactive: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Inactive),

		Cursor: lipgloss.NewStyle().
			Foreground(Colors.Secondary).
			Bold(true),

		CursorInactive: lipgloss.NewStyle().
			Foreground(Colors.Inactive),

		Bracket: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		Check: lipgloss.NewStyle().
			Foreground(Colors.Success).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(Colors.TextNormal),

		LabelFocused: lipgloss.NewStyle().
			Foreground(Colors.TextFocused).
			Bold(true),

		NotesIdle: lipgloss.NewStyle().
			Foreground(Colors.Warning),

		NotesLoading: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		NotesError: lipgloss.NewStyle().
			Foreground(Colors.Error),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}

// Pane returns the border style for a pane.
func (s Styles) Pane(active bool) lipgloss.Style {
	if active {
		return s.PaneActive
	}
	return s.PaneInactive
}

// NotesPlaceholder returns the style for a non-loaded notes state.
func (s Styles) NotesPlaceholder(state asynctask.State) lipgloss.Style {
	switch state {
	case asynctask.StateLoading:
		return s.NotesLoading
	case asynctask.StateError:
		return s.NotesError
	case asynctask.StateIdle, asynctask.StateLoaded:
		return s.NotesIdle
	default:
		return s.NotesIdle
	}
}
