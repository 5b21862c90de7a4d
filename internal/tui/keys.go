package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/deputui/internal/review"
)

// KeyMap defines the keybindings for the review screen.
type KeyMap struct {
	// Navigation
	Up    key.Binding // Cursor up, or scroll up in the notes pane
	Down  key.Binding // Cursor down, or scroll down in the notes pane
	Left  key.Binding // Focus the release list
	Right key.Binding // Focus the notes pane

	// Selection
	Toggle  key.Binding
	Confirm key.Binding
	Abort   key.Binding

	// Layout
	Grow   key.Binding // Widen the release list
	Shrink key.Binding // Narrow the release list
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "packages"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "release notes"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "toggle"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Abort: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "abort"),
		),
		Grow: key.NewBinding(
			key.WithKeys("+", "="),
			key.WithHelp("+", "widen"),
		),
		Shrink: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "narrow"),
		),
	}
}

// sessionKey translates a key press into a session key.
func (k KeyMap) sessionKey(msg tea.KeyMsg) review.Key {
	switch {
	case key.Matches(msg, k.Abort):
		return review.KeyInterrupt
	case key.Matches(msg, k.Up):
		return review.KeyUp
	case key.Matches(msg, k.Down):
		return review.KeyDown
	case key.Matches(msg, k.Left):
		return review.KeyLeft
	case key.Matches(msg, k.Right):
		return review.KeyRight
	case key.Matches(msg, k.Toggle):
		return review.KeyToggle
	case key.Matches(msg, k.Confirm):
		return review.KeyConfirm
	case key.Matches(msg, k.Grow):
		return review.KeyGrow
	case key.Matches(msg, k.Shrink):
		return review.KeyShrink
	default:
		return review.KeyUnknown
	}
}

// paneHelp adapts the KeyMap to help.KeyMap for one pane.
type paneHelp struct {
	keys KeyMap
	pane review.Pane
}

// ShortHelp returns the hints relevant to the focused pane.
func (h paneHelp) ShortHelp() []key.Binding {
	k := h.keys
	if h.pane == review.PaneNotes {
		return []key.Binding{k.Down, k.Up, k.Left, k.Abort}
	}
	return []key.Binding{k.Down, k.Up, k.Right, k.Toggle, k.Confirm, k.Grow, k.Shrink, k.Abort}
}

// FullHelp returns every hint grouped by column.
func (h paneHelp) FullHelp() [][]key.Binding {
	k := h.keys
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Toggle, k.Confirm, k.Abort},
		{k.Grow, k.Shrink},
	}
}
