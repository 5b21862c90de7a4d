// Package tui renders the review session with bubbletea.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/deputui/internal/domain"
	"github.com/runoshun/deputui/internal/review"
)

// Options configures the Model.
type Options struct {
	NotesStyle     string // glamour style name
	RenderMarkdown bool
}

// Result is the outcome of a finished review.
type Result struct {
	Err      error            // Fatal error that ended the loop, if any
	Selected []domain.Release // Selected releases in list order
	Intent   review.ExitIntent
}

// Model is the bubbletea model for the review screen.
// It owns the session; the only state shared with other goroutines is
// behind the notes runner.
type Model struct {
	// Dependencies (pointers first for alignment)
	session  *review.Session
	updates  <-chan struct{}
	renderer *notesRenderer
	err      error

	// Components
	keys   KeyMap
	styles Styles
	help   help.Model
	notes  viewport.Model

	width  int
	height int
}

// New creates a Model over session. updates must be the channel the notes
// runner signals on.
func New(session *review.Session, updates <-chan struct{}, opts Options) *Model {
	style := opts.NotesStyle
	if style == "" {
		style = domain.DefaultNotesStyle
	}

	return &Model{
		session:  session,
		updates:  updates,
		renderer: newNotesRenderer(style, opts.RenderMarkdown),
		keys:     DefaultKeyMap(),
		styles:   DefaultStyles(),
		help:     help.New(),
		notes:    viewport.New(0, 0),
	}
}

// Init starts listening for notes updates.
func (m *Model) Init() tea.Cmd {
	return waitForNotes(m.updates)
}

// Result returns the outcome of the review.
func (m *Model) Result() Result {
	res := Result{
		Err:    m.err,
		Intent: m.session.ExitIntent(),
	}
	if res.Intent == review.ExitConfirm {
		res.Selected = m.session.SelectedReleases()
	}
	return res
}
