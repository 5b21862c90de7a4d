// Package review holds the state machine of an interactive release review:
// which release is focused, which are selected, which pane has focus and
// whether the user has asked to leave. It is independent of any terminal
// library; the tui package translates input into Key events.
package review

import (
	"github.com/runoshun/deputui/internal/asynctask"
	"github.com/runoshun/deputui/internal/domain"
)

// Pane identifies the focused pane.
type Pane int

// Panes.
const (
	PaneReleases Pane = iota
	PaneNotes
)

// String returns the pane name.
func (p Pane) String() string {
	switch p {
	case PaneReleases:
		return "releases"
	case PaneNotes:
		return "notes"
	default:
		return "unknown"
	}
}

// ExitIntent records whether and how the user wants to leave.
type ExitIntent int

// Exit intents.
const (
	ExitNone ExitIntent = iota
	ExitAbort
	ExitConfirm
)

// Key is a logical input key.
type Key int

// Keys.
const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyToggle
	KeyConfirm
	KeyInterrupt
	KeyGrow
	KeyShrink
)

// KeyKind distinguishes presses from repeats and releases.
type KeyKind int

// Key kinds.
const (
	KindPress KeyKind = iota
	KindRepeat
	KindRelease
)

// KeyEvent is one input event.
type KeyEvent struct {
	Key  Key
	Kind KeyKind
}

// Press is a shorthand for a KindPress event.
func Press(k Key) KeyEvent {
	return KeyEvent{Key: k, Kind: KindPress}
}

// NotesRunner starts notes fetches and reports their status.
// *asynctask.Runner[domain.Release, string] satisfies it.
type NotesRunner interface {
	Start(release domain.Release) uint64
	Status() asynctask.Status[string]
}

// Options configures a Session.
type Options struct {
	ScrollStep      int
	LeftColumnWidth int
}

func (o Options) withDefaults() Options {
	if o.ScrollStep < 1 {
		o.ScrollStep = domain.DefaultScrollStep
	}
	if o.LeftColumnWidth == 0 {
		o.LeftColumnWidth = domain.DefaultLeftColumnWidth
	}
	o.LeftColumnWidth = clampWidth(o.LeftColumnWidth)
	return o
}

// widthStep is how much grow and shrink change the release column.
const widthStep = 1

// Session is the review state machine. It is owned by a single goroutine.
// Fields are ordered to minimize memory padding.
type Session struct {
	notes      NotesRunner
	list       *MultiSelect[domain.Release]
	pane       Pane
	exit       ExitIntent
	scroll     int
	scrollStep int
	leftWidth  int
}

// NewSession creates a session over releases and starts fetching notes for
// the first one. It fails with domain.ErrNoReleases when releases is empty.
func NewSession(releases []domain.Release, notes NotesRunner, opts Options) (*Session, error) {
	if len(releases) == 0 {
		return nil, domain.ErrNoReleases
	}
	opts = opts.withDefaults()

	s := &Session{
		notes:      notes,
		list:       NewMultiSelect(releases, domain.Release.String),
		pane:       PaneReleases,
		scrollStep: opts.ScrollStep,
		leftWidth:  opts.LeftColumnWidth,
	}
	s.fetchFocused()
	return s, nil
}

// HandleKey applies one key event.
func (s *Session) HandleKey(ev KeyEvent) {
	if ev.Kind != KindPress || s.exit != ExitNone {
		return
	}
	if ev.Key == KeyInterrupt {
		s.exit = ExitAbort
		return
	}

	switch s.pane {
	case PaneReleases:
		s.handleReleasesKey(ev.Key)
	case PaneNotes:
		s.handleNotesKey(ev.Key)
	}
}

func (s *Session) handleReleasesKey(k Key) {
	switch k {
	case KeyRight:
		s.pane = PaneNotes
	case KeyUp:
		s.list.Previous()
		s.fetchFocused()
	case KeyDown:
		s.list.Next()
		s.fetchFocused()
	case KeyToggle:
		s.list.Toggle()
	case KeyConfirm:
		s.exit = ExitConfirm
	case KeyGrow:
		s.leftWidth = clampWidth(s.leftWidth + widthStep)
	case KeyShrink:
		s.leftWidth = clampWidth(s.leftWidth - widthStep)
	}
}

func (s *Session) handleNotesKey(k Key) {
	switch k {
	case KeyLeft:
		s.pane = PaneReleases
	case KeyUp:
		s.scroll = max(s.scroll-s.scrollStep, 0)
	case KeyDown:
		s.scroll += s.scrollStep
	}
}

func (s *Session) fetchFocused() {
	if r, ok := s.list.Focused(); ok && s.notes != nil {
		s.notes.Start(r)
	}
}

// Options returns the options in list order.
func (s *Session) Options() []Option[domain.Release] { return s.list.Options() }

// Cursor returns the focused release index.
func (s *Session) Cursor() int { return s.list.Cursor() }

// Focused returns the release under the cursor.
func (s *Session) Focused() domain.Release {
	r, _ := s.list.Focused()
	return r
}

// Pane returns the focused pane.
func (s *Session) Pane() Pane { return s.pane }

// Scroll returns the notes scroll offset.
func (s *Session) Scroll() int { return s.scroll }

// LeftColumnWidth returns the width of the release list column.
func (s *Session) LeftColumnWidth() int { return s.leftWidth }

// ExitIntent returns the exit intent.
func (s *Session) ExitIntent() ExitIntent { return s.exit }

// Done reports whether the session has an exit intent.
func (s *Session) Done() bool { return s.exit != ExitNone }

// NotesStatus returns the status of the focused release's notes.
func (s *Session) NotesStatus() asynctask.Status[string] {
	if s.notes == nil {
		return asynctask.Status[string]{}
	}
	return s.notes.Status()
}

// SelectedReleases returns the selected releases in list order.
func (s *Session) SelectedReleases() []domain.Release {
	return s.list.SelectedValues()
}

func clampWidth(w int) int {
	return max(min(w, domain.MaxLeftColumnWidth), domain.MinLeftColumnWidth)
}
