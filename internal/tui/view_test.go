package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/deputui/internal/asynctask"
	"github.com/runoshun/deputui/internal/domain"
	"github.com/runoshun/deputui/internal/review"
	"github.com/stretchr/testify/assert"
)

func TestView_BeforeWindowSize(t *testing.T) {
	runner := &mockRunner{}
	session, _ := review.NewSession(testReleases, runner, review.Options{})
	m := New(session, make(chan struct{}, 1), Options{})

	assert.Equal(t, "Loading...", m.View())
}

func TestView_NotesPlaceholders(t *testing.T) {
	tests := []struct {
		name   string
		want   string
		status asynctask.Status[string]
	}{
		{
			name:   "idle",
			status: asynctask.Status[string]{State: asynctask.StateIdle},
			want:   "--- No release notes ---",
		},
		{
			name:   "loading",
			status: asynctask.Status[string]{State: asynctask.StateLoading},
			want:   "--- Loading release notes... ---",
		},
		{
			name:   "error",
			status: asynctask.Status[string]{State: asynctask.StateError, Err: "not found"},
			want:   "--- Error: not found ---",
		},
		{
			name:   "loaded raw",
			status: asynctask.Status[string]{State: asynctask.StateLoaded, Value: "Fixed a bug"},
			want:   "Fixed a bug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, runner, _ := newTestModel(t)
			runner.Current = tt.status

			assert.Contains(t, m.View(), tt.want)
		})
	}
}

func TestView_ReleaseList(t *testing.T) {
	// Setup
	m, _, _ := newTestModel(t)
	press(m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, runes("j"))

	// Execute
	out := m.View()

	// Assert
	assert.Contains(t, out, "[x] a@1.1.0")
	assert.Contains(t, out, ">[ ] a@1.2.0")
	assert.Contains(t, out, " [ ] b@2.1.0")
	assert.Contains(t, out, "a@1.1.0"+strings.Repeat(" ", labelWidth-len("a@1.1.0")))
}

func TestView_FooterFollowsPane(t *testing.T) {
	m, _, _ := newTestModel(t)
	assert.Contains(t, m.View(), "toggle")

	press(m, runes("l"))

	out := m.View()
	assert.NotContains(t, out, "toggle")
	assert.Contains(t, out, "packages")
}

func TestView_FitsWindow(t *testing.T) {
	m, _, _ := newTestModel(t)

	for _, size := range []tea.WindowSizeMsg{{Width: 100, Height: 20}, {Width: 60, Height: 10}} {
		m.Update(size)
		out := m.View()

		assert.LessOrEqual(t, lipgloss.Width(out), size.Width)
		assert.LessOrEqual(t, lipgloss.Height(out), size.Height)
	}
}

func TestView_LongLabelIsTruncated(t *testing.T) {
	runner := &mockRunner{}
	long := domain.Release{Package: "@very-long-scope/extremely-long-package-name", Semver: "10.20.0"}
	session, _ := review.NewSession([]domain.Release{long}, runner, review.Options{LeftColumnWidth: 20})
	m := New(session, make(chan struct{}, 1), Options{})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 10})

	out := m.View()

	assert.Contains(t, out, "…")
	assert.NotContains(t, out, long.String())
}

func TestView_ScrollIsClampedToContent(t *testing.T) {
	m, runner, _ := newTestModel(t)
	runner.Current = asynctask.Status[string]{State: asynctask.StateLoaded, Value: "only line"}

	press(m, runes("l"), runes("j"), runes("j"), runes("j"))

	assert.Equal(t, 15, m.session.Scroll())
	assert.Contains(t, m.View(), "only line")
}

func TestNotesRenderer(t *testing.T) {
	t.Run("disabled returns raw", func(t *testing.T) {
		r := newNotesRenderer("dark", false)
		assert.Equal(t, "# Title", r.Render("# Title", 40))
	})

	t.Run("renders markdown and caches", func(t *testing.T) {
		r := newNotesRenderer("dark", true)

		out := r.Render("# Title\n\n- item", 40)

		assert.Contains(t, out, "Title")
		assert.NotContains(t, out, "- item")
		assert.Equal(t, out, r.Render("# Title\n\n- item", 40))
		assert.Equal(t, 40, r.width)
	})

	t.Run("unknown style falls back to dark", func(t *testing.T) {
		assert.Equal(t, codeTheme, glamourStyle("no-such-style").CodeBlock.Theme)
	})
}

// mockRunner is a minimal review.NotesRunner for tests that need no assertions on fetches.
type mockRunner struct{}

func (*mockRunner) Start(domain.Release) uint64 { return 1 }

func (*mockRunner) Status() asynctask.Status[string] { return asynctask.Status[string]{} }
