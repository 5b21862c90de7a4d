package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/runoshun/deputui/internal/asynctask"
	"github.com/runoshun/deputui/internal/domain"
	"github.com/runoshun/deputui/internal/review"
)

const (
	labelWidth    = 25 // release labels are padded to this width
	borderSize    = 2  // rounded border, both sides
	optionPrefix  = 5  // "> [x] "
	minNotesWidth = 10
	footerHeight  = 1
)

// Notes placeholders.
const (
	notesIdleText    = "--- No release notes ---"
	notesLoadingText = "--- Loading release notes... ---"
)

// View renders the TUI.
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}
	if m.err != nil {
		return m.styles.ErrorMsg.Render("Error: " + m.err.Error())
	}

	leftWidth, rightWidth, bodyHeight := m.layout()
	innerHeight := max(bodyHeight-borderSize, 1)
	releasesFocused := m.session.Pane() == review.PaneReleases

	left := m.styles.Pane(releasesFocused).
		Width(leftWidth - borderSize).
		Height(innerHeight).
		Render(m.viewReleases(leftWidth-borderSize, innerHeight, releasesFocused))

	right := m.styles.Pane(!releasesFocused).
		Width(rightWidth - borderSize).
		Height(innerHeight).
		Render(m.viewNotes(rightWidth-borderSize, innerHeight))

	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)
	return lipgloss.JoinVertical(lipgloss.Left, body, m.viewFooter())
}

// layout returns the outer widths of both panes and the body height.
func (m *Model) layout() (left, right, height int) {
	left = m.session.LeftColumnWidth()
	if maxLeft := m.width - minNotesWidth - borderSize; left > maxLeft {
		left = max(maxLeft, optionPrefix+borderSize+1)
	}
	right = max(m.width-left, minNotesWidth)
	height = max(m.height-footerHeight, borderSize+1)
	return left, right, height
}

// viewReleases renders the visible window of the release list.
func (m *Model) viewReleases(width, height int, focused bool) string {
	opts := m.session.Options()
	cursor := m.session.Cursor()

	start := 0
	if cursor >= height {
		start = cursor - height + 1
	}
	end := min(start+height, len(opts))

	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderOption(opts[i], i == cursor, focused, width))
	}
	return strings.Join(lines, "\n")
}

// renderOption renders "> [x] label" with the label padded, then truncated to fit.
func (m *Model) renderOption(opt review.Option[domain.Release], atCursor, focused bool, width int) string {
	indicator := " "
	if atCursor {
		style := m.styles.CursorInactive
		if focused {
			style = m.styles.Cursor
		}
		indicator = style.Render(">")
	}

	check := " "
	if opt.Selected {
		check = m.styles.Check.Render("x")
	}

	budget := max(width-optionPrefix-1, 1)
	label := runewidth.FillRight(opt.Label, min(labelWidth, budget))
	label = runewidth.Truncate(label, budget, "…")

	labelStyle := m.styles.Label
	if atCursor {
		labelStyle = m.styles.LabelFocused
	}

	return indicator +
		m.styles.Bracket.Render("[") + check + m.styles.Bracket.Render("]") +
		" " + labelStyle.Render(label)
}

// viewNotes renders the notes pane through the viewport so the session
// scroll offset is clamped to the content.
func (m *Model) viewNotes(width, height int) string {
	m.notes.Width = width
	m.notes.Height = height
	m.notes.SetContent(m.notesContent(width))
	m.notes.SetYOffset(m.session.Scroll())
	return m.notes.View()
}

// notesContent returns the text for the current notes status.
func (m *Model) notesContent(width int) string {
	status := m.session.NotesStatus()
	switch status.State {
	case asynctask.StateLoaded:
		return m.renderer.Render(status.Value, width)
	case asynctask.StateLoading:
		return m.styles.NotesPlaceholder(status.State).Render(notesLoadingText)
	case asynctask.StateError:
		return m.styles.NotesPlaceholder(status.State).Render(notesErrorText(status.Err))
	case asynctask.StateIdle:
		return m.styles.NotesPlaceholder(status.State).Render(notesIdleText)
	default:
		return notesIdleText
	}
}

func notesErrorText(msg string) string {
	return "--- Error: " + msg + " ---"
}

// viewFooter renders the key hints of the focused pane.
func (m *Model) viewFooter() string {
	hints := m.help.View(paneHelp{keys: m.keys, pane: m.session.Pane()})
	return lipgloss.PlaceHorizontal(m.width, lipgloss.Center, m.styles.Footer.Render(hints))
}
