package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/runoshun/deputui/internal/domain"
	"github.com/runoshun/deputui/internal/review"
)

// Update handles messages and updates the model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		// bubbletea only reports presses.
		m.session.HandleKey(review.Press(m.keys.sessionKey(msg)))
		if m.session.Done() {
			return m, tea.Quit
		}
		return m, nil

	case MsgNotesUpdated:
		return m, waitForNotes(m.updates)

	case MsgNotesChannelClosed:
		m.err = domain.ErrChannelClosed
		return m, tea.Quit
	}

	return m, nil
}
