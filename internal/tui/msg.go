package tui

import tea "github.com/charmbracelet/bubbletea"

// Msg is the sealed interface for all TUI messages.
//
// go-sumtype:decl Msg
type Msg interface {
	sealed()
}

// MsgNotesUpdated is sent when the notes runner reports a status change.
// The new status is read from the session, not carried by the message.
type MsgNotesUpdated struct{}

func (MsgNotesUpdated) sealed() {}

// MsgNotesChannelClosed is sent when the notification channel is closed.
type MsgNotesChannelClosed struct{}

func (MsgNotesChannelClosed) sealed() {}

// waitForNotes blocks until the runner signals on updates.
// It must be re-issued after every MsgNotesUpdated.
func waitForNotes(updates <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-updates; !ok {
			return MsgNotesChannelClosed{}
		}
		return MsgNotesUpdated{}
	}
}
