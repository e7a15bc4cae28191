package tui

import (
	"time"

	"github.com/MKhiriev/eat-that-list/models"
	tea "github.com/charmbracelet/bubbletea"
)

type authStateMsg struct {
	state models.AuthState
}

type authDoneMsg struct {
	err error
}

type restoreDoneMsg struct {
	err error
}

type sessionLoadedMsg struct {
	userID string
	err    error
}

type itemsLoadedMsg struct {
	listID int64
	err    error
}

type collaboratorsLoadedMsg struct {
	listID int64
	err    error
}

// opDoneMsg finishes a background mutation; status is shown on success.
type opDoneMsg struct {
	status string
	err    error
}

// listGoneMsg finishes deleting or leaving the open list.
type listGoneMsg struct {
	listID int64
	err    error
}

// viewChangedMsg is delivered when the view behind ch changed.
type viewChangedMsg struct {
	ch <-chan struct{}
}

type countdownTickMsg time.Time

type copiedMsg struct {
	err error
}

type clearStatusMsg struct{}

type serverVersionMsg struct {
	version string
	err     error
}

// asyncMsg wraps a message produced outside of the program loop, e.g. by a
// countdown timer.
type asyncMsg struct {
	msg tea.Msg
}
