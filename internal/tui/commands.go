package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/eat-that-list/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	countdownTick = 100 * time.Millisecond
	statusTTL     = 2 * time.Second
)

func waitForAuthState(states <-chan models.AuthState) tea.Cmd {
	return func() tea.Msg {
		state, ok := <-states
		if !ok {
			return nil
		}
		return authStateMsg{state: state}
	}
}

// waitForChange fires once on the next change of a view. A closed channel
// means the screen unsubscribed, and no message is produced.
func waitForChange(ch <-chan struct{}) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return viewChangedMsg{ch: ch}
	}
}

func waitForEvent(events <-chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		msg, ok := <-events
		if !ok {
			return nil
		}
		return asyncMsg{msg: msg}
	}
}

func tickCountdown() tea.Cmd {
	return tea.Tick(countdownTick, func(t time.Time) tea.Msg {
		return countdownTickMsg(t)
	})
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

// cmdOp runs a mutation in the background and reports it with opDoneMsg.
func cmdOp(ctx context.Context, status string, op func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{status: status, err: op(ctx)}
	}
}

func (m appModel) cmdRestore() tea.Cmd {
	return func() tea.Msg {
		_, err := m.auth.Restore(m.ctx)
		return restoreDoneMsg{err: err}
	}
}

func (m appModel) cmdSignIn(email, password string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.auth.SignIn(m.ctx, email, password)
		return authDoneMsg{err: err}
	}
}

func (m appModel) cmdRegister(email, password string) tea.Cmd {
	return func() tea.Msg {
		_, err := m.auth.Register(m.ctx, email, password)
		return authDoneMsg{err: err}
	}
}

func (m appModel) cmdServerVersion() tea.Cmd {
	return func() tea.Msg {
		version, err := m.services.ServerVersion(m.ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

func (m appModel) cmdSignOut() tea.Cmd {
	return func() tea.Msg {
		return opDoneMsg{err: m.auth.SignOut(m.ctx)}
	}
}
