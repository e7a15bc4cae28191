package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/eat-that-list/internal/reconcile"
	"github.com/MKhiriev/eat-that-list/internal/service"
	"github.com/MKhiriev/eat-that-list/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

var inviteStatusLabels = map[models.InviteStatus]string{
	models.InviteStatusPending:  "ожидает ответа",
	models.InviteStatusAccepted: "участник",
	models.InviteStatusDeclined: "отклонил",
}

// settingsModel lists the collaborators of the open list.
type settingsModel struct {
	open    bool
	list    models.List
	collab  service.CollaboratorsSession
	idx     int
	loading bool

	changes       <-chan struct{}
	cancelChanges func()
}

func (s settingsModel) View(userID string) string {
	entries := s.collab.View().Entries()
	idx := clampIndex(s.idx, len(entries))
	owner := s.list.Owner == userID

	var b strings.Builder
	switch {
	case len(entries) > 0:
		for n, inv := range entries {
			line := fmt.Sprintf("%s  %s", fitText(inv.InviteeEmail, 40), helpStyle.Render(inviteStatusLabels[inv.Status()]))
			if reconcile.IsTemp(inv.ID) {
				line = pendingStyle.Render(fitText(inv.InviteeEmail, 40))
			}
			b.WriteString(cursorLine(n == idx, line) + "\n")
		}
	case s.loading:
		b.WriteString(helpStyle.Render("Загрузка...") + "\n")
	default:
		b.WriteString(helpStyle.Render("Участников нет") + "\n")
	}

	hotKeys := "L покинуть список  esc назад"
	if owner {
		hotKeys = "i пригласить  r удалить участника  D удалить список  esc назад"
	}
	return renderPage(titleStyle.Render("Настройки: "+s.list.Name), b.String(), hotKeys)
}

func (m *appModel) openSettings() tea.Cmd {
	if !m.items.open {
		return nil
	}
	list := m.items.list
	collab := m.session.Invites.Collaborators(list.ID)
	changes, cancel := collab.View().Changes()

	m.settings = settingsModel{
		open:          true,
		list:          list,
		collab:        collab,
		loading:       true,
		changes:       changes,
		cancelChanges: cancel,
	}
	m.currentScreen = screenSettings

	ctx := m.ctx
	load := func() tea.Msg {
		return collaboratorsLoadedMsg{listID: list.ID, err: collab.Load(ctx)}
	}
	return tea.Batch(load, waitForChange(changes))
}

func (m *appModel) closeSettings() {
	if !m.settings.open {
		return
	}
	m.settings.cancelChanges()
	m.settings = settingsModel{}
}

func cmdListGone(ctx context.Context, listID int64, op func(ctx context.Context, listID int64) error) tea.Cmd {
	return func() tea.Msg {
		return listGoneMsg{listID: listID, err: op(ctx, listID)}
	}
}

func (m appModel) updateSettings(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.settings.open {
		return m, nil
	}

	ctx := m.ctx
	list := m.settings.list
	collab := m.settings.collab
	owner := list.Owner == m.session.Session.UserID
	entries := collab.View().Entries()
	m.settings.idx = clampIndex(m.settings.idx, len(entries))

	switch {
	case key.Matches(keyMsg, keys.up):
		m.settings.idx = clampIndex(m.settings.idx-1, len(entries))
	case key.Matches(keyMsg, keys.down):
		m.settings.idx = clampIndex(m.settings.idx+1, len(entries))
	case key.Matches(keyMsg, keys.esc):
		m.closeSettings()
		m.currentScreen = screenItems
	case key.Matches(keyMsg, keys.invite):
		if !owner {
			m.showErrorf("Приглашать может только владелец списка")
			return m, nil
		}
		cmd := m.openPrompt("Пригласить", "email", 254, func(email string) tea.Cmd {
			return cmdOp(ctx, "Приглашение отправлено", func(ctx context.Context) error {
				_, err := collab.Invite(ctx, email)
				return err
			})
		})
		return m, cmd
	case key.Matches(keyMsg, keys.remove):
		if !owner || len(entries) == 0 {
			return m, nil
		}
		inv := entries[m.settings.idx]
		if reconcile.IsTemp(inv.ID) {
			m.status = "Приглашение ещё сохраняется"
			return m, cmdClearStatus()
		}
		m.ask(fmt.Sprintf("Удалить участника %s?", inv.InviteeEmail), func() tea.Cmd {
			return cmdOp(ctx, "Участник удалён", func(ctx context.Context) error {
				return collab.Remove(ctx, inv.ID)
			})
		})
	case key.Matches(keyMsg, keys.deleteAll):
		if !owner {
			return m, nil
		}
		lists := m.session.Lists
		m.ask(fmt.Sprintf("Удалить список «%s» для всех участников?", list.Name), func() tea.Cmd {
			return cmdListGone(ctx, list.ID, lists.Delete)
		})
	case key.Matches(keyMsg, keys.leave):
		if owner {
			return m, nil
		}
		lists := m.session.Lists
		m.ask(fmt.Sprintf("Покинуть список «%s»?", list.Name), func() tea.Cmd {
			return cmdListGone(ctx, list.ID, lists.Leave)
		})
	}

	return m, nil
}
