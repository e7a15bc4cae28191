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

// listsModel shows the pending invites above the lists of the user. The
// cursor walks both as one column.
type listsModel struct {
	idx     int
	loading bool

	listsCh       <-chan struct{}
	cancelLists   func()
	invitesCh     <-chan struct{}
	cancelInvites func()
}

func newListsModel(s *service.SessionServices) listsModel {
	listsCh, cancelLists := s.Lists.View().Changes()
	invitesCh, cancelInvites := s.Invites.Pending().Changes()

	return listsModel{
		loading:       true,
		listsCh:       listsCh,
		cancelLists:   cancelLists,
		invitesCh:     invitesCh,
		cancelInvites: cancelInvites,
	}
}

func (l *listsModel) unsubscribe() {
	if l.cancelLists != nil {
		l.cancelLists()
	}
	if l.cancelInvites != nil {
		l.cancelInvites()
	}
	*l = listsModel{}
}

func (l listsModel) View(s *service.SessionServices) string {
	if s == nil {
		return ""
	}
	invites := s.Invites.Pending().Entries()
	lists := s.Lists.View().Entries()
	idx := clampIndex(l.idx, len(invites)+len(lists))

	var b strings.Builder
	if len(invites) > 0 {
		b.WriteString(titleStyle.Render("Приглашения") + "\n")
		for i, inv := range invites {
			line := fmt.Sprintf("%s приглашает в «%s» (%d)", valueOrDash(inv.InviterEmail), inv.ListName, inv.ItemCount)
			b.WriteString(cursorLine(i == idx, line) + "\n")
		}
		b.WriteString("\n")
	}

	switch {
	case len(lists) > 0:
		for i, list := range lists {
			b.WriteString(cursorLine(len(invites)+i == idx, renderListRow(list, s.Session.UserID)) + "\n")
		}
	case l.loading:
		b.WriteString(helpStyle.Render("Загрузка...") + "\n")
	default:
		b.WriteString(helpStyle.Render("Списков пока нет. Нажмите n, чтобы создать.") + "\n")
	}

	title := titleStyle.Render("Мои списки") + "  " + helpStyle.Render(s.Session.Email)
	hotKeys := "enter открыть  n новый список  a принять  x отклонить  ctrl+l выйти из аккаунта  q выход"
	return renderPage(title, b.String(), hotKeys)
}

func renderListRow(list models.List, userID string) string {
	line := fmt.Sprintf("%s (%d)", fitText(list.Name, 48), list.ItemCount)
	if list.Owner == userID {
		line += " ★"
	}
	if reconcile.IsTemp(list.ID) {
		return pendingStyle.Render(line)
	}
	return line
}

func cursorLine(selected bool, line string) string {
	if selected {
		return selectedStyle.Render("> " + line)
	}
	return "  " + line
}

func clampIndex(idx, n int) int {
	if n == 0 || idx < 0 {
		return 0
	}
	if idx >= n {
		return n - 1
	}
	return idx
}

func (m appModel) updateLists(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.session == nil {
		return m, nil
	}

	s := m.session
	invites := s.Invites.Pending().Entries()
	lists := s.Lists.View().Entries()
	total := len(invites) + len(lists)
	m.lists.idx = clampIndex(m.lists.idx, total)
	idx := m.lists.idx

	switch {
	case key.Matches(keyMsg, keys.up):
		m.lists.idx = clampIndex(idx-1, total)
	case key.Matches(keyMsg, keys.down):
		m.lists.idx = clampIndex(idx+1, total)
	case key.Matches(keyMsg, keys.enter):
		if idx < len(invites) || idx >= total {
			return m, nil
		}
		list := lists[idx-len(invites)]
		if reconcile.IsTemp(list.ID) {
			m.status = "Список ещё сохраняется"
			return m, cmdClearStatus()
		}
		cmd := m.openList(list)
		return m, cmd
	case key.Matches(keyMsg, keys.accept):
		if idx >= len(invites) {
			return m, nil
		}
		inv := invites[idx]
		return m, cmdOp(m.ctx, "Приглашение принято", func(ctx context.Context) error {
			return s.Invites.Accept(ctx, inv.ID)
		})
	case key.Matches(keyMsg, keys.decline):
		if idx >= len(invites) {
			return m, nil
		}
		inv := invites[idx]
		return m, cmdOp(m.ctx, "Приглашение отклонено", func(ctx context.Context) error {
			return s.Invites.Decline(ctx, inv.ID)
		})
	case key.Matches(keyMsg, keys.newEntry):
		ctx := m.ctx
		cmd := m.openPrompt("Новый список", "название", 100, func(name string) tea.Cmd {
			return cmdOp(ctx, "", func(ctx context.Context) error {
				_, err := s.Lists.Create(ctx, name)
				return err
			})
		})
		return m, cmd
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}
