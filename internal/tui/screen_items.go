package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/eat-that-list/internal/countdown"
	"github.com/MKhiriev/eat-that-list/internal/reconcile"
	"github.com/MKhiriev/eat-that-list/internal/service"
	"github.com/MKhiriev/eat-that-list/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const countdownBarWidth = 12

// itemsModel is the open list. Rows swiped away count down on board before
// the removal is sent.
type itemsModel struct {
	open    bool
	list    models.List
	session service.ItemSession
	board   *countdown.Board
	bar     progress.Model
	idx     int
	loading bool
	ticking bool

	changes       <-chan struct{}
	cancelChanges func()
}

// retain forgets the countdowns of rows that left the view.
func (i *itemsModel) retain() {
	entries := i.session.View().Entries()
	ids := make([]int64, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	i.board.Retain(ids)
}

func (i itemsModel) View() string {
	entries := i.session.View().Entries()
	idx := clampIndex(i.idx, len(entries))

	var b strings.Builder
	switch {
	case len(entries) > 0:
		for n, item := range entries {
			b.WriteString(cursorLine(n == idx, i.renderRow(item)) + "\n")
		}
	case i.loading:
		b.WriteString(helpStyle.Render("Загрузка...") + "\n")
	default:
		b.WriteString(helpStyle.Render("Список пуст. Нажмите n, чтобы добавить.") + "\n")
	}

	hotKeys := "n добавить  d удалить  c копировать  s настройки  esc назад"
	return renderPage(titleStyle.Render(i.list.Name), b.String(), hotKeys)
}

func (i itemsModel) renderRow(item models.ListItem) string {
	text := fitText(item.Description, 60)
	if reconcile.IsTemp(item.ID) {
		return pendingStyle.Render(text)
	}

	row := i.board.Row(item.ID)
	switch row.State() {
	case countdown.Removed:
		return removingStyle.Render(text)
	case countdown.Visible:
		return text
	}
	bar := i.bar.ViewAs(1 - row.Progress())
	return fmt.Sprintf("%s %d %s  %s", bar, row.Remaining(), removingStyle.Render(text), helpStyle.Render("любая клавиша: отмена"))
}

func (m *appModel) openList(list models.List) tea.Cmd {
	s := m.session.Items.Open(list.ID)
	emit := m.emit()
	ctx := m.ctx

	var board *countdown.Board
	board = countdown.NewBoard(m.listsCfg.RemoveDelay, m.sched, func(id int64) {
		if err := s.Remove(ctx, id); err != nil {
			board.Forget(id)
			emit(opDoneMsg{err: err})
		}
	})
	changes, cancel := s.View().Changes()

	m.items = itemsModel{
		open:          true,
		list:          list,
		session:       s,
		board:         board,
		bar:           progress.New(progress.WithWidth(countdownBarWidth), progress.WithoutPercentage(), progress.WithSolidFill("#FF5F87")),
		loading:       !s.View().Defined(),
		changes:       changes,
		cancelChanges: cancel,
	}
	m.currentScreen = screenItems

	listID := list.ID
	load := func() tea.Msg {
		return itemsLoadedMsg{listID: listID, err: s.Load(ctx)}
	}
	return tea.Batch(load, waitForChange(changes))
}

func (m *appModel) closeList() {
	if !m.items.open {
		return
	}
	m.closeSettings()
	m.items.board.CancelAll()
	m.items.cancelChanges()
	m.workers.Stop(workerItems)
	m.items = itemsModel{}
}

// isNavigation reports keys that leave a counting down row alone.
func isNavigation(msg tea.KeyMsg) bool {
	return key.Matches(msg, keys.up) || key.Matches(msg, keys.down) ||
		key.Matches(msg, keys.forceQuit) || key.Matches(msg, keys.logout)
}

func (m appModel) updateItems(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.items.open {
		return m, nil
	}

	s := m.items.session
	entries := s.View().Entries()
	m.items.idx = clampIndex(m.items.idx, len(entries))

	var (
		current models.ListItem
		hasRow  = len(entries) > 0
	)
	if hasRow {
		current = entries[m.items.idx]
	}

	if hasRow && !isNavigation(keyMsg) && m.items.board.Cancel(current.ID) {
		m.status = "Удаление отменено"
		return m, cmdClearStatus()
	}

	switch {
	case key.Matches(keyMsg, keys.up):
		m.items.idx = clampIndex(m.items.idx-1, len(entries))
	case key.Matches(keyMsg, keys.down):
		m.items.idx = clampIndex(m.items.idx+1, len(entries))
	case key.Matches(keyMsg, keys.esc):
		m.closeList()
		m.currentScreen = screenLists
	case key.Matches(keyMsg, keys.newEntry):
		ctx := m.ctx
		cmd := m.openPrompt("Новый пункт", "что купить?", 500, func(description string) tea.Cmd {
			return cmdOp(ctx, "", func(ctx context.Context) error {
				_, err := s.Add(ctx, description)
				return err
			})
		})
		return m, cmd
	case key.Matches(keyMsg, keys.swipe):
		if !hasRow {
			return m, nil
		}
		if reconcile.IsTemp(current.ID) {
			m.status = "Пункт ещё сохраняется"
			return m, cmdClearStatus()
		}
		if m.items.board.Swipe(current.ID) && !m.items.ticking {
			m.items.ticking = true
			return m, tickCountdown()
		}
	case key.Matches(keyMsg, keys.copy):
		if hasRow {
			return m, cmdCopyToClipboard(current.Description)
		}
	case key.Matches(keyMsg, keys.settings):
		cmd := m.openSettings()
		return m, cmd
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	}

	return m, nil
}
