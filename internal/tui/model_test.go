package tui

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/MKhiriev/eat-that-list/internal/config"
	"github.com/MKhiriev/eat-that-list/internal/countdown"
	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/reconcile"
	"github.com/MKhiriev/eat-that-list/internal/service"
	"github.com/MKhiriev/eat-that-list/internal/store"
	"github.com/MKhiriev/eat-that-list/internal/workers"
	"github.com/MKhiriev/eat-that-list/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type manualTimer struct {
	f       func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	was := !t.stopped
	t.stopped = true
	return was
}

// manualScheduler fires timers only from fire.
type manualScheduler struct {
	mu     sync.Mutex
	now    time.Time
	timers []*manualTimer
}

func (s *manualScheduler) AfterFunc(_ time.Duration, f func()) countdown.Stopper {
	s.mu.Lock()
	defer s.mu.Unlock()
	t := &manualTimer{f: f}
	s.timers = append(s.timers, t)
	return t
}

func (s *manualScheduler) Now() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.now
}

func (s *manualScheduler) fire() {
	s.mu.Lock()
	timers := s.timers
	s.timers = nil
	s.mu.Unlock()
	for _, t := range timers {
		if !t.stopped {
			t.f()
		}
	}
}

type fakeItemSession struct {
	listID  int64
	view    *reconcile.View[models.ListItem]
	mu        sync.Mutex
	removed   []int64
	removeErr error
}

func newFakeItemSession(listID int64, items ...models.ListItem) *fakeItemSession {
	view := reconcile.NewView[models.ListItem]("alice", reconcile.StrategySetDiff)
	view.Replace(items)
	return &fakeItemSession{listID: listID, view: view}
}

func (f *fakeItemSession) ListID() int64                          { return f.listID }
func (f *fakeItemSession) View() *reconcile.View[models.ListItem] { return f.view }
func (f *fakeItemSession) Load(context.Context) error             { return nil }
func (f *fakeItemSession) Run(ctx context.Context) error          { <-ctx.Done(); return ctx.Err() }

func (f *fakeItemSession) Add(_ context.Context, description string) (models.ListItem, error) {
	return models.ListItem{ListID: f.listID, Description: description}, nil
}

func (f *fakeItemSession) Remove(_ context.Context, itemID int64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, itemID)
	return f.removeErr
}

func (f *fakeItemSession) removedIDs() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.removed...)
}

type fakeItemService struct {
	session *fakeItemSession
}

func (f fakeItemService) Open(int64) service.ItemSession { return f.session }

func newItemsTestModel(t *testing.T, sched countdown.Scheduler, items ...models.ListItem) (appModel, *fakeItemSession) {
	t.Helper()

	s := newFakeItemSession(7, items...)
	m := appModel{
		ctx:      context.Background(),
		workers:  workers.New(logger.Nop()),
		listsCfg: config.ClientLists{RemoveDelay: 3 * time.Second},
		sched:    sched,
		logger:   logger.Nop(),
		events:   make(chan tea.Msg, 16),
		session: &service.SessionServices{
			Session: models.Session{UserID: "alice", Email: "alice@example.com"},
			Items:   fakeItemService{session: s},
		},
	}
	cmd := m.openList(models.List{ID: 7, Name: "Продукты", Owner: "alice"})
	require.NotNil(t, cmd)
	t.Cleanup(func() { m.workers.StopAll() })
	return m, s
}

func press(t *testing.T, m appModel, k string) (appModel, tea.Cmd) {
	t.Helper()
	msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	switch k {
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	}
	next, cmd := m.Update(msg)
	model, ok := next.(appModel)
	require.True(t, ok)
	return model, cmd
}

func TestItems_SwipeStartsCountdown(t *testing.T) {
	sched := &manualScheduler{now: time.Unix(0, 0)}
	m, s := newItemsTestModel(t, sched,
		models.ListItem{ID: 1, ListID: 7, Description: "молоко"},
		models.ListItem{ID: 2, ListID: 7, Description: "хлеб"},
	)

	m, cmd := press(t, m, "d")
	assert.NotNil(t, cmd, "swipe should start ticking")
	assert.True(t, m.items.ticking)
	assert.Equal(t, countdown.Removing, m.items.board.Row(1).State())
	assert.Contains(t, m.View(), "любая клавиша: отмена")

	sched.fire()

	assert.Equal(t, []int64{1}, s.removedIDs())
	assert.False(t, m.items.board.Removing())
}

// Пока push не убрал пункт, повторный d по удалённой строке не шлёт второй DELETE.
func TestItems_SecondSwipeAfterExpiryIsIgnored(t *testing.T) {
	sched := &manualScheduler{now: time.Unix(0, 0)}
	m, s := newItemsTestModel(t, sched, models.ListItem{ID: 1, ListID: 7, Description: "молоко"})

	m, _ = press(t, m, "d")
	sched.fire()
	require.Equal(t, []int64{1}, s.removedIDs())

	_ = m.View()
	m, _ = press(t, m, "d")
	sched.fire()

	assert.Equal(t, countdown.Removed, m.items.board.Row(1).State())
	assert.Equal(t, []int64{1}, s.removedIDs())
}

func TestItems_FailedRemovalAllowsNewSwipe(t *testing.T) {
	sched := &manualScheduler{now: time.Unix(0, 0)}
	m, s := newItemsTestModel(t, sched, models.ListItem{ID: 1, ListID: 7, Description: "молоко"})
	s.removeErr = errors.New("offline")

	m, _ = press(t, m, "d")
	sched.fire()

	assert.Equal(t, countdown.Visible, m.items.board.Row(1).State())
	m, _ = press(t, m, "d")
	assert.Equal(t, countdown.Removing, m.items.board.Row(1).State())
}

func TestItems_AnyKeyCancelsCountdown(t *testing.T) {
	sched := &manualScheduler{now: time.Unix(0, 0)}
	m, s := newItemsTestModel(t, sched, models.ListItem{ID: 1, ListID: 7, Description: "молоко"})

	m, _ = press(t, m, "d")
	require.Equal(t, countdown.Removing, m.items.board.Row(1).State())

	// повторный свайп тоже отменяет
	m, _ = press(t, m, "d")
	assert.Equal(t, countdown.Visible, m.items.board.Row(1).State())
	assert.Equal(t, "Удаление отменено", m.status)

	sched.fire()
	assert.Empty(t, s.removedIDs())
}

func TestItems_NavigationKeepsCountdown(t *testing.T) {
	sched := &manualScheduler{now: time.Unix(0, 0)}
	m, _ := newItemsTestModel(t, sched,
		models.ListItem{ID: 1, ListID: 7, Description: "молоко"},
		models.ListItem{ID: 2, ListID: 7, Description: "хлеб"},
	)

	m, _ = press(t, m, "d")
	m, _ = press(t, m, "down")

	assert.Equal(t, 1, m.items.idx)
	assert.Equal(t, countdown.Removing, m.items.board.Row(1).State())
}

func TestItems_TempRowCannotBeSwiped(t *testing.T) {
	sched := &manualScheduler{now: time.Unix(0, 0)}
	m, _ := newItemsTestModel(t, sched, models.ListItem{ID: -1, ListID: 7, Description: "сыр"})

	m, cmd := press(t, m, "d")
	assert.NotNil(t, cmd)
	assert.Equal(t, "Пункт ещё сохраняется", m.status)
	assert.False(t, m.items.board.Removing())
}

func TestItems_RetainDropsVanishedRows(t *testing.T) {
	sched := &manualScheduler{now: time.Unix(0, 0)}
	m, s := newItemsTestModel(t, sched,
		models.ListItem{ID: 1, ListID: 7, Description: "молоко"},
		models.ListItem{ID: 2, ListID: 7, Description: "хлеб"},
	)

	m, _ = press(t, m, "d")
	s.view.Replace([]models.ListItem{{ID: 2, ListID: 7, Description: "хлеб"}})
	m.items.retain()

	assert.False(t, m.items.board.Removing())
	sched.fire()
	assert.Empty(t, s.removedIDs())
}

func TestItems_EscClosesList(t *testing.T) {
	sched := &manualScheduler{now: time.Unix(0, 0)}
	m, s := newItemsTestModel(t, sched,
		models.ListItem{ID: 1, ListID: 7, Description: "молоко"},
		models.ListItem{ID: 2, ListID: 7, Description: "хлеб"},
	)
	m.workers.Start(m.ctx, workerItems, workers.WorkerFunc(s.Run))

	m, _ = press(t, m, "d")
	m, _ = press(t, m, "down")
	m, _ = press(t, m, "esc")

	assert.False(t, m.items.open)
	assert.Equal(t, screenLists, m.currentScreen)
	assert.False(t, m.workers.Running(workerItems))

	sched.fire()
	assert.Empty(t, s.removedIDs(), "closing the list cancels countdowns")
}

func TestItems_StaleChangeIsIgnored(t *testing.T) {
	m, _ := newItemsTestModel(t, &manualScheduler{})
	stale := make(chan struct{})

	next, cmd := m.Update(viewChangedMsg{ch: stale})
	_, ok := next.(appModel)
	assert.True(t, ok)
	assert.Nil(t, cmd)
}

func TestUpdate_OpDone(t *testing.T) {
	m := appModel{logger: logger.Nop()}

	next, _ := m.Update(opDoneMsg{err: service.ErrNotListOwner})
	got := next.(appModel)
	assert.True(t, got.showError)
	assert.Equal(t, "Это может сделать только владелец списка", got.errorOverlay.message)

	next, cmd := m.Update(opDoneMsg{status: "Участник удалён"})
	got = next.(appModel)
	assert.False(t, got.showError)
	assert.Equal(t, "Участник удалён", got.status)
	assert.NotNil(t, cmd)
}

func TestUpdate_RestoreWithoutSessionIsSilent(t *testing.T) {
	m := appModel{logger: logger.Nop(), restoring: true}

	next, _ := m.Update(restoreDoneMsg{err: fmt.Errorf("restore: %w", store.ErrSessionNotFound)})
	got := next.(appModel)
	assert.False(t, got.restoring)
	assert.Empty(t, got.status)
}

func TestAuthForm_Validate(t *testing.T) {
	tests := []struct {
		name     string
		register bool
		values   []string
		want     string
	}{
		{name: "пустой email", values: []string{"", "pw"}, want: "Введите email"},
		{name: "пустой пароль", values: []string{"a@b.c", ""}, want: "Введите пароль"},
		{name: "вход", values: []string{"a@b.c", "pw"}, want: ""},
		{name: "пароли не совпадают", register: true, values: []string{"a@b.c", "pw", "wp"}, want: "Пароли не совпадают"},
		{name: "регистрация", register: true, values: []string{"a@b.c", "pw", "pw"}, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newAuthFormModel(tt.register)
			for i, v := range tt.values {
				f.inputs[i].SetValue(v)
			}
			assert.Equal(t, tt.want, f.validate())
		})
	}
}

func TestHumanizeError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "wrapped known error", err: fmt.Errorf("login: %w", service.ErrWrongPassword), want: "Неверный email или пароль"},
		{name: "not confirmed", err: service.ErrNotConfirmed, want: "Запись ещё не подтверждена сервером"},
		{name: "server is down", err: errors.New("dial tcp 127.0.0.1:8080: connect: connection refused"), want: "Отсутствует сеть или Сервер недоступен"},
		{name: "unknown", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeError(tt.err))
		})
	}
}

func TestClampIndex(t *testing.T) {
	assert.Equal(t, 0, clampIndex(3, 0))
	assert.Equal(t, 0, clampIndex(-1, 5))
	assert.Equal(t, 4, clampIndex(9, 5))
	assert.Equal(t, 2, clampIndex(2, 5))
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "молоко", fitText("молоко", 6))
	assert.Equal(t, "мол…", fitText("молоко", 4))
	assert.Equal(t, "м", fitText("молоко", 1))
	assert.Equal(t, "молоко", fitText("молоко", 0))
}

func TestRenderPage(t *testing.T) {
	page := renderPage("Мои списки", "a\nb\n", "q выход")

	assert.Contains(t, page, "  a\n  b\n")
	assert.Contains(t, page, "q выход")
	assert.Contains(t, renderPage("Пусто", "", ""), "  -\n")
}

func TestRenderBuildInfoWindow(t *testing.T) {
	info := models.NewAppBuildInfo("v1.0.0", "", "abc123")

	out := renderBuildInfoWindow(info, "v1.0.1")

	assert.Contains(t, out, "Версия: v1.0.0")
	assert.Contains(t, out, "Дата: N/A")
	assert.Contains(t, out, "Коммит: abc123")
	assert.Contains(t, out, "Версия сервера: v1.0.1")
	assert.Contains(t, renderBuildInfoWindow(info, ""), "Версия сервера: -")
}
