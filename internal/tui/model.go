package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/eat-that-list/internal/config"
	"github.com/MKhiriev/eat-that-list/internal/countdown"
	"github.com/MKhiriev/eat-that-list/internal/logger"
	"github.com/MKhiriev/eat-that-list/internal/service"
	"github.com/MKhiriev/eat-that-list/internal/store"
	"github.com/MKhiriev/eat-that-list/internal/workers"
	"github.com/MKhiriev/eat-that-list/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenWelcome screen = iota
	screenLogin
	screenRegister
	screenLists
	screenItems
	screenSettings
)

// Worker names of the signed-in session.
const (
	workerLists   = "lists"
	workerInvites = "invites"
	workerItems   = "items"
)

type appModel struct {
	ctx       context.Context
	auth      service.ClientAuthService
	services  *service.ClientServices
	workers   *workers.Workers
	listsCfg  config.ClientLists
	sched     countdown.Scheduler
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	states       <-chan models.AuthState
	cancelStates func()
	// events carries messages produced off the program loop.
	events chan tea.Msg

	currentScreen screen
	welcome       welcomeModel
	authForm      authFormModel
	restoring     bool

	session  *service.SessionServices
	lists    listsModel
	items    itemsModel
	settings settingsModel

	prompt     promptModel
	showPrompt bool

	err           error
	showError     bool
	errorOverlay  errorOverlayModel
	showConfirm   bool
	confirm       confirmModel
	showBuildInfo bool
	serverVersion string
	status        string
}

// newAppModel subscribes to the auth states right away; sched may be nil.
func newAppModel(ctx context.Context, t *TUI, sched countdown.Scheduler) appModel {
	states, cancel := t.services.AuthService.States()

	return appModel{
		ctx:           ctx,
		auth:          t.services.AuthService,
		services:      t.services,
		workers:       t.workers,
		listsCfg:      t.lists,
		sched:         sched,
		buildInfo:     t.buildInfo,
		logger:        t.logger,
		states:        states,
		cancelStates:  cancel,
		events:        make(chan tea.Msg, 16),
		currentScreen: screenWelcome,
		welcome:       newWelcomeModel(),
		restoring:     true,
	}
}

// close releases the subscriptions of the model. The workers are stopped by
// the caller.
func (m *appModel) close() {
	m.endSession()
	m.cancelStates()
}

func (m appModel) Init() tea.Cmd {
	return tea.Batch(
		waitForAuthState(m.states),
		waitForEvent(m.events),
		m.cmdRestore(),
		textinput.Blink,
	)
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.forceQuit) {
			return m, tea.Quit
		}
		if m.showError {
			if key.Matches(msg, keys.enter) || key.Matches(msg, keys.esc) {
				m.showError = false
				m.errorOverlay.message = ""
			}
			return m, nil
		}
		if m.showConfirm {
			if key.Matches(msg, keys.yes) {
				m.showConfirm = false
				if m.confirm.onYes == nil {
					return m, nil
				}
				return m, m.confirm.onYes()
			}
			if key.Matches(msg, keys.no) {
				m.showConfirm = false
				m.confirm = confirmModel{}
			}
			return m, nil
		}
		if m.showPrompt {
			return m.updatePrompt(msg)
		}
		if m.showBuildInfo {
			if key.Matches(msg, keys.esc) || key.Matches(msg, keys.info) {
				m.showBuildInfo = false
			}
			return m, nil
		}
		if m.session != nil && key.Matches(msg, keys.logout) {
			return m, m.cmdSignOut()
		}

	case authStateMsg:
		cmd := m.applyAuthState(msg.state)
		return m, tea.Batch(cmd, waitForAuthState(m.states))

	case authDoneMsg:
		m.authForm.submitting = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		return m, nil

	case restoreDoneMsg:
		m.restoring = false
		if msg.err != nil && !errors.Is(msg.err, store.ErrSessionNotFound) {
			m.logger.Warn().Err(msg.err).Msg("session restore failed")
			m.status = "Не удалось восстановить сессию: " + humanizeError(msg.err)
			return m, cmdClearStatus()
		}
		return m, nil

	case sessionLoadedMsg:
		if m.session == nil || m.session.Session.UserID != msg.userID {
			return m, nil
		}
		m.lists.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		// the subscription loops load whatever failed here
		m.workers.Start(m.ctx, workerLists, workers.WorkerFunc(m.session.Lists.Run))
		m.workers.Start(m.ctx, workerInvites, workers.WorkerFunc(m.session.Invites.RunPending))
		return m, nil

	case itemsLoadedMsg:
		if !m.items.open || m.items.list.ID != msg.listID {
			return m, nil
		}
		m.items.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		m.workers.Start(m.ctx, workerItems, workers.WorkerFunc(m.items.session.Run))
		return m, nil

	case collaboratorsLoadedMsg:
		if !m.settings.open || m.settings.list.ID != msg.listID {
			return m, nil
		}
		m.settings.loading = false
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
		}
		return m, nil

	case opDoneMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if msg.status != "" {
			m.status = msg.status
			return m, cmdClearStatus()
		}
		return m, nil

	case listGoneMsg:
		if msg.err != nil {
			m.showErrorf(humanizeError(msg.err))
			return m, nil
		}
		if m.items.open && m.items.list.ID == msg.listID {
			m.closeList()
			m.currentScreen = screenLists
		}
		return m, nil

	case viewChangedMsg:
		return m.onViewChanged(msg.ch)

	case countdownTickMsg:
		if m.items.open && m.items.board.Removing() {
			return m, tickCountdown()
		}
		m.items.ticking = false
		return m, nil

	case copiedMsg:
		if msg.err != nil {
			m.showErrorf("Не удалось скопировать: " + msg.err.Error())
			return m, nil
		}
		m.status = "Скопировано!"
		return m, cmdClearStatus()

	case serverVersionMsg:
		if msg.err != nil {
			m.logger.Warn().Err(msg.err).Msg("server version")
			m.serverVersion = humanizeError(msg.err)
			return m, nil
		}
		m.serverVersion = msg.version
		return m, nil

	case clearStatusMsg:
		m.status = ""
		return m, nil

	case asyncMsg:
		next, cmd := m.Update(msg.msg)
		return next, tea.Batch(cmd, waitForEvent(m.events))

	case tea.WindowSizeMsg:
		return m, nil
	}

	switch m.currentScreen {
	case screenWelcome:
		return m.updateWelcome(msg)
	case screenLogin, screenRegister:
		return m.updateAuthForm(msg)
	case screenLists:
		return m.updateLists(msg)
	case screenItems:
		return m.updateItems(msg)
	case screenSettings:
		return m.updateSettings(msg)
	}

	return m, nil
}

func (m appModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo, m.serverVersion))
	}

	var body string
	switch m.currentScreen {
	case screenWelcome:
		body = m.welcome.View()
		if m.restoring {
			body += "\n\n" + helpStyle.Render("Восстановление сессии...")
		}
	case screenLogin, screenRegister:
		body = m.authForm.View()
	case screenLists:
		body = m.lists.View(m.session)
	case screenItems:
		body = m.items.View()
	case screenSettings:
		body = m.settings.View(m.session.Session.UserID)
	}

	if m.status != "" {
		body += "\n\n" + helpStyle.Render(m.status)
	}
	if m.showPrompt {
		body += "\n\n" + m.prompt.View()
	}
	if m.showConfirm {
		body += "\n\n" + m.confirm.View()
	}
	if m.showError {
		body += "\n\n" + m.errorOverlay.View()
	}

	return appStyle.Render(body)
}

func (m *appModel) showErrorf(message string) {
	m.showError = true
	m.errorOverlay.message = message
}

func (m *appModel) ask(message string, onYes func() tea.Cmd) {
	m.showConfirm = true
	m.confirm = confirmModel{message: message, onYes: onYes}
}

// emit delivers msg to the program from another goroutine.
func (m *appModel) emit() func(tea.Msg) {
	ctx, events := m.ctx, m.events
	return func(msg tea.Msg) {
		select {
		case events <- msg:
		case <-ctx.Done():
		}
	}
}

// applyAuthState switches between the signed-out screens and a session.
func (m *appModel) applyAuthState(state models.AuthState) tea.Cmd {
	if !state.SignedIn() {
		if m.session != nil {
			m.endSession()
			m.currentScreen = screenWelcome
			m.authForm = authFormModel{}
		}
		return nil
	}

	if m.session != nil && m.session.Session.UserID == state.Session.UserID {
		return nil
	}
	m.endSession()
	return m.startSession(*state.Session)
}

func (m *appModel) startSession(session models.Session) tea.Cmd {
	m.session = m.services.ForSession(session)
	m.lists = newListsModel(m.session)
	m.currentScreen = screenLists
	m.restoring = false

	ctx, s := m.ctx, m.session
	load := func() tea.Msg {
		err := errors.Join(s.Lists.Load(ctx), s.Invites.LoadPending(ctx))
		return sessionLoadedMsg{userID: s.Session.UserID, err: err}
	}

	return tea.Batch(load, waitForChange(m.lists.listsCh), waitForChange(m.lists.invitesCh))
}

func (m *appModel) endSession() {
	if m.session == nil {
		return
	}
	m.closeList()
	m.lists.unsubscribe()
	m.workers.StopAll()
	m.session = nil
	m.showPrompt, m.showConfirm = false, false
}

func (m appModel) onViewChanged(ch <-chan struct{}) (tea.Model, tea.Cmd) {
	switch ch {
	case m.lists.listsCh:
		if m.items.open {
			if view := m.session.Lists.View(); view.Defined() {
				if _, ok := view.Get(m.items.list.ID); !ok {
					m.closeList()
					m.currentScreen = screenLists
					m.status = "Список больше недоступен"
					return m, tea.Batch(waitForChange(ch), cmdClearStatus())
				}
			}
		}
	case m.lists.invitesCh:
	case m.items.changes:
		m.items.retain()
	case m.settings.changes:
	default:
		// the screen that subscribed is gone
		return m, nil
	}
	return m, waitForChange(ch)
}
