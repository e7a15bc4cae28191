package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldEmail = iota
	fieldPassword
	fieldRepeat
)

type authFormModel struct {
	register   bool
	inputs     []textinput.Model
	focus      int
	submitting bool
	problem    string
}

func newAuthFormModel(register bool) authFormModel {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 254
	email.Focus()

	password := textinput.New()
	password.Placeholder = "пароль"
	password.EchoMode = textinput.EchoPassword
	password.EchoCharacter = '•'
	password.CharLimit = 72

	inputs := []textinput.Model{email, password}
	if register {
		repeat := password
		repeat.Placeholder = "повторите пароль"
		inputs = append(inputs, repeat)
	}

	return authFormModel{register: register, inputs: inputs}
}

func (f *authFormModel) setFocus(i int) {
	n := len(f.inputs)
	f.focus = (i%n + n) % n
	for j := range f.inputs {
		if j == f.focus {
			f.inputs[j].Focus()
		} else {
			f.inputs[j].Blur()
		}
	}
}

func (f authFormModel) value(field int) string {
	if field >= len(f.inputs) {
		return ""
	}
	return f.inputs[field].Value()
}

// validate returns a message for the user or "" if the form can be sent.
func (f authFormModel) validate() string {
	switch {
	case strings.TrimSpace(f.value(fieldEmail)) == "":
		return "Введите email"
	case f.value(fieldPassword) == "":
		return "Введите пароль"
	case f.register && f.value(fieldPassword) != f.value(fieldRepeat):
		return "Пароли не совпадают"
	}
	return ""
}

func (f authFormModel) View() string {
	title := "Вход"
	if f.register {
		title = "Регистрация"
	}

	var b strings.Builder
	for _, in := range f.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if f.problem != "" {
		b.WriteString("\n" + errorStyle.Render(f.problem) + "\n")
	}
	if f.submitting {
		b.WriteString("\n" + helpStyle.Render("Подождите...") + "\n")
	}

	return renderPage(titleStyle.Render(title), b.String(), "tab следующее поле  enter отправить  esc назад")
}

func (m appModel) updateAuthForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.authForm.inputs[m.authForm.focus], cmd = m.authForm.inputs[m.authForm.focus].Update(msg)
		return m, cmd
	}
	if m.authForm.submitting {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.authForm = authFormModel{}
		m.currentScreen = screenWelcome
		return m, nil
	case key.Matches(keyMsg, keys.tab):
		m.authForm.setFocus(m.authForm.focus + 1)
		return m, nil
	case key.Matches(keyMsg, keys.backtab):
		m.authForm.setFocus(m.authForm.focus - 1)
		return m, nil
	case key.Matches(keyMsg, keys.enter):
		if m.authForm.focus < len(m.authForm.inputs)-1 {
			m.authForm.setFocus(m.authForm.focus + 1)
			return m, nil
		}
		if problem := m.authForm.validate(); problem != "" {
			m.authForm.problem = problem
			return m, nil
		}
		m.authForm.problem = ""
		m.authForm.submitting = true

		email := strings.TrimSpace(m.authForm.value(fieldEmail))
		password := m.authForm.value(fieldPassword)
		if m.authForm.register {
			return m, m.cmdRegister(email, password)
		}
		return m, m.cmdSignIn(email, password)
	}

	var cmd tea.Cmd
	m.authForm.inputs[m.authForm.focus], cmd = m.authForm.inputs[m.authForm.focus].Update(keyMsg)
	return m, cmd
}
