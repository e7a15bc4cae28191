package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// promptModel asks for one line of text and hands it to submit.
type promptModel struct {
	title  string
	input  textinput.Model
	submit func(value string) tea.Cmd
}

func newPromptModel(title, placeholder string, limit int, submit func(value string) tea.Cmd) promptModel {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Focus()
	return promptModel{title: title, input: in, submit: submit}
}

func (p promptModel) View() string {
	content := titleStyle.Render(p.title) + "\n\n" + p.input.View() + "\n\nenter сохранить    esc отмена"
	return overlayBoxStyle.Render(content)
}

func (m *appModel) openPrompt(title, placeholder string, limit int, submit func(value string) tea.Cmd) tea.Cmd {
	m.prompt = newPromptModel(title, placeholder, limit, submit)
	m.showPrompt = true
	return textinput.Blink
}

func (m appModel) updatePrompt(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.showPrompt = false
		return m, nil
	case key.Matches(msg, keys.enter):
		m.showPrompt = false
		value := strings.TrimSpace(m.prompt.input.Value())
		if value == "" || m.prompt.submit == nil {
			return m, nil
		}
		return m, m.prompt.submit(value)
	}

	var cmd tea.Cmd
	m.prompt.input, cmd = m.prompt.input.Update(msg)
	return m, cmd
}
