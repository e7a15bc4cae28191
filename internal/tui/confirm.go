package tui

import tea "github.com/charmbracelet/bubbletea"

// confirmModel asks before a destructive action; onYes runs on "y".
type confirmModel struct {
	message string
	onYes   func() tea.Cmd
}

func (m confirmModel) View() string {
	content := m.message + "\n\n"
	content += "y да    n нет"
	return overlayBoxStyle.Render(content)
}
