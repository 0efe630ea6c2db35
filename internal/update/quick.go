package update

import (
	"context"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleQuickKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Quick.Active = false
		m.labelInput.Blur()
		return m, nil
	case "enter":
		label := strings.TrimSpace(m.labelInput.Value())
		m.Quick.Active = false
		m.labelInput.Blur()
		if err := m.assistant.StartQuickSession(context.Background(), label); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.CurrentView = ViewPomodoro
		m.breakSuggestion = ""
		m.Status = StatusBar{Text: "focus session started: " + label, IsError: false}
		return m, m.armTick()
	default:
		var cmd tea.Cmd
		m.labelInput, cmd = m.labelInput.Update(msg)
		return m, cmd
	}
}
