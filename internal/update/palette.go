package update

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"focusd/internal/command"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
		return m, nil
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		return m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m, nil
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		m.Palette.Input = m.commandInput.Value()
		return m, cmd
	}
}

func (m Model) executePaletteCommand() (tea.Model, tea.Cmd) {
	raw := strings.TrimSpace(m.Palette.Input)
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")

	cmd, err := command.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}

	var followUp tea.Cmd
	res, err := command.Execute(cmd, command.Handlers{
		Add: func(a command.AddArgs) (command.Result, error) {
			task, err := m.assistant.CreateTask(context.Background(), a.Description, nil, nil)
			if err != nil {
				return command.Result{}, err
			}
			m.CurrentView = ViewDetails
			m.Details = DetailsState{}
			m.Home.Cursor = len(m.assistant.Tasks()) - 1
			return command.Result{Message: fmt.Sprintf("task created: %s (%d sessions)", task.Title, task.TotalSessions)}, nil
		},
		Focus: func(f command.FocusArgs) (command.Result, error) {
			if err := m.assistant.StartQuickSession(context.Background(), f.Label); err != nil {
				return command.Result{}, err
			}
			m.CurrentView = ViewPomodoro
			m.breakSuggestion = ""
			followUp = m.armTick()
			return command.Result{Message: "focus session started: " + f.Label}, nil
		},
		Sync: func() (command.Result, error) {
			if !m.assistant.SyncEnabled() {
				return command.Result{}, &command.CommandError{Code: command.ErrCodeInvalidArgument, Message: "sync is not configured"}
			}
			if !m.syncActive {
				m.syncActive = true
				followUp = tea.Batch(m.syncSpinner.Tick, syncCmd(m.assistant, m.assistant.Snapshot()))
			}
			return command.Result{Message: "sync started"}, nil
		},
		View: func(v command.ViewArgs) (command.Result, error) {
			switch v.Target {
			case "home":
				m.CurrentView = ViewHome
			case "stats":
				m.CurrentView = ViewStats
			case "pomodoro":
				m.CurrentView = ViewPomodoro
			}
			return command.Result{Message: "switched to " + v.Target}, nil
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.Status = StatusBar{Text: res.Message, IsError: false}
	return m, followUp
}
