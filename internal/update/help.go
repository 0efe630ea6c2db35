package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"focusd/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return "\n" + views.RenderHelpPanel(string(m.CurrentView), plain, m.helpModel.View(helpKeyMap{
		short: bindings,
		full:  [][]key.Binding{bindings},
	}))
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Home, Action: "switch to Home"},
		{Key: m.Keys.Stats, Action: "switch to Stats"},
		{Key: m.Keys.Pomodoro, Action: "switch to Pomodoro"},
		{Key: "/", Action: "open command palette"},
		{Key: "S", Action: "sync now"},
		{Key: m.Keys.Help, Action: "toggle help panel"},
		{Key: m.Keys.Quit, Action: "quit app"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView {
	case ViewHome:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "n", Action: "plan a new task"},
			{Key: "enter", Action: "open task"},
			{Key: "d", Action: "delete task"},
			{Key: "f", Action: "quick focus session"},
		}
	case ViewDetails:
		return []KeyBinding{
			{Key: "j/k", Action: "move selection"},
			{Key: "enter", Action: "start session on sub-task"},
			{Key: "e", Action: "edit sub-task"},
			{Key: "x", Action: "remove sub-task"},
			{Key: "esc", Action: "back to tasks"},
		}
	case ViewPomodoro:
		return []KeyBinding{
			{Key: "space", Action: "pause/resume"},
			{Key: "c", Action: "cancel session"},
			{Key: "esc", Action: "back to tasks"},
		}
	case ViewNewTask:
		return []KeyBinding{
			{Key: "enter", Action: "generate plan / accept"},
			{Key: "r", Action: "regenerate plan"},
			{Key: "esc", Action: "discard"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.viewBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.viewBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
