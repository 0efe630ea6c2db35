package update

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"focusd/internal/progression"
	"focusd/internal/views"
)

func (m *Model) initComponents() {
	m.taskList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 12)
	m.taskList.Title = "Tasks"
	m.taskList.SetShowHelp(false)
	m.taskList.SetFilteringEnabled(false)

	m.descInput = textinput.New()
	m.descInput.Prompt = "goal> "
	m.descInput.CharLimit = 256
	m.descInput.Width = 48

	m.labelInput = textinput.New()
	m.labelInput.Prompt = "focus> "
	m.labelInput.CharLimit = 128
	m.labelInput.Width = 42

	m.editInput = textinput.New()
	m.editInput.Prompt = "edit> "
	m.editInput.CharLimit = 160
	m.editInput.Width = 42

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.focusProgress = progress.New(progress.WithDefaultGradient())

	m.syncSpinner = spinner.New()
	m.syncSpinner.Spinner = spinner.Dot

	m.helpModel = help.New()
	m.planViewport = viewport.New(54, 12)
}

func (m *Model) syncComponents() {
	tasks := m.assistant.Tasks()
	items := make([]list.Item, 0, len(tasks))
	for _, task := range tasks {
		desc := fmt.Sprintf("%d/%d sessions", task.CompletedSessions, task.TotalSessions)
		if progression.IsTaskComplete(task) {
			desc += " | done"
		}
		items = append(items, listItem{title: task.Title, description: desc})
	}
	m.taskList.SetItems(items)
	if len(items) > 0 && m.Home.Cursor < len(items) {
		m.taskList.Select(m.Home.Cursor)
	}

	m.commandInput.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandInput.Focus()
	}

	if m.NewTask.Phase == PhasePreview {
		m.planViewport.SetContent(views.RenderMarkdown(m.planMarkdown()))
	}

	timer := m.assistant.Timer()
	_ = m.focusProgress.SetPercent(timer.Progress())
}

func (m Model) planMarkdown() string {
	var b strings.Builder
	b.WriteString("# " + m.NewTask.Description + "\n\n")
	for i, step := range m.NewTask.Steps {
		b.WriteString(fmt.Sprintf("%d. **%s**: %d session(s)\n", i+1, step.Title, step.EstimatedSessions))
	}
	return b.String()
}
