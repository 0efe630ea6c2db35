package update

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"focusd/internal/views"
)

func (m Model) handleNewTaskKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.NewTask.Phase {
	case PhaseEntering:
		switch msg.String() {
		case "esc":
			m.CurrentView = ViewHome
			m.descInput.Blur()
			return m, nil
		case "enter":
			description := strings.TrimSpace(m.descInput.Value())
			if description == "" {
				m.Status = StatusBar{Text: "describe the goal first", IsError: true}
				return m, nil
			}
			m.NewTask.Phase = PhaseGenerating
			m.NewTask.Description = description
			m.descInput.Blur()
			m.Status = StatusBar{Text: "generating a plan", IsError: false}
			return m, tea.Batch(m.syncSpinner.Tick, generatePlanCmd(m.assistant, description))
		default:
			var cmd tea.Cmd
			m.descInput, cmd = m.descInput.Update(msg)
			return m, cmd
		}
	case PhaseGenerating:
		if msg.String() == "esc" {
			m.NewTask = NewTaskState{Phase: PhaseEntering}
			m.CurrentView = ViewHome
			m.Status = StatusBar{Text: "plan discarded", IsError: false}
		}
		return m, nil
	case PhasePreview:
		switch msg.String() {
		case "enter":
			task, err := m.assistant.CreateTask(context.Background(), m.NewTask.Description, nil, m.NewTask.Steps)
			if err != nil {
				m.Status = StatusBar{Text: err.Error(), IsError: true}
				return m, nil
			}
			m.NewTask = NewTaskState{Phase: PhaseEntering}
			m.CurrentView = ViewDetails
			m.Details = DetailsState{}
			m.Home.Cursor = len(m.assistant.Tasks()) - 1
			m.Status = StatusBar{Text: fmt.Sprintf("task created: %s (%d sessions)", task.Title, task.TotalSessions), IsError: false}
			return m.afterMutation()
		case "r":
			m.NewTask.Phase = PhaseGenerating
			m.Status = StatusBar{Text: "regenerating the plan", IsError: false}
			return m, tea.Batch(m.syncSpinner.Tick, generatePlanCmd(m.assistant, m.NewTask.Description))
		case "esc":
			m.NewTask = NewTaskState{Phase: PhaseEntering}
			m.CurrentView = ViewHome
			m.Status = StatusBar{Text: "plan discarded", IsError: false}
			return m, nil
		}
		return m, nil
	}
	return m, nil
}

func (m Model) onPlanReady(msg PlanReadyMsg) (tea.Model, tea.Cmd) {
	// A stale answer for an abandoned or edited description is ignored.
	if m.NewTask.Phase != PhaseGenerating || msg.Description != m.NewTask.Description {
		return m, nil
	}
	m.NewTask.Phase = PhasePreview
	m.NewTask.Steps = msg.Steps
	m.Status = StatusBar{Text: "plan ready, enter to accept", IsError: false}
	return m, nil
}

func (m Model) renderNewTaskView() string {
	if m.NewTask.Phase == PhaseEntering {
		return "new task:\n" + m.descInput.View() + "\nkeys: [enter]plan [esc]back"
	}
	total := 0
	for _, step := range m.NewTask.Steps {
		total += step.EstimatedSessions
	}
	return views.RenderPlanPreview(views.PlanPreviewData{
		Description:   m.NewTask.Description,
		TotalSessions: total,
		MarkdownView:  m.planViewport.View(),
		Generating:    m.NewTask.Phase == PhaseGenerating,
		SpinnerView:   m.syncSpinner.View(),
	})
}
