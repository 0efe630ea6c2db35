package update

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"focusd/internal/progression"
	"focusd/internal/views"
)

func (m Model) handleDetailsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	task, ok := m.assistant.CurrentTask()
	if !ok {
		m.CurrentView = ViewHome
		return m, nil
	}
	switch msg.String() {
	case "esc":
		m.CurrentView = ViewHome
		return m, nil
	case "j", "down":
		if m.Details.Cursor < len(task.SubTasks)-1 {
			m.Details.Cursor++
		}
		return m, nil
	case "k", "up":
		if m.Details.Cursor > 0 {
			m.Details.Cursor--
		}
		return m, nil
	case "enter", " ":
		if m.Details.Cursor >= len(task.SubTasks) {
			return m, nil
		}
		sub := task.SubTasks[m.Details.Cursor]
		if err := m.assistant.StartSession(task.ID, sub.ID, ""); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.CurrentView = ViewPomodoro
		m.breakSuggestion = ""
		m.Status = StatusBar{Text: "focus session started: " + sub.Title, IsError: false}
		return m, m.armTick()
	case "e":
		if m.Details.Cursor >= len(task.SubTasks) {
			return m, nil
		}
		sub := task.SubTasks[m.Details.Cursor]
		m.Details.Editing = true
		m.editInput.SetValue(fmt.Sprintf("%s | %d", sub.Title, sub.EstimatedSessions))
		m.editInput.Focus()
		return m, nil
	case "x":
		if m.Details.Cursor >= len(task.SubTasks) {
			return m, nil
		}
		sub := task.SubTasks[m.Details.Cursor]
		if err := m.assistant.DeleteSubTask(context.Background(), task.ID, sub.ID); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		if m.Details.Cursor > 0 {
			m.Details.Cursor--
		}
		m.Status = StatusBar{Text: "removed sub-task: " + sub.Title, IsError: false}
		return m.afterMutation()
	}
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.Details.Editing = false
		m.editInput.Blur()
		return m, nil
	case "enter":
		m.Details.Editing = false
		m.editInput.Blur()
		task, ok := m.assistant.CurrentTask()
		if !ok || m.Details.Cursor >= len(task.SubTasks) {
			return m, nil
		}
		title, sessions, err := parseSubTaskEdit(m.editInput.Value())
		if err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		sub := task.SubTasks[m.Details.Cursor]
		if err := m.assistant.EditSubTask(context.Background(), task.ID, sub.ID, title, sessions); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.Status = StatusBar{Text: "sub-task updated", IsError: false}
		return m.afterMutation()
	default:
		var cmd tea.Cmd
		m.editInput, cmd = m.editInput.Update(msg)
		return m, cmd
	}
}

// parseSubTaskEdit splits "title | sessions" input. Either side may be left
// blank to keep the current value.
func parseSubTaskEdit(raw string) (string, int, error) {
	title := strings.TrimSpace(raw)
	sessions := 0
	if idx := strings.LastIndex(raw, "|"); idx >= 0 {
		title = strings.TrimSpace(raw[:idx])
		num := strings.TrimSpace(raw[idx+1:])
		if num != "" {
			v, err := strconv.Atoi(num)
			if err != nil || v < 1 {
				return "", 0, fmt.Errorf("sessions must be a positive number, got %q", num)
			}
			sessions = v
		}
	}
	return title, sessions, nil
}

func (m Model) renderDetailsView() string {
	task, ok := m.assistant.CurrentTask()
	if !ok {
		return "(task gone)"
	}
	subs := make([]views.SubTaskData, 0, len(task.SubTasks))
	for i, sub := range task.SubTasks {
		subs = append(subs, views.SubTaskData{
			Title:     sub.Title,
			Completed: sub.CompletedSessions,
			Estimated: sub.EstimatedSessions,
			Done:      progression.IsSubTaskComplete(sub),
			Locked:    !progression.CanStart(task, sub.ID) && !progression.IsSubTaskComplete(sub),
			Selected:  i == m.Details.Cursor,
		})
	}
	deadline := ""
	if task.Deadline != nil {
		deadline = task.Deadline.Format("2006-01-02")
	}
	return views.RenderDetailsPanel(views.DetailsPanelData{
		Title:       task.Title,
		Deadline:    deadline,
		Completed:   task.CompletedSessions,
		Total:       task.TotalSessions,
		SubTasks:    subs,
		EditView:    m.editInput.View(),
		EditVisible: m.Details.Editing,
	})
}
