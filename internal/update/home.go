package update

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"focusd/internal/progression"
	"focusd/internal/views"
)

func (m Model) handleHomeKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	tasks := m.assistant.Tasks()
	switch msg.String() {
	case "j", "down":
		if m.Home.Cursor < len(tasks)-1 {
			m.Home.Cursor++
		}
		return m, nil
	case "k", "up":
		if m.Home.Cursor > 0 {
			m.Home.Cursor--
		}
		return m, nil
	case "n":
		m.CurrentView = ViewNewTask
		m.NewTask = NewTaskState{Phase: PhaseEntering}
		m.descInput.SetValue("")
		m.descInput.Focus()
		return m, nil
	case "f":
		m.Quick.Active = true
		m.labelInput.SetValue(m.assistant.LastFocusLabel())
		m.labelInput.Focus()
		return m, nil
	case "enter":
		if m.Home.Cursor < len(tasks) {
			task := tasks[m.Home.Cursor]
			if err := m.assistant.SelectTask(task.ID); err != nil {
				m.Status = StatusBar{Text: err.Error(), IsError: true}
				return m, nil
			}
			m.CurrentView = ViewDetails
			m.Details = DetailsState{}
		}
		return m, nil
	case "d":
		if m.Home.Cursor < len(tasks) {
			task := tasks[m.Home.Cursor]
			if err := m.assistant.DeleteTask(context.Background(), task.ID); err != nil {
				m.Status = StatusBar{Text: err.Error(), IsError: true}
				return m, nil
			}
			if m.Home.Cursor > 0 {
				m.Home.Cursor--
			}
			m.Status = StatusBar{Text: fmt.Sprintf("deleted task: %s", task.Title), IsError: false}
			return m.afterMutation()
		}
		return m, nil
	}
	return m, nil
}

func (m Model) renderHomeView() string {
	tasks := m.assistant.Tasks()
	stats := m.assistant.Stats()
	items := make([]views.HomeTaskData, 0, len(tasks))
	for i, task := range tasks {
		deadline := ""
		if task.Deadline != nil {
			deadline = task.Deadline.Format("2006-01-02")
		}
		items = append(items, views.HomeTaskData{
			Title:     task.Title,
			Completed: task.CompletedSessions,
			Total:     task.TotalSessions,
			Deadline:  deadline,
			Done:      progression.IsTaskComplete(task),
			Selected:  i == m.Home.Cursor,
		})
	}
	return views.RenderHomePanel(views.HomePanelData{
		Tasks:    items,
		ListView: m.taskList.View(),
		Level:    stats.Level,
		XP:       stats.XP,
		Streak:   stats.CurrentStreak,
	})
}

// afterMutation kicks off a background sync when one is configured, so
// remote state trails local edits without blocking the loop.
func (m Model) afterMutation() (tea.Model, tea.Cmd) {
	if !m.assistant.SyncEnabled() || m.syncActive {
		return m, nil
	}
	return m.startSync()
}

func (m Model) startSync() (tea.Model, tea.Cmd) {
	if !m.assistant.SyncEnabled() {
		m.Status = StatusBar{Text: "sync is not configured", IsError: true}
		return m, nil
	}
	if m.syncActive {
		return m, nil
	}
	m.syncActive = true
	snap := m.assistant.Snapshot()
	return m, tea.Batch(m.syncSpinner.Tick, syncCmd(m.assistant, snap))
}

func (m Model) onSyncDone(msg SyncDoneMsg) (tea.Model, tea.Cmd) {
	m.syncActive = false
	if msg.Err != nil {
		m.Status = StatusBar{Text: "sync failed: " + msg.Err.Error(), IsError: true}
		return m, nil
	}
	if err := m.assistant.ApplySync(context.Background(), msg.Result); err != nil {
		m.Status = StatusBar{Text: "sync applied with warnings: " + err.Error(), IsError: true}
		return m, nil
	}
	if m.Home.Cursor >= len(m.assistant.Tasks()) {
		m.Home.Cursor = 0
	}
	m.Status = StatusBar{Text: "sync complete", IsError: false}
	return m, nil
}
