package update

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"focusd/internal/assistant"
	"focusd/internal/timer"
	"focusd/internal/views"
)

func (m Model) handlePomodoroKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case " ":
		m.assistant.PauseToggle()
		switch m.assistant.Timer().State() {
		case timer.StatePaused:
			m.Status = StatusBar{Text: "session paused", IsError: false}
		case timer.StateRunning:
			m.Status = StatusBar{Text: "session resumed", IsError: false}
			return m, m.armTick()
		}
		return m, nil
	case "c":
		if _, active := m.assistant.Active(); !active {
			return m, nil
		}
		if err := m.assistant.CancelSession(context.Background()); err != nil {
			m.Status = StatusBar{Text: err.Error(), IsError: true}
			return m, nil
		}
		m.Status = StatusBar{Text: "session cancelled, nothing counted", IsError: false}
		return m, nil
	case "esc":
		m.CurrentView = ViewHome
		return m, nil
	}
	return m, nil
}

func (m Model) onTimerTick() (tea.Model, tea.Cmd) {
	m.tickPending = false
	report, err := m.assistant.Tick(context.Background())
	if err != nil {
		m.LastError = err
		m.Status = StatusBar{Text: "save failed: " + err.Error(), IsError: true}
	}
	if report != nil {
		m.breakSuggestion = breakExercise(m.assistant.Stats().TotalSessions)
		if err == nil {
			m.Status = StatusBar{Text: completionStatus(report), IsError: false}
		}
		if m.reminders != nil {
			breakLen := time.Duration(m.assistant.Settings().BreakLengthMinutes) * time.Minute
			_ = m.reminders.ScheduleBreakOver(breakLen)
		}
		return m.afterMutation()
	}
	if m.assistant.Timer().State() == timer.StateRunning {
		return m, m.armTick()
	}
	return m, nil
}

func completionStatus(report *assistant.CompletionReport) string {
	text := fmt.Sprintf("session complete: +%d xp", report.XPGained)
	if report.LeveledUp {
		text += fmt.Sprintf(", level %d reached", report.Level)
	}
	for _, a := range report.Unlocked {
		text += ", unlocked " + a.Icon + " " + a.Title
	}
	if report.TaskDone {
		text += ", task finished"
	} else if report.SubTaskDone {
		text += ", sub-task finished"
	}
	return text
}

func (m Model) renderPomodoroView() string {
	t := m.assistant.Timer()
	active, _ := m.assistant.Active()
	subTitle := ""
	if active.Bound() {
		if task, ok := m.assistant.TaskByID(active.TaskID); ok {
			if i := task.SubTaskIndex(active.SubTaskID); i >= 0 {
				subTitle = task.Title + " / " + task.SubTasks[i].Title
			}
		}
	}
	return views.RenderPomodoroPanel(views.PomodoroPanelData{
		FocusLabel:      active.FocusLabel,
		SubTaskTitle:    subTitle,
		State:           string(t.State()),
		Timer:           formatDuration(t.Remaining()),
		ProgressView:    m.focusProgress.View(),
		ProgressPct:     int(t.Progress() * 100),
		BreakSuggestion: m.breakSuggestion,
	})
}
