package update

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"focusd/internal/assistant"
	"focusd/internal/reminder"
)

func timerTickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg { return TimerTickMsg{} })
}

// armTick schedules the next countdown tick unless one is already in
// flight. Every tick chain must go through here, a second chain would
// advance the countdown twice per wall-clock second.
func (m *Model) armTick() tea.Cmd {
	if m.tickPending {
		return nil
	}
	m.tickPending = true
	return timerTickCmd()
}

// generatePlanCmd asks the assistant for a plan off the main loop. The
// assistant falls back to templates on any planner failure, so the message
// always carries a usable plan.
func generatePlanCmd(a *assistant.Assistant, description string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		steps := a.GeneratePlan(ctx, description)
		return PlanReadyMsg{Description: description, Steps: steps}
	}
}

// syncCmd pushes a state snapshot taken on the main loop, so the background
// HTTP call never races UI mutations.
func syncCmd(a *assistant.Assistant, snap assistant.Snapshot) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		res, err := a.PushState(ctx, snap)
		return SyncDoneMsg{Result: res, Err: err}
	}
}

func waitForReminderCmd(ch <-chan reminder.Event) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return ReminderDueMsg{Event: ev}
	}
}
