package update

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"focusd/internal/assistant"
	"focusd/internal/plan"
	"focusd/internal/storage"
)

func newTestModel(t *testing.T, onboarded bool) Model {
	t.Helper()
	a, err := assistant.New(context.Background(), storage.NewMemoryStore())
	if err != nil {
		t.Fatalf("assistant.New: %v", err)
	}
	if onboarded {
		settings := a.Settings()
		settings.Onboarded = true
		settings.SessionLengthMinutes = 1
		if err := a.UpdateSettings(context.Background(), settings); err != nil {
			t.Fatalf("UpdateSettings: %v", err)
		}
	}
	return NewModel(a)
}

func pressKey(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func pressRune(t *testing.T, m Model, r rune) (Model, tea.Cmd) {
	t.Helper()
	return pressKey(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

func typeString(t *testing.T, m Model, s string) Model {
	t.Helper()
	for _, r := range s {
		m, _ = pressRune(t, m, r)
	}
	return m
}

func TestNewModelViewDependsOnOnboarding(t *testing.T) {
	if m := newTestModel(t, false); m.CurrentView != ViewOnboarding {
		t.Fatalf("fresh state should open onboarding, got %q", m.CurrentView)
	}
	if m := newTestModel(t, true); m.CurrentView != ViewHome {
		t.Fatalf("onboarded state should open home, got %q", m.CurrentView)
	}
}

func TestKeySwitchesView(t *testing.T) {
	m := newTestModel(t, true)
	m, _ = pressRune(t, m, '2')
	if m.CurrentView != ViewStats {
		t.Fatalf("expected stats view, got %q", m.CurrentView)
	}
	m, _ = pressRune(t, m, '3')
	if m.CurrentView != ViewPomodoro {
		t.Fatalf("expected pomodoro view, got %q", m.CurrentView)
	}
	m, _ = pressRune(t, m, '1')
	if m.CurrentView != ViewHome {
		t.Fatalf("expected home view, got %q", m.CurrentView)
	}
}

func TestStatusAndErrorMsgs(t *testing.T) {
	m := newTestModel(t, true)
	updated, _ := m.Update(SetStatusMsg{Text: "ready", IsError: false})
	m = updated.(Model)
	if m.Status.Text != "ready" || m.Status.IsError {
		t.Fatalf("unexpected status: %+v", m.Status)
	}

	updated, _ = m.Update(AppErrorMsg{Err: errors.New("boom")})
	m = updated.(Model)
	if m.LastError == nil || !m.Status.IsError || m.Status.Text != "boom" {
		t.Fatalf("unexpected error handling: status=%+v lastErr=%v", m.Status, m.LastError)
	}

	updated, _ = m.Update(ClearStatusMsg{})
	m = updated.(Model)
	if m.Status.Text != "" || m.Status.IsError {
		t.Fatalf("expected cleared status, got %+v", m.Status)
	}
}

func TestOnboardingFlow(t *testing.T) {
	m := newTestModel(t, false)
	for step := 0; step < onboardingSteps; step++ {
		m, _ = pressRune(t, m, 'j')
		m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	}
	if m.CurrentView != ViewHome {
		t.Fatalf("expected home after onboarding, got %q", m.CurrentView)
	}
	settings := m.assistant.Settings()
	if !settings.Onboarded {
		t.Fatalf("onboarding flag not set")
	}
	if settings.DailySessionBudgetHours != 4 {
		t.Fatalf("expected second hours option, got %v", settings.DailySessionBudgetHours)
	}
	if settings.SessionLengthMinutes != 50 || settings.BreakLengthMinutes != 10 {
		t.Fatalf("unexpected durations: %+v", settings)
	}
}

func TestPaletteQuickFocusRunsToCompletion(t *testing.T) {
	m := newTestModel(t, true)
	m, _ = pressRune(t, m, '/')
	if !m.Palette.Active {
		t.Fatalf("palette should be active")
	}
	m = typeString(t, m, "focus reading")
	m, cmd := pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("expected a tick command after starting a session")
	}
	if m.CurrentView != ViewPomodoro {
		t.Fatalf("expected pomodoro view, got %q", m.CurrentView)
	}

	total := m.assistant.Timer().Total()
	for i := 0; i < total; i++ {
		updated, _ := m.Update(TimerTickMsg{})
		m = updated.(Model)
	}
	stats := m.assistant.Stats()
	if stats.TotalSessions != 1 || stats.XP != 10 {
		t.Fatalf("session did not complete: %+v", stats)
	}
	if !strings.Contains(m.Status.Text, "session complete") {
		t.Fatalf("unexpected status: %+v", m.Status)
	}
	if m.breakSuggestion == "" {
		t.Fatalf("expected a break suggestion after completion")
	}
}

func TestStartingOverARunningSessionKeepsOneTickChain(t *testing.T) {
	m := newTestModel(t, true)
	m, _ = pressRune(t, m, '/')
	m = typeString(t, m, "focus reading")
	m, cmd := pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatalf("first start should arm the tick loop")
	}

	// Start a second session before the first tick has fired. The tick
	// already in flight keeps the loop alive, so no new command may be
	// issued.
	m, _ = pressRune(t, m, '/')
	m = typeString(t, m, "focus writing")
	m, cmd = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("second start must not arm another tick chain")
	}

	remaining := m.assistant.Timer().Remaining()
	updated, cmd := m.Update(TimerTickMsg{})
	m = updated.(Model)
	if cmd == nil {
		t.Fatalf("running timer should re-arm after a tick")
	}
	if got := m.assistant.Timer().Remaining(); got != remaining-1 {
		t.Fatalf("one tick should advance one second: remaining went %d -> %d", remaining, got)
	}
}

func TestPauseStopsTicking(t *testing.T) {
	m := newTestModel(t, true)
	m, _ = pressRune(t, m, '/')
	m = typeString(t, m, "focus writing")
	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	updated, _ := m.Update(TimerTickMsg{})
	m = updated.(Model)
	remaining := m.assistant.Timer().Remaining()

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeySpace})
	updated, cmd := m.Update(TimerTickMsg{})
	m = updated.(Model)
	if cmd != nil {
		t.Fatalf("no follow-up tick expected while paused")
	}
	if m.assistant.Timer().Remaining() != remaining {
		t.Fatalf("timer advanced while paused")
	}

	m, cmd = pressKey(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if cmd == nil {
		t.Fatalf("resume should restart the tick loop")
	}
}

func TestNewTaskPlanPreviewFlow(t *testing.T) {
	m := newTestModel(t, true)
	m, _ = pressRune(t, m, 'n')
	if m.CurrentView != ViewNewTask || m.NewTask.Phase != PhaseEntering {
		t.Fatalf("expected new-task entry, got view=%q phase=%q", m.CurrentView, m.NewTask.Phase)
	}
	m = typeString(t, m, "prepare for the exam")
	m, cmd := pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.NewTask.Phase != PhaseGenerating || cmd == nil {
		t.Fatalf("expected plan generation to start")
	}

	steps := plan.Fallback("prepare for the exam")
	updated, _ := m.Update(PlanReadyMsg{Description: "prepare for the exam", Steps: steps})
	m = updated.(Model)
	if m.NewTask.Phase != PhasePreview || len(m.NewTask.Steps) != len(steps) {
		t.Fatalf("expected preview with %d steps, got phase=%q steps=%d", len(steps), m.NewTask.Phase, len(m.NewTask.Steps))
	}

	m, _ = pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.CurrentView != ViewDetails {
		t.Fatalf("expected details view after accepting, got %q", m.CurrentView)
	}
	tasks := m.assistant.Tasks()
	if len(tasks) != 1 || tasks[0].TotalSessions != 12 {
		t.Fatalf("task not created from accepted plan: %+v", tasks)
	}
}

func TestStalePlanReadyIsIgnored(t *testing.T) {
	m := newTestModel(t, true)
	updated, _ := m.Update(PlanReadyMsg{Description: "old goal", Steps: plan.Fallback("old goal")})
	m = updated.(Model)
	if m.NewTask.Phase == PhasePreview {
		t.Fatalf("stale plan must not open a preview")
	}
}

func TestStartSessionOnLockedSubTaskShowsError(t *testing.T) {
	m := newTestModel(t, true)
	if _, err := m.assistant.CreateTask(context.Background(), "prepare for the exam", nil, nil); err != nil {
		t.Fatalf("CreateTask: %v", err)
	}
	m.CurrentView = ViewDetails
	m, _ = pressRune(t, m, 'j')
	m, cmd := pressKey(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd != nil {
		t.Fatalf("locked sub-task must not start a session")
	}
	if !m.Status.IsError || !strings.Contains(m.Status.Text, "first") {
		t.Fatalf("expected a locked error in the status bar, got %+v", m.Status)
	}
}
