package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"focusd/internal/views"
)

func (m Model) Init() tea.Cmd {
	if m.reminders != nil {
		return waitForReminderCmd(m.reminders.C())
	}
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case spinner.TickMsg:
		if m.syncActive || m.NewTask.Phase == PhaseGenerating {
			var cmd tea.Cmd
			m.syncSpinner, cmd = m.syncSpinner.Update(typed)
			return m, cmd
		}
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		}
		return m, nil
	case TimerTickMsg:
		return m.onTimerTick()
	case PlanReadyMsg:
		return m.onPlanReady(typed)
	case SyncDoneMsg:
		return m.onSyncDone(typed)
	case ReminderDueMsg:
		m.Status = StatusBar{Text: typed.Event.Message, IsError: false}
		if m.reminders != nil {
			return m, waitForReminderCmd(m.reminders.C())
		}
		return m, nil
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}

	// Modal surfaces swallow keys before the global bindings apply.
	if m.Palette.Active {
		return m.handlePaletteKey(msg)
	}
	if m.Quick.Active {
		return m.handleQuickKey(msg)
	}
	if m.CurrentView == ViewOnboarding {
		return m.handleOnboardingKey(msg)
	}
	if m.CurrentView == ViewNewTask {
		return m.handleNewTaskKey(msg)
	}
	if m.Details.Editing {
		return m.handleEditKey(msg)
	}

	switch msg.String() {
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Focus()
		m.Status = StatusBar{Text: "command palette active", IsError: false}
		return m, nil
	case m.Keys.Home:
		m.CurrentView = ViewHome
		return m, nil
	case m.Keys.Stats:
		m.CurrentView = ViewStats
		return m, nil
	case m.Keys.Pomodoro:
		m.CurrentView = ViewPomodoro
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case "S":
		return m.startSync()
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}

	switch m.CurrentView {
	case ViewHome:
		return m.handleHomeKey(msg)
	case ViewDetails:
		return m.handleDetailsKey(msg)
	case ViewPomodoro:
		return m.handlePomodoroKey(msg)
	}
	return m, nil
}

func (m Model) View() string {
	m.syncComponents()

	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	leftPane := ""
	switch m.CurrentView {
	case ViewOnboarding:
		leftPane = m.renderOnboardingView()
	case ViewHome:
		leftPane = m.renderHomeView()
	case ViewNewTask:
		leftPane = m.renderNewTaskView()
	case ViewDetails:
		leftPane = m.renderDetailsView()
	case ViewPomodoro:
		leftPane = m.renderPomodoroView()
	case ViewStats:
		leftPane = m.renderStatsView()
	}

	rightPane := views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
	if m.Quick.Active {
		rightPane += "\n" + views.RenderQuickPrompt(m.labelInput.View(), m.assistant.LastFocusLabel())
	}
	rightPane += m.renderHelpIfVisible()

	notification := ""
	if m.syncActive {
		notification = "sync: " + m.syncSpinner.View() + " running"
	}

	stats := m.assistant.Stats()
	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("focusd | view: %s | level %d | streak %d", m.CurrentView, stats.Level, stats.CurrentStreak),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		Notification: notification,
		Footer:       fmt.Sprintf("keys: %s home | %s stats | %s pomodoro | / cmd | %s help | %s quit", m.Keys.Home, m.Keys.Stats, m.Keys.Pomodoro, m.Keys.Help, m.Keys.Quit),
	})
}

func isKnownView(v View) bool {
	switch v {
	case ViewOnboarding, ViewHome, ViewNewTask, ViewDetails, ViewPomodoro, ViewStats:
		return true
	default:
		return false
	}
}
