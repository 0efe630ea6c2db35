package update

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"focusd/internal/assistant"
	"focusd/internal/plan"
	"focusd/internal/reminder"
	"focusd/internal/syncer"
)

type View string

const (
	ViewOnboarding View = "Onboarding"
	ViewHome       View = "Home"
	ViewNewTask    View = "NewTask"
	ViewDetails    View = "Details"
	ViewPomodoro   View = "Pomodoro"
	ViewStats      View = "Stats"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Home     string
	Stats    string
	Pomodoro string
	Help     string
	Quit     string
}

type HomeState struct {
	Cursor int
}

type DetailsState struct {
	Cursor  int
	Editing bool
}

type NewTaskPhase string

const (
	PhaseEntering   NewTaskPhase = "entering"
	PhaseGenerating NewTaskPhase = "generating"
	PhasePreview    NewTaskPhase = "preview"
)

type NewTaskState struct {
	Phase       NewTaskPhase
	Description string
	Steps       []plan.Step
}

type QuickState struct {
	Active bool
}

type OnboardingState struct {
	Step     int
	Selected [onboardingSteps]int
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Model struct {
	assistant *assistant.Assistant
	reminders *reminder.Engine

	CurrentView View
	Status      StatusBar
	Keys        GlobalKeyMap
	HelpVisible bool
	Quitting    bool
	LastError   error

	Home       HomeState
	Details    DetailsState
	NewTask    NewTaskState
	Quick      QuickState
	Onboarding OnboardingState
	Palette    CommandPaletteState

	breakSuggestion string
	tickPending     bool
	syncActive      bool

	// Bubble components used for rich TUI controls
	taskList      list.Model
	descInput     textinput.Model
	labelInput    textinput.Model
	editInput     textinput.Model
	commandInput  textinput.Model
	focusProgress progress.Model
	syncSpinner   spinner.Model
	helpModel     help.Model
	planViewport  viewport.Model
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

type TimerTickMsg struct{}

type PlanReadyMsg struct {
	Description string
	Steps       []plan.Step
}

type SyncDoneMsg struct {
	Result syncer.Result
	Err    error
}

type ReminderDueMsg struct {
	Event reminder.Event
}

func NewModel(a *assistant.Assistant) Model {
	m := Model{
		assistant:   a,
		CurrentView: ViewHome,
		Keys: GlobalKeyMap{
			Home:     "1",
			Stats:    "2",
			Pomodoro: "3",
			Help:     "?",
			Quit:     "q",
		},
	}
	if !a.Onboarded() {
		m.CurrentView = ViewOnboarding
	}
	m.NewTask.Phase = PhaseEntering
	m.initComponents()
	m.syncComponents()
	return m
}

func NewModelWithReminders(a *assistant.Assistant, engine *reminder.Engine) Model {
	m := NewModel(a)
	m.reminders = engine
	return m
}
