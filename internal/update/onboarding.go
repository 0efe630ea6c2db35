package update

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"focusd/internal/model"
	"focusd/internal/views"
)

const onboardingSteps = 4

type onboardingStep struct {
	prompt  string
	options []string
}

var onboardingFlow = [onboardingSteps]onboardingStep{
	{
		prompt:  "How many hours a day can you give to focused work?",
		options: []string{"2 hours", "4 hours", "6 hours", "8 hours"},
	},
	{
		prompt:  "When do you focus best?",
		options: []string{"morning", "afternoon", "evening", "night"},
	},
	{
		prompt:  "How long should one focus session be?",
		options: []string{"25 minutes", "50 minutes", "90 minutes"},
	},
	{
		prompt:  "And the break between sessions?",
		options: []string{"5 minutes", "10 minutes", "15 minutes"},
	},
}

var (
	onboardingHours      = [4]float64{2, 4, 6, 8}
	onboardingTimeOfDay  = [4]model.TimeOfDay{model.TimeOfDayMorning, model.TimeOfDayAfternoon, model.TimeOfDayEvening, model.TimeOfDayNight}
	onboardingSessionMin = [3]int{25, 50, 90}
	onboardingBreakMin   = [3]int{5, 10, 15}
)

func (m Model) handleOnboardingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	step := &onboardingFlow[m.Onboarding.Step]
	switch msg.String() {
	case "j", "down":
		if m.Onboarding.Selected[m.Onboarding.Step] < len(step.options)-1 {
			m.Onboarding.Selected[m.Onboarding.Step]++
		}
		return m, nil
	case "k", "up":
		if m.Onboarding.Selected[m.Onboarding.Step] > 0 {
			m.Onboarding.Selected[m.Onboarding.Step]--
		}
		return m, nil
	case "enter":
		if m.Onboarding.Step < onboardingSteps-1 {
			m.Onboarding.Step++
			return m, nil
		}
		return m.finishOnboarding()
	case "q", "ctrl+c":
		m.Quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m Model) finishOnboarding() (tea.Model, tea.Cmd) {
	settings := m.assistant.Settings()
	settings.DailySessionBudgetHours = onboardingHours[m.Onboarding.Selected[0]]
	settings.PreferredTimeOfDay = onboardingTimeOfDay[m.Onboarding.Selected[1]]
	settings.SessionLengthMinutes = onboardingSessionMin[m.Onboarding.Selected[2]]
	settings.BreakLengthMinutes = onboardingBreakMin[m.Onboarding.Selected[3]]
	if err := m.assistant.CompleteOnboarding(context.Background(), settings); err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		return m, nil
	}
	m.CurrentView = ViewHome
	m.Status = StatusBar{Text: "all set, plan your first task with n", IsError: false}
	return m.afterMutation()
}

func (m Model) renderOnboardingView() string {
	step := onboardingFlow[m.Onboarding.Step]
	return views.RenderOnboardingPanel(views.OnboardingPanelData{
		StepIndex: m.Onboarding.Step,
		StepCount: onboardingSteps,
		Prompt:    step.prompt,
		Options:   step.options,
		Selected:  m.Onboarding.Selected[m.Onboarding.Step],
	})
}
