package views

import (
	"fmt"
	"strings"
)

type HomeTaskData struct {
	Title     string
	Completed int
	Total     int
	Deadline  string
	Done      bool
	Selected  bool
}

type HomePanelData struct {
	Tasks    []HomeTaskData
	ListView string
	Level    int
	XP       int
	Streak   int
}

type SubTaskData struct {
	Title     string
	Completed int
	Estimated int
	Done      bool
	Locked    bool
	Selected  bool
}

type DetailsPanelData struct {
	Title       string
	Deadline    string
	Completed   int
	Total       int
	SubTasks    []SubTaskData
	EditView    string
	EditVisible bool
}

type PomodoroPanelData struct {
	FocusLabel      string
	SubTaskTitle    string
	State           string
	Timer           string
	ProgressView    string
	ProgressPct     int
	BreakSuggestion string
}

type AchievementData struct {
	Icon  string
	Title string
}

type StatsPanelData struct {
	Level             int
	XP                int
	XPIntoLevel       int
	XPPerLevel        int
	CurrentStreak     int
	LongestStreak     int
	TotalSessions     int
	TotalFocusMinutes float64
	Achievements      []AchievementData
}

type OnboardingPanelData struct {
	StepIndex int
	StepCount int
	Prompt    string
	Options   []string
	Selected  int
	InputView string
}

type PlanPreviewData struct {
	Description   string
	TotalSessions int
	MarkdownView  string
	Generating    bool
	SpinnerView   string
}

func RenderHomePanel(data HomePanelData) string {
	var b strings.Builder
	b.WriteString("tasks:\n")
	b.WriteString(fmt.Sprintf("level %d | %d xp | streak %d\n", data.Level, data.XP, data.Streak))
	b.WriteString("actions: [n]new [enter]open [d]delete [f]quick-focus [S]sync\n")
	b.WriteString(data.ListView + "\n")
	if len(data.Tasks) == 0 {
		b.WriteString("(no tasks yet, press n to plan one)")
		return strings.TrimSpace(b.String())
	}
	for _, task := range data.Tasks {
		cursor := " "
		if task.Selected {
			cursor = ">"
		}
		mark := " "
		if task.Done {
			mark = "x"
		}
		b.WriteString(fmt.Sprintf("%s [%s] %s (%d/%d)", cursor, mark, task.Title, task.Completed, task.Total))
		if task.Deadline != "" {
			b.WriteString(" due:" + task.Deadline)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderDetailsPanel(data DetailsPanelData) string {
	var b strings.Builder
	b.WriteString("task: " + data.Title + "\n")
	if data.Deadline != "" {
		b.WriteString("deadline: " + data.Deadline + "\n")
	}
	b.WriteString(fmt.Sprintf("sessions: %d/%d\n", data.Completed, data.Total))
	b.WriteString("actions: [j/k]move [enter]start [e]edit [x]remove [esc]back\n")
	for _, st := range data.SubTasks {
		cursor := " "
		if st.Selected {
			cursor = ">"
		}
		mark := " "
		switch {
		case st.Done:
			mark = "x"
		case st.Locked:
			mark = "-"
		}
		b.WriteString(fmt.Sprintf("%s [%s] %s (%d/%d)\n", cursor, mark, st.Title, st.Completed, st.Estimated))
	}
	if data.EditVisible {
		b.WriteString("\nedit (title | sessions):\n")
		b.WriteString(data.EditView + "\n")
	}
	return strings.TrimSpace(b.String())
}

func RenderPomodoroPanel(data PomodoroPanelData) string {
	var b strings.Builder
	b.WriteString("focus:\n")
	if data.SubTaskTitle != "" {
		b.WriteString("sub-task: " + data.SubTaskTitle + "\n")
	} else if data.FocusLabel != "" {
		b.WriteString("label: " + data.FocusLabel + "\n")
	} else {
		b.WriteString("(no session, start one from a task or press f)\n")
	}
	b.WriteString(fmt.Sprintf("state: %s\n", strings.ToUpper(data.State)))
	b.WriteString("timer: " + data.Timer + "\n")
	b.WriteString(fmt.Sprintf("progress: %s %d%%\n", data.ProgressView, data.ProgressPct))
	b.WriteString("actions: [space]pause/resume [c]cancel [esc]back\n")
	if data.BreakSuggestion != "" {
		b.WriteString("break idea: " + data.BreakSuggestion)
	}
	return strings.TrimSpace(b.String())
}

func RenderStatsPanel(data StatsPanelData) string {
	var b strings.Builder
	b.WriteString("stats:\n")
	b.WriteString(fmt.Sprintf("level %d (%d/%d xp to next)\n", data.Level, data.XPIntoLevel, data.XPPerLevel))
	b.WriteString(fmt.Sprintf("total xp: %d\n", data.XP))
	b.WriteString(fmt.Sprintf("sessions: %d | focus minutes: %.0f\n", data.TotalSessions, data.TotalFocusMinutes))
	b.WriteString(fmt.Sprintf("streak: %d (longest %d)\n", data.CurrentStreak, data.LongestStreak))
	if len(data.Achievements) == 0 {
		b.WriteString("achievements: none yet")
		return strings.TrimSpace(b.String())
	}
	b.WriteString("achievements:\n")
	for _, a := range data.Achievements {
		b.WriteString(fmt.Sprintf("- %s %s\n", a.Icon, a.Title))
	}
	return strings.TrimSpace(b.String())
}

func RenderOnboardingPanel(data OnboardingPanelData) string {
	var b strings.Builder
	b.WriteString("welcome to focusd\n")
	b.WriteString(fmt.Sprintf("setup %d/%d: %s\n", data.StepIndex+1, data.StepCount, data.Prompt))
	if len(data.Options) > 0 {
		for i, opt := range data.Options {
			cursor := " "
			if i == data.Selected {
				cursor = ">"
			}
			b.WriteString(fmt.Sprintf("%s %s\n", cursor, opt))
		}
	} else {
		b.WriteString(data.InputView + "\n")
	}
	b.WriteString("keys: [j/k]choose [enter]next")
	return strings.TrimSpace(b.String())
}

func RenderPlanPreview(data PlanPreviewData) string {
	var b strings.Builder
	b.WriteString("plan preview:\n")
	b.WriteString("goal: " + data.Description + "\n")
	if data.Generating {
		b.WriteString("generating " + data.SpinnerView + "\n")
		return strings.TrimSpace(b.String())
	}
	b.WriteString(fmt.Sprintf("total sessions: %d\n", data.TotalSessions))
	b.WriteString(data.MarkdownView + "\n")
	b.WriteString("keys: [enter]accept [r]regenerate [esc]discard")
	return strings.TrimSpace(b.String())
}

func RenderQuickPrompt(inputView, lastLabel string) string {
	var b strings.Builder
	b.WriteString("quick focus:\n")
	b.WriteString(inputView + "\n")
	if lastLabel != "" {
		b.WriteString("last: " + lastLabel + "\n")
	}
	b.WriteString("keys: [enter]start [esc]cancel")
	return strings.TrimSpace(b.String())
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderHelpPanel(currentView string, bindings []string, helpView string) string {
	return fmt.Sprintf("help:\nview: %s\n%s\n%s",
		strings.ToLower(currentView),
		strings.Join(bindings, "\n"),
		helpView,
	)
}
