package update

import (
	"focusd/internal/model"
	"focusd/internal/views"
)

func (m Model) renderStatsView() string {
	stats := m.assistant.Stats()
	achievements := make([]views.AchievementData, 0, len(stats.Achievements))
	for _, a := range stats.Achievements {
		achievements = append(achievements, views.AchievementData{Icon: a.Icon, Title: a.Title})
	}
	return views.RenderStatsPanel(views.StatsPanelData{
		Level:             stats.Level,
		XP:                stats.XP,
		XPIntoLevel:       stats.XP % model.XPPerLevel,
		XPPerLevel:        model.XPPerLevel,
		CurrentStreak:     stats.CurrentStreak,
		LongestStreak:     stats.LongestStreak,
		TotalSessions:     stats.TotalSessions,
		TotalFocusMinutes: stats.TotalFocusMinutes,
		Achievements:      achievements,
	})
}
