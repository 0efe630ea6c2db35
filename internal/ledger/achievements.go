package ledger

import "focusd/internal/model"

// levelAchievements maps level thresholds to their unlocks. Keep the ids
// stable; clients persist them.
var levelAchievements = []struct {
	Level  int
	Record model.AchievementRecord
}{
	{1, model.AchievementRecord{ID: "first_steps", Title: "First Steps", Icon: "🎯"}},
	{2, model.AchievementRecord{ID: "level_2", Title: "Novice", Icon: "⭐"}},
	{3, model.AchievementRecord{ID: "level_3", Title: "Experienced", Icon: "🌟"}},
	{5, model.AchievementRecord{ID: "level_5", Title: "Professional", Icon: "💪"}},
	{10, model.AchievementRecord{ID: "level_10", Title: "Master", Icon: "👑"}},
}

// conditionAchievements unlock on cumulative totals rather than level.
var conditionAchievements = []struct {
	Check  func(model.PlayerStats) bool
	Record model.AchievementRecord
}{
	{
		func(s model.PlayerStats) bool { return s.TotalSessions >= 1 },
		model.AchievementRecord{ID: "first_steps", Title: "First Steps", Icon: "🎯"},
	},
	{
		func(s model.PlayerStats) bool { return s.TotalFocusMinutes >= 600 },
		model.AchievementRecord{ID: "marathon", Title: "Marathoner", Icon: "🏃"},
	},
	{
		func(s model.PlayerStats) bool { return s.TotalSessions >= 50 },
		model.AchievementRecord{ID: "dedication", Title: "Dedication", Icon: "🔥"},
	},
	{
		func(s model.PlayerStats) bool { return s.CurrentStreak >= 7 },
		model.AchievementRecord{ID: "streak_7", Title: "Week of Power", Icon: "📅"},
	},
	{
		func(s model.PlayerStats) bool { return s.CurrentStreak >= 30 },
		model.AchievementRecord{ID: "streak_30", Title: "Month of Discipline", Icon: "🗓️"},
	},
	{
		func(s model.PlayerStats) bool { return s.TotalFocusMinutes >= 6000 },
		model.AchievementRecord{ID: "legend", Title: "Legend", Icon: "🏆"},
	},
}

// unlockAchievements evaluates the catalogs against post-update stats and
// appends every newly earned record. Each id is appended at most once ever.
func unlockAchievements(stats *model.PlayerStats) []model.AchievementRecord {
	var unlocked []model.AchievementRecord

	award := func(record model.AchievementRecord) {
		if stats.HasAchievement(record.ID) {
			return
		}
		stats.Achievements = append(stats.Achievements, record)
		unlocked = append(unlocked, record)
	}

	for _, entry := range levelAchievements {
		if stats.Level >= entry.Level {
			award(entry.Record)
		}
	}
	for _, entry := range conditionAchievements {
		if entry.Check(*stats) {
			award(entry.Record)
		}
	}
	return unlocked
}
