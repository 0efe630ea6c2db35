package model

// AchievementRecord is a one-time unlock from the fixed catalog. Once
// appended to PlayerStats it is never removed or re-evaluated to false.
type AchievementRecord struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Icon  string `json:"icon"`
}

// PlayerStats is the gamified progress model. It is mutated only by the
// ledger on session completion.
type PlayerStats struct {
	TotalSessions     int                 `json:"totalSessions"`
	TotalFocusMinutes float64             `json:"totalFocusMinutes"`
	CurrentStreak     int                 `json:"currentStreak"`
	LongestStreak     int                 `json:"longestStreak"`
	Level             int                 `json:"level"`
	XP                int                 `json:"xp"`
	Achievements      []AchievementRecord `json:"achievements"`
}

// XPPerLevel is the experience needed to advance one level.
const XPPerLevel = 100

// LevelForXP derives the level from accumulated experience.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/XPPerLevel + 1
}

func NewPlayerStats() PlayerStats {
	return PlayerStats{Level: 1, Achievements: []AchievementRecord{}}
}

// Normalize repairs a stats blob loaded from storage: zero-value fields get
// their defaults and the derived level invariant is restored.
func (p *PlayerStats) Normalize() {
	if p.TotalSessions < 0 {
		p.TotalSessions = 0
	}
	if p.TotalFocusMinutes < 0 {
		p.TotalFocusMinutes = 0
	}
	if p.CurrentStreak < 0 {
		p.CurrentStreak = 0
	}
	if p.LongestStreak < p.CurrentStreak {
		p.LongestStreak = p.CurrentStreak
	}
	p.Level = LevelForXP(p.XP)
	if p.Achievements == nil {
		p.Achievements = []AchievementRecord{}
	}
}

func (p PlayerStats) HasAchievement(id string) bool {
	for _, a := range p.Achievements {
		if a.ID == id {
			return true
		}
	}
	return false
}
