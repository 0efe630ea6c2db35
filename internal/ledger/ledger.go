// Package ledger converts a completed focus session into experience,
// level, streak, and achievement updates. It is the only code that
// mutates PlayerStats.
package ledger

import (
	"time"

	"focusd/internal/model"
)

// XPPerSession is the fixed experience award per completed session.
const XPPerSession = 10

// DateLayout is the calendar-date format of the persisted streak anchor.
const DateLayout = "2006-01-02"

// Result is reported to the caller after a session is applied.
type Result struct {
	XPGained  int
	LeveledUp bool
	Unlocked  []model.AchievementRecord
	// Anchor is the new streak anchor, always today's local date.
	Anchor string
}

// Ledger applies session completions. The clock is injectable so streak
// tests can pin the calendar.
type Ledger struct {
	now func() time.Time
}

func New(now func() time.Time) *Ledger {
	if now == nil {
		now = time.Now
	}
	return &Ledger{now: now}
}

// CompleteSession applies one completed session of the given length to the
// stats. anchor is the persisted streak anchor date, empty when no session
// has ever completed. The caller persists the stats and the new anchor.
func (l *Ledger) CompleteSession(stats *model.PlayerStats, anchor string, sessionMinutes float64) Result {
	stats.XP += XPPerSession
	stats.TotalSessions++
	stats.TotalFocusMinutes += sessionMinutes

	oldLevel := stats.Level
	if oldLevel < 1 {
		oldLevel = 1
	}
	stats.Level = model.LevelForXP(stats.XP)

	newAnchor := l.updateStreak(stats, anchor)
	unlocked := unlockAchievements(stats)

	return Result{
		XPGained:  XPPerSession,
		LeveledUp: stats.Level > oldLevel,
		Unlocked:  unlocked,
		Anchor:    newAnchor,
	}
}

// updateStreak compares today's local calendar date against the anchor:
// no anchor starts a streak, the same day leaves it unchanged, yesterday
// extends it, and any other gap resets it to one.
func (l *Ledger) updateStreak(stats *model.PlayerStats, anchor string) string {
	now := l.now()
	today := now.Format(DateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)

	switch anchor {
	case "":
		stats.CurrentStreak = 1
	case today:
		// Second session the same day; the streak stands. A synced
		// stats blob can carry a zero streak, re-seed instead of
		// leaving it stuck at zero for the day.
		if stats.CurrentStreak < 1 {
			stats.CurrentStreak = 1
		}
	case yesterday:
		stats.CurrentStreak++
		if stats.CurrentStreak < 1 {
			stats.CurrentStreak = 1
		}
	default:
		stats.CurrentStreak = 1
	}

	if stats.CurrentStreak > stats.LongestStreak {
		stats.LongestStreak = stats.CurrentStreak
	}
	return today
}
