package model

import (
	"errors"
	"testing"
)

func TestLevelForXP(t *testing.T) {
	cases := map[int]int{0: 1, 99: 1, 100: 2, 250: 3, 1000: 11, -5: 1}
	for xp, want := range cases {
		if got := LevelForXP(xp); got != want {
			t.Errorf("LevelForXP(%d) = %d, want %d", xp, got, want)
		}
	}
}

func TestPlayerStatsNormalize(t *testing.T) {
	stats := PlayerStats{XP: 230, CurrentStreak: 5, LongestStreak: 2}
	stats.Normalize()
	if stats.Level != 3 {
		t.Fatalf("expected level 3, got %d", stats.Level)
	}
	if stats.LongestStreak != 5 {
		t.Fatalf("expected longest streak lifted to 5, got %d", stats.LongestStreak)
	}
	if stats.Achievements == nil {
		t.Fatal("expected achievements slice initialised")
	}
}

func TestSettingsValidate(t *testing.T) {
	s := DefaultSettings()
	if err := s.Validate(); err != nil {
		t.Fatalf("expected default settings valid, got: %v", err)
	}

	s.PreferredTimeOfDay = TimeOfDay("midnight")
	if err := s.Validate(); !errors.Is(err, ErrInvalidTimeOfDay) {
		t.Fatalf("expected ErrInvalidTimeOfDay, got: %v", err)
	}

	s = DefaultSettings()
	s.SessionLengthMinutes = 0
	if err := s.Validate(); !errors.Is(err, ErrInvalidSessionLength) {
		t.Fatalf("expected ErrInvalidSessionLength, got: %v", err)
	}
}

func TestHasAchievement(t *testing.T) {
	stats := NewPlayerStats()
	if stats.HasAchievement("first_steps") {
		t.Fatal("expected no achievements yet")
	}
	stats.Achievements = append(stats.Achievements, AchievementRecord{ID: "first_steps", Title: "First Steps", Icon: "🎯"})
	if !stats.HasAchievement("first_steps") {
		t.Fatal("expected first_steps unlocked")
	}
}
