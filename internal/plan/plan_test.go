package plan

import (
	"errors"
	"testing"
)

func TestAnalyzeExamArchetype(t *testing.T) {
	a := Analyze("Prepare for exam in mathematics")
	if a.Archetype != ArchetypeExam {
		t.Fatalf("expected exam archetype, got %q", a.Archetype)
	}
	if a.Tier != TierMedium {
		t.Fatalf("expected medium tier, got %q", a.Tier)
	}
	if a.Subject != "math" {
		t.Fatalf("expected math subject, got %q", a.Subject)
	}
}

func TestAnalyzeArchetypePrecedence(t *testing.T) {
	// "exam" outranks "prepare" and "write" regardless of word order.
	a := Analyze("write notes to prepare for the final exam")
	if a.Archetype != ArchetypeExam {
		t.Fatalf("expected exam archetype, got %q", a.Archetype)
	}
	if a.Tier != TierHigh {
		t.Fatalf("expected high tier for final exam, got %q", a.Tier)
	}
}

func TestAnalyzeDefaultsToGeneral(t *testing.T) {
	a := Analyze("sort the garage")
	if a.Archetype != ArchetypeGeneral {
		t.Fatalf("expected general archetype, got %q", a.Archetype)
	}
	if a.Tier != TierMedium {
		t.Fatalf("expected medium tier, got %q", a.Tier)
	}
}

func TestAnalyzeWritingTiers(t *testing.T) {
	if a := Analyze("write an essay about history"); a.Tier != TierMedium {
		t.Fatalf("expected medium tier for essay, got %q", a.Tier)
	}
	if a := Analyze("write the quarterly report"); a.Tier != TierHigh {
		t.Fatalf("expected high tier for generic writing, got %q", a.Tier)
	}
}

func TestFallbackExamMediumTemplate(t *testing.T) {
	steps := Fallback("prepare for exam")
	if len(steps) != 5 {
		t.Fatalf("expected 5 steps, got %d", len(steps))
	}
	total := 0
	for _, s := range steps {
		total += s.EstimatedSessions
	}
	if total != 12 {
		t.Fatalf("expected 12 total sessions, got %d", total)
	}
	if steps[0].Title != "Collect materials and notes" {
		t.Fatalf("unexpected first step: %q", steps[0].Title)
	}
}

func TestFallbackTierFallsBackToMedium(t *testing.T) {
	// Preparation only carries a medium template; a low-complexity analysis
	// must still resolve to it.
	steps := templateFor(ArchetypePreparation, TierLow)
	if len(steps) != 5 {
		t.Fatalf("expected preparation medium template, got %d steps", len(steps))
	}
}

func TestTemplateForFirstAvailableTier(t *testing.T) {
	// Thesis has only a very_high template; asking for medium must return it.
	steps := templateFor(ArchetypeThesis, TierMedium)
	if len(steps) != 8 {
		t.Fatalf("expected thesis very_high template with 8 steps, got %d", len(steps))
	}
}

func TestSanitizeClampsAndDefaults(t *testing.T) {
	steps, err := Sanitize([]Step{
		{Title: "", EstimatedSessions: 0},
		{Title: "Too big", EstimatedSessions: 25},
		{Title: "Negative", EstimatedSessions: -3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if steps[0].Title != "Sub-task 1" {
		t.Fatalf("expected default title, got %q", steps[0].Title)
	}
	if steps[0].EstimatedSessions != 2 {
		t.Fatalf("expected default estimate 2, got %d", steps[0].EstimatedSessions)
	}
	if steps[1].EstimatedSessions != MaxSessions {
		t.Fatalf("expected clamp to %d, got %d", MaxSessions, steps[1].EstimatedSessions)
	}
	if steps[2].EstimatedSessions != MinSessions {
		t.Fatalf("expected clamp to %d, got %d", MinSessions, steps[2].EstimatedSessions)
	}
}

func TestSanitizeRejectsEmptyPlan(t *testing.T) {
	if _, err := Sanitize(nil); !errors.Is(err, ErrEmptyPlan) {
		t.Fatalf("expected ErrEmptyPlan, got: %v", err)
	}
}

func TestToSubTasksMintsUniqueIDs(t *testing.T) {
	subTasks := ToSubTasks(Fallback("learn go"))
	seen := make(map[int64]bool)
	for _, st := range subTasks {
		if st.ID <= 0 {
			t.Fatalf("expected positive id, got %d", st.ID)
		}
		if seen[st.ID] {
			t.Fatalf("duplicate sub-task id %d", st.ID)
		}
		seen[st.ID] = true
		if st.CompletedSessions != 0 || st.Completed {
			t.Fatal("expected fresh sub-task with no progress")
		}
	}
}
