package plan

import "strings"

type Archetype string

const (
	ArchetypeExam        Archetype = "exam"
	ArchetypeCoursework  Archetype = "coursework"
	ArchetypeThesis      Archetype = "thesis"
	ArchetypeProject     Archetype = "project"
	ArchetypeLearning    Archetype = "learning"
	ArchetypePreparation Archetype = "preparation"
	ArchetypeWriting     Archetype = "writing"
	ArchetypeCreation    Archetype = "creation"
	ArchetypeGeneral     Archetype = "general"
)

type Tier string

const (
	TierLow      Tier = "low"
	TierMedium   Tier = "medium"
	TierHigh     Tier = "high"
	TierVeryHigh Tier = "very_high"
)

// Analysis is the classification of a task description. Subject is
// metadata only and never affects template selection.
type Analysis struct {
	Archetype Archetype
	Tier      Tier
	Subject   string
}

type archetypeRule struct {
	archetype Archetype
	keywords  []string
	tier      func(desc string) Tier
}

// archetypeRules is ordered by precedence; the first keyword hit wins.
var archetypeRules = []archetypeRule{
	{ArchetypeExam, []string{"exam"}, func(d string) Tier {
		if containsAny(d, "final") {
			return TierHigh
		}
		return TierMedium
	}},
	{ArchetypeCoursework, []string{"coursework", "course work", "term paper"}, fixedTier(TierHigh)},
	{ArchetypeThesis, []string{"thesis", "dissertation", "diploma"}, fixedTier(TierVeryHigh)},
	{ArchetypeProject, []string{"project"}, func(d string) Tier {
		if containsAny(d, "big", "large") {
			return TierHigh
		}
		return TierMedium
	}},
	{ArchetypeLearning, []string{"learn", "study"}, fixedTier(TierMedium)},
	{ArchetypePreparation, []string{"prepare", "preparation"}, fixedTier(TierMedium)},
	{ArchetypeWriting, []string{"write", "writing"}, func(d string) Tier {
		if containsAny(d, "article", "essay") {
			return TierMedium
		}
		return TierHigh
	}},
	{ArchetypeCreation, []string{"create", "develop", "build"}, fixedTier(TierMedium)},
}

// subjectRules is ordered so that classification is deterministic.
var subjectRules = []struct {
	keyword string
	subject string
}{
	{"math", "math"},
	{"physics", "physics"},
	{"chemistry", "chemistry"},
	{"biology", "biology"},
	{"history", "history"},
	{"literature", "literature"},
	{"english", "english"},
	{"programming", "programming"},
	{"code", "programming"},
	{"algorithm", "programming"},
	{"web", "web"},
	{"design", "design"},
}

// Analyze classifies a task description by keyword-substring matching
// against the lower-cased text.
func Analyze(description string) Analysis {
	desc := strings.ToLower(description)

	out := Analysis{Archetype: ArchetypeGeneral, Tier: TierMedium}
	for _, rule := range archetypeRules {
		if containsAny(desc, rule.keywords...) {
			out.Archetype = rule.archetype
			out.Tier = rule.tier(desc)
			break
		}
	}
	for _, rule := range subjectRules {
		if strings.Contains(desc, rule.keyword) {
			out.Subject = rule.subject
			break
		}
	}
	return out
}

func fixedTier(t Tier) func(string) Tier {
	return func(string) Tier { return t }
}

func containsAny(desc string, keywords ...string) bool {
	for _, kw := range keywords {
		if strings.Contains(desc, kw) {
			return true
		}
	}
	return false
}
