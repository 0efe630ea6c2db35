// Package plan turns a free-text task description into an ordered sequence
// of sub-tasks with session quotas, either by validating an externally
// generated plan or by a deterministic local fallback.
package plan

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"focusd/internal/model"
)

const (
	// MinSessions and MaxSessions bound every sub-task quota; externally
	// supplied values are clamped into this range.
	MinSessions = 1
	MaxSessions = 10

	// defaultSessions replaces an unparsable external estimate.
	defaultSessions = 2
)

var ErrEmptyPlan = errors.New("plan: plan has no steps")

// Step is one proposed sub-task before ids are minted.
type Step struct {
	Title             string `json:"title"`
	EstimatedSessions int    `json:"estimatedSessions"`
}

// Planner is the external plan-generation collaborator. Any failure is
// treated as "use the local fallback" and never reaches the user as fatal.
type Planner interface {
	GeneratePlan(ctx context.Context, description string) ([]Step, error)
}

// Sanitize re-validates an externally supplied plan: session counts are
// clamped into [MinSessions, MaxSessions] and missing titles replaced with
// a positional default. An empty plan is rejected.
func Sanitize(steps []Step) ([]Step, error) {
	if len(steps) == 0 {
		return nil, ErrEmptyPlan
	}
	out := make([]Step, 0, len(steps))
	for i, step := range steps {
		title := strings.TrimSpace(step.Title)
		if title == "" {
			title = fmt.Sprintf("Sub-task %d", i+1)
		}
		sessions := step.EstimatedSessions
		if sessions == 0 {
			sessions = defaultSessions
		}
		if sessions < MinSessions {
			sessions = MinSessions
		}
		if sessions > MaxSessions {
			sessions = MaxSessions
		}
		out = append(out, Step{Title: title, EstimatedSessions: sessions})
	}
	return out, nil
}

// Fallback classifies the description and returns the matching fixed
// template. It always yields at least the three-step generic plan.
func Fallback(description string) []Step {
	analysis := Analyze(description)
	template := templateFor(analysis.Archetype, analysis.Tier)
	out := make([]Step, len(template))
	copy(out, template)
	return out
}

// ToSubTasks mints time-based ids for an accepted plan.
func ToSubTasks(steps []Step) []model.SubTask {
	out := make([]model.SubTask, 0, len(steps))
	for _, step := range steps {
		out = append(out, model.SubTask{
			ID:                model.NewSubTaskID(),
			Title:             step.Title,
			EstimatedSessions: step.EstimatedSessions,
		})
	}
	return out
}
