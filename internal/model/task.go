package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

var (
	ErrInvalidSessionQuota = errors.New("model: invalid session quota")
	ErrQuotaExceededByWork = errors.New("model: completed sessions exceed quota")
)

// SubTask is one ordered unit of work inside a Task. Sub-task order is the
// unlock order: a sub-task may only be worked on once every earlier one is
// complete.
type SubTask struct {
	ID                int64  `json:"id"`
	Title             string `json:"title"`
	EstimatedSessions int    `json:"estimatedSessions"`
	CompletedSessions int    `json:"completedSessions"`
	// Completed caches CompletedSessions >= EstimatedSessions and is
	// refreshed on every mutation; it is never the source of truth.
	Completed bool `json:"completed"`
}

// RefreshCompleted re-derives the cached Completed flag.
func (s *SubTask) RefreshCompleted() {
	s.Completed = s.CompletedSessions >= s.EstimatedSessions
}

func (s SubTask) Validate() error {
	if s.ID <= 0 {
		return errors.New("model: sub-task id is required")
	}
	if strings.TrimSpace(s.Title) == "" {
		return errors.New("model: sub-task title is required")
	}
	if s.EstimatedSessions < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidSessionQuota, s.EstimatedSessions)
	}
	if s.CompletedSessions < 0 {
		return errors.New("model: completed sessions must not be negative")
	}
	if s.CompletedSessions > s.EstimatedSessions {
		return fmt.Errorf("%w: %d/%d", ErrQuotaExceededByWork, s.CompletedSessions, s.EstimatedSessions)
	}
	return nil
}

// Task is a user task broken into ordered sub-tasks with per-sub-task
// session quotas. TotalSessions is the sum of sub-task quotas and is
// adjusted by delta on every sub-task edit or deletion.
type Task struct {
	ID                string     `json:"id"`
	Title             string     `json:"title"`
	Deadline          *time.Time `json:"deadline,omitempty"`
	SubTasks          []SubTask  `json:"subTasks"`
	CreatedAt         time.Time  `json:"createdAt"`
	TotalSessions     int        `json:"totalSessions"`
	CompletedSessions int        `json:"completedSessions"`
}

func (t Task) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if t.CreatedAt.IsZero() {
		return errors.New("model: task created_at is required")
	}
	if len(t.SubTasks) == 0 {
		return errors.New("model: task requires at least one sub-task")
	}
	seen := make(map[int64]bool, len(t.SubTasks))
	quota := 0
	for _, st := range t.SubTasks {
		if err := st.Validate(); err != nil {
			return err
		}
		if seen[st.ID] {
			return fmt.Errorf("model: duplicate sub-task id %d", st.ID)
		}
		seen[st.ID] = true
		quota += st.EstimatedSessions
	}
	if t.TotalSessions != quota {
		return fmt.Errorf("model: total sessions %d does not match quota sum %d", t.TotalSessions, quota)
	}
	if t.CompletedSessions < 0 {
		return errors.New("model: completed sessions must not be negative")
	}
	return nil
}

// SubTaskIndex returns the position of the sub-task with the given id, or -1.
func (t Task) SubTaskIndex(id int64) int {
	for i := range t.SubTasks {
		if t.SubTasks[i].ID == id {
			return i
		}
	}
	return -1
}

// NewTask assembles a task from an accepted plan, deriving TotalSessions
// from the sub-task quotas.
func NewTask(title string, deadline *time.Time, subTasks []SubTask, createdAt time.Time) Task {
	total := 0
	for _, st := range subTasks {
		total += st.EstimatedSessions
	}
	return Task{
		ID:            NewTaskID(),
		Title:         title,
		Deadline:      deadline,
		SubTasks:      subTasks,
		CreatedAt:     createdAt,
		TotalSessions: total,
	}
}
