// Package assistant wires planning, progression, the pomodoro timer and the
// progression ledger behind a single facade the UI talks to. All state
// mutations happen in memory first and are persisted afterwards, so a
// storage failure never leaves the in-memory state behind the screen.
package assistant

import (
	"context"
	"strings"
	"time"

	"focusd/internal/ledger"
	"focusd/internal/model"
	"focusd/internal/plan"
	"focusd/internal/progression"
	"focusd/internal/storage"
	"focusd/internal/syncer"
	"focusd/internal/timer"
)

type Assistant struct {
	store   storage.Store
	planner plan.Planner
	sync    *syncer.Client
	ledger  *ledger.Ledger
	now     func() time.Time

	settings       model.Settings
	tasks          []model.Task
	stats          model.PlayerStats
	lastFocusLabel string
	streakAnchor   string

	currentTaskID string
	active        *model.ActiveSession
	timer         *timer.Timer
}

type Option func(*Assistant)

// WithPlanner supplies a remote plan generator. Without one every plan
// comes from the built-in templates.
func WithPlanner(p plan.Planner) Option {
	return func(a *Assistant) { a.planner = p }
}

// WithSyncer supplies a remote state mirror. Without one sync is disabled.
func WithSyncer(c *syncer.Client) Option {
	return func(a *Assistant) { a.sync = c }
}

// WithClock overrides the wall clock, used by tests.
func WithClock(now func() time.Time) Option {
	return func(a *Assistant) { a.now = now }
}

// New loads persisted state from the store and returns an assistant ready
// to serve the UI. Missing keys fall back to defaults, a corrupt or
// unreachable store is a hard error.
func New(ctx context.Context, store storage.Store, opts ...Option) (*Assistant, error) {
	a := &Assistant{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	a.ledger = ledger.New(a.now)
	if err := a.load(ctx); err != nil {
		return nil, err
	}
	a.timer = timer.New(a.sessionSeconds())
	return a, nil
}

func (a *Assistant) sessionSeconds() int {
	return a.settings.SessionLengthMinutes * 60
}

func (a *Assistant) Settings() model.Settings { return a.settings }

func (a *Assistant) Stats() model.PlayerStats { return a.stats }

func (a *Assistant) LastFocusLabel() string { return a.lastFocusLabel }

func (a *Assistant) Timer() *timer.Timer { return a.timer }

func (a *Assistant) Onboarded() bool { return a.settings.Onboarded }

// Active reports the session the timer is currently bound to, if any.
func (a *Assistant) Active() (model.ActiveSession, bool) {
	if a.active == nil {
		return model.ActiveSession{}, false
	}
	return *a.active, true
}

func (a *Assistant) Tasks() []model.Task { return a.tasks }

func (a *Assistant) TaskByID(id string) (model.Task, bool) {
	if i := a.taskIndex(id); i >= 0 {
		return a.tasks[i], true
	}
	return model.Task{}, false
}

// CurrentTask is the task most recently created or selected, shown on the
// task details screen.
func (a *Assistant) CurrentTask() (model.Task, bool) {
	return a.TaskByID(a.currentTaskID)
}

func (a *Assistant) SelectTask(id string) error {
	if a.taskIndex(id) < 0 {
		return ErrTaskNotFound
	}
	a.currentTaskID = id
	return nil
}

func (a *Assistant) taskIndex(id string) int {
	for i := range a.tasks {
		if a.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// UpdateSettings validates and persists new settings. The running timer is
// not touched, a new session length applies from the next session.
func (a *Assistant) UpdateSettings(ctx context.Context, s model.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	a.settings = s
	return a.saveSettings(ctx)
}

// CompleteOnboarding stores the answers from the first-run questionnaire
// and marks onboarding done.
func (a *Assistant) CompleteOnboarding(ctx context.Context, s model.Settings) error {
	s.Onboarded = true
	return a.UpdateSettings(ctx, s)
}

// GeneratePlan produces a session plan for a task description. The remote
// planner is tried first when configured, the template fallback covers
// every failure, so the returned plan is always usable.
func (a *Assistant) GeneratePlan(ctx context.Context, description string) []plan.Step {
	if a.planner != nil {
		steps, err := a.planner.GeneratePlan(ctx, description)
		if err == nil {
			if clean, serr := plan.Sanitize(steps); serr == nil {
				return clean
			}
		}
	}
	return plan.Fallback(description)
}

// CreateTask registers a new task. When steps is nil a plan is derived
// from the description templates. The new task becomes the current one.
// Creation itself cannot fail, only persisting it can.
func (a *Assistant) CreateTask(ctx context.Context, description string, deadline *time.Time, steps []plan.Step) (model.Task, error) {
	if steps == nil {
		steps = plan.Fallback(description)
	}
	task := model.NewTask(strings.TrimSpace(description), deadline, plan.ToSubTasks(steps), a.now())
	a.tasks = append(a.tasks, task)
	a.currentTaskID = task.ID
	return task, a.saveTasks(ctx)
}

// DeleteTask removes a task and everything hanging off it. An active
// session bound to the task is dropped without awarding progress.
func (a *Assistant) DeleteTask(ctx context.Context, taskID string) error {
	i := a.taskIndex(taskID)
	if i < 0 {
		return ErrTaskNotDeleted
	}
	a.tasks = append(a.tasks[:i], a.tasks[i+1:]...)
	if a.currentTaskID == taskID {
		a.currentTaskID = ""
	}
	if a.active != nil && a.active.TaskID == taskID {
		a.active = nil
		a.timer.Reset(a.sessionSeconds())
	}
	return a.saveTasks(ctx)
}

// DeleteSubTask removes one sub-task and shrinks the task totals by what
// the sub-task contributed, flooring at zero.
func (a *Assistant) DeleteSubTask(ctx context.Context, taskID string, subTaskID int64) error {
	ti := a.taskIndex(taskID)
	if ti < 0 {
		return ErrTaskNotFound
	}
	task := &a.tasks[ti]
	si := task.SubTaskIndex(subTaskID)
	if si < 0 {
		return ErrSubTaskNotFound
	}
	st := task.SubTasks[si]
	task.SubTasks = append(task.SubTasks[:si], task.SubTasks[si+1:]...)
	task.TotalSessions = floorZero(task.TotalSessions - st.EstimatedSessions)
	task.CompletedSessions = floorZero(task.CompletedSessions - st.CompletedSessions)
	if a.active != nil && a.active.TaskID == taskID && a.active.SubTaskID == subTaskID {
		a.active = nil
		a.timer.Reset(a.sessionSeconds())
	}
	return a.saveTasks(ctx)
}

// EditSubTask renames a sub-task and adjusts its session quota. An empty
// title keeps the old one, sessions below one or below the work already
// done are rejected.
func (a *Assistant) EditSubTask(ctx context.Context, taskID string, subTaskID int64, title string, sessions int) error {
	ti := a.taskIndex(taskID)
	if ti < 0 {
		return ErrTaskNotFound
	}
	task := &a.tasks[ti]
	si := task.SubTaskIndex(subTaskID)
	if si < 0 {
		return ErrSubTaskNotFound
	}
	st := &task.SubTasks[si]
	if title = strings.TrimSpace(title); title != "" {
		st.Title = title
	}
	if sessions > 0 {
		if sessions < st.CompletedSessions {
			return model.ErrQuotaExceededByWork
		}
		task.TotalSessions += sessions - st.EstimatedSessions
		st.EstimatedSessions = sessions
		st.RefreshCompleted()
	}
	return a.saveTasks(ctx)
}

// CanStart reports whether a focus session may start on the given
// sub-task right now.
func (a *Assistant) CanStart(taskID string, subTaskID int64) bool {
	task, ok := a.TaskByID(taskID)
	if !ok {
		return false
	}
	return progression.CanStart(task, subTaskID)
}

func floorZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
