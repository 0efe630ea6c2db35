package assistant

import (
	"context"
	"strings"

	"focusd/internal/model"
	"focusd/internal/progression"
)

// CompletionReport is what a finished focus session earned. It is only
// produced by Tick when the countdown reaches zero.
type CompletionReport struct {
	XPGained       int
	LeveledUp      bool
	Level          int
	Unlocked       []model.AchievementRecord
	SubTaskDone    bool
	TaskDone       bool
	TasksEvicted   bool
	FocusLabel     string
	SessionMinutes int
}

// StartSession binds the timer to a sub-task and starts the countdown.
// Sessions on a sub-task unlock strictly in plan order, so starting a
// later sub-task while an earlier one is unfinished is refused. The
// label is optional and carried for display and reuse on cancel.
func (a *Assistant) StartSession(taskID string, subTaskID int64, focusLabel string) error {
	task, ok := a.TaskByID(taskID)
	if !ok {
		return &StartError{Code: StartTaskNotFound}
	}
	si := task.SubTaskIndex(subTaskID)
	if si < 0 {
		return &StartError{Code: StartSubTaskNotFound}
	}
	if progression.IsTaskComplete(task) {
		return &StartError{Code: StartTaskCompleted}
	}
	if progression.IsSubTaskComplete(task.SubTasks[si]) {
		return &StartError{Code: StartSubTaskCompleted}
	}
	if !progression.CanStart(task, subTaskID) {
		blocker := ""
		if first, ok := progression.FirstIncomplete(task); ok {
			blocker = first.Title
		}
		return &StartError{Code: StartLocked, FirstIncomplete: blocker}
	}
	a.active = &model.ActiveSession{
		TaskID:         taskID,
		SubTaskID:      subTaskID,
		FocusLabel:     strings.TrimSpace(focusLabel),
		SessionMinutes: a.settings.SessionLengthMinutes,
	}
	a.timer.Reset(a.sessionSeconds())
	return a.timer.Start()
}

// StartQuickSession starts a free-form focus session that is not tied to
// any task. The label is remembered as the default for the next one.
func (a *Assistant) StartQuickSession(ctx context.Context, label string) error {
	label = strings.TrimSpace(label)
	if label == "" {
		return ErrEmptyFocusLabel
	}
	a.lastFocusLabel = label
	a.active = &model.ActiveSession{
		FocusLabel:     label,
		SessionMinutes: a.settings.SessionLengthMinutes,
	}
	a.timer.Reset(a.sessionSeconds())
	if err := a.timer.Start(); err != nil {
		return err
	}
	return a.saveFocusLabel(ctx)
}

// PauseToggle flips the countdown between running and paused. Outside
// those two states it does nothing.
func (a *Assistant) PauseToggle() {
	a.timer.Toggle()
}

// CancelSession abandons the active session without awarding anything.
// A non-empty focus label is kept as the default for the next quick
// session. With no session active it is a no-op.
func (a *Assistant) CancelSession(ctx context.Context) error {
	if a.active == nil {
		return nil
	}
	label := a.active.FocusLabel
	_ = a.timer.Cancel()
	a.active = nil
	a.timer.Reset(a.sessionSeconds())
	if label != "" {
		a.lastFocusLabel = label
		return a.saveFocusLabel(ctx)
	}
	return nil
}

// Tick advances the countdown by one second. When the session completes
// it applies the full completion sequence and returns the report. The
// in-memory progression always lands even when persisting it fails, the
// error tells the caller the on-disk copy is behind.
func (a *Assistant) Tick(ctx context.Context) (*CompletionReport, error) {
	if !a.timer.Tick() {
		return nil, nil
	}
	return a.completeSession(ctx)
}

func (a *Assistant) completeSession(ctx context.Context) (*CompletionReport, error) {
	active := a.active
	a.active = nil
	report := &CompletionReport{}
	if active == nil {
		a.timer.Reset(a.sessionSeconds())
		return report, nil
	}
	report.FocusLabel = active.FocusLabel
	report.SessionMinutes = active.SessionMinutes

	res := a.ledger.CompleteSession(&a.stats, a.streakAnchor, float64(active.SessionMinutes))
	a.streakAnchor = res.Anchor
	report.XPGained = res.XPGained
	report.LeveledUp = res.LeveledUp
	report.Level = a.stats.Level
	report.Unlocked = res.Unlocked

	var firstErr error
	evicted, err := a.saveStats(ctx)
	report.TasksEvicted = evicted
	if err != nil && firstErr == nil {
		firstErr = err
	}
	if err := a.saveAnchor(ctx); err != nil && firstErr == nil {
		firstErr = err
	}

	// The bound task or sub-task may have been deleted mid-session, or an
	// edit may have shrunk its quota to the sessions already done. In both
	// cases the stats still count but no task progress is recorded, a
	// sub-task never goes past its quota.
	if active.Bound() {
		if ti := a.taskIndex(active.TaskID); ti >= 0 {
			task := &a.tasks[ti]
			if si := task.SubTaskIndex(active.SubTaskID); si >= 0 && !progression.IsSubTaskComplete(task.SubTasks[si]) {
				st := &task.SubTasks[si]
				st.CompletedSessions++
				st.RefreshCompleted()
				task.CompletedSessions++
				report.SubTaskDone = st.Completed
				report.TaskDone = progression.IsTaskComplete(*task)
				if err := a.saveTasks(ctx); err != nil && firstErr == nil {
					firstErr = err
				}
			}
		}
	}

	a.timer.Reset(a.sessionSeconds())
	return report, firstErr
}
