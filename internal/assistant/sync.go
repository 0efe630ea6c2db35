package assistant

import (
	"context"

	"focusd/internal/model"
	"focusd/internal/syncer"
)

// Snapshot is a deep copy of the syncable state, safe to hand to a
// background push while the UI keeps mutating the originals.
type Snapshot struct {
	Settings model.Settings
	Tasks    []model.Task
	Stats    model.PlayerStats
}

func (a *Assistant) SyncEnabled() bool {
	return a.sync != nil && a.sync.Enabled()
}

func (a *Assistant) Snapshot() Snapshot {
	tasks := make([]model.Task, len(a.tasks))
	for i, t := range a.tasks {
		t.SubTasks = append([]model.SubTask(nil), t.SubTasks...)
		tasks[i] = t
	}
	stats := a.stats
	stats.Achievements = append([]model.AchievementRecord(nil), a.stats.Achievements...)
	return Snapshot{Settings: a.settings, Tasks: tasks, Stats: stats}
}

// PushState mirrors a snapshot to the sync server and returns whatever
// newer state the server had. It does not touch the assistant, so it may
// run off the main loop.
func (a *Assistant) PushState(ctx context.Context, snap Snapshot) (syncer.Result, error) {
	if !a.SyncEnabled() {
		return syncer.Result{}, nil
	}
	return a.sync.Push(ctx, snap.Settings, snap.Tasks, snap.Stats)
}

// ApplySync replaces local state with the server copy, field by field. A
// nil field means the server had nothing newer and the local copy stays.
// An active session pointing into replaced tasks is left alone, the
// completion path tolerates the task having vanished.
func (a *Assistant) ApplySync(ctx context.Context, res syncer.Result) error {
	var firstErr error
	if res.Settings != nil {
		if err := res.Settings.Validate(); err == nil {
			a.settings = *res.Settings
			if err := a.saveSettings(ctx); err != nil && firstErr == nil {
				firstErr = err
			}
		}
	}
	if res.Tasks != nil {
		a.tasks = res.Tasks
		if a.currentTaskID != "" && a.taskIndex(a.currentTaskID) < 0 {
			a.currentTaskID = ""
		}
		if err := a.saveTasks(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	if res.Stats != nil {
		a.stats = *res.Stats
		a.stats.Normalize()
		if _, err := a.saveStats(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
