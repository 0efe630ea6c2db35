// Package progression holds the pure predicates that enforce strict
// left-to-right sub-task unlocking.
package progression

import "focusd/internal/model"

// IsSubTaskComplete reports whether a sub-task has met its session quota.
func IsSubTaskComplete(st model.SubTask) bool {
	return st.CompletedSessions >= st.EstimatedSessions
}

// IsTaskComplete reports whether every sub-task is complete. A task with
// no sub-tasks is never complete.
func IsTaskComplete(task model.Task) bool {
	if len(task.SubTasks) == 0 {
		return false
	}
	for _, st := range task.SubTasks {
		if !IsSubTaskComplete(st) {
			return false
		}
	}
	return true
}

// CanStart reports whether a session may be started on the given sub-task:
// the id must exist, the sub-task must not already be complete, and every
// preceding sub-task must be complete. An unknown id means "cannot start".
func CanStart(task model.Task, subTaskID int64) bool {
	idx := task.SubTaskIndex(subTaskID)
	if idx < 0 {
		return false
	}
	if IsSubTaskComplete(task.SubTasks[idx]) {
		return false
	}
	for i := 0; i < idx; i++ {
		if !IsSubTaskComplete(task.SubTasks[i]) {
			return false
		}
	}
	return true
}

// FirstIncomplete returns the first sub-task that still has sessions left,
// or false when the task is fully complete.
func FirstIncomplete(task model.Task) (model.SubTask, bool) {
	for _, st := range task.SubTasks {
		if !IsSubTaskComplete(st) {
			return st, true
		}
	}
	return model.SubTask{}, false
}
