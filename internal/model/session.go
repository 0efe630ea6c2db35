package model

// ActiveSession binds a running focus session to the task and sub-task it
// serves. At most one exists at a time; it is transient and never persisted.
// An empty TaskID denotes a quick session with no task bookkeeping.
type ActiveSession struct {
	TaskID         string
	SubTaskID      int64
	FocusLabel     string
	SessionMinutes int
}

// Bound reports whether the session is tied to a task and sub-task.
func (s ActiveSession) Bound() bool {
	return s.TaskID != "" && s.SubTaskID > 0
}
