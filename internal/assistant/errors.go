package assistant

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyFocusLabel = errors.New("assistant: focus label is required")
	ErrTaskNotFound    = errors.New("assistant: task not found")
	ErrSubTaskNotFound = errors.New("assistant: sub-task not found")
	ErrTaskNotDeleted  = errors.New("assistant: task was not deleted")
)

type StartErrorCode string

const (
	StartTaskNotFound     StartErrorCode = "task_not_found"
	StartSubTaskNotFound  StartErrorCode = "subtask_not_found"
	StartTaskCompleted    StartErrorCode = "task_completed"
	StartSubTaskCompleted StartErrorCode = "subtask_completed"
	StartLocked           StartErrorCode = "locked"
)

// StartError explains why a session could not be started. When the code is
// StartLocked, FirstIncomplete names the sub-task that must be finished
// first so the caller can render a specific message.
type StartError struct {
	Code            StartErrorCode
	FirstIncomplete string
}

func (e *StartError) Error() string {
	switch e.Code {
	case StartTaskNotFound:
		return "cannot start session: task not found"
	case StartSubTaskNotFound:
		return "cannot start session: sub-task not found"
	case StartTaskCompleted:
		return "cannot start session: task is already complete"
	case StartSubTaskCompleted:
		return "cannot start session: sub-task is already complete"
	case StartLocked:
		return fmt.Sprintf("cannot start session: finish %q first", e.FirstIncomplete)
	default:
		return "cannot start session"
	}
}

// SaveError is the fatal storage failure surfaced after the quota
// degradation policy has been exhausted.
type SaveError struct {
	Key string
	Err error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("assistant: save %s: %v", e.Key, e.Err)
}

func (e *SaveError) Unwrap() error { return e.Err }
