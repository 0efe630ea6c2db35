// Package storage provides the persistent key-value store the assistant
// saves its JSON blobs into. The engine depends only on the Store
// interface; SQLite is the default backend.
package storage

import (
	"context"
	"errors"
)

var (
	ErrNotFound      = errors.New("storage: not found")
	ErrQuotaExceeded = errors.New("storage: quota exceeded")
)

// Keys under which the assistant persists its state.
const (
	KeySettings       = "settings"
	KeyTasks          = "tasks"
	KeyStats          = "stats"
	KeyLastFocusLabel = "last_focus_label"
	KeyStreakAnchor   = "streak_anchor"
)

// Store is a narrow get/set of named JSON-serialisable blobs. Set returns
// ErrQuotaExceeded when the value does not fit the backend's budget.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
