package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"focusd/internal/model"
	"focusd/internal/storage"
)

func (a *Assistant) load(ctx context.Context) error {
	a.settings = model.DefaultSettings()
	if err := a.loadJSON(ctx, storage.KeySettings, &a.settings); err != nil {
		return err
	}
	if err := a.settings.Validate(); err != nil {
		return fmt.Errorf("assistant: stored settings: %w", err)
	}
	a.tasks = nil
	if err := a.loadJSON(ctx, storage.KeyTasks, &a.tasks); err != nil {
		return err
	}
	a.stats = model.NewPlayerStats()
	if err := a.loadJSON(ctx, storage.KeyStats, &a.stats); err != nil {
		return err
	}
	a.stats.Normalize()

	label, err := a.loadString(ctx, storage.KeyLastFocusLabel)
	if err != nil {
		return err
	}
	a.lastFocusLabel = label
	anchor, err := a.loadString(ctx, storage.KeyStreakAnchor)
	if err != nil {
		return err
	}
	a.streakAnchor = anchor
	return nil
}

func (a *Assistant) loadJSON(ctx context.Context, key string, out any) error {
	raw, err := a.store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("assistant: load %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("assistant: decode %s: %w", key, err)
	}
	return nil
}

func (a *Assistant) loadString(ctx context.Context, key string) (string, error) {
	raw, err := a.store.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("assistant: load %s: %w", key, err)
	}
	return string(raw), nil
}

func (a *Assistant) saveJSON(ctx context.Context, key string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return &SaveError{Key: key, Err: err}
	}
	if err := a.store.Set(ctx, key, raw); err != nil {
		return &SaveError{Key: key, Err: err}
	}
	return nil
}

func (a *Assistant) saveSettings(ctx context.Context) error {
	return a.saveJSON(ctx, storage.KeySettings, a.settings)
}

func (a *Assistant) saveTasks(ctx context.Context) error {
	if a.tasks == nil {
		return a.saveJSON(ctx, storage.KeyTasks, []model.Task{})
	}
	return a.saveJSON(ctx, storage.KeyTasks, a.tasks)
}

// saveStats persists player stats with a degradation path: when the store
// refuses the write for lack of space, the much larger task blob is
// evicted to make room and the write is retried once. Losing tasks is
// preferable to losing earned progression. The returned flag reports
// whether the eviction happened.
func (a *Assistant) saveStats(ctx context.Context) (bool, error) {
	err := a.saveJSON(ctx, storage.KeyStats, a.stats)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, storage.ErrQuotaExceeded) {
		return false, err
	}
	if derr := a.store.Delete(ctx, storage.KeyTasks); derr != nil {
		return false, err
	}
	if rerr := a.saveJSON(ctx, storage.KeyStats, a.stats); rerr != nil {
		return true, rerr
	}
	return true, nil
}

func (a *Assistant) saveFocusLabel(ctx context.Context) error {
	if err := a.store.Set(ctx, storage.KeyLastFocusLabel, []byte(a.lastFocusLabel)); err != nil {
		return &SaveError{Key: storage.KeyLastFocusLabel, Err: err}
	}
	return nil
}

func (a *Assistant) saveAnchor(ctx context.Context) error {
	if err := a.store.Set(ctx, storage.KeyStreakAnchor, []byte(a.streakAnchor)); err != nil {
		return &SaveError{Key: storage.KeyStreakAnchor, Err: err}
	}
	return nil
}
