package storage

import (
	"context"
	"errors"
	"testing"
)

func openTestStore(t *testing.T, opts ...SQLiteOption) *SQLiteStore {
	t.Helper()
	store, err := OpenSQLite(":memory:", opts...)
	if err != nil {
		t.Fatalf("open sqlite store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, KeySettings, []byte(`{"onboarded":true}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := store.Get(ctx, KeySettings)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `{"onboarded":true}` {
		t.Fatalf("unexpected value: %s", got)
	}

	// Overwrite.
	if err := store.Set(ctx, KeySettings, []byte(`{"onboarded":false}`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, err = store.Get(ctx, KeySettings)
	if err != nil {
		t.Fatalf("get after overwrite: %v", err)
	}
	if string(got) != `{"onboarded":false}` {
		t.Fatalf("unexpected value after overwrite: %s", got)
	}
}

func TestSQLiteStoreGetMissingKey(t *testing.T) {
	store := openTestStore(t)
	if _, err := store.Get(context.Background(), "nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestSQLiteStoreDelete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, KeyTasks, []byte(`[]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := store.Delete(ctx, KeyTasks); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.Get(ctx, KeyTasks); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got: %v", err)
	}
	// Deleting again is a no-op.
	if err := store.Delete(ctx, KeyTasks); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}

func TestSQLiteStoreQuota(t *testing.T) {
	store := openTestStore(t, WithMaxValueBytes(8))
	ctx := context.Background()

	if err := store.Set(ctx, KeyStats, []byte(`{}`)); err != nil {
		t.Fatalf("small blob should fit: %v", err)
	}
	err := store.Set(ctx, KeyStats, []byte(`{"xp":1234567890}`))
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got: %v", err)
	}
}

func TestMigrateCycle(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Set(ctx, KeySettings, []byte(`{}`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := MigrateDown(store.db); err != nil {
		t.Fatalf("migrate down: %v", err)
	}
	if err := MigrateUp(store.db); err != nil {
		t.Fatalf("migrate back up: %v", err)
	}
	if _, err := store.Get(ctx, KeySettings); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected an empty table after the cycle, got: %v", err)
	}
	// Reapplying on a migrated schema is a no-op.
	if err := MigrateUp(store.db); err != nil {
		t.Fatalf("repeat migrate up: %v", err)
	}
}

func TestMemoryStoreFailKeys(t *testing.T) {
	store := NewMemoryStore()
	store.FailKeys = map[string]bool{KeyStats: true}
	ctx := context.Background()

	if err := store.Set(ctx, KeyTasks, []byte(`[]`)); err != nil {
		t.Fatalf("set tasks: %v", err)
	}
	if err := store.Set(ctx, KeyStats, []byte(`{}`)); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("expected ErrQuotaExceeded, got: %v", err)
	}
}
