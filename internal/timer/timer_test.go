package timer

import (
	"errors"
	"testing"
)

func TestNewStartsIdle(t *testing.T) {
	tm := New(120)
	if tm.State() != StateIdle {
		t.Fatalf("expected idle, got %q", tm.State())
	}
	if tm.Remaining() != 120 {
		t.Fatalf("expected 120 seconds remaining, got %d", tm.Remaining())
	}
}

func TestStartOnlyFromIdle(t *testing.T) {
	tm := New(10)
	if err := tm.Start(); err != nil {
		t.Fatalf("unexpected start error: %v", err)
	}
	if tm.State() != StateRunning {
		t.Fatalf("expected running, got %q", tm.State())
	}
	if err := tm.Start(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition, got: %v", err)
	}
}

func TestTickCountsDownOnlyWhileRunning(t *testing.T) {
	tm := New(3)
	if tm.Tick() {
		t.Fatal("tick in idle must not complete")
	}
	if tm.Remaining() != 3 {
		t.Fatalf("idle tick must not advance, remaining %d", tm.Remaining())
	}

	if err := tm.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	tm.Tick()
	tm.Toggle()
	if tm.State() != StatePaused {
		t.Fatalf("expected paused, got %q", tm.State())
	}
	tm.Tick()
	if tm.Remaining() != 2 {
		t.Fatalf("paused tick must not advance, remaining %d", tm.Remaining())
	}

	tm.Toggle()
	tm.Tick()
	completed := tm.Tick()
	if !completed {
		t.Fatal("expected completion on the tick reaching zero")
	}
	if tm.State() != StateCompleted {
		t.Fatalf("expected completed, got %q", tm.State())
	}
}

func TestCompletionReportedOnce(t *testing.T) {
	tm := New(1)
	if err := tm.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	if !tm.Tick() {
		t.Fatal("expected completion")
	}
	for i := 0; i < 5; i++ {
		if tm.Tick() {
			t.Fatal("completion must be reported exactly once")
		}
	}
}

func TestCancelFromRunningAndPaused(t *testing.T) {
	tm := New(10)
	if err := tm.Cancel(); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("expected ErrInvalidTransition cancelling idle, got: %v", err)
	}

	_ = tm.Start()
	if err := tm.Cancel(); err != nil {
		t.Fatalf("cancel running: %v", err)
	}
	if tm.State() != StateCancelled {
		t.Fatalf("expected cancelled, got %q", tm.State())
	}
	if tm.Tick() {
		t.Fatal("cancelled timer must not complete")
	}

	tm.Reset(10)
	_ = tm.Start()
	tm.Toggle()
	if err := tm.Cancel(); err != nil {
		t.Fatalf("cancel paused: %v", err)
	}
}

func TestResetReturnsToIdle(t *testing.T) {
	tm := New(2)
	_ = tm.Start()
	tm.Tick()
	tm.Tick()
	if tm.State() != StateCompleted {
		t.Fatalf("expected completed, got %q", tm.State())
	}
	tm.Reset(300)
	if tm.State() != StateIdle || tm.Remaining() != 300 {
		t.Fatalf("expected fresh idle timer, got %q/%d", tm.State(), tm.Remaining())
	}
}

func TestProgress(t *testing.T) {
	tm := New(4)
	_ = tm.Start()
	tm.Tick()
	if got := tm.Progress(); got != 0.25 {
		t.Fatalf("expected progress 0.25, got %v", got)
	}
	if got := New(0).Progress(); got != 0 {
		t.Fatalf("expected zero progress for zero-length timer, got %v", got)
	}
}
