package update

import "testing"

func TestRuntimeConfigFromEnv(t *testing.T) {
	t.Setenv("FOCUSD_DB_PATH", "/tmp/focusd-test.db")
	t.Setenv("FOCUSD_PLANNER_BASE_URL", "https://llm.example.com/v1")
	t.Setenv("FOCUSD_REMINDER_BUFFER", "32")

	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.DBPath != "/tmp/focusd-test.db" {
		t.Fatalf("unexpected db path: %q", cfg.DBPath)
	}
	if cfg.PlannerBaseURL != "https://llm.example.com/v1" {
		t.Fatalf("unexpected planner url: %q", cfg.PlannerBaseURL)
	}
	if cfg.ReminderBuffer != 32 {
		t.Fatalf("unexpected reminder buffer: %d", cfg.ReminderBuffer)
	}
}

func TestRuntimeConfigFromEnvIgnoresInvalid(t *testing.T) {
	t.Setenv("FOCUSD_REMINDER_BUFFER", "not-a-number")
	cfg := RuntimeConfigFromEnv(DefaultRuntimeConfig())
	if cfg.ReminderBuffer != DefaultRuntimeConfig().ReminderBuffer {
		t.Fatalf("invalid value must keep the default, got %d", cfg.ReminderBuffer)
	}
}
