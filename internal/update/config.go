package update

import (
	"os"
	"strconv"
	"strings"
)

type RuntimeConfig struct {
	DBPath         string
	PlannerBaseURL string
	PlannerAPIKey  string
	PlannerModel   string
	SyncBaseURL    string
	SyncUserID     string
	ReminderBuffer int
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		DBPath:         "focusd.db",
		PlannerModel:   "gpt-4o-mini",
		ReminderBuffer: 16,
	}
}

func RuntimeConfigFromEnv(base RuntimeConfig) RuntimeConfig {
	cfg := base
	if v, ok := getEnvString("FOCUSD_DB_PATH"); ok {
		cfg.DBPath = v
	}
	if v, ok := getEnvString("FOCUSD_PLANNER_BASE_URL"); ok {
		cfg.PlannerBaseURL = v
	}
	if v, ok := getEnvString("FOCUSD_PLANNER_API_KEY"); ok {
		cfg.PlannerAPIKey = v
	}
	if v, ok := getEnvString("FOCUSD_PLANNER_MODEL"); ok {
		cfg.PlannerModel = v
	}
	if v, ok := getEnvString("FOCUSD_SYNC_BASE_URL"); ok {
		cfg.SyncBaseURL = v
	}
	if v, ok := getEnvString("FOCUSD_SYNC_USER_ID"); ok {
		cfg.SyncUserID = v
	}
	if v, ok := getEnvInt("FOCUSD_REMINDER_BUFFER"); ok && v > 0 {
		cfg.ReminderBuffer = v
	}
	return cfg
}

func getEnvString(name string) (string, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return "", false
	}
	return raw, true
}

func getEnvInt(name string) (int, bool) {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}
