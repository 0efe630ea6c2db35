package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"

	"focusd/internal/assistant"
	"focusd/internal/planner"
	"focusd/internal/reminder"
	"focusd/internal/storage"
	"focusd/internal/syncer"
	"focusd/internal/update"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "focusd failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Missing .env is fine, env vars and defaults still apply.
	_ = godotenv.Load()
	cfg := update.RuntimeConfigFromEnv(update.DefaultRuntimeConfig())

	store, err := storage.OpenSQLite(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	opts := []assistant.Option{}
	if cfg.PlannerBaseURL != "" && cfg.PlannerAPIKey != "" {
		opts = append(opts, assistant.WithPlanner(
			planner.NewHTTPPlanner(cfg.PlannerBaseURL, cfg.PlannerAPIKey, cfg.PlannerModel),
		))
	}
	if cfg.SyncBaseURL != "" && cfg.SyncUserID != "" {
		userID, err := strconv.ParseInt(cfg.SyncUserID, 10, 64)
		if err != nil {
			return fmt.Errorf("parse FOCUSD_SYNC_USER_ID: %w", err)
		}
		opts = append(opts, assistant.WithSyncer(syncer.NewClient(cfg.SyncBaseURL, userID)))
	}

	a, err := assistant.New(context.Background(), store, opts...)
	if err != nil {
		return fmt.Errorf("load state: %w", err)
	}

	engine := reminder.NewEngine(cfg.ReminderBuffer)
	engine.Start()
	defer engine.Stop()
	for _, task := range a.Tasks() {
		if task.Deadline != nil {
			_ = engine.ScheduleDeadline(task.ID, task.Title, *task.Deadline)
		}
	}

	program := tea.NewProgram(update.NewModelWithReminders(a, engine))
	if _, err := program.Run(); err != nil {
		return err
	}
	return nil
}
