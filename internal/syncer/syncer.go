// Package syncer pushes local state to the companion sync service. Sync is
// always best-effort: a failed or slow push never blocks local mutations,
// and any fields the server returns replace local state wholesale.
package syncer

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"focusd/internal/model"
)

// Result carries the server's authoritative copy. Nil fields mean "keep
// local state".
type Result struct {
	Settings *model.Settings    `json:"settings"`
	Tasks    []model.Task       `json:"tasks"`
	Stats    *model.PlayerStats `json:"stats"`
}

type pushPayload struct {
	UserID   int64             `json:"userId"`
	Settings model.Settings    `json:"settings"`
	Tasks    []model.Task      `json:"tasks"`
	Stats    model.PlayerStats `json:"stats"`
}

type pushResponse struct {
	Success  bool               `json:"success"`
	Settings *model.Settings    `json:"settings"`
	Tasks    []model.Task       `json:"tasks"`
	Stats    *model.PlayerStats `json:"stats"`
	Message  string             `json:"message"`
}

// Client posts the full local state to POST {baseURL}/sync.
type Client struct {
	baseURL string
	userID  int64
	client  *http.Client
}

func NewClient(baseURL string, userID int64) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		userID:  userID,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// Enabled reports whether the client has enough configuration to sync.
func (c *Client) Enabled() bool {
	return c != nil && c.baseURL != "" && c.userID != 0
}

func (c *Client) Push(ctx context.Context, settings model.Settings, tasks []model.Task, stats model.PlayerStats) (Result, error) {
	if !c.Enabled() {
		return Result{}, errors.New("syncer: not configured")
	}

	payload, err := json.Marshal(pushPayload{
		UserID:   c.userID,
		Settings: settings,
		Tasks:    tasks,
		Stats:    stats,
	})
	if err != nil {
		return Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sync", bytes.NewReader(payload))
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Result{}, fmt.Errorf("syncer: unexpected status %d", resp.StatusCode)
	}

	var decoded pushResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Result{}, err
	}
	if !decoded.Success {
		return Result{}, fmt.Errorf("syncer: server rejected push: %s", decoded.Message)
	}
	return Result{Settings: decoded.Settings, Tasks: decoded.Tasks, Stats: decoded.Stats}, nil
}
