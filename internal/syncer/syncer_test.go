package syncer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"focusd/internal/model"
)

func TestPushSendsStateAndReturnsServerCopy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/sync" {
			t.Errorf("unexpected path %q", r.URL.Path)
		}
		var payload map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode payload: %v", err)
		}
		if string(payload["userId"]) != "42" {
			t.Errorf("unexpected userId: %s", payload["userId"])
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"stats":{"totalSessions":7,"xp":70,"level":1}}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, 42)
	res, err := c.Push(context.Background(), model.DefaultSettings(), nil, model.NewPlayerStats())
	if err != nil {
		t.Fatalf("push: %v", err)
	}
	if res.Stats == nil || res.Stats.TotalSessions != 7 {
		t.Fatalf("expected server stats returned, got %+v", res.Stats)
	}
	if res.Settings != nil {
		t.Fatal("expected nil settings when the server omits them")
	}
}

func TestPushServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	c := NewClient(server.URL, 42)
	if _, err := c.Push(context.Background(), model.DefaultSettings(), nil, model.NewPlayerStats()); err == nil {
		t.Fatal("expected error on bad status")
	}
}

func TestPushRejectedByServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success":false,"message":"nope"}`))
	}))
	defer server.Close()

	c := NewClient(server.URL, 42)
	if _, err := c.Push(context.Background(), model.DefaultSettings(), nil, model.NewPlayerStats()); err == nil {
		t.Fatal("expected error on rejected push")
	}
}

func TestClientEnabled(t *testing.T) {
	if NewClient("", 0).Enabled() {
		t.Fatal("unconfigured client must be disabled")
	}
	if !NewClient("http://localhost:8000", 1).Enabled() {
		t.Fatal("configured client must be enabled")
	}
}
