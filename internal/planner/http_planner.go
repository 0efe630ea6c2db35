// Package planner calls an OpenAI-compatible chat-completions endpoint to
// break a task description into sub-task steps. Every failure here is
// recoverable: the caller falls back to the local plan templates.
package planner

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"focusd/internal/plan"
)

var ErrNoPlan = errors.New("planner: no plan in model output")

const planPrompt = `You are a task-planning assistant. Break the following task into concrete steps (sub-tasks) to be worked in fixed-length focus sessions.

Task: %q

Return ONLY a JSON array of sub-tasks in this exact shape, with no extra text:
[
  {"title": "Sub-task title", "estimatedSessions": number}
]

estimatedSessions is the number of focus sessions needed, between 1 and 10. Produce 3-7 sub-tasks depending on complexity.`

// HTTPPlanner speaks the chat-completions API. A zero API key disables it;
// GeneratePlan then fails fast and the fallback takes over.
type HTTPPlanner struct {
	baseURL string
	apiKey  string
	model   string
	client  *http.Client
}

func NewHTTPPlanner(baseURL, apiKey, model string) *HTTPPlanner {
	return &HTTPPlanner{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		model:   model,
		client:  &http.Client{Timeout: 20 * time.Second},
	}
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (p *HTTPPlanner) GeneratePlan(ctx context.Context, description string) ([]plan.Step, error) {
	if p.apiKey == "" {
		return nil, errors.New("planner: api key not configured")
	}

	payload, err := json.Marshal(chatRequest{
		Model: p.model,
		Messages: []chatMessage{
			{Role: "system", Content: "You always answer with valid JSON only, no surrounding text."},
			{Role: "user", Content: fmt.Sprintf(planPrompt, description)},
		},
		Temperature: 0.7,
		MaxTokens:   500,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("planner: unexpected status %d", resp.StatusCode)
	}

	var decoded chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, err
	}
	if len(decoded.Choices) == 0 {
		return nil, ErrNoPlan
	}
	return ExtractSteps(decoded.Choices[0].Message.Content)
}

// ExtractSteps pulls the first JSON array out of model output, tolerating
// markdown fences and prose around it.
func ExtractSteps(text string) ([]plan.Step, error) {
	cleaned := strings.ReplaceAll(text, "```json", "")
	cleaned = strings.ReplaceAll(cleaned, "```", "")

	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start < 0 || end <= start {
		return nil, ErrNoPlan
	}

	var steps []plan.Step
	if err := json.Unmarshal([]byte(cleaned[start:end+1]), &steps); err != nil {
		return nil, fmt.Errorf("planner: parse plan: %w", err)
	}
	if len(steps) == 0 {
		return nil, ErrNoPlan
	}
	return steps, nil
}
