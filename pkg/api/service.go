package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
)

// The wrappers below are deliberately tolerant of wire shape: transport and
// application failures surface as errors from RequestJSON, while a success
// payload that does not match the expected shape decodes to zero values.

// CrisisResources fetches the crisis resource list for a country.
func (c *Client) CrisisResources(ctx context.Context, country string) ([]CrisisResource, error) {
	path := fmt.Sprintf("/resources/api/crisis?country=%s", url.QueryEscape(country))
	_, raw, err := c.RequestJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var out struct {
		Resources []CrisisResource `json:"resources"`
	}
	_ = json.Unmarshal(raw, &out)
	return out.Resources, nil
}

// SafetyPlan fetches the persisted safety plan. A null or malformed plan
// coerces to an all-empty plan.
func (c *Client) SafetyPlan(ctx context.Context) (SafetyPlan, error) {
	payload, _, err := c.RequestJSON(ctx, http.MethodGet, "/api/v2/safety-plan", nil)
	if err != nil {
		return SafetyPlan{}, err
	}
	m, _ := payload.(map[string]interface{})
	return PlanFromPayload(m["plan"]), nil
}

// SaveSafetyPlan persists the plan.
func (c *Client) SaveSafetyPlan(ctx context.Context, plan SafetyPlan) error {
	_, _, err := c.RequestJSON(ctx, http.MethodPost, "/api/v2/safety-plan", plan)
	return err
}

// LogMood records a mood entry.
func (c *Client) LogMood(ctx context.Context, mood int, note string, tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	body := map[string]interface{}{
		"mood": mood,
		"note": note,
		"tags": tags,
	}
	_, _, err := c.RequestJSON(ctx, http.MethodPost, "/api/v2/mood/log", body)
	return err
}

// RecentMoods lists the most recent mood entries.
func (c *Client) RecentMoods(ctx context.Context, limit int) ([]MoodItem, error) {
	path := fmt.Sprintf("/api/v2/mood/recent?limit=%d", limit)
	_, raw, err := c.RequestJSON(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var out struct {
		Items []MoodItem `json:"items"`
	}
	_ = json.Unmarshal(raw, &out)
	return out.Items, nil
}

// AppendJournal appends a free-write entry.
func (c *Client) AppendJournal(ctx context.Context, text string, tags []string) error {
	if tags == nil {
		tags = []string{}
	}
	body := map[string]interface{}{
		"text": text,
		"tags": tags,
	}
	_, _, err := c.RequestJSON(ctx, http.MethodPost, "/api/v2/journal/append", body)
	return err
}

// CreateThoughtRecord posts a completed thought record.
func (c *Client) CreateThoughtRecord(ctx context.Context, record ThoughtRecord) error {
	_, _, err := c.RequestJSON(ctx, http.MethodPost, "/api/v2/thought-record/create", record)
	return err
}

// Chat sends one message and returns the assistant's reply.
func (c *Client) Chat(ctx context.Context, message string) (string, error) {
	body := map[string]interface{}{"message": message}
	_, raw, err := c.RequestJSON(ctx, http.MethodPost, "/api/v1/chat", body)
	if err != nil {
		return "", err
	}
	var out struct {
		Response string `json:"response"`
	}
	_ = json.Unmarshal(raw, &out)
	return out.Response, nil
}

// ExportText fetches the plain-text export of the user's data.
func (c *Client) ExportText(ctx context.Context) (string, error) {
	_, raw, err := c.RequestJSON(ctx, http.MethodGet, "/api/v2/export/text", nil)
	if err != nil {
		return "", err
	}
	var out struct {
		Text string `json:"text"`
	}
	_ = json.Unmarshal(raw, &out)
	return out.Text, nil
}
