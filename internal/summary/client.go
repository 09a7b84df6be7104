// Package summary provides the text summarization client and the labeled
// agent-panel facade over it.
package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client produces a summary for a block of input text. The production
// implementation talks to a hosted model; tests inject a stub.
type Client interface {
	Summarize(ctx context.Context, text string) (string, error)
}

// DefaultEndpoint is the hosted summarization model used when no endpoint
// is configured.
const DefaultEndpoint = "https://api-inference.huggingface.co/models/facebook/bart-large-cnn"

// HFClient calls a Hugging Face Inference API summarization endpoint.
type HFClient struct {
	endpoint string
	token    string
	http     *http.Client
}

// NewHFClient builds a client for the given endpoint. An empty endpoint
// falls back to DefaultEndpoint; an empty token sends no Authorization
// header.
func NewHFClient(httpClient *http.Client, endpoint, token string) *HFClient {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	return &HFClient{
		endpoint: endpoint,
		token:    token,
		http:     httpClient,
	}
}

func (c *HFClient) Summarize(ctx context.Context, text string) (string, error) {
	body, err := json.Marshal(struct {
		Inputs string `json:"inputs"`
	}{Inputs: text})
	if err != nil {
		return "", fmt.Errorf("encode summarization request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build summarization request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("summarization request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 256))
		return "", fmt.Errorf("summarization endpoint returned status %d: %s", resp.StatusCode, snippet)
	}

	var out []struct {
		SummaryText string `json:"summary_text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode summarization response: %w", err)
	}
	if len(out) == 0 || out[0].SummaryText == "" {
		return "", fmt.Errorf("summarization response contained no summary text")
	}
	return out[0].SummaryText, nil
}
