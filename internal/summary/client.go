package summary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// defaultTimeout bounds a summarization call. The flow controller falls
// back locally on expiry, so Processing can never hang on a stalled
// network.
const defaultTimeout = 30 * time.Second

const maxResponseBytes = 1 << 20

// Client posts finalized entries to the summarization proxy.
type Client struct {
	endpoint string
	http     *http.Client
}

// NewClient creates a client for the given endpoint. A non-positive
// timeout selects the default.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: timeout},
	}
}

// Summarize submits the entries and decodes the five-field result.
// Any transport failure, non-2xx status, or body that does not decode
// into the expected fields is reported as an error; the caller decides
// what to do with it (the flow controller synthesizes a fallback).
func (c *Client) Summarize(ctx context.Context, entries []Entry) (Result, error) {
	body, err := json.Marshal(Request{Entries: entries})
	if err != nil {
		return Result{}, fmt.Errorf("encoding summary request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("building summary request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("posting summary request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, fmt.Errorf("summary service returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return Result{}, fmt.Errorf("reading summary response: %w", err)
	}

	// Some upstreams wrap the JSON payload in a fenced code block.
	payload := StripCodeFence(string(data))

	var result Result
	if err := json.Unmarshal([]byte(payload), &result); err != nil {
		return Result{}, fmt.Errorf("decoding summary response: %w", err)
	}
	if result.Empty() {
		return Result{}, fmt.Errorf("summary response missing expected fields")
	}
	return result, nil
}
