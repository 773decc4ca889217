package summary

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"
)

func startTestServer(t *testing.T) *Server {
	t.Helper()
	srv, err := NewServer("127.0.0.1:0", "test-model", nil)
	if err != nil {
		t.Fatalf("NewServer: %v", err)
	}
	go func() { _ = srv.Start() }()
	t.Cleanup(func() { _ = srv.Stop() })
	return srv
}

func postJSON(t *testing.T, url string, body any, out any) *http.Response {
	t.Helper()
	data, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(data))
	if err != nil {
		t.Fatalf("post %s: %v", url, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	if out != nil && resp.StatusCode == http.StatusOK {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			t.Fatalf("decode response: %v", err)
		}
	}
	return resp
}

func TestServerEchoWithoutCredential(t *testing.T) {
	srv := startTestServer(t)
	url := fmt.Sprintf("http://%s/summarize", srv.Addr())

	req := Request{Entries: []Entry{
		{Question: "q1", Answer: "a1", Depth: 0},
		{Question: "q2", Answer: "a2", Depth: 0},
		{Question: "q3", Answer: "a3", Depth: 0},
		{Question: "q4", Answer: "a4", Depth: 1},
	}}

	var got Result
	resp := postJSON(t, url, req, &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got.CoreFeeling != "a1" || got.BodyWisdom != "a2" {
		t.Errorf("echo fields = %+v", got)
	}
	if got.UnderlyingNeed != "a4" {
		t.Errorf("UnderlyingNeed = %q, want last deepening answer %q", got.UnderlyingNeed, "a4")
	}
	if got.Integration == "" || got.Shift == "" {
		t.Error("narrative fields should not be empty")
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("expected a request ID header")
	}
}

func TestServerNormalizesLegacyShape(t *testing.T) {
	srv := startTestServer(t)
	url := fmt.Sprintf("http://%s/summarize", srv.Addr())

	body := map[string]string{
		"whatYouFeel":    "numbness",
		"whereYouFeelIt": "hands",
	}

	var got Result
	resp := postJSON(t, url, body, &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if got.CoreFeeling != "numbness" || got.BodyWisdom != "hands" {
		t.Errorf("legacy normalization gave %+v", got)
	}
	if got.UnderlyingNeed != "" {
		t.Errorf("missing legacy field should stay empty, got %q", got.UnderlyingNeed)
	}
}

func TestServerSimpleFlow(t *testing.T) {
	srv := startTestServer(t)
	url := fmt.Sprintf("http://%s/summarize/simple", srv.Addr())

	req := Request{Entries: []Entry{
		{Question: "q1", Answer: "warmth"},
		{Question: "q2", Answer: "belly"},
		{Question: "q3", Answer: "gratitude"},
	}}

	var got SimpleResult
	resp := postJSON(t, url, req, &got)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	want := SimpleResult{Feeling: "warmth", Location: "belly", Need: "gratitude"}
	if got != want {
		t.Errorf("simple echo = %+v, want %+v", got, want)
	}
}

func TestServerRejectsBadJSON(t *testing.T) {
	srv := startTestServer(t)
	url := fmt.Sprintf("http://%s/summarize", srv.Addr())

	resp, err := http.Post(url, "application/json", bytes.NewReader([]byte("{not json")))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", resp.StatusCode)
	}
}

func TestServerRejectsGet(t *testing.T) {
	srv := startTestServer(t)
	resp, err := http.Get(fmt.Sprintf("http://%s/summarize", srv.Addr()))
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", resp.StatusCode)
	}
}

func TestServerHealth(t *testing.T) {
	srv := startTestServer(t)
	client := &http.Client{Timeout: time.Second}
	resp, err := client.Get(fmt.Sprintf("http://%s/health", srv.Addr()))
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
}

func TestClientAgainstEchoServer(t *testing.T) {
	srv := startTestServer(t)
	client := NewClient(fmt.Sprintf("http://%s/summarize", srv.Addr()), time.Second)

	entries := []Entry{
		{Question: "q1", Answer: "a1"},
		{Question: "q2", Answer: "a2"},
		{Question: "q3", Answer: "a3"},
	}
	got, err := client.Summarize(t.Context(), entries)
	if err != nil {
		t.Fatalf("Summarize: %v", err)
	}
	if got.CoreFeeling != "a1" || got.UnderlyingNeed != "a3" {
		t.Errorf("round trip = %+v", got)
	}
}
