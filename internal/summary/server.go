package summary

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/genai"
)

// summaryPrompt is the fixed instruction template for the depth-aware
// flow. The submitted transcript is substituted for %s.
const summaryPrompt = `You are a gentle companion for guided self-reflection. Based on the
question-and-answer transcript below, write a short synthesis as a JSON
object with exactly these string fields:

  coreFeeling    - the feeling the person named, in their own words
  bodyWisdom     - what their body seems to be saying about it
  underlyingNeed - the need underneath the feeling
  integration    - one or two sentences weaving the answers together
  shift          - one small, concrete invitation to carry forward

Respond with ONLY the JSON object, no commentary.

Transcript:
---
%s
---`

// simplePrompt is the instruction template for the three-question flow.
const simplePrompt = `You are a gentle companion for guided self-reflection. Based on the
question-and-answer transcript below, write a short synthesis as a JSON
object with exactly these string fields: feeling, location, need.

Respond with ONLY the JSON object, no commentary.

Transcript:
---
%s
---`

// Server is the summarization proxy. Without API keys it returns a
// deterministic structural echo of the inputs; with keys it delegates
// to Gemini and parses the reply as JSON.
type Server struct {
	listener net.Listener
	server   *http.Server
	model    string

	apiKeys    []string
	currentKey int
}

// NewServer creates a proxy bound to the given address. Pass an address
// ending in ":0" to bind a random port (used by tests).
func NewServer(listen, model string, apiKeys []string) (*Server, error) {
	ln, err := net.Listen("tcp", listen)
	if err != nil {
		return nil, fmt.Errorf("summary server: binding listener: %w", err)
	}

	s := &Server{
		listener: ln,
		model:    model,
		apiKeys:  apiKeys,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/summarize", s.handleSummarize)
	mux.HandleFunc("/summarize/simple", s.handleSummarizeSimple)

	s.server = &http.Server{Handler: mux}
	return s, nil
}

// Addr returns the address the server is listening on.
func (s *Server) Addr() string {
	return s.listener.Addr().String()
}

// Start begins serving HTTP requests. Call in a goroutine.
func (s *Server) Start() error {
	return s.server.Serve(s.listener)
}

// Stop shuts down the server.
func (s *Server) Stop() error {
	return s.server.Close()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleSummarize(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Request-ID", uuid.NewString())

	var req Request
	if !readJSON(w, r, &req) {
		return
	}
	entries := req.Normalize()

	if len(s.apiKeys) == 0 {
		writeJSON(w, echoResult(entries))
		return
	}

	reply, err := s.generate(r.Context(), fmt.Sprintf(summaryPrompt, transcriptText(entries)))
	if err != nil {
		http.Error(w, fmt.Sprintf("generating summary: %v", err), http.StatusBadGateway)
		return
	}

	var result Result
	if err := json.Unmarshal([]byte(StripCodeFence(reply)), &result); err != nil || result.Empty() {
		http.Error(w, "model reply was not the expected JSON shape", http.StatusBadGateway)
		return
	}
	writeJSON(w, result)
}

func (s *Server) handleSummarizeSimple(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("X-Request-ID", uuid.NewString())

	var req Request
	if !readJSON(w, r, &req) {
		return
	}
	entries := req.Normalize()

	if len(s.apiKeys) == 0 {
		writeJSON(w, echoSimpleResult(entries))
		return
	}

	reply, err := s.generate(r.Context(), fmt.Sprintf(simplePrompt, transcriptText(entries)))
	if err != nil {
		http.Error(w, fmt.Sprintf("generating summary: %v", err), http.StatusBadGateway)
		return
	}

	var result SimpleResult
	if err := json.Unmarshal([]byte(StripCodeFence(reply)), &result); err != nil || result.Empty() {
		http.Error(w, "model reply was not the expected JSON shape", http.StatusBadGateway)
		return
	}
	writeJSON(w, result)
}

// generate sends the prompt to Gemini and returns the reply text.
// Rotates API keys on rate-limit and quota errors.
func (s *Server) generate(ctx context.Context, prompt string) (string, error) {
	attempts := len(s.apiKeys)
	var lastErr error

	for range attempts {
		key := s.apiKeys[s.currentKey]

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  key,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			lastErr = fmt.Errorf("create client: %w", err)
			s.rotateKey()
			continue
		}

		result, err := client.Models.GenerateContent(ctx, s.model, genai.Text(prompt), nil)
		if err != nil {
			errMsg := err.Error()
			if strings.Contains(errMsg, "429") || strings.Contains(errMsg, "quota") || strings.Contains(errMsg, "RESOURCE_EXHAUSTED") {
				s.rotateKey()
				lastErr = err
				continue
			}
			return "", fmt.Errorf("generate content: %w", err)
		}

		if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
			var text string
			for _, part := range result.Candidates[0].Content.Parts {
				if part.Text != "" {
					text += part.Text
				}
			}
			return text, nil
		}

		return "", fmt.Errorf("empty response from model")
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (s *Server) rotateKey() {
	s.currentKey = (s.currentKey + 1) % len(s.apiKeys)
}

// transcriptText renders entries as the plain transcript substituted
// into the prompt templates.
func transcriptText(entries []Entry) string {
	var b strings.Builder
	for _, e := range entries {
		b.WriteString("Q: ")
		b.WriteString(e.Question)
		if e.Depth > 0 {
			fmt.Fprintf(&b, " (follow-up %d)", e.Depth)
		}
		b.WriteString("\nA: ")
		b.WriteString(e.Answer)
		b.WriteString("\n\n")
	}
	return strings.TrimSpace(b.String())
}

// echoResult is the credential-less behavior: a deterministic
// structural echo of the inputs, so the full flow works offline.
func echoResult(entries []Entry) Result {
	var initial, deeper []Entry
	for _, e := range entries {
		if e.Depth == 0 {
			initial = append(initial, e)
		} else {
			deeper = append(deeper, e)
		}
	}

	pick := func(list []Entry, i int) string {
		if i < len(list) {
			return list[i].Answer
		}
		return ""
	}

	need := pick(initial, 2)
	if len(deeper) > 0 {
		need = deeper[len(deeper)-1].Answer
	}

	return Result{
		CoreFeeling:    pick(initial, 0),
		BodyWisdom:     pick(initial, 1),
		UnderlyingNeed: need,
		Integration:    fmt.Sprintf("You put %d reflections into words.", len(entries)),
		Shift:          "Carry one of these words with you into the rest of the day.",
	}
}

func echoSimpleResult(entries []Entry) SimpleResult {
	pick := func(i int) string {
		if i < len(entries) {
			return entries[i].Answer
		}
		return ""
	}
	return SimpleResult{
		Feeling:  pick(0),
		Location: pick(1),
		Need:     pick(2),
	}
}

// --- JSON helpers ---

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, fmt.Sprintf("decoding request: %v", err), http.StatusBadRequest)
		return false
	}
	return true
}
