// Package transcript merges continuous speech-recognition output with
// previously committed text into one consistent live transcript.
package transcript

import "strings"

// Hypothesis is a single recognition hypothesis reported by the engine.
type Hypothesis struct {
	Text  string `json:"text"`
	Final bool   `json:"final"`
}

// ResultEvent is one engine event. Engines deliver the COMPLETE list of
// hypotheses accumulated so far in the session, not a delta: earlier
// interim hypotheses may be revised or retroactively finalized, so the
// full list is the only representation that stays consistent.
// A non-empty Error carries an engine error code instead of results.
type ResultEvent struct {
	Hypotheses []Hypothesis `json:"hypotheses,omitempty"`
	Error      string       `json:"error,omitempty"`
}

// SessionState is the state of one recognition session. It is a value
// type with a pure transition function so the merge logic is testable
// without an engine or any rendering surface.
type SessionState struct {
	// Prefix is text that existed before the session began.
	Prefix string
	// SessionFinal is the concatenation of all segments the engine has
	// marked final during this session, each followed by one space.
	SessionFinal string
	// Interim is the engine's current best guess for speech that has
	// not been finalized yet.
	Interim string
}

// NewSessionState starts a session that continues after existing text.
func NewSessionState(existing string) SessionState {
	return SessionState{Prefix: strings.TrimSpace(existing)}
}

// Apply reprocesses the complete hypothesis list in ev and returns the
// resulting state. It recomputes SessionFinal and Interim from scratch
// every time; the recompute is idempotent, which is what prevents
// duplicated or dropped words when the engine revises earlier entries.
// Incremental diffing would break on retroactive finalization.
func (s SessionState) Apply(ev ResultEvent) SessionState {
	var final, interim strings.Builder
	for _, h := range ev.Hypotheses {
		if h.Final {
			final.WriteString(h.Text)
			final.WriteString(" ")
		} else {
			interim.WriteString(h.Text)
		}
	}
	s.SessionFinal = final.String()
	s.Interim = interim.String()
	return s
}

// Transcript composes the visible transcript. A single space separates
// the prefix from session text, inserted only when both sides are
// non-empty.
func (s SessionState) Transcript() string {
	body := s.SessionFinal + s.Interim
	if s.Prefix != "" && body != "" {
		return strings.TrimSpace(s.Prefix + " " + body)
	}
	return strings.TrimSpace(s.Prefix + body)
}
