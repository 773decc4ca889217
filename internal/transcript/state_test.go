package transcript

import "testing"

func TestTranscriptSeparator(t *testing.T) {
	tests := []struct {
		name  string
		state SessionState
		want  string
	}{
		{"all empty", SessionState{}, ""},
		{"prefix only", SessionState{Prefix: "hello"}, "hello"},
		{"final only", SessionState{SessionFinal: "world "}, "world"},
		{"interim only", SessionState{Interim: "wor"}, "wor"},
		{"prefix and final", SessionState{Prefix: "hello", SessionFinal: "world "}, "hello world"},
		{"prefix and interim", SessionState{Prefix: "hello", Interim: "wor"}, "hello wor"},
		{"prefix final interim", SessionState{Prefix: "hi", SessionFinal: "there ", Interim: "fri"}, "hi there fri"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.state.Transcript(); got != tt.want {
				t.Errorf("Transcript() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewSessionStateTrimsExisting(t *testing.T) {
	s := NewSessionState("  hello  ")
	if s.Prefix != "hello" {
		t.Errorf("Prefix = %q, want %q", s.Prefix, "hello")
	}
	s = NewSessionState("")
	if s.Prefix != "" {
		t.Errorf("Prefix = %q, want empty", s.Prefix)
	}
}

func TestApplyFullReprocessing(t *testing.T) {
	s := NewSessionState("hello")

	// The engine sends the complete hypothesis list every time. An
	// interim guess later becomes final without duplicating words.
	s = s.Apply(ResultEvent{Hypotheses: []Hypothesis{
		{Text: "wor", Final: false},
	}})
	if got := s.Transcript(); got != "hello wor" {
		t.Errorf("after interim: %q, want %q", got, "hello wor")
	}

	s = s.Apply(ResultEvent{Hypotheses: []Hypothesis{
		{Text: "world", Final: true},
		{Text: "how are", Final: false},
	}})
	if got := s.Transcript(); got != "hello world how are" {
		t.Errorf("after finalization: %q, want %q", got, "hello world how are")
	}

	s = s.Apply(ResultEvent{Hypotheses: []Hypothesis{
		{Text: "world", Final: true},
		{Text: "how are you", Final: true},
	}})
	if got := s.Transcript(); got != "hello world how are you" {
		t.Errorf("after second finalization: %q, want %q", got, "hello world how are you")
	}
}

func TestApplyAlternatingFinalInterim(t *testing.T) {
	// Hypothesis lists that interleave final and interim entries keep
	// finals joined by single spaces, interims concatenated at the end.
	s := SessionState{Prefix: "note"}
	s = s.Apply(ResultEvent{Hypotheses: []Hypothesis{
		{Text: "one", Final: true},
		{Text: "two", Final: false},
		{Text: "three", Final: true},
	}})
	if s.SessionFinal != "one three " {
		t.Errorf("SessionFinal = %q, want %q", s.SessionFinal, "one three ")
	}
	if s.Interim != "two" {
		t.Errorf("Interim = %q, want %q", s.Interim, "two")
	}
	if got := s.Transcript(); got != "note one three two" {
		t.Errorf("Transcript = %q", got)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	ev := ResultEvent{Hypotheses: []Hypothesis{
		{Text: "the quick", Final: true},
		{Text: "brown", Final: false},
	}}
	s := NewSessionState("prefix")
	once := s.Apply(ev)
	twice := once.Apply(ev)
	if once != twice {
		t.Errorf("Apply not idempotent: %+v vs %+v", once, twice)
	}
}

func TestApplyEmptyEventClearsSessionText(t *testing.T) {
	s := SessionState{Prefix: "kept", SessionFinal: "gone ", Interim: "gone"}
	s = s.Apply(ResultEvent{})
	if got := s.Transcript(); got != "kept" {
		t.Errorf("Transcript = %q, want %q", got, "kept")
	}
}
