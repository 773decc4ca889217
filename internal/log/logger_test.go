package log

import "testing"

func TestAppendAndReadAll(t *testing.T) {
	logger, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}

	events := []LogEvent{
		{Event: EventSessionStarted, SessionID: "s1"},
		{Event: EventAnswerCommitted, SessionID: "s1", Question: "What do you feel right now?", Depth: 0, Index: 0},
		{Event: EventSummaryFallback, SessionID: "s1", Reason: "request timed out"},
	}
	for _, ev := range events {
		if err := logger.Append(ev); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("events = %d, want 3", len(got))
	}
	if got[0].Event != EventSessionStarted {
		t.Errorf("got[0].Event = %q", got[0].Event)
	}
	if got[1].Question != "What do you feel right now?" {
		t.Errorf("got[1].Question = %q", got[1].Question)
	}
	if got[0].Time.IsZero() {
		t.Error("Append should stamp zero times")
	}
}

func TestReadAllMissingFile(t *testing.T) {
	logger, err := NewLogger(t.TempDir())
	if err != nil {
		t.Fatalf("NewLogger: %v", err)
	}
	events, err := logger.ReadAll()
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if len(events) != 0 {
		t.Errorf("events = %d, want 0", len(events))
	}
}
