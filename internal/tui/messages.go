package tui

import (
	"github.com/roseyseyewear/what-do-you-feel/internal/summary"
	"github.com/roseyseyewear/what-do-you-feel/internal/transcript"
)

// ============================================================================
// Screen Transition Messages
// ============================================================================

// StartSessionMsg begins a new inquiry session from the Welcome screen.
type StartSessionMsg struct{}

// AdvanceRequestMsg asks to commit the current answer and move on
// ("Next" at depth 0, "Go deeper" once deepening).
type AdvanceRequestMsg struct{}

// CompleteRequestMsg asks to finalize the session and request a summary.
type CompleteRequestMsg struct{}

// GoWelcomeMsg abandons the session and returns to the Welcome screen.
type GoWelcomeMsg struct{}

// RestartMsg starts over from the Output screen.
type RestartMsg struct{}

// ============================================================================
// Voice Input Messages
// ============================================================================

// ToggleRecordingMsg starts or stops the recognition session.
type ToggleRecordingMsg struct{}

// TranscriptUpdateMsg carries a snapshot from the transcript accumulator.
type TranscriptUpdateMsg struct {
	Update transcript.Update
}

// ============================================================================
// Summary Messages
// ============================================================================

// SummaryDoneMsg carries the summary for the Output screen. External is
// false when the result was synthesized locally.
type SummaryDoneMsg struct {
	Result   summary.Result
	External bool
}

// ============================================================================
// Utility Messages
// ============================================================================

// CtrlCResetMsg resets the Ctrl+C confirmation state after a timeout.
type CtrlCResetMsg struct{}

// EscResetMsg resets a pending double-Esc confirmation after a timeout.
type EscResetMsg struct{}
