// Package commands provides the asynchronous tea.Cmd constructors used by
// the TUI application.
package commands

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/roseyseyewear/what-do-you-feel/internal/flow"
	"github.com/roseyseyewear/what-do-you-feel/internal/summary"
	"github.com/roseyseyewear/what-do-you-feel/internal/transcript"
	"github.com/roseyseyewear/what-do-you-feel/internal/tui"
)

// ListenTranscript reads one snapshot from the accumulator's update channel.
// The handler re-arms it after each message. A closed channel yields no
// message, ending the loop.
func ListenTranscript(updates <-chan transcript.Update) tea.Cmd {
	return func() tea.Msg {
		u, ok := <-updates
		if !ok {
			return nil
		}
		return tui.TranscriptUpdateMsg{Update: u}
	}
}

// Submit requests the summary in the background and delivers the result.
// The external flag in the resulting message is false when the session was
// summarized locally.
func Submit(s flow.Summarizer, entries []summary.Entry, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		if timeout <= 0 {
			timeout = 30 * time.Second
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		result, external := flow.Submit(ctx, s, entries)
		return tui.SummaryDoneMsg{Result: result, External: external}
	}
}
