package flow

import (
	"context"
	"strings"

	"github.com/roseyseyewear/what-do-you-feel/internal/summary"
)

// Screen is the stage the inquiry session is in.
type Screen int

const (
	ScreenWelcome Screen = iota
	ScreenInquiry
	ScreenProcessing
	ScreenOutput
)

// String returns the screen name for logs and tests.
func (s Screen) String() string {
	switch s {
	case ScreenWelcome:
		return "welcome"
	case ScreenInquiry:
		return "inquiry"
	case ScreenProcessing:
		return "processing"
	case ScreenOutput:
		return "output"
	default:
		return "unknown"
	}
}

// Summarizer produces a structured summary for finalized entries.
// *summary.Client satisfies it.
type Summarizer interface {
	Summarize(ctx context.Context, entries []summary.Entry) (summary.Result, error)
}

// Controller owns the question sequence, the working answer buffer,
// the committed entries, and the screen transitions. It has no
// rendering concerns; the TUI drives it and renders its state.
type Controller struct {
	initial []string
	pool    []string

	screen  Screen
	index   int
	depth   int
	entries []summary.Entry
	answer  string

	result   summary.Result
	fallback bool
}

// NewController creates a controller on the Welcome screen. Empty
// question lists select the defaults.
func NewController(initial, pool []string) *Controller {
	if len(initial) == 0 {
		initial = DefaultInitialQuestions
	}
	if len(pool) == 0 {
		pool = DefaultDeepeningQuestions
	}
	return &Controller{initial: initial, pool: pool}
}

// Screen returns the current screen.
func (c *Controller) Screen() Screen { return c.screen }

// Index returns the current question index.
func (c *Controller) Index() int { return c.index }

// Depth returns the current deepening depth. It never decreases within
// one session.
func (c *Controller) Depth() int { return c.depth }

// Entries returns a copy of the committed entries in submission order.
func (c *Controller) Entries() []summary.Entry {
	out := make([]summary.Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Answer returns the working buffer for the current question.
func (c *Controller) Answer() string { return c.answer }

// SetAnswer replaces the working buffer. Typed input and the transcript
// accumulator both feed it through here.
func (c *Controller) SetAnswer(text string) { c.answer = text }

// Question returns the question currently being asked.
func (c *Controller) Question() string {
	return QuestionAt(c.initial, c.pool, c.index, c.depth)
}

// InitialCount returns the number of fixed initial questions.
func (c *Controller) InitialCount() int { return len(c.initial) }

// Start begins a session: Welcome -> Inquiry with all state cleared.
func (c *Controller) Start() {
	c.screen = ScreenInquiry
	c.index = 0
	c.depth = 0
	c.entries = nil
	c.answer = ""
	c.result = summary.Result{}
	c.fallback = false
}

// Reset abandons the session from any screen and returns to Welcome.
func (c *Controller) Reset() {
	c.screen = ScreenWelcome
	c.index = 0
	c.depth = 0
	c.entries = nil
	c.answer = ""
	c.result = summary.Result{}
	c.fallback = false
}

// CanAdvance reports whether the working buffer holds a usable answer.
// Whitespace-only answers block advancing.
func (c *Controller) CanAdvance() bool {
	return c.screen == ScreenInquiry && strings.TrimSpace(c.answer) != ""
}

// Deepening reports whether the session offers the go-deeper/complete
// choice: always past depth 0, and on the last initial question as a
// preview.
func (c *Controller) Deepening() bool {
	if c.depth >= 1 {
		return true
	}
	return c.index == len(c.initial)-1
}

// Advance commits the current answer and moves to the next question
// ("Next" at depth 0, "Go deeper" once deepening). Returns false when
// the buffer is empty or the session is not in inquiry.
func (c *Controller) Advance() bool {
	if !c.CanAdvance() {
		return false
	}

	c.commit()

	if c.depth == 0 && c.index == len(c.initial)-1 {
		// Last initial question answered: switch into deepening mode.
		c.depth = 1
		c.index = 0
		return true
	}
	c.index++
	return true
}

// Complete finalizes the session. A non-empty trailing buffer is
// committed as a final entry at the current depth; an empty one is
// simply omitted. The controller moves to Processing and the finalized
// entries are returned in submission order.
func (c *Controller) Complete() []summary.Entry {
	if c.screen != ScreenInquiry {
		return c.Entries()
	}
	if strings.TrimSpace(c.answer) != "" {
		c.commit()
	} else {
		c.answer = ""
	}
	c.screen = ScreenProcessing
	return c.Entries()
}

// Finish records the summary and moves Processing -> Output. fallback
// marks a locally synthesized result.
func (c *Controller) Finish(result summary.Result, fallback bool) {
	c.result = result
	c.fallback = fallback
	c.screen = ScreenOutput
}

// Result returns the summary shown on the Output screen.
func (c *Controller) Result() summary.Result { return c.result }

// UsedFallback reports whether the Output summary was synthesized
// locally rather than returned by the external service.
func (c *Controller) UsedFallback() bool { return c.fallback }

// commit appends the working buffer as an entry and clears it. This is
// the only place entries grow.
func (c *Controller) commit() {
	c.entries = append(c.entries, summary.Entry{
		Question: c.Question(),
		Answer:   strings.TrimSpace(c.answer),
		Depth:    c.depth,
	})
	c.answer = ""
}

// Submit obtains a summary for finalized entries. Any failure of the
// external service is absorbed here: the deterministic local fallback
// is synthesized instead, so Processing always reaches Output. The
// second return value is true when the external service produced the
// result.
func Submit(ctx context.Context, s Summarizer, entries []summary.Entry) (summary.Result, bool) {
	if s != nil {
		if result, err := s.Summarize(ctx, entries); err == nil {
			return result, true
		}
	}
	return Fallback(entries), false
}
