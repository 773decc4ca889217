package transcript

import (
	"context"
	"sync"

	"github.com/roseyseyewear/what-do-you-feel/internal/log"
)

// Update is a snapshot published after every accumulator change.
type Update struct {
	Transcript string
	Err        string // engine error code, empty when healthy
	Listening  bool
}

// Accumulator owns a single recognition engine and merges its output
// with previously committed text. All engine callbacks are serialized
// behind one mutex, so handler bodies never interleave.
type Accumulator struct {
	engine Engine
	logger *log.Logger

	mu        sync.Mutex
	state     SessionState
	listening bool
	errCode   string
	cancel    context.CancelFunc

	updates chan Update
}

// New creates an Accumulator around the given engine. A nil engine
// means voice input is unsupported; the accumulator still works for
// reset/observation so the typed path shares one code path. logger may
// be nil.
func New(engine Engine, logger *log.Logger) *Accumulator {
	a := &Accumulator{
		engine:  engine,
		logger:  logger,
		updates: make(chan Update, 16),
	}
	if engine != nil {
		go a.consume()
	}
	return a
}

// Supported reports whether a recognition engine is available.
// Computed once at construction; read-only afterwards.
func (a *Accumulator) Supported() bool {
	return a.engine != nil
}

// Listening reports whether a recognition session is active.
func (a *Accumulator) Listening() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.listening
}

// Transcript returns the last computed transcript value.
func (a *Accumulator) Transcript() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state.Transcript()
}

// Err returns the last engine error code, empty when healthy.
func (a *Accumulator) Err() string {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.errCode
}

// Updates delivers a snapshot after every change. Slow consumers may
// miss intermediate snapshots; the latest one always arrives.
func (a *Accumulator) Updates() <-chan Update {
	return a.updates
}

// Start begins a recognition session that continues after existingText.
// It is a guarded no-op while a session is already active. A synchronous
// engine failure is caught and logged; listening stays false and the
// caller can keep typing.
func (a *Accumulator) Start(existingText string) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.engine == nil || a.listening {
		return
	}

	a.state = NewSessionState(existingText)
	a.errCode = ""

	ctx, cancel := context.WithCancel(context.Background())
	if err := a.engine.Start(ctx); err != nil {
		cancel()
		a.logEvent(log.LogEvent{
			Event: log.EventRecognitionError,
			Error: err.Error(),
		})
		a.publishLocked()
		return
	}
	a.cancel = cancel
	a.listening = true
	a.publishLocked()
}

// Stop requests that the engine end the session. The last computed
// transcript value is retained.
func (a *Accumulator) Stop() {
	a.mu.Lock()
	if !a.listening {
		a.mu.Unlock()
		return
	}
	a.listening = false
	cancel := a.cancel
	a.cancel = nil
	a.publishLocked()
	a.mu.Unlock()

	if a.engine != nil {
		a.engine.Stop()
	}
	if cancel != nil {
		cancel()
	}
}

// ResetTranscript clears all session text and the published transcript,
// independent of listening state.
func (a *Accumulator) ResetTranscript() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.state = SessionState{}
	a.publishLocked()
}

// Close releases the engine. The accumulator must not be started again.
func (a *Accumulator) Close() {
	a.Stop()
	if a.engine != nil {
		a.engine.Abort()
	}
}

func (a *Accumulator) consume() {
	for ev := range a.engine.Events() {
		a.handleEvent(ev)
	}
}

// handleEvent processes one engine event to completion under the lock.
func (a *Accumulator) handleEvent(ev ResultEvent) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if ev.Error != "" {
		a.errCode = ev.Error
		a.listening = false
		if a.cancel != nil {
			a.cancel()
			a.cancel = nil
		}
		a.logEvent(log.LogEvent{
			Event: log.EventRecognitionError,
			Error: ev.Error,
		})
		a.publishLocked()
		return
	}

	if !a.listening {
		return // stale event from a session that already ended
	}

	a.state = a.state.Apply(ev)
	a.publishLocked()
}

// publishLocked sends the current snapshot without blocking. When the
// buffer is full the oldest snapshot is discarded so the latest state
// always lands.
func (a *Accumulator) publishLocked() {
	u := Update{
		Transcript: a.state.Transcript(),
		Err:        a.errCode,
		Listening:  a.listening,
	}
	for {
		select {
		case a.updates <- u:
			return
		default:
			select {
			case <-a.updates:
			default:
			}
		}
	}
}

func (a *Accumulator) logEvent(ev log.LogEvent) {
	if a.logger == nil {
		return
	}
	_ = a.logger.Append(ev)
}
