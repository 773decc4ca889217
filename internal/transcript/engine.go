package transcript

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"sync"
)

// Engine is a continuous, interim-enabled speech-recognition session
// source. Implementations deliver events on Events asynchronously, on
// their own schedule.
type Engine interface {
	// Start begins a recognition session. A session that cannot begin
	// reports the failure synchronously.
	Start(ctx context.Context) error
	// Stop requests that the current session end. Events already
	// produced remain valid.
	Stop()
	// Abort releases the engine entirely. No events are delivered
	// after Abort returns.
	Abort()
	// Events delivers result and error events for the engine's
	// sessions. The channel is closed by Abort.
	Events() <-chan ResultEvent
}

// Probe checks once, at startup, whether a recognition engine is
// available. It returns the constructed engine and true when the
// configured recognizer command resolves on PATH.
func Probe(command string, args []string) (Engine, bool) {
	if command == "" {
		return nil, false
	}
	path, err := exec.LookPath(command)
	if err != nil {
		return nil, false
	}
	return NewExecEngine(path, args), true
}

// ExecEngine runs an external recognizer command and parses its stdout
// as a stream of JSON events, one object per line. Each line carries
// either the full hypothesis list for the session so far or an error
// code.
type ExecEngine struct {
	path string
	args []string

	mu     sync.Mutex
	cmd    *exec.Cmd
	events chan ResultEvent
	closed bool
}

// NewExecEngine creates an engine for the given resolved command path.
func NewExecEngine(path string, args []string) *ExecEngine {
	return &ExecEngine{
		path:   path,
		args:   args,
		events: make(chan ResultEvent, 16),
	}
}

// Start launches the recognizer process and begins streaming events.
func (e *ExecEngine) Start(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return fmt.Errorf("recognition engine already released")
	}
	if e.cmd != nil {
		return fmt.Errorf("recognition session already running")
	}

	cmd := exec.CommandContext(ctx, e.path, e.args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return fmt.Errorf("recognizer stdout: %w", err)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting recognizer: %w", err)
	}
	e.cmd = cmd

	go func() {
		scanner := bufio.NewScanner(stdout)
		scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
		for scanner.Scan() {
			line := scanner.Bytes()
			if len(line) == 0 {
				continue
			}
			var ev ResultEvent
			if err := json.Unmarshal(line, &ev); err != nil {
				continue // tolerate malformed lines, the next full list supersedes them
			}
			e.deliver(ev)
		}
		_ = cmd.Wait()

		e.mu.Lock()
		if e.cmd == cmd {
			e.cmd = nil
		}
		e.mu.Unlock()
	}()

	return nil
}

// Stop asks the running recognizer process to end its session.
func (e *ExecEngine) Stop() {
	e.mu.Lock()
	cmd := e.cmd
	e.mu.Unlock()

	if cmd != nil && cmd.Process != nil {
		_ = cmd.Process.Signal(os.Interrupt)
	}
}

// Abort kills any running process and closes the event stream.
func (e *ExecEngine) Abort() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.closed {
		return
	}
	e.closed = true
	if e.cmd != nil && e.cmd.Process != nil {
		_ = e.cmd.Process.Kill()
		e.cmd = nil
	}
	close(e.events)
}

// Events returns the engine's event stream.
func (e *ExecEngine) Events() <-chan ResultEvent {
	return e.events
}

func (e *ExecEngine) deliver(ev ResultEvent) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	select {
	case e.events <- ev:
	default:
		// Consumer is behind; the next event carries the full list anyway.
	}
}
