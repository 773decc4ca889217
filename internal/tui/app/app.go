// Package app wires the view models together and routes messages between
// them based on the current screen.
package app

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/roseyseyewear/what-do-you-feel/internal/flow"
	"github.com/roseyseyewear/what-do-you-feel/internal/log"
	"github.com/roseyseyewear/what-do-you-feel/internal/tui"
	"github.com/roseyseyewear/what-do-you-feel/internal/tui/commands"
	"github.com/roseyseyewear/what-do-you-feel/internal/tui/views"
)

// App is the root bubbletea model. It owns the shared state and the
// per-screen view models, rebuilding views on screen transitions.
type App struct {
	model *tui.Model

	welcome views.WelcomeModel
	inquiry views.InquiryModel
	output  views.OutputModel

	submitStart time.Time
}

// New creates the application rooted at the Welcome screen.
func New(m *tui.Model) *App {
	return &App{
		model:   m,
		welcome: views.NewWelcomeModel(m.Advisory, m.Width, m.Height),
	}
}

// Init starts the transcript listener alongside the first screen.
func (a *App) Init() tea.Cmd {
	return tea.Batch(
		a.welcome.Init(),
		commands.ListenTranscript(a.model.Accumulator.Updates()),
	)
}

// Update handles all messages and routes screen-specific ones to the
// active view.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.model.Width = msg.Width
		a.model.Height = msg.Height
		return a, a.route(msg)

	case tea.KeyMsg:
		if msg.String() == tui.KeyCtrlC {
			if a.model.CtrlCPending {
				a.model.Accumulator.Close()
				return a, tea.Quit
			}
			a.model.CtrlCPending = true
			return a, tui.ResetAfter(func() tea.Msg { return tui.CtrlCResetMsg{} })
		}
		a.model.CtrlCPending = false
		return a, a.route(msg)

	case tui.CtrlCResetMsg:
		a.model.CtrlCPending = false
		return a, nil

	case spinner.TickMsg:
		if a.model.Controller.Screen() != flow.ScreenProcessing {
			return a, nil
		}
		var cmd tea.Cmd
		a.model.Spinner, cmd = a.model.Spinner.Update(msg)
		return a, cmd

	case tui.TranscriptUpdateMsg:
		return a.onTranscriptUpdate(msg)

	case tui.StartSessionMsg:
		return a.onStartSession()

	case tui.AdvanceRequestMsg:
		return a.onAdvance()

	case tui.CompleteRequestMsg:
		return a.onComplete()

	case tui.ToggleRecordingMsg:
		return a.onToggleRecording()

	case tui.SummaryDoneMsg:
		return a.onSummaryDone(msg)

	case tui.GoWelcomeMsg:
		return a.onReset("abandoned")

	case tui.RestartMsg:
		return a.onReset("restart")
	}

	return a, a.route(msg)
}

// View renders the active screen centered in the terminal.
func (a *App) View() string {
	var content string
	switch a.model.Controller.Screen() {
	case flow.ScreenWelcome:
		content = a.welcome.View()
	case flow.ScreenInquiry:
		content = a.inquiry.View()
	case flow.ScreenProcessing:
		content = a.processingView()
	case flow.ScreenOutput:
		content = a.output.View()
	}

	view := lipgloss.Place(a.model.Width, a.model.Height, lipgloss.Center, lipgloss.Center, content)
	if a.model.CtrlCPending {
		view += "\n" + tui.WarningStyle.Render("Press Ctrl+C again to quit")
	}
	return view
}

// route forwards a message to the view that owns the active screen.
func (a *App) route(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.model.Controller.Screen() {
	case flow.ScreenWelcome:
		a.welcome, cmd = a.welcome.Update(msg)
	case flow.ScreenInquiry:
		a.inquiry, cmd = a.inquiry.Update(msg)
	case flow.ScreenOutput:
		a.output, cmd = a.output.Update(msg)
	}
	return cmd
}

func (a *App) onStartSession() (tea.Model, tea.Cmd) {
	a.model.Controller.Start()
	a.model.Accumulator.ResetTranscript()
	a.model.SessionID = uuid.NewString()

	a.logEvent(log.LogEvent{Event: log.EventSessionStarted})

	a.rebuildInquiry()
	return a, a.inquiry.Init()
}

func (a *App) onAdvance() (tea.Model, tea.Cmd) {
	c := a.model.Controller
	c.SetAnswer(a.inquiry.Value())

	if !c.CanAdvance() {
		a.inquiry.SetNotice("Put something into words first, even a single word.")
		return a, nil
	}

	question := c.Question()
	index := c.Index()
	prevDepth := c.Depth()
	c.Advance()

	a.logEvent(log.LogEvent{
		Event:    log.EventAnswerCommitted,
		Question: question,
		Index:    index,
		Depth:    prevDepth,
	})
	if prevDepth == 0 && c.Depth() == 1 {
		a.logEvent(log.LogEvent{Event: log.EventDeepeningStarted})
	}

	a.model.Accumulator.Stop()
	a.model.Accumulator.ResetTranscript()

	a.rebuildInquiry()
	return a, a.inquiry.Init()
}

func (a *App) onComplete() (tea.Model, tea.Cmd) {
	c := a.model.Controller
	c.SetAnswer(a.inquiry.Value())

	if !c.Deepening() {
		a.inquiry.SetNotice("Answer the opening questions first.")
		return a, nil
	}

	entries := c.Complete()
	a.model.Accumulator.Stop()
	a.submitStart = time.Now()

	a.logEvent(log.LogEvent{
		Event:   log.EventSummaryRequested,
		Entries: len(entries),
	})

	var s flow.Summarizer
	if a.model.Client != nil {
		s = a.model.Client
	}
	timeout := time.Duration(a.model.Cfg.Summary.TimeoutSeconds) * time.Second

	return a, tea.Batch(
		a.model.Spinner.Tick,
		commands.Submit(s, entries, timeout),
	)
}

func (a *App) onSummaryDone(msg tui.SummaryDoneMsg) (tea.Model, tea.Cmd) {
	a.model.Controller.Finish(msg.Result, !msg.External)

	event := log.EventSummaryReceived
	if !msg.External {
		event = log.EventSummaryFallback
	}
	a.logEvent(log.LogEvent{
		Event:      event,
		DurationMs: time.Since(a.submitStart).Milliseconds(),
	})
	a.logEvent(log.LogEvent{Event: log.EventSessionComplete})

	a.output = views.NewOutputModel(msg.Result, msg.External, a.model.Width, a.model.Height)
	return a, a.output.Init()
}

func (a *App) onToggleRecording() (tea.Model, tea.Cmd) {
	acc := a.model.Accumulator
	if !acc.Supported() {
		a.inquiry.SetNotice(a.model.Advisory)
		return a, nil
	}

	if acc.Listening() {
		acc.Stop()
		a.inquiry.SetRecording(false)
		return a, nil
	}

	acc.Start(a.inquiry.Value())
	a.inquiry.SetRecording(acc.Listening())
	a.inquiry.SetError(acc.Err())
	return a, nil
}

func (a *App) onTranscriptUpdate(msg tui.TranscriptUpdateMsg) (tea.Model, tea.Cmd) {
	u := msg.Update

	if a.model.Controller.Screen() == flow.ScreenInquiry {
		a.inquiry.SetRecording(u.Listening)
		a.inquiry.SetError(u.Err)
		if u.Listening {
			a.inquiry.SetTranscript(u.Transcript)
			a.model.Controller.SetAnswer(u.Transcript)
		}
	}

	return a, commands.ListenTranscript(a.model.Accumulator.Updates())
}

func (a *App) onReset(reason string) (tea.Model, tea.Cmd) {
	a.model.Accumulator.Stop()
	a.model.Accumulator.ResetTranscript()

	a.logEvent(log.LogEvent{Event: log.EventSessionReset, Reason: reason})

	a.model.Controller.Reset()
	a.model.SessionID = ""
	a.welcome = views.NewWelcomeModel(a.model.Advisory, a.model.Width, a.model.Height)
	return a, nil
}

func (a *App) processingView() string {
	content := a.model.Spinner.View() + " Listening back over what you said..."
	return tui.BoxStyle.Render(content)
}

// rebuildInquiry creates a fresh Inquiry view for the controller's
// current question.
func (a *App) rebuildInquiry() {
	c := a.model.Controller
	a.inquiry = views.NewInquiryModel(views.InquiryParams{
		Question:       c.Question(),
		Index:          c.Index(),
		Depth:          c.Depth(),
		InitialCount:   c.InitialCount(),
		Deepening:      c.Deepening(),
		VoiceSupported: a.model.Accumulator.Supported(),
		Advisory:       a.model.Advisory,
	}, a.model.Width, a.model.Height)
}

func (a *App) logEvent(ev log.LogEvent) {
	if a.model.Logger == nil {
		return
	}
	ev.SessionID = a.model.SessionID
	_ = a.model.Logger.Append(ev)
}
