package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/roseyseyewear/what-do-you-feel/internal/tui"
)

const (
	maxInquiryWidth  = 72
	answerAreaHeight = 5
)

// InquiryParams describes the question the Inquiry screen presents.
type InquiryParams struct {
	Question     string
	Index        int
	Depth        int
	InitialCount int
	Deepening    bool

	VoiceSupported bool
	Advisory       string
}

// InquiryModel is the view model for the Inquiry screen. It owns the
// answer textarea; voice transcripts are written into it verbatim so the
// user can keep editing by hand.
type InquiryModel struct {
	params     InquiryParams
	textarea   textarea.Model
	keys       tui.KeyMap
	recording  bool
	errCode    string
	notice     string
	escPending bool
	width      int
	height     int
}

// NewInquiryModel creates the Inquiry screen for one question.
func NewInquiryModel(params InquiryParams, width, height int) InquiryModel {
	ta := textarea.New()
	ta.Placeholder = "Speak or type your answer..."
	ta.CharLimit = 4000
	ta.ShowLineNumbers = false
	ta.SetHeight(answerAreaHeight)
	ta.SetWidth(contentWidth(width))
	ta.Focus()

	return InquiryModel{
		params:   params,
		textarea: ta,
		keys:     tui.DefaultKeyMap,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the Inquiry screen.
func (m InquiryModel) Init() tea.Cmd {
	return textarea.Blink
}

// Update handles messages for the Inquiry screen.
func (m InquiryModel) Update(msg tea.Msg) (InquiryModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tui.EscResetMsg:
		m.escPending = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.textarea.SetWidth(contentWidth(msg.Width))
		return m, nil
	}

	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

func (m InquiryModel) handleKey(msg tea.KeyMsg) (InquiryModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.NewLine):
		var cmd tea.Cmd
		m.textarea, cmd = m.textarea.Update(tea.KeyMsg{Type: tea.KeyEnter})
		return m, cmd

	case key.Matches(msg, m.keys.Advance):
		return m, func() tea.Msg { return tui.AdvanceRequestMsg{} }

	case key.Matches(msg, m.keys.Complete):
		return m, func() tea.Msg { return tui.CompleteRequestMsg{} }

	case key.Matches(msg, m.keys.Record):
		return m, func() tea.Msg { return tui.ToggleRecordingMsg{} }

	case key.Matches(msg, m.keys.Back):
		if m.escPending {
			m.escPending = false
			return m, func() tea.Msg { return tui.GoWelcomeMsg{} }
		}
		m.escPending = true
		return m, tui.ResetAfter(func() tea.Msg { return tui.EscResetMsg{} })
	}

	m.notice = ""
	var cmd tea.Cmd
	m.textarea, cmd = m.textarea.Update(msg)
	return m, cmd
}

// Value returns the current answer text.
func (m InquiryModel) Value() string {
	return m.textarea.Value()
}

// SetTranscript replaces the answer text with the accumulated transcript
// and moves the cursor to the end.
func (m *InquiryModel) SetTranscript(text string) {
	m.textarea.SetValue(text)
	m.textarea.CursorEnd()
}

// SetRecording marks whether a recognition session is active.
func (m *InquiryModel) SetRecording(active bool) {
	m.recording = active
}

// SetError records a recognition error code for display. An empty code
// clears the indicator.
func (m *InquiryModel) SetError(code string) {
	m.errCode = code
}

// SetNotice shows a transient hint under the answer area.
func (m *InquiryModel) SetNotice(text string) {
	m.notice = text
}

// Recording reports whether the recording indicator is shown.
func (m InquiryModel) Recording() bool {
	return m.recording
}

// View renders the Inquiry screen.
func (m InquiryModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render(m.header()))
	b.WriteString("\n\n")
	b.WriteString(tui.QuestionStyle.Render(m.params.Question))
	b.WriteString("\n\n")
	b.WriteString(m.textarea.View())
	b.WriteString("\n")

	if m.recording {
		b.WriteString(tui.RecordingStyle.Render("● listening"))
		b.WriteString("\n")
	}
	if m.errCode != "" {
		b.WriteString(tui.ErrorStyle.Render("voice input error: " + m.errCode))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(tui.WarningStyle.Render(m.notice))
		b.WriteString("\n")
	}
	if m.escPending {
		b.WriteString(tui.WarningStyle.Render("Press Esc again to abandon this session"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(tui.DimStyle.Render(m.footer()))

	return tui.BoxStyle.Width(contentWidth(m.width) + 4).Render(b.String())
}

func (m InquiryModel) header() string {
	if m.params.Depth >= 1 {
		return fmt.Sprintf("Going deeper · follow-up %d", m.params.Depth)
	}
	return fmt.Sprintf("Question %d of %d", m.params.Index+1, m.params.InitialCount)
}

func (m InquiryModel) footer() string {
	hints := []string{}
	if m.params.Deepening {
		hints = append(hints, "enter: go deeper", "ctrl+d: complete")
	} else {
		hints = append(hints, "enter: next")
	}
	hints = append(hints, "shift+enter: new line")
	if m.params.VoiceSupported {
		hints = append(hints, "ctrl+r: toggle voice")
	}
	hints = append(hints, "esc esc: start over")
	return strings.Join(hints, " · ")
}

func contentWidth(width int) int {
	w := width - 8
	if w > maxInquiryWidth {
		w = maxInquiryWidth
	}
	if w < 20 {
		w = 20
	}
	return w
}
