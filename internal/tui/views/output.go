package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/roseyseyewear/what-do-you-feel/internal/summary"
	"github.com/roseyseyewear/what-do-you-feel/internal/tui"
)

const maxOutputWidth = 72

// OutputModel is the view model for the Output screen.
type OutputModel struct {
	result   summary.Result
	external bool
	keys     tui.KeyMap
	width    int
	height   int
}

// NewOutputModel creates the Output screen for a finished session.
func NewOutputModel(result summary.Result, external bool, width, height int) OutputModel {
	return OutputModel{
		result:   result,
		external: external,
		keys:     tui.DefaultKeyMap,
		width:    width,
		height:   height,
	}
}

// Init returns the initial command for the Output screen.
func (m OutputModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the Output screen.
func (m OutputModel) Update(msg tea.Msg) (OutputModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Restart):
			return m, func() tea.Msg { return tui.RestartMsg{} }
		case key.Matches(msg, m.keys.Quit), key.Matches(msg, m.keys.Back):
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the Output screen.
func (m OutputModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("Your reflection"))
	b.WriteString("\n\n")

	fields := []struct {
		label string
		value string
	}{
		{"Core feeling", m.result.CoreFeeling},
		{"Body wisdom", m.result.BodyWisdom},
		{"Underlying need", m.result.UnderlyingNeed},
		{"Integration", m.result.Integration},
		{"Shift", m.result.Shift},
	}
	for _, f := range fields {
		b.WriteString(tui.LabelStyle.Render(f.label))
		b.WriteString("\n")
		b.WriteString(f.value)
		b.WriteString("\n\n")
	}

	if !m.external {
		b.WriteString(tui.DimStyle.Render("Summarized locally, without the reflection service."))
		b.WriteString("\n\n")
	}

	b.WriteString(tui.DimStyle.Render("r: begin again · q: quit"))

	boxWidth := maxOutputWidth
	if m.width-4 < boxWidth {
		boxWidth = m.width - 4
	}

	return tui.BoxStyle.Width(boxWidth).Render(b.String())
}
