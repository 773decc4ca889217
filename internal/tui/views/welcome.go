// Package views provides the TUI view components, one per screen.
package views

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/roseyseyewear/what-do-you-feel/internal/tui"
)

const maxWelcomeWidth = 64

// WelcomeModel is the view model for the Welcome screen.
type WelcomeModel struct {
	advisory string
	width    int
	height   int
}

// NewWelcomeModel creates the Welcome screen. advisory is shown when
// voice input is unavailable.
func NewWelcomeModel(advisory string, width, height int) WelcomeModel {
	return WelcomeModel{advisory: advisory, width: width, height: height}
}

// Init returns the initial command for the Welcome screen.
func (m WelcomeModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the Welcome screen.
func (m WelcomeModel) Update(msg tea.Msg) (WelcomeModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case tui.KeyEnter, " ":
			return m, func() tea.Msg { return tui.StartSessionMsg{} }
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

// View renders the Welcome screen.
func (m WelcomeModel) View() string {
	var b strings.Builder

	b.WriteString(tui.TitleStyle.Render("What do you feel?"))
	b.WriteString("\n\n")
	b.WriteString("A few quiet questions, answered out loud or in writing.\n")
	b.WriteString("At the end you receive a short reflection of what you said.\n\n")

	if m.advisory != "" {
		b.WriteString(tui.WarningStyle.Render(m.advisory))
		b.WriteString("\n\n")
	}

	b.WriteString(tui.DimStyle.Render("Enter to begin · Ctrl+C twice to quit"))

	boxWidth := maxWelcomeWidth
	if m.width-4 < boxWidth {
		boxWidth = m.width - 4
	}

	return tui.BoxStyle.Width(boxWidth).Render(b.String())
}
