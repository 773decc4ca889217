package tui

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"
)

// confirmResetDelay is how long a double-press confirmation stays armed.
const confirmResetDelay = 2 * time.Second

// ResetAfter schedules the given confirmation-reset message.
func ResetAfter(fn func() tea.Msg) tea.Cmd {
	return tea.Tick(confirmResetDelay, func(time.Time) tea.Msg {
		return fn()
	})
}

// Common key binding constants.
const (
	KeyCtrlC      = "ctrl+c"
	KeyEnter      = "enter"
	KeyShiftEnter = "shift+enter"
	KeyEsc        = "esc"
	KeyComplete   = "ctrl+d"
	KeyRecord     = "ctrl+r"
)

// IsTTY returns true if stdout is connected to a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Run starts the TUI program with the given model.
// If stdout is a TTY, it runs in alternate screen mode.
// Otherwise, it prints guidance for non-interactive use.
func Run(m tea.Model) error {
	if IsTTY() {
		p := tea.NewProgram(m, tea.WithAltScreen())
		_, err := p.Run()
		return err
	}
	fmt.Println("Non-TTY environment detected.")
	fmt.Println("The guided inquiry needs an interactive terminal. Use 'wdyf serve' to run the summarization proxy.")
	return nil
}
