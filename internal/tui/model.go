// Package tui implements the terminal user interface using Bubble Tea.
package tui

import (
	"github.com/charmbracelet/bubbles/spinner"

	"github.com/roseyseyewear/what-do-you-feel/internal/config"
	"github.com/roseyseyewear/what-do-you-feel/internal/flow"
	"github.com/roseyseyewear/what-do-you-feel/internal/log"
	"github.com/roseyseyewear/what-do-you-feel/internal/summary"
	"github.com/roseyseyewear/what-do-you-feel/internal/transcript"
)

// Model is the shared application state that the view router operates on.
type Model struct {
	// Configuration
	Cfg *config.Config

	// Domain state
	Controller  *flow.Controller
	Accumulator *transcript.Accumulator
	Client      *summary.Client
	Logger      *log.Logger
	SessionID   string

	// Voice capability advisory shown when no recognizer is available.
	Advisory string

	// Bubbles components shared across screens
	Spinner spinner.Model

	// Terminal dimensions
	Width  int
	Height int

	// Ctrl+C confirmation state
	CtrlCPending bool // true when waiting for the second Ctrl+C press
}

// NewModel creates a new Model with the given collaborators.
func NewModel(cfg *config.Config, controller *flow.Controller, acc *transcript.Accumulator, client *summary.Client, logger *log.Logger) *Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		Cfg:         cfg,
		Controller:  controller,
		Accumulator: acc,
		Client:      client,
		Logger:      logger,
		Spinner:     sp,

		// Default dimensions (updated on WindowSizeMsg)
		Width:  80,
		Height: 24,
	}
	if !acc.Supported() {
		m.Advisory = "Voice input is not available here. Type your answers instead."
	}
	return m
}
