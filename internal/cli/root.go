// Package cli defines Cobra command definitions for the wdyf CLI.
// This file contains the root command, which launches the guided inquiry.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/roseyseyewear/what-do-you-feel/internal/config"
	"github.com/roseyseyewear/what-do-you-feel/internal/flow"
	"github.com/roseyseyewear/what-do-you-feel/internal/log"
	"github.com/roseyseyewear/what-do-you-feel/internal/summary"
	"github.com/roseyseyewear/what-do-you-feel/internal/transcript"
	"github.com/roseyseyewear/what-do-you-feel/internal/tui"
	"github.com/roseyseyewear/what-do-you-feel/internal/tui/app"
)

var version = "dev" // set via ldflags at build time

var rootCmd = &cobra.Command{
	Use:   "wdyf",
	Short: "A guided self-reflection session in your terminal",
	Long: `wdyf walks you through a short sequence of reflection questions,
spoken or typed, and hands back a synthesized summary of what you said.
Run it with no arguments to start a session.`,
	Version:       version,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if !tui.IsTTY() {
			return cmd.Help()
		}

		dir := config.DefaultDir()

		// Missing or invalid config falls back to defaults.
		cfg, err := config.ReadConfig(dir)
		if err != nil {
			cfg = config.DefaultConfig()
		}

		logger, err := log.NewLogger(dir)
		if err != nil {
			return fmt.Errorf("opening event log: %w", err)
		}

		engine, _ := transcript.Probe(cfg.Recognizer.Command, cfg.Recognizer.Args)
		acc := transcript.New(engine, logger)
		defer acc.Close()

		controller := flow.NewController(cfg.Questions.Initial, cfg.Questions.Deepening)

		var client *summary.Client
		if cfg.Summary.Endpoint != "" {
			timeout := time.Duration(cfg.Summary.TimeoutSeconds) * time.Second
			client = summary.NewClient(cfg.Summary.Endpoint, timeout)
		}

		m := tui.NewModel(cfg, controller, acc, client, logger)
		return tui.Run(app.New(m))
	},
}

// Execute runs the root command. Called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(serveCmd)
}
