// serve.go implements the "wdyf serve" summarization proxy command.
package cli

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/roseyseyewear/what-do-you-feel/internal/config"
	"github.com/roseyseyewear/what-do-you-feel/internal/summary"
)

var listenFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the summarization proxy",
	Long: `Serve the HTTP endpoint the inquiry posts finalized answers to.
With an API key in the configured environment variable it delegates to
the language model; without one it answers with a deterministic echo of
the answers, so the rest of the flow keeps working.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&listenFlag, "listen", "", "Listen address (overrides config)")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.ReadConfig(config.DefaultDir())
	if err != nil {
		cfg = config.DefaultConfig()
	}

	listen := cfg.Server.Listen
	if listenFlag != "" {
		listen = listenFlag
	}

	keys := splitKeys(os.Getenv(cfg.Server.APIKeyEnv))

	srv, err := summary.NewServer(listen, cfg.Server.Model, keys)
	if err != nil {
		return fmt.Errorf("starting server: %w", err)
	}

	if len(keys) == 0 {
		fmt.Printf("No API key in $%s; serving deterministic echo summaries.\n", cfg.Server.APIKeyEnv)
	}
	fmt.Printf("Listening on http://%s\n", srv.Addr())

	// Stop the server on SIGINT/SIGTERM so Start returns.
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		_ = srv.Stop()
	}()

	if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("serving: %w", err)
	}
	return nil
}

// splitKeys parses a comma-separated key list, dropping empty segments.
func splitKeys(raw string) []string {
	var keys []string
	for _, k := range strings.Split(raw, ",") {
		k = strings.TrimSpace(k)
		if k != "" {
			keys = append(keys, k)
		}
	}
	return keys
}
