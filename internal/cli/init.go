// init.go implements the "wdyf init" command.
package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/roseyseyewear/what-do-you-feel/internal/config"
)

var forceFlag bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default configuration",
	Long: `Create .wdyf/config.yaml with the default settings: the summary
endpoint, the serve address and model, and empty question overrides.
An existing config is left alone unless --force is given.`,
	RunE: runInit,
}

func init() {
	initCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir := config.DefaultDir()

	if _, err := config.ReadConfig(dir); err == nil && !forceFlag {
		fmt.Println("Config already exists. Use --force to overwrite.")
		return nil
	}

	cfg := config.DefaultConfig()
	if err := config.WriteConfig(dir, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	fmt.Printf("Configuration written to %s\n", filepath.Join(dir, ".wdyf", "config.yaml"))
	fmt.Println("Next steps:")
	fmt.Printf("  1. Optionally set $%s and run: wdyf serve\n", cfg.Server.APIKeyEnv)
	fmt.Println("  2. Run: wdyf")
	return nil
}
