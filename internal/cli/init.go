package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/plugcalc/internal/config"
	"github.com/mesh-intelligence/plugcalc/internal/paths"
)

func newInitCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create the configuration and data directories",
		Long:  "Create the configuration directory with a default config.yaml, and the data directory used for shell line history.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, a.flags)
		},
	}
}

func runInit(cmd *cobra.Command, flags rootFlags) error {
	configDir, err := paths.ConfigDir(flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	dataDir, err := paths.DataDir(flags.dataDir, configDir, "")
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	// Only an explicit --data-dir is pinned in config.yaml, as an absolute
	// path; otherwise CALC_DATA_DIR and the platform default stay in effect.
	pinned := ""
	if flags.dataDir != "" {
		pinned = dataDir
	}
	path, created, err := config.WriteDefault(configDir, pinned)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	if created {
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration written to %s\n", path)
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Configuration already exists at %s\n", path)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Data directory: %s\n", dataDir)
	return nil
}
