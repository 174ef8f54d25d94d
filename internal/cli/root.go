// Package cli implements the calc command-line interface.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/plugcalc/internal/calculator"
	"github.com/mesh-intelligence/plugcalc/internal/config"
	"github.com/mesh-intelligence/plugcalc/internal/logging"
	"github.com/mesh-intelligence/plugcalc/internal/paths"
	"github.com/mesh-intelligence/plugcalc/internal/plugin"
	_ "github.com/mesh-intelligence/plugcalc/internal/plugin/builtin"
	"github.com/mesh-intelligence/plugcalc/internal/shell"
	"github.com/mesh-intelligence/plugcalc/pkg/plugcalc"
	"github.com/mesh-intelligence/plugcalc/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
)

// dotEnvFile is loaded from the working directory before anything reads
// the environment.
const dotEnvFile = ".env"

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir   string
	dataDir     string
	logLevel    string
	historyFile string
}

// app carries the state built once per invocation by setup.
type app struct {
	flags  rootFlags
	cfg    types.Config
	logger *zap.Logger
	calc   *calculator.Calculator
}

// NewRootCmd creates the top-level "calc" command with global flags and
// all subcommands registered. Run without a subcommand it starts the
// interactive shell.
func NewRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	root := &cobra.Command{
		Use:   "calc",
		Short: "An arithmetic calculator with plugins and history",
		Long: "calc evaluates arithmetic, runs plugin operations such as sqrt and power,\n" +
			"and keeps a history that can be saved to and loaded from CSV, JSONL, or SQLite files.",
		Version: plugcalc.Version,
		Args:    cobra.NoArgs,
		// Do not print usage on errors returned by subcommands.
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if skipSetup(cmd) {
				return nil
			}
			return a.setup(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
		RunE: a.runShell,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/plugcalc)")
	root.PersistentFlags().StringVar(&a.flags.dataDir, "data-dir", "", "data directory (default: $XDG_DATA_HOME/plugcalc)")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warning, error (default: $LOG_LEVEL or info)")
	root.PersistentFlags().StringVar(&a.flags.historyFile, "history-file", "", "default file for save and load (default: history.csv)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newEvalCmd(a))
	root.AddCommand(newPluginCmd(a))
	root.AddCommand(newHistoryCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}

// skipSetup reports whether cmd runs without configuration, logger, or
// plugins.
func skipSetup(cmd *cobra.Command) bool {
	switch cmd.Name() {
	case "version", "init", "help":
		return true
	}
	return false
}

// setup loads configuration, builds the logger, loads plugins, and creates
// the calculator.
func (a *app) setup(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(dotEnvFile); err != nil {
		return err
	}

	configDir, err := paths.ConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}

	cfg, err := config.Load(configDir, config.Overrides{
		LogLevel:    a.flags.logLevel,
		HistoryFile: a.flags.historyFile,
	})
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	cfg.DataDir, err = paths.DataDir(a.flags.dataDir, configDir, cfg.DataDir)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	logger, err := logging.New(cfg.LogLevel, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	reg := plugin.NewRegistry(logger)
	plugin.Load(reg, plugin.Catalog(), logger, plugin.LoadOptions{Disabled: cfg.DisabledPlugins})

	a.cfg = cfg
	a.logger = logger
	a.calc = calculator.New(reg, logger)
	return nil
}

// runShell starts the interactive loop on the terminal.
func (a *app) runShell(cmd *cobra.Command, args []string) error {
	sh := shell.New(a.calc, cmd.OutOrStdout(), a.logger, a.cfg.HistoryFile)

	historyFile, err := paths.ShellHistoryPath(a.cfg.DataDir)
	if err != nil {
		a.logger.Warn("shell line history disabled", zap.Error(err))
		historyFile = ""
	}

	rl, err := sh.NewReadline(a.cfg.Prompt, historyFile)
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	return sh.Run(rl)
}
