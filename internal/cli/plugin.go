package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/plugcalc/pkg/types"
)

func newPluginCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plugin",
		Short: "List and run plugins",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List available plugins",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range a.calc.Plugins() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:     "run <name> [args...]",
		Short:   "Run a plugin with numeric arguments",
		Example: "  calc plugin run sqrt 16\n  calc plugin run log 100 10",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlugin(cmd, args[0], args[1:])
		},
	})
	return cmd
}

func (a *app) runPlugin(cmd *cobra.Command, name string, rawArgs []string) error {
	args := make([]float64, len(rawArgs))
	for i, raw := range rawArgs {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return fmt.Errorf("%w: argument %q is not a number", types.ErrInvalidCommand, raw)
		}
		args[i] = v
	}

	result, ok := a.calc.ExecutePlugin(name, args...)
	if !ok {
		return fmt.Errorf("plugin %s returned no result", name)
	}
	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(result, 'g', -1, 64))
	return nil
}
