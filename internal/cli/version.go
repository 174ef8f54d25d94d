package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/plugcalc/pkg/plugcalc"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the calc version",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "calc v%s\nmodule: %s\n", plugcalc.Version, plugcalc.ModulePath)
			return nil
		},
	}
}
