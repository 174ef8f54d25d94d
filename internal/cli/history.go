package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/plugcalc/internal/history"
)

func newHistoryCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and convert history files",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "show <file>",
		Short: "Print the records in a history file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.calc.LoadHistory(args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.calc.ShowHistory())
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "convert <src> <dst>",
		Short: "Copy a history file into another format",
		Long:  "Copy a history file into another format. Formats are chosen by extension:\n.csv (default), .jsonl, and .db/.sqlite/.sqlite3.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			src, dst := args[0], args[1]
			if err := a.calc.LoadHistory(src); err != nil {
				return err
			}
			if err := a.calc.SaveHistory(dst); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Converted %d records from %s (%s) to %s (%s)\n",
				a.calc.History().Len(), src, history.Format(src), dst, history.Format(dst))
			return nil
		},
	})
	return cmd
}
