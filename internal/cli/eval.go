package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/plugcalc/internal/shell"
	"github.com/mesh-intelligence/plugcalc/pkg/types"
)

func newEvalCmd(a *app) *cobra.Command {
	var historyFile string

	cmd := &cobra.Command{
		Use:   "eval <a> <op> <b>",
		Short: "Evaluate one arithmetic expression",
		Long: "Evaluate a single expression such as \"6 / 2\". With --history the result is\n" +
			"appended to the given history file, which is created if it does not exist.",
		Example: "  calc eval 6 / 2\n  calc eval --history calc.csv 1 + 2\n  calc eval -- -2 '*' 3",
		Args:    cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runEval(cmd, strings.Join(args, " "), historyFile)
		},
	}
	cmd.Flags().StringVar(&historyFile, "history", "", "history file to append the result to")
	return cmd
}

func (a *app) runEval(cmd *cobra.Command, expr, historyFile string) error {
	parsed, err := shell.Parse(expr)
	if err != nil {
		return err
	}
	if parsed.Arith == nil {
		return fmt.Errorf("%w: %q is not an arithmetic expression", types.ErrInvalidCommand, expr)
	}
	op, err := parsed.Arith.Operation()
	if err != nil {
		return err
	}

	if historyFile != "" {
		if err := a.calc.LoadHistory(historyFile); err != nil && !isNotExist(err) {
			return err
		}
	}

	result, err := a.calc.Apply(op, parsed.Arith.Left, parsed.Arith.Right)
	if err != nil {
		return err
	}

	if historyFile != "" {
		if err := a.calc.SaveHistory(historyFile); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(result, 'g', -1, 64))
	return nil
}

// isNotExist reports whether err is a history read failure caused by a
// missing file.
func isNotExist(err error) bool {
	return errors.Is(err, types.ErrHistoryIO) && errors.Is(err, fs.ErrNotExist)
}
