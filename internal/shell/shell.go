// Package shell implements the interactive calc command loop.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/plugcalc/internal/calculator"
	"github.com/mesh-intelligence/plugcalc/pkg/types"
)

var helpText = `Commands:
  <a> <op> <b>              arithmetic, op is one of ` + operatorList() + `
  plugin <name> <args...>   run a plugin
  plugins                   list available plugins
  history                   show history
  save [file]               save history (csv, jsonl, or .db by extension)
  load [file]               load history, replacing the current one
  clear                     clear history
  help                      show this help
  exit                      leave the shell`

// operatorList returns the infix operators in display order.
func operatorList() string {
	syms := make([]string, len(types.Operations))
	for i, op := range types.Operations {
		syms[i] = op.Symbol()
	}
	return strings.Join(syms, " ")
}

// LineReader supplies input lines. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
	Close() error
}

// Shell reads commands and dispatches them to a Calculator.
type Shell struct {
	calc        *calculator.Calculator
	out         io.Writer
	logger      *zap.Logger
	historyFile string
}

// New returns a Shell writing results to out. historyFile is used by save
// and load when no file is given.
func New(calc *calculator.Calculator, out io.Writer, logger *zap.Logger, historyFile string) *Shell {
	if logger == nil {
		logger = zap.NewNop()
	}
	if historyFile == "" {
		historyFile = types.DefaultHistoryFile
	}
	return &Shell{
		calc:        calc,
		out:         out,
		logger:      logger,
		historyFile: historyFile,
	}
}

// Run reads lines from r until exit, end of input, or an interrupt on an
// empty line. It closes r before returning.
func (s *Shell) Run(r LineReader) error {
	defer r.Close()
	s.logger.Info("starting shell")

	for {
		line, err := r.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			if strings.TrimSpace(line) == "" {
				s.logger.Info("exiting shell")
				return nil
			}
			continue
		case errors.Is(err, io.EOF):
			s.logger.Info("exiting shell")
			return nil
		case err != nil:
			return fmt.Errorf("read input: %w", err)
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		if quit := s.Exec(line); quit {
			s.logger.Info("exiting shell")
			return nil
		}
	}
}

// Exec runs a single command line and reports whether the shell should
// stop. Errors are printed and never end the loop.
func (s *Shell) Exec(line string) bool {
	cmd, err := Parse(line)
	if err != nil {
		s.logger.Debug("rejected command", zap.String("input", line), zap.Error(err))
		s.printError(err)
		return false
	}

	switch {
	case cmd.Exit:
		return true
	case cmd.History:
		fmt.Fprintln(s.out, s.calc.ShowHistory())
	case cmd.Clear:
		s.calc.ClearHistory()
		fmt.Fprintln(s.out, "History cleared")
	case cmd.Help:
		fmt.Fprintln(s.out, helpText)
	case cmd.Plugins:
		s.listPlugins()
	case cmd.File != nil:
		s.file(cmd.File)
	case cmd.Plugin != nil:
		s.plugin(cmd.Plugin)
	case cmd.Arith != nil:
		s.arith(cmd.Arith)
	}
	return false
}

func (s *Shell) listPlugins() {
	names := s.calc.Plugins()
	if len(names) == 0 {
		fmt.Fprintln(s.out, "No plugins loaded")
		return
	}
	fmt.Fprintln(s.out, strings.Join(names, "\n"))
}

func (s *Shell) file(fc *FileCmd) {
	path := fc.Path()
	if path == "" {
		path = s.historyFile
	}

	if fc.Verb == "load" {
		if err := s.calc.LoadHistory(path); err != nil {
			s.printError(err)
			return
		}
		fmt.Fprintf(s.out, "History loaded from %s\n", path)
		return
	}
	if err := s.calc.SaveHistory(path); err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintf(s.out, "History saved to %s\n", path)
}

// plugin prints the result when the plugin succeeds. Failures are already
// logged by the executor and print nothing.
func (s *Shell) plugin(pc *PluginCall) {
	result, ok := s.calc.ExecutePlugin(pc.Name, pc.Args...)
	if !ok {
		return
	}
	fmt.Fprintf(s.out, "Plugin result: %s\n", formatNumber(result))
}

func (s *Shell) arith(a *Arith) {
	op, err := a.Operation()
	if err != nil {
		s.printError(err)
		return
	}
	result, err := s.calc.Apply(op, a.Left, a.Right)
	if err != nil {
		s.printError(err)
		return
	}
	fmt.Fprintf(s.out, "Result: %s\n", formatNumber(result))
}

func (s *Shell) printError(err error) {
	fmt.Fprintf(s.out, "Error: %v\n", err)
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
