// Package calculator ties the arithmetic operations, the history log, and
// the plugin executor together behind one type.
package calculator

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/plugcalc/internal/history"
	"github.com/mesh-intelligence/plugcalc/internal/plugin"
	"github.com/mesh-intelligence/plugcalc/pkg/types"
)

// Calculator performs arithmetic, records each successful operation in its
// history, and runs plugins by name. It is not safe for concurrent use.
type Calculator struct {
	logger   *zap.Logger
	history  *history.Log
	registry *plugin.Registry
	plugins  *plugin.Executor
}

// New returns a Calculator with an empty history that runs plugins from
// reg. A nil reg yields a calculator without plugins; a nil logger
// discards output.
func New(reg *plugin.Registry, logger *zap.Logger) *Calculator {
	if logger == nil {
		logger = zap.NewNop()
	}
	if reg == nil {
		reg = plugin.NewRegistry(logger)
	}
	return &Calculator{
		logger:   logger,
		history:  history.NewLog(),
		registry: reg,
		plugins:  plugin.NewExecutor(reg, logger),
	}
}

// Add returns a+b.
func (c *Calculator) Add(a, b float64) float64 {
	return c.record(types.OpAdd, a, b, a+b)
}

// Subtract returns a-b.
func (c *Calculator) Subtract(a, b float64) float64 {
	return c.record(types.OpSubtract, a, b, a-b)
}

// Multiply returns a*b.
func (c *Calculator) Multiply(a, b float64) float64 {
	return c.record(types.OpMultiply, a, b, a*b)
}

// Divide returns a/b. A zero divisor returns ErrDivisionByZero and leaves
// the history untouched.
func (c *Calculator) Divide(a, b float64) (float64, error) {
	if b == 0 {
		c.logger.Error("division by zero", zap.Float64("operand1", a))
		return 0, fmt.Errorf("cannot divide %v: %w", a, types.ErrDivisionByZero)
	}
	return c.record(types.OpDivide, a, b, a/b), nil
}

// Apply performs op on a and b.
func (c *Calculator) Apply(op types.Operation, a, b float64) (float64, error) {
	switch op {
	case types.OpAdd:
		return c.Add(a, b), nil
	case types.OpSubtract:
		return c.Subtract(a, b), nil
	case types.OpMultiply:
		return c.Multiply(a, b), nil
	case types.OpDivide:
		return c.Divide(a, b)
	default:
		return 0, fmt.Errorf("%w: %q", types.ErrUnknownOperation, op)
	}
}

func (c *Calculator) record(op types.Operation, a, b, result float64) float64 {
	c.history.Record(op, a, b, result)
	c.logger.Debug("performed operation",
		zap.String("operation", string(op)),
		zap.Float64("operand1", a),
		zap.Float64("operand2", b),
		zap.Float64("result", result))
	return result
}

// History returns the calculator's history log.
func (c *Calculator) History() *history.Log {
	return c.history
}

// SaveHistory exports the history to path.
func (c *Calculator) SaveHistory(path string) error {
	if err := c.history.Export(path); err != nil {
		return err
	}
	c.logger.Info("history saved", zap.String("file", path), zap.Int("records", c.history.Len()))
	return nil
}

// LoadHistory replaces the history with the records stored at path.
func (c *Calculator) LoadHistory(path string) error {
	if err := c.history.Import(path); err != nil {
		return err
	}
	c.logger.Info("history loaded", zap.String("file", path), zap.Int("records", c.history.Len()))
	return nil
}

// ClearHistory empties the history.
func (c *Calculator) ClearHistory() {
	c.history.Clear()
	c.logger.Info("history cleared")
}

// ShowHistory renders the history as a table.
func (c *Calculator) ShowHistory() string {
	return c.history.Render()
}

// ExecutePlugin runs the named plugin. The boolean is false when the
// plugin is unknown or fails; details are logged, never returned.
func (c *Calculator) ExecutePlugin(name string, args ...float64) (float64, bool) {
	return c.plugins.Execute(name, args...)
}

// Plugins returns the names of the available plugins, sorted.
func (c *Calculator) Plugins() []string {
	return c.registry.Names()
}
