package plugin

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/plugcalc/pkg/types"
)

// Executor invokes registered plugins by name. Failures are logged and
// reported to the caller only as an absent result.
type Executor struct {
	registry *Registry
	logger   *zap.Logger
}

// NewExecutor returns an Executor over reg. A nil logger discards output.
func NewExecutor(reg *Registry, logger *zap.Logger) *Executor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Executor{registry: reg, logger: logger}
}

// Execute runs the plugin registered under name with args. It returns the
// result and true on success. On any failure (unknown name, missing entry
// point, error or panic inside the plugin) it logs the failure and returns
// 0 and false.
func (e *Executor) Execute(name string, args ...float64) (float64, bool) {
	result, err := e.invoke(name, args)
	if err != nil {
		e.logger.Error("plugin failed",
			zap.String("plugin", name),
			zap.Float64s("args", args),
			zap.Error(err))
		return 0, false
	}
	e.logger.Debug("plugin executed",
		zap.String("plugin", name),
		zap.Float64s("args", args),
		zap.Float64("result", result))
	return result, true
}

// invoke looks up and calls a plugin, classifying any failure as
// ErrPluginNotFound, ErrPluginInterface, or ErrPluginExecution.
func (e *Executor) invoke(name string, args []float64) (result float64, err error) {
	unit, ok := e.registry.Lookup(name)
	if !ok {
		return 0, fmt.Errorf("%w: %s", types.ErrPluginNotFound, name)
	}
	if !types.HasEntryPoint(unit) {
		return 0, fmt.Errorf("%w: %s", types.ErrPluginInterface, name)
	}

	defer func() {
		if r := recover(); r != nil {
			result = 0
			err = fmt.Errorf("%w: %s: panic: %v", types.ErrPluginExecution, name, r)
		}
	}()
	result, err = unit.Run(args...)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", types.ErrPluginExecution, name, err)
	}
	return result, nil
}
