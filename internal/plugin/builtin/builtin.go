// Package builtin provides the stock calculator plugins. Importing the
// package registers sqrt, power, log, and square with plugin.Provide.
package builtin

import (
	"errors"
	"fmt"

	"github.com/mesh-intelligence/plugcalc/internal/plugin"
	"github.com/mesh-intelligence/plugcalc/pkg/types"
)

// Errors returned by built-in plugins.
var (
	ErrArgCount   = errors.New("wrong number of arguments")
	ErrMathDomain = errors.New("math domain error")
)

// provide registers a stateless function under id.
func provide(id string, fn func(args ...float64) (float64, error)) {
	plugin.Provide(id, func() (types.Plugin, error) {
		return types.PluginFunc(fn), nil
	})
}

// wantArgs checks that args has between lo and hi elements.
func wantArgs(name string, args []float64, lo, hi int) error {
	if len(args) < lo || len(args) > hi {
		if lo == hi {
			return fmt.Errorf("%w: %s takes %d, got %d", ErrArgCount, name, lo, len(args))
		}
		return fmt.Errorf("%w: %s takes %d to %d, got %d", ErrArgCount, name, lo, hi, len(args))
	}
	return nil
}
