// Package plugin discovers, registers, and invokes calculator plugins.
//
// Plugins are provided at process start through Provide, usually from an
// init function in the package that implements them. Load turns the
// provided candidates into a Registry, skipping any that fail, and an
// Executor invokes registered plugins by name without letting their
// failures escape.
package plugin

import (
	"sort"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/plugcalc/pkg/types"
)

// Registry maps plugin names to callable units.
type Registry struct {
	logger *zap.Logger
	units  map[string]types.Plugin
}

// NewRegistry returns an empty Registry. A nil logger discards output.
func NewRegistry(logger *zap.Logger) *Registry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		logger: logger,
		units:  make(map[string]types.Plugin),
	}
}

// Register stores p under name. A later registration under the same name
// replaces the earlier one.
func (r *Registry) Register(name string, p types.Plugin) {
	if _, exists := r.units[name]; exists {
		r.logger.Warn("replacing plugin", zap.String("plugin", name))
	}
	r.units[name] = p
}

// Lookup returns the unit registered under name.
func (r *Registry) Lookup(name string) (types.Plugin, bool) {
	p, ok := r.units[name]
	return p, ok
}

// Names returns the registered plugin names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.units))
	for name := range r.units {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered plugins.
func (r *Registry) Len() int {
	return len(r.units)
}
