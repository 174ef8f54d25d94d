package types

import "reflect"

// Plugin is a callable operation unit. Run receives the positional numeric
// arguments and returns a single numeric result or an error.
type Plugin interface {
	Run(args ...float64) (float64, error)
}

// PluginFunc adapts an ordinary function to the Plugin interface.
type PluginFunc func(args ...float64) (float64, error)

// Run calls f(args...).
func (f PluginFunc) Run(args ...float64) (float64, error) {
	return f(args...)
}

// HasEntryPoint reports whether p can be invoked. A nil Plugin has no entry
// point, and neither does a typed nil held in the interface: a nil
// PluginFunc, or a nil pointer, map, slice, or channel unit.
func HasEntryPoint(p Plugin) bool {
	if p == nil {
		return false
	}
	v := reflect.ValueOf(p)
	switch v.Kind() {
	case reflect.Pointer, reflect.Func, reflect.Map, reflect.Slice, reflect.Chan, reflect.Interface:
		return !v.IsNil()
	}
	return true
}
