package types

import "errors"

// Arithmetic errors.
var (
	ErrDivisionByZero   = errors.New("division by zero")
	ErrUnknownOperation = errors.New("unknown operation")
)

// History errors. ErrHistoryIO wraps the underlying filesystem or driver
// error; ErrInvalidFormat is returned when a source lacks required columns
// or holds values that cannot be parsed.
var (
	ErrHistoryIO     = errors.New("history I/O error")
	ErrInvalidFormat = errors.New("invalid history format")
)

// Plugin errors. The executor logs these; they never reach its caller.
var (
	ErrPluginNotFound  = errors.New("plugin not found")
	ErrPluginInterface = errors.New("plugin has no run entry point")
	ErrPluginExecution = errors.New("plugin execution failed")
)

// ErrInvalidCommand is returned by the shell parser for malformed input.
var ErrInvalidCommand = errors.New("invalid command")
