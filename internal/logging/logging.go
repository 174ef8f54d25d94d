// Package logging builds the zap logger shared by every calc component.
package logging

import (
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// levelAliases maps level names accepted in LOG_LEVEL that zap does not
// know to their zap equivalents.
var levelAliases = map[string]string{
	"warning":  "warn",
	"critical": "fatal",
	"notset":   "debug",
}

// ParseLevel converts a level name such as "debug", "INFO", or "warning"
// to a zap level.
func ParseLevel(name string) (zapcore.Level, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if alias, ok := levelAliases[key]; ok {
		key = alias
	}
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(key)); err != nil {
		return zapcore.InfoLevel, fmt.Errorf("parse log level %q: %w", name, err)
	}
	return lvl, nil
}

// New returns a console logger writing entries at or above level to w.
func New(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, err
	}
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		lvl,
	)
	return zap.New(core), nil
}
