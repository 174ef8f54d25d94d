package types

import (
	"errors"
	"strings"
)

// Config holds runtime settings assembled from flags, environment, and
// config.yaml.
type Config struct {
	LogLevel        string   `json:"log_level" yaml:"log_level"`
	HistoryFile     string   `json:"history_file" yaml:"history_file"`
	Prompt          string   `json:"prompt" yaml:"prompt"`
	DataDir         string   `json:"data_dir" yaml:"data_dir"`
	DisabledPlugins []string `json:"disabled_plugins" yaml:"disabled_plugins"`
}

// Defaults applied when no other source sets a value.
const (
	DefaultLogLevel    = "info"
	DefaultHistoryFile = "history.csv"
	DefaultPrompt      = "calc> "
)

// Config validation errors.
var (
	ErrLogLevelEmpty    = errors.New("log level must not be empty")
	ErrHistoryFileEmpty = errors.New("history file must not be empty")
)

// DefaultConfig returns a Config populated with the package defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:    DefaultLogLevel,
		HistoryFile: DefaultHistoryFile,
		Prompt:      DefaultPrompt,
	}
}

// Validate checks that the Config is well-formed.
func (c Config) Validate() error {
	if strings.TrimSpace(c.LogLevel) == "" {
		return ErrLogLevelEmpty
	}
	if strings.TrimSpace(c.HistoryFile) == "" {
		return ErrHistoryFileEmpty
	}
	return nil
}
