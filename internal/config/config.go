// Package config assembles a types.Config from config.yaml, the process
// environment, and command-line overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/plugcalc/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	// Keys in config.yaml.
	cfgKeyLogLevel        = "log_level"
	cfgKeyHistoryFile     = "history_file"
	cfgKeyPrompt          = "prompt"
	cfgKeyDataDir         = "data_dir"
	cfgKeyDisabledPlugins = "plugins.disabled"
)

// Env holds the settings read from the process environment.
type Env struct {
	LogLevel    string `env:"LOG_LEVEL"`
	HistoryFile string `env:"CALC_HISTORY_FILE"`
}

// Overrides holds command-line values; empty fields are ignored.
type Overrides struct {
	LogLevel    string
	HistoryFile string
}

// LoadDotEnv loads KEY=VALUE pairs from path into the environment without
// overwriting variables that are already set. A missing file is not an
// error.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ParseEnv reads Env from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse environment: %w", err)
	}
	return e, nil
}

// ReadFile reads config.yaml from configDir using Viper. A missing
// config.yaml or config directory is not an error.
func ReadFile(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, types.DefaultLogLevel)
	v.SetDefault(cfgKeyHistoryFile, types.DefaultHistoryFile)
	v.SetDefault(cfgKeyPrompt, types.DefaultPrompt)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// Load builds the effective Config. Precedence per field is
// overrides > environment > config.yaml > defaults.
func Load(configDir string, o Overrides) (types.Config, error) {
	v, err := ReadFile(configDir)
	if err != nil {
		return types.Config{}, err
	}
	e, err := ParseEnv()
	if err != nil {
		return types.Config{}, err
	}

	cfg := types.Config{
		LogLevel:        v.GetString(cfgKeyLogLevel),
		HistoryFile:     v.GetString(cfgKeyHistoryFile),
		Prompt:          v.GetString(cfgKeyPrompt),
		DataDir:         v.GetString(cfgKeyDataDir),
		DisabledPlugins: v.GetStringSlice(cfgKeyDisabledPlugins),
	}
	cfg.LogLevel = firstNonEmpty(o.LogLevel, e.LogLevel, cfg.LogLevel)
	cfg.HistoryFile = firstNonEmpty(o.HistoryFile, e.HistoryFile, cfg.HistoryFile)
	if len(cfg.DisabledPlugins) == 0 {
		cfg.DisabledPlugins = nil
	}

	if err := cfg.Validate(); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// configFile is the structure written to config.yaml by WriteDefault.
type configFile struct {
	LogLevel    string        `yaml:"log_level"`
	HistoryFile string        `yaml:"history_file"`
	Prompt      string        `yaml:"prompt"`
	DataDir     string        `yaml:"data_dir,omitempty"`
	Plugins     pluginsConfig `yaml:"plugins"`
}

type pluginsConfig struct {
	Disabled []string `yaml:"disabled"`
}

// WriteDefault creates configDir and writes a config.yaml with default
// values if none exists. It returns the config file path and whether the
// file was created.
func WriteDefault(configDir, dataDir string) (string, bool, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return "", false, fmt.Errorf("create config directory: %w", err)
	}

	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return path, false, nil
	} else if !os.IsNotExist(err) {
		return "", false, fmt.Errorf("stat config file: %w", err)
	}

	cfg := configFile{
		LogLevel:    types.DefaultLogLevel,
		HistoryFile: types.DefaultHistoryFile,
		Prompt:      types.DefaultPrompt,
		DataDir:     dataDir,
		Plugins:     pluginsConfig{Disabled: []string{}},
	}
	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return "", false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", false, fmt.Errorf("write config: %w", err)
	}
	return path, true, nil
}
