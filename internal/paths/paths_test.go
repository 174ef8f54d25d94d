package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakePlatform pins the platform lookups for the duration of a test.
func fakePlatform(t *testing.T, platform, home, config string) {
	t.Helper()
	savedOS, savedHome, savedConfig := goos, userHomeDir, userConfigDir
	t.Cleanup(func() { goos, userHomeDir, userConfigDir = savedOS, savedHome, savedConfig })

	goos = platform
	userHomeDir = func() (string, error) { return home, nil }
	userConfigDir = func() (string, error) { return config, nil }
}

func TestDefaultDirs(t *testing.T) {
	tests := []struct {
		name       string
		goos       string
		xdgConfig  string
		xdgData    string
		wantConfig string
		wantData   string
	}{
		{
			name:       "linux with xdg",
			goos:       "linux",
			xdgConfig:  "/xdg/config",
			xdgData:    "/xdg/data",
			wantConfig: "/xdg/config/plugcalc",
			wantData:   "/xdg/data/plugcalc",
		},
		{
			name:       "linux without xdg",
			goos:       "linux",
			wantConfig: "/home/u/.config/plugcalc",
			wantData:   "/home/u/.local/share/plugcalc",
		},
		{
			name:       "darwin shares one tree",
			goos:       "darwin",
			xdgConfig:  "/ignored",
			wantConfig: "/Users/u/Library/Application Support/plugcalc",
			wantData:   "/Users/u/Library/Application Support/plugcalc",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fakePlatform(t, tt.goos, "/home/u", "/Users/u/Library/Application Support")
			t.Setenv("XDG_CONFIG_HOME", tt.xdgConfig)
			t.Setenv("XDG_DATA_HOME", tt.xdgData)

			cfg, err := DefaultConfigDir()
			require.NoError(t, err)
			assert.Equal(t, tt.wantConfig, cfg)

			data, err := DefaultDataDir()
			require.NoError(t, err)
			assert.Equal(t, tt.wantData, data)
		})
	}
}

func TestDefaultDirLookupFailure(t *testing.T) {
	fakePlatform(t, "linux", "", "")
	userHomeDir = func() (string, error) { return "", errors.New("no home") }
	t.Setenv("XDG_DATA_HOME", "")

	_, err := DefaultDataDir()
	assert.Error(t, err)
}

func TestConfigDir(t *testing.T) {
	t.Setenv(EnvConfigDir, "/env/config")

	got, err := ConfigDir("/flag/config")
	require.NoError(t, err)
	assert.Equal(t, "/flag/config", got)

	got, err = ConfigDir("")
	require.NoError(t, err)
	assert.Equal(t, "/env/config", got)

	got, err = ConfigDir("rel")
	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(got))
}

func TestDataDir(t *testing.T) {
	t.Setenv(EnvDataDir, "/env/data")

	got, err := DataDir("/flag/data", "/cfg", "/configured")
	require.NoError(t, err)
	assert.Equal(t, "/flag/data", got)

	got, err = DataDir("", "/cfg", "/configured")
	require.NoError(t, err)
	assert.Equal(t, "/configured", got)

	got, err = DataDir("", "/cfg", "../data")
	require.NoError(t, err)
	assert.Equal(t, "/data", got, "relative config value resolves against the config dir")

	got, err = DataDir("", "/cfg", "")
	require.NoError(t, err)
	assert.Equal(t, "/env/data", got)
}

func TestDataDirFallsBackToDefault(t *testing.T) {
	fakePlatform(t, "linux", "/home/u", "")
	t.Setenv(EnvDataDir, "")
	t.Setenv("XDG_DATA_HOME", "")

	got, err := DataDir("", "/cfg", "")
	require.NoError(t, err)
	assert.Equal(t, "/home/u/.local/share/plugcalc", got)
}

func TestShellHistoryPath(t *testing.T) {
	dataDir := filepath.Join(t.TempDir(), "nested", "data")

	got, err := ShellHistoryPath(dataDir)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dataDir, "shell_history"), got)

	info, err := os.Stat(dataDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	_, err = ShellHistoryPath("")
	assert.Error(t, err)
}

func TestShellHistoryPathUnwritable(t *testing.T) {
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, nil, 0o644))

	_, err := ShellHistoryPath(filepath.Join(file, "data"))
	assert.Error(t, err)
}
