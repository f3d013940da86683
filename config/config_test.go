package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"infection/meta"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// isolate points the XDG lookup at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("XDG_CONFIG_DIRS", dir)
	xdg.Reload()
	t.Cleanup(xdg.Reload)
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("", nil)

	require.NoError(t, err)
	require.Equal(t, meta.DEFAULT_DEPTH, cfg.Depth)
	require.Equal(t, meta.DEFAULT_ANALYZER, cfg.Analyzer)
	require.Equal(t, ModeStdout, cfg.Mode)
	require.Equal(t, 0, cfg.Seat)
	require.Equal(t, meta.GO_ROUTINES, cfg.Goroutines)
	require.Equal(t, meta.MOVE_DELAY, cfg.Delay)
	require.Equal(t, zerolog.ErrorLevel, cfg.Level())
}

func TestLoadFile(t *testing.T) {
	t.Run("explicit path", func(t *testing.T) {
		isolate(t)
		path := filepath.Join(t.TempDir(), "bot.yaml")
		writeFile(t, path, "depth: 5\nanalyzer: surrounder\nmode: human\ndelay: 250ms\nseed: 99\n")

		cfg, err := Load(path, nil)

		require.NoError(t, err)
		require.Equal(t, 5, cfg.Depth)
		require.Equal(t, "surrounder", cfg.Analyzer)
		require.Equal(t, ModeHuman, cfg.Mode)
		require.Equal(t, 250*time.Millisecond, cfg.Delay)
		require.Equal(t, uint64(99), cfg.Seed)
	})

	t.Run("xdg lookup", func(t *testing.T) {
		dir := isolate(t)
		writeFile(t, filepath.Join(dir, "infection", "config.yaml"), "depth: 2\n")

		cfg, err := Load("", nil)

		require.NoError(t, err)
		require.Equal(t, 2, cfg.Depth)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		isolate(t)
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
		require.Error(t, err)
	})
}

func TestLoadPriority(t *testing.T) {
	isolate(t)
	path := filepath.Join(t.TempDir(), "bot.yaml")
	writeFile(t, path, "depth: 5\nseat: 1\n")
	t.Setenv("INFECTION_DEPTH", "4")
	t.Setenv("INFECTION_ANALYZER", "surrounder")

	cfg, err := Load(path, map[string]any{"depth": 1})

	require.NoError(t, err)
	require.Equal(t, 1, cfg.Depth, "Overrides beat the environment")
	require.Equal(t, "surrounder", cfg.Analyzer, "Environment beats defaults")
	require.Equal(t, 1, cfg.Seat, "File beats defaults")
}

func TestValidate(t *testing.T) {
	isolate(t)
	cases := map[string]map[string]any{
		"negative depth": {"depth": -1},
		"unknown mode":   {"mode": "network"},
		"bad seat":       {"seat": 2},
		"no goroutines":  {"goroutines": 0},
		"bad log level":  {"log_level": "loud"},
		"no games":       {"games": 0},
	}
	for name, overrides := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load("", overrides)

			var invalid *InvalidConfig
			require.True(t, errors.As(err, &invalid), "expected *InvalidConfig, got %v", err)
		})
	}
}
