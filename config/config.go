package config

import (
	"fmt"
	"time"

	"infection/meta"

	"github.com/adrg/xdg"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

var (
	cfgFile   = "infection/config.yaml"
	envPrefix = "INFECTION"
)

const (
	ModeStdout = "stdout"
	ModeHuman  = "human"
)

type InvalidConfig struct {
	err string
}

func (e *InvalidConfig) Error() string {
	return fmt.Sprintf("Config error: %s", e.err)
}

type Config struct {
	Depth      int           `mapstructure:"depth"`
	Analyzer   string        `mapstructure:"analyzer"`
	Mode       string        `mapstructure:"mode"`
	Seat       int           `mapstructure:"seat"` // 0: bot moves first, 1: bot moves second
	Goroutines int           `mapstructure:"goroutines"`
	Seed       uint64        `mapstructure:"seed"` // 0 picks a random seed
	Delay      time.Duration `mapstructure:"delay"`
	LogLevel   string        `mapstructure:"log_level"`
	Experiment string        `mapstructure:"experiment"`
	OutputDir  string        `mapstructure:"output_dir"`
	Games      int           `mapstructure:"games"`
}

func defaults(v *viper.Viper) {
	v.SetDefault("depth", meta.DEFAULT_DEPTH)
	v.SetDefault("analyzer", meta.DEFAULT_ANALYZER)
	v.SetDefault("mode", ModeStdout)
	v.SetDefault("seat", 0)
	v.SetDefault("goroutines", meta.GO_ROUTINES)
	v.SetDefault("seed", 0)
	v.SetDefault("delay", meta.MOVE_DELAY)
	v.SetDefault("log_level", zerolog.LevelErrorValue)
	v.SetDefault("experiment", "")
	v.SetDefault("output_dir", "experiments")
	v.SetDefault("games", meta.NUM_GAMES)
}

// Load merges, from lowest to highest priority: defaults, the config file,
// INFECTION_* environment variables and overrides (usually command line
// flags). An empty path looks up infection/config.yaml in the XDG config
// directories and skips the file if there is none.
func Load(path string, overrides map[string]any) (*Config, error) {
	v := viper.New()
	defaults(v)
	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if path == "" {
		if found, err := xdg.SearchConfigFile(cfgFile); err == nil {
			path = found
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}

	for key, value := range overrides {
		v.Set(key, value)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.Depth < 0 {
		return &InvalidConfig{fmt.Sprintf("depth must not be negative, got %d", c.Depth)}
	}
	if c.Mode != ModeStdout && c.Mode != ModeHuman {
		return &InvalidConfig{fmt.Sprintf("unknown mode %q", c.Mode)}
	}
	if c.Seat != 0 && c.Seat != 1 {
		return &InvalidConfig{fmt.Sprintf("seat must be 0 or 1, got %d", c.Seat)}
	}
	if c.Goroutines < 1 {
		return &InvalidConfig{fmt.Sprintf("goroutines must be positive, got %d", c.Goroutines)}
	}
	if c.Delay < 0 {
		return &InvalidConfig{fmt.Sprintf("delay must not be negative, got %s", c.Delay)}
	}
	if c.Games < 1 {
		return &InvalidConfig{fmt.Sprintf("games must be positive, got %d", c.Games)}
	}
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return &InvalidConfig{fmt.Sprintf("invalid log level %q", c.LogLevel)}
	}
	return nil
}

// Level returns the configured zerolog level. Validate has checked it.
func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.ErrorLevel
	}
	return level
}
