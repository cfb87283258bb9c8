package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// EnvConfig names the variable that points at an explicit config file.
const EnvConfig = "LAPCLOCK_CONFIG"

// Config holds application configuration.
type Config struct {
	Tick TickConfig
	Laps LapsConfig
	UI   UIConfig
	Log  LogConfig
	Keys map[string][]string
}

// TickConfig holds the refresh cadence.
type TickConfig struct {
	Interval time.Duration
}

// LapsConfig holds lap list policy.
type LapsConfig struct {
	HighlightAfter int `mapstructure:"highlight_after"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	ShowChart bool `mapstructure:"show_chart"`
	AltScreen bool `mapstructure:"alt_screen"`
}

// LogConfig holds log file settings.
type LogConfig struct {
	Path  string
	Level string
}

func home() string {
	h, err := homedir.Dir()
	if err != nil {
		return os.Getenv("HOME")
	}
	return h
}

// DefaultPath is the config file used when neither --config nor
// LAPCLOCK_CONFIG is set.
func DefaultPath() string {
	return filepath.Join(home(), ".config", "lapclock", "config.toml")
}

// Path resolves the config file location for an optional explicit path.
func Path(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if p := os.Getenv(EnvConfig); p != "" {
		return p
	}
	return DefaultPath()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("tick.interval", 20*time.Millisecond)
	v.SetDefault("laps.highlight_after", 3)
	v.SetDefault("ui.show_chart", true)
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("log.path", filepath.Join(home(), ".local", "state", "lapclock", "lapclock.log"))
	v.SetDefault("log.level", "info")
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// Load reads configuration from file and env. Env var overrides use prefix
// LAPCLOCK_. A missing config file is not an error; a malformed one is.
func Load(explicit string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(Path(explicit))

	v.SetEnvPrefix("LAPCLOCK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.Tick.Interval <= 0 {
		return Config{}, fmt.Errorf("tick.interval must be positive, got %s", c.Tick.Interval)
	}
	if c.Laps.HighlightAfter < 0 {
		return Config{}, fmt.Errorf("laps.highlight_after must not be negative, got %d", c.Laps.HighlightAfter)
	}
	return c, nil
}

// Save writes cfg to path (or the resolved default), creating the directory
// if needed.
func Save(path string, cfg Config) error {
	path = Path(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("tick.interval", cfg.Tick.Interval.String())
	v.Set("laps.highlight_after", cfg.Laps.HighlightAfter)
	v.Set("ui.show_chart", cfg.UI.ShowChart)
	v.Set("ui.alt_screen", cfg.UI.AltScreen)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)
	for action, keys := range cfg.Keys {
		v.Set("keys."+action, keys)
	}

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
