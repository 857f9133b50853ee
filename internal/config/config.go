package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Menu sources.
const (
	MenuSourceBuiltin = "builtin"
	MenuSourceSQLite  = "sqlite"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig `mapstructure:"database"`
	Menu     MenuConfig     `mapstructure:"menu"`
	Delivery DeliveryConfig `mapstructure:"delivery"`
	UI       UIConfig       `mapstructure:"ui"`
	Log      LogConfig      `mapstructure:"log"`
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string `mapstructure:"path"`
}

// MenuConfig selects where restaurants are read from.
type MenuConfig struct {
	Source string `mapstructure:"source"`
}

// DeliveryConfig holds the offered delivery slots.
type DeliveryConfig struct {
	Slots []string `mapstructure:"slots"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
	Locale         string `mapstructure:"locale"`
}

// LogConfig holds log file settings. An empty path disables logging.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// DefaultSlots are the delivery times offered when none are configured.
var DefaultSlots = []string{
	"Mon Sep 18 6:00 PM",
	"Mon Sep 18 7:00 PM",
	"Mon Sep 18 8:00 PM",
	"Mon Sep 18 9:00 PM",
}

// DefaultPath is where Load looks when neither an explicit path nor
// BUFFBITES_CONFIG is set.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "buffbites", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix
// BUFFBITES_. An explicit path wins over BUFFBITES_CONFIG. A missing file is
// not an error; a malformed one is.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "buffbites", "menu.db"))
	v.SetDefault("menu.source", MenuSourceBuiltin)
	v.SetDefault("delivery.slots", DefaultSlots)
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.locale", "en")
	v.SetDefault("log.path", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("BUFFBITES_CONFIG")
	}
	explicit := path != ""
	if explicit {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Dir(DefaultPath()))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("BUFFBITES")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		switch {
		case errors.As(err, &notFound):
		case explicit && errors.Is(err, fs.ErrNotExist):
		default:
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the values the app cannot run without.
func (c Config) Validate() error {
	switch c.Menu.Source {
	case MenuSourceBuiltin, MenuSourceSQLite:
	default:
		return fmt.Errorf("config: unknown menu.source %q", c.Menu.Source)
	}
	if len(c.Delivery.Slots) == 0 {
		return fmt.Errorf("config: delivery.slots is empty")
	}
	if c.Menu.Source == MenuSourceSQLite && strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("config: database.path is required for the sqlite menu")
	}
	return nil
}

// ResolvePath returns the file Save writes: path, else BUFFBITES_CONFIG,
// else DefaultPath.
func ResolvePath(path string) string {
	if path == "" {
		path = os.Getenv("BUFFBITES_CONFIG")
	}
	if path == "" {
		path = DefaultPath()
	}
	return path
}

// Save writes the provided config to path, creating the directory if needed.
func Save(cfg Config, path string) error {
	path = ResolvePath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("database.path", cfg.Database.Path)
	v.Set("menu.source", cfg.Menu.Source)
	v.Set("delivery.slots", cfg.Delivery.Slots)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("log.path", cfg.Log.Path)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
