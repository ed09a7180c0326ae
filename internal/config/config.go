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

// Config holds application configuration.
type Config struct {
	UI      UIConfig      `mapstructure:"ui"`
	Menu    MenuConfig    `mapstructure:"menu"`
	Journal JournalConfig `mapstructure:"journal"`
	Log     LogConfig     `mapstructure:"log"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Title              string `mapstructure:"title"`
	CurrencySymbol     string `mapstructure:"currency_symbol"`
	CheckoutItemSymbol string `mapstructure:"checkout_item_symbol"`
}

// MenuConfig controls the menu state model.
type MenuConfig struct {
	SelectionKey string `mapstructure:"selection_key"`
	StrictPrices bool   `mapstructure:"strict_prices"`
}

// JournalConfig holds the sqlite order journal settings.
type JournalConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Path    string `mapstructure:"path"`
}

// LogConfig holds log output settings. An empty File discards logs.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Path returns the config file location. THREECOURSE_CONFIG wins over the default.
func Path() string {
	if p := os.Getenv("THREECOURSE_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "threecourse", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix THREECOURSE_.
// A missing config file is not an error.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("ui.title", "Three-Course Meal Menu")
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("ui.checkout_item_symbol", "R")
	v.SetDefault("menu.selection_key", "identity")
	v.SetDefault("menu.strict_prices", false)
	v.SetDefault("journal.enabled", false)
	v.SetDefault("journal.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "threecourse", "orders.db"))
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	v.SetConfigFile(Path())

	v.SetEnvPrefix("THREECOURSE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, fs.ErrNotExist) {
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

// Validate rejects values the rest of the app cannot interpret.
func (c Config) Validate() error {
	switch c.Menu.SelectionKey {
	case "identity", "course":
	default:
		return fmt.Errorf("config: menu.selection_key must be identity or course, got %q", c.Menu.SelectionKey)
	}
	switch strings.ToLower(c.Log.Level) {
	case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
	default:
		return fmt.Errorf("config: unknown log.level %q", c.Log.Level)
	}
	if c.Journal.Enabled && strings.TrimSpace(c.Journal.Path) == "" {
		return fmt.Errorf("config: journal.path is required when the journal is enabled")
	}
	return nil
}

// Save writes the provided config to disk, creating the config directory if needed.
func Save(cfg Config) error {
	path := Path()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("ui.title", cfg.UI.Title)
	v.Set("ui.currency_symbol", cfg.UI.CurrencySymbol)
	v.Set("ui.checkout_item_symbol", cfg.UI.CheckoutItemSymbol)
	v.Set("menu.selection_key", cfg.Menu.SelectionKey)
	v.Set("menu.strict_prices", cfg.Menu.StrictPrices)
	v.Set("journal.enabled", cfg.Journal.Enabled)
	v.Set("journal.path", cfg.Journal.Path)
	v.Set("log.file", cfg.Log.File)
	v.Set("log.level", cfg.Log.Level)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
