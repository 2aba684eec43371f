package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds all ecolog configuration.
type Config struct {
	General    GeneralConfig      `toml:"general"`
	Appearance AppearanceConfig   `toml:"appearance"`
	Factors    map[string]float64 `toml:"factors,omitempty"`
	Baseline   Baseline           `toml:"baseline"`
}

// GeneralConfig holds general preferences.
type GeneralConfig struct {
	DefaultDays int    `toml:"default_days"`
	DBPath      string `toml:"db_path,omitempty"`
}

// AppearanceConfig holds theme settings.
type AppearanceConfig struct {
	Theme string `toml:"theme"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		General: GeneralConfig{
			DefaultDays: 30,
		},
		Appearance: AppearanceConfig{
			Theme: "flexoki-dark",
		},
		Baseline: DefaultBaseline(),
	}
}

// Dir returns the XDG-compliant config directory.
func Dir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "ecolog")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "ecolog")
}

// Path returns the full path to the config file.
func Path() string {
	return filepath.Join(Dir(), "config.toml")
}

// DataDir returns the XDG-compliant data directory.
func DataDir() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "ecolog")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".local", "share", "ecolog")
}

// DefaultDBPath returns the default database location.
func DefaultDBPath() string {
	return filepath.Join(DataDir(), "ecolog.db")
}

// Load reads the config file, returning defaults if it doesn't exist.
func Load() (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(Path())
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// Save writes the config to disk.
func Save(cfg Config) error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config dir: %w", err)
	}

	f, err := os.OpenFile(Path(), os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating config file: %w", err)
	}
	defer f.Close()

	enc := toml.NewEncoder(f)
	return enc.Encode(cfg)
}

// Exists returns true if a config file exists on disk.
func Exists() bool {
	_, err := os.Stat(Path())
	return err == nil
}

// DBPath returns the database path from env var, config, or default, in
// that order.
func DBPath(cfg Config) string {
	if p := os.Getenv("ECOLOG_DB"); p != "" {
		return p
	}
	if cfg.General.DBPath != "" {
		return cfg.General.DBPath
	}
	return DefaultDBPath()
}
