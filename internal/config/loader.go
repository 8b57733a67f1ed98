package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const (
	// ConfigFileName is the name of the config file without extension
	ConfigFileName = "transgate"
	// ConfigFileExt is the config file extension
	ConfigFileExt = "yaml"
)

// Loader handles configuration loading
type Loader struct {
	dir string
	v   *viper.Viper
}

// NewLoader creates a new config loader reading from the given directory
func NewLoader(dir string) *Loader {
	return &Loader{
		dir: dir,
		v:   viper.New(),
	}
}

// ConfigPath returns the full path to the config file
func (l *Loader) ConfigPath() string {
	return filepath.Join(l.dir, ConfigFileName+"."+ConfigFileExt)
}

// Exists returns true if a config file exists at the expected location
func (l *Loader) Exists() bool {
	_, err := os.Stat(l.ConfigPath())
	return err == nil
}

// Load reads the configuration from disk, layered over the defaults so a
// partial file only overrides what it names.
func (l *Loader) Load() (*Config, error) {
	if !l.Exists() {
		return nil, fmt.Errorf("config file not found at %s", l.ConfigPath())
	}

	// Fresh viper instance per load to avoid stale state
	l.v = viper.New()
	l.v.SetConfigFile(l.ConfigPath())
	l.v.SetConfigType(ConfigFileExt)

	if err := l.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads the configuration from disk, or returns default config if not found
func (l *Loader) LoadOrDefault() (*Config, error) {
	if !l.Exists() {
		return Default(), nil
	}
	return l.Load()
}
