package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Build info (injected at build time via ldflags)
var (
	Version   = "0.4.2"
	Commit    = "unknown"
	BuildDate = "unknown"
)

const (
	AppName = "sysfetch"

	// File names under the user config and cache directories
	ConfigFileName = "config.yaml"
	CacheFileName  = "cache.yaml"

	// Fallbacks used when no user directory can be determined
	FallbackConfigPath = "sysfetch.yaml"
	FallbackCachePath  = "cache.yaml"
)

// Config is the on-disk display configuration
type Config struct {
	Display DisplayConfig `yaml:"display"`
}

// DisplayConfig toggles individual info lines. The yaml keys are the
// names users write in config.yaml.
type DisplayConfig struct {
	Identifier   bool `yaml:"identifier"`
	OS           bool `yaml:"os"`
	Kernel       bool `yaml:"kernel"`
	CPU          bool `yaml:"cpu"`
	CPUFrequency bool `yaml:"cpu_frequency"`
	GPU          bool `yaml:"gpu"`
	Screen       bool `yaml:"screen"`
	RAM          bool `yaml:"ram"`
	Swap         bool `yaml:"swap"`
	Uptime       bool `yaml:"uptime"`
	Battery      bool `yaml:"battery"`
	PowerDraw    bool `yaml:"power_draw"`
	Disk         bool `yaml:"disk"`
}

// Default returns the configuration used when the file is missing or corrupt
func Default() *Config {
	return &Config{Display: DisplayConfig{
		Identifier: true,
		OS:         true,
		Kernel:     true,
		CPU:        true,
		GPU:        true,
		RAM:        true,
		Swap:       true,
		Uptime:     true,
		Battery:    true,
		Disk:       true,
	}}
}

// All returns a configuration with every line enabled
func All() *Config {
	return &Config{Display: DisplayConfig{
		Identifier:   true,
		OS:           true,
		Kernel:       true,
		CPU:          true,
		CPUFrequency: true,
		GPU:          true,
		Screen:       true,
		RAM:          true,
		Swap:         true,
		Uptime:       true,
		Battery:      true,
		PowerDraw:    true,
		Disk:         true,
	}}
}

// DefaultPath returns the config file location, falling back to the
// current directory when the platform has no config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil || dir == "" {
		return FallbackConfigPath
	}
	return filepath.Join(dir, AppName, ConfigFileName)
}

// Load reads the config at path. A missing file is created with defaults
// and an unparsable one is left alone; both cases return the defaults.
func Load(path string, log *logrus.Entry) *Config {
	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.WithError(err).Warn("Failed to read config file, using defaults")
			return Default()
		}

		cfg := Default()
		if err := Save(path, cfg); err != nil {
			log.WithError(err).WithField("path", path).Warn("Could not create config file, using defaults in memory")
			return cfg
		}
		fmt.Fprintf(os.Stderr, "Created default config file at %s\n", path)
		return cfg
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		log.WithError(err).WithField("path", path).Warn("Failed to parse config file, using defaults")
		return Default()
	}

	return cfg
}

// Save writes cfg to path, creating parent directories as needed
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Reset overwrites the config at path with the defaults
func Reset(path string) error {
	return Save(path, Default())
}

// CacheDir returns the directory holding the GPU cache, or "" when the
// platform has none. SYSFETCH_CACHE_DIR overrides it.
func CacheDir() string {
	if dir := os.Getenv("SYSFETCH_CACHE_DIR"); dir != "" {
		return dir
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName)
}

// IsDebugMode checks if debug mode is enabled
func IsDebugMode() bool {
	debug := os.Getenv("SYSFETCH_DEBUG")
	return debug == "true" || debug == "1"
}
