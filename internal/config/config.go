// Package config handles configuration loading from YAML or TOML files, a
// .env file and environment variables.
// Configuration precedence: CLI flags > environment > .env > config file > defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// dotEnvFile is read from the working directory before env overrides.
var dotEnvFile = ".env"

// Config holds all zen configuration.
type Config struct {
	// Platform selects the autostart adapter: "auto" (running OS),
	// "linux", "windows", or anything else for the unsupported adapter.
	Platform string        `yaml:"platform" toml:"platform"`
	Paths    PathsConfig   `yaml:"paths" toml:"paths"`
	Logging  LoggingConfig `yaml:"logging" toml:"logging"`
}

// PathsConfig overrides resolved storage locations.
type PathsConfig struct {
	AutostartDir string `yaml:"autostart_dir" toml:"autostart_dir"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level string `yaml:"level" toml:"level"`
	File  string `yaml:"file" toml:"file"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Platform: "auto",
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// CLIOverrides holds values from command-line flags.
// Empty strings are treated as "not set" and skipped.
type CLIOverrides struct {
	Platform     string
	AutostartDir string
	LogLevel     string
}

// Locate searches standard config file paths and returns the first one found.
// Returns empty string if no config file exists.
func Locate() string {
	for _, p := range configSearchPaths() {
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// LoadLayered loads configuration with the full precedence chain.
//
// An optional configPath argument controls file discovery:
//   - omitted        → auto-discover via Locate()
//   - explicit value  → use that path ("" means no config file)
//
// A missing config file is not an error; an unparseable one is.
func LoadLayered(cli CLIOverrides, configPath ...string) (*Config, error) {
	cfg := DefaultConfig()

	var filePath string
	if len(configPath) > 0 {
		filePath = configPath[0]
	} else {
		filePath = Locate()
	}
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		switch {
		case err == nil:
			if err := decode(filePath, data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
			}
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}

	// .env never overrides variables that are already set.
	if err := godotenv.Load(dotEnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("loading %s: %w", dotEnvFile, err)
	}
	applyEnvOverrides(cfg)

	if cli.Platform != "" {
		cfg.Platform = cli.Platform
	}
	if cli.AutostartDir != "" {
		cfg.Paths.AutostartDir = cli.AutostartDir
	}
	if cli.LogLevel != "" {
		cfg.Logging.Level = cli.LogLevel
	}

	return cfg, nil
}

// WriteConfig serializes the config to path, as TOML for a .toml extension
// and YAML otherwise. Creates parent directories if needed.
func WriteConfig(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	var (
		data []byte
		err  error
	)
	if isTOML(path) {
		data, err = toml.Marshal(cfg)
	} else {
		data, err = yaml.Marshal(cfg)
	}
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

func decode(path string, data []byte, cfg *Config) error {
	if isTOML(path) {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

func isTOML(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".toml")
}

// applyEnvOverrides applies environment variable overrides to the configuration.
func applyEnvOverrides(cfg *Config) {
	if p := os.Getenv("ZEN_PLATFORM"); p != "" {
		cfg.Platform = p
	}
	if dir := os.Getenv("ZEN_AUTOSTART_DIR"); dir != "" {
		cfg.Paths.AutostartDir = dir
	}
	if level := os.Getenv("ZEN_LOG_LEVEL"); level != "" {
		cfg.Logging.Level = level
	}
	if file := os.Getenv("ZEN_LOG_FILE"); file != "" {
		cfg.Logging.File = file
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q (expected debug, info, warn or error)", c.Logging.Level)
	}
	if c.Paths.AutostartDir != "" && !filepath.IsAbs(c.Paths.AutostartDir) {
		return fmt.Errorf("autostart_dir must be an absolute path (got: %s)", c.Paths.AutostartDir)
	}
	return nil
}
