package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables that override file values.
const (
	EnvLogLevel = "PREFIXSUM_LOG_LEVEL"
	EnvCasesDir = "PREFIXSUM_CASES_DIR"
	EnvStateDir = "PREFIXSUM_STATE_DIR"
	EnvStrict   = "PREFIXSUM_STRICT"
)

// WatchConfig tunes watch mode.
type WatchConfig struct {
	IgnorePatterns []string `yaml:"ignore_patterns"`
	DebounceMs     int      `yaml:"debounce_ms"`
	MaxWaitMs      int      `yaml:"max_wait_ms"`
}

// Config holds runtime configuration for the self-test CLI.
type Config struct {
	LogLevel string      `yaml:"log_level"`
	CasesDir string      `yaml:"cases_dir"`
	StateDir string      `yaml:"state_dir"`
	Strict   bool        `yaml:"strict"`
	Watch    WatchConfig `yaml:"watch"`

	source string
}

// Default returns a baseline configuration.
func Default() Config {
	return Config{
		LogLevel: "info",
		StateDir: ".prefixsum",
		Watch: WatchConfig{
			IgnorePatterns: []string{".git", "*.swp", "*~"},
			DebounceMs:     500,
			MaxWaitMs:      5000,
		},
	}
}

// Load reads configuration from a YAML file. Missing files fall back to defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			cfg.source = path
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	cfg.source = path
	return &cfg, nil
}

// Source returns the path the configuration was loaded from.
func (c *Config) Source() string {
	return c.source
}

// ApplyEnv loads workDir/.env (if present) into the process environment and
// applies PREFIXSUM_* variables on top of the file values.
func (c *Config) ApplyEnv(workDir string) error {
	envFile := filepath.Join(workDir, ".env")
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("config: load %q: %w", envFile, err)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvCasesDir); v != "" {
		c.CasesDir = v
	}
	if v := os.Getenv(EnvStateDir); v != "" {
		c.StateDir = v
	}
	if v := os.Getenv(EnvStrict); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvStrict, v, err)
		}
		c.Strict = strict
	}
	return nil
}

// Normalize resolves relative directories against workDir.
func (c *Config) Normalize(workDir string) error {
	var err error
	if c.StateDir == "" {
		c.StateDir = Default().StateDir
	}
	if !filepath.IsAbs(c.StateDir) {
		c.StateDir, err = filepath.Abs(filepath.Join(workDir, c.StateDir))
		if err != nil {
			return fmt.Errorf("config: resolve state_dir: %w", err)
		}
	}
	if c.CasesDir != "" && !filepath.IsAbs(c.CasesDir) {
		c.CasesDir, err = filepath.Abs(filepath.Join(workDir, c.CasesDir))
		if err != nil {
			return fmt.Errorf("config: resolve cases_dir: %w", err)
		}
	}
	return nil
}

// Validate performs simple sanity checks on the configuration.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogLevel) {
	case "", "error", "notice", "info", "debug":
	default:
		return fmt.Errorf("config: unknown log_level %q", c.LogLevel)
	}
	if c.Watch.DebounceMs <= 0 {
		return errors.New("config: watch.debounce_ms must be positive")
	}
	if c.Watch.MaxWaitMs < c.Watch.DebounceMs {
		return errors.New("config: watch.max_wait_ms must not be below watch.debounce_ms")
	}
	return nil
}

// PrettyYAML renders the configuration as YAML for diagnostics.
func (c Config) PrettyYAML() string {
	out, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Sprintf("%+v", c)
	}
	return string(out)
}
