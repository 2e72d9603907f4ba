// Package config holds runtime settings for matcher suite runs,
// read from an optional YAML file and overridden by environment
// variables.
package config

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"digital.vasic.matchers/pkg/logging"
	"github.com/fatih/color"
	"gopkg.in/yaml.v3"
)

// Environment variables consulted by ApplyEnv.
const (
	EnvVerbose       = "MATCHERS_VERBOSE"
	EnvLogFormat     = "MATCHERS_LOG_FORMAT"
	EnvLogLevel      = "MATCHERS_LOG_LEVEL"
	EnvLogFile       = "MATCHERS_LOG_FILE"
	EnvEvaluationLog = "MATCHERS_EVALUATION_LOG"
	EnvNoColor       = "MATCHERS_NO_COLOR"
)

// Log formats.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config holds runtime configuration for a suite run.
type Config struct {
	// Verbose enables debug output and per-evaluation logs.
	Verbose bool `yaml:"verbose"`

	// LogFormat is "console" or "json".
	LogFormat string `yaml:"log_format"`

	// LogLevel is the minimum level of the JSON logger.
	LogLevel string `yaml:"log_level"`

	// LogFile, when set, receives JSON log lines in addition to
	// the main output.
	LogFile string `yaml:"log_file"`

	// EvaluationLog, when set, receives one JSON line per
	// matcher evaluation.
	EvaluationLog string `yaml:"evaluation_log"`

	// NoColor disables colored console output.
	NoColor bool `yaml:"no_color"`

	// Suites are the default suite paths used when none are
	// given on the command line.
	Suites []string `yaml:"suites"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		LogFormat: FormatConsole,
		LogLevel:  "info",
	}
}

// Load reads a YAML config file over the defaults. An empty
// path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnv overrides fields from environment variables found by
// lookup. Malformed booleans are reported as errors.
func (c *Config) ApplyEnv(lookup func(key string) (string, bool)) error {
	if err := envBool(lookup, EnvVerbose, &c.Verbose); err != nil {
		return err
	}
	if err := envBool(lookup, EnvNoColor, &c.NoColor); err != nil {
		return err
	}
	envString(lookup, EnvLogFormat, &c.LogFormat)
	envString(lookup, EnvLogLevel, &c.LogLevel)
	envString(lookup, EnvLogFile, &c.LogFile)
	envString(lookup, EnvEvaluationLog, &c.EvaluationLog)
	return c.Validate()
}

func envString(lookup func(string) (string, bool), key string, dst *string) {
	if v, ok := lookup(key); ok && v != "" {
		*dst = v
	}
}

func envBool(lookup func(string) (string, bool), key string, dst *bool) error {
	v, ok := lookup(key)
	if !ok || v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	*dst = b
	return nil
}

// Validate checks enumerated fields.
func (c *Config) Validate() error {
	switch strings.ToLower(c.LogFormat) {
	case FormatConsole, FormatJSON:
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}

// ApplyColor sets the global color mode.
func (c *Config) ApplyColor() {
	if c.NoColor {
		color.NoColor = true
	}
}

// Logger builds the logger described by c, writing to w. The
// caller owns the returned logger and must Close it.
func (c *Config) Logger(w io.Writer) (logging.Logger, error) {
	level := logging.ParseLevel(strings.ToLower(c.LogLevel))
	if c.Verbose {
		level = logging.LevelDebug
	}

	if strings.ToLower(c.LogFormat) == FormatJSON {
		jl, err := logging.NewJSONLogger(logging.LoggerConfig{
			OutputPath:    c.LogFile,
			Output:        w,
			EvaluationLog: c.EvaluationLog,
			Level:         level,
			Verbose:       c.Verbose,
		})
		if err != nil {
			return nil, err
		}
		return jl, nil
	}
	primary := logging.NewConsoleLoggerTo(w, c.Verbose)

	if c.LogFile == "" && c.EvaluationLog == "" {
		return primary, nil
	}
	file, err := logging.NewJSONLogger(logging.LoggerConfig{
		OutputPath:    c.LogFile,
		Output:        io.Discard,
		EvaluationLog: c.EvaluationLog,
		Level:         level,
		Verbose:       c.Verbose,
	})
	if err != nil {
		return nil, err
	}
	return logging.NewMultiLogger(primary, file), nil
}
