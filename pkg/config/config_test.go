package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"digital.vasic.matchers/pkg/logging"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mapLookup(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NotNil(t, cfg)

	assert.Equal(t, FormatConsole, cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Verbose)
	assert.False(t, cfg.NoColor)
	assert.Empty(t, cfg.Suites)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_EmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "matchers.yaml")
	content := "verbose: true\nlog_format: json\nsuites:\n  - testdata\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Verbose)
	assert.Equal(t, FormatJSON, cfg.LogFormat)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, []string{"testdata"}, cfg.Suites)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		content string
	}{
		{"malformed", "verbose: [\n"},
		{"bad format", "log_format: xml\n"},
		{"bad level", "log_level: loud\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(dir, tt.name+".yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestApplyEnv(t *testing.T) {
	cfg := Default()
	err := cfg.ApplyEnv(mapLookup(map[string]string{
		EnvVerbose:       "1",
		EnvNoColor:       "true",
		EnvLogFormat:     "json",
		EnvLogLevel:      "debug",
		EnvLogFile:       "/tmp/m.log",
		EnvEvaluationLog: "",
	}))
	require.NoError(t, err)

	assert.True(t, cfg.Verbose)
	assert.True(t, cfg.NoColor)
	assert.Equal(t, FormatJSON, cfg.LogFormat)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/m.log", cfg.LogFile)
	assert.Empty(t, cfg.EvaluationLog)
}

func TestApplyEnv_Errors(t *testing.T) {
	cfg := Default()
	assert.Error(t, cfg.ApplyEnv(mapLookup(map[string]string{EnvVerbose: "maybe"})))

	cfg = Default()
	assert.Error(t, cfg.ApplyEnv(mapLookup(map[string]string{EnvLogFormat: "xml"})))
}

func TestApplyColor(t *testing.T) {
	prev := color.NoColor
	t.Cleanup(func() { color.NoColor = prev })

	color.NoColor = false
	cfg := Default()
	cfg.ApplyColor()
	assert.False(t, color.NoColor)

	cfg.NoColor = true
	cfg.ApplyColor()
	assert.True(t, color.NoColor)
}

func TestLogger_Console(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()

	logger, err := cfg.Logger(&buf)
	require.NoError(t, err)
	defer logger.Close()

	_, ok := logger.(*logging.ConsoleLogger)
	assert.True(t, ok)
	logger.Info("hello")
	assert.Contains(t, buf.String(), "hello")
}

func TestLogger_JSON(t *testing.T) {
	var buf bytes.Buffer
	cfg := Default()
	cfg.LogFormat = FormatJSON

	logger, err := cfg.Logger(&buf)
	require.NoError(t, err)
	defer logger.Close()

	logger.Info("hello")
	assert.True(t, strings.HasPrefix(buf.String(), "{"))
	assert.Contains(t, buf.String(), `"message":"hello"`)
}

func TestLogger_ConsoleWithFile(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	cfg := Default()
	cfg.LogFile = filepath.Join(dir, "logs", "run.log")

	logger, err := cfg.Logger(&buf)
	require.NoError(t, err)

	_, ok := logger.(*logging.MultiLogger)
	assert.True(t, ok)
	logger.Info("to both")
	require.NoError(t, logger.Close())

	data, err := os.ReadFile(cfg.LogFile)
	require.NoError(t, err)
	assert.Contains(t, string(data), "to both")
	assert.Contains(t, buf.String(), "to both")
}
