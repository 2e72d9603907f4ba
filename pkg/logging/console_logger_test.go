package logging

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func plainConsole(t *testing.T, verbose bool) (*ConsoleLogger, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	return NewConsoleLoggerTo(&buf, verbose), &buf
}

func TestConsoleLogger_Levels(t *testing.T) {
	logger, buf := plainConsole(t, false)

	logger.Info("hello world")
	logger.Warn("warning message")
	logger.Error("error occurred")

	out := buf.String()
	assert.Contains(t, out, "[INFO ] hello world")
	assert.Contains(t, out, "[WARN ] warning message")
	assert.Contains(t, out, "[ERROR] error occurred")
}

func TestConsoleLogger_Debug(t *testing.T) {
	quiet, quietBuf := plainConsole(t, false)
	quiet.Debug("hidden")
	assert.Empty(t, quietBuf.String())

	loud, loudBuf := plainConsole(t, true)
	loud.Debug("shown")
	assert.Contains(t, loudBuf.String(), "DEBUG")
}

func TestConsoleLogger_Fields(t *testing.T) {
	logger, buf := plainConsole(t, false)

	logger.WithFields(StringField("suite", "arrays")).
		Info("running", IntField("cases", 2))

	out := buf.String()
	assert.Contains(t, out, "suite=arrays")
	assert.Contains(t, out, "cases=2")
}

func TestConsoleLogger_LogEvaluation(t *testing.T) {
	logger, buf := plainConsole(t, true)

	logger.LogEvaluation(EvaluationLog{
		Matcher: "is_true",
		Actual:  "true",
		Target:  "flag",
		Passed:  false,
	})

	out := buf.String()
	assert.Contains(t, out, "evaluation fail")
	assert.Contains(t, out, "matcher=is_true")
	assert.Contains(t, out, "target=flag")
}

func TestConsoleLogger_LogEvaluation_Quiet(t *testing.T) {
	logger, buf := plainConsole(t, false)
	logger.LogEvaluation(EvaluationLog{Matcher: "is_true", Passed: true})
	assert.Empty(t, buf.String())
}
