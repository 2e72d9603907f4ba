package matcher

import (
	"bytes"
	"errors"
	"testing"

	"digital.vasic.matchers/pkg/logging"
	"digital.vasic.matchers/pkg/metrics"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var builtinNames = []string{
	IsArray, IsArrayOfSize, IsEmptyArray, IsNonEmptyArray,
	IsArrayOfObjects, IsArrayOfStrings, IsArrayOfNumbers,
	IsArrayOfBooleans, Contains,
	IsBoolean, IsTrue, IsFalse,
	IsWindow, IsDocument, IsHTMLNode, IsHTMLTextNode,
	IsHTMLCommentNode, IsDate,
	ThrowsError, ThrowsErrorOfType,
	IsNumber, IsEvenNumber, IsOddNumber, IsCalculable,
	IsObject, Implements, IsFunction,
	IsString, IsEmptyString, IsNonEmptyString, IsHTMLString,
	IsWhitespace, Matches,
}

func TestNewRegistry_RegistersAllBuiltins(t *testing.T) {
	r := NewRegistry()

	for _, name := range builtinNames {
		assert.True(t, r.Has(name), "missing built-in matcher: %s", name)
	}
	assert.Len(t, r.Names(), len(builtinNames))
}

func TestRegistry_Names_Sorted(t *testing.T) {
	names := NewRegistry().Names()
	for i := 1; i < len(names); i++ {
		assert.Less(t, names[i-1], names[i])
	}
}

func TestRegistry_Register_Custom(t *testing.T) {
	r := NewRegistry()

	err := r.Register("is_answer", func(actual any, _ ...any) bool {
		return actual == 42
	})
	require.NoError(t, err)

	ok, err := r.Evaluate("is_answer", 42)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestRegistry_Register_LastWins(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(IsTrue, func(any, ...any) bool { return false }))

	ok, err := r.Evaluate(IsTrue, true)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistry_Register_Invalid(t *testing.T) {
	r := NewRegistry()

	err := r.Register("", isTrue)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "empty")

	err = r.Register("nothing", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nil")
	assert.False(t, r.Has("nothing"))
}

func TestRegistry_Evaluate_Unknown(t *testing.T) {
	r := NewRegistry()

	ok, err := r.Evaluate("no_such_matcher", 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMatcher))
	assert.False(t, ok)
}

func TestRegistry_Evaluate_ForwardsArgs(t *testing.T) {
	r := NewRegistry()

	ok, err := r.Evaluate(IsArrayOfSize, []int{1, 2, 3}, 3)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = r.Evaluate(IsArrayOfSize, []int{1, 2, 3}, 2)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRegistry_Matchers_ReturnsCopy(t *testing.T) {
	r := NewRegistry()

	m := r.Matchers()
	delete(m, IsTrue)
	m["extra"] = isTrue

	assert.True(t, r.Has(IsTrue))
	assert.False(t, r.Has("extra"))
}

func TestRegistry_RecordsMetrics(t *testing.T) {
	counter := metrics.NewCounter()
	r := NewRegistry(WithMetrics(counter))

	_, _ = r.Evaluate(IsString, "x")
	_, _ = r.Evaluate(IsString, 1)
	_, _ = r.Evaluate(IsString, "y")

	assert.Equal(t, 2, counter.EvaluationCount(IsString, true))
	assert.Equal(t, 1, counter.EvaluationCount(IsString, false))
}

func TestRegistry_LogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger, err := logging.NewJSONLogger(logging.LoggerConfig{
		Output:  &buf,
		Level:   logging.LevelDebug,
		Verbose: true,
	})
	require.NoError(t, err)

	r := NewRegistry(WithLogger(logger))
	_, _ = r.Evaluate(IsTrue, true)
	assert.Empty(t, buf.String())

	_, _ = r.Evaluate(IsTrue, "true")
	assert.Contains(t, buf.String(), "matcher failed")
	assert.Contains(t, buf.String(), IsTrue)
}

func TestRegistry_NilOptionsKeepDefaults(t *testing.T) {
	r := NewRegistry(WithLogger(nil), WithMetrics(nil), WithEnvironment(nil))

	ok, err := r.Evaluate(IsWindow, nil)
	require.NoError(t, err)
	assert.False(t, ok)
}
