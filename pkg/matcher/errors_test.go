package matcher

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type TypeError struct{ msg string }

func (e *TypeError) Error() string { return e.msg }

type RangeError struct{}

func (RangeError) Error() string { return "out of range" }

type namedError struct{}

func (namedError) Error() string { return "named" }
func (namedError) Name() string  { return "SyntaxError" }

func TestThrowsError(t *testing.T) {
	tests := []struct {
		name   string
		value  any
		passed bool
	}{
		{"panics", func() { panic("boom") }, true},
		{"panics with error", func() { panic(&TypeError{"bad"}) }, true},
		{"returns error", func() error { return errors.New("failed") }, true},
		{"returns value and error", func() (int, error) { return 0, errors.New("x") }, true},
		{"returns nil error", func() error { return nil }, false},
		{"returns nil typed error", func() *TypeError { return nil }, false},
		{"returns value", func() int { return 1 }, false},
		{"quiet", func() {}, false},
		{"variadic", func(...int) { panic("boom") }, true},
		{"needs argument", func(int) { panic("boom") }, false},
		{"nil func", (func())(nil), false},
		{"not callable", "boom", false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.passed, throwsError(tt.value))
		})
	}
}

func TestThrowsErrorOfType(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		typeName any
		passed   bool
	}{
		{"pointer error panic", func() { panic(&TypeError{"bad"}) }, "TypeError", true},
		{"returned pointer error", func() error { return &TypeError{"bad"} }, "TypeError", true},
		{"value error", func() error { return RangeError{} }, "RangeError", true},
		{"different type", func() error { return RangeError{} }, "TypeError", false},
		{"named error", func() { panic(namedError{}) }, "SyntaxError", true},
		{"named error by Go type", func() { panic(namedError{}) }, "namedError", false},
		{"wrapped error", func() error { return fmt.Errorf("ctx: %w", &TypeError{}) }, "TypeError", false},
		{"string panic", func() { panic("boom") }, "string", true},
		{"does not throw", func() {}, "TypeError", false},
		{"case sensitive", func() error { return &TypeError{} }, "typeerror", false},
		{"non-string type", func() error { return &TypeError{} }, 1, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.passed, throwsErrorOfType(tt.value, tt.typeName))
		})
	}

	assert.False(t, throwsErrorOfType(func() { panic("x") }))
}

func TestThrowsError_RuntimePanic(t *testing.T) {
	var m map[string]int
	assert.True(t, throwsError(func() { m["x"] = 1 }))

	var s []int
	assert.True(t, throwsError(func() { _ = s[3] }))
}
