// Package expect runs matcher predicates from plain Go tests,
// reporting failures through testify.
//
//	func TestIDs(t *testing.T) {
//		e := expect.New(t)
//		e.That(ids, matcher.IsArrayOfNumbers)
//		e.Must(ids, matcher.IsArrayOfSize, 3)
//	}
package expect

import (
	"fmt"

	"digital.vasic.matchers/pkg/matcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestingT is the subset of testing.TB used for reporting.
type TestingT interface {
	Errorf(format string, args ...any)
	FailNow()
}

type tHelper interface {
	Helper()
}

// Expect binds one test to the matchers registered for it.
type Expect struct {
	t          TestingT
	predicates map[string]matcher.Predicate
}

// New runs the setup hook for t: it builds a fresh registry and
// registers its matchers with the returned Expect.
func New(t TestingT, opts ...matcher.Option) *Expect {
	if h, ok := t.(tHelper); ok {
		h.Helper()
	}
	e := &Expect{t: t}
	matcher.Setup(e, opts...)
	return e
}

// AddMatchers implements matcher.Host.
func (e *Expect) AddMatchers(predicates map[string]matcher.Predicate) {
	e.predicates = predicates
}

// That asserts that actual satisfies the named matcher. It
// reports a failure and returns false otherwise.
func (e *Expect) That(actual any, name string, args ...any) bool {
	if h, ok := e.t.(tHelper); ok {
		h.Helper()
	}
	return e.check(false, actual, name, args)
}

// Not asserts that actual does not satisfy the named matcher.
func (e *Expect) Not(actual any, name string, args ...any) bool {
	if h, ok := e.t.(tHelper); ok {
		h.Helper()
	}
	return e.check(true, actual, name, args)
}

// Must is like That but stops the test on failure.
func (e *Expect) Must(actual any, name string, args ...any) {
	if h, ok := e.t.(tHelper); ok {
		h.Helper()
	}
	if !e.check(false, actual, name, args) {
		require.FailNow(e.t, fmt.Sprintf("required matcher %s failed", name))
	}
}

func (e *Expect) check(negate bool, actual any, name string, args []any) bool {
	p, ok := e.predicates[name]
	if !ok {
		return assert.Fail(e.t, fmt.Sprintf("unknown matcher: %s", name))
	}
	if p(actual, args...) != negate {
		return true
	}

	verb := "to"
	if negate {
		verb = "not to"
	}
	msg := fmt.Sprintf("expected %#v %s satisfy %s", actual, verb, name)
	if len(args) > 0 {
		msg += fmt.Sprintf(" with %#v", args)
	}
	return assert.Fail(e.t, msg)
}
