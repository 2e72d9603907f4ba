// Package gomatch exposes matcher predicates as Gomega matchers.
//
// A Matchers value is a matcher.Host: register it from a Ginkgo
// BeforeEach so every test gets a fresh registry.
//
//	var m = gomatch.New()
//
//	var _ = BeforeEach(func() {
//		matcher.Setup(m)
//	})
//
//	It("collects ids", func() {
//		Expect(ids).To(m.BeArrayOfNumbers())
//	})
package gomatch

import (
	"fmt"
	"sync"

	"digital.vasic.matchers/pkg/matcher"
	"github.com/onsi/gomega/format"
	"github.com/onsi/gomega/types"
)

// Matchers holds the predicates most recently registered through
// AddMatchers and builds Gomega matchers over them.
type Matchers struct {
	mu         sync.RWMutex
	predicates map[string]matcher.Predicate
}

// New creates an empty Matchers. Its matchers fail with an error
// until matcher.Setup registers predicates.
func New() *Matchers {
	return &Matchers{}
}

// AddMatchers replaces the registered predicates.
func (m *Matchers) AddMatchers(predicates map[string]matcher.Predicate) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.predicates = predicates
}

func (m *Matchers) lookup(name string) (matcher.Predicate, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.predicates[name]
	return p, ok
}

// Satisfy returns a Gomega matcher for the predicate registered
// under name. The predicate is resolved when the matcher runs.
func (m *Matchers) Satisfy(name string, args ...any) types.GomegaMatcher {
	return &PredicateMatcher{
		Name:   name,
		Args:   args,
		source: m,
	}
}

// PredicateMatcher adapts one named predicate to
// types.GomegaMatcher.
type PredicateMatcher struct {
	Name   string
	Args   []any
	source *Matchers
}

func (pm *PredicateMatcher) Match(actual any) (success bool, err error) {
	p, ok := pm.source.lookup(pm.Name)
	if !ok {
		return false, fmt.Errorf(
			"matcher %q is not registered; call matcher.Setup in BeforeEach",
			pm.Name,
		)
	}
	return p(actual, pm.Args...), nil
}

func (pm *PredicateMatcher) FailureMessage(actual any) (message string) {
	return format.Message(actual, pm.describe("to"), pm.Args...)
}

func (pm *PredicateMatcher) NegatedFailureMessage(actual any) (message string) {
	return format.Message(actual, pm.describe("not to"), pm.Args...)
}

func (pm *PredicateMatcher) describe(verb string) string {
	if len(pm.Args) == 0 {
		return verb + " satisfy " + pm.Name
	}
	return verb + " satisfy " + pm.Name + " with"
}
