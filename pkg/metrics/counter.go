package metrics

import (
	"sort"
	"sync"
	"time"
)

// Counter implements Recorder with in-memory counters. It is
// safe for concurrent use.
type Counter struct {
	mu          sync.Mutex
	evaluations map[string]int
	cases       map[string]int
	durations   map[string]time.Duration
}

// NewCounter creates an empty Counter.
func NewCounter() *Counter {
	return &Counter{
		evaluations: make(map[string]int),
		cases:       make(map[string]int),
		durations:   make(map[string]time.Duration),
	}
}

func outcome(passed bool) string {
	if passed {
		return "passed"
	}
	return "failed"
}

func (c *Counter) RecordEvaluation(matcher string, passed bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evaluations[matcher+":"+outcome(passed)]++
}

func (c *Counter) RecordCase(suite string, passed bool, duration time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cases[suite+":"+outcome(passed)]++
	c.durations[suite] += duration
}

// EvaluationCount returns the count for a matcher+outcome
// combination.
func (c *Counter) EvaluationCount(matcher string, passed bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.evaluations[matcher+":"+outcome(passed)]
}

// CaseCount returns the count for a suite+outcome combination.
func (c *Counter) CaseCount(suite string, passed bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cases[suite+":"+outcome(passed)]
}

// SuiteDuration returns the accumulated case time for a suite.
func (c *Counter) SuiteDuration(suite string) time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.durations[suite]
}

// Matchers returns the names of all matchers with at least one
// recorded evaluation, sorted.
func (c *Counter) Matchers() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	seen := make(map[string]bool)
	for key := range c.evaluations {
		for i := len(key) - 1; i >= 0; i-- {
			if key[i] == ':' {
				seen[key[:i]] = true
				break
			}
		}
	}
	names := make([]string, 0, len(seen))
	for name := range seen {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
