package matcher

import (
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"digital.vasic.matchers/pkg/logging"
	"digital.vasic.matchers/pkg/metrics"
)

// ErrUnknownMatcher is returned when a name has no registered
// predicate.
var ErrUnknownMatcher = errors.New("unknown matcher")

// previewLimit bounds subject renderings in log output.
const previewLimit = 120

// Registry maps matcher names to predicates. It is safe for
// concurrent use.
type Registry struct {
	mu         sync.RWMutex
	predicates map[string]Predicate
	env        Environment
	logger     logging.Logger
	metrics    metrics.Recorder
}

// Option configures a Registry.
type Option func(*Registry)

// WithEnvironment sets the accessor used by is_window and
// is_document. A nil env means no host globals exist.
func WithEnvironment(env Environment) Option {
	return func(r *Registry) {
		if env == nil {
			env = NoEnvironment{}
		}
		r.env = env
	}
}

// WithLogger sets the logger used for registration and
// evaluation events.
func WithLogger(logger logging.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithMetrics sets the recorder that counts evaluations.
func WithMetrics(recorder metrics.Recorder) Option {
	return func(r *Registry) {
		if recorder != nil {
			r.metrics = recorder
		}
	}
}

// NewRegistry creates a Registry with every built-in predicate
// pre-registered.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		predicates: make(map[string]Predicate),
		env:        NoEnvironment{},
		logger:     logging.NullLogger{},
		metrics:    metrics.NoopRecorder{},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.registerDefaults()
	return r
}

// Register adds or replaces the predicate for name. The last
// registration of a name wins.
func (r *Registry) Register(name string, p Predicate) error {
	if name == "" {
		return fmt.Errorf("matcher name cannot be empty")
	}
	if p == nil {
		return fmt.Errorf("matcher %q: predicate cannot be nil", name)
	}

	r.mu.Lock()
	_, replaced := r.predicates[name]
	r.predicates[name] = p
	r.mu.Unlock()

	if replaced {
		r.logger.Debug("matcher replaced", logging.StringField("matcher", name))
	}
	return nil
}

// Lookup returns the predicate registered under name.
func (r *Registry) Lookup(name string) (Predicate, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.predicates[name]
	return p, ok
}

// Has reports whether name has a registered predicate.
func (r *Registry) Has(name string) bool {
	_, ok := r.Lookup(name)
	return ok
}

// Names returns every registered name, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.predicates))
	for name := range r.predicates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Matchers returns a copy of the name to predicate mapping, the
// form handed to a Host.
func (r *Registry) Matchers() map[string]Predicate {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]Predicate, len(r.predicates))
	for name, p := range r.predicates {
		out[name] = p
	}
	return out
}

// Evaluate runs the predicate registered under name against
// actual. The only error is ErrUnknownMatcher.
func (r *Registry) Evaluate(name string, actual any, args ...any) (bool, error) {
	p, ok := r.Lookup(name)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownMatcher, name)
	}

	passed := p(actual, args...)
	r.record(name, "", actual, args, passed)
	return passed, nil
}

func (r *Registry) record(name, target string, actual any, args []any, passed bool) {
	r.metrics.RecordEvaluation(name, passed)
	r.logger.LogEvaluation(logging.EvaluationLog{
		Timestamp: time.Now().Format(time.RFC3339Nano),
		Matcher:   name,
		Target:    target,
		Actual:    logging.Preview(actual, previewLimit),
		Args:      args,
		Passed:    passed,
	})
	if !passed {
		r.logger.Debug("matcher failed",
			logging.StringField("matcher", name),
			logging.ValueField("actual", actual, previewLimit),
		)
	}
}
