package matcher

import "digital.vasic.matchers/pkg/logging"

// Host is the matcher registration entry point of a test
// framework.
type Host interface {
	AddMatchers(matchers map[string]Predicate)
}

// HostFunc adapts a function to the Host interface.
type HostFunc func(matchers map[string]Predicate)

// AddMatchers calls f.
func (f HostFunc) AddMatchers(matchers map[string]Predicate) {
	f(matchers)
}

// Setup is the per-test setup hook. It builds a fresh Registry
// and registers its matchers with host. Call it once before each
// test case; the returned Registry belongs to that case only.
func Setup(host Host, opts ...Option) *Registry {
	r := NewRegistry(opts...)
	matchers := r.Matchers()
	host.AddMatchers(matchers)
	r.logger.Debug("matchers registered",
		logging.IntField("count", len(matchers)),
	)
	return r
}
