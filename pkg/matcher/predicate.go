// Package matcher provides a registry of named predicates that
// extend a host test framework's assertion vocabulary with type-
// and shape-specific checks: arrays of a given element kind,
// booleans as opposed to truthy values, numeric parity, HTML node
// kinds, string shapes, panicking callables and structural
// interface conformance.
//
// A Registry is built fresh for every test case by Setup and
// handed to the host framework through the Host interface.
package matcher

// Predicate reports whether actual satisfies a named check.
// Explicit matcher arguments are forwarded positionally in args.
//
// A Predicate never mutates actual and returns false, rather than
// panicking, for inputs it does not understand, including nil and
// missing or wrongly typed arguments.
type Predicate func(actual any, args ...any) bool
