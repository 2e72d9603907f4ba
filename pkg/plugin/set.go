package plugin

import "digital.vasic.matchers/pkg/matcher"

// Set is a Plugin made of a fixed map of predicates.
type Set struct {
	ID         string
	Ver        string
	Predicates map[string]matcher.Predicate
}

// NewSet creates a Set plugin.
func NewSet(name, version string, predicates map[string]matcher.Predicate) *Set {
	return &Set{ID: name, Ver: version, Predicates: predicates}
}

func (s *Set) Name() string    { return s.ID }
func (s *Set) Version() string { return s.Ver }

// Init registers every predicate of the set.
func (s *Set) Init(ctx *Context) error {
	for name, p := range s.Predicates {
		if err := ctx.Registry.Register(name, p); err != nil {
			return err
		}
	}
	return nil
}
