package matcher

// All reports whether fn holds for every element of seq. It
// stops at the first failing element and is vacuously true for
// an empty sequence. A value that is not a slice or array fails.
func All(seq any, fn func(item any) bool) bool {
	rv, ok := sequence(seq)
	if !ok {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if !fn(rv.Index(i).Interface()) {
			return false
		}
	}
	return true
}

// Some reports whether fn holds for at least one element of seq,
// stopping at the first match. It is false for an empty sequence
// and for a value that is not a slice or array.
func Some(seq any, fn func(item any) bool) bool {
	rv, ok := sequence(seq)
	if !ok {
		return false
	}
	for i := 0; i < rv.Len(); i++ {
		if fn(rv.Index(i).Interface()) {
			return true
		}
	}
	return false
}

// ExpectAllMembers returns a predicate that binds each element of
// its subject in turn and delegates to the predicate registered
// under name. The name is resolved when the predicate runs, so a
// later registration under the same name is honored.
func (r *Registry) ExpectAllMembers(name string) Predicate {
	return func(actual any, _ ...any) bool {
		p, ok := r.Lookup(name)
		if !ok {
			return false
		}
		return All(actual, func(item any) bool {
			return p(item)
		})
	}
}

// arrayOf builds the "array of X" family: an array guard followed
// by the element check registered under name.
func (r *Registry) arrayOf(name string) Predicate {
	members := r.ExpectAllMembers(name)
	return func(actual any, _ ...any) bool {
		return isArray(actual) && members(actual)
	}
}
