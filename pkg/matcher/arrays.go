package matcher

// isArray reports whether actual is a non-nil slice or an array.
// A nil slice is treated like null.
func isArray(actual any, _ ...any) bool {
	_, ok := sequence(actual)
	return ok
}

// isArrayOfSize reports whether actual is an array whose length
// equals args[0].
func isArrayOfSize(actual any, args ...any) bool {
	arg, ok := firstArg(args)
	if !ok {
		return false
	}
	size, ok := intArg(arg)
	if !ok {
		return false
	}
	rv, ok := sequence(actual)
	return ok && rv.Len() == size
}

func isEmptyArray(actual any, _ ...any) bool {
	return isArrayOfSize(actual, 0)
}

func isNonEmptyArray(actual any, _ ...any) bool {
	rv, ok := sequence(actual)
	return ok && rv.Len() > 0
}

// contains reports whether actual is an array holding an element
// strictly equal to args[0].
func contains(actual any, args ...any) bool {
	expected, ok := firstArg(args)
	if !ok {
		return false
	}
	return Some(actual, func(member any) bool {
		return strictEqual(member, expected)
	})
}
