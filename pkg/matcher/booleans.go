package matcher

// isBoolean reports whether actual is an actual boolean, not
// merely truthy or falsy.
func isBoolean(actual any, _ ...any) bool {
	return isTrue(actual) || isFalse(actual)
}

// isTrue accepts true and a non-nil pointer to true.
func isTrue(actual any, _ ...any) bool {
	b, ok := boolValue(actual)
	return ok && b
}

// isFalse accepts false and a non-nil pointer to false.
func isFalse(actual any, _ ...any) bool {
	b, ok := boolValue(actual)
	return ok && !b
}
