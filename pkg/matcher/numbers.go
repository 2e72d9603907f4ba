package matcher

import (
	"math"
	"reflect"
	"regexp"
	"strings"
)

var (
	decimalLiteral  = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?$`)
	prefixedLiteral = regexp.MustCompile(`^0(?:[xX][0-9a-fA-F]+|[oO][0-7]+|[bB][01]+)$`)
)

// isNumber reports whether actual is a real number: an integer
// or float that is not NaN, or a non-nil pointer to one.
// Numeric-looking strings are not numbers.
func isNumber(actual any, _ ...any) bool {
	_, ok := numberValue(unboxed(actual))
	return ok
}

func isEvenNumber(actual any, _ ...any) bool {
	even, ok := parity(actual)
	return ok && even
}

func isOddNumber(actual any, _ ...any) bool {
	even, ok := parity(actual)
	return ok && !even
}

// parity reports whether a number is divisible by two. Integers
// are tested exactly. Fractional and infinite floats are odd.
func parity(actual any) (even bool, ok bool) {
	if !isNumber(actual) {
		return false, false
	}
	rv := unwrap(actual)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return math.Mod(rv.Float(), 2) == 0, true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()%2 == 0, true
	default:
		return rv.Int()%2 == 0, true
	}
}

// isCalculable reports whether actual can take part in
// arithmetic without yielding NaN: a number, or a string whose
// text coerces to one. A pointer to either is unwrapped.
func isCalculable(actual any, _ ...any) bool {
	if isNumber(actual) {
		return true
	}
	s, ok := stringValue(actual)
	return ok && numericText(s)
}

// numericText follows arithmetic string coercion: surrounding
// whitespace is ignored, blank text is zero, and decimal,
// exponent, prefixed integer and Infinity forms are numbers.
func numericText(s string) bool {
	s = strings.TrimFunc(s, isSpace)
	switch s {
	case "", "Infinity", "+Infinity", "-Infinity":
		return true
	}
	return decimalLiteral.MatchString(s) || prefixedLiteral.MatchString(s)
}
