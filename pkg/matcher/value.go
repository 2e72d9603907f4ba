package matcher

import (
	"math"
	"reflect"
)

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// sequence returns v as a reflect.Value when it is a non-nil
// slice or an array.
func sequence(v any) (reflect.Value, bool) {
	if v == nil {
		return reflect.Value{}, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice:
		return rv, !rv.IsNil()
	case reflect.Array:
		return rv, true
	}
	return reflect.Value{}, false
}

// isKind is the type-tag check: v is non-nil and has one of the
// given kinds.
func isKind(v any, kinds ...reflect.Kind) bool {
	if v == nil {
		return false
	}
	k := reflect.TypeOf(v).Kind()
	for _, want := range kinds {
		if k == want {
			return true
		}
	}
	return false
}

// unwrap follows one level of non-nil pointer, the Go form of a
// boxed primitive.
func unwrap(v any) reflect.Value {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer && !rv.IsNil() {
		return rv.Elem()
	}
	return rv
}

// unboxed returns v with one level of non-nil pointer removed.
func unboxed(v any) any {
	rv := unwrap(v)
	if !rv.IsValid() {
		return nil
	}
	return rv.Interface()
}

// boolValue returns the boolean held by v, unwrapping a pointer.
func boolValue(v any) (bool, bool) {
	rv := unwrap(v)
	if rv.Kind() != reflect.Bool {
		return false, false
	}
	return rv.Bool(), true
}

// stringValue returns the string held by v, unwrapping a
// pointer.
func stringValue(v any) (string, bool) {
	rv := unwrap(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}

// numberValue returns v as a float64 when v has an integer or
// float kind and is not NaN.
func numberValue(v any) (float64, bool) {
	if v == nil {
		return 0, false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f, !math.IsNaN(f)
	}
	return 0, false
}

// intArg converts an explicit size argument to an int. Floats
// are accepted when they hold an integral value.
func intArg(v any) (int, bool) {
	f, ok := numberValue(v)
	if !ok || math.IsInf(f, 0) || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// strictEqual compares two numbers by value, whatever their
// numeric kinds, and anything else by dynamic type and ==.
// Values of non-comparable types are never equal.
func strictEqual(a, b any) (equal bool) {
	if x, ok := numberValue(a); ok {
		if y, ok := numberValue(b); ok {
			return x == y
		}
	}
	defer func() {
		if recover() != nil {
			equal = false
		}
	}()
	return a == b
}

// isNil reports whether rv holds a nil pointer, interface, map,
// slice, func or chan.
func isNil(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map,
		reflect.Slice, reflect.Func, reflect.Chan, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return !rv.IsValid()
}

// firstArg returns args[0], reporting whether it was supplied.
func firstArg(args []any) (any, bool) {
	if len(args) == 0 {
		return nil, false
	}
	return args[0], true
}
