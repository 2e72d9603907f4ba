package matcher

import "reflect"

// Namer lets an error report the type name compared by
// throws_error_of_type.
type Namer interface {
	Name() string
}

// throwsError reports whether invoking actual, a function taking
// no arguments, panics or returns a non-nil error as its last
// result.
func throwsError(actual any, _ ...any) bool {
	_, threw := invoke(actual)
	return threw
}

// throwsErrorOfType reports whether invoking actual raises an
// error whose type name is exactly args[0].
func throwsErrorOfType(actual any, args ...any) bool {
	arg, ok := firstArg(args)
	if !ok {
		return false
	}
	want, ok := stringValue(arg)
	if !ok {
		return false
	}
	raised, threw := invoke(actual)
	return threw && errorTypeName(raised) == want
}

// invoke calls actual and returns what it raised. Values that
// cannot be called without arguments are not invoked.
func invoke(actual any) (raised any, threw bool) {
	if actual == nil {
		return nil, false
	}
	fn := reflect.ValueOf(actual)
	if fn.Kind() != reflect.Func || fn.IsNil() {
		return nil, false
	}
	ft := fn.Type()
	if ft.NumIn() > 1 || (ft.NumIn() == 1 && !ft.IsVariadic()) {
		return nil, false
	}

	defer func() {
		if p := recover(); p != nil {
			raised, threw = p, true
		}
	}()

	out := fn.Call(nil)
	if n := len(out); n > 0 && ft.Out(n-1).Implements(errorType) {
		last := out[n-1]
		if !isNil(last) {
			return last.Interface(), true
		}
	}
	return nil, false
}

// errorTypeName returns Name() when raised provides it, otherwise
// the name of its dynamic type with pointers stripped.
func errorTypeName(raised any) (name string) {
	if n, ok := raised.(Namer); ok {
		defer func() {
			if recover() != nil {
				name = ""
			}
		}()
		return n.Name()
	}
	t := reflect.TypeOf(raised)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	return t.Name()
}
