package matcher

import "reflect"

// isObject reports whether actual is a non-primitive, non-nil
// value: a struct, array, or a non-nil map, slice, func, chan or
// pointer.
func isObject(actual any, _ ...any) bool {
	if actual == nil {
		return false
	}
	rv := reflect.ValueOf(actual)
	switch rv.Kind() {
	case reflect.Struct, reflect.Array:
		return true
	case reflect.Map, reflect.Slice, reflect.Func, reflect.Chan,
		reflect.Pointer, reflect.UnsafePointer:
		return !rv.IsNil()
	}
	return false
}

func isFunction(actual any, _ ...any) bool {
	return isKind(actual, reflect.Func) && !reflect.ValueOf(actual).IsNil()
}

// implements reports whether every member named by args[0] is
// present on actual. Only presence matters, not values.
func implements(actual any, args ...any) bool {
	api, ok := firstArg(args)
	if !ok {
		return false
	}
	required, ok := requiredMembers(api)
	if !ok {
		return false
	}
	present, ok := members(actual)
	if !ok {
		return false
	}
	for _, name := range required {
		if !present[name] {
			return false
		}
	}
	return true
}

// requiredMembers lists the member names an api describes: the
// keys of a map, the exported fields of a struct, or the strings
// of a slice or array.
func requiredMembers(api any) ([]string, bool) {
	if api == nil {
		return nil, false
	}
	rv := reflect.ValueOf(api)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil, false
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.IsNil() {
			return nil, false
		}
		names := make([]string, 0, rv.Len())
		for _, key := range rv.MapKeys() {
			name, ok := stringValue(key.Interface())
			if !ok {
				return nil, false
			}
			names = append(names, name)
		}
		return names, true
	case reflect.Struct:
		var names []string
		for _, f := range reflect.VisibleFields(rv.Type()) {
			if f.IsExported() {
				names = append(names, f.Name)
			}
		}
		return names, true
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return nil, false
		}
		names := make([]string, 0, rv.Len())
		for i := 0; i < rv.Len(); i++ {
			name, ok := stringValue(rv.Index(i).Interface())
			if !ok {
				return nil, false
			}
			names = append(names, name)
		}
		return names, true
	}
	return nil, false
}

// members collects the names present on v: its method set and
// that of its pointer type, plus map keys or exported struct
// fields (promoted fields included).
func members(v any) (map[string]bool, bool) {
	if v == nil {
		return nil, false
	}
	rv := reflect.ValueOf(v)
	if isNil(rv) {
		return nil, false
	}

	present := make(map[string]bool)
	addMethods(present, rv.Type())
	if rv.Kind() != reflect.Pointer {
		addMethods(present, reflect.PointerTo(rv.Type()))
	}

	if rv.Kind() == reflect.Pointer {
		rv = rv.Elem()
	}
	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() == reflect.String {
			for _, key := range rv.MapKeys() {
				present[key.String()] = true
			}
		}
	case reflect.Struct:
		for _, f := range reflect.VisibleFields(rv.Type()) {
			if f.IsExported() {
				present[f.Name] = true
			}
		}
	}
	return present, true
}

func addMethods(set map[string]bool, t reflect.Type) {
	for i := 0; i < t.NumMethod(); i++ {
		set[t.Method(i).Name] = true
	}
}
