package logging

import "fmt"

// LogField creates a Field from a key-value pair.
func LogField(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// StringField creates a Field with a string value.
func StringField(key, value string) Field {
	return Field{Key: key, Value: value}
}

// IntField creates a Field with an integer value.
func IntField(key string, value int) Field {
	return Field{Key: key, Value: value}
}

// BoolField creates a Field with a boolean value.
func BoolField(key string, value bool) Field {
	return Field{Key: key, Value: value}
}

// ErrorField creates a Field for an error value. If err is nil,
// the value is set to the string "<nil>".
func ErrorField(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: "<nil>"}
	}
	return Field{Key: "error", Value: err.Error()}
}

// ValueField renders an arbitrary subject for log output,
// truncating long renderings to limit characters.
func ValueField(key string, value any, limit int) Field {
	return Field{Key: key, Value: Preview(value, limit)}
}

// Preview formats value with %v and truncates it to limit
// bytes. A limit of zero or less disables truncation.
func Preview(value any, limit int) string {
	s := fmt.Sprintf("%v", value)
	if limit > 0 && len(s) > limit {
		return s[:limit] + "..."
	}
	return s
}
