package matcher

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// ParseDefinitionString parses the compact form "name" or
// "name:arg" into a Definition. A scalar argument is decoded as
// YAML, so "3" is an int, "true" a bool and "'3'" a string. Text
// that does not decode to a scalar is kept as a plain string, so
// patterns such as "[a-z]+" survive; only implements accepts a
// list. The arguments of matches and throws_error_of_type are
// always strings.
//
// Examples:
//
//	"is_true"              -> is_true
//	"is_array_of_size:3"   -> is_array_of_size(3)
//	"matches:^[a-z]+$"     -> matches("^[a-z]+$")
//	"matches:[abc]"        -> matches("[abc]")
//	"implements:[Len, At]" -> implements([]any{"Len", "At"})
func ParseDefinitionString(s string) (Definition, error) {
	name, arg, hasArg := strings.Cut(strings.TrimSpace(s), ":")
	name = strings.TrimSpace(name)
	if name == "" {
		return Definition{}, fmt.Errorf("parse matcher %q: empty name", s)
	}

	def := Definition{Matcher: name}
	if hasArg {
		def.Args = []any{decodeArg(name, arg)}
	}
	return def, nil
}

func decodeArg(name, text string) any {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(text), &doc); err != nil || len(doc.Content) == 0 {
		return text
	}
	node := doc.Content[0]

	if node.Kind != yaml.ScalarNode {
		if name != Implements {
			return text
		}
		var v any
		if err := node.Decode(&v); err != nil {
			return text
		}
		return v
	}

	if takesText(name) {
		return node.Value
	}
	var v any
	if err := node.Decode(&v); err != nil {
		return text
	}
	return v
}
