package matcher

import (
	"reflect"
	"time"

	"golang.org/x/net/html"
)

// DOM node type codes.
const (
	ElementNode  = 1
	TextNode     = 3
	CommentNode  = 8
	DocumentNode = 9
	DoctypeNode  = 10
)

// NodeTyper is implemented by values that describe their own DOM
// node type code.
type NodeTyper interface {
	NodeType() int
}

var parsedNodeTypes = map[html.NodeType]int{
	html.ElementNode:  ElementNode,
	html.TextNode:     TextNode,
	html.CommentNode:  CommentNode,
	html.DocumentNode: DocumentNode,
	html.DoctypeNode:  DoctypeNode,
}

// isWindow and isDocument compare against the registry's
// environment; both are false when the global does not exist.
func (r *Registry) isWindow(actual any, _ ...any) bool {
	w, ok := r.env.Window()
	return ok && strictEqual(actual, w)
}

func (r *Registry) isDocument(actual any, _ ...any) bool {
	d, ok := r.env.Document()
	return ok && strictEqual(actual, d)
}

func nodeKind(want int) Predicate {
	return func(actual any, _ ...any) bool {
		return hasNodeType(actual, want)
	}
}

// hasNodeType is the HTML-node-kind check.
func hasNodeType(v any, want int) bool {
	got, ok := nodeType(v)
	return ok && got == want
}

// nodeType extracts a DOM node type code from a parsed
// *html.Node, a NodeTyper, or a map carrying a numeric
// "nodeType" entry.
func nodeType(v any) (code int, ok bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case *html.Node:
		if n == nil {
			return 0, false
		}
		code, ok = parsedNodeTypes[n.Type]
		return code, ok
	case NodeTyper:
		defer func() {
			if recover() != nil {
				code, ok = 0, false
			}
		}()
		return n.NodeType(), true
	}

	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Map || rv.IsNil() || rv.Type().Key().Kind() != reflect.String {
		return 0, false
	}
	entry := rv.MapIndex(reflect.ValueOf("nodeType").Convert(rv.Type().Key()))
	if !entry.IsValid() {
		return 0, false
	}
	return intArg(entry.Interface())
}

// isDate accepts time.Time and a non-nil *time.Time.
func isDate(actual any, _ ...any) bool {
	switch t := actual.(type) {
	case time.Time:
		return true
	case *time.Time:
		return t != nil
	}
	return false
}
