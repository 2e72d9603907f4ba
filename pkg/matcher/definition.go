package matcher

import (
	"fmt"
	"strings"

	"digital.vasic.matchers/pkg/logging"
)

// Definition describes one matcher application in declarative
// form, as found in suite files.
type Definition struct {
	// Matcher is the registered matcher name (e.g. "is_true",
	// "is_array_of_size").
	Matcher string `json:"matcher" yaml:"matcher"`

	// Target names the subject being checked.
	Target string `json:"target,omitempty" yaml:"target,omitempty"`

	// Args are the explicit matcher arguments.
	Args []any `json:"args,omitempty" yaml:"args,omitempty"`

	// Not inverts the outcome.
	Not bool `json:"not,omitempty" yaml:"not,omitempty"`

	// Message replaces the generated failure message.
	Message string `json:"message,omitempty" yaml:"message,omitempty"`
}

// String renders d in the compact "name:arg" form, prefixed with
// "not " when negated.
func (d Definition) String() string {
	var b strings.Builder
	if d.Not {
		b.WriteString("not ")
	}
	b.WriteString(d.Matcher)
	for _, arg := range d.Args {
		fmt.Fprintf(&b, ":%v", arg)
	}
	return b.String()
}

// Result captures the outcome of checking a Definition.
type Result struct {
	Matcher string `json:"matcher"`
	Target  string `json:"target,omitempty"`
	Args    []any  `json:"args,omitempty"`
	Not     bool   `json:"not,omitempty"`
	Actual  any    `json:"actual"`
	Passed  bool   `json:"passed"`
	Message string `json:"message"`
}

// Check applies def to actual.
func (r *Registry) Check(def Definition, actual any) Result {
	result := Result{
		Matcher: def.Matcher,
		Target:  def.Target,
		Args:    def.Args,
		Not:     def.Not,
		Actual:  actual,
	}

	p, ok := r.Lookup(def.Matcher)
	if !ok {
		result.Message = fmt.Sprintf(
			"unknown matcher: %s", def.Matcher,
		)
		return result
	}

	satisfied := p(actual, def.Args...)
	result.Passed = satisfied != def.Not
	r.record(def.Matcher, def.Target, actual, def.Args, satisfied)

	switch {
	case result.Passed:
		result.Message = fmt.Sprintf("%s: ok", def)
	case def.Message != "":
		result.Message = def.Message
	case def.Not:
		result.Message = fmt.Sprintf(
			"expected %s not to satisfy %s",
			logging.Preview(actual, previewLimit), def.Matcher,
		)
	default:
		result.Message = fmt.Sprintf(
			"expected %s to satisfy %s",
			logging.Preview(actual, previewLimit), def.Matcher,
		)
	}
	if len(def.Args) > 0 && !result.Passed && def.Message == "" {
		result.Message += fmt.Sprintf(" with %v", def.Args)
	}
	return result
}

// CheckAll applies each definition to the value named by its
// Target. A definition whose target is missing fails.
func (r *Registry) CheckAll(
	defs []Definition,
	values map[string]any,
) []Result {
	results := make([]Result, 0, len(defs))

	for _, def := range defs {
		value, exists := values[def.Target]
		if !exists {
			results = append(results, Result{
				Matcher: def.Matcher,
				Target:  def.Target,
				Args:    def.Args,
				Not:     def.Not,
				Message: fmt.Sprintf(
					"target not found: %s", def.Target,
				),
			})
			continue
		}

		results = append(results, r.Check(def, value))
	}

	return results
}
