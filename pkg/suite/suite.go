// Package suite loads declarative matcher suites from YAML or
// JSON files and runs them against a fresh matcher registry per
// case.
package suite

import (
	"fmt"

	"digital.vasic.matchers/pkg/matcher"
	"github.com/tidwall/gjson"
	"gopkg.in/yaml.v3"
)

// Suite is a named list of cases loaded from one file.
type Suite struct {
	Name        string         `json:"name" yaml:"name"`
	Description string         `json:"description,omitempty" yaml:"description,omitempty"`
	Cases       []Case         `json:"cases" yaml:"cases"`
	Metadata    map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`

	// Source is the file the suite was loaded from.
	Source string `json:"source,omitempty" yaml:"-"`
}

// Case applies a set of matchers to one subject.
//
// The subject is either given literally in Subject, or extracted
// from the JSON document in JSON using the gjson Path. An empty
// Path selects the whole document.
type Case struct {
	Name    string        `json:"name" yaml:"name"`
	Subject any           `json:"subject,omitempty" yaml:"subject,omitempty"`
	JSON    string        `json:"json,omitempty" yaml:"json,omitempty"`
	Path    string        `json:"path,omitempty" yaml:"path,omitempty"`
	Expect  []Expectation `json:"expect,omitempty" yaml:"expect,omitempty"`
	Reject  []Expectation `json:"reject,omitempty" yaml:"reject,omitempty"`
}

// Expectation is one matcher application inside a case. In a
// suite file it is written either as a compact string
// ("is_array_of_size:3") or as a full definition mapping.
type Expectation struct {
	matcher.Definition
}

// UnmarshalYAML accepts both the compact and the mapping form.
func (e *Expectation) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		def, err := matcher.ParseDefinitionString(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		e.Definition = def
		return nil
	}
	return node.Decode(&e.Definition)
}

// ResolveSubject returns the value the case's matchers are
// applied to.
func (c Case) ResolveSubject() (any, error) {
	if c.JSON == "" {
		return c.Subject, nil
	}
	if !gjson.Valid(c.JSON) {
		return nil, fmt.Errorf("case %s: invalid json", c.Name)
	}
	if c.Path == "" {
		return gjson.Parse(c.JSON).Value(), nil
	}
	res := gjson.Get(c.JSON, c.Path)
	if !res.Exists() {
		return nil, fmt.Errorf(
			"case %s: path %q not found", c.Name, c.Path,
		)
	}
	return res.Value(), nil
}

// definitions returns the case's expectations in evaluation
// order, with reject entries negated and the case name as target.
func (c Case) definitions() []matcher.Definition {
	defs := make([]matcher.Definition, 0, len(c.Expect)+len(c.Reject))
	for _, e := range c.Expect {
		defs = append(defs, c.target(e.Definition))
	}
	for _, e := range c.Reject {
		def := c.target(e.Definition)
		def.Not = !def.Not
		defs = append(defs, def)
	}
	return defs
}

func (c Case) target(def matcher.Definition) matcher.Definition {
	if def.Target == "" {
		def.Target = c.Name
	}
	return def
}
