package suite

import (
	"fmt"

	"digital.vasic.matchers/pkg/matcher"
	"github.com/tidwall/gjson"
)

// ValidationError represents a validation issue found in a suite.
type ValidationError struct {
	Field   string
	Message string
	Index   int // -1 if not applicable
}

func (e ValidationError) Error() string {
	if e.Index >= 0 {
		return fmt.Sprintf("cases[%d].%s: %s", e.Index, e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks a suite's structure and returns all errors
// found, including built-in matchers used without their required
// argument. known reports whether a matcher name is registered; a
// nil known skips the name check.
func Validate(s *Suite, known func(name string) bool) []ValidationError {
	var errs []ValidationError

	if len(s.Cases) == 0 {
		errs = append(errs, ValidationError{
			Field: "cases", Message: "at least one case is required", Index: -1,
		})
	}

	names := make(map[string]bool)
	for i, c := range s.Cases {
		if c.Name == "" {
			errs = append(errs, ValidationError{
				Field: "name", Message: "case name is required", Index: i,
			})
		} else if names[c.Name] {
			errs = append(errs, ValidationError{
				Field: "name", Message: fmt.Sprintf("duplicate case: %s", c.Name), Index: i,
			})
		} else {
			names[c.Name] = true
		}

		if len(c.Expect)+len(c.Reject) == 0 {
			errs = append(errs, ValidationError{
				Field: "expect", Message: "case has no expectations", Index: i,
			})
		}

		if c.JSON != "" {
			if c.Subject != nil {
				errs = append(errs, ValidationError{
					Field: "subject", Message: "subject and json are exclusive", Index: i,
				})
			}
			if !gjson.Valid(c.JSON) {
				errs = append(errs, ValidationError{
					Field: "json", Message: "invalid json", Index: i,
				})
			}
		} else if c.Path != "" {
			errs = append(errs, ValidationError{
				Field: "path", Message: "path requires json", Index: i,
			})
		}

		for _, def := range c.definitions() {
			if known != nil && !known(def.Matcher) {
				errs = append(errs, ValidationError{
					Field: "expect", Message: fmt.Sprintf("unknown matcher: %s", def.Matcher), Index: i,
				})
				continue
			}
			if matcher.RequiresArgument(def.Matcher) && len(def.Args) == 0 {
				errs = append(errs, ValidationError{
					Field: "expect", Message: fmt.Sprintf("matcher %s requires an argument", def.Matcher), Index: i,
				})
			}
		}
	}

	return errs
}
