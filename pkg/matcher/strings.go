package matcher

import (
	"reflect"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// isSpace matches the whitespace class used by text patterns:
// Unicode spaces plus the byte order mark, excluding NEL.
func isSpace(r rune) bool {
	if r == '\uFEFF' {
		return true
	}
	return r != '\u0085' && unicode.IsSpace(r)
}

func isString(actual any, _ ...any) bool {
	_, ok := stringValue(actual)
	return ok
}

// isEmptyString accepts only an unboxed "".
func isEmptyString(actual any, _ ...any) bool {
	if actual == nil {
		return false
	}
	rv := reflect.ValueOf(actual)
	return rv.Kind() == reflect.String && rv.Len() == 0
}

func isNonEmptyString(actual any, _ ...any) bool {
	s, ok := stringValue(actual)
	return ok && len(s) > 0
}

func isHTMLString(actual any, _ ...any) bool {
	s, ok := stringValue(actual)
	return ok && containsMarkup(s)
}

// isWhitespace reports whether actual is a string with no
// non-whitespace character. The empty string qualifies.
func isWhitespace(actual any, _ ...any) bool {
	s, ok := stringValue(actual)
	if !ok {
		return false
	}
	return strings.IndexFunc(s, func(r rune) bool { return !isSpace(r) }) == -1
}

// matches reports whether actual is a string containing a match
// for args[0], a *regexp.Regexp or a pattern string. An invalid
// pattern does not match.
func matches(actual any, args ...any) bool {
	arg, ok := firstArg(args)
	if !ok {
		return false
	}
	s, ok := stringValue(actual)
	if !ok {
		return false
	}
	re, ok := pattern(arg)
	return ok && re.MatchString(s)
}

func pattern(arg any) (*regexp.Regexp, bool) {
	switch p := arg.(type) {
	case *regexp.Regexp:
		return p, p != nil
	}
	src, ok := stringValue(arg)
	if !ok {
		return nil, false
	}
	re, err := regexp.Compile(src)
	if err != nil {
		return nil, false
	}
	return re, true
}

// containsMarkup reports whether s holds something shaped like an
// HTML element: an opening tag with a lowercase name followed,
// on the same line, by the matching end tag, or a tag closed by
// whitespace and "/>". It is a heuristic rather than a parser and
// accepts malformed nesting. A tag name may match any prefix of
// the letters after "<", so "<divx>a</div>" qualifies.
func containsMarkup(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] != '<' {
			continue
		}
		j := i + 1
		for j < len(s) && s[j] >= 'a' && s[j] <= 'z' {
			j++
		}
		for end := i + 2; end <= j; end++ {
			if elementAt(s, s[i+1:end], end) {
				return true
			}
		}
	}
	return false
}

// elementAt checks the remainder of a tag whose name ends at
// s[from].
func elementAt(s, name string, from int) bool {
	// the tag body runs up to the next "<"
	body := s[from:]
	if k := strings.IndexByte(body, '<'); k >= 0 {
		body = body[:k]
	}

	for k := 1; k+1 < len(body); k++ {
		if body[k] == '/' && body[k+1] == '>' {
			r, _ := utf8.DecodeLastRuneInString(body[:k])
			if isSpace(r) {
				return true
			}
		}
	}

	closing := "</" + name + ">"
	for k := 0; k < len(body); k++ {
		if body[k] != '>' {
			continue
		}
		line := s[from+k+1:]
		if end := strings.IndexAny(line, "\n\r\u2028\u2029"); end >= 0 {
			line = line[:end]
		}
		if strings.Contains(line, closing) {
			return true
		}
	}
	return false
}
