package matcher

// Built-in matcher names.
const (
	IsArray           = "is_array"
	IsArrayOfSize     = "is_array_of_size"
	IsEmptyArray      = "is_empty_array"
	IsNonEmptyArray   = "is_non_empty_array"
	IsArrayOfObjects  = "is_array_of_objects"
	IsArrayOfStrings  = "is_array_of_strings"
	IsArrayOfNumbers  = "is_array_of_numbers"
	IsArrayOfBooleans = "is_array_of_booleans"
	Contains          = "contains"

	IsBoolean = "is_boolean"
	IsTrue    = "is_true"
	IsFalse   = "is_false"

	IsWindow          = "is_window"
	IsDocument        = "is_document"
	IsHTMLNode        = "is_html_node"
	IsHTMLTextNode    = "is_html_text_node"
	IsHTMLCommentNode = "is_html_comment_node"
	IsDate            = "is_date"

	ThrowsError       = "throws_error"
	ThrowsErrorOfType = "throws_error_of_type"

	IsNumber     = "is_number"
	IsEvenNumber = "is_even_number"
	IsOddNumber  = "is_odd_number"
	IsCalculable = "is_calculable"

	IsObject   = "is_object"
	Implements = "implements"
	IsFunction = "is_function"

	IsString         = "is_string"
	IsEmptyString    = "is_empty_string"
	IsNonEmptyString = "is_non_empty_string"
	IsHTMLString     = "is_html_string"
	IsWhitespace     = "is_whitespace"
	Matches          = "matches"
)

// registerDefaults registers every built-in predicate.
func (r *Registry) registerDefaults() {
	r.predicates[IsArray] = isArray
	r.predicates[IsArrayOfSize] = isArrayOfSize
	r.predicates[IsEmptyArray] = isEmptyArray
	r.predicates[IsNonEmptyArray] = isNonEmptyArray
	r.predicates[IsArrayOfObjects] = r.arrayOf(IsObject)
	r.predicates[IsArrayOfStrings] = r.arrayOf(IsString)
	r.predicates[IsArrayOfNumbers] = r.arrayOf(IsNumber)
	r.predicates[IsArrayOfBooleans] = r.arrayOf(IsBoolean)
	r.predicates[Contains] = contains

	r.predicates[IsBoolean] = isBoolean
	r.predicates[IsTrue] = isTrue
	r.predicates[IsFalse] = isFalse

	r.predicates[IsWindow] = r.isWindow
	r.predicates[IsDocument] = r.isDocument
	r.predicates[IsHTMLNode] = nodeKind(ElementNode)
	r.predicates[IsHTMLTextNode] = nodeKind(TextNode)
	r.predicates[IsHTMLCommentNode] = nodeKind(CommentNode)
	r.predicates[IsDate] = isDate

	r.predicates[ThrowsError] = throwsError
	r.predicates[ThrowsErrorOfType] = throwsErrorOfType

	r.predicates[IsNumber] = isNumber
	r.predicates[IsEvenNumber] = isEvenNumber
	r.predicates[IsOddNumber] = isOddNumber
	r.predicates[IsCalculable] = isCalculable

	r.predicates[IsObject] = isObject
	r.predicates[Implements] = implements
	r.predicates[IsFunction] = isFunction

	r.predicates[IsString] = isString
	r.predicates[IsEmptyString] = isEmptyString
	r.predicates[IsNonEmptyString] = isNonEmptyString
	r.predicates[IsHTMLString] = isHTMLString
	r.predicates[IsWhitespace] = isWhitespace
	r.predicates[Matches] = matches
}

// argumentMatchers lists the built-ins that need an explicit
// argument, mapped to whether that argument is text.
var argumentMatchers = map[string]bool{
	IsArrayOfSize:     false,
	Contains:          false,
	Implements:        false,
	ThrowsErrorOfType: true,
	Matches:           true,
}

// RequiresArgument reports whether the built-in matcher name
// fails without an explicit argument.
func RequiresArgument(name string) bool {
	_, ok := argumentMatchers[name]
	return ok
}

func takesText(name string) bool {
	return argumentMatchers[name]
}
