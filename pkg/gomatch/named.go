package gomatch

import (
	"digital.vasic.matchers/pkg/matcher"
	"github.com/onsi/gomega/types"
)

// Arrays

func (m *Matchers) BeArray() types.GomegaMatcher {
	return m.Satisfy(matcher.IsArray)
}

func (m *Matchers) BeArrayOfSize(size int) types.GomegaMatcher {
	return m.Satisfy(matcher.IsArrayOfSize, size)
}

func (m *Matchers) BeEmptyArray() types.GomegaMatcher {
	return m.Satisfy(matcher.IsEmptyArray)
}

func (m *Matchers) BeNonEmptyArray() types.GomegaMatcher {
	return m.Satisfy(matcher.IsNonEmptyArray)
}

func (m *Matchers) BeArrayOfObjects() types.GomegaMatcher {
	return m.Satisfy(matcher.IsArrayOfObjects)
}

func (m *Matchers) BeArrayOfStrings() types.GomegaMatcher {
	return m.Satisfy(matcher.IsArrayOfStrings)
}

func (m *Matchers) BeArrayOfNumbers() types.GomegaMatcher {
	return m.Satisfy(matcher.IsArrayOfNumbers)
}

func (m *Matchers) BeArrayOfBooleans() types.GomegaMatcher {
	return m.Satisfy(matcher.IsArrayOfBooleans)
}

// ContainMember uses strict equality, unlike Gomega's
// ContainElement: numbers match by value, anything else needs
// the same type.
func (m *Matchers) ContainMember(member any) types.GomegaMatcher {
	return m.Satisfy(matcher.Contains, member)
}

// Booleans

func (m *Matchers) BeBoolean() types.GomegaMatcher {
	return m.Satisfy(matcher.IsBoolean)
}

func (m *Matchers) BeTrue() types.GomegaMatcher {
	return m.Satisfy(matcher.IsTrue)
}

func (m *Matchers) BeFalse() types.GomegaMatcher {
	return m.Satisfy(matcher.IsFalse)
}

// Browser

func (m *Matchers) BeWindow() types.GomegaMatcher {
	return m.Satisfy(matcher.IsWindow)
}

func (m *Matchers) BeDocument() types.GomegaMatcher {
	return m.Satisfy(matcher.IsDocument)
}

func (m *Matchers) BeHTMLNode() types.GomegaMatcher {
	return m.Satisfy(matcher.IsHTMLNode)
}

func (m *Matchers) BeHTMLTextNode() types.GomegaMatcher {
	return m.Satisfy(matcher.IsHTMLTextNode)
}

func (m *Matchers) BeHTMLCommentNode() types.GomegaMatcher {
	return m.Satisfy(matcher.IsHTMLCommentNode)
}

func (m *Matchers) BeDate() types.GomegaMatcher {
	return m.Satisfy(matcher.IsDate)
}

// Errors

func (m *Matchers) ThrowError() types.GomegaMatcher {
	return m.Satisfy(matcher.ThrowsError)
}

func (m *Matchers) ThrowErrorOfType(typeName string) types.GomegaMatcher {
	return m.Satisfy(matcher.ThrowsErrorOfType, typeName)
}

// Numbers

func (m *Matchers) BeNumber() types.GomegaMatcher {
	return m.Satisfy(matcher.IsNumber)
}

func (m *Matchers) BeEvenNumber() types.GomegaMatcher {
	return m.Satisfy(matcher.IsEvenNumber)
}

func (m *Matchers) BeOddNumber() types.GomegaMatcher {
	return m.Satisfy(matcher.IsOddNumber)
}

func (m *Matchers) BeCalculable() types.GomegaMatcher {
	return m.Satisfy(matcher.IsCalculable)
}

// Objects

func (m *Matchers) BeObject() types.GomegaMatcher {
	return m.Satisfy(matcher.IsObject)
}

func (m *Matchers) Implement(api any) types.GomegaMatcher {
	return m.Satisfy(matcher.Implements, api)
}

func (m *Matchers) BeFunction() types.GomegaMatcher {
	return m.Satisfy(matcher.IsFunction)
}

// Strings

func (m *Matchers) BeString() types.GomegaMatcher {
	return m.Satisfy(matcher.IsString)
}

func (m *Matchers) BeEmptyString() types.GomegaMatcher {
	return m.Satisfy(matcher.IsEmptyString)
}

func (m *Matchers) BeNonEmptyString() types.GomegaMatcher {
	return m.Satisfy(matcher.IsNonEmptyString)
}

func (m *Matchers) BeHTMLString() types.GomegaMatcher {
	return m.Satisfy(matcher.IsHTMLString)
}

func (m *Matchers) BeWhitespace() types.GomegaMatcher {
	return m.Satisfy(matcher.IsWhitespace)
}

// MatchRegExp accepts a *regexp.Regexp or a pattern string.
func (m *Matchers) MatchRegExp(pattern any) types.GomegaMatcher {
	return m.Satisfy(matcher.Matches, pattern)
}
