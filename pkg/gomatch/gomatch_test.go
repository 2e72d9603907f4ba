package gomatch_test

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"digital.vasic.matchers/pkg/gomatch"
	"digital.vasic.matchers/pkg/matcher"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/net/html"
)

type TypeError struct{}

func (*TypeError) Error() string { return "type error" }

var _ = Describe("Matchers", func() {
	var m *gomatch.Matchers

	BeforeEach(func() {
		m = gomatch.New()
		matcher.Setup(m)
	})

	Describe("arrays", func() {
		It("accepts arrays of numbers and stops at the first non-number", func() {
			Expect([]int{1, 2, 3}).To(m.BeArrayOfNumbers())
			Expect([]any{1, "2", 3}).NotTo(m.BeArrayOfNumbers())
		})

		It("checks sizes", func() {
			Expect([]string{"a", "b"}).To(m.BeArrayOfSize(2))
			Expect([]string{}).To(m.BeEmptyArray())
			Expect([]string{"a"}).To(m.BeNonEmptyArray())
			Expect("ab").NotTo(m.BeArray())
		})

		It("treats empty arrays as arrays of anything", func() {
			Expect([]any{}).To(m.BeArrayOfStrings())
			Expect([]any{}).To(m.BeArrayOfBooleans())
			Expect([]any{}).To(m.BeArrayOfObjects())
		})

		It("uses strict equality for members", func() {
			Expect([]any{1, "1"}).To(m.ContainMember(1))
			Expect([]any{1, "1"}).NotTo(m.ContainMember("2"))
			Expect([]any{"1"}).NotTo(m.ContainMember(1))
		})

		It("compares numbers by value across numeric types", func() {
			Expect([]any{int64(1)}).To(m.ContainMember(1))
			Expect([]any{1.5, 2.0}).To(m.ContainMember(2))
			Expect([]any{1.5}).NotTo(m.ContainMember(1))
		})
	})

	Describe("booleans", func() {
		It("distinguishes booleans from truthy values", func() {
			yes := true
			Expect(true).To(m.BeTrue())
			Expect(&yes).To(m.BeTrue())
			Expect("true").NotTo(m.BeTrue())
			Expect(false).To(m.BeFalse())
			Expect(0).NotTo(m.BeBoolean())
		})
	})

	Describe("browser values", func() {
		It("has no window or document without an environment", func() {
			Expect(nil).NotTo(m.BeWindow())
			Expect(nil).NotTo(m.BeDocument())
		})

		It("recognises the injected window and document", func() {
			window, document := &struct{ W int }{}, &struct{ D int }{}
			matcher.Setup(m, matcher.WithEnvironment(matcher.StaticEnvironment{
				WindowObject:   window,
				DocumentObject: document,
			}))

			Expect(window).To(m.BeWindow())
			Expect(document).To(m.BeDocument())
			Expect(document).NotTo(m.BeWindow())
		})

		It("classifies parsed nodes", func() {
			doc, err := html.Parse(strings.NewReader("<p>hi<!--c--></p>"))
			Expect(err).NotTo(HaveOccurred())

			body := doc.FirstChild.LastChild
			p := body.FirstChild
			Expect(p).To(m.BeHTMLNode())
			Expect(p.FirstChild).To(m.BeHTMLTextNode())
			Expect(p.LastChild).To(m.BeHTMLCommentNode())
			Expect(doc).NotTo(m.BeHTMLNode())
		})

		It("recognises dates", func() {
			Expect(time.Now()).To(m.BeDate())
			Expect("2024-01-01").NotTo(m.BeDate())
		})
	})

	Describe("errors", func() {
		It("observes panics and returned errors", func() {
			Expect(func() { panic("boom") }).To(m.ThrowError())
			Expect(func() error { return errors.New("x") }).To(m.ThrowError())
			Expect(func() {}).NotTo(m.ThrowError())
		})

		It("compares error type names exactly", func() {
			raise := func() error { return &TypeError{} }
			Expect(raise).To(m.ThrowErrorOfType("TypeError"))
			Expect(raise).NotTo(m.ThrowErrorOfType("RangeError"))
			Expect(func() {}).NotTo(m.ThrowErrorOfType("TypeError"))
		})
	})

	Describe("numbers", func() {
		It("rejects numeric strings as numbers but calculates with them", func() {
			Expect(42).To(m.BeNumber())
			Expect("42").NotTo(m.BeNumber())
			Expect("42").To(m.BeCalculable())
			Expect("abc").NotTo(m.BeCalculable())
		})

		It("checks parity", func() {
			Expect(4).To(m.BeEvenNumber())
			Expect(5).To(m.BeOddNumber())
			Expect("4").NotTo(m.BeEvenNumber())
			Expect("5").NotTo(m.BeOddNumber())
		})
	})

	Describe("objects", func() {
		It("checks member presence only", func() {
			api := map[string]any{"foo": 1}
			Expect(map[string]any{"foo": 2}).To(m.Implement(api))
			Expect(map[string]any{}).NotTo(m.Implement(api))
			Expect(nil).NotTo(m.Implement(api))
		})

		It("recognises objects and functions", func() {
			Expect(map[string]int{}).To(m.BeObject())
			Expect(7).NotTo(m.BeObject())
			Expect(strings.ToUpper).To(m.BeFunction())
		})
	})

	Describe("strings", func() {
		It("checks string shapes", func() {
			Expect("").To(m.BeEmptyString())
			Expect("x").To(m.BeNonEmptyString())
			Expect(1).NotTo(m.BeString())
			Expect("<b>x</b>").To(m.BeHTMLString())
			Expect("  ").To(m.BeWhitespace())
			Expect(" x ").NotTo(m.BeWhitespace())
			Expect("hello").To(m.MatchRegExp(regexp.MustCompile(`^h`)))
			Expect("hello").To(m.MatchRegExp(`l+o$`))
		})
	})

	Describe("registration", func() {
		It("errors when no matchers were registered", func() {
			fresh := gomatch.New()
			ok, err := fresh.BeTrue().Match(true)
			Expect(err).To(MatchError(ContainSubstring("not registered")))
			Expect(ok).To(BeFalse())
		})

		It("matches custom predicates by name", func() {
			r := matcher.NewRegistry()
			Expect(r.Register("is_answer", func(actual any, _ ...any) bool {
				return actual == 42
			})).To(Succeed())
			m.AddMatchers(r.Matchers())

			Expect(42).To(m.Satisfy("is_answer"))
			Expect(41).NotTo(m.Satisfy("is_answer"))
		})

		It("describes failures", func() {
			pm := m.BeArrayOfSize(3)
			Expect(pm.FailureMessage([]int{1})).To(ContainSubstring("to satisfy is_array_of_size with"))
			Expect(pm.NegatedFailureMessage([]int{1})).To(ContainSubstring("not to satisfy is_array_of_size"))
			Expect(m.BeTrue().FailureMessage("true")).To(ContainSubstring("to satisfy is_true"))
		})
	})
})
