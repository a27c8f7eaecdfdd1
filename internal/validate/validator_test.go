package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxtools/sentex/internal/rules"
)

func validatorFor(t *testing.T, doc *rules.Document) *Validator {
	t.Helper()
	rs, err := rules.FromDocument("test", doc)
	require.NoError(t, err)
	return New(rs)
}

// permissive switches off every check the defaults enable, so individual
// predicates can be exercised in isolation.
func permissive() *rules.Document {
	f := false
	zero := 0
	return &rules.Document{
		MinTrimmedLength:     &zero,
		MinWordCount:         &zero,
		NeedsLetterStart:     &f,
		QuoteStartWithLetter: &f,
	}
}

func boolp(b bool) *bool { return &b }
func intp(n int) *int    { return &n }

func TestMinTrimmedLength(t *testing.T) {
	doc := permissive()
	doc.MinTrimmedLength = intp(3)
	v := validatorFor(t, doc)

	assert.Equal(t, ReasonTooShort, v.Validate("  aa     ").Reason)
	assert.True(t, v.Validate("  aaa     ").OK)
}

func TestLineBreakRejected(t *testing.T) {
	v := validatorFor(t, permissive())
	out := v.Validate("foo\n\nfoo")
	assert.Equal(t, ReasonLineBreak, out.Reason)
}

func TestDigitsRejected(t *testing.T) {
	v := validatorFor(t, permissive())
	out := v.Validate("This contains 1 number")
	assert.Equal(t, ReasonContainsDigit, out.Reason)
}

func TestWordCountBounds(t *testing.T) {
	doc := permissive()
	doc.MinWordCount = intp(2)
	v := validatorFor(t, doc)
	assert.Equal(t, ReasonWordCount, v.Validate("one").Reason)
	assert.True(t, v.Validate("two words").OK)

	doc = permissive()
	doc.MaxWordCount = intp(2)
	v = validatorFor(t, doc)
	assert.Equal(t, ReasonWordCount, v.Validate("three words now").Reason)
	assert.True(t, v.Validate("two words").OK)
}

func TestLetterDensity(t *testing.T) {
	doc := permissive()
	doc.MinCharacters = intp(3)
	v := validatorFor(t, doc)

	assert.Equal(t, ReasonLetterDensity, v.Validate("no!!").Reason)
	assert.True(t, v.Validate("yes!").OK)
}

func TestMayEndWithColon(t *testing.T) {
	v := validatorFor(t, permissive())
	assert.Equal(t, ReasonEndsWithColon, v.Validate("ends with colon:").Reason)

	doc := permissive()
	doc.MayEndWithColon = boolp(true)
	v = validatorFor(t, doc)
	assert.True(t, v.Validate("ends with colon:").OK)
}

func TestQuoteStartWithLetter(t *testing.T) {
	v := validatorFor(t, permissive())
	assert.True(t, v.Validate("\"😊 foo").OK)

	doc := permissive()
	doc.QuoteStartWithLetter = boolp(true)
	v = validatorFor(t, doc)
	assert.Equal(t, ReasonQuoteStart, v.Validate("\"😊 foo").Reason)
	assert.True(t, v.Validate("\"Quoted speech here").OK)
}

func TestNeedsPunctuationEnd(t *testing.T) {
	v := validatorFor(t, permissive())
	assert.True(t, v.Validate("This has no punctuation").OK)
	assert.True(t, v.Validate("This has punctuation.").OK)

	doc := permissive()
	doc.NeedsPunctuationEnd = boolp(true)
	v = validatorFor(t, doc)
	assert.Equal(t, ReasonPunctuationEnd, v.Validate("This has no punctuation").Reason)
	assert.True(t, v.Validate("This has punctuation.").OK)
}

func TestNeedsLetterStart(t *testing.T) {
	v := validatorFor(t, permissive())
	assert.True(t, v.Validate("?Foo").OK)

	doc := permissive()
	doc.NeedsLetterStart = boolp(true)
	v = validatorFor(t, doc)
	assert.Equal(t, ReasonLetterStart, v.Validate("?Foo").Reason)
	assert.True(t, v.Validate("This has a normal start").OK)
}

func TestNeedsUppercaseStart(t *testing.T) {
	v := validatorFor(t, permissive())
	assert.True(t, v.Validate("foo").OK)

	doc := permissive()
	doc.NeedsUppercaseStart = boolp(true)
	v = validatorFor(t, doc)
	assert.Equal(t, ReasonUppercaseStart, v.Validate("foo").Reason)
	assert.True(t, v.Validate("Foo").OK)
}

func TestDisallowedSymbols(t *testing.T) {
	doc := permissive()
	doc.DisallowedSymbols = []string{"%"}
	v := validatorFor(t, doc)

	assert.True(t, v.Validate("This has no percentage but other & characters").OK)
	assert.Equal(t, ReasonSymbol, v.Validate("This has a %").Reason)
}

func TestAllowedSymbolsRegex(t *testing.T) {
	doc := permissive()
	re := "[ -Z]"
	doc.AllowedSymbolsRegex = &re
	v := validatorFor(t, doc)

	assert.True(t, v.Validate("ONLY UPPERCASE AND SPACE IS ALLOWED").OK)
	assert.Equal(t, ReasonSymbol, v.Validate("This is not uppercase").Reason)
}

func TestAllowedSymbolsOverridesDisallowed(t *testing.T) {
	doc := permissive()
	re := "[ -Z]"
	doc.AllowedSymbolsRegex = &re
	doc.DisallowedSymbols = []string{"O"}
	v := validatorFor(t, doc)

	assert.True(t, v.Validate("DISALLOWED O IS OKAY").OK)
}

func TestBrokenWhitespace(t *testing.T) {
	doc := permissive()
	doc.BrokenWhitespace = []string{"  "}
	v := validatorFor(t, doc)

	assert.True(t, v.Validate("This has no broken whitespace").OK)
	assert.Equal(t, ReasonBrokenWhitespace, v.Validate("This has  broken whitespace").Reason)
}

func TestEvenSymbols(t *testing.T) {
	v := validatorFor(t, permissive())
	assert.True(t, v.Validate("This has \"uneven quotes and it is fine!").OK)

	doc := permissive()
	doc.EvenSymbols = []string{`"`, "("}
	v = validatorFor(t, doc)
	assert.Equal(t, ReasonUnevenSymbols, v.Validate("This has \"uneven quotes and it is not fine!").Reason)
	assert.Equal(t, ReasonUnevenSymbols, v.Validate("This has (uneven parenthesis and it is not fine!").Reason)

	doc = permissive()
	doc.EvenSymbols = []string{`"`}
	v = validatorFor(t, doc)
	assert.True(t, v.Validate("This has \"even\" quotes and it is fine!").OK)

	doc = permissive()
	doc.EvenSymbols = []string{`"`, "'"}
	v = validatorFor(t, doc)
	assert.Equal(t, ReasonUnevenSymbols, v.Validate("This has \"uneven quotes' and it is fine!").Reason)
	assert.Equal(t, ReasonUnevenSymbols, v.Validate("This has \"uneven\" quotes' and it is fine!").Reason)
}

func TestDisallowedWords(t *testing.T) {
	doc := permissive()
	doc.DisallowedWords = []string{"blerg"}
	v := validatorFor(t, doc)

	assert.Equal(t, ReasonDisallowedWord, v.Validate("This has blerg").Reason)
	assert.Equal(t, ReasonDisallowedWord, v.Validate("This has a capital bLeRg").Reason)
	assert.Equal(t, ReasonDisallowedWord, v.Validate("Here is a blerg, with comma").Reason)
	assert.True(t, v.Validate("This hasn't bl e r g").OK)
}

func TestDisallowedWordsWithApostrophe(t *testing.T) {
	doc := permissive()
	doc.DisallowedWords = []string{"a's"}
	v := validatorFor(t, doc)
	assert.Equal(t, ReasonDisallowedWord, v.Validate("This has a's").Reason)
}

func TestDisallowedWordsCaseSensitive(t *testing.T) {
	doc := permissive()
	doc.DisallowedWords = []string{"Blerg"}
	doc.DisallowedWordsCaseSensitive = boolp(true)
	v := validatorFor(t, doc)

	assert.Equal(t, ReasonDisallowedWord, v.Validate("This has Blerg").Reason)
	assert.True(t, v.Validate("This has blerg").OK)
}

func TestFirstFailureNamesReason(t *testing.T) {
	// Fails word count (too many) and contains a disallowed word; the
	// earlier check in the battery wins.
	doc := permissive()
	doc.MaxWordCount = intp(3)
	doc.DisallowedWords = []string{"blerg"}
	v := validatorFor(t, doc)

	out := v.Validate("this blerg has too many words")
	assert.Equal(t, ReasonWordCount, out.Reason)
}

func TestValidatorIsPure(t *testing.T) {
	v := validatorFor(t, permissive())
	for i := 0; i < 3; i++ {
		assert.True(t, v.Validate("Same input, same verdict.").OK)
	}
}
