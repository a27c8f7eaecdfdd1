// Package rules loads and represents the per-language rule sets that drive
// sentence splitting and validation.
package rules

import (
	"regexp"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Replacement is one ordered search/replace pair. Search is matched as a
// literal substring; an empty Replace deletes every occurrence.
type Replacement struct {
	Search  string
	Replace string
}

// RuleSet is the complete configuration for one language. It is fully
// populated after loading (absent fields take their defaults) and must be
// treated as read-only for the remainder of the run.
type RuleSet struct {
	Language string

	// Splitting
	AbbreviationPatterns []*regexp.Regexp

	// Validation
	AllowedSymbols               *regexp.Regexp // nil when unset; overrides DisallowedSymbols
	DisallowedSymbols            map[rune]struct{}
	BrokenWhitespace             []string
	DisallowedWords              map[string]struct{}
	DisallowedWordsCaseSensitive bool
	EvenSymbols                  []rune
	MaxWordCount                 int
	MinWordCount                 int
	MayEndWithColon              bool
	NeedsLetterStart             bool
	NeedsPunctuationEnd          bool
	NeedsUppercaseStart          bool
	QuoteStartWithLetter         bool
	MinCharacters                int
	MinTrimmedLength             int

	// Rewriting
	Replacements []Replacement

	// Raw pattern sources, kept for display (rules show).
	abbreviationSources  []string
	allowedSymbolsSource string

	folder cases.Caser
}

// Defaults returns a RuleSet carrying the documented default for every
// field. A missing rule document yields exactly this configuration.
func Defaults(lang string) *RuleSet {
	return &RuleSet{
		Language:             lang,
		DisallowedSymbols:    map[rune]struct{}{},
		DisallowedWords:      map[string]struct{}{},
		MaxWordCount:         14,
		MinWordCount:         1,
		MayEndWithColon:      false,
		NeedsLetterStart:     true,
		NeedsPunctuationEnd:  false,
		NeedsUppercaseStart:  false,
		QuoteStartWithLetter: true,
		MinCharacters:        0,
		MinTrimmedLength:     3,
		folder:               cases.Lower(language.Make(lang)),
	}
}

// NormalizeWord maps a token to the form used for disallowed-word lookups:
// identity when the rule set is case-sensitive, a language-aware lowercase
// fold otherwise. List entries are normalized the same way at load time.
func (r *RuleSet) NormalizeWord(w string) string {
	if r.DisallowedWordsCaseSensitive {
		return w
	}
	return r.folder.String(w)
}

// AddDisallowedWord normalizes and records one blacklist entry.
func (r *RuleSet) AddDisallowedWord(w string) {
	r.DisallowedWords[r.NormalizeWord(w)] = struct{}{}
}
