// Package validate decides whether a candidate sentence qualifies for the
// corpus. The checks are a fixed ordered list of pure predicates closing
// over the rule set; the first failing check names the rejection reason.
// Rejection is normal control flow, never an error.
package validate

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/voxtools/sentex/internal/rules"
)

// Reason identifies the first check a rejected candidate failed.
type Reason string

const (
	ReasonTooShort         Reason = "too_short"
	ReasonLineBreak        Reason = "line_break"
	ReasonContainsDigit    Reason = "contains_digit"
	ReasonWordCount        Reason = "word_count"
	ReasonLetterStart      Reason = "letter_start"
	ReasonUppercaseStart   Reason = "uppercase_start"
	ReasonQuoteStart       Reason = "quote_start"
	ReasonPunctuationEnd   Reason = "punctuation_end"
	ReasonEndsWithColon    Reason = "ends_with_colon"
	ReasonSymbol           Reason = "disallowed_symbol"
	ReasonBrokenWhitespace Reason = "broken_whitespace"
	ReasonLetterDensity    Reason = "letter_density"
	ReasonUnevenSymbols    Reason = "uneven_symbols"
	ReasonDisallowedWord   Reason = "disallowed_word"
)

// Outcome is the accept/reject decision for one candidate.
type Outcome struct {
	OK     bool
	Reason Reason
}

type check struct {
	reason Reason
	pass   func(string) bool
}

// Validator applies the check battery for one language. Safe to reuse
// across every article in a run; it never mutates after construction.
type Validator struct {
	checks []check
}

// New builds the ordered check battery over rs.
func New(rs *rules.RuleSet) *Validator {
	return &Validator{checks: []check{
		{ReasonTooShort, func(t string) bool {
			return utf8.RuneCountInString(t) >= rs.MinTrimmedLength
		}},
		{ReasonLineBreak, func(t string) bool {
			return !strings.ContainsRune(t, '\n')
		}},
		{ReasonContainsDigit, func(t string) bool {
			return !strings.ContainsFunc(t, unicode.IsDigit)
		}},
		{ReasonWordCount, func(t string) bool {
			n := len(strings.Fields(t))
			return n >= rs.MinWordCount && n <= rs.MaxWordCount
		}},
		{ReasonLetterStart, func(t string) bool {
			if !rs.NeedsLetterStart {
				return true
			}
			first, _ := utf8.DecodeRuneInString(t)
			return unicode.IsLetter(first)
		}},
		{ReasonUppercaseStart, func(t string) bool {
			if !rs.NeedsUppercaseStart {
				return true
			}
			first, _ := utf8.DecodeRuneInString(t)
			return !unicode.IsLower(first)
		}},
		{ReasonQuoteStart, func(t string) bool {
			if !rs.QuoteStartWithLetter {
				return true
			}
			first, size := utf8.DecodeRuneInString(t)
			if !isQuote(first) {
				return true
			}
			second, _ := utf8.DecodeRuneInString(t[size:])
			return unicode.IsLetter(second)
		}},
		{ReasonPunctuationEnd, func(t string) bool {
			if !rs.NeedsPunctuationEnd {
				return true
			}
			last, _ := utf8.DecodeLastRuneInString(t)
			return unicode.IsPunct(last)
		}},
		{ReasonEndsWithColon, func(t string) bool {
			return rs.MayEndWithColon || !strings.HasSuffix(t, ":")
		}},
		{ReasonSymbol, func(t string) bool {
			if rs.AllowedSymbols != nil {
				for _, c := range t {
					if !rs.AllowedSymbols.MatchString(string(c)) {
						return false
					}
				}
				return true
			}
			for _, c := range t {
				if _, bad := rs.DisallowedSymbols[c]; bad {
					return false
				}
			}
			return true
		}},
		{ReasonBrokenWhitespace, func(t string) bool {
			for _, broken := range rs.BrokenWhitespace {
				if strings.Contains(t, broken) {
					return false
				}
			}
			return true
		}},
		{ReasonLetterDensity, func(t string) bool {
			if rs.MinCharacters == 0 {
				return true
			}
			n := 0
			for _, c := range t {
				if unicode.IsLetter(c) {
					n++
				}
			}
			return n >= rs.MinCharacters
		}},
		{ReasonUnevenSymbols, func(t string) bool {
			for _, sym := range rs.EvenSymbols {
				if strings.Count(t, string(sym))%2 != 0 {
					return false
				}
			}
			return true
		}},
		{ReasonDisallowedWord, func(t string) bool {
			if len(rs.DisallowedWords) == 0 {
				return true
			}
			for _, field := range strings.Fields(t) {
				w := strings.TrimFunc(field, func(r rune) bool {
					return !unicode.IsLetter(r)
				})
				if w == "" {
					continue
				}
				if _, bad := rs.DisallowedWords[rs.NormalizeWord(w)]; bad {
					return false
				}
			}
			return true
		}},
	}}
}

// Validate runs the battery over the trimmed candidate text.
func (v *Validator) Validate(text string) Outcome {
	t := strings.TrimSpace(text)
	for _, c := range v.checks {
		if !c.pass(t) {
			return Outcome{Reason: c.reason}
		}
	}
	return Outcome{OK: true}
}

func isQuote(r rune) bool {
	return strings.ContainsRune(`"'`+"“”‘’«»", r)
}
