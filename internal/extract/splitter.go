// Package extract carves candidate sentences out of raw article text and
// applies the configured rewrites. It over-generates on purpose: filtering
// is the validator's job.
package extract

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/voxtools/sentex/internal/rules"
)

// Candidate is one sentence-shaped span carved from an article, trimmed of
// surrounding whitespace. Index is its position among the article's
// candidates and fixes emission order.
type Candidate struct {
	Text  string
	Index int
}

// Runes of trailing context included when testing abbreviation patterns
// against a potential split point.
const abbrevWindow = 6

// Splitter partitions article text into Candidates at terminal punctuation,
// suppressing splits where an abbreviation pattern matches the surrounding
// context.
type Splitter struct {
	patterns []*regexp.Regexp
}

// NewSplitter builds a Splitter from the rule set's abbreviation patterns.
func NewSplitter(rs *rules.RuleSet) *Splitter {
	return &Splitter{patterns: rs.AbbreviationPatterns}
}

// Split returns the article's candidates in text order. A boundary is a run
// of '.', '?' or '!' followed by whitespace or end of text; empty spans are
// dropped.
func (s *Splitter) Split(text string) []Candidate {
	runes := []rune(text)
	var out []Candidate

	emit := func(span []rune) {
		t := strings.TrimSpace(string(span))
		if t == "" {
			return
		}
		out = append(out, Candidate{Text: t, Index: len(out)})
	}

	start := 0
	i := 0
	for i < len(runes) {
		if !isTerminal(runes[i]) {
			i++
			continue
		}
		// Consume the whole punctuation run ("No!!!" splits once, after it).
		end := i
		for end+1 < len(runes) && isTerminal(runes[end+1]) {
			end++
		}
		boundary := end+1 >= len(runes) || unicode.IsSpace(runes[end+1])
		if boundary && !s.suppressed(runes, i, end) {
			emit(runes[start : end+1])
			start = end + 1
		}
		i = end + 1
	}
	emit(runes[start:])
	return out
}

func isTerminal(r rune) bool {
	return r == '.' || r == '?' || r == '!'
}

// suppressed tests the context around a punctuation run against the
// abbreviation patterns, in configured order; the first match wins. The
// context is the whitespace-delimited token preceding the run, the run
// itself, and a short trailing window.
func (s *Splitter) suppressed(runes []rune, runStart, runEnd int) bool {
	if len(s.patterns) == 0 {
		return false
	}
	tok := runStart
	for tok > 0 && !unicode.IsSpace(runes[tok-1]) {
		tok--
	}
	end := runEnd + 1 + abbrevWindow
	if end > len(runes) {
		end = len(runes)
	}
	window := string(runes[tok:end])
	for _, p := range s.patterns {
		if p.MatchString(window) {
			return true
		}
	}
	return false
}
