package rules

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ConfigError reports a malformed rule document or an uncompilable pattern.
// It is the one fatal condition in a run: the engine's behavior is undefined
// under a rule set it cannot fully realize.
type ConfigError struct {
	Language string
	Field    string
	Err      error
}

func (e *ConfigError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("rules for %q: %v", e.Language, e.Err)
	}
	return fmt.Sprintf("rules for %q: field %s: %v", e.Language, e.Field, e.Err)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// Document mirrors the on-disk YAML shape of a rule file. Pointer fields
// distinguish "absent, use the default" from an explicit zero value.
type Document struct {
	AbbreviationPatterns         []string   `yaml:"abbreviation_patterns"`
	AllowedSymbolsRegex          *string    `yaml:"allowed_symbols_regex"`
	DisallowedSymbols            []string   `yaml:"disallowed_symbols"`
	BrokenWhitespace             []string   `yaml:"broken_whitespace"`
	DisallowedWords              []string   `yaml:"disallowed_words"`
	DisallowedWordsCaseSensitive *bool      `yaml:"disallowed_words_case_sensitive"`
	EvenSymbols                  []string   `yaml:"even_symbols"`
	MaxWordCount                 *int       `yaml:"max_word_count"`
	MinWordCount                 *int       `yaml:"min_word_count"`
	MayEndWithColon              *bool      `yaml:"may_end_with_colon"`
	NeedsLetterStart             *bool      `yaml:"needs_letter_start"`
	NeedsPunctuationEnd          *bool      `yaml:"needs_punctuation_end"`
	NeedsUppercaseStart          *bool      `yaml:"needs_uppercase_start"`
	QuoteStartWithLetter         *bool      `yaml:"quote_start_with_letter"`
	MinCharacters                *int       `yaml:"min_characters"`
	MinTrimmedLength             *int       `yaml:"min_trimmed_length"`
	Replacements                 [][]string `yaml:"replacements"`
}

// Load builds the RuleSet for one language from <dir>/<language>.yaml plus
// the optional word list <dir>/disallowed_words/<language>.txt. A missing
// rule file yields Defaults(language); a present but invalid one is a
// ConfigError.
func Load(dir, lang string) (*RuleSet, error) {
	rs := Defaults(lang)

	path := filepath.Join(dir, lang+".yaml")
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// No document for this language: every field keeps its default.
	case err != nil:
		return nil, &ConfigError{Language: lang, Err: err}
	default:
		var doc Document
		dec := yaml.NewDecoder(strings.NewReader(string(data)))
		dec.KnownFields(true)
		switch err := dec.Decode(&doc); {
		case errors.Is(err, io.EOF):
			// Empty or comments-only document: every field keeps its
			// default, same as a missing file.
		case err != nil:
			return nil, &ConfigError{Language: lang, Err: fmt.Errorf("parse %s: %w", path, err)}
		default:
			if err := rs.apply(&doc); err != nil {
				return nil, err
			}
		}
	}

	if err := mergeWordList(rs, filepath.Join(dir, "disallowed_words", lang+".txt")); err != nil {
		return nil, err
	}
	return rs, nil
}

// FromDocument builds a RuleSet directly from an in-memory document,
// overlaying it on the defaults for lang. Same validation as Load.
func FromDocument(lang string, doc *Document) (*RuleSet, error) {
	rs := Defaults(lang)
	if err := rs.apply(doc); err != nil {
		return nil, err
	}
	return rs, nil
}

// apply overlays the non-absent fields of doc onto the defaulted rule set,
// compiling patterns as it goes.
func (r *RuleSet) apply(doc *Document) error {
	lang := r.Language

	for _, src := range doc.AbbreviationPatterns {
		re, err := regexp.Compile(src)
		if err != nil {
			return &ConfigError{Language: lang, Field: "abbreviation_patterns", Err: err}
		}
		r.AbbreviationPatterns = append(r.AbbreviationPatterns, re)
		r.abbreviationSources = append(r.abbreviationSources, src)
	}

	if doc.AllowedSymbolsRegex != nil && *doc.AllowedSymbolsRegex != "" {
		re, err := regexp.Compile(*doc.AllowedSymbolsRegex)
		if err != nil {
			return &ConfigError{Language: lang, Field: "allowed_symbols_regex", Err: err}
		}
		r.AllowedSymbols = re
		r.allowedSymbolsSource = *doc.AllowedSymbolsRegex
	}

	for _, s := range doc.DisallowedSymbols {
		for _, c := range s {
			r.DisallowedSymbols[c] = struct{}{}
		}
	}
	for _, s := range doc.EvenSymbols {
		runes := []rune(s)
		if len(runes) != 1 {
			return &ConfigError{Language: lang, Field: "even_symbols", Err: fmt.Errorf("%q is not a single character", s)}
		}
		r.EvenSymbols = append(r.EvenSymbols, runes[0])
	}

	r.BrokenWhitespace = append(r.BrokenWhitespace, doc.BrokenWhitespace...)

	if doc.DisallowedWordsCaseSensitive != nil {
		r.DisallowedWordsCaseSensitive = *doc.DisallowedWordsCaseSensitive
	}
	for _, w := range doc.DisallowedWords {
		r.AddDisallowedWord(w)
	}

	if doc.MaxWordCount != nil {
		r.MaxWordCount = *doc.MaxWordCount
	}
	if doc.MinWordCount != nil {
		r.MinWordCount = *doc.MinWordCount
	}
	if doc.MayEndWithColon != nil {
		r.MayEndWithColon = *doc.MayEndWithColon
	}
	if doc.NeedsLetterStart != nil {
		r.NeedsLetterStart = *doc.NeedsLetterStart
	}
	if doc.NeedsPunctuationEnd != nil {
		r.NeedsPunctuationEnd = *doc.NeedsPunctuationEnd
	}
	if doc.NeedsUppercaseStart != nil {
		r.NeedsUppercaseStart = *doc.NeedsUppercaseStart
	}
	if doc.QuoteStartWithLetter != nil {
		r.QuoteStartWithLetter = *doc.QuoteStartWithLetter
	}
	if doc.MinCharacters != nil {
		r.MinCharacters = *doc.MinCharacters
	}
	if doc.MinTrimmedLength != nil {
		r.MinTrimmedLength = *doc.MinTrimmedLength
	}

	for _, pair := range doc.Replacements {
		switch len(pair) {
		case 1:
			r.Replacements = append(r.Replacements, Replacement{Search: pair[0]})
		case 2:
			r.Replacements = append(r.Replacements, Replacement{Search: pair[0], Replace: pair[1]})
		default:
			return &ConfigError{Language: lang, Field: "replacements", Err: fmt.Errorf("entry must be [search] or [search, replacement], got %d elements", len(pair))}
		}
	}
	return nil
}

// mergeWordList unions a flat one-word-per-line file into the disallowed
// word set. Blank lines and #-comments are skipped; a missing file is fine.
func mergeWordList(r *RuleSet, path string) error {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return &ConfigError{Language: r.Language, Field: "disallowed_words", Err: err}
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	for sc.Scan() {
		w := strings.TrimSpace(sc.Text())
		if w == "" || strings.HasPrefix(w, "#") {
			continue
		}
		r.AddDisallowedWord(w)
	}
	if err := sc.Err(); err != nil {
		return &ConfigError{Language: r.Language, Field: "disallowed_words", Err: err}
	}
	return nil
}

// Document renders the effective configuration back into its on-disk shape,
// with defaults filled in. Used by "sentex rules show".
func (r *RuleSet) Document() *Document {
	doc := &Document{
		AbbreviationPatterns:         append([]string(nil), r.abbreviationSources...),
		BrokenWhitespace:             append([]string(nil), r.BrokenWhitespace...),
		DisallowedWordsCaseSensitive: &r.DisallowedWordsCaseSensitive,
		MaxWordCount:                 &r.MaxWordCount,
		MinWordCount:                 &r.MinWordCount,
		MayEndWithColon:              &r.MayEndWithColon,
		NeedsLetterStart:             &r.NeedsLetterStart,
		NeedsPunctuationEnd:          &r.NeedsPunctuationEnd,
		NeedsUppercaseStart:          &r.NeedsUppercaseStart,
		QuoteStartWithLetter:         &r.QuoteStartWithLetter,
		MinCharacters:                &r.MinCharacters,
		MinTrimmedLength:             &r.MinTrimmedLength,
	}
	if r.allowedSymbolsSource != "" {
		doc.AllowedSymbolsRegex = &r.allowedSymbolsSource
	}
	for c := range r.DisallowedSymbols {
		doc.DisallowedSymbols = append(doc.DisallowedSymbols, string(c))
	}
	sort.Strings(doc.DisallowedSymbols)
	for w := range r.DisallowedWords {
		doc.DisallowedWords = append(doc.DisallowedWords, w)
	}
	sort.Strings(doc.DisallowedWords)
	for _, c := range r.EvenSymbols {
		doc.EvenSymbols = append(doc.EvenSymbols, string(c))
	}
	for _, rep := range r.Replacements {
		doc.Replacements = append(doc.Replacements, []string{rep.Search, rep.Replace})
	}
	return doc
}
