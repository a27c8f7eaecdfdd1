// Package wordfreq counts token frequencies over harvested candidates. The
// sorted output feeds the blacklist workflow: words rarer than a chosen
// threshold are good candidates for a language's disallowed_words list.
package wordfreq

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Entry is one word with its occurrence count.
type Entry struct {
	Word  string
	Count int
}

// Counter accumulates case-folded token counts for one language.
type Counter struct {
	counts map[string]int
	folder cases.Caser
}

// NewCounter creates a Counter folding case for lang.
func NewCounter(lang string) *Counter {
	return &Counter{
		counts: map[string]int{},
		folder: cases.Lower(language.Make(lang)),
	}
}

// Add tokenizes text on whitespace, strips surrounding non-letters from
// each token and counts the folded result. Tokens with no letters are
// dropped.
func (c *Counter) Add(text string) {
	for _, field := range strings.Fields(text) {
		w := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r)
		})
		if w == "" {
			continue
		}
		c.counts[c.folder.String(w)]++
	}
}

// Entries returns all counted words, most frequent first; ties break
// alphabetically so output is deterministic.
func (c *Counter) Entries() []Entry {
	out := make([]Entry, 0, len(c.counts))
	for w, n := range c.counts {
		out = append(out, Entry{Word: w, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Word < out[j].Word
	})
	return out
}

// WriteTSV writes "word<TAB>count" lines. Words counted fewer than minCount
// times are skipped; limit > 0 stops after that many lines.
func (c *Counter) WriteTSV(w io.Writer, minCount, limit int) error {
	bw := bufio.NewWriter(w)
	written := 0
	for _, e := range c.Entries() {
		if e.Count < minCount {
			continue
		}
		if limit > 0 && written >= limit {
			break
		}
		if _, err := fmt.Fprintf(bw, "%s\t%d\n", e.Word, e.Count); err != nil {
			return err
		}
		written++
	}
	return bw.Flush()
}
