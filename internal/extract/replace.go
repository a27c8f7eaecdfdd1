package extract

import (
	"strings"

	"github.com/voxtools/sentex/internal/rules"
)

// Replacer rewrites candidate text before validation. Rules run in
// configured order, each as a literal replace-all, so a later rule may act
// on text introduced by an earlier one; configuration authors rely on that
// ordering.
type Replacer struct {
	rules []rules.Replacement
}

// NewReplacer builds a Replacer from the rule set's replacement pairs.
func NewReplacer(rs *rules.RuleSet) *Replacer {
	return &Replacer{rules: rs.Replacements}
}

// Apply returns a new Candidate with every replacement applied and the
// result re-trimmed. The input is left untouched.
func (r *Replacer) Apply(c Candidate) Candidate {
	if len(r.rules) == 0 {
		return c
	}
	text := c.Text
	for _, rep := range r.rules {
		text = strings.ReplaceAll(text, rep.Search, rep.Replace)
	}
	return Candidate{Text: strings.TrimSpace(text), Index: c.Index}
}
