package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/voxtools/sentex/internal/rules"
)

func splitterFor(t *testing.T, patterns ...string) *Splitter {
	t.Helper()
	rs, err := rules.FromDocument("test", &rules.Document{AbbreviationPatterns: patterns})
	require.NoError(t, err)
	return NewSplitter(rs)
}

func texts(cands []Candidate) []string {
	out := make([]string, len(cands))
	for i, c := range cands {
		out[i] = c.Text
	}
	return out
}

func TestSplitTwoSentences(t *testing.T) {
	s := splitterFor(t)
	got := s.Split("Hello there. Goodbye now.")
	assert.Equal(t, []string{"Hello there.", "Goodbye now."}, texts(got))
}

func TestSplitKeepsTextOrderAndIndexes(t *testing.T) {
	s := splitterFor(t)
	got := s.Split("One. Two! Three? Four.")
	require.Len(t, got, 4)
	for i, c := range got {
		assert.Equal(t, i, c.Index)
	}
	assert.Equal(t, []string{"One.", "Two!", "Three?", "Four."}, texts(got))
}

func TestSplitAbbreviationSuppression(t *testing.T) {
	s := splitterFor(t, `z\.B\.`)
	got := s.Split("Das ist z.B. gut.")
	assert.Equal(t, []string{"Das ist z.B. gut."}, texts(got))
}

func TestSplitAbbreviationOnlySuppressesMatchingContext(t *testing.T) {
	s := splitterFor(t, `z\.B\.`)
	got := s.Split("Das ist z.B. gut. Und weiter geht es.")
	assert.Equal(t, []string{"Das ist z.B. gut.", "Und weiter geht es."}, texts(got))
}

func TestSplitFirstPatternWins(t *testing.T) {
	// Both patterns cover the context; evaluation stops at the first.
	s := splitterFor(t, `Dr\.`, `D[a-z]\.`)
	got := s.Split("Dr. Smith arrived.")
	assert.Equal(t, []string{"Dr. Smith arrived."}, texts(got))
}

func TestSplitNoBoundaryInsideToken(t *testing.T) {
	s := splitterFor(t)
	got := s.Split("Version A.B shipped today. Done.")
	assert.Equal(t, []string{"Version A.B shipped today.", "Done."}, texts(got))
}

func TestSplitPunctuationRunSplitsOnce(t *testing.T) {
	s := splitterFor(t)
	got := s.Split("No!!! Really?! Yes.")
	assert.Equal(t, []string{"No!!!", "Really?!", "Yes."}, texts(got))
}

func TestSplitTrailingTextWithoutTerminator(t *testing.T) {
	s := splitterFor(t)
	got := s.Split("First sentence. trailing fragment")
	assert.Equal(t, []string{"First sentence.", "trailing fragment"}, texts(got))
}

func TestSplitDropsEmptyTail(t *testing.T) {
	s := splitterFor(t)
	got := s.Split("  One.   ")
	assert.Equal(t, []string{"One."}, texts(got))
}

func TestSplitEmptyInput(t *testing.T) {
	s := splitterFor(t)
	assert.Empty(t, s.Split(""))
	assert.Empty(t, s.Split("   \n  "))
}
