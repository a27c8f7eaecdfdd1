package pipeline

import "github.com/voxtools/sentex/internal/validate"

// RunStats accumulates counters over a whole run. Rejections is keyed by
// the first failed check, which is diagnostic only; the output contract is
// just "not emitted".
type RunStats struct {
	Articles        int
	SkippedArticles int
	Candidates      int
	Accepted        int
	Rejected        int
	Rejections      map[validate.Reason]int
}

func newRunStats() RunStats {
	return RunStats{Rejections: map[validate.Reason]int{}}
}

func (s *RunStats) reject(r validate.Reason) {
	s.Rejected++
	s.Rejections[r]++
}
