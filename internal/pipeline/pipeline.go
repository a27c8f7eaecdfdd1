// Package pipeline orchestrates extraction for a run: split each article
// into candidates, rewrite them, validate (unless bypassed), cap acceptance
// per article and emit in discovery order.
package pipeline

import (
	"context"
	"io"

	"github.com/rs/zerolog"

	"github.com/voxtools/sentex/internal/corpus"
	"github.com/voxtools/sentex/internal/extract"
	"github.com/voxtools/sentex/internal/rules"
	"github.com/voxtools/sentex/internal/validate"
)

// DefaultMaxPerArticle bounds how many sentences one article may contribute.
const DefaultMaxPerArticle = 3

// Options select the run mode.
type Options struct {
	// NoCheck bypasses the validator entirely; every candidate is emitted
	// after replacement. Used to harvest raw material for frequency
	// analysis.
	NoCheck bool
	// MaxPerArticle caps accepted sentences per article; 0 means no cap.
	MaxPerArticle int
}

// Pipeline processes articles sequentially against one language's rules.
// The rule set is the only state shared across articles, and it is
// read-only.
type Pipeline struct {
	splitter  *extract.Splitter
	replacer  *extract.Replacer
	validator *validate.Validator
	emitter   *LineEmitter
	opts      Options
	log       zerolog.Logger
	stats     RunStats
}

// New wires the stages for one run, writing accepted sentences to out.
func New(rs *rules.RuleSet, out io.Writer, opts Options, log zerolog.Logger) *Pipeline {
	return &Pipeline{
		splitter:  extract.NewSplitter(rs),
		replacer:  extract.NewReplacer(rs),
		validator: validate.New(rs),
		emitter:   NewLineEmitter(out),
		opts:      opts,
		log:       log,
		stats:     newRunStats(),
	}
}

// ProcessArticle runs one article through the stages. Candidates are
// consumed in splitter order; once the cap is reached the rest of the
// article is discarded.
func (p *Pipeline) ProcessArticle(a corpus.Article) error {
	p.stats.Articles++
	accepted := 0
	for _, cand := range p.splitter.Split(a.Text) {
		if p.opts.MaxPerArticle > 0 && accepted >= p.opts.MaxPerArticle {
			break
		}
		p.stats.Candidates++
		cand = p.replacer.Apply(cand)
		if !p.opts.NoCheck {
			if out := p.validator.Validate(cand.Text); !out.OK {
				p.stats.reject(out.Reason)
				continue
			}
		}
		if err := p.emitter.Emit(cand.Text); err != nil {
			return err
		}
		accepted++
		p.stats.Accepted++
	}
	// Flush per article so partial output stays observable and usable.
	return p.emitter.Flush()
}

// Run drains the reader through ProcessArticle and logs a summary.
// Candidate rejection never surfaces here; the only errors are emit
// failures and context cancellation.
func (p *Pipeline) Run(ctx context.Context, r *corpus.Reader) error {
	err := r.Each(ctx, p.ProcessArticle)
	p.stats.SkippedArticles = r.Skipped()
	if ferr := p.emitter.Flush(); err == nil {
		err = ferr
	}

	ev := p.log.Info().
		Int("articles", p.stats.Articles).
		Int("skipped", p.stats.SkippedArticles).
		Int("candidates", p.stats.Candidates).
		Int("accepted", p.stats.Accepted).
		Int("rejected", p.stats.Rejected)
	for reason, n := range p.stats.Rejections {
		ev = ev.Int("rejected_"+string(reason), n)
	}
	ev.Msg("extraction finished")
	return err
}

// Stats returns the counters accumulated so far.
func (p *Pipeline) Stats() RunStats { return p.stats }
