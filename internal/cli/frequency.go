package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/voxtools/sentex/internal/corpus"
	"github.com/voxtools/sentex/internal/extract"
	"github.com/voxtools/sentex/internal/wordfreq"
)

var (
	freqMinCount int
	freqLimit    int
)

// frequencyCmd represents the frequency command
var frequencyCmd = &cobra.Command{
	Use:   "frequency",
	Short: "Count word frequencies over the unfiltered candidate stream",
	Long: `Frequency harvests every candidate sentence (validation bypassed,
replacements still applied) and prints word<TAB>count lines, most frequent
first.

The output drives blacklist curation: words below a frequency threshold
are usually junk, typos or foreign-language leakage, and belong in
disallowed_words.

Example:
  sentex frequency -l german -d ./text > counts.tsv
  sentex frequency -l german -d ./text --min-count 2 --top 10000`,
	RunE: runFrequency,
}

func init() {
	rootCmd.AddCommand(frequencyCmd)

	frequencyCmd.Flags().StringVarP(&language, "language", "l", "", "language identifier (selects the rule file)")
	frequencyCmd.Flags().StringVarP(&inputDir, "dir", "d", "", "directory of extracted article text")
	frequencyCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	frequencyCmd.Flags().IntVar(&freqMinCount, "min-count", 1, "omit words counted fewer times than this")
	frequencyCmd.Flags().IntVar(&freqLimit, "top", 0, "emit at most this many words (0 = all)")

	_ = frequencyCmd.MarkFlagRequired("language")
	_ = frequencyCmd.MarkFlagRequired("dir")
}

func runFrequency(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	rs, err := ruleRegistry().Load(language)
	if err != nil {
		return err
	}

	out := os.Stdout
	if outputPath != "" {
		f, err := os.Create(outputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		out = f
	}

	log := logger.With().Str("language", language).Logger()

	splitter := extract.NewSplitter(rs)
	replacer := extract.NewReplacer(rs)
	counter := wordfreq.NewCounter(language)

	reader := corpus.NewReader(inputDir, log)
	articles := 0
	err = reader.Each(ctx, func(a corpus.Article) error {
		articles++
		for _, cand := range splitter.Split(a.Text) {
			counter.Add(replacer.Apply(cand).Text)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info().Int("articles", articles).Int("skipped", reader.Skipped()).Msg("frequency harvest finished")
	return counter.WriteTSV(out, freqMinCount, freqLimit)
}
