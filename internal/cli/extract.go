package cli

import (
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/voxtools/sentex/internal/corpus"
	"github.com/voxtools/sentex/internal/pipeline"
)

var (
	language      string
	inputDir      string
	outputPath    string
	noCheck       bool
	maxPerArticle int
)

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract validated sentences from a directory of article text",
	Long: `Extract streams every article under the input directory through the
sentence pipeline for one language and writes accepted sentences to the
output, one per line, in discovery order.

The input directory holds WikiExtractor output: JSON-lines files (one
article object per line) or plain text files (one article per file).
Unreadable files are skipped with a warning; only a broken rule file
aborts the run.

Example:
  sentex extract -l english -d ./text > corpus.txt
  sentex extract -l german -d ./text -o corpus.txt --max-per-article 5
  sentex extract -l english -d ./text --no-check > unfiltered.txt`,
	RunE: runExtract,
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().StringVarP(&language, "language", "l", "", "language identifier (selects the rule file)")
	extractCmd.Flags().StringVarP(&inputDir, "dir", "d", "", "directory of extracted article text")
	extractCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default: stdout)")
	extractCmd.Flags().BoolVar(&noCheck, "no-check", false, "bypass validation and emit every candidate")
	extractCmd.Flags().IntVar(&maxPerArticle, "max-per-article", pipeline.DefaultMaxPerArticle, "max accepted sentences per article (0 = unlimited)")

	_ = extractCmd.MarkFlagRequired("language")
	_ = extractCmd.MarkFlagRequired("dir")
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	rs, err := ruleRegistry().Load(language)
	if err != nil {
		// ConfigError is the one fatal condition: abort before processing.
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

	opts := pipeline.Options{NoCheck: noCheck, MaxPerArticle: maxPerArticle}
	if noCheck && !cmd.Flags().Changed("max-per-article") {
		// An unfiltered harvest wants every candidate unless told otherwise.
		opts.MaxPerArticle = 0
	}

	log := logger.With().Str("language", language).Logger()
	log.Debug().Str("dir", inputDir).Bool("no_check", noCheck).Msg("starting extraction")

	p := pipeline.New(rs, out, opts, log)
	return p.Run(ctx, corpus.NewReader(inputDir, log))
}
