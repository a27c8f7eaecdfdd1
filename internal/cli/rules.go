package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// rulesCmd represents the rules command
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Inspect per-language rule files",
}

var rulesShowCmd = &cobra.Command{
	Use:   "show <language>...",
	Short: "Show the effective rule set for one or more languages",
	Long: `Display the fully resolved configuration for each language as YAML:
the language's rule file overlaid on the documented defaults, with the
merged word list included. A language without a rule file shows pure
defaults.

Example:
  sentex rules show english
  sentex rules show english german french`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRulesShow,
}

func runRulesShow(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	for _, lang := range args {
		rs, err := ruleRegistry().Load(lang)
		if err != nil {
			return err
		}

		data, err := yaml.Marshal(rs.Document())
		if err != nil {
			return fmt.Errorf("marshal rules: %w", err)
		}

		fmt.Fprintf(out, "# effective rules for %s\n", lang)
		fmt.Fprint(out, string(data))
	}
	return nil
}

func init() {
	rootCmd.AddCommand(rulesCmd)
	rulesCmd.AddCommand(rulesShowCmd)
}
