// Package cli wires the sentex command tree.
package cli

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/voxtools/sentex/internal/rules"
)

var (
	cfgFile   string
	verbose   bool
	logFormat string
	rulesDir  string
	logger    zerolog.Logger

	registry    *rules.Registry
	registryDir string
)

// ruleRegistry returns the process-wide rule registry, so every command
// (and every language within a command) loads each rule set once.
func ruleRegistry() *rules.Registry {
	if registry == nil || registryDir != rulesDir {
		registry = rules.NewRegistry(rulesDir)
		registryDir = rulesDir
	}
	return registry
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "sentex",
	Short: "Sentex - extract speakable sentences from Wikipedia text",
	Long: `Sentex turns raw Wikipedia article text into short, clean, speakable
sentences for use as prompts in a crowdsourced speech corpus.

Extraction is driven by a per-language rule file: sentence boundaries are
found with abbreviation-aware splitting, candidates are rewritten by
configured replacements, and an ordered battery of checks decides which
candidates qualify. Accepted sentences stream to the output one per line,
at most a configurable number per article.`,
	SilenceErrors: true,
	SilenceUsage:  true,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

// versionCmd represents the version command
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("sentex v0.3.1")
	},
}

func init() {
	cobra.OnInitialize(initConfig, initLogger)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.sentex/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().StringVar(&rulesDir, "rules-dir", "rules", "directory of per-language rule files")

	// Bind flags to viper
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	// Add subcommands
	rootCmd.AddCommand(versionCmd)
}

// initConfig reads in config file and ENV variables
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error finding home directory: %v\n", err)
			return
		}

		// Search for config in home directory
		viper.AddConfigPath(home + "/.sentex")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	// Read in environment variables that match SENTEX_*
	viper.SetEnvPrefix("SENTEX")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && viper.GetBool("verbose") {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

// initLogger builds the run-scoped root logger. Sentences go to stdout, so
// all logging stays on stderr.
func initLogger() {
	level := zerolog.InfoLevel
	if viper.GetBool("verbose") {
		level = zerolog.DebugLevel
	}

	var w = os.Stderr
	var out zerolog.Logger
	if viper.GetString("log_format") == "json" {
		out = zerolog.New(w)
	} else {
		out = zerolog.New(zerolog.ConsoleWriter{Out: w})
	}

	logger = out.Level(level).With().
		Timestamp().
		Str("run_id", uuid.NewString()).
		Logger()
}
