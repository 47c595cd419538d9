// Package cli provides the cobra command tree for sercha-charset.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/sercha-charset/internal/logger"
)

// version is overridden at build time via -ldflags.
var version = "dev"

var verboseFlag bool

var rootCmd = &cobra.Command{
	Use:   "sercha-charset",
	Short: "Convert harvested documents to UTF-8",
	Long: `Sercha-charset normalises byte streams to canonical UTF-8.

The UTF-16/UCS-2, windows-1252/iso-8859-1 and iso-8859-15 families are
decoded with built-in transcoders; other charset labels are resolved
against the IANA registry. Inputs that are already UTF-8, and inputs in
charsets no converter handles, pass through unchanged.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verboseFlag)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "enable verbose logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
