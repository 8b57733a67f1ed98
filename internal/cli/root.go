package cli

import (
	"github.com/spf13/cobra"
)

var (
	Version     = "0.1.0"
	BuildCommit = "unknown"
	BuildDate   = "unknown"

	jsonOutput bool
	serverURL  string
)

var rootCmd = &cobra.Command{
	Use:   "tg",
	Short: "transgate - token-bounded translation gateway client",
	Long: `tg talks to a running transgated daemon.

transgate fronts a sequence-to-sequence translation model with a fixed
input window. Long texts are split at sentence boundaries into
token-bounded chunks, translated one at a time and recombined, so
documents of any length translate without truncation.`,
	Version:       Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().StringVarP(&serverURL, "server", "s", "http://localhost:8000", "transgated base URL")
}
