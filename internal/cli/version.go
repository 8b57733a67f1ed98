package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tg %s (commit: %s, built: %s)\n", Version, BuildCommit, BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
