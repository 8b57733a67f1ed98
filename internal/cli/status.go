package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check daemon and model server health",
	RunE:  runStatus,
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

func runStatus(cmd *cobra.Command, args []string) error {
	client := NewClient(serverURL)
	health, err := client.Health()
	if err != nil {
		return fmt.Errorf("unhealthy: %w", err)
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(health)
	}

	fmt.Printf("status:    %s\n", health.Status)
	fmt.Printf("model:     loaded=%v\n", health.ModelLoaded)
	fmt.Printf("tokenizer: loaded=%v\n", health.TokenizerLoaded)
	return nil
}
