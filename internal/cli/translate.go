package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/transgate-dev/transgate/internal/api"
	"github.com/transgate-dev/transgate/internal/langs"
)

var (
	translateFrom string
	translateTo   string
)

var translateCmd = &cobra.Command{
	Use:   "translate [text]",
	Short: "Translate text via the transgated daemon",
	Long: `Translate text from the source language to the target language.

Reads the text from the arguments, or from stdin when no arguments are
given, so long documents can be piped in:

  tg translate "សួស្តី​ពិភពលោក"
  cat document.txt | tg translate --from khm_Khmr --to eng_Latn`,
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().StringVar(&translateFrom, "from", "", "Source language code (default: daemon's configured default)")
	translateCmd.Flags().StringVar(&translateTo, "to", "", "Target language code (default: daemon's configured default)")
	rootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	var text string
	if len(args) > 0 {
		text = strings.Join(args, " ")
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		text = string(data)
	}

	client := NewClient(serverURL)
	resp, err := client.Translate(api.TranslateRequest{
		Text:       text,
		SourceLang: translateFrom,
		TargetLang: translateTo,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(resp)
	}

	fmt.Fprintf(os.Stderr, "%s → %s\n", langs.DisplayName(resp.SourceLang), langs.DisplayName(resp.TargetLang))
	fmt.Println(resp.TranslatedText)
	return nil
}
