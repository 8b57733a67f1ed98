package translator

import "strings"

// Reassemble joins translated chunks into the final output text.
//
// Chunks are joined with a single space. If the original text contained
// double-newline paragraph breaks, the first P-1 sentence gaps in the joined
// output are rewritten as paragraph breaks, where P is the original
// paragraph count. Chunk boundaries do not align with paragraph boundaries,
// so this is a best-effort cosmetic restoration: the breaks land near where
// paragraphs likely belong, not exactly where the original had them.
func Reassemble(translated []string, original string) string {
	joined := strings.Join(translated, " ")

	if !strings.Contains(original, "\n\n") {
		return joined
	}
	paragraphs := len(strings.Split(original, "\n\n"))
	if paragraphs <= 1 {
		return joined
	}
	return strings.Replace(joined, ". ", ".\n\n", paragraphs-1)
}
