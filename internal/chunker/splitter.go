// Package chunker splits long texts into token-bounded chunks suitable for a
// sequence-to-sequence translation model with a fixed input window. Splits
// prefer sentence boundaries, then word boundaries, then raw cuts, so that
// translated chunks read naturally when recombined.
package chunker

import (
	"context"
	"log/slog"
	"os"
	"strings"
	"unicode"

	"github.com/transgate-dev/transgate/internal/script"
	"github.com/transgate-dev/transgate/internal/tokenizer"
)

const (
	// MinSafeBudget is the minimum allowed token budget per chunk.
	MinSafeBudget = 16

	// boundaryWindow is the fraction of a fitting prefix, from the end,
	// searched for a sentence or word boundary. A cut earlier than this
	// wastes too much of the model's input window.
	boundaryWindow = 5 // last 1/5th

	// degenerateScanLimit caps the backward sentence scan when the binary
	// search found no fitting prefix at all.
	degenerateScanLimit = 500
)

// Splitter cuts text into chunks that each fit within a token budget.
// Token counts come from the oracle, which may be approximate and is not
// guaranteed monotonic in prefix length; every produced chunk is therefore
// re-measured before it is emitted.
type Splitter struct {
	oracle     *tokenizer.Oracle
	safeBudget int
	logger     *slog.Logger
}

// NewSplitter creates a Splitter producing chunks of at most safeBudget
// tokens. Budgets below MinSafeBudget are clamped.
func NewSplitter(oracle *tokenizer.Oracle, safeBudget int, logger *slog.Logger) *Splitter {
	if safeBudget < MinSafeBudget {
		safeBudget = MinSafeBudget
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return &Splitter{
		oracle:     oracle,
		safeBudget: safeBudget,
		logger:     logger,
	}
}

// SafeBudget returns the per-chunk token budget.
func (s *Splitter) SafeBudget() int {
	return s.safeBudget
}

// Split cuts text into an ordered sequence of trimmed chunks, each within
// the token budget. Concatenated, the chunks cover all non-whitespace
// content of the input. The result is non-empty for non-empty input and the
// loop consumes at least one rune per iteration, so Split always terminates.
func (s *Splitter) Split(ctx context.Context, text, sourceLang string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	// Short-circuit: the whole text fits in one chunk.
	if s.oracle.Count(ctx, trimmed, sourceLang) <= s.safeBudget {
		return []string{trimmed}
	}

	prof := script.ProfileFor(sourceLang)

	var chunks []string
	remaining := []rune(trimmed)

	for len(remaining) > 0 {
		prev := len(remaining)

		chunk, rest := s.cut(ctx, remaining, sourceLang, prof)
		chunkText := strings.TrimSpace(string(chunk))
		chunkText, rest = s.verify(ctx, chunkText, rest, sourceLang)

		if chunkText != "" {
			chunks = append(chunks, chunkText)
			s.logger.Debug("produced chunk",
				"index", len(chunks),
				"chars", len(chunkText),
				"remaining_runes", len(rest))
		}

		remaining = trimLeftSpace(rest)

		// Guard against a zero-length cut stalling the loop.
		if len(remaining) >= prev {
			remaining = remaining[1:]
		}
	}

	return chunks
}

// cut determines the next chunk boundary in remaining and returns the chunk
// runes and the leftover runes. It always consumes at least one rune.
func (s *Splitter) cut(ctx context.Context, remaining []rune, sourceLang string, prof script.Profile) (chunk, rest []rune) {
	bestBreak := s.searchFit(ctx, remaining, sourceLang)

	if bestBreak > 0 {
		searchStart := bestBreak - bestBreak/boundaryWindow

		// Prefer a sentence boundary near the end of the fitting prefix.
		if end := lastSentenceEnd(remaining, searchStart, bestBreak, prof); end > searchStart {
			return remaining[:end], remaining[end:]
		}

		// Fall back to a word boundary, but only for scripts that have
		// them and only within the trailing window; an earlier cut wastes
		// budget.
		if prof.HasWordSpaces {
			if sp := lastSpace(remaining, searchStart, bestBreak); sp >= searchStart {
				return remaining[:sp], remaining[sp:]
			}
		}

		// Raw cut at the token limit.
		return remaining[:bestBreak], remaining[bestBreak:]
	}

	// The binary search found no fitting prefix (e.g. a single run denser
	// than the budget at every length it probed). Take a fixed-size slice
	// and look for any usable boundary inside it.
	fallbackLen := 2 * s.safeBudget
	if fallbackLen > len(remaining) {
		fallbackLen = len(remaining)
	}

	lo := fallbackLen - degenerateScanLimit
	if lo < 0 {
		lo = 0
	}
	for i := fallbackLen - 1; i >= lo; i-- {
		if prof.IsSentenceEnder(remaining[i]) && followedBySpace(remaining, i) {
			return remaining[:i+1], remaining[i+1:]
		}
	}

	if prof.HasWordSpaces {
		if sp := lastSpace(remaining, 1, fallbackLen); sp > 0 {
			return remaining[:sp], remaining[sp:]
		}
	}

	return remaining[:fallbackLen], remaining[fallbackLen:]
}

// verify re-measures a produced chunk against the budget. The oracle is not
// guaranteed monotonic, so a chunk derived from a fitting prefix can still
// come out oversized; in that case a secondary binary search shrinks it and
// the trimmed-off suffix is pushed back onto rest so no content is lost.
func (s *Splitter) verify(ctx context.Context, chunkText string, rest []rune, sourceLang string) (string, []rune) {
	if chunkText == "" {
		return "", rest
	}
	count := s.oracle.Count(ctx, chunkText, sourceLang)
	if count <= s.safeBudget {
		return chunkText, rest
	}

	s.logger.Warn("chunk exceeds budget after cut, reducing",
		"tokens", count, "budget", s.safeBudget)

	runes := []rune(chunkText)
	safeLen := s.searchFit(ctx, runes, sourceLang)
	if safeLen == 0 {
		// Last resort: take a fixed fraction of the chunk.
		safeLen = len(runes) * 4 / 5
		if safeLen < 1 {
			safeLen = 1
		}
	}

	leftover := runes[safeLen:]
	newRest := make([]rune, 0, len(leftover)+len(rest))
	newRest = append(newRest, leftover...)
	newRest = append(newRest, rest...)

	return strings.TrimSpace(string(runes[:safeLen])), newRest
}

// searchFit binary-searches for the largest rune prefix of runes whose token
// count fits the budget, returning 0 if none fits. It keeps the best offset
// that actually satisfied the constraint rather than trusting the final
// search bound, which tolerates a non-monotonic oracle.
func (s *Splitter) searchFit(ctx context.Context, runes []rune, sourceLang string) int {
	lo, hi := 1, len(runes)
	best := 0
	for lo <= hi {
		mid := (lo + hi) / 2
		if s.oracle.Count(ctx, string(runes[:mid]), sourceLang) <= s.safeBudget {
			best = mid
			lo = mid + 1
		} else {
			hi = mid - 1
		}
	}
	return best
}

// lastSentenceEnd scans [start, end) backward for the last sentence-ending
// rune that is followed by whitespace or end-of-text, returning the cut
// position just after it, or -1 if none was found.
func lastSentenceEnd(runes []rune, start, end int, prof script.Profile) int {
	if start < 0 {
		start = 0
	}
	for i := end - 1; i >= start; i-- {
		if prof.IsSentenceEnder(runes[i]) && followedBySpace(runes, i) {
			return i + 1
		}
	}
	return -1
}

// lastSpace scans [start, end) backward for the last whitespace rune,
// returning its index or -1.
func lastSpace(runes []rune, start, end int) int {
	if start < 0 {
		start = 0
	}
	for i := end - 1; i >= start; i-- {
		if unicode.IsSpace(runes[i]) {
			return i
		}
	}
	return -1
}

// followedBySpace reports whether the rune after position i is whitespace or
// the end of the text.
func followedBySpace(runes []rune, i int) bool {
	return i+1 >= len(runes) || unicode.IsSpace(runes[i+1])
}

// trimLeftSpace drops leading whitespace runes.
func trimLeftSpace(runes []rune) []rune {
	i := 0
	for i < len(runes) && unicode.IsSpace(runes[i]) {
		i++
	}
	return runes[i:]
}
