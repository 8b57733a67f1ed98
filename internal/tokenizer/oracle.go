package tokenizer

import (
	"context"
	"log/slog"
	"os"
	"unicode/utf8"

	"github.com/transgate-dev/transgate/internal/script"
)

// Oracle wraps a Counter with a character-ratio fallback so that token
// counting never fails. The chunker calls it arbitrarily often during its
// binary search, so a hard error here would stall the whole request.
type Oracle struct {
	counter Counter
	logger  *slog.Logger
}

// NewOracle creates an Oracle delegating to counter. A nil counter is
// allowed and always uses the estimate.
func NewOracle(counter Counter, logger *slog.Logger) *Oracle {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return &Oracle{
		counter: counter,
		logger:  logger,
	}
}

// Count returns the token count for text, falling back to a script-aware
// character-ratio estimate when the tokenizer is unavailable or errors.
func (o *Oracle) Count(ctx context.Context, text, sourceLang string) int {
	if o.counter != nil {
		n, err := o.counter.CountTokens(ctx, text, sourceLang)
		if err == nil {
			return n
		}
		o.logger.Warn("token count failed, using estimate", "source_lang", sourceLang, "error", err)
	}
	return EstimateTokens(text, sourceLang)
}

// EstimateTokens approximates the token count from the rune count using the
// script profile's density ratio: dense scripts such as Khmer run roughly one
// token per 2.5 characters, spaced scripts roughly one per 4.
func EstimateTokens(text, sourceLang string) int {
	if text == "" {
		return 0
	}
	ratio := script.ProfileFor(sourceLang).CharsPerToken
	return int(float64(utf8.RuneCountInString(text)) / ratio)
}
