package chunker

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/transgate-dev/transgate/internal/tokenizer"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newTestSplitter builds a splitter over a mock counter reporting one token
// per 4 runes, so a budget of 30 tokens fits at most 120 runes per chunk.
func newTestSplitter(budget int) (*Splitter, *tokenizer.MockCounter) {
	counter := tokenizer.NewMockCounter()
	oracle := tokenizer.NewOracle(counter, testLogger())
	return NewSplitter(oracle, budget, testLogger()), counter
}

// stripSpace removes all whitespace runes for coverage comparisons.
func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

// =============================================================================
// Short-circuit and validation
// =============================================================================

func TestSplit_ShortTextSingleChunk(t *testing.T) {
	s, _ := newTestSplitter(30)
	text := "  Hello world. This is fine.  "

	chunks := s.Split(context.Background(), text, "eng_Latn")

	require.Len(t, chunks, 1)
	assert.Equal(t, "Hello world. This is fine.", chunks[0])
}

func TestSplit_EmptyInput(t *testing.T) {
	s, _ := newTestSplitter(30)

	assert.Nil(t, s.Split(context.Background(), "", "eng_Latn"))
	assert.Nil(t, s.Split(context.Background(), "   \n\t  ", "eng_Latn"))
}

func TestSplit_BudgetClamped(t *testing.T) {
	s, _ := newTestSplitter(1)
	assert.Equal(t, MinSafeBudget, s.SafeBudget())
}

// =============================================================================
// Sentence and word boundaries
// =============================================================================

func TestSplit_PrefersSentenceBoundaries(t *testing.T) {
	s, counter := newTestSplitter(30)
	text := strings.TrimSpace(strings.Repeat("This is fine. ", 21)) // ~294 runes, well over 120

	chunks := s.Split(context.Background(), text, "eng_Latn")

	require.GreaterOrEqual(t, len(chunks), 2)
	for i, chunk := range chunks {
		assert.True(t, strings.HasSuffix(chunk, "."), "chunk %d should end at a sentence boundary: %q", i, chunk)
		tokens, err := counter.CountTokens(context.Background(), chunk, "eng_Latn")
		require.NoError(t, err)
		assert.LessOrEqual(t, tokens, s.SafeBudget(), "chunk %d over budget", i)
	}
}

func TestSplit_FallsBackToWordBoundaries(t *testing.T) {
	s, _ := newTestSplitter(30)
	text := strings.TrimSpace(strings.Repeat("word ", 100)) // no sentence enders

	chunks := s.Split(context.Background(), text, "eng_Latn")

	require.GreaterOrEqual(t, len(chunks), 2)
	for i, chunk := range chunks {
		for _, w := range strings.Fields(chunk) {
			assert.Equal(t, "word", w, "chunk %d split inside a word: %q", i, chunk)
		}
	}
}

func TestSplit_KhmerSentenceMarker(t *testing.T) {
	s, counter := newTestSplitter(30)
	// Khmer sentences end with the khan (។); the script has no word spaces.
	sentence := strings.Repeat("ខ", 18) + "។ "
	text := strings.TrimSpace(strings.Repeat(sentence, 20))

	chunks := s.Split(context.Background(), text, "khm_Khmr")

	require.GreaterOrEqual(t, len(chunks), 2)
	for i, chunk := range chunks {
		tokens, err := counter.CountTokens(context.Background(), chunk, "khm_Khmr")
		require.NoError(t, err)
		assert.LessOrEqual(t, tokens, s.SafeBudget(), "chunk %d over budget", i)
		assert.True(t, utf8.ValidString(chunk), "chunk %d is not valid UTF-8", i)
	}
	assert.True(t, strings.HasSuffix(chunks[0], "។"), "first chunk should end at the khan: %q", chunks[0])
}

// =============================================================================
// Coverage and budget compliance
// =============================================================================

func TestSplit_CoversAllContent(t *testing.T) {
	s, _ := newTestSplitter(30)

	texts := map[string]string{
		"sentences":  strings.Repeat("The quick brown fox jumps over the lazy dog. ", 15),
		"paragraphs": strings.Repeat("First sentence here. Second one follows.\n\nNew paragraph starts. ", 8),
		"spaceless":  strings.Repeat("ក", 700),
	}

	for name, text := range texts {
		chunks := s.Split(context.Background(), text, "khm_Khmr")
		require.NotEmpty(t, chunks, name)
		assert.Equal(t, stripSpace(text), stripSpace(strings.Join(chunks, "")),
			"%s: chunks must cover all non-whitespace content", name)
	}
}

func TestSplit_AllChunksWithinBudget(t *testing.T) {
	s, counter := newTestSplitter(25)
	text := strings.Repeat("Some mixed content here, sentences vary in length. Short one. A slightly longer sentence follows after that! ", 12)

	chunks := s.Split(context.Background(), text, "eng_Latn")

	require.GreaterOrEqual(t, len(chunks), 2)
	for i, chunk := range chunks {
		tokens, err := counter.CountTokens(context.Background(), chunk, "eng_Latn")
		require.NoError(t, err)
		assert.LessOrEqual(t, tokens, 25, "chunk %d over budget", i)
	}
}

// =============================================================================
// Degenerate inputs and termination
// =============================================================================

func TestSplit_SpacelessRunTerminates(t *testing.T) {
	s, counter := newTestSplitter(30)
	// Worst case for Khmer-like scripts: one long run, no boundaries at all.
	text := strings.Repeat("អ", 2000)

	chunks := s.Split(context.Background(), text, "khm_Khmr")

	require.NotEmpty(t, chunks)
	// 120 runes max per chunk means at least 17 chunks for 2000 runes.
	assert.GreaterOrEqual(t, len(chunks), 17)
	assert.Equal(t, stripSpace(text), stripSpace(strings.Join(chunks, "")))
	for i, chunk := range chunks {
		tokens, err := counter.CountTokens(context.Background(), chunk, "khm_Khmr")
		require.NoError(t, err)
		assert.LessOrEqual(t, tokens, 30, "chunk %d over budget", i)
	}
}

// overBudgetCounter reports every text as over budget, simulating an oracle
// whose counts the binary search can never satisfy.
type overBudgetCounter struct{}

func (overBudgetCounter) CountTokens(ctx context.Context, text, sourceLang string) (int, error) {
	return 10000, nil
}

func TestSplit_AdversarialOracleStillTerminates(t *testing.T) {
	oracle := tokenizer.NewOracle(overBudgetCounter{}, testLogger())
	s := NewSplitter(oracle, 30, testLogger())
	text := strings.Repeat("x", 2000)

	chunks := s.Split(context.Background(), text, "eng_Latn")

	// No prefix ever fits, so the splitter degrades to fixed-size slices;
	// it must still consume the whole input without looping.
	require.NotEmpty(t, chunks)
	assert.Equal(t, stripSpace(text), stripSpace(strings.Join(chunks, "")))
	assert.LessOrEqual(t, len(chunks), 200)
}

func TestSplit_FallbackEstimateWhenCounterFails(t *testing.T) {
	counter := tokenizer.NewMockCounter()
	counter.SetFailing(true)
	oracle := tokenizer.NewOracle(counter, testLogger())
	s := NewSplitter(oracle, 30, testLogger())

	// Dense-script estimate is runes/2.5, so 30 tokens fit 75 runes.
	text := strings.Repeat("គ", 500)
	chunks := s.Split(context.Background(), text, "khm_Khmr")

	require.GreaterOrEqual(t, len(chunks), 2)
	assert.Equal(t, stripSpace(text), stripSpace(strings.Join(chunks, "")))
	for i, chunk := range chunks {
		assert.LessOrEqual(t, tokenizer.EstimateTokens(chunk, "khm_Khmr"), 30, "chunk %d over estimated budget", i)
	}
}

// =============================================================================
// Rune safety
// =============================================================================

func TestSplit_NeverCutsInsideUTF8Sequences(t *testing.T) {
	s, _ := newTestSplitter(20)
	text := strings.Repeat("ខ្ញុំចង់រៀនភាសាខ្មែរ ", 40)

	chunks := s.Split(context.Background(), text, "khm_Khmr")

	require.NotEmpty(t, chunks)
	for i, chunk := range chunks {
		assert.True(t, utf8.ValidString(chunk), "chunk %d contains a broken UTF-8 sequence", i)
	}
}
