package tokenizer

import (
	"context"
	"errors"
	"unicode/utf8"
)

// MockCounter is a deterministic test implementation of the Counter
// interface. It reports one token per fixed number of runes, so tests can
// predict exactly which prefixes fit a budget.
type MockCounter struct {
	runesPerToken int
	failing       bool
	calls         int
}

// NewMockCounter creates a MockCounter counting one token per 4 runes.
func NewMockCounter() *MockCounter {
	return &MockCounter{runesPerToken: 4}
}

// SetRunesPerToken changes the rune-to-token ratio. Values below 1 are
// clamped to 1.
func (m *MockCounter) SetRunesPerToken(n int) {
	if n < 1 {
		n = 1
	}
	m.runesPerToken = n
}

// SetFailing toggles the failure state. When failing, CountTokens returns an
// error, exercising the Oracle's heuristic fallback.
func (m *MockCounter) SetFailing(failing bool) {
	m.failing = failing
}

// Calls returns how many times CountTokens was invoked.
func (m *MockCounter) Calls() int {
	return m.calls
}

// CountTokens returns ceil(runes / runesPerToken), or an error when failing.
func (m *MockCounter) CountTokens(ctx context.Context, text, sourceLang string) (int, error) {
	m.calls++
	if m.failing {
		return 0, errors.New("mock counter is failing")
	}
	runes := utf8.RuneCountInString(text)
	return (runes + m.runesPerToken - 1) / m.runesPerToken, nil
}
