package translator

import (
	"context"
	"fmt"
)

// MockTranslator is a test implementation of the Translator interface. It
// produces a deterministic pseudo-translation of the input and can be told
// to fail specific calls or report itself unhealthy.
type MockTranslator struct {
	healthy   bool
	notReady  bool
	failCalls map[int]bool
	calls     []string
}

// NewMockTranslator creates a healthy MockTranslator.
func NewMockTranslator() *MockTranslator {
	return &MockTranslator{
		healthy:   true,
		failCalls: make(map[int]bool),
	}
}

// SetHealthy toggles the health state. When unhealthy, Health returns a
// model-not-ready error.
func (m *MockTranslator) SetHealthy(healthy bool) {
	m.healthy = healthy
}

// SetNotReady makes every TranslateSingle call fail with ErrModelNotReady.
func (m *MockTranslator) SetNotReady(notReady bool) {
	m.notReady = notReady
}

// FailOnCall makes the n-th TranslateSingle call (1-based) return an error.
func (m *MockTranslator) FailOnCall(n int) {
	m.failCalls[n] = true
}

// Calls returns the texts passed to TranslateSingle, in order.
func (m *MockTranslator) Calls() []string {
	return m.calls
}

// TranslateSingle returns a deterministic marker around the input text so
// tests can verify ordering and content.
func (m *MockTranslator) TranslateSingle(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	m.calls = append(m.calls, text)
	if m.notReady {
		return "", ErrModelNotReady
	}
	if m.failCalls[len(m.calls)] {
		return "", ErrTranslationFailed.WithCause(fmt.Errorf("injected failure on call %d", len(m.calls)))
	}
	return fmt.Sprintf("<%s→%s>%s</>", sourceLang, targetLang, text), nil
}

// Health returns nil if healthy, or a model-not-ready error.
func (m *MockTranslator) Health(ctx context.Context) error {
	if !m.healthy {
		return ErrModelNotReady
	}
	return nil
}

// ModelName returns the name of the mock model.
func (m *MockTranslator) ModelName() string {
	return "mock-translator"
}
