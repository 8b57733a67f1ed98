package tokenizer

import "context"

// Counter counts model tokens for a text in a given source language.
// Implementations wrap the model server's tokenizer; counts exclude
// special and language-code tokens.
type Counter interface {
	CountTokens(ctx context.Context, text, sourceLang string) (int, error)
}

// Compile-time checks that both implementations satisfy Counter
var (
	_ Counter = (*HTTPCounter)(nil)
	_ Counter = (*MockCounter)(nil)
)
