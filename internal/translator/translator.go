package translator

import "context"

// Translator converts a single text within the model's token window from one
// language to another. Long inputs are split by the Service before they
// reach this interface.
type Translator interface {
	TranslateSingle(ctx context.Context, text, sourceLang, targetLang string) (string, error)
	Health(ctx context.Context) error
	ModelName() string
}

// Compile-time checks that both implementations satisfy Translator
var (
	_ Translator = (*NLLBClient)(nil)
	_ Translator = (*MockTranslator)(nil)
)
