package translator

import "errors"

// TranslationError represents an error from translation operations with
// helpful context.
type TranslationError struct {
	Code       string
	Message    string
	Suggestion string
	Cause      error
}

// Error implements the error interface.
func (e *TranslationError) Error() string {
	if e.Suggestion == "" {
		return e.Message
	}
	return e.Message + ". " + e.Suggestion
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *TranslationError) Unwrap() error {
	return e.Cause
}

// WithCause returns a copy of the error with the given cause.
func (e *TranslationError) WithCause(cause error) *TranslationError {
	return &TranslationError{
		Code:       e.Code,
		Message:    e.Message,
		Suggestion: e.Suggestion,
		Cause:      cause,
	}
}

// Predefined translation errors
var (
	// ErrTextEmpty indicates the request text is empty after trimming.
	ErrTextEmpty = &TranslationError{
		Code:    "TEXT_EMPTY",
		Message: "text cannot be empty",
	}

	// ErrTextTooLong indicates the request text exceeds the character ceiling.
	ErrTextTooLong = &TranslationError{
		Code:       "TEXT_TOO_LONG",
		Message:    "text exceeds the maximum length",
		Suggestion: "Split the document and submit it in smaller requests",
	}

	// ErrModelNotReady indicates the model server is not loaded or unreachable.
	ErrModelNotReady = &TranslationError{
		Code:       "MODEL_NOT_READY",
		Message:    "translation model is not loaded",
		Suggestion: "Wait for the model server to finish initializing and retry",
	}

	// ErrInvalidLanguage indicates an unrecognized source or target language code.
	ErrInvalidLanguage = &TranslationError{
		Code:       "INVALID_LANGUAGE",
		Message:    "invalid language code",
		Suggestion: "Check source_lang and target_lang against GET /languages",
	}

	// ErrTranslationFailed indicates an unclassified translation failure.
	ErrTranslationFailed = &TranslationError{
		Code:    "TRANSLATION_FAILED",
		Message: "translation failed",
	}
)

// ErrorCode returns the code of a TranslationError in err's chain, or "".
func ErrorCode(err error) string {
	var trErr *TranslationError
	if errors.As(err, &trErr) {
		return trErr.Code
	}
	return ""
}

// IsNotReady reports whether err means the model server is unavailable.
func IsNotReady(err error) bool {
	return ErrorCode(err) == ErrModelNotReady.Code
}

// IsInvalidLanguage reports whether err means a bad language code.
func IsInvalidLanguage(err error) bool {
	return ErrorCode(err) == ErrInvalidLanguage.Code
}
