package api

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/transgate-dev/transgate/internal/translator"
)

// APIError represents a structured error response from the transgate API.
type APIError struct {
	Code       string `json:"code"`
	Message    string `json:"message"`
	Suggestion string `json:"suggestion,omitempty"`
	Details    string `json:"details,omitempty"`
}

// Error implements the error interface for APIError.
func (e APIError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s: %s. %s", e.Code, e.Message, e.Suggestion)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// WithDetails returns a copy of the error with additional details.
func (e APIError) WithDetails(details string) APIError {
	e.Details = details
	return e
}

var (
	// ErrInvalidJSON is returned when the request body contains invalid JSON.
	ErrInvalidJSON = APIError{
		Code:       "INVALID_JSON",
		Message:    "Request body contains invalid JSON",
		Suggestion: "Check your JSON syntax and ensure all strings are properly quoted",
	}

	// ErrTextEmpty is returned when the request text is empty or whitespace-only.
	ErrTextEmpty = APIError{
		Code:    "TEXT_EMPTY",
		Message: "Text cannot be empty",
	}

	// ErrTextTooLong is returned when the request text exceeds the character ceiling.
	ErrTextTooLong = APIError{
		Code:       "TEXT_TOO_LONG",
		Message:    "Text exceeds the maximum length",
		Suggestion: "Split the document and submit it in smaller requests",
	}

	// ErrInvalidLanguage is returned for an unrecognized language code.
	ErrInvalidLanguage = APIError{
		Code:       "INVALID_LANGUAGE",
		Message:    "Invalid language code",
		Suggestion: "Check source_lang and target_lang against GET /languages",
	}

	// ErrModelNotReady is returned when the model server is not initialized.
	ErrModelNotReady = APIError{
		Code:       "MODEL_NOT_READY",
		Message:    "Translation model is not loaded",
		Suggestion: "Wait for the model server to finish initializing and retry",
	}

	// ErrTranslationFailed is returned for unclassified translation failures.
	ErrTranslationFailed = APIError{
		Code:    "TRANSLATION_FAILED",
		Message: "Translation failed",
	}
)

// FromServiceError maps a translation service error to an HTTP status code
// and an APIError body.
func FromServiceError(err error) (int, APIError) {
	switch translator.ErrorCode(err) {
	case translator.ErrTextEmpty.Code:
		return http.StatusBadRequest, ErrTextEmpty
	case translator.ErrTextTooLong.Code:
		return http.StatusBadRequest, ErrTextTooLong.WithDetails(err.Error())
	case translator.ErrInvalidLanguage.Code:
		return http.StatusBadRequest, ErrInvalidLanguage.WithDetails(err.Error())
	case translator.ErrModelNotReady.Code:
		return http.StatusServiceUnavailable, ErrModelNotReady
	default:
		return http.StatusInternalServerError, ErrTranslationFailed.WithDetails(err.Error())
	}
}

// WriteError writes an APIError as a JSON response with the appropriate status code.
func WriteError(w http.ResponseWriter, statusCode int, err APIError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(err)
}

// WriteBadRequest writes a 400 Bad Request response with the given error.
func WriteBadRequest(w http.ResponseWriter, err APIError) {
	WriteError(w, http.StatusBadRequest, err)
}

// WriteServiceUnavailable writes a 503 Service Unavailable response with the given error.
func WriteServiceUnavailable(w http.ResponseWriter, err APIError) {
	WriteError(w, http.StatusServiceUnavailable, err)
}
