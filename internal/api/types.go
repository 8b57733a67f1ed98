package api

import "github.com/transgate-dev/transgate/internal/langs"

// TranslateRequest represents a translation request body. Empty language
// fields fall back to the configured defaults.
type TranslateRequest struct {
	Text       string `json:"text"`
	SourceLang string `json:"source_lang,omitempty"`
	TargetLang string `json:"target_lang,omitempty"`
}

// TranslateResponse carries the translated text and echoes the effective
// language pair.
type TranslateResponse struct {
	TranslatedText string `json:"translated_text"`
	SourceLang     string `json:"source_lang"`
	TargetLang     string `json:"target_lang"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status          string `json:"status"`
	ModelLoaded     bool   `json:"model_loaded"`
	TokenizerLoaded bool   `json:"tokenizer_loaded"`
}

// RootResponse represents the service banner returned at GET /
type RootResponse struct {
	Message       string `json:"message"`
	Model         string `json:"model"`
	MaxTextLength int    `json:"max_text_length"`
}

// LanguagesResponse represents the supported languages listing
type LanguagesResponse struct {
	Languages []langs.Language `json:"languages"`
}
