package config

import (
	"fmt"
	"time"
)

// Config represents the complete transgate configuration
type Config struct {
	Server      ServerConfig      `yaml:"server" json:"server" mapstructure:"server"`
	Model       ModelConfig       `yaml:"model" json:"model" mapstructure:"model"`
	Limits      LimitsConfig      `yaml:"limits" json:"limits" mapstructure:"limits"`
	Translation TranslationConfig `yaml:"translation" json:"translation" mapstructure:"translation"`
}

// ServerConfig contains HTTP server settings
type ServerConfig struct {
	Host        string   `yaml:"host" json:"host" mapstructure:"host"`
	Port        int      `yaml:"port" json:"port" mapstructure:"port"`
	LogLevel    string   `yaml:"log_level" json:"log_level" mapstructure:"log_level"`
	CORSOrigins []string `yaml:"cors_origins" json:"cors_origins" mapstructure:"cors_origins"`
}

// ModelConfig contains model server settings and the token budgets tuned
// per deployed model.
type ModelConfig struct {
	BaseURL           string  `yaml:"base_url" json:"base_url" mapstructure:"base_url"`
	Name              string  `yaml:"name" json:"name" mapstructure:"name"`
	MaxInputTokens    int     `yaml:"max_input_tokens" json:"max_input_tokens" mapstructure:"max_input_tokens"`
	MaxOutputTokens   int     `yaml:"max_output_tokens" json:"max_output_tokens" mapstructure:"max_output_tokens"`
	TokenReserve      int     `yaml:"token_reserve" json:"token_reserve" mapstructure:"token_reserve"`
	TimeoutSeconds    int     `yaml:"timeout_seconds" json:"timeout_seconds" mapstructure:"timeout_seconds"`
	NumBeams          int     `yaml:"num_beams" json:"num_beams" mapstructure:"num_beams"`
	LengthPenalty     float64 `yaml:"length_penalty" json:"length_penalty" mapstructure:"length_penalty"`
	NoRepeatNgramSize int     `yaml:"no_repeat_ngram_size" json:"no_repeat_ngram_size" mapstructure:"no_repeat_ngram_size"`
	RepetitionPenalty float64 `yaml:"repetition_penalty" json:"repetition_penalty" mapstructure:"repetition_penalty"`
}

// LimitsConfig contains request validation limits
type LimitsConfig struct {
	MaxTextLength int `yaml:"max_text_length" json:"max_text_length" mapstructure:"max_text_length"`
}

// TranslationConfig contains default language settings
type TranslationConfig struct {
	DefaultSourceLang string `yaml:"default_source_lang" json:"default_source_lang" mapstructure:"default_source_lang"`
	DefaultTargetLang string `yaml:"default_target_lang" json:"default_target_lang" mapstructure:"default_target_lang"`
}

// Address returns the full host:port listen address for the server.
func (s ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// SafeBudget returns the effective per-call token budget: the model's input
// window minus the reserve for special and language-code tokens.
func (m ModelConfig) SafeBudget() int {
	return m.MaxInputTokens - m.TokenReserve
}

// Timeout returns the model server request timeout as a time.Duration
func (m ModelConfig) Timeout() time.Duration {
	return time.Duration(m.TimeoutSeconds) * time.Second
}
