package config

import (
	"fmt"
	"log/slog"
)

// Validate checks the configuration for values the service cannot run with.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535, got %d", c.Server.Port)
	}
	if _, err := ParseLogLevel(c.Server.LogLevel); err != nil {
		return err
	}
	if c.Model.BaseURL == "" {
		return fmt.Errorf("model.base_url must not be empty")
	}
	if c.Model.MaxInputTokens <= 0 {
		return fmt.Errorf("model.max_input_tokens must be positive, got %d", c.Model.MaxInputTokens)
	}
	if c.Model.MaxOutputTokens <= 0 {
		return fmt.Errorf("model.max_output_tokens must be positive, got %d", c.Model.MaxOutputTokens)
	}
	if c.Model.TokenReserve < 0 {
		return fmt.Errorf("model.token_reserve must not be negative, got %d", c.Model.TokenReserve)
	}
	if c.Model.SafeBudget() <= 0 {
		return fmt.Errorf("model.token_reserve (%d) leaves no token budget within max_input_tokens (%d)",
			c.Model.TokenReserve, c.Model.MaxInputTokens)
	}
	if c.Limits.MaxTextLength <= 0 {
		return fmt.Errorf("limits.max_text_length must be positive, got %d", c.Limits.MaxTextLength)
	}
	if c.Translation.DefaultSourceLang == "" || c.Translation.DefaultTargetLang == "" {
		return fmt.Errorf("translation default languages must not be empty")
	}
	return nil
}

// ParseLogLevel converts a config log level string to a slog.Level.
func ParseLogLevel(level string) (slog.Level, error) {
	switch level {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q (expected debug, info, warn or error)", level)
	}
}
