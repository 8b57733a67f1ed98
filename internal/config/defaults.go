package config

// Default returns a Config with sensible default values, tuned for the
// NLLB-200 distilled 600M checkpoint.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host:     "0.0.0.0",
			Port:     8000,
			LogLevel: "info",
			CORSOrigins: []string{
				"http://localhost:3000",
				"http://localhost:3001",
				"http://localhost:4000",
			},
		},
		Model: ModelConfig{
			BaseURL:           "http://localhost:8001",
			Name:              "facebook/nllb-200-distilled-600M",
			MaxInputTokens:    1024,
			MaxOutputTokens:   2048,
			TokenReserve:      50,
			TimeoutSeconds:    120,
			NumBeams:          5,
			LengthPenalty:     1.2,
			NoRepeatNgramSize: 3,
			RepetitionPenalty: 1.1,
		},
		Limits: LimitsConfig{
			MaxTextLength: 5000,
		},
		Translation: TranslationConfig{
			DefaultSourceLang: "khm_Khmr",
			DefaultTargetLang: "eng_Latn",
		},
	}
}
