package config

import (
	"os"
	"sync"
)

type GeminiConfig struct {
	APIKey  string
	Model   string
	// BaseURL overrides the API endpoint, empty means the SDK default.
	BaseURL string
}

var (
	geminiConfig *GeminiConfig
	geminiOnce   sync.Once
)

func LoadGeminiConfig() *GeminiConfig {
	geminiOnce.Do(func() {
		model := os.Getenv("GEMINI_MODEL")
		if model == "" {
			model = "gemini-2.5-flash"
		}
		geminiConfig = &GeminiConfig{
			APIKey:  os.Getenv("GEMINI_API_KEY"),
			Model:   model,
			BaseURL: os.Getenv("GEMINI_BASE_URL"),
		}
	})
	return geminiConfig
}
