package config

import (
	"fmt"
	"os"
)

const defaultGeminiModel = "gemini-2.5-flash-image"

type GeminiConfig struct {
	ApiUrl string
	ApiKey string
	Model  string
}

func GetGeminiConfig() (*GeminiConfig, error) {
	apiUrl := os.Getenv("GEMINI_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("GEMINI_API_URL must be set")
	}
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY must be set")
	}
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultGeminiModel
	}

	return &GeminiConfig{
		ApiUrl: apiUrl,
		ApiKey: apiKey,
		Model:  model,
	}, nil
}
