package config

import (
	"fmt"
	"os"
)

// OpenAIConfig covers any OpenAI-compatible streaming chat endpoint. Only
// read when TEXT_BACKEND is set to "openai".
type OpenAIConfig struct {
	ApiUrl string
	ApiKey string
	Model  string
}

func GetOpenAIConfig() (*OpenAIConfig, error) {
	apiUrl := os.Getenv("OPENAI_API_URL")
	if apiUrl == "" {
		return nil, fmt.Errorf("OPENAI_API_URL must be set")
	}
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY must be set")
	}
	model := os.Getenv("OPENAI_MODEL")
	if model == "" {
		return nil, fmt.Errorf("OPENAI_MODEL must be set")
	}
	return &OpenAIConfig{
		ApiUrl: apiUrl,
		ApiKey: apiKey,
		Model:  model,
	}, nil
}
