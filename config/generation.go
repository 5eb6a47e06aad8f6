package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultTemperature     = 0.7
	defaultMaxOutputTokens = 256
	defaultGenerateTimeout = 30 * time.Second
)

// GenerationConfig holds the model-agnostic generation parameters shared by
// every text backend.
type GenerationConfig struct {
	Temperature     float64
	MaxOutputTokens int
	Timeout         time.Duration
}

func GetGenerationConfig() (*GenerationConfig, error) {
	temperature := defaultTemperature
	if raw := os.Getenv("GEN_TEMPERATURE"); raw != "" {
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil || val < 0 {
			return nil, fmt.Errorf("GEN_TEMPERATURE must be a non-negative float")
		}
		temperature = val
	}

	maxTokens := defaultMaxOutputTokens
	if raw := os.Getenv("GEN_MAX_OUTPUT_TOKENS"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil || val <= 0 {
			return nil, fmt.Errorf("GEN_MAX_OUTPUT_TOKENS must be a positive integer")
		}
		maxTokens = val
	}

	timeout := defaultGenerateTimeout
	if raw := os.Getenv("GEN_TIMEOUT_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("GEN_TIMEOUT_SECONDS must be a positive integer")
		}
		timeout = time.Duration(seconds) * time.Second
	}

	return &GenerationConfig{
		Temperature:     temperature,
		MaxOutputTokens: maxTokens,
		Timeout:         timeout,
	}, nil
}
