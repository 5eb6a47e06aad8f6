package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	defaultElevenLabsApiUrl = "https://api.elevenlabs.io/v1/text-to-speech"
	defaultElevenModelId    = "eleven_multilingual_v2"
	defaultStability        = 0.5
	defaultSimilarityBoost  = 0.8
	defaultSynthesisTimeout = 60 * time.Second
)

type ElevenLabsConfig struct {
	ApiUrl          string
	ApiKey          string
	VoiceID         string
	ModelId         string
	Stability       float64
	SimilarityBoost float64
	Timeout         time.Duration
}

func GetElevenLabsConfig() (*ElevenLabsConfig, error) {
	apiKey := os.Getenv("ELEVENLABS_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("ELEVENLABS_API_KEY must be set")
	}
	voiceID := os.Getenv("CLONED_VOICE_ID")
	if voiceID == "" {
		return nil, fmt.Errorf("CLONED_VOICE_ID must be set")
	}
	apiUrl := os.Getenv("ELEVEN_API_URL")
	if apiUrl == "" {
		apiUrl = defaultElevenLabsApiUrl
	}
	modelId := os.Getenv("ELEVEN_MODEL_ID")
	if modelId == "" {
		modelId = defaultElevenModelId
	}

	stability := defaultStability
	if raw := os.Getenv("ELEVEN_STABILITY"); raw != "" {
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ELEVEN_STABILITY: %w", err)
		}
		stability = val
	}

	similarityBoost := defaultSimilarityBoost
	if raw := os.Getenv("ELEVEN_SIMILARITY_BOOST"); raw != "" {
		val, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse ELEVEN_SIMILARITY_BOOST: %w", err)
		}
		similarityBoost = val
	}

	timeout := defaultSynthesisTimeout
	if raw := os.Getenv("ELEVEN_TIMEOUT_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil || seconds <= 0 {
			return nil, fmt.Errorf("ELEVEN_TIMEOUT_SECONDS must be a positive integer")
		}
		timeout = time.Duration(seconds) * time.Second
	}

	return &ElevenLabsConfig{
		ApiUrl:          apiUrl,
		ApiKey:          apiKey,
		VoiceID:         voiceID,
		ModelId:         modelId,
		Stability:       stability,
		SimilarityBoost: similarityBoost,
		Timeout:         timeout,
	}, nil
}
