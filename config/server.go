package config

import (
	"fmt"
	"os"
	"strconv"
)

const (
	defaultPort           = 5000
	defaultAudioDir       = "static/audio"
	defaultWorkerPoolSize = 64
)

// TextBackend selects which reply generator adapter the factory builds.
type TextBackend string

const (
	TextBackendGemini TextBackend = "gemini"
	TextBackendOpenAI TextBackend = "openai"
)

type ServerConfig struct {
	Port           int
	AudioDir       string
	WorkerPoolSize int
	TextBackend    TextBackend
}

func GetServerConfig() (*ServerConfig, error) {
	port := defaultPort
	if raw := os.Getenv("PORT"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil || val <= 0 || val > 65535 {
			return nil, fmt.Errorf("PORT must be a valid port number")
		}
		port = val
	}

	audioDir := os.Getenv("AUDIO_DIR")
	if audioDir == "" {
		audioDir = defaultAudioDir
	}

	poolSize := defaultWorkerPoolSize
	if raw := os.Getenv("WORKER_POOL_SIZE"); raw != "" {
		val, err := strconv.Atoi(raw)
		if err != nil || val <= 0 {
			return nil, fmt.Errorf("WORKER_POOL_SIZE must be a positive integer")
		}
		poolSize = val
	}

	backend := TextBackendGemini
	switch raw := os.Getenv("TEXT_BACKEND"); raw {
	case "", string(TextBackendGemini):
	case string(TextBackendOpenAI):
		backend = TextBackendOpenAI
	default:
		return nil, fmt.Errorf("TEXT_BACKEND must be %q or %q", TextBackendGemini, TextBackendOpenAI)
	}

	return &ServerConfig{
		Port:           port,
		AudioDir:       audioDir,
		WorkerPoolSize: poolSize,
		TextBackend:    backend,
	}, nil
}
