package adapters

import (
	"context"
	"fmt"

	"github.com/mhindle4/marty-backend/application/ports/outbound"
	"github.com/mhindle4/marty-backend/config"
)

// NewReplyGenerator builds the text generation adapter selected by
// TEXT_BACKEND. Only the selected backend's credentials are required.
func NewReplyGenerator(ctx context.Context, backend config.TextBackend,
	generation *config.GenerationConfig, logger outbound.LoggerPort) (outbound.ReplyGeneratorPort, error) {
	switch backend {
	case config.TextBackendGemini:
		geminiConfig, err := config.GetGeminiConfig()
		if err != nil {
			return nil, err
		}
		return NewGeminiReplyGenerator(ctx, geminiConfig, generation, logger)
	case config.TextBackendOpenAI:
		openAIConfig, err := config.GetOpenAIConfig()
		if err != nil {
			return nil, err
		}
		return NewOpenAIReplyGenerator(openAIConfig, generation, logger), nil
	default:
		return nil, fmt.Errorf("unknown text backend: %s", backend)
	}
}
