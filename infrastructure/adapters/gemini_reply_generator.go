package adapters

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/mhindle4/marty-backend/application/ports/outbound"
	"github.com/mhindle4/marty-backend/config"
)

type geminiReplyGenerator struct {
	client     *genai.Client
	model      string
	generation *config.GenerationConfig
	logger     outbound.LoggerPort
}

func NewGeminiReplyGenerator(ctx context.Context, geminiConfig *config.GeminiConfig,
	generation *config.GenerationConfig, logger outbound.LoggerPort) (outbound.ReplyGeneratorPort, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  geminiConfig.ApiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &geminiReplyGenerator{
		client:     client,
		model:      geminiConfig.Model,
		generation: generation,
		logger:     logger,
	}, nil
}

// Generate performs a single non-streaming completion. One attempt only; the
// caller owns the fallback when this fails.
func (g *geminiReplyGenerator) Generate(ctx context.Context, req outbound.GenerateReplyRequest) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, g.generation.Timeout)
	defer cancel()

	temperature := float32(g.generation.Temperature)

	resp, err := g.client.Models.GenerateContent(ctxWithTimeout, g.model,
		genai.Text(req.Prompt), &genai.GenerateContentConfig{
			Temperature:     &temperature,
			MaxOutputTokens: int32(g.generation.MaxOutputTokens),
		})
	if err != nil {
		g.logger.ErrorWithFields(err, "Gemini API call failed", map[string]interface{}{
			"model": g.model,
		})
		return "", fmt.Errorf("failed to call Gemini API: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var replyBuilder strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part == nil || part.Text == "" {
			continue
		}
		replyBuilder.WriteString(part.Text)
	}

	return replyBuilder.String(), nil
}
