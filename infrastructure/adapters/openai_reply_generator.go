package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/donovanhide/eventsource"

	"github.com/mhindle4/marty-backend/application/ports/outbound"
	"github.com/mhindle4/marty-backend/config"
)

const doneSignal = "[DONE]"

type openAIRequest struct {
	Stream      bool            `json:"stream"`
	Model       string          `json:"model"`
	Temperature float64         `json:"temperature"`
	MaxTokens   int             `json:"max_tokens"`
	Messages    []openAIMessage `json:"messages"`
}

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIChunkBody struct {
	Choices []openAIResponseChoice `json:"choices"`
}

type openAIResponseChoice struct {
	Index int `json:"index"`
	Delta struct {
		Content string `json:"content"`
	} `json:"delta"`
}

// openAIReplyGenerator speaks the OpenAI-compatible streaming chat API over
// SSE and accumulates the deltas into one reply string.
type openAIReplyGenerator struct {
	openAIConfig *config.OpenAIConfig
	generation   *config.GenerationConfig
	logger       outbound.LoggerPort
}

func NewOpenAIReplyGenerator(openAIConfig *config.OpenAIConfig, generation *config.GenerationConfig,
	logger outbound.LoggerPort) outbound.ReplyGeneratorPort {
	return &openAIReplyGenerator{
		openAIConfig: openAIConfig,
		generation:   generation,
		logger:       logger,
	}
}

func (s *openAIReplyGenerator) Generate(ctx context.Context, generateReq outbound.GenerateReplyRequest) (string, error) {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.generation.Timeout)
	defer cancel()

	req, err := s.createRequest(ctxWithTimeout, generateReq.Prompt)
	if err != nil {
		s.logger.Error(err, "Failed to create HTTP request for reply stream")
		return "", err
	}

	stream, err := eventsource.SubscribeWithRequest("", req)
	if err != nil {
		s.logger.Error(err, "Failed to subscribe to reply stream")
		return "", err
	}
	defer stream.Close()

	var replyBuilder strings.Builder
	for {
		select {
		case <-ctxWithTimeout.Done():
			return "", ctxWithTimeout.Err()
		case ev := <-stream.Events:
			if ev.Data() == doneSignal {
				return replyBuilder.String(), nil
			}
			payload, err := s.extractPayload(ev)
			if err != nil {
				return "", err
			}
			replyBuilder.WriteString(payload)
		case err := <-stream.Errors:
			if err == io.EOF {
				return replyBuilder.String(), nil
			}
			s.logger.Error(err, "Error occurred during reply streaming")
			return "", err
		}
	}
}

func (s *openAIReplyGenerator) extractPayload(event eventsource.Event) (string, error) {
	var chunkBody openAIChunkBody
	if err := json.Unmarshal([]byte(event.Data()), &chunkBody); err != nil {
		s.logger.Error(err, "Failed to unmarshal event data")
		return "", err
	}
	if len(chunkBody.Choices) == 0 {
		return "", nil
	}
	return chunkBody.Choices[0].Delta.Content, nil
}

func (s *openAIReplyGenerator) createRequest(ctx context.Context, prompt string) (*http.Request, error) {
	promptReq := openAIRequest{
		Stream:      true,
		Model:       s.openAIConfig.Model,
		Temperature: s.generation.Temperature,
		MaxTokens:   s.generation.MaxOutputTokens,
		Messages: []openAIMessage{
			{Role: "user", Content: prompt},
		},
	}

	payloadBytes, err := json.Marshal(promptReq)
	if err != nil {
		s.logger.Error(err, "Failed to marshal the request body")
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, "POST", s.openAIConfig.ApiUrl, bytes.NewBuffer(payloadBytes))
	if err != nil {
		s.logger.Error(err, "Failed to create the HTTP request")
		return nil, err
	}

	req.Header.Set("Authorization", "Bearer "+s.openAIConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
