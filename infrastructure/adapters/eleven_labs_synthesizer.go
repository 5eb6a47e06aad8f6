package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"

	"github.com/mhindle4/marty-backend/application/ports/outbound"
	"github.com/mhindle4/marty-backend/config"
)

type ElevenLabsRequest struct {
	Text          string        `json:"text"`
	ModelId       string        `json:"model_id"`
	VoiceSettings VoiceSettings `json:"voice_settings"`
}

type VoiceSettings struct {
	Stability       float64 `json:"stability"`
	SimilarityBoost float64 `json:"similarity_boost"`
}

type elevenLabsSynthesizer struct {
	fetcher          ContentFetcher
	elevenLabsConfig *config.ElevenLabsConfig
	logger           outbound.LoggerPort
}

func NewElevenLabsSynthesizer(fetcher ContentFetcher, elevenLabsConfig *config.ElevenLabsConfig,
	logger outbound.LoggerPort) outbound.SpeechSynthesizerPort {
	return &elevenLabsSynthesizer{
		fetcher:          fetcher,
		elevenLabsConfig: elevenLabsConfig,
		logger:           logger,
	}
}

func (a *elevenLabsSynthesizer) Synthesize(ctx context.Context, synthesizeReq outbound.SynthesizeRequest) (io.ReadCloser, error) {
	req, err := a.getRequest(ctx, synthesizeReq.Text)
	if err != nil {
		a.logger.ErrorWithFields(err, "Failed to construct the HTTP request for speech synthesis", map[string]interface{}{
			"text_length": len(synthesizeReq.Text),
		})
		return nil, err
	}

	return a.fetcher.FetchStream(req)
}

func (a *elevenLabsSynthesizer) getRequest(ctx context.Context, text string) (*http.Request, error) {
	reqBody := ElevenLabsRequest{
		Text:    text,
		ModelId: a.elevenLabsConfig.ModelId,
		VoiceSettings: VoiceSettings{
			Stability:       a.elevenLabsConfig.Stability,
			SimilarityBoost: a.elevenLabsConfig.SimilarityBoost,
		},
	}

	jsonPayload, err := json.Marshal(reqBody)
	if err != nil {
		a.logger.Error(err, "Failed to marshal the request body for the ElevenLabs API")
		return nil, err
	}

	streamUrl := a.elevenLabsConfig.ApiUrl + "/" + a.elevenLabsConfig.VoiceID + "/stream"
	req, err := http.NewRequestWithContext(ctx, "POST", streamUrl, bytes.NewBuffer(jsonPayload))
	if err != nil {
		a.logger.ErrorWithFields(err, "Failed to create the HTTP POST request", map[string]interface{}{
			"URL": streamUrl,
		})
		return nil, err
	}

	req.Header.Set("Accept", "audio/mpeg")
	req.Header.Set("xi-api-key", a.elevenLabsConfig.ApiKey)
	req.Header.Set("Content-Type", "application/json")

	return req, nil
}
