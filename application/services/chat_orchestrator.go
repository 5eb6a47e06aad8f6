package services

import (
	"context"
	"strings"

	"github.com/mhindle4/marty-backend/application/ports/inbound"
	"github.com/mhindle4/marty-backend/application/ports/outbound"
	"github.com/mhindle4/marty-backend/config"
	"github.com/mhindle4/marty-backend/domain"
)

type chatOrchestrator struct {
	logger         outbound.LoggerPort
	workerPool     outbound.TaskDispatcher
	replyGenerator outbound.ReplyGeneratorPort
	seasoner       inbound.ReplySeasonerPort
	synthesizer    outbound.SpeechSynthesizerPort
	audioStore     outbound.AudioStorePort
	persona        *config.PersonaConfig
}

func NewChatOrchestrator(
	logger outbound.LoggerPort,
	workerPool outbound.TaskDispatcher,
	replyGenerator outbound.ReplyGeneratorPort,
	seasoner inbound.ReplySeasonerPort,
	synthesizer outbound.SpeechSynthesizerPort,
	audioStore outbound.AudioStorePort,
	persona *config.PersonaConfig,
) inbound.ChatOrchestratorPort {
	return &chatOrchestrator{
		logger:         logger,
		workerPool:     workerPool,
		replyGenerator: replyGenerator,
		seasoner:       seasoner,
		synthesizer:    synthesizer,
		audioStore:     audioStore,
		persona:        persona,
	}
}

// HandleChat runs the flow strictly in order: validate, compose the persona
// prompt, generate text, season, synthesize and persist audio. Generation and
// synthesis failures degrade into a partial reply; they never fail the request.
func (o *chatOrchestrator) HandleChat(ctx context.Context, params inbound.HandleChatParams) (domain.ChatReply, error) {
	message := strings.TrimSpace(params.Message)
	if message == "" {
		return domain.ChatReply{}, domain.ErrEmptyMessage
	}

	prompt := o.buildPrompt(message)

	text := o.generateReply(ctx, prompt)
	text = o.seasoner.Season(text)

	audioURL := o.synthesizeAudio(ctx, text)

	return domain.NewChatReply(text, audioURL), nil
}

func (o *chatOrchestrator) buildPrompt(message string) string {
	var b strings.Builder
	b.WriteString(o.persona.SystemPrompt)
	b.WriteString("\n\n")
	for _, example := range o.persona.Examples {
		b.WriteString("User: ")
		b.WriteString(example.User)
		b.WriteString("\nMarty: ")
		b.WriteString(example.Reply)
		b.WriteString("\n")
	}
	b.WriteString("User: ")
	b.WriteString(message)
	b.WriteString("\nMarty:")
	return b.String()
}

func (o *chatOrchestrator) generateReply(ctx context.Context, prompt string) string {
	reply, err := o.replyGenerator.Generate(ctx, outbound.GenerateReplyRequest{Prompt: prompt})
	if err != nil {
		o.logger.Error(err, "Failed to generate reply, using fallback apology")
		return domain.FallbackApology
	}

	reply = strings.TrimSpace(reply)
	if reply == "" {
		o.logger.Warn("Reply generator returned empty output, using fallback greeting")
		return domain.FallbackGreeting
	}

	return reply
}

// synthesizeAudio runs the synthesis call and file write on the shared worker
// pool so concurrent vendor calls stay bounded, and waits for the result. An
// empty return means no audio; the reply goes out text-only.
func (o *chatOrchestrator) synthesizeAudio(ctx context.Context, text string) string {
	var audioURL string
	done := make(chan struct{})

	err := o.workerPool.Submit(func() {
		defer close(done)

		audio, err := o.synthesizer.Synthesize(ctx, outbound.SynthesizeRequest{Text: text})
		if err != nil {
			o.logger.ErrorWithFields(err, "Failed to synthesize speech", map[string]interface{}{
				"text_length": len(text),
			})
			return
		}
		defer func() {
			if err := audio.Close(); err != nil {
				o.logger.Error(err, "Failed to close audio stream")
			}
		}()

		url, err := o.audioStore.Save(ctx, audio)
		if err != nil {
			o.logger.Error(err, "Failed to persist audio file")
			return
		}
		audioURL = url
	})
	if err != nil {
		o.logger.Error(err, "Failed to submit synthesis task to worker pool")
		return ""
	}

	<-done
	return audioURL
}
