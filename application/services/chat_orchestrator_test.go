package services

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/mhindle4/marty-backend/application/ports/inbound"
	"github.com/mhindle4/marty-backend/application/ports/outbound"
	"github.com/mhindle4/marty-backend/config"
	"github.com/mhindle4/marty-backend/domain"
)

type nopLogger struct{}

func (nopLogger) Info(string)                                           {}
func (nopLogger) InfoWithFields(string, map[string]interface{})         {}
func (nopLogger) Error(error, string)                                   {}
func (nopLogger) ErrorWithFields(error, string, map[string]interface{}) {}
func (nopLogger) Debug(string)                                          {}
func (nopLogger) DebugWithFields(string, map[string]interface{})        {}
func (nopLogger) Warn(string)                                           {}
func (nopLogger) WarnWithFields(string, map[string]interface{})         {}

// inlineDispatcher runs submitted tasks on the calling goroutine so tests
// stay deterministic.
type inlineDispatcher struct{}

func (inlineDispatcher) Submit(task func()) error {
	task()
	return nil
}

type fakeReplyGenerator struct {
	reply      string
	err        error
	calls      int
	lastPrompt string
}

func (f *fakeReplyGenerator) Generate(_ context.Context, req outbound.GenerateReplyRequest) (string, error) {
	f.calls++
	f.lastPrompt = req.Prompt
	return f.reply, f.err
}

type fakeSynthesizer struct {
	audio    []byte
	err      error
	calls    int
	lastText string
}

func (f *fakeSynthesizer) Synthesize(_ context.Context, req outbound.SynthesizeRequest) (io.ReadCloser, error) {
	f.calls++
	f.lastText = req.Text
	if f.err != nil {
		return nil, f.err
	}
	return io.NopCloser(bytes.NewReader(f.audio)), nil
}

type fakeAudioStore struct {
	url       string
	err       error
	calls     int
	lastBytes []byte
}

func (f *fakeAudioStore) Save(_ context.Context, audio io.Reader) (string, error) {
	f.calls++
	payload, err := io.ReadAll(audio)
	if err != nil {
		return "", err
	}
	f.lastBytes = payload
	if f.err != nil {
		return "", f.err
	}
	return f.url, nil
}

func newTestOrchestrator(generator *fakeReplyGenerator, synthesizer *fakeSynthesizer,
	store *fakeAudioStore, persona *config.PersonaConfig) inbound.ChatOrchestratorPort {
	if persona == nil {
		persona = &config.PersonaConfig{SystemPrompt: "You are Marty."}
	}
	seasoner := NewReplySeasoner(persona, fixedRand{})
	return NewChatOrchestrator(nopLogger{}, inlineDispatcher{}, generator, seasoner,
		synthesizer, store, persona)
}

func TestChatOrchestrator_RejectsEmptyMessage(t *testing.T) {
	for _, message := range []string{"", "   ", "\n\t"} {
		generator := &fakeReplyGenerator{reply: "hi"}
		synthesizer := &fakeSynthesizer{audio: []byte("mp3")}
		store := &fakeAudioStore{url: "/static/audio/x.mp3"}
		orchestrator := newTestOrchestrator(generator, synthesizer, store, nil)

		_, err := orchestrator.HandleChat(context.Background(), inbound.HandleChatParams{Message: message})
		if !errors.Is(err, domain.ErrEmptyMessage) {
			t.Fatalf("message %q: expected ErrEmptyMessage, got %v", message, err)
		}
		if generator.calls != 0 || synthesizer.calls != 0 || store.calls != 0 {
			t.Fatalf("message %q: expected zero collaborator calls, got generator=%d synthesizer=%d store=%d",
				message, generator.calls, synthesizer.calls, store.calls)
		}
	}
}

func TestChatOrchestrator_ComposesPersonaPrompt(t *testing.T) {
	generator := &fakeReplyGenerator{reply: "Sure thing."}
	synthesizer := &fakeSynthesizer{audio: []byte("mp3")}
	store := &fakeAudioStore{url: "/static/audio/x.mp3"}
	persona := &config.PersonaConfig{
		SystemPrompt: "You are Marty.",
		Examples: []config.PersonaExample{
			{User: "Hi", Reply: "Hey there!"},
		},
	}
	orchestrator := newTestOrchestrator(generator, synthesizer, store, persona)

	_, err := orchestrator.HandleChat(context.Background(), inbound.HandleChatParams{Message: "  What is Go?  "})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	want := "You are Marty.\n\nUser: Hi\nMarty: Hey there!\nUser: What is Go?\nMarty:"
	if generator.lastPrompt != want {
		t.Fatalf("expected prompt %q, got %q", want, generator.lastPrompt)
	}
}

func TestChatOrchestrator_FallsBackToApologyOnGeneratorError(t *testing.T) {
	generator := &fakeReplyGenerator{err: errors.New("model unavailable")}
	synthesizer := &fakeSynthesizer{audio: []byte("mp3")}
	store := &fakeAudioStore{url: "/static/audio/x.mp3"}
	orchestrator := newTestOrchestrator(generator, synthesizer, store, nil)

	reply, err := orchestrator.HandleChat(context.Background(), inbound.HandleChatParams{Message: "Hello"})
	if err != nil {
		t.Fatal("generation failure must not fail the request:", err)
	}
	if reply.Text != domain.FallbackApology {
		t.Fatalf("expected apology fallback, got %q", reply.Text)
	}
	if synthesizer.calls != 1 || synthesizer.lastText != domain.FallbackApology {
		t.Fatalf("expected synthesis attempted on the apology text, calls=%d text=%q",
			synthesizer.calls, synthesizer.lastText)
	}
	if !reply.HasAudio() {
		t.Fatal("expected audio for the fallback reply")
	}
}

func TestChatOrchestrator_FallsBackToGreetingOnEmptyOutput(t *testing.T) {
	for _, output := range []string{"", "   \n"} {
		generator := &fakeReplyGenerator{reply: output}
		synthesizer := &fakeSynthesizer{audio: []byte("mp3")}
		store := &fakeAudioStore{url: "/static/audio/x.mp3"}
		orchestrator := newTestOrchestrator(generator, synthesizer, store, nil)

		reply, err := orchestrator.HandleChat(context.Background(), inbound.HandleChatParams{Message: "Hello"})
		if err != nil {
			t.Fatal("unexpected error:", err)
		}
		if reply.Text != domain.FallbackGreeting {
			t.Fatalf("output %q: expected greeting fallback, got %q", output, reply.Text)
		}
	}
}

func TestChatOrchestrator_OmitsAudioOnSynthesisFailure(t *testing.T) {
	generator := &fakeReplyGenerator{reply: "All good."}
	synthesizer := &fakeSynthesizer{err: errors.New("voice service down")}
	store := &fakeAudioStore{url: "/static/audio/x.mp3"}
	orchestrator := newTestOrchestrator(generator, synthesizer, store, nil)

	reply, err := orchestrator.HandleChat(context.Background(), inbound.HandleChatParams{Message: "Hello"})
	if err != nil {
		t.Fatal("synthesis failure must not fail the request:", err)
	}
	if reply.Text != "All good." {
		t.Fatalf("expected generated text, got %q", reply.Text)
	}
	if reply.HasAudio() {
		t.Fatalf("expected no audio URL, got %q", reply.AudioURL)
	}
	if store.calls != 0 {
		t.Fatal("store must not be reached when synthesis fails")
	}
}

func TestChatOrchestrator_OmitsAudioOnStoreFailure(t *testing.T) {
	generator := &fakeReplyGenerator{reply: "All good."}
	synthesizer := &fakeSynthesizer{audio: []byte("mp3")}
	store := &fakeAudioStore{err: errors.New("disk full")}
	orchestrator := newTestOrchestrator(generator, synthesizer, store, nil)

	reply, err := orchestrator.HandleChat(context.Background(), inbound.HandleChatParams{Message: "Hello"})
	if err != nil {
		t.Fatal("store failure must not fail the request:", err)
	}
	if reply.HasAudio() {
		t.Fatalf("expected no audio URL, got %q", reply.AudioURL)
	}
}

func TestChatOrchestrator_FullFlow(t *testing.T) {
	generator := &fakeReplyGenerator{reply: "  Go is a programming language.  "}
	synthesizer := &fakeSynthesizer{audio: []byte("fake mpeg payload")}
	store := &fakeAudioStore{url: "/static/audio/marty_123.mp3"}
	orchestrator := newTestOrchestrator(generator, synthesizer, store, nil)

	reply, err := orchestrator.HandleChat(context.Background(), inbound.HandleChatParams{Message: "What is Go?"})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if reply.Text != "Go is a programming language." {
		t.Fatalf("expected trimmed generator output, got %q", reply.Text)
	}
	if reply.AudioURL != "/static/audio/marty_123.mp3" {
		t.Fatalf("unexpected audio URL: %q", reply.AudioURL)
	}
	if !strings.Contains(synthesizer.lastText, "Go is a programming language.") {
		t.Fatalf("synthesizer received wrong text: %q", synthesizer.lastText)
	}
	if string(store.lastBytes) != "fake mpeg payload" {
		t.Fatalf("store received wrong bytes: %q", store.lastBytes)
	}
}
