package domain

import "errors"

// ErrEmptyMessage is returned when a chat message is missing or blank after
// trimming. It is the only error the HTTP layer surfaces to the caller.
var ErrEmptyMessage = errors.New("no message provided")

// Fallback replies used when the text generation collaborator fails or
// returns nothing usable. The request still succeeds with one of these.
const (
	FallbackApology  = "Sorry, I had trouble generating a response."
	FallbackGreeting = "I'm here! How can I help?"
)

// ChatReply is the final product of one orchestrated chat request. AudioURL
// is empty when speech synthesis failed or was skipped; the reply text is
// always populated.
type ChatReply struct {
	Text     string
	AudioURL string
}

func NewChatReply(text string, audioURL string) ChatReply {
	return ChatReply{
		Text:     text,
		AudioURL: audioURL,
	}
}

// HasAudio reports whether the reply references a fully written audio file.
func (r ChatReply) HasAudio() bool {
	return r.AudioURL != ""
}
