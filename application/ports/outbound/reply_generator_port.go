package outbound

import "context"

type GenerateReplyRequest struct {
	Prompt string
}

// ReplyGeneratorPort is the text generation collaborator. Implementations
// talk to a remote model API and return the raw reply text; callers own the
// fallback policy for failures and empty output.
type ReplyGeneratorPort interface {
	Generate(ctx context.Context, req GenerateReplyRequest) (string, error)
}
