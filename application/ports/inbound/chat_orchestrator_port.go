package inbound

import (
	"context"

	"github.com/mhindle4/marty-backend/domain"
)

type HandleChatParams struct {
	Message string
}

// ChatOrchestratorPort runs the whole request lifecycle: validation, prompt
// composition, text generation, seasoning, speech synthesis, persistence.
// The only error it ever returns is domain.ErrEmptyMessage; every external
// failure degrades into a partial reply instead.
type ChatOrchestratorPort interface {
	HandleChat(ctx context.Context, params HandleChatParams) (domain.ChatReply, error)
}
