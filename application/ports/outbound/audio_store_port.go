package outbound

import (
	"context"
	"io"
)

// AudioStorePort persists a synthesized audio stream and returns the public
// URL path it will be served under. The file is fully written and closed
// before Save returns; a failed write never leaves a reachable URL behind.
type AudioStorePort interface {
	Save(ctx context.Context, audio io.Reader) (string, error)
}
