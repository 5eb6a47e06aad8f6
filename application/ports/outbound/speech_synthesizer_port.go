package outbound

import (
	"context"
	"io"
)

type SynthesizeRequest struct {
	Text string
}

// SpeechSynthesizerPort converts reply text into streamed audio. The caller
// must close the returned reader after draining it.
type SpeechSynthesizerPort interface {
	Synthesize(ctx context.Context, req SynthesizeRequest) (io.ReadCloser, error)
}
