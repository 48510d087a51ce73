package client

import (
	"context"
)

type TranscriptionService struct {
	Options []RequestOption
}

func NewTranscriptionService(opts ...RequestOption) TranscriptionService {
	return TranscriptionService{
		Options: opts,
	}
}

// Transcribe converts the audio file at path to text. The path is resolved
// and read by the service, not by the client.
func (r *TranscriptionService) Transcribe(ctx context.Context, file string, opts ...RequestOption) (string, error) {
	return invoke[string](ctx, [][]RequestOption{r.Options, opts}, "transcribe", get("transcribe", Param{"file", file}))
}

func (r *TranscriptionService) BatchTranscribe(ctx context.Context, files []string, opts ...RequestOption) ([]string, error) {
	return invoke[[]string](ctx, [][]RequestOption{r.Options, opts}, "batchtranscribe", post("batchtranscribe", nonNil(files)))
}
