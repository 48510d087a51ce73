package client

import (
	"context"
)

type TextractionService struct {
	Options []RequestOption
}

func NewTextractionService(opts ...RequestOption) TextractionService {
	return TextractionService{
		Options: opts,
	}
}

// Textract extracts text from the document at path on the service host.
func (r *TextractionService) Textract(ctx context.Context, file string, opts ...RequestOption) (Text, error) {
	return invoke[Text](ctx, [][]RequestOption{r.Options, opts}, "textract", get("textract", Param{"file", file}))
}

func (r *TextractionService) BatchTextract(ctx context.Context, files []string, opts ...RequestOption) ([]Text, error) {
	return invoke[[]Text](ctx, [][]RequestOption{r.Options, opts}, "batchtextract", post("batchtextract", nonNil(files)))
}
