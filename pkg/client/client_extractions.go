package client

import (
	"context"
)

type ExtractionService struct {
	Options []RequestOption
}

func NewExtractionService(opts ...RequestOption) ExtractionService {
	return ExtractionService{
		Options: opts,
	}
}

type extractRequest struct {
	Queue []Question `json:"queue"`
	Texts []string   `json:"texts"`
}

type extractIndexRequest struct {
	Queue []Question `json:"queue"`
}

// Extract answers each question using texts as context. One answer is
// returned per question, named after Question.Name.
func (r *ExtractionService) Extract(ctx context.Context, questions []Question, texts []string, opts ...RequestOption) ([]Answer, error) {
	body := extractRequest{
		Queue: nonNil(questions),
		Texts: nonNil(texts),
	}

	return invoke[[]Answer](ctx, [][]RequestOption{r.Options, opts}, "extract", post("extract", body))
}

// ExtractFromIndex answers each question using the documents of the
// service's embeddings index as context. Question.Query selects the
// documents searched for each question.
func (r *ExtractionService) ExtractFromIndex(ctx context.Context, questions []Question, opts ...RequestOption) ([]Answer, error) {
	body := extractIndexRequest{
		Queue: nonNil(questions),
	}

	return invoke[[]Answer](ctx, [][]RequestOption{r.Options, opts}, "extract", post("extract", body))
}
