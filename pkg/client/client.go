package client

import (
	"net/http"
)

type Client struct {
	Embeddings   EmbeddingService
	Similarities SimilarityService

	Labels      LabelService
	Extractions ExtractionService

	Segments     SegmentService
	Summaries    SummaryService
	Translations TranslationService

	Transcriptions TranscriptionService
	Textractions   TextractionService

	Workflows WorkflowService
}

func New(url string, opts ...RequestOption) *Client {
	opts = append(opts, WithURL(url))

	return &Client{
		Embeddings:   NewEmbeddingService(opts...),
		Similarities: NewSimilarityService(opts...),

		Labels:      NewLabelService(opts...),
		Extractions: NewExtractionService(opts...),

		Segments:     NewSegmentService(opts...),
		Summaries:    NewSummaryService(opts...),
		Translations: NewTranslationService(opts...),

		Transcriptions: NewTranscriptionService(opts...),
		Textractions:   NewTextractionService(opts...),

		Workflows: NewWorkflowService(opts...),
	}
}

func newRequestConfig(opts ...RequestOption) *RequestConfig {
	c := &RequestConfig{
		Client: http.DefaultClient,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func Ptr[T any](v T) *T {
	return &v
}
