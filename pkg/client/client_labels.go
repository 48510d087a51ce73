package client

import (
	"context"
)

type LabelService struct {
	Options []RequestOption
}

func NewLabelService(opts ...RequestOption) LabelService {
	return LabelService{
		Options: opts,
	}
}

type labelRequest struct {
	Text   string   `json:"text"`
	Labels []string `json:"labels"`
}

type batchLabelRequest struct {
	Texts  []string `json:"texts"`
	Labels []string `json:"labels"`
}

// Label applies a zero shot classifier to text. Result ids are positions in labels.
func (r *LabelService) Label(ctx context.Context, text string, labels []string, opts ...RequestOption) ([]IndexResult, error) {
	body := labelRequest{
		Text:   text,
		Labels: nonNil(labels),
	}

	return invoke[[]IndexResult](ctx, [][]RequestOption{r.Options, opts}, "label", post("label", body))
}

func (r *LabelService) BatchLabel(ctx context.Context, texts []string, labels []string, opts ...RequestOption) ([][]IndexResult, error) {
	body := batchLabelRequest{
		Texts:  nonNil(texts),
		Labels: nonNil(labels),
	}

	return invoke[[][]IndexResult](ctx, [][]RequestOption{r.Options, opts}, "batchlabel", post("batchlabel", body))
}
