package client

import (
	"context"
	"strconv"
)

type SummaryService struct {
	Options []RequestOption
}

func NewSummaryService(opts ...RequestOption) SummaryService {
	return SummaryService{
		Options: opts,
	}
}

type SummaryRequest struct {
	Text string

	MinLength *int
	MaxLength *int
}

type BatchSummaryRequest struct {
	Texts []string `json:"text"`

	MinLength *int `json:"minlength,omitempty"`
	MaxLength *int `json:"maxlength,omitempty"`
}

func (r *SummaryService) Summary(ctx context.Context, input SummaryRequest, opts ...RequestOption) (string, error) {
	params := []Param{
		{"text", input.Text},
	}

	if input.MinLength != nil {
		params = append(params, Param{"minlength", strconv.Itoa(*input.MinLength)})
	}

	if input.MaxLength != nil {
		params = append(params, Param{"maxlength", strconv.Itoa(*input.MaxLength)})
	}

	return invoke[string](ctx, [][]RequestOption{r.Options, opts}, "summary", get("summary", params...))
}

func (r *SummaryService) BatchSummary(ctx context.Context, input BatchSummaryRequest, opts ...RequestOption) ([]string, error) {
	input.Texts = nonNil(input.Texts)

	return invoke[[]string](ctx, [][]RequestOption{r.Options, opts}, "batchsummary", post("batchsummary", input))
}
