package client

import (
	"context"
)

type TranslationService struct {
	Options []RequestOption
}

func NewTranslationService(opts ...RequestOption) TranslationService {
	return TranslationService{
		Options: opts,
	}
}

type TranslateRequest struct {
	Text string

	// target language code, the service defaults to "en"
	Target *string

	// source language code, detected when nil
	Source *string
}

type BatchTranslateRequest struct {
	Texts []string `json:"text"`

	Target *string `json:"target,omitempty"`
	Source *string `json:"source,omitempty"`
}

func (r *TranslationService) Translate(ctx context.Context, input TranslateRequest, opts ...RequestOption) (string, error) {
	params := []Param{
		{"text", input.Text},
	}

	if input.Target != nil {
		params = append(params, Param{"target", *input.Target})
	}

	if input.Source != nil {
		params = append(params, Param{"source", *input.Source})
	}

	return invoke[string](ctx, [][]RequestOption{r.Options, opts}, "translate", get("translate", params...))
}

func (r *TranslationService) BatchTranslate(ctx context.Context, input BatchTranslateRequest, opts ...RequestOption) ([]string, error) {
	input.Texts = nonNil(input.Texts)

	return invoke[[]string](ctx, [][]RequestOption{r.Options, opts}, "batchtranslate", post("batchtranslate", input))
}
