package client

import (
	"context"
)

type SimilarityService struct {
	Options []RequestOption
}

func NewSimilarityService(opts ...RequestOption) SimilarityService {
	return SimilarityService{
		Options: opts,
	}
}

// Similarity scores each of texts against query. Result ids are positions in texts.
func (r *SimilarityService) Similarity(ctx context.Context, query string, texts []string, opts ...RequestOption) ([]IndexResult, error) {
	return similarity(ctx, [][]RequestOption{r.Options, opts}, query, texts)
}

// BatchSimilarity returns one result list per query, in query order.
func (r *SimilarityService) BatchSimilarity(ctx context.Context, queries []string, texts []string, opts ...RequestOption) ([][]IndexResult, error) {
	return batchSimilarity(ctx, [][]RequestOption{r.Options, opts}, queries, texts)
}

type similarityRequest struct {
	Query string   `json:"query"`
	Texts []string `json:"texts"`
}

type batchSimilarityRequest struct {
	Queries []string `json:"queries"`
	Texts   []string `json:"texts"`
}

func similarity(ctx context.Context, opts [][]RequestOption, query string, texts []string) ([]IndexResult, error) {
	body := similarityRequest{
		Query: query,
		Texts: nonNil(texts),
	}

	return invoke[[]IndexResult](ctx, opts, "similarity", post("similarity", body))
}

func batchSimilarity(ctx context.Context, opts [][]RequestOption, queries []string, texts []string) ([][]IndexResult, error) {
	body := batchSimilarityRequest{
		Queries: nonNil(queries),
		Texts:   nonNil(texts),
	}

	return invoke[[][]IndexResult](ctx, opts, "batchsimilarity", post("batchsimilarity", body))
}
