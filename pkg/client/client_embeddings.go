package client

import (
	"context"
	"fmt"
	"net/http"
	"slices"
	"strconv"
)

type EmbeddingService struct {
	Options []RequestOption
}

func NewEmbeddingService(opts ...RequestOption) EmbeddingService {
	return EmbeddingService{
		Options: opts,
	}
}

type SearchRequest struct {
	Query string

	// maximum results, the service default applies when nil
	Limit *int

	// hybrid score weights, if the index supports it
	Weights *float64

	Index *string
}

type BatchSearchRequest struct {
	Queries []string `json:"queries"`
	Limit   *int     `json:"limit,omitempty"`

	Weights *float64 `json:"weights,omitempty"`

	Index *string `json:"index,omitempty"`
}

type ReindexRequest struct {
	Config map[string]any `json:"config"`

	Function *string `json:"function,omitempty"`
}

type ObjectRequest struct {
	Data [][]byte

	UID   []string
	Field *string
}

// Search finds the documents most similar to the query, highest score first.
func (r *EmbeddingService) Search(ctx context.Context, input SearchRequest, opts ...RequestOption) ([]SearchResult, error) {
	return invoke[[]SearchResult](ctx, [][]RequestOption{r.Options, opts}, "search", get("search", searchParams(input)...))
}

// Query runs the same request as Search and returns the raw response so
// callers can decode custom result shapes. The caller must close the body.
func (r *EmbeddingService) Query(ctx context.Context, input SearchRequest, opts ...RequestOption) (resp *http.Response, err error) {
	c := newRequestClient(newRequestConfig(slices.Concat(r.Options, opts)...))

	ctx, done := c.obs.observe(ctx, "query")
	defer func() { done(err) }()

	resp, err = c.Get(ctx, "search", searchParams(input))

	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}

	return resp, nil
}

func (r *EmbeddingService) BatchSearch(ctx context.Context, input BatchSearchRequest, opts ...RequestOption) ([][]SearchResult, error) {
	return invoke[[][]SearchResult](ctx, [][]RequestOption{r.Options, opts}, "batchsearch", post("batchsearch", input))
}

// Add queues documents for indexing. They become searchable after Index or Upsert.
func (r *EmbeddingService) Add(ctx context.Context, documents []Document, opts ...RequestOption) error {
	return acknowledge(ctx, [][]RequestOption{r.Options, opts}, "add", post("add", nonNil(documents)))
}

// Index builds the index from the queued documents.
func (r *EmbeddingService) Index(ctx context.Context, opts ...RequestOption) error {
	return acknowledge(ctx, [][]RequestOption{r.Options, opts}, "index", get("index"))
}

// Upsert merges the queued documents into the existing index.
func (r *EmbeddingService) Upsert(ctx context.Context, opts ...RequestOption) error {
	return acknowledge(ctx, [][]RequestOption{r.Options, opts}, "upsert", get("upsert"))
}

// Delete removes ids from the index and returns the ids actually deleted.
func (r *EmbeddingService) Delete(ctx context.Context, ids []string, opts ...RequestOption) ([]string, error) {
	return invoke[[]string](ctx, [][]RequestOption{r.Options, opts}, "delete", post("delete", nonNil(ids)))
}

// Reindex rebuilds the index with a new configuration. Requires content storage.
func (r *EmbeddingService) Reindex(ctx context.Context, input ReindexRequest, opts ...RequestOption) error {
	if input.Config == nil {
		input.Config = map[string]any{}
	}

	return acknowledge(ctx, [][]RequestOption{r.Options, opts}, "reindex", post("reindex", input))
}

func (r *EmbeddingService) Count(ctx context.Context, opts ...RequestOption) (int, error) {
	return invoke[int](ctx, [][]RequestOption{r.Options, opts}, "count", get("count"))
}

func (r *EmbeddingService) Similarity(ctx context.Context, query string, texts []string, opts ...RequestOption) ([]IndexResult, error) {
	return similarity(ctx, [][]RequestOption{r.Options, opts}, query, texts)
}

func (r *EmbeddingService) BatchSimilarity(ctx context.Context, queries []string, texts []string, opts ...RequestOption) ([][]IndexResult, error) {
	return batchSimilarity(ctx, [][]RequestOption{r.Options, opts}, queries, texts)
}

// Transform computes the embeddings vector of text.
func (r *EmbeddingService) Transform(ctx context.Context, text string, opts ...RequestOption) ([]float32, error) {
	return invoke[[]float32](ctx, [][]RequestOption{r.Options, opts}, "transform", get("transform", Param{"text", text}))
}

func (r *EmbeddingService) BatchTransform(ctx context.Context, texts []string, opts ...RequestOption) ([][]float32, error) {
	return invoke[[][]float32](ctx, [][]RequestOption{r.Options, opts}, "batchtransform", post("batchtransform", nonNil(texts)))
}

// AddObject queues binary objects for indexing.
func (r *EmbeddingService) AddObject(ctx context.Context, input ObjectRequest, opts ...RequestOption) error {
	form := objectForm(input, func(i int) string {
		return "file" + strconv.Itoa(i)
	}, "application/octet-stream")

	return acknowledge(ctx, [][]RequestOption{r.Options, opts}, "addobject", postMultipart("addobject", form))
}

// AddImage queues JPEG images for indexing.
func (r *EmbeddingService) AddImage(ctx context.Context, input ObjectRequest, opts ...RequestOption) error {
	form := objectForm(input, func(i int) string {
		return "image" + strconv.Itoa(i) + ".jpg"
	}, "image/jpeg")

	return acknowledge(ctx, [][]RequestOption{r.Options, opts}, "addimage", postMultipart("addimage", form))
}

func searchParams(input SearchRequest) []Param {
	params := []Param{
		{"query", input.Query},
	}

	if input.Limit != nil {
		params = append(params, Param{"limit", strconv.Itoa(*input.Limit)})
	}

	if input.Weights != nil {
		params = append(params, Param{"weights", strconv.FormatFloat(*input.Weights, 'f', -1, 64)})
	}

	if input.Index != nil {
		params = append(params, Param{"index", *input.Index})
	}

	return params
}

func objectForm(input ObjectRequest, name func(int) string, contentType string) *Form {
	form := NewForm()

	for i, data := range input.Data {
		form.AddFile("data", name(i), contentType, data)
	}

	for _, id := range input.UID {
		form.AddField("uid", id)
	}

	if input.Field != nil {
		form.AddField("field", *input.Field)
	}

	return form
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}

	return s
}
