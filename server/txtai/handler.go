// Package txtai serves an in-memory subset of the txtai API.
//
// It keeps documents in memory and scores them by token overlap instead of
// running models, which is enough to exercise clients end to end in tests
// and local development.
package txtai

import (
	"encoding/json"
	"net/http"

	"github.com/adrianliechti/txtai/pkg/auth"
	"github.com/adrianliechti/txtai/pkg/auth/static"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type Handler struct {
	index *Index

	auth auth.Provider

	origins []string
}

type Option func(*Handler)

// WithToken requires every request to carry the bearer token.
func WithToken(token string) Option {
	return func(h *Handler) {
		p, _ := static.New(token)
		h.auth = p
	}
}

// WithCORS allows browser requests from the given origins, "*" for any.
func WithCORS(origins ...string) Option {
	return func(h *Handler) {
		h.origins = origins
	}
}

func WithIndex(index *Index) Option {
	return func(h *Handler) {
		h.index = index
	}
}

func New(opts ...Option) *Handler {
	h := &Handler{}

	for _, opt := range opts {
		opt(h)
	}

	if h.index == nil {
		h.index = NewIndex()
	}

	if h.auth == nil {
		h.auth, _ = static.New("")
	}

	return h
}

func (h *Handler) Index() *Index {
	return h.index
}

func (h *Handler) Attach(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(auth.Middleware(h.auth))

		r.Post("/add", h.handleAdd)
		r.Get("/index", h.handleIndex)
		r.Get("/upsert", h.handleUpsert)
		r.Post("/delete", h.handleDelete)
		r.Get("/count", h.handleCount)

		r.Get("/search", h.handleSearch)
		r.Post("/batchsearch", h.handleBatchSearch)

		r.Post("/similarity", h.handleSimilarity)
		r.Post("/batchsimilarity", h.handleBatchSimilarity)

		r.Post("/label", h.handleLabel)
		r.Post("/batchlabel", h.handleBatchLabel)
	})
}

// Router returns a new chi router with the handler attached.
func (h *Handler) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	if len(h.origins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: h.origins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost},
			AllowedHeaders: []string{"Authorization", "Content-Type"},
		}))
	}

	h.Attach(r)

	return r
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(ErrorResponse{
		Detail: err.Error(),
	})
}
