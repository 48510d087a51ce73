package txtai

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
)

const defaultLimit = 10

func (h *Handler) handleAdd(w http.ResponseWriter, r *http.Request) {
	var docs []Document

	if err := json.NewDecoder(r.Body).Decode(&docs); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	h.index.Add(docs...)
}

func (h *Handler) handleIndex(w http.ResponseWriter, r *http.Request) {
	h.index.Build()
}

func (h *Handler) handleUpsert(w http.ResponseWriter, r *http.Request) {
	h.index.Upsert()
}

func (h *Handler) handleDelete(w http.ResponseWriter, r *http.Request) {
	var ids []string

	if err := json.NewDecoder(r.Body).Decode(&ids); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJson(w, h.index.Delete(ids...))
}

func (h *Handler) handleCount(w http.ResponseWriter, r *http.Request) {
	writeJson(w, h.index.Count())
}

func (h *Handler) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")

	if query == "" {
		writeError(w, http.StatusBadRequest, errors.New("missing query"))
		return
	}

	limit := defaultLimit

	if val := r.URL.Query().Get("limit"); val != "" {
		n, err := strconv.Atoi(val)

		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}

		limit = n
	}

	writeJson(w, h.index.Search(query, limit))
}

func (h *Handler) handleBatchSearch(w http.ResponseWriter, r *http.Request) {
	var req BatchSearchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	limit := defaultLimit

	if req.Limit != nil {
		limit = *req.Limit
	}

	results := [][]Result{}

	for _, q := range req.Queries {
		results = append(results, h.index.Search(q, limit))
	}

	writeJson(w, results)
}
