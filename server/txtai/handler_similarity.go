package txtai

import (
	"encoding/json"
	"net/http"
)

func (h *Handler) handleSimilarity(w http.ResponseWriter, r *http.Request) {
	var req SimilarityRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJson(w, rank(req.Query, req.Texts))
}

func (h *Handler) handleBatchSimilarity(w http.ResponseWriter, r *http.Request) {
	var req BatchSimilarityRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	results := [][]IndexResult{}

	for _, q := range req.Queries {
		results = append(results, rank(q, req.Texts))
	}

	writeJson(w, results)
}

func (h *Handler) handleLabel(w http.ResponseWriter, r *http.Request) {
	var req LabelRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	writeJson(w, rank(req.Text, req.Labels))
}

func (h *Handler) handleBatchLabel(w http.ResponseWriter, r *http.Request) {
	var req BatchLabelRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	results := [][]IndexResult{}

	for _, text := range req.Texts {
		results = append(results, rank(text, req.Labels))
	}

	writeJson(w, results)
}
