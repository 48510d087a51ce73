package txtai

type ErrorResponse struct {
	Detail string `json:"detail"`
}

type Document struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type Result struct {
	ID    string  `json:"id"`
	Text  string  `json:"text,omitempty"`
	Score float64 `json:"score"`
}

type IndexResult struct {
	ID    int     `json:"id"`
	Score float64 `json:"score"`
}

type BatchSearchRequest struct {
	Queries []string `json:"queries"`
	Limit   *int     `json:"limit"`
}

type SimilarityRequest struct {
	Query string   `json:"query"`
	Texts []string `json:"texts"`
}

type BatchSimilarityRequest struct {
	Queries []string `json:"queries"`
	Texts   []string `json:"texts"`
}

type LabelRequest struct {
	Text   string   `json:"text"`
	Labels []string `json:"labels"`
}

type BatchLabelRequest struct {
	Texts  []string `json:"texts"`
	Labels []string `json:"labels"`
}
