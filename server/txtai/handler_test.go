package txtai_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/adrianliechti/txtai/server/txtai"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func serve(t *testing.T, h http.Handler, method, target, body string, header ...string) *httptest.ResponseRecorder {
	t.Helper()

	r := httptest.NewRequest(method, target, strings.NewReader(body))

	for i := 0; i+1 < len(header); i += 2 {
		r.Header.Set(header[i], header[i+1])
	}

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, r)

	return rec
}

func TestHandlerRoundTrip(t *testing.T) {
	h := txtai.New()
	r := h.Router()

	rec := serve(t, r, http.MethodPost, "/add", `[{"id":"x","text":"wildlife bear"},{"id":"y","text":"virus cases"}]`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, r, http.MethodGet, "/index", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(t, r, http.MethodGet, "/count", "")
	assert.JSONEq(t, `2`, rec.Body.String())

	rec = serve(t, r, http.MethodGet, "/search?query=bear&limit=1", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[{"id":"x","text":"wildlife bear","score":0.5}]`, rec.Body.String())

	rec = serve(t, r, http.MethodPost, "/batchsearch", `{"queries":["virus"],"limit":1}`)
	assert.JSONEq(t, `[[{"id":"y","text":"virus cases","score":0.5}]]`, rec.Body.String())

	rec = serve(t, r, http.MethodPost, "/delete", `["y","z"]`)
	assert.JSONEq(t, `["y"]`, rec.Body.String())

	assert.Equal(t, 1, h.Index().Count())
}

func TestHandlerBadRequest(t *testing.T) {
	r := txtai.New().Router()

	rec := serve(t, r, http.MethodGet, "/search", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"detail":"missing query"}`, rec.Body.String())

	rec = serve(t, r, http.MethodGet, "/search?query=a&limit=many", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = serve(t, r, http.MethodPost, "/add", `{"id":"not a list"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandlerSimilarity(t *testing.T) {
	r := txtai.New().Router()

	rec := serve(t, r, http.MethodPost, "/similarity", `{"query":"war","texts":["peace","war"]}`)
	assert.JSONEq(t, `[{"id":1,"score":1},{"id":0,"score":0}]`, rec.Body.String())

	rec = serve(t, r, http.MethodPost, "/batchlabel", `{"texts":["win"],"labels":["loss","win"]}`)
	assert.JSONEq(t, `[[{"id":1,"score":1},{"id":0,"score":0}]]`, rec.Body.String())
}

func TestHandlerToken(t *testing.T) {
	r := txtai.New(txtai.WithToken("secret")).Router()

	rec := serve(t, r, http.MethodGet, "/count", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = serve(t, r, http.MethodGet, "/count", "", "Authorization", "Bearer secret")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `0`, rec.Body.String())
}

func TestHandlerSharedIndex(t *testing.T) {
	index := txtai.NewIndex()
	index.Add(txtai.Document{ID: "seed", Text: "seeded"})
	index.Build()

	r := txtai.New(txtai.WithIndex(index)).Router()

	rec := serve(t, r, http.MethodGet, "/count", "")
	assert.JSONEq(t, `1`, rec.Body.String())
}

func TestHandlerCORS(t *testing.T) {
	r := txtai.New(txtai.WithCORS("https://app.example.com")).Router()

	rec := serve(t, r, http.MethodGet, "/count", "", "Origin", "https://app.example.com")
	assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))

	rec = serve(t, r, http.MethodGet, "/count", "", "Origin", "https://other.example.com")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	rec = serve(t, txtai.New().Router(), http.MethodGet, "/count", "", "Origin", "https://app.example.com")
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
