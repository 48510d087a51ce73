package client_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
)

type recordedRequest struct {
	Method string
	Path   string
	Query  string

	Header http.Header
	Body   []byte
}

type recorder struct {
	mu       sync.Mutex
	requests []recordedRequest
}

func (r *recorder) Requests() []recordedRequest {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]recordedRequest(nil), r.requests...)
}

func (r *recorder) Last(t *testing.T) recordedRequest {
	t.Helper()

	requests := r.Requests()

	if len(requests) == 0 {
		t.Fatal("no request recorded")
	}

	return requests[len(requests)-1]
}

// newServer records every request and answers with status and body.
func newServer(t *testing.T, status int, body string) (*httptest.Server, *recorder) {
	t.Helper()

	rec := &recorder{}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		data, _ := io.ReadAll(r.Body)

		rec.mu.Lock()
		rec.requests = append(rec.requests, recordedRequest{
			Method: r.Method,
			Path:   r.URL.Path,
			Query:  r.URL.RawQuery,

			Header: r.Header.Clone(),
			Body:   data,
		})
		rec.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, body)
	}))

	t.Cleanup(srv.Close)

	return srv, rec
}
