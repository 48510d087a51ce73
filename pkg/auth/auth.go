package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const (
	TokenContextKey contextKey = "token"
)

type Provider interface {
	Authenticate(ctx context.Context, r *http.Request) (context.Context, error)
}

// Middleware rejects requests the provider does not authenticate with 401.
func Middleware(p Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, err := p.Authenticate(r.Context(), r)

			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)

				json.NewEncoder(w).Encode(map[string]string{
					"detail": err.Error(),
				})

				return
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
