package static

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/adrianliechti/txtai/pkg/auth"
)

var (
	_ auth.Provider = (*Provider)(nil)
)

var (
	ErrMissingHeader = errors.New("missing authorization header")
	ErrInvalidHeader = errors.New("invalid authorization header")
	ErrInvalidToken  = errors.New("invalid token")
)

// Provider accepts requests carrying one fixed bearer token. An empty token
// disables authentication.
type Provider struct {
	token string
}

func New(token string) (*Provider, error) {
	p := &Provider{
		token: token,
	}

	return p, nil
}

func (p *Provider) Authenticate(ctx context.Context, r *http.Request) (context.Context, error) {
	if p.token == "" {
		return ctx, nil
	}

	header := r.Header.Get("Authorization")

	if header == "" {
		return ctx, ErrMissingHeader
	}

	if !strings.HasPrefix(header, "Bearer ") {
		return ctx, ErrInvalidHeader
	}

	token := strings.TrimPrefix(header, "Bearer ")

	if token != p.token {
		return ctx, ErrInvalidToken
	}

	ctx = context.WithValue(ctx, auth.TokenContextKey, token)

	return ctx, nil
}
