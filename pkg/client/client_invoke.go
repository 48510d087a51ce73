package client

import (
	"context"
	"fmt"
	"net/http"
	"slices"
)

type requestFunc func(ctx context.Context, c *RequestClient) (*http.Response, error)

// invoke runs one observed round trip and decodes the JSON response into T.
func invoke[T any](ctx context.Context, opts [][]RequestOption, op string, fn requestFunc) (result T, err error) {
	c := newRequestClient(newRequestConfig(slices.Concat(opts...)...))

	ctx, done := c.obs.observe(ctx, op)
	defer func() { done(err) }()

	resp, err := fn(ctx, c)

	if err != nil {
		return result, fmt.Errorf("%s: %w", op, err)
	}

	result, err = decode[T](resp)

	if err != nil {
		return result, fmt.Errorf("%s: %w", op, err)
	}

	return result, nil
}

// acknowledge runs one observed round trip whose body carries no result.
func acknowledge(ctx context.Context, opts [][]RequestOption, op string, fn requestFunc) (err error) {
	c := newRequestClient(newRequestConfig(slices.Concat(opts...)...))

	ctx, done := c.obs.observe(ctx, op)
	defer func() { done(err) }()

	resp, err := fn(ctx, c)

	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := check(resp); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func get(method string, params ...Param) requestFunc {
	return func(ctx context.Context, c *RequestClient) (*http.Response, error) {
		return c.Get(ctx, method, params)
	}
}

func post(method string, body any) requestFunc {
	return func(ctx context.Context, c *RequestClient) (*http.Response, error) {
		return c.Post(ctx, method, body)
	}
}

func postMultipart(method string, form *Form) requestFunc {
	return func(ctx context.Context, c *RequestClient) (*http.Response, error) {
		return c.PostMultipart(ctx, method, form)
	}
}
