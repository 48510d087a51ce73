package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
)

var (
	ErrTransport = errors.New("transport error")
	ErrResponse  = errors.New("response error")
)

const maxErrorBody = 512

// TransportError reports a request that was never answered: an argument
// that cannot be encoded, a limiter that refuses, connection refused, DNS or
// TLS failures, cancellation, or a body cut off while reading.
type TransportError struct {
	Method string
	URL    string

	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// ResponseError reports a non-success status or a body that does not
// match the expected JSON shape. Body holds at most the first 512 bytes.
type ResponseError struct {
	Method string
	URL    string

	StatusCode int
	Status     string

	Body string

	Err error
}

func (e *ResponseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s %s: invalid response: %v", e.Method, e.URL, e.Err)
	}

	if e.Body == "" {
		return fmt.Sprintf("%s %s: %s", e.Method, e.URL, e.Status)
	}

	return fmt.Sprintf("%s %s: %s: %s", e.Method, e.URL, e.Status, e.Body)
}

func (e *ResponseError) Unwrap() error {
	return e.Err
}

func (e *ResponseError) Is(target error) bool {
	return target == ErrResponse
}

func newResponseError(resp *http.Response, body []byte, err error) *ResponseError {
	e := &ResponseError{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,

		Err: err,
	}

	if resp.Request != nil {
		e.Method = resp.Request.Method
		e.URL = resp.Request.URL.String()
	}

	if len(body) > maxErrorBody {
		body = body[:maxErrorBody]
	}

	e.Body = strings.TrimSpace(string(body))

	return e
}

func newStatusError(resp *http.Response) *ResponseError {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return newResponseError(resp, data, nil)
}

// check consumes and closes the response, failing on a non-2xx status.
func check(resp *http.Response) error {
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newStatusError(resp)
	}

	io.Copy(io.Discard, resp.Body)

	return nil
}

// decode consumes and closes the response, unmarshalling a 2xx body into T.
// A body of the wrong shape is kept in the error.
func decode[T any](resp *http.Response) (T, error) {
	defer resp.Body.Close()

	var result T

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return result, newStatusError(resp)
	}

	data, err := io.ReadAll(resp.Body)

	if err != nil {
		e := &TransportError{Err: err}

		if resp.Request != nil {
			e.Method = resp.Request.Method
			e.URL = resp.Request.URL.String()
		}

		return result, e
	}

	if err := json.Unmarshal(data, &result); err != nil {
		return result, newResponseError(resp, data, err)
	}

	return result, nil
}
