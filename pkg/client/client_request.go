package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strings"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/time/rate"
)

// Param is a single query string pair. Params are sent in the order given.
type Param struct {
	Name  string
	Value string
}

// RequestClient executes requests against {url}/{method} and returns the
// response as is. Callers own the response body.
type RequestClient struct {
	url   string
	token string

	client  *http.Client
	limiter *rate.Limiter

	obs *observer
}

func NewRequestClient(opts ...RequestOption) *RequestClient {
	return newRequestClient(newRequestConfig(opts...))
}

func newRequestClient(cfg *RequestConfig) *RequestClient {
	client := cfg.Client

	if client == nil {
		client = http.DefaultClient
	}

	if cfg.Tracing {
		transport := client.Transport

		if transport == nil {
			transport = http.DefaultTransport
		}

		traced := *client
		traced.Transport = otelhttp.NewTransport(transport)

		client = &traced
	}

	return &RequestClient{
		url:   strings.TrimRight(cfg.URL, "/"),
		token: cfg.Token,

		client:  client,
		limiter: cfg.Limiter,

		obs: newObserver(cfg),
	}
}

func (c *RequestClient) Get(ctx context.Context, method string, params []Param) (*http.Response, error) {
	u := c.url + "/" + method

	if query := encodeParams(params); query != "" {
		u += "?" + query
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)

	if err != nil {
		return nil, &TransportError{Method: http.MethodGet, URL: u, Err: err}
	}

	return c.do(req)
}

func (c *RequestClient) Post(ctx context.Context, method string, body any) (*http.Response, error) {
	u := c.url + "/" + method

	var data bytes.Buffer

	enc := json.NewEncoder(&data)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(body); err != nil {
		return nil, &TransportError{Method: http.MethodPost, URL: u, Err: fmt.Errorf("encode request: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &data)

	if err != nil {
		return nil, &TransportError{Method: http.MethodPost, URL: u, Err: err}
	}

	req.Header.Set("Content-Type", "application/json")

	return c.do(req)
}

func (c *RequestClient) PostMultipart(ctx context.Context, method string, form *Form) (*http.Response, error) {
	u := c.url + "/" + method

	var data bytes.Buffer
	w := multipart.NewWriter(&data)

	if err := form.write(w); err != nil {
		return nil, &TransportError{Method: http.MethodPost, URL: u, Err: fmt.Errorf("encode form: %w", err)}
	}

	if err := w.Close(); err != nil {
		return nil, &TransportError{Method: http.MethodPost, URL: u, Err: fmt.Errorf("encode form: %w", err)}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, &data)

	if err != nil {
		return nil, &TransportError{Method: http.MethodPost, URL: u, Err: err}
	}

	req.Header.Set("Content-Type", w.FormDataContentType())

	return c.do(req)
}

func (c *RequestClient) do(req *http.Request) (*http.Response, error) {
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(req.Context()); err != nil {
			return nil, &TransportError{Method: req.Method, URL: req.URL.String(), Err: err}
		}
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, &TransportError{Method: req.Method, URL: req.URL.String(), Err: err}
	}

	return resp, nil
}

func encodeParams(params []Param) string {
	var parts []string

	for _, p := range params {
		parts = append(parts, url.QueryEscape(p.Name)+"="+url.QueryEscape(p.Value))
	}

	return strings.Join(parts, "&")
}

// Form is an ordered multipart form. Parts are written in insertion order.
type Form struct {
	parts []formPart
}

type formPart struct {
	name string

	value string

	file        bool
	fileName    string
	contentType string
	data        []byte
}

func NewForm() *Form {
	return &Form{}
}

func (f *Form) AddFile(name, fileName, contentType string, data []byte) {
	f.parts = append(f.parts, formPart{
		name: name,

		file:        true,
		fileName:    fileName,
		contentType: contentType,
		data:        data,
	})
}

func (f *Form) AddField(name, value string) {
	f.parts = append(f.parts, formPart{
		name:  name,
		value: value,
	})
}

func (f *Form) Len() int {
	if f == nil {
		return 0
	}

	return len(f.parts)
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func (f *Form) write(w *multipart.Writer) error {
	if f == nil {
		return nil
	}

	for _, p := range f.parts {
		if !p.file {
			if err := w.WriteField(p.name, p.value); err != nil {
				return err
			}

			continue
		}

		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="%s"; filename="%s"`, quoteEscaper.Replace(p.name), quoteEscaper.Replace(p.fileName)))
		h.Set("Content-Type", p.contentType)

		part, err := w.CreatePart(h)

		if err != nil {
			return err
		}

		if _, err := io.Copy(part, bytes.NewReader(p.data)); err != nil {
			return err
		}
	}

	return nil
}
