// Package backend is the REST client for the recommendation API. Every call
// is one request and one response: no retry, no caching, no timeout beyond
// the caller's context and the runtime defaults.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"unipick/internal/platform/tracer"
)

// HTTPDoer is the minimal interface needed from an HTTP client.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client calls the recommendation backend.
type Client struct {
	baseURL string
	doer    HTTPDoer
	tracer  tracer.Tracer
	metrics *Metrics
}

type Option func(*Client)

// WithHTTPClient overrides the transport, mainly for tests.
func WithHTTPClient(doer HTTPDoer) Option {
	return func(c *Client) {
		c.doer = doer
	}
}

func WithTracer(t tracer.Tracer) Option {
	return func(c *Client) {
		c.tracer = t
	}
}

func WithMetrics(m *Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

// New builds a client rooted at baseURL (for example "http://localhost:8000/api").
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		doer:    &http.Client{},
		tracer:  tracer.NewNoop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// call performs one JSON request. A nil out discards the body.
func (c *Client) call(ctx context.Context, op, method, path string, query url.Values, body, out any) (err error) {
	start := time.Now()
	ctx, span := c.tracer.Start(ctx, "backend."+op,
		tracer.String(tracer.AttrOperation, op),
		tracer.String(tracer.AttrHTTPMethod, method),
	)
	status := 0
	defer func() {
		span.SetAttributes(tracer.Int(tracer.AttrHTTPStatus, status))
		span.End(err)
		if c.metrics != nil {
			c.metrics.ObserveCall(op, outcome(err), time.Since(start).Seconds())
		}
	}()

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, mErr := json.Marshal(body)
		if mErr != nil {
			return newAPIError(ErrorInternal, op, 0, "failed to marshal request", mErr)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return newAPIError(ErrorInternal, op, 0, "failed to create request", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.doer.Do(req)
	if err != nil {
		return newAPIError(ErrorTransport, op, 0, "request failed", err)
	}
	defer resp.Body.Close()
	status = resp.StatusCode

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return newAPIError(ErrorTransport, op, status, "failed to read response", err)
	}

	if status < 200 || status > 299 {
		return newAPIError(categoryForStatus(status), op, status, detailOf(respBody), nil)
	}

	if out == nil || len(bytes.TrimSpace(respBody)) == 0 {
		return nil
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return newAPIError(ErrorBadData, op, status, "failed to parse response", err)
	}
	return nil
}

// detailOf extracts a short message from a FastAPI-style {"detail": ...} body.
func detailOf(body []byte) string {
	var envelope struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Detail != nil {
		if s, ok := envelope.Detail.(string); ok {
			return s
		}
		return fmt.Sprint(envelope.Detail)
	}
	const maxDetail = 200
	s := strings.TrimSpace(string(body))
	if len(s) > maxDetail {
		s = s[:maxDetail]
	}
	return s
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	return string(CategoryOf(err))
}
