// Package inventoryapi is the typed client for the remote inventory REST API.
//
// Every call goes through Client.Request, which attaches the JSON content type
// and, when the client is bound to a TokenSource holding a token, a bearer
// Authorization header. Responses are classified into a tagged Result:
// empty, JSON or text. Non-2xx responses fail with a *StatusError carrying the
// status text only. There is no retry.
package inventoryapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/mamadbah2/stockdesk/internal/config"
)

// TokenSource supplies the bearer token for outgoing calls. An empty token
// means the call is sent without an Authorization header.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a function to TokenSource.
type TokenFunc func(ctx context.Context) (string, error)

// Token implements TokenSource.
func (f TokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// StaticToken returns a TokenSource that always yields token.
func StaticToken(token string) TokenSource {
	return TokenFunc(func(context.Context) (string, error) { return token, nil })
}

// Caller is the surface domain services depend on.
type Caller interface {
	Request(ctx context.Context, method, endpoint string, opts ...RequestOption) (Result, error)
}

// Client is a resty-backed implementation of Caller.
type Client struct {
	httpClient *resty.Client
	tokens     TokenSource
	timeout    time.Duration
	metrics    *Metrics
	logger     *zap.Logger
}

// Option customizes a Client at construction time.
type Option func(*Client)

// WithHTTPClient swaps the underlying transport, mostly for tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = resty.NewWithClient(hc)
	}
}

// WithMetrics records every call into m.
func WithMetrics(m *Metrics) Option {
	return func(c *Client) { c.metrics = m }
}

// New builds an unauthenticated client for the configured base URL.
func New(cfg config.APIConfig, logger *zap.Logger, opts ...Option) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}

	c := &Client{
		httpClient: resty.New(),
		timeout:    cfg.Timeout,
		logger:     logger,
	}
	for _, opt := range opts {
		opt(c)
	}

	base := strings.TrimSuffix(cfg.BaseURL, "/")
	if base == "" {
		base = config.DefaultAPIBaseURL
	}

	c.httpClient.
		SetBaseURL(base).
		SetHeader("Content-Type", "application/json").
		SetLogger(logger.Named("resty").Sugar())

	return c
}

// As returns a copy of the client that authenticates with src. The copy shares
// the underlying connection pool.
func (c *Client) As(src TokenSource) *Client {
	cp := *c
	cp.tokens = src
	return &cp
}

// RequestOption customizes a single call.
type RequestOption func(*requestOptions)

type requestOptions struct {
	body    any
	headers map[string]string
	query   map[string]string
}

// WithBody JSON-encodes v as the request body.
func WithBody(v any) RequestOption {
	return func(o *requestOptions) { o.body = v }
}

// WithHeader sets a header, overriding the defaults including Authorization.
func WithHeader(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.headers == nil {
			o.headers = make(map[string]string)
		}
		o.headers[key] = value
	}
}

// WithQuery adds a query string parameter.
func WithQuery(key, value string) RequestOption {
	return func(o *requestOptions) {
		if o.query == nil {
			o.query = make(map[string]string)
		}
		o.query[key] = value
	}
}

// Request performs method against endpoint (relative to the base URL) and
// classifies the response body.
func (c *Client) Request(ctx context.Context, method, endpoint string, opts ...RequestOption) (Result, error) {
	var o requestOptions
	for _, opt := range opts {
		opt(&o)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req := c.httpClient.R().SetContext(ctx)

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return Result{}, fmt.Errorf("resolve bearer token: %w", err)
		}
		if token != "" {
			req.SetHeader("Authorization", "Bearer "+token)
		}
	}
	for k, v := range o.headers {
		req.SetHeader(k, v)
	}
	if len(o.query) > 0 {
		req.SetQueryParams(o.query)
	}
	if o.body != nil {
		req.SetBody(o.body)
	}

	start := time.Now()
	resp, err := req.Execute(method, endpoint)
	if err != nil {
		c.metrics.observe(method, 0, time.Since(start))
		return Result{}, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	c.metrics.observe(method, resp.StatusCode(), time.Since(start))

	if !resp.IsSuccess() {
		c.logger.Debug("api call rejected",
			zap.String("method", method),
			zap.String("endpoint", endpoint),
			zap.Int("status", resp.StatusCode()))
		return Result{}, &StatusError{
			Code:       resp.StatusCode(),
			StatusText: statusText(resp),
		}
	}

	res, err := negotiate(resp.StatusCode(), resp.Header().Get("Content-Type"), resp.Body())
	if err != nil {
		return Result{}, fmt.Errorf("%s %s: %w", method, endpoint, err)
	}
	return res, nil
}

// Get issues a GET and returns the raw Result.
func (c *Client) Get(ctx context.Context, endpoint string) (Result, error) {
	return c.Request(ctx, http.MethodGet, endpoint)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, endpoint string, body any) (Result, error) {
	return c.Request(ctx, http.MethodPost, endpoint, WithBody(body))
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, endpoint string, body any) (Result, error) {
	return c.Request(ctx, http.MethodPut, endpoint, WithBody(body))
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, endpoint string) (Result, error) {
	return c.Request(ctx, http.MethodDelete, endpoint)
}

// statusText mirrors the reason phrase the server sent, falling back to the
// canonical text for the code.
func statusText(resp *resty.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status(), strconv.Itoa(resp.StatusCode())))
	if text == "" {
		text = http.StatusText(resp.StatusCode())
	}
	return text
}
