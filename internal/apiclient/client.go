// Package apiclient talks to the resource API over HTTP: the entity
// collections under /api and the identity endpoints under /auth.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ArturMukhamedjanov/is-lab1-front/internal/logging"
	"github.com/ArturMukhamedjanov/is-lab1-front/pkg/types"
)

// Header names used on every exchange.
const (
	HeaderErrMessage = "ErrMessage"
	HeaderRequestID  = "X-Request-ID"
)

// TokenSource supplies the bearer token for outgoing requests. An empty
// token sends the request unauthenticated.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource that always returns itself.
type StaticToken string

// Token returns t.
func (t StaticToken) Token() string { return string(t) }

// Client sends requests to one API server.
type Client struct {
	base    *url.URL
	http    *http.Client
	tokens  TokenSource
	logger  *slog.Logger
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces http.DefaultClient.
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithTokenSource sets where bearer tokens come from.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithLogger sets the logger for request diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// WithTimeout bounds each request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// New returns a Client for the server at baseURL.
func New(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", types.ErrServerURLInvalid, baseURL)
	}
	c := &Client{
		base:   u,
		http:   http.DefaultClient,
		tokens: StaticToken(""),
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// call describes one request/response exchange.
type call struct {
	op       string // short name for logs, e.g. "list tickets"
	method   string
	path     string
	body     any   // marshaled as JSON when non-nil
	out      any   // decoded from the response body when non-nil
	accept   []int // statuses treated as success; 200 when empty
	fallback string
}

// do performs c and returns the response status. Non-accepted statuses
// yield *RemoteError and failures to exchange yield *TransportError.
func (c *Client) do(ctx context.Context, cl call) (int, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var body io.Reader
	if cl.body != nil {
		data, err := json.Marshal(cl.body)
		if err != nil {
			return 0, fmt.Errorf("%s: encode request: %w", cl.op, err)
		}
		body = bytes.NewReader(data)
	}

	target := c.base.JoinPath(cl.path).String()
	req, err := http.NewRequestWithContext(ctx, cl.method, target, body)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", cl.op, err)
	}
	reqID := newRequestID()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set(HeaderRequestID, reqID)
	if tok := c.tokens.Token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	log := c.logger.With(logging.Operation(cl.op), logging.Method(cl.method),
		logging.URL(target), logging.RequestID(reqID))
	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		log.Error("request failed", logging.Error(err))
		return 0, &TransportError{Op: cl.op, Message: cl.fallback, Err: err}
	}
	defer resp.Body.Close()

	accept := cl.accept
	if len(accept) == 0 {
		accept = []int{http.StatusOK}
	}
	if !slices.Contains(accept, resp.StatusCode) {
		_, _ = io.Copy(io.Discard, resp.Body)
		msg := strings.TrimSpace(resp.Header.Get(HeaderErrMessage))
		if msg == "" {
			msg = cl.fallback
		}
		log.Warn("request rejected", logging.Status(resp.StatusCode), logging.Error(errors.New(msg)))
		return resp.StatusCode, &RemoteError{Op: cl.op, Status: resp.StatusCode, Message: msg}
	}

	if cl.out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(cl.out); err != nil && !errors.Is(err, io.EOF) {
			log.Error("decode response", logging.Error(err))
			return resp.StatusCode, fmt.Errorf("%s: decode response: %w", cl.op, err)
		}
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	log.Debug("request done", logging.Status(resp.StatusCode), logging.Duration(time.Since(start)))
	return resp.StatusCode, nil
}

func newRequestID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
