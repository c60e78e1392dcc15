// Package api is the single gateway to the DROH backend REST API. It
// normalizes the backend's response envelope, attaches session headers and
// maps failures to typed errors. It deliberately carries no policy: no
// caching, no retries, no request deduplication — callers own all of that.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bekendz87/droh-admin/internal/session"
)

const defaultTimeout = 30 * time.Second

// Client issues requests against one DROH backend deployment.
type Client struct {
	httpClient *http.Client
	sess       *session.Session
	baseURL    string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client (used in tests).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTimeout overrides the default request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = d
	}
}

// New creates a gateway client for the given base URL and session.
func New(baseURL string, sess *session.Session, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		sess:    sess,
		httpClient: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Request describes one backend call.
type Request struct {
	Body    any
	Headers http.Header
	Params  url.Values
	Method  string
	Path    string
}

// Do executes the request and returns the normalized envelope. Backend
// failures (non-2xx or an unsuccessful envelope) come back as *Error with
// a message fit for the UI.
func (c *Client) Do(ctx context.Context, req Request) (*Envelope, error) {
	httpReq, err := c.buildRequest(ctx, req)
	if err != nil {
		return nil, err
	}

	slog.Debug("gateway request",
		"method", req.Method,
		"path", req.Path,
		"params", req.Params.Encode())

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &Error{Message: "could not reach the DROH backend", cause: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &Error{Status: resp.StatusCode, Message: "failed to read backend response", cause: err}
	}

	env, parseErr := parseEnvelope(body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := http.StatusText(resp.StatusCode)
		if parseErr == nil && env.Message != "" {
			msg = env.Message
		}
		return nil, &Error{Status: resp.StatusCode, Message: msg}
	}

	if parseErr != nil {
		return nil, &Error{Status: resp.StatusCode, Message: "unexpected backend response", cause: parseErr}
	}

	if !env.Success {
		msg := env.Message
		if msg == "" {
			msg = "the backend rejected the request"
		}
		return nil, &Error{Status: resp.StatusCode, Message: msg}
	}

	return env, nil
}

// Get issues a GET and decodes the envelope data into out (out may be nil).
func (c *Client) Get(ctx context.Context, path string, params url.Values, out any) error {
	env, err := c.Do(ctx, Request{Method: http.MethodGet, Path: path, Params: params})
	if err != nil {
		return err
	}
	return env.Decode(out)
}

// Post issues a JSON POST and decodes the envelope data into out. The
// backend's human-readable message is returned for toast display.
func (c *Client) Post(ctx context.Context, path string, body, out any) (string, error) {
	env, err := c.Do(ctx, Request{Method: http.MethodPost, Path: path, Body: body})
	if err != nil {
		return "", err
	}
	if err := env.Decode(out); err != nil {
		return "", err
	}
	return env.Message, nil
}

func (c *Client) buildRequest(ctx context.Context, req Request) (*http.Request, error) {
	u, err := c.requestURL(req.Path, req.Params)
	if err != nil {
		return nil, err
	}

	var bodyReader io.Reader
	if req.Body != nil && req.Method != http.MethodGet {
		payload, marshalErr := json.Marshal(req.Body)
		if marshalErr != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", marshalErr)
		}
		bodyReader = bytes.NewReader(payload)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, u, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if bodyReader != nil {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	c.setSessionHeaders(httpReq)
	for k, vs := range req.Headers {
		for _, v := range vs {
			httpReq.Header.Add(k, v)
		}
	}

	return httpReq, nil
}

func (c *Client) requestURL(path string, params url.Values) (string, error) {
	raw := path
	if !strings.HasPrefix(path, "http://") && !strings.HasPrefix(path, "https://") {
		raw = c.baseURL + "/" + strings.TrimLeft(path, "/")
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid request URL %q: %w", raw, err)
	}

	if len(params) > 0 {
		q := u.Query()
		for k, vs := range params {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	return u.String(), nil
}

func (c *Client) setSessionHeaders(req *http.Request) {
	if c.sess == nil {
		return
	}
	req.Header.Set("oh_token", c.sess.Token)
	if c.sess.UserID != "" {
		req.Header.Set("X-User-ID", c.sess.UserID)
	}
	if c.sess.Username != "" {
		req.Header.Set("X-Username", c.sess.Username)
	}
}
