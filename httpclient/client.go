// Package httpclient is the JSON client every domain API is built on. It resolves paths
// against the configured base URL, attaches the stored bearer token and turns non-2xx
// responses into typed errors.
package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jrsteele09/gastometro/internal/errors"
	"github.com/jrsteele09/gastometro/storage"
	"github.com/rs/zerolog/log"
	"github.com/tidwall/gjson"
	"golang.org/x/oauth2"
)

const (
	headerAuthorization = "Authorization"
	headerContentType   = "Content-Type"
	headerAccept        = "Accept"
	headerRequestID     = "X-Request-ID"
	contentTypeJSON     = "application/json"
)

// Client performs single-attempt JSON requests against the API.
type Client struct {
	baseURL    string
	tokens     oauth2.TokenSource
	httpClient *http.Client
	requestID  func() string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client (for instance to add a timeout).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithTokenSource replaces the storage backed token source.
func WithTokenSource(ts oauth2.TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// WithRequestIDFunc sets the generator for X-Request-ID values.
func WithRequestIDFunc(fn func() string) Option {
	return func(c *Client) {
		c.requestID = fn
	}
}

// New creates a client for baseURL that reads the access token from store on every call.
// An empty baseURL is accepted; every request then fails with a ConfigurationError.
func New(baseURL string, store storage.Store, options ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		tokens:     NewStorageTokenSource(store),
		httpClient: http.DefaultClient,
		requestID:  uuid.NewString,
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Request sends body (JSON encoded when non-nil) to path and returns the raw JSON response.
// Headers supplied by the caller take precedence over the defaults.
func (c *Client) Request(ctx context.Context, method, path string, body any, headers http.Header) (json.RawMessage, error) {
	if c.baseURL == "" {
		return nil, &errors.ConfigurationError{Message: errors.MissingBaseURLMessage}
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("[Request] marshal body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("[Request] create request: %w", err)
	}
	c.buildHeaders(req, headers)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug().Err(err).Str("method", method).Str("path", path).Msg("api request failed")
		return nil, &errors.NetworkError{Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &errors.NetworkError{Err: fmt.Errorf("read response: %w", err)}
	}

	log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Str("request_id", req.Header.Get(headerRequestID)).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	data, parseErr := parseBody(data)
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &errors.RequestError{Status: resp.StatusCode, Message: serverMessage(data)}
	}
	if parseErr != nil {
		return nil, &errors.NetworkError{Err: parseErr}
	}
	return data, nil
}

// Get issues a GET request.
func (c *Client) Get(ctx context.Context, path string) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodGet, path, nil, nil)
}

// Post issues a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body any) (json.RawMessage, error) {
	return c.Request(ctx, http.MethodPost, path, body, nil)
}

// GetJSON issues a GET request and decodes the response into dst.
func (c *Client) GetJSON(ctx context.Context, path string, dst any) error {
	data, err := c.Get(ctx, path)
	if err != nil {
		return err
	}
	return decode(data, dst)
}

// PostJSON issues a POST request and decodes the response into dst. A nil dst discards the body.
func (c *Client) PostJSON(ctx context.Context, path string, body, dst any) error {
	data, err := c.Post(ctx, path, body)
	if err != nil {
		return err
	}
	return decode(data, dst)
}

func (c *Client) buildHeaders(req *http.Request, headers http.Header) {
	for k, values := range headers {
		for _, v := range values {
			req.Header.Add(k, v)
		}
	}
	if req.Header.Get(headerContentType) == "" {
		req.Header.Set(headerContentType, contentTypeJSON)
	}
	if req.Header.Get(headerAccept) == "" {
		req.Header.Set(headerAccept, contentTypeJSON)
	}
	if req.Header.Get(headerRequestID) == "" && c.requestID != nil {
		req.Header.Set(headerRequestID, c.requestID())
	}
	if req.Header.Get(headerAuthorization) != "" || c.tokens == nil {
		return
	}

	token, err := c.tokens.Token()
	if err != nil {
		if !errors.Is(err, errors.ErrNotFound) {
			log.Warn().Err(err).Msg("failed to read access token")
		}
		return
	}
	if token != nil && token.AccessToken != "" {
		token.SetAuthHeader(req)
	}
}

func parseBody(data []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return json.RawMessage("null"), nil
	}
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("invalid JSON response")
	}
	return json.RawMessage(trimmed), nil
}

// serverMessage extracts the "message" field of an error body. Validation errors
// sometimes send a list of messages; those are joined.
func serverMessage(data []byte) string {
	if len(data) == 0 {
		return errors.DefaultRequestMessage
	}
	msg := gjson.GetBytes(data, "message")
	switch {
	case msg.IsArray():
		parts := make([]string, 0)
		for _, item := range msg.Array() {
			if s := item.String(); s != "" {
				parts = append(parts, s)
			}
		}
		if len(parts) > 0 {
			return strings.Join(parts, ", ")
		}
	case msg.Type == gjson.String && msg.Str != "":
		return msg.Str
	}
	return errors.DefaultRequestMessage
}

func decode(data json.RawMessage, dst any) error {
	if dst == nil {
		return nil
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return &errors.NetworkError{Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
