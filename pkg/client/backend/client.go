package backendclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xw1nchester/nailsite/internal/logging"
)

var (
	ErrNotFound     = errors.New("backend: not found")
	ErrUnauthorized = errors.New("backend: unauthorized")
	ErrUnavailable  = errors.New("backend: unavailable")
)

const maxErrorBody = 512

type Config struct {
	BaseURL string
	Timeout time.Duration
}

// Observer receives the outcome of every backend request.
type Observer interface {
	BackendRequest(endpoint, outcome string)
}

type Client struct {
	baseURL  *url.URL
	http     *http.Client
	observer Observer
	logger   *zap.Logger
}

func New(cfg Config, observer Observer, logger *zap.Logger) (*Client, error) {
	base, err := url.Parse(strings.TrimSpace(cfg.BaseURL))
	if err != nil {
		return nil, fmt.Errorf("invalid backend base url: %v", err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("invalid backend base url %q: scheme must be http or https", cfg.BaseURL)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	return &Client{
		baseURL:  base,
		http:     &http.Client{Timeout: timeout},
		observer: observer,
		logger:   logger,
	}, nil
}

// Get fetches path and decodes the JSON response into out. endpoint is a
// low-cardinality name used for logs and metrics.
func (c *Client) Get(ctx context.Context, endpoint, path, token string, out any) error {
	return c.do(ctx, http.MethodGet, endpoint, path, token, nil, out)
}

func (c *Client) Post(ctx context.Context, endpoint, path, token string, body, out any) error {
	return c.do(ctx, http.MethodPost, endpoint, path, token, body, out)
}

func (c *Client) do(ctx context.Context, method, endpoint, path, token string, body, out any) error {
	start := time.Now()

	status, err := c.roundTrip(ctx, method, path, token, body, out)

	logging.LogBackendCall(c.logger, method, path, status, time.Since(start), err)
	if c.observer != nil {
		c.observer.BackendRequest(endpoint, outcome(err))
	}

	return err
}

func (c *Client) roundTrip(ctx context.Context, method, path, token string, body, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, fmt.Errorf("encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	target, err := c.resolve(path)
	if err != nil {
		return 0, fmt.Errorf("resolve path %q: %w", path, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return 0, ctxErr
		}
		return 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return resp.StatusCode, ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return resp.StatusCode, ErrUnauthorized
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return resp.StatusCode, fmt.Errorf("%w: status %d: %s", ErrUnavailable, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	if out == nil {
		return resp.StatusCode, nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("%w: decode response: %v", ErrUnavailable, err)
	}

	return resp.StatusCode, nil
}

// resolve joins an escaped path onto the base URL, keeping any base path
// prefix such as "/v1".
func (c *Client) resolve(path string) (string, error) {
	ref, err := url.Parse(strings.TrimPrefix(path, "/"))
	if err != nil {
		return "", err
	}

	base := *c.baseURL
	if !strings.HasSuffix(base.Path, "/") {
		base.Path += "/"
		base.RawPath = ""
	}

	return base.ResolveReference(ref).String(), nil
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrUnauthorized):
		return "unauthorized"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	return "error"
}
