// Package upstream talks to the remote TClass API. It is a single
// best-effort round trip per call: no retry, no timeout, no caching.
package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.uber.org/zap"

	appErrors "github.com/primex-howard/tclass-gateway/pkg/errors"
)

// Observer receives timing for every upstream round trip.
type Observer interface {
	ObserveUpstream(method, path string, status int, duration time.Duration)
}

// Client issues authenticated JSON requests against the configured base URL.
type Client struct {
	baseURL  string
	http     *http.Client
	logger   *zap.Logger
	observer Observer
}

// New constructs a Client. The base URL is validated at config load; an
// empty value here is a programmer error, not a runtime condition.
func New(baseURL string, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{},
		logger:  logger,
	}
}

// SetObserver attaches a metrics observer. Nil disables observation.
func (c *Client) SetObserver(observer Observer) {
	c.observer = observer
}

// do performs one round trip. A bearer token is attached when present and
// caller-supplied headers override the defaults. The response body is
// decoded tolerantly: a malformed body on a 2xx becomes an empty object, a
// non-2xx becomes a normalized upstream error carrying the server message.
func (c *Client) do(ctx context.Context, token, method, path string, body, out interface{}, headers http.Header) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to encode request body")
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to build upstream request")
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for key, values := range headers {
		req.Header.Del(key)
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		if c.observer != nil {
			c.observer.ObserveUpstream(method, path, 0, time.Since(start))
		}
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, appErrors.ErrUpstream.Message)
	}
	defer resp.Body.Close()
	if c.observer != nil {
		c.observer.ObserveUpstream(method, path, resp.StatusCode, time.Since(start))
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return appErrors.Wrap(err, appErrors.ErrUpstream.Code, appErrors.ErrUpstream.Status, appErrors.ErrUpstream.Message)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var failure struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(raw, &failure)
		c.logger.Warn("upstream request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", resp.StatusCode),
		)
		return appErrors.Upstream(resp.StatusCode, failure.Message)
	}

	if out != nil && len(raw) > 0 {
		// A malformed 2xx body is treated as an empty object, never an error.
		_ = json.Unmarshal(raw, out)
	}
	return nil
}

func (c *Client) get(ctx context.Context, token, path string, out interface{}) error {
	return c.do(ctx, token, http.MethodGet, path, nil, out, nil)
}

func pathf(format string, args ...interface{}) string {
	return fmt.Sprintf(format, args...)
}
