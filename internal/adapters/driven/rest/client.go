// Package rest implements the driven gateway ports against the Trust
// Circle HTTP API.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
	"golang.org/x/time/rate"

	"github.com/trustcircle/trustcircle-cli/internal/core/domain"
	"github.com/trustcircle/trustcircle-cli/internal/logger"
)

const (
	// DefaultBaseURL is the production API, used when neither config
	// nor environment names an endpoint.
	DefaultBaseURL = "https://api.trustcircle.app"

	// DefaultTimeout is the HTTP request timeout. The backend has no
	// contract-level timeout, so the client enforces one and surfaces
	// it as domain.ErrTimeout.
	DefaultTimeout = 15 * time.Second

	// requestsPerSecond is the sustained client-side request rate.
	requestsPerSecond = 10.0

	// burstSize is the token bucket burst.
	burstSize = 20
)

// Client talks to the Trust Circle REST API. One configured client is
// injected into every gateway consumer; environment selection happens
// once at process start.
type Client struct {
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
}

// NewClient creates an API client for the given base URL. When token is
// non-empty requests carry it as a bearer token via an oauth2 transport.
func NewClient(baseURL, token string) *Client {
	httpClient := &http.Client{Timeout: DefaultTimeout}
	if token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		httpClient = oauth2.NewClient(context.Background(), ts)
		httpClient.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), burstSize),
	}
}

// get performs a GET request and decodes the JSON response into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out)
}

// post performs a POST request with a JSON body and decodes the JSON
// response into out. Pass a nil out when only ok/not-ok matters.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	reqID := uuid.NewString()
	req.Header.Set("X-Request-ID", reqID)
	logger.Debug("API %s %s (request %s)", method, path, reqID)

	resp, err := c.http.Do(req)
	if err != nil {
		return wrapTransportError(method, path, err)
	}
	defer resp.Body.Close() //nolint:errcheck // read-side close

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return newAPIError(resp)
	}

	if out == nil {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body) //nolint:errcheck // best-effort drain
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w: %w", domain.ErrRemote, err)
	}
	return nil
}

// wrapTransportError maps transport failures onto domain error kinds.
func wrapTransportError(method, path string, err error) error {
	var netErr net.Error
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrTimeout)
	case errors.As(err, &netErr) && netErr.Timeout():
		return fmt.Errorf("%s %s: %w", method, path, domain.ErrTimeout)
	case errors.Is(err, context.Canceled):
		return err
	default:
		return fmt.Errorf("%s %s: %w: %w", method, path, domain.ErrRemote, err)
	}
}
