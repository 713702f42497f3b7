// Package backend talks to the rewards backend over HTTP.
package backend

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"rewards-mediation-gateway/internal/core/ports"
	"rewards-mediation-gateway/pkg/metrics"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

const (
	productionAPIHost     = "https://api.sponsorpay.com"
	productionServiceHost = "https://service.sponsorpay.com"
	productionEngineHost  = "https://engine.sponsorpay.com"
	productionIframeHost  = "https://iframe.sponsorpay.com"
	stagingHost           = "https://staging.sws.sponsorpay.com"
	stagingIframeHost     = "https://staging.iframe.sponsorpay.com"
)

var endpointPaths = map[ports.Endpoint]struct {
	production string
	staging    string
	path       string
}{
	ports.EndpointCurrency:        {productionAPIHost, stagingHost, "/vcs/v1/new_credit.json"},
	ports.EndpointUnlockItems:     {productionAPIHost, stagingHost, "/vcs/v1/items.json"},
	ports.EndpointInstall:         {productionServiceHost, stagingHost, "/installs/v2"},
	ports.EndpointAction:          {productionServiceHost, stagingHost, "/actions/v2"},
	ports.EndpointInterstitial:    {productionEngineHost, stagingHost, "/interstitial"},
	ports.EndpointTracker:         {productionEngineHost, stagingHost, "/tracker"},
	ports.EndpointOfferwall:       {productionIframeHost, stagingIframeHost, "/mobile"},
	ports.EndpointOfferwallUnlock: {productionIframeHost, stagingIframeHost, "/unlock"},
}

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Options configures a Client.
type Options struct {
	Staging           bool
	Timeout           time.Duration
	RequestsPerSecond float64
	Burst             int
	MaxResponseBytes  int64
	// URLs overrides endpoint URLs by endpoint name.
	URLs map[string]string
}

// Client implements ports.BackendClient.
type Client struct {
	http     HTTPClient
	limiter  *rate.Limiter
	urls     map[ports.Endpoint]string
	timeout  time.Duration
	maxBytes int64
	log      zerolog.Logger
}

// NewClient creates a backend client. A nil httpClient uses a plain
// http.Client.
func NewClient(httpClient HTTPClient, opts Options, log zerolog.Logger) (*Client, error) {
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	limit := rate.Inf
	if opts.RequestsPerSecond > 0 {
		limit = rate.Limit(opts.RequestsPerSecond)
	}
	burst := opts.Burst
	if burst <= 0 {
		burst = 1
	}
	maxBytes := opts.MaxResponseBytes
	if maxBytes <= 0 {
		maxBytes = 1 << 20
	}

	urls := make(map[ports.Endpoint]string, len(endpointPaths))
	for endpoint, p := range endpointPaths {
		host := p.production
		if opts.Staging {
			host = p.staging
		}
		urls[endpoint] = host + p.path
	}
	for name, u := range opts.URLs {
		endpoint := ports.Endpoint(strings.ToLower(name))
		if _, ok := endpointPaths[endpoint]; !ok {
			return nil, fmt.Errorf("unknown backend endpoint %q", name)
		}
		if u = strings.TrimSpace(u); u != "" {
			urls[endpoint] = u
		}
	}

	return &Client{
		http:     httpClient,
		limiter:  rate.NewLimiter(limit, burst),
		urls:     urls,
		timeout:  opts.Timeout,
		maxBytes: maxBytes,
		log:      log,
	}, nil
}

// URL returns the base URL of endpoint.
func (c *Client) URL(endpoint ports.Endpoint) string {
	return c.urls[endpoint]
}

// Get performs a GET request. Non-2xx replies are returned, not errors.
func (c *Client) Get(ctx context.Context, endpoint ports.Endpoint, rawURL string) (*ports.RawResponse, error) {
	start := time.Now()
	resp, err := c.get(ctx, rawURL)

	outcome := "ok"
	switch {
	case err != nil:
		outcome = "transport_error"
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		outcome = "http_error"
	}
	metrics.ObserveBackend(string(endpoint), outcome, time.Since(start))

	if err != nil {
		c.log.Warn().Err(err).Str("endpoint", string(endpoint)).Msg("backend request failed")
		return nil, err
	}
	c.log.Debug().
		Str("endpoint", string(endpoint)).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("backend request completed")
	return resp, nil
}

func (c *Client) get(ctx context.Context, rawURL string) (*ports.RawResponse, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) > c.maxBytes {
		return nil, fmt.Errorf("response body exceeds %d bytes", c.maxBytes)
	}

	return &ports.RawResponse{
		StatusCode: resp.StatusCode,
		Body:       body,
		Signature:  resp.Header.Get(ports.ResponseSignatureHeader),
	}, nil
}
