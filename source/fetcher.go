// Package source fetches the product feed over HTTP. The payload is treated
// as untrusted bytes; decoding and cleanup belong to the catalog package.
package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/aluiziolira/go-catalog-widget/config"
)

// feedBodyLimit caps how much of a response we are willing to read. The feed
// is a small static document; anything near this size is broken.
const feedBodyLimit = 8 << 20

// Fetcher performs fresh, uncached GETs of the configured feed URL.
type Fetcher struct {
	cfg     *config.Config
	client  *http.Client
	Metrics *Metrics
}

// NewFetcher builds a fetcher configured from cfg.
func NewFetcher(cfg *config.Config) *Fetcher {
	return &Fetcher{
		cfg: cfg,
		client: &http.Client{
			Timeout: cfg.Timeout,
			Transport: &http.Transport{
				Proxy: http.ProxyFromEnvironment,
				DialContext: (&net.Dialer{
					Timeout:   cfg.Timeout,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        10,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
		Metrics: NewMetrics(),
	}
}

// SetTransport swaps the underlying HTTP transport. Tests use this to
// install a mock transport.
func (f *Fetcher) SetTransport(rt http.RoundTripper) {
	f.client.Transport = rt
}

// Fetch GETs the feed and returns the raw body. Caching is disabled on the
// request so every load observes the current document.
func (f *Fetcher) Fetch(ctx context.Context) ([]byte, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	body, err := f.fetch(ctx)
	f.Metrics.ObserveDuration(time.Since(start))

	if err != nil {
		classified := classifyFetchError(err)
		category := errorTypeLabel(classified)
		slog.Error("feed fetch failed",
			slog.String("url", f.cfg.FeedURL),
			slog.String("category", category),
			slog.Any("error", err),
		)
		f.Metrics.IncFetch("error")
		f.Metrics.IncError(category)
		return nil, classified
	}

	f.Metrics.IncFetch("success")
	return body, nil
}

func (f *Fetcher) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.cfg.FeedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	req.Header.Set("User-Agent", f.cfg.UserAgent)
	req.Header.Set("Cache-Control", "no-store")
	req.Header.Set("Pragma", "no-cache")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, ErrStatus{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, feedBodyLimit))
	if err != nil {
		return nil, fmt.Errorf("read feed body: %w", err)
	}
	return body, nil
}

func classifyFetchError(err error) error {
	if err == nil {
		return nil
	}

	var status ErrStatus
	if errors.As(err, &status) {
		return err
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ErrTimeout{Err: err}
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return ErrTimeout{Err: err}
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return ErrConnection{Err: err}
	}
	return err
}
