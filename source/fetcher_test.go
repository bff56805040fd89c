package source

import (
	"context"
	"errors"
	"net"
	"net/http"
	"testing"

	"github.com/jarcoal/httpmock"

	"github.com/aluiziolira/go-catalog-widget/config"
)

func newTestFetcher(transport http.RoundTripper) *Fetcher {
	cfg := config.DefaultConfig()
	cfg.FeedURL = "http://feed.example.test/products.json"
	f := NewFetcher(cfg)
	f.SetTransport(transport)
	return f
}

func TestFetchReturnsBody(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", "http://feed.example.test/products.json",
		httpmock.NewStringResponder(200, `[{"name":"Mug"}]`))

	f := newTestFetcher(transport)
	body, err := f.Fetch(context.Background())
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if string(body) != `[{"name":"Mug"}]` {
		t.Fatalf("body = %q", body)
	}
}

func TestFetchSendsNoCacheHeaders(t *testing.T) {
	transport := httpmock.NewMockTransport()
	var gotCacheControl, gotPragma string
	transport.RegisterResponder("GET", "http://feed.example.test/products.json",
		func(req *http.Request) (*http.Response, error) {
			gotCacheControl = req.Header.Get("Cache-Control")
			gotPragma = req.Header.Get("Pragma")
			return httpmock.NewStringResponse(200, `[]`), nil
		})

	f := newTestFetcher(transport)
	if _, err := f.Fetch(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if gotCacheControl != "no-store" {
		t.Fatalf("Cache-Control = %q, want no-store", gotCacheControl)
	}
	if gotPragma != "no-cache" {
		t.Fatalf("Pragma = %q, want no-cache", gotPragma)
	}
}

func TestFetchNonSuccessStatus(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{name: "not found", status: http.StatusNotFound},
		{name: "server error", status: http.StatusInternalServerError},
		{name: "redirect is not success", status: http.StatusNotModified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			transport := httpmock.NewMockTransport()
			transport.RegisterResponder("GET", "http://feed.example.test/products.json",
				httpmock.NewStringResponder(tt.status, ""))

			f := newTestFetcher(transport)
			_, err := f.Fetch(context.Background())
			var status ErrStatus
			if !errors.As(err, &status) {
				t.Fatalf("error = %v, want ErrStatus", err)
			}
			if status.Code != tt.status {
				t.Fatalf("status code = %d, want %d", status.Code, tt.status)
			}
		})
	}
}

func TestFetchConnectionFailure(t *testing.T) {
	transport := httpmock.NewMockTransport()
	transport.RegisterResponder("GET", "http://feed.example.test/products.json",
		httpmock.NewErrorResponder(&net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}))

	f := newTestFetcher(transport)
	_, err := f.Fetch(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if got := errorTypeLabel(err); got != "connection" {
		t.Fatalf("error type = %q, want connection", got)
	}
}

func TestErrorTypeLabels(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "nil", err: nil, expected: "unknown"},
		{name: "timeout", err: ErrTimeout{Err: context.DeadlineExceeded}, expected: "timeout"},
		{name: "connection", err: ErrConnection{Err: errors.New("refused")}, expected: "connection"},
		{name: "bad status", err: ErrStatus{Code: 503}, expected: "bad_status"},
		{name: "other", err: errors.New("weird"), expected: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := errorTypeLabel(tt.err); got != tt.expected {
				t.Fatalf("errorTypeLabel = %q, want %q", got, tt.expected)
			}
		})
	}
}
