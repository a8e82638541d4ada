package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/riskibarqy/league-portal/internal/config"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

type captureServer struct {
	mu       sync.Mutex
	requests int
	lastAuth string
}

func (c *captureServer) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c.mu.Lock()
		c.requests++
		c.lastAuth = r.Header.Get("Authorization")
		c.mu.Unlock()
		w.WriteHeader(http.StatusAccepted)
	})
}

func newShippingLogger(t *testing.T, endpoint, token string) (*logging.Logger, func(context.Context) error) {
	t.Helper()
	core, drain, err := NewBetterStackCore(config.Config{
		BetterStackEnabled:  true,
		BetterStackEndpoint: endpoint,
		BetterStackToken:    token,
		BetterStackTimeout:  2 * time.Second,
		BetterStackMinLevel: logging.LevelError,
	})
	if err != nil {
		t.Fatalf("new betterstack core: %v", err)
	}
	if core == nil {
		t.Fatalf("expected a core when shipping is enabled")
	}
	return logging.New(logging.LevelError+1, logging.WithTee(core)), drain
}

func TestBetterStackCore_ShipsErrors(t *testing.T) {
	t.Parallel()

	capture := &captureServer{}
	server := httptest.NewServer(capture.handler())
	defer server.Close()

	logger, drain := newShippingLogger(t, server.URL, "secret-token")
	logger.ErrorContext(context.Background(), "admin action failed", "action", "upload-gallery")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := drain(ctx); err != nil {
		t.Fatalf("drain: %v", err)
	}

	capture.mu.Lock()
	defer capture.mu.Unlock()
	if capture.requests != 1 {
		t.Fatalf("expected one shipped entry, got %d", capture.requests)
	}
	if capture.lastAuth != "Bearer secret-token" {
		t.Fatalf("unexpected authorization header: %q", capture.lastAuth)
	}
}

func TestBetterStackCore_RespectsMinLevel(t *testing.T) {
	t.Parallel()

	capture := &captureServer{}
	server := httptest.NewServer(capture.handler())
	defer server.Close()

	logger, drain := newShippingLogger(t, server.URL, "")
	logger.InfoContext(context.Background(), "visit recorded")
	logger.WarnContext(context.Background(), "geolocation slow")

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := drain(ctx); err != nil {
		t.Fatalf("drain: %v", err)
	}

	capture.mu.Lock()
	defer capture.mu.Unlock()
	if capture.requests != 0 {
		t.Fatalf("expected nothing shipped below error, got %d", capture.requests)
	}
}

func TestBetterStackCore_Disabled(t *testing.T) {
	core, drain, err := NewBetterStackCore(config.Config{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if core != nil {
		t.Fatalf("expected nil core when disabled")
	}
	if err := drain(context.Background()); err != nil {
		t.Fatalf("drain: %v", err)
	}
}

func TestNormalizeBetterStackEndpoint(t *testing.T) {
	cases := map[string]string{
		"":                                "",
		"in.logs.betterstack.com":         "https://in.logs.betterstack.com",
		" http://localhost:9000/ingest ":  "http://localhost:9000/ingest",
		"https://in.logs.betterstack.com": "https://in.logs.betterstack.com",
	}
	for in, want := range cases {
		if got := normalizeBetterStackEndpoint(in); got != want {
			t.Fatalf("normalize %q: got %q want %q", in, got, want)
		}
	}
}
