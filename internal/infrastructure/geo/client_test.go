package geo

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/riskibarqy/league-portal/internal/platform/logging"
	"github.com/riskibarqy/league-portal/internal/platform/resilience"
	"github.com/riskibarqy/league-portal/internal/usecase"
)

func newTestClient(srvURL string, breaker resilience.CircuitBreakerConfig) *Client {
	return NewClient(ClientConfig{
		LookupURL:      srvURL + "/%s/json/",
		Timeout:        time.Second,
		Logger:         logging.NewNop(),
		CircuitBreaker: breaker,
	})
}

func TestClientLocate_ParsesLocation(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/49.36.10.1/json/" {
			t.Errorf("unexpected path: %s", r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ip":"49.36.10.1","region":"Bihar","city":"Darbhanga","country_name":"India"}`))
	}))
	defer srv.Close()

	loc, err := newTestClient(srv.URL, resilience.CircuitBreakerConfig{}).Locate(context.Background(), "49.36.10.1")
	if err != nil {
		t.Fatalf("locate: %v", err)
	}
	if loc.State != "Bihar" || loc.City != "Darbhanga" || loc.Country != "India" {
		t.Fatalf("unexpected location: %+v", loc)
	}
}

func TestClientLocate_ProviderErrorFlag(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"error":true,"reason":"Reserved IP Address"}`))
	}))
	defer srv.Close()

	if _, err := newTestClient(srv.URL, resilience.CircuitBreakerConfig{}).Locate(context.Background(), "127.0.0.1"); err == nil {
		t.Fatalf("expected error for reserved ip")
	}
}

func TestClientLocate_OpensCircuitOnServerErrors(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, resilience.CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 2,
		OpenTimeout:      time.Minute,
		HalfOpenMaxReq:   1,
	})

	for i := 0; i < 2; i++ {
		if _, err := client.Locate(context.Background(), "1.2.3.4"); err == nil {
			t.Fatalf("expected failure on attempt %d", i)
		}
	}
	_, err := client.Locate(context.Background(), "1.2.3.4")
	if !errors.Is(err, usecase.ErrDependencyUnavailable) {
		t.Fatalf("expected ErrDependencyUnavailable, got %v", err)
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected open circuit to skip the provider, calls=%d", got)
	}
}

func TestClientLocate_ClientErrorsDoNotTripCircuit(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, resilience.CircuitBreakerConfig{Enabled: true, FailureThreshold: 1, OpenTimeout: time.Minute})
	for i := 0; i < 3; i++ {
		_, _ = client.Locate(context.Background(), "1.2.3.4")
	}
	if got := calls.Load(); got != 3 {
		t.Fatalf("expected every request to reach the provider, calls=%d", got)
	}
}

func TestClientLocate_RequiresIP(t *testing.T) {
	t.Parallel()

	if _, err := NewClient(ClientConfig{Logger: logging.NewNop()}).Locate(context.Background(), " "); err == nil {
		t.Fatalf("expected error for empty ip")
	}
}
