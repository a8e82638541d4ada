package observability

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/riskibarqy/league-portal/internal/config"
)

func TestPprofMux_ServesIndexOnly(t *testing.T) {
	mux := newPprofMux()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/debug/pprof/", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from pprof index, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/home", nil))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 outside /debug/pprof, got %d", rec.Code)
	}
}

func TestStartPprofServer_DisabledReturnsNil(t *testing.T) {
	if srv := StartPprofServer(config.Config{}, nil); srv != nil {
		t.Fatalf("expected nil server when pprof is disabled")
	}
	if err := StopPprofServer(context.Background(), nil); err != nil {
		t.Fatalf("stop nil server: %v", err)
	}
}

func TestInitPyroscope_DisabledIsNoop(t *testing.T) {
	stop, err := InitPyroscope(config.Config{}, nil)
	if err != nil {
		t.Fatalf("init pyroscope: %v", err)
	}
	if err := stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
}

func TestProfilerConfig_Tags(t *testing.T) {
	cfg := config.Config{
		AppEnv:           config.EnvDev,
		ServiceName:      "league-portal",
		PyroscopeAppName: "league-portal",
	}
	got := profilerConfig(cfg)
	if got.Tags["service"] != "league-portal" || got.Tags["env"] != config.EnvDev {
		t.Fatalf("unexpected tags: %v", got.Tags)
	}
	if _, ok := got.Tags["version"]; ok {
		t.Fatalf("empty version must not be tagged: %v", got.Tags)
	}

	cfg.ServiceVersion = "1.2.0"
	if v := profilerConfig(cfg).Tags["version"]; v != "1.2.0" {
		t.Fatalf("unexpected version tag: %q", v)
	}
	if len(got.ProfileTypes) != 4 {
		t.Fatalf("unexpected profile types: %v", got.ProfileTypes)
	}
}
