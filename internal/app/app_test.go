package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/league-portal/internal/config"
	"github.com/riskibarqy/league-portal/internal/platform/logging"
)

func memoryConfig() config.Config {
	return config.Config{
		AppEnv:                config.EnvDev,
		HTTPAddr:              "127.0.0.1:0",
		ReadTimeout:           time.Second,
		WriteTimeout:          time.Second,
		RepositoryBackend:     config.BackendMemory,
		ObjectStoreBackend:    config.BackendMemory,
		S3Bucket:              "gallery",
		CacheEnabled:          true,
		CacheTTL:              time.Minute,
		CORSAllowedOrigins:    []string{"*"},
		AdminPassword:         "s3cret",
		UploadMaxBytes:        1 << 20,
		MatchDefaultVenue:     "Nagendrajha Stadium",
		GalleryHomepageLimit:  7,
		NewsLimit:             10,
		ScoreboardLimit:       20,
		RegistrationListLimit: 500,
		AnalyticsLogLimit:     1000,
		AnalyticsLocation:     time.UTC,
		GeoDefaultCountry:     "India",
	}
}

func TestNew_MemoryBackendServesRequests(t *testing.T) {
	a, err := New(context.Background(), memoryConfig(), logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	t.Cleanup(func() {
		if err := a.Shutdown(context.Background()); err != nil {
			t.Fatalf("shutdown: %v", err)
		}
	})

	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("healthz status=%d", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/v1/admin?action=add-news", strings.NewReader(`{"title":"Opener","content":"Kings win the toss"}`))
	req.Header.Set("x-admin-password", "s3cret")
	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("add-news status=%d body=%s", rec.Code, rec.Body.String())
	}

	rec = httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/news", nil))
	if !strings.Contains(rec.Body.String(), "Opener") {
		t.Fatalf("expected cached read to see the new item, got %s", rec.Body.String())
	}
}

func TestNew_RequiresAddr(t *testing.T) {
	cfg := memoryConfig()
	cfg.HTTPAddr = ""
	if _, err := New(context.Background(), cfg, logging.NewNop()); err == nil {
		t.Fatalf("expected error for empty addr")
	}
}

func TestNew_SweepSchedulerIsCreated(t *testing.T) {
	cfg := memoryConfig()
	cfg.OrphanSweepEnabled = true
	cfg.OrphanSweepInterval = time.Hour
	cfg.OrphanSweepBatch = 10
	cfg.OrphanSweepWorkers = 2

	a, err := New(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("new app: %v", err)
	}
	if a.scheduler == nil {
		t.Fatalf("expected a sweep scheduler")
	}
	if jobs := a.scheduler.Jobs(); len(jobs) != 1 || jobs[0].Name() != "storage-orphan-sweep" {
		t.Fatalf("unexpected jobs: %v", jobs)
	}
	a.scheduler.Start()
	if err := a.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}
